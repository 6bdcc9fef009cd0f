package compas

// Renderer is the interface for rendering draw data.
type Renderer interface {
	Render(dl *DrawList) error
	Resize(width, height int)
}

// Stage owns the root of a scene and drives it one frame at a time:
// input dispatch, the per-frame update hook, drawing and rendering all run
// synchronously inside Frame.
type Stage struct {
	renderer Renderer
	root     Container
	scale    Vec2
	focused  Focusable

	// FrameCount is the number of frames run so far.
	FrameCount uint64
}

// StageOption configures a Stage instance.
type StageOption func(*Stage)

// WithScale sets the display scale applied to the whole scene.
func WithScale(x, y float32) StageOption {
	return func(s *Stage) { s.scale = Vec2{X: x, Y: y} }
}

// WithSceneObserver sets an observer for the root container.
func WithSceneObserver(o SceneObserver) StageOption {
	return func(s *Stage) { s.root.SetObserver(o) }
}

// NewStage creates a new Stage rendering through renderer.
func NewStage(renderer Renderer, opts ...StageOption) *Stage {
	s := &Stage{
		renderer: renderer,
		scale:    Vec2{X: 1, Y: 1},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Root returns the root container.
func (s *Stage) Root() *Container {
	return &s.root
}

// Add appends n to the root container.
func (s *Stage) Add(n Node) {
	s.root.AddChild(n)
}

// Remove removes n from the root container. If focus is held by n or by
// any node below it, focus is cleared.
func (s *Stage) Remove(n Node) bool {
	removed := s.root.RemoveChild(n)
	s.dropDetachedFocus()
	return removed
}

// Scale returns the display scale.
func (s *Stage) Scale() Vec2 {
	return s.scale
}

// SetScale sets the display scale.
func (s *Stage) SetScale(x, y float32) {
	s.scale = Vec2{X: x, Y: y}
}

// Focused returns the node holding keyboard focus, or nil.
func (s *Stage) Focused() Focusable {
	return s.focused
}

// Focus moves keyboard focus to f. nil clears focus.
func (s *Stage) Focus(f Focusable) {
	if s.focused == f {
		return
	}
	if s.focused != nil {
		s.focused.SetFocused(false)
	}
	s.focused = f
	if f != nil {
		f.SetFocused(true)
	}
	logger.Debug("focus changed", "focused", f != nil)
}

// Resize notifies the renderer of a display size change.
func (s *Stage) Resize(width, height int) {
	s.renderer.Resize(width, height)
}

// Frame runs one frame: it dispatches input, calls Update on every node,
// draws the scene and renders it.
func (s *Stage) Frame(input *InputState) error {
	s.FrameCount++

	// Containers below the root change without the stage seeing it.
	s.dropDetachedFocus()

	if input != nil {
		s.dispatchPointer(input)
		s.dispatchKeys(input)
	}

	walk(&s.root, func(n Node, _ Vec2) bool {
		if u, ok := n.(Updater); ok {
			u.Update()
		}
		return true
	})

	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	dc := &DrawContext{DrawList: dl, Scale: s.scale}
	s.root.DrawChildren(dc, Vec2{})

	return s.renderer.Render(dl)
}

// PointerDown delivers a pointer-down at screen position p to the topmost
// node that accepts it. Focusable targets receive focus; clicking anything
// else clears focus. It returns the node that received the event, or nil.
func (s *Stage) PointerDown(p Vec2) Node {
	target, origin := s.hitNode(p)
	if target == nil {
		s.Focus(nil)
		return nil
	}

	if f, ok := target.(Focusable); ok {
		s.Focus(f)
	} else {
		s.Focus(nil)
	}

	if pt, ok := target.(PointerTarget); ok {
		local := p.Sub(origin.Scale(s.scale))
		pt.PointerDown(PointerEvent{X: local.X, Y: local.Y, Scale: s.scale})
	}
	return target
}

// FocusNext moves focus to the next focusable node in scene order, wrapping
// around. It returns the newly focused node, or nil if there is none.
func (s *Stage) FocusNext() Focusable {
	var all []Focusable
	walk(&s.root, func(n Node, _ Vec2) bool {
		if f, ok := n.(Focusable); ok {
			all = append(all, f)
		}
		return true
	})
	if len(all) == 0 {
		return nil
	}

	next := 0
	for i, f := range all {
		if f == s.focused {
			next = (i + 1) % len(all)
			break
		}
	}
	s.Focus(all[next])
	return all[next]
}

func (s *Stage) dispatchPointer(input *InputState) {
	if !input.MouseClicked(MouseButtonLeft) {
		return
	}
	s.PointerDown(Vec2{X: input.MouseX, Y: input.MouseY})
}

// navigationKeys are forwarded to the focused KeyTarget as KeyEvents.
var navigationKeys = []Key{KeyLeft, KeyRight, KeyUp, KeyDown, KeyHome, KeyEnd, KeyEnter}

// dispatchKeys delivers one frame of keyboard input. Typed characters go
// first, then navigation keys, then Tab and Escape move focus, so text typed
// in the same frame reaches the node that had focus when it was typed.
func (s *Stage) dispatchKeys(input *InputState) {
	if kt, ok := s.focused.(KeyTarget); ok {
		if input.HasInputChars() {
			kt.KeyType(KeyTypeEvent{Text: string(input.InputChars)})
		}
		for _, k := range navigationKeys {
			if input.KeyRepeated(k) {
				kt.KeyDown(KeyEvent{Key: k})
			}
		}
	}

	switch {
	case input.KeyPressed(KeyTab):
		s.FocusNext()
	case input.KeyPressed(KeyEscape):
		s.Focus(nil)
	}
}

// dropDetachedFocus clears focus when the focused node is no longer
// reachable from the root.
func (s *Stage) dropDetachedFocus() {
	if s.focused == nil {
		return
	}
	attached := false
	walk(&s.root, func(n Node, _ Vec2) bool {
		if f, ok := n.(Focusable); ok && f == s.focused {
			attached = true
		}
		return !attached
	})
	if !attached {
		s.Focus(nil)
	}
}

// hitNode returns the topmost pointer target or focusable node containing
// the screen point p, together with its absolute unscaled origin. Nodes with
// children clip them to their bounds, so a point outside a parent never
// reaches its children.
func (s *Stage) hitNode(p Vec2) (Node, Vec2) {
	var (
		found  Node
		origin Vec2
		visit  func(parent Parent, parentOrigin Vec2)
	)
	visit = func(parent Parent, parentOrigin Vec2) {
		for _, n := range parent.Children() {
			b := n.Bounds()
			abs := parentOrigin.Add(b.Pos())
			screen := Rect{X: abs.X * s.scale.X, Y: abs.Y * s.scale.Y, W: b.W * s.scale.X, H: b.H * s.scale.Y}
			if !screen.Contains(p) {
				continue
			}
			_, pt := n.(PointerTarget)
			_, fc := n.(Focusable)
			if pt || fc {
				// Later nodes draw on top, so keep overwriting.
				found, origin = n, abs
			}
			if child, ok := n.(Parent); ok {
				visit(child, abs)
			}
		}
	}
	visit(&s.root, Vec2{})
	return found, origin
}

// walk visits every node below p in drawing order, passing each node's
// parent's absolute origin. Returning false from fn skips the node's
// children.
func walk(p Parent, fn func(n Node, parentOrigin Vec2) bool) {
	walkFrom(p, Vec2{}, fn)
}

func walkFrom(p Parent, origin Vec2, fn func(n Node, parentOrigin Vec2) bool) {
	for _, n := range p.Children() {
		if !fn(n, origin) {
			continue
		}
		if child, ok := n.(Parent); ok {
			walkFrom(child, origin.Add(n.Bounds().Pos()), fn)
		}
	}
}
