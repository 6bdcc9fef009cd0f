package compas

// PointerEvent is a pointer-down notification in widget-local coordinates.
// X and Y are in screen pixels relative to the widget's scaled top-left
// corner, i.e. the same space HitTest produces boxes in. Scale is the display
// scale the widget is drawn with; the zero value means unscaled.
type PointerEvent struct {
	X, Y  float32
	Scale Vec2
}

// Pos returns the event position as a vector.
func (e PointerEvent) Pos() Vec2 {
	return Vec2{X: e.X, Y: e.Y}
}

// DisplayScale returns Scale, or (1, 1) when Scale is unset.
func (e PointerEvent) DisplayScale() Vec2 {
	if e.Scale == (Vec2{}) {
		return Vec2{X: 1, Y: 1}
	}
	return e.Scale
}

// KeyTypeEvent carries a logical text fragment typed by the user.
type KeyTypeEvent struct {
	Text string
}

// KeyEvent carries a non-text key press, such as an arrow key.
type KeyEvent struct {
	Key Key
}

// PointerTarget is implemented by nodes that react to pointer-down.
type PointerTarget interface {
	PointerDown(e PointerEvent)
}

// KeyTarget is implemented by nodes that accept keyboard input while focused.
type KeyTarget interface {
	KeyType(e KeyTypeEvent)
	KeyDown(e KeyEvent)
}

// Focusable is implemented by nodes that can hold keyboard focus.
type Focusable interface {
	SetFocused(focused bool)
	Focused() bool
}

// Updater is the per-frame hook. The Stage calls Update exactly once per
// frame on every node that implements it.
type Updater interface {
	Update()
}
