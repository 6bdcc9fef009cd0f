package compas

// Node is an element of the scene graph.
type Node interface {
	// Bounds returns the node's rectangle relative to its parent, in
	// unscaled units.
	Bounds() Rect

	// Draw appends the node's primitives to dc. origin is the absolute,
	// unscaled position of the parent's top-left corner.
	Draw(dc *DrawContext, origin Vec2)
}

// Parent is implemented by nodes that have children.
type Parent interface {
	Children() []Node
}

// SceneObserver is notified whenever a Container's child list changes.
type SceneObserver interface {
	ChildAdded(parent *Container, child Node)
	ChildRemoved(parent *Container, child Node)
}

// DrawContext carries the per-frame drawing state through the scene.
type DrawContext struct {
	DrawList *DrawList
	Scale    Vec2
}

// Rect draws a filled rectangle given in unscaled absolute coordinates.
func (dc *DrawContext) Rect(r Rect, color uint32) {
	dc.DrawList.AddRect(r.X*dc.Scale.X, r.Y*dc.Scale.Y, r.W*dc.Scale.X, r.H*dc.Scale.Y, color)
}

// RectOutline draws a rectangle outline given in unscaled absolute
// coordinates. The thickness is in screen pixels.
func (dc *DrawContext) RectOutline(r Rect, color uint32, thickness float32) {
	dc.DrawList.AddRectOutline(r.X*dc.Scale.X, r.Y*dc.Scale.Y, r.W*dc.Scale.X, r.H*dc.Scale.Y, color, thickness)
}

// Text draws the entries of layout with glyphs from src, with the text block
// at the unscaled absolute position origin.
func (dc *DrawContext) Text(layout Layout, text string, origin Vec2, src GlyphSource, textureID uint32, color uint32) {
	if src == nil || layout.Len() == 0 {
		return
	}
	quads := make([]GlyphQuad, 0, layout.Len())
	i := 0
	for _, r := range text {
		if i >= layout.Len() {
			break
		}
		e := layout.Entries[i]
		i++
		if e.Width == 0 {
			continue
		}
		x := (origin.X + e.X) * dc.Scale.X
		y := (origin.Y + e.Y) * dc.Scale.Y
		if q, ok := src.Quad(r, x, y, dc.Scale); ok {
			quads = append(quads, q)
		}
	}
	dc.DrawList.AddGlyphQuads(quads, color, textureID)
}

// Box is the renderable surface embedded by widgets: a rectangle with a
// color. It implements Resizable and Colorable.
type Box struct {
	rect  Rect
	color uint32
}

// Bounds returns the box rectangle relative to its parent.
func (b *Box) Bounds() Rect {
	return b.rect
}

// SetPos moves the box relative to its parent.
func (b *Box) SetPos(x, y float32) {
	b.rect.X = x
	b.rect.Y = y
}

// Pos returns the box position relative to its parent.
func (b *Box) Pos() Vec2 {
	return b.rect.Pos()
}

// SetSize sets width and height.
func (b *Box) SetSize(width, height float32) {
	b.rect.W = width
	b.rect.H = height
}

// SetWidth sets the width.
func (b *Box) SetWidth(value float32) {
	b.rect.W = value
}

// SetHeight sets the height.
func (b *Box) SetHeight(value float32) {
	b.rect.H = value
}

// Size returns width and height.
func (b *Box) Size() Vec2 {
	return b.rect.Size()
}

// SetColor sets the box color.
func (b *Box) SetColor(color uint32) {
	b.color = color
}

// Color returns the box color.
func (b *Box) Color() uint32 {
	return b.color
}

// Container is an ordered list of child nodes. It is the only record of its
// children: observers are told about every change but keep no list of their
// own that could drift.
type Container struct {
	children []Node
	observer SceneObserver
}

// SetObserver sets the observer notified on child changes. nil disables
// notifications.
func (c *Container) SetObserver(o SceneObserver) {
	c.observer = o
}

// AddChild appends n. A node already in the container is moved to the end.
func (c *Container) AddChild(n Node) {
	if n == nil {
		return
	}
	if i := c.IndexOf(n); i >= 0 {
		c.children = append(c.children[:i], c.children[i+1:]...)
	}
	c.children = append(c.children, n)
	if c.observer != nil {
		c.observer.ChildAdded(c, n)
	}
}

// RemoveChild removes n and reports whether it was present.
func (c *Container) RemoveChild(n Node) bool {
	i := c.IndexOf(n)
	if i < 0 {
		return false
	}
	c.children = append(c.children[:i], c.children[i+1:]...)
	if c.observer != nil {
		c.observer.ChildRemoved(c, n)
	}
	return true
}

// IndexOf returns the position of n, or -1.
func (c *Container) IndexOf(n Node) int {
	for i, child := range c.children {
		if child == n {
			return i
		}
	}
	return -1
}

// Children returns the children in drawing order. The slice must not be
// modified.
func (c *Container) Children() []Node {
	return c.children
}

// Len returns the number of children.
func (c *Container) Len() int {
	return len(c.children)
}

// DrawChildren draws every child, with origin the absolute position of the
// container's owner.
func (c *Container) DrawChildren(dc *DrawContext, origin Vec2) {
	for _, child := range c.children {
		child.Draw(dc, origin)
	}
}
