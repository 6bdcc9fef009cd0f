package standard

import "github.com/go-theft-auto/compas"

// Panel is a filled rectangle holding child components positioned relative
// to its top-left corner.
type Panel struct {
	compas.Box
	res      *resources
	children compas.Container
}

func newPanel(res *resources) *Panel {
	p := &Panel{res: res}
	p.SetSize(res.theme.PanelSize.Width, res.theme.PanelSize.Height)
	p.SetColor(res.theme.Style.PanelColor)
	return p
}

// AddComponent appends c. Adding a component twice moves it to the top.
func (p *Panel) AddComponent(c compas.Component) {
	p.children.AddChild(c)
}

// RemoveComponent removes c and reports whether it was a child.
func (p *Panel) RemoveComponent(c compas.Component) bool {
	return p.children.RemoveChild(c)
}

// Components returns the children in drawing order.
func (p *Panel) Components() []compas.Component {
	nodes := p.children.Children()
	out := make([]compas.Component, 0, len(nodes))
	for _, n := range nodes {
		if c, ok := n.(compas.Component); ok {
			out = append(out, c)
		}
	}
	return out
}

// Children implements compas.Parent.
func (p *Panel) Children() []compas.Node {
	return p.children.Children()
}

// SetSceneObserver sets the observer told about child changes.
func (p *Panel) SetSceneObserver(o compas.SceneObserver) {
	p.children.SetObserver(o)
}

// Draw implements compas.Node. Children are drawn over the background and
// clipped to the panel.
func (p *Panel) Draw(dc *compas.DrawContext, origin compas.Vec2) {
	r := p.Bounds()
	r.X += origin.X
	r.Y += origin.Y
	dc.Rect(r, p.Color())
	dc.RectOutline(r, p.res.theme.Style.PanelBorderColor, p.res.theme.Style.BorderSize)

	dc.DrawList.PushClipRect(r.X*dc.Scale.X, r.Y*dc.Scale.Y, (r.X+r.W)*dc.Scale.X, (r.Y+r.H)*dc.Scale.Y)
	p.children.DrawChildren(dc, r.Pos())
	dc.DrawList.PopClipRect()
}
