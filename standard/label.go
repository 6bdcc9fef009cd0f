package standard

import "github.com/go-theft-auto/compas"

// Label displays static text. Its size follows the text.
type Label struct {
	compas.Box
	res  *resources
	text staticText
}

func newLabel(res *resources) *Label {
	l := &Label{res: res}
	l.SetColor(res.theme.Style.TextColor)
	return l
}

// SetText sets the label text and resizes the label to fit it.
func (l *Label) SetText(text string) {
	l.text.set(l.res, text)
	size := l.text.size()
	l.SetSize(size.X, size.Y)
}

// Text returns the label text.
func (l *Label) Text() string {
	return l.text.text
}

// Draw implements compas.Node.
func (l *Label) Draw(dc *compas.DrawContext, origin compas.Vec2) {
	abs := origin.Add(l.Pos())
	drawText(dc, l.res, l.text.layout, l.text.text, abs, l.Color())
}
