package standard

import "github.com/go-theft-auto/compas"

// staticText is a laid out, non-editable string.
type staticText struct {
	text   string
	layout compas.Layout
}

func (t *staticText) set(res *resources, text string) {
	t.text = text
	t.layout = compas.ComputeLayout(text, res.metrics, res.theme.TextField.LineSpacing)
}

func (t *staticText) size() compas.Vec2 {
	return t.layout.Size()
}

// drawText draws a laid out string at the unscaled absolute position origin.
// Nothing is drawn when the factory has no glyph atlas.
func drawText(dc *compas.DrawContext, res *resources, layout compas.Layout, text string, origin compas.Vec2, color uint32) {
	if res.glyphs == nil {
		return
	}
	dc.Text(layout, text, origin, res.glyphs, res.glyphs.TextureID(), color)
}
