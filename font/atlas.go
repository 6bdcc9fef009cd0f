package font

import (
	"image"
	"unicode"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/go-theft-auto/compas"
)

// atlasWidth is the fixed width of the atlas image in pixels.
const atlasWidth = 512

// atlasGlyph locates one rasterized glyph cell in the atlas.
type atlasGlyph struct {
	rect  image.Rectangle
	empty bool
}

// Atlas is an alpha-only image holding one cell per printable Latin-1 rune,
// with the baseline at the face ascent from the top of each cell. It
// implements compas.GlyphSource.
type Atlas struct {
	Image  *image.Alpha
	glyphs map[rune]atlasGlyph

	textureID uint32
}

// atlasRunes returns the runes rasterized into the atlas.
func atlasRunes() []rune {
	runes := make([]rune, 0, 192)
	for r := rune(0x20); r <= 0xFF; r++ {
		if unicode.IsPrint(r) {
			runes = append(runes, r)
		}
	}
	return runes
}

func newAtlas(f *Face) *Atlas {
	runes := atlasRunes()
	cellH := int(f.lineHeight)
	const pad = 1

	// First pass: assign cells row by row.
	glyphs := make(map[rune]atlasGlyph, len(runes))
	x, y := 0, 0
	for _, r := range runes {
		if !f.HasGlyph(r) {
			continue
		}
		adv, _ := f.face.GlyphAdvance(r)
		w := adv.Ceil()
		if w <= 0 {
			w = 1
		}
		if x+w+pad > atlasWidth {
			x = 0
			y += cellH + pad
		}
		glyphs[r] = atlasGlyph{
			rect:  image.Rect(x, y, x+w, y+cellH),
			empty: unicode.IsSpace(r),
		}
		x += w + pad
	}

	img := image.NewAlpha(image.Rect(0, 0, atlasWidth, y+cellH))
	d := &xfont.Drawer{
		Dst:  img,
		Src:  image.Opaque,
		Face: f.face,
	}
	for r, g := range glyphs {
		if g.empty {
			continue
		}
		d.Dot = fixed.Point26_6{
			X: fixed.I(g.rect.Min.X),
			Y: fixed.I(g.rect.Min.Y) + f.ascent,
		}
		d.DrawString(string(r))
	}

	compas.Logger().Debug("font atlas rasterized", "glyphs", len(glyphs), "height", img.Bounds().Dy())
	return &Atlas{Image: img, glyphs: glyphs}
}

// SetTextureID records the GPU texture the atlas was uploaded to.
func (a *Atlas) SetTextureID(id uint32) {
	a.textureID = id
}

// TextureID returns the GPU texture of the atlas, or 0 if not uploaded.
func (a *Atlas) TextureID() uint32 {
	return a.textureID
}

// Quad implements compas.GlyphSource. Runes missing from the atlas are
// drawn as '?'; whitespace has no quad.
func (a *Atlas) Quad(r rune, x, y float32, scale compas.Vec2) (compas.GlyphQuad, bool) {
	g, ok := a.glyphs[r]
	if !ok {
		g, ok = a.glyphs[fallbackRune]
	}
	if !ok || g.empty {
		return compas.GlyphQuad{}, false
	}

	b := a.Image.Bounds()
	tw, th := float32(b.Dx()), float32(b.Dy())
	w, h := float32(g.rect.Dx()), float32(g.rect.Dy())

	return compas.GlyphQuad{
		X0: x,
		Y0: y,
		X1: x + w*scale.X,
		Y1: y + h*scale.Y,
		U0: float32(g.rect.Min.X) / tw,
		V0: float32(g.rect.Min.Y) / th,
		U1: float32(g.rect.Max.X) / tw,
		V1: float32(g.rect.Max.Y) / th,
	}, true
}
