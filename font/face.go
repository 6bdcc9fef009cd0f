// Package font provides the concrete font metrics and glyph atlas used by the
// standard widgets. Faces are parsed with golang.org/x/image/font/opentype.
package font

import (
	"errors"
	"fmt"
	"math"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/go-theft-auto/compas"
)

// ErrNoFont is returned when a face is created from empty font data.
var ErrNoFont = errors.New("font: no font data")

// fallbackRune is measured and drawn in place of runes the font lacks.
const fallbackRune = '?'

// Options configures a Face.
type Options struct {
	// Size is the font size in pixels per em.
	Size float64 `toml:"size" yaml:"size"`

	// SpacingX is added to every glyph advance.
	SpacingX float32 `toml:"spacing_x" yaml:"spacing_x"`

	// SpacingY is added to the line height.
	SpacingY float32 `toml:"spacing_y" yaml:"spacing_y"`
}

// DefaultOptions returns the options of the standard font.
func DefaultOptions() Options {
	return Options{
		Size:     32,
		SpacingX: 2,
		SpacingY: 2,
	}
}

// Face is a sized font face. It implements compas.FontMetrics.
// A Face is not safe for concurrent use.
type Face struct {
	font       *sfnt.Font
	buf        sfnt.Buffer
	face       xfont.Face
	opts       Options
	ascent     fixed.Int26_6
	lineHeight float32
	atlas      *Atlas
}

// New parses TrueType/OpenType data and creates a face with opts.
func New(data []byte, opts Options) (*Face, error) {
	if len(data) == 0 {
		return nil, ErrNoFont
	}
	if opts.Size <= 0 {
		opts.Size = DefaultOptions().Size
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font: failed to parse font: %w", err)
	}

	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    opts.Size,
		DPI:     72,
		Hinting: xfont.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("font: failed to create face: %w", err)
	}

	m := face.Metrics()
	f := &Face{
		font:       parsed,
		face:       face,
		opts:       opts,
		ascent:     m.Ascent,
		lineHeight: float32(m.Height.Ceil()),
	}

	compas.Logger().Debug("font face created", "size", opts.Size, "lineHeight", f.lineHeight)
	return f, nil
}

// Options returns the options the face was created with.
func (f *Face) Options() Options {
	return f.opts
}

// HasGlyph returns true if the font maps r to a glyph other than the
// missing-glyph box.
func (f *Face) HasGlyph(r rune) bool {
	idx, err := f.font.GlyphIndex(&f.buf, r)
	return err == nil && idx != 0
}

// LineHeight returns the line height including SpacingY.
func (f *Face) LineHeight() float32 {
	return f.lineHeight + f.opts.SpacingY
}

// CharInfo returns the advance and line height of r. Newlines have no
// advance; runes missing from the font are measured as '?'.
func (f *Face) CharInfo(r rune) compas.CharGlyphInfo {
	height := f.LineHeight()
	if r == '\n' {
		return compas.CharGlyphInfo{Width: 0, Height: height}
	}
	return compas.CharGlyphInfo{Width: f.advance(r), Height: height}
}

// ZeroCharHeight returns the height of the '0' glyph cell.
func (f *Face) ZeroCharHeight() float32 {
	return f.CharInfo('0').Height
}

// Atlas returns the face's glyph atlas, rasterizing it on first use.
func (f *Face) Atlas() *Atlas {
	if f.atlas == nil {
		f.atlas = newAtlas(f)
	}
	return f.atlas
}

// Close releases the underlying face.
func (f *Face) Close() error {
	return f.face.Close()
}

func (f *Face) advance(r rune) float32 {
	if !f.HasGlyph(r) {
		r = fallbackRune
	}
	adv, _ := f.face.GlyphAdvance(r)
	return float32(math.Round(float64(adv)/64)) + f.opts.SpacingX
}
