package compas

// CharGlyphInfo holds the metrics of a single character as reported by a
// FontMetrics provider: the horizontal advance and the line height.
type CharGlyphInfo struct {
	Width  float32
	Height float32
}

// FontMetrics is the interface for per-character font metrics.
// It is consumed by the layout engine and implemented outside this package
// (see the font subpackage), so tests can inject fixed-width mocks.
//
// Implementations must return a value for every rune; what is returned for
// runes the font does not map is up to the implementation.
type FontMetrics interface {
	// CharInfo returns the advance width and line height of r.
	CharInfo(r rune) CharGlyphInfo

	// ZeroCharHeight returns the height of the '0' glyph. Widgets use it as
	// the caret height.
	ZeroCharHeight() float32
}

// GlyphQuad represents a single character's rendering quad.
// Used for passing glyph data to AddGlyphQuads.
type GlyphQuad struct {
	X0, Y0 float32 // Screen coordinates (top-left)
	X1, Y1 float32 // Screen coordinates (bottom-right)
	U0, V0 float32 // Texture coordinates (top-left)
	U1, V1 float32 // Texture coordinates (bottom-right)
}

// GlyphSource provides textured glyph quads for drawing text.
// A font atlas implements it.
type GlyphSource interface {
	// Quad returns the quad for r with its top-left corner at (x, y),
	// scaled by scale. ok is false for glyphs with no visible pixels.
	Quad(r rune, x, y float32, scale Vec2) (q GlyphQuad, ok bool)
}
