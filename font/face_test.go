package font_test

import (
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/go-theft-auto/compas"
	"github.com/go-theft-auto/compas/font"
)

func newFace(t *testing.T) *font.Face {
	t.Helper()
	f, err := font.New(goregular.TTF, font.DefaultOptions())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func TestNewRejectsBadData(t *testing.T) {
	if _, err := font.New(nil, font.DefaultOptions()); !errors.Is(err, font.ErrNoFont) {
		t.Errorf("New(nil) error = %v, want ErrNoFont", err)
	}
	if _, err := font.New([]byte("not a font"), font.DefaultOptions()); err == nil {
		t.Error("New(garbage) should fail")
	}
}

func TestFaceCharInfo(t *testing.T) {
	f := newFace(t)

	nl := f.CharInfo('\n')
	if nl.Width != 0 {
		t.Errorf("newline width = %v, want 0", nl.Width)
	}

	w, i := f.CharInfo('W'), f.CharInfo('i')
	if w.Width <= i.Width {
		t.Errorf("'W' (%v) should be wider than 'i' (%v)", w.Width, i.Width)
	}
	if i.Width <= f.Options().SpacingX {
		t.Errorf("'i' width %v does not exceed spacing", i.Width)
	}

	for _, r := range "Wi\n0" {
		if got := f.CharInfo(r).Height; got != f.LineHeight() {
			t.Errorf("height of %q = %v, want %v", r, got, f.LineHeight())
		}
	}
	if f.ZeroCharHeight() != f.LineHeight() {
		t.Errorf("ZeroCharHeight() = %v, want %v", f.ZeroCharHeight(), f.LineHeight())
	}
}

func TestFaceSpacing(t *testing.T) {
	plain, err := font.New(goregular.TTF, font.Options{Size: 32})
	if err != nil {
		t.Fatal(err)
	}
	spaced, err := font.New(goregular.TTF, font.Options{Size: 32, SpacingX: 3, SpacingY: 4})
	if err != nil {
		t.Fatal(err)
	}

	if d := spaced.CharInfo('A').Width - plain.CharInfo('A').Width; d != 3 {
		t.Errorf("SpacingX added %v, want 3", d)
	}
	if d := spaced.LineHeight() - plain.LineHeight(); d != 4 {
		t.Errorf("SpacingY added %v, want 4", d)
	}
}

func TestFaceMissingRune(t *testing.T) {
	f := newFace(t)
	const missing = '\U0001F600'

	if !f.HasGlyph('A') {
		t.Error("HasGlyph('A') = false")
	}
	if f.HasGlyph(missing) {
		t.Error("HasGlyph(emoji) = true")
	}
	if got, want := f.CharInfo(missing), f.CharInfo('?'); got != want {
		t.Errorf("missing rune measured %+v, want '?' metrics %+v", got, want)
	}
}

func TestFaceLayout(t *testing.T) {
	f := newFace(t)
	l := compas.ComputeLayout("Hi\nyo", f, -8)

	if l.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", l.Len())
	}
	if got, want := l.Entries[3].Y, f.LineHeight()-8; got != want {
		t.Errorf("second line y = %v, want %v", got, want)
	}
	if got, want := l.Entries[1].X, f.CharInfo('H').Width; got != want {
		t.Errorf("'i' x = %v, want %v", got, want)
	}
}

func TestAtlasQuad(t *testing.T) {
	f := newFace(t)
	a := f.Atlas()
	if a != f.Atlas() {
		t.Error("Atlas() should be cached")
	}

	q, ok := a.Quad('A', 10, 20, compas.Vec2{X: 1, Y: 1})
	if !ok {
		t.Fatal("no quad for 'A'")
	}
	if q.X0 != 10 || q.Y0 != 20 || q.X1 <= q.X0 || q.Y1 <= q.Y0 {
		t.Errorf("bad quad geometry %+v", q)
	}
	for _, v := range []float32{q.U0, q.V0, q.U1, q.V1} {
		if v < 0 || v > 1 {
			t.Errorf("texture coordinate %v out of range", v)
		}
	}

	big, _ := a.Quad('A', 0, 0, compas.Vec2{X: 2, Y: 2})
	if big.X1 != 2*(q.X1-q.X0) {
		t.Errorf("scaled quad width %v, want %v", big.X1, 2*(q.X1-q.X0))
	}

	if _, ok := a.Quad(' ', 0, 0, compas.Vec2{X: 1, Y: 1}); ok {
		t.Error("space should have no quad")
	}
	if _, ok := a.Quad('\U0001F600', 0, 0, compas.Vec2{X: 1, Y: 1}); !ok {
		t.Error("missing rune should fall back to '?'")
	}
}

func TestAtlasHasInk(t *testing.T) {
	a := newFace(t).Atlas()

	ink := false
	for _, p := range a.Image.Pix {
		if p != 0 {
			ink = true
			break
		}
	}
	if !ink {
		t.Error("atlas image is blank")
	}
}

func TestAtlasTextureID(t *testing.T) {
	a := newFace(t).Atlas()
	if a.TextureID() != 0 {
		t.Errorf("new atlas has texture %d", a.TextureID())
	}
	a.SetTextureID(9)
	if a.TextureID() != 9 {
		t.Errorf("TextureID() = %d, want 9", a.TextureID())
	}
}
