package compas_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-theft-auto/compas"
)

type recordingObserver struct {
	events []string
}

func (o *recordingObserver) ChildAdded(_ *compas.Container, _ compas.Node) {
	o.events = append(o.events, "add")
}

func (o *recordingObserver) ChildRemoved(_ *compas.Container, _ compas.Node) {
	o.events = append(o.events, "remove")
}

func TestContainer(t *testing.T) {
	var c compas.Container
	obs := &recordingObserver{}
	c.SetObserver(obs)

	a, b := newSpy(0, 0, 1, 1), newSpy(0, 0, 1, 1)
	c.AddChild(a)
	c.AddChild(b)
	c.AddChild(a) // moves a to the end

	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	if c.IndexOf(b) != 0 || c.IndexOf(a) != 1 {
		t.Errorf("order after re-add: a=%d b=%d", c.IndexOf(a), c.IndexOf(b))
	}

	if !c.RemoveChild(b) {
		t.Error("RemoveChild(b) = false")
	}
	if c.RemoveChild(b) {
		t.Error("second RemoveChild(b) = true")
	}
	if c.IndexOf(b) != -1 {
		t.Error("b still present")
	}

	want := []string{"add", "add", "add", "remove"}
	if diff := cmp.Diff(want, obs.events); diff != "" {
		t.Errorf("observer events mismatch (-want +got):\n%s", diff)
	}
}

func TestContainerIgnoresNil(t *testing.T) {
	var c compas.Container
	c.AddChild(nil)
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
}

func TestBox(t *testing.T) {
	var b compas.Box
	b.SetPos(1, 2)
	b.SetSize(30, 40)
	b.SetWidth(50)
	b.SetHeight(60)
	b.SetColor(compas.ColorRed)

	if want := (compas.Rect{X: 1, Y: 2, W: 50, H: 60}); b.Bounds() != want {
		t.Errorf("Bounds() = %+v, want %+v", b.Bounds(), want)
	}
	if b.Size() != (compas.Vec2{X: 50, Y: 60}) {
		t.Errorf("Size() = %+v", b.Size())
	}
	if b.Color() != compas.ColorRed {
		t.Errorf("Color() = %#x", b.Color())
	}
}

// gridGlyphs returns a unit quad for every rune except spaces.
type gridGlyphs struct {
	calls []rune
}

func (g *gridGlyphs) Quad(r rune, x, y float32, scale compas.Vec2) (compas.GlyphQuad, bool) {
	g.calls = append(g.calls, r)
	if r == ' ' {
		return compas.GlyphQuad{}, false
	}
	return compas.GlyphQuad{X0: x, Y0: y, X1: x + scale.X, Y1: y + scale.Y, U1: 1, V1: 1}, true
}

func TestDrawContextText(t *testing.T) {
	dl := compas.AcquireDrawList()
	defer compas.ReleaseDrawList(dl)

	dc := &compas.DrawContext{DrawList: dl, Scale: compas.Vec2{X: 2, Y: 2}}
	layout := compas.ComputeLayout("A \nB", abcMetrics, -8)
	glyphs := &gridGlyphs{}

	dc.Text(layout, "A \nB", compas.Vec2{X: 5, Y: 5}, glyphs, 7, compas.ColorWhite)

	if diff := cmp.Diff([]rune{'A', ' ', 'B'}, glyphs.calls); diff != "" {
		t.Errorf("glyph lookups mismatch (-want +got):\n%s", diff)
	}
	if len(dl.VtxBuffer) != 8 {
		t.Fatalf("expected 2 quads, got %d vertices", len(dl.VtxBuffer))
	}
	// 'B' is on the second line at y=12, so (5+0, 5+12) scaled by 2.
	if got := dl.VtxBuffer[4].Pos; got != [2]float32{10, 34} {
		t.Errorf("second quad at %v, want [10 34]", got)
	}
}
