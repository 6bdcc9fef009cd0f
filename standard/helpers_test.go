package standard_test

import (
	"testing"

	"github.com/go-theft-auto/compas"
	"github.com/go-theft-auto/compas/standard"
)

// monoMetrics measures every rune as 10x20, newlines as zero width.
type monoMetrics struct{}

func (monoMetrics) CharInfo(r rune) compas.CharGlyphInfo {
	if r == '\n' {
		return compas.CharGlyphInfo{Width: 0, Height: 20}
	}
	return compas.CharGlyphInfo{Width: 10, Height: 20}
}

func (monoMetrics) ZeroCharHeight() float32 { return 20 }

func newFactory(t *testing.T, opts ...standard.FactoryOption) *standard.Factory {
	t.Helper()
	opts = append([]standard.FactoryOption{standard.WithMetrics(monoMetrics{})}, opts...)
	f, err := standard.NewFactory(opts...)
	if err != nil {
		t.Fatalf("NewFactory() error = %v", err)
	}
	return f
}

type nopRenderer struct{}

func (nopRenderer) Render(*compas.DrawList) error { return nil }
func (nopRenderer) Resize(int, int) {}

// drawVertices draws n on its own and returns the vertex count.
func drawVertices(n compas.Node) int {
	dl := compas.AcquireDrawList()
	defer compas.ReleaseDrawList(dl)
	n.Draw(&compas.DrawContext{DrawList: dl, Scale: compas.Vec2{X: 1, Y: 1}}, compas.Vec2{})
	return len(dl.VtxBuffer)
}
