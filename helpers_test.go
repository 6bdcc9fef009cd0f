package compas_test

import "github.com/go-theft-auto/compas"

// fixedMetrics reports per-rune widths from a table, defaultWidth for
// anything else, and the same height for every rune.
type fixedMetrics struct {
	widths       map[rune]float32
	defaultWidth float32
	height       float32
}

func (m fixedMetrics) CharInfo(r rune) compas.CharGlyphInfo {
	w, ok := m.widths[r]
	if !ok {
		w = m.defaultWidth
	}
	return compas.CharGlyphInfo{Width: w, Height: m.height}
}

func (m fixedMetrics) ZeroCharHeight() float32 {
	return m.height
}

// abcMetrics is A=10, B=12, C=8, others 10, every rune 20 tall.
var abcMetrics = fixedMetrics{
	widths:       map[rune]float32{'A': 10, 'B': 12, 'C': 8},
	defaultWidth: 10,
	height:       20,
}

// mockRenderer is a test renderer that doesn't render anything.
type mockRenderer struct {
	renderCalls int
	lastCmds    int
	err         error
}

func (m *mockRenderer) Render(dl *compas.DrawList) error {
	m.renderCalls++
	m.lastCmds = len(dl.CmdBuffer)
	return m.err
}

func (m *mockRenderer) Resize(width, height int) {}
