package compas

import "strings"

// TextEditor is the text-input core of a text field: it owns the logical
// string, its Layout and a Caret, and maps pointer and key input to caret
// moves and insertions. It draws nothing; a widget owns one and renders
// from Layout and Caret.
type TextEditor struct {
	metrics    FontMetrics
	config     TextFieldConfig
	text       []rune
	layout     Layout
	caret      *Caret
	caretIndex int
}

// NewTextEditor creates an empty editor measuring text with metrics.
func NewTextEditor(metrics FontMetrics, config TextFieldConfig) *TextEditor {
	e := &TextEditor{
		metrics: metrics,
		config:  config,
		caret:   NewCaret(config.BlinkPeriod),
	}
	e.relayout()
	e.placeCaret()
	return e
}

// Text returns the logical string.
func (e *TextEditor) Text() string {
	return string(e.text)
}

// Len returns the length of the text in runes.
func (e *TextEditor) Len() int {
	return len(e.text)
}

// Layout returns the current layout. It is replaced, never modified, when
// the text or configuration changes.
func (e *TextEditor) Layout() Layout {
	return e.layout
}

// Caret returns the editor's caret. Callers may read it and call Tick;
// positioning goes through the editor.
func (e *TextEditor) Caret() *Caret {
	return e.caret
}

// CaretIndex returns the rune index the caret sits before.
func (e *TextEditor) CaretIndex() int {
	return e.caretIndex
}

// CaretHeight returns the height the caret should be drawn with.
func (e *TextEditor) CaretHeight() float32 {
	return e.metrics.ZeroCharHeight()
}

// Config returns the editor configuration.
func (e *TextEditor) Config() TextFieldConfig {
	return e.config
}

// TextOrigin returns the offset of the text block inside the widget.
func (e *TextEditor) TextOrigin() Vec2 {
	return Vec2{X: e.config.Padding, Y: e.config.Padding}
}

// SetText replaces the text, recomputes the layout and clamps the caret.
func (e *TextEditor) SetText(text string) {
	if !e.config.Multiline {
		text = stripNewlines(text)
	}
	e.text = []rune(text)
	e.relayout()
	e.SetCaretIndex(e.caretIndex)
}

// SetLineSpacing changes the line spacing and recomputes the layout.
func (e *TextEditor) SetLineSpacing(spacing float32) {
	e.config.LineSpacing = spacing
	e.relayout()
	e.placeCaret()
}

// SetCaretIndex moves the caret before the rune at index, clamped to
// [0, Len()].
func (e *TextEditor) SetCaretIndex(index int) {
	e.caretIndex = e.clampIndex(index)
	e.placeCaret()
}

// InsertAt inserts text before the rune at index and moves the caret to just
// after the inserted text. The index is clamped to [0, Len()]. Empty text is
// a no-op; single-line editors drop newlines from text first. It reports
// whether the string changed.
func (e *TextEditor) InsertAt(index int, text string) bool {
	if !e.config.Multiline {
		text = stripNewlines(text)
	}
	if text == "" {
		return false
	}

	index = e.clampIndex(index)
	ins := []rune(text)

	next := make([]rune, 0, len(e.text)+len(ins))
	next = append(next, e.text[:index]...)
	next = append(next, ins...)
	next = append(next, e.text[index:]...)
	e.text = next

	e.relayout()
	e.SetCaretIndex(index + len(ins))

	logger.Debug("text inserted", "index", index, "runes", len(ins), "caret", e.caretIndex)
	return true
}

// PointerDown hit-tests a pointer-down against the layout. On a hit the
// caret moves before the struck character and the index is returned; on a
// miss the caret stays put and HitNone is returned.
func (e *TextEditor) PointerDown(ev PointerEvent) int {
	index := HitTest(e.layout, e.TextOrigin(), ev.DisplayScale(), ev.Pos())
	logger.Debug("text hit-test", "x", ev.X, "y", ev.Y, "index", index)
	if index < 0 {
		return HitNone
	}
	e.SetCaretIndex(index)
	return index
}

// KeyType inserts the typed fragment at the caret. It reports whether the
// text changed.
func (e *TextEditor) KeyType(ev KeyTypeEvent) bool {
	return e.InsertAt(e.caretIndex, ev.Text)
}

// KeyDown applies caret navigation keys. It reports whether the key was
// handled.
func (e *TextEditor) KeyDown(ev KeyEvent) bool {
	switch ev.Key {
	case KeyLeft:
		e.SetCaretIndex(e.caretIndex - 1)
	case KeyRight:
		e.SetCaretIndex(e.caretIndex + 1)
	case KeyHome:
		e.SetCaretIndex(0)
	case KeyEnd:
		e.SetCaretIndex(len(e.text))
	default:
		return false
	}
	return true
}

// Tick advances the caret blink by one frame.
func (e *TextEditor) Tick() {
	e.caret.Tick()
}

func (e *TextEditor) clampIndex(index int) int {
	if index < 0 {
		return 0
	}
	if index > len(e.text) {
		return len(e.text)
	}
	return index
}

func (e *TextEditor) relayout() {
	e.layout = ComputeLayout(string(e.text), e.metrics, e.config.LineSpacing)
}

// placeCaret moves the caret to the slot of caretIndex, offset by the text
// origin.
func (e *TextEditor) placeCaret() {
	pos := e.layout.PositionOf(e.caretIndex).Add(e.TextOrigin())
	e.caret.MoveTo(pos.X, pos.Y)
}

func stripNewlines(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}
	return strings.Map(func(r rune) rune {
		if r == '\r' || r == '\n' {
			return -1
		}
		return r
	}, s)
}
