package compas_test

import (
	"testing"

	"github.com/go-theft-auto/compas"
)

func newEditor(t *testing.T, text string) *compas.TextEditor {
	t.Helper()
	e := compas.NewTextEditor(abcMetrics, compas.DefaultTextFieldConfig())
	e.SetText(text)
	return e
}

func TestTextEditorInsertAt(t *testing.T) {
	tests := []struct {
		name      string
		initial   string
		index     int
		insert    string
		wantText  string
		wantCaret int
	}{
		{"empty", "", 0, "AB", "AB", 2},
		{"middle", "AC", 1, "B", "ABC", 2},
		{"end", "AB", 2, "C", "ABC", 3},
		{"past end clamps", "AB", 99, "C", "ABC", 3},
		{"negative clamps", "AB", -3, "C", "CAB", 1},
		{"multi rune", "ö", 1, "äü", "öäü", 3},
		{"newline kept", "AB", 1, "\n", "A\nB", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEditor(t, tt.initial)
			if !e.InsertAt(tt.index, tt.insert) {
				t.Fatal("InsertAt reported no change")
			}
			if e.Text() != tt.wantText {
				t.Errorf("Text() = %q, want %q", e.Text(), tt.wantText)
			}
			if e.CaretIndex() != tt.wantCaret {
				t.Errorf("CaretIndex() = %d, want %d", e.CaretIndex(), tt.wantCaret)
			}
			if e.Layout().Len() != e.Len() {
				t.Errorf("layout has %d entries for %d runes", e.Layout().Len(), e.Len())
			}
		})
	}
}

func TestTextEditorInsertEmptyIsNoop(t *testing.T) {
	e := newEditor(t, "AB")
	e.SetCaretIndex(1)

	if e.InsertAt(0, "") {
		t.Error("empty insert reported a change")
	}
	if e.Text() != "AB" || e.CaretIndex() != 1 {
		t.Errorf("state changed: text %q caret %d", e.Text(), e.CaretIndex())
	}
}

func TestTextEditorSingleLine(t *testing.T) {
	cfg := compas.DefaultTextFieldConfig()
	cfg.Multiline = false
	e := compas.NewTextEditor(abcMetrics, cfg)

	e.SetText("A\nB")
	if e.Text() != "AB" {
		t.Errorf("SetText kept newline: %q", e.Text())
	}

	e.InsertAt(1, "\r\nC\n")
	if e.Text() != "ACB" {
		t.Errorf("InsertAt kept newline: %q", e.Text())
	}
	if e.CaretIndex() != 2 {
		t.Errorf("CaretIndex() = %d, want 2", e.CaretIndex())
	}

	if e.InsertAt(0, "\n") {
		t.Error("newline-only insert reported a change")
	}
}

func TestTextEditorCaretPosition(t *testing.T) {
	e := newEditor(t, "")
	e.InsertAt(0, "AB")

	// End of "AB" is x=22, plus padding 5 on both axes.
	if got, want := e.Caret().Pos(), (compas.Vec2{X: 27, Y: 5}); got != want {
		t.Errorf("caret at %+v, want %+v", got, want)
	}

	e.InsertAt(2, "\nC")
	if got, want := e.Caret().Pos(), (compas.Vec2{X: 13, Y: 17}); got != want {
		t.Errorf("caret at %+v, want %+v", got, want)
	}
}

func TestTextEditorPointerDown(t *testing.T) {
	e := newEditor(t, "AB\nC")
	e.SetCaretIndex(4)

	// Text origin is (5, 5): 'B' spans x 15..27.
	if got := e.PointerDown(compas.PointerEvent{X: 20, Y: 10}); got != 1 {
		t.Fatalf("PointerDown = %d, want 1", got)
	}
	if e.CaretIndex() != 1 {
		t.Errorf("CaretIndex() = %d, want 1", e.CaretIndex())
	}
	if got, want := e.Caret().Pos(), (compas.Vec2{X: 15, Y: 5}); got != want {
		t.Errorf("caret at %+v, want %+v", got, want)
	}

	if got := e.PointerDown(compas.PointerEvent{X: 500, Y: 500}); got != compas.HitNone {
		t.Fatalf("PointerDown miss = %d, want HitNone", got)
	}
	if e.CaretIndex() != 1 {
		t.Errorf("miss moved caret to %d", e.CaretIndex())
	}
}

func TestTextEditorPointerDownScaled(t *testing.T) {
	e := newEditor(t, "AB")

	ev := compas.PointerEvent{X: 40, Y: 20, Scale: compas.Vec2{X: 2, Y: 2}}
	if got := e.PointerDown(ev); got != 1 {
		t.Errorf("PointerDown = %d, want 1", got)
	}
}

func TestTextEditorPointerDownKeepsBlink(t *testing.T) {
	e := newEditor(t, "AB")
	for i := 0; i < 25; i++ {
		e.Tick()
	}
	e.PointerDown(compas.PointerEvent{X: 6, Y: 6})
	if !e.Caret().Visible() {
		t.Error("pointer-down reset the caret blink")
	}
}

func TestTextEditorKeyType(t *testing.T) {
	e := newEditor(t, "AB\nC")
	e.PointerDown(compas.PointerEvent{X: 20, Y: 10})

	if !e.KeyType(compas.KeyTypeEvent{Text: "x"}) {
		t.Fatal("KeyType reported no change")
	}
	if e.Text() != "AxB\nC" {
		t.Errorf("Text() = %q", e.Text())
	}
	if e.CaretIndex() != 2 {
		t.Errorf("CaretIndex() = %d, want 2", e.CaretIndex())
	}
}

func TestTextEditorKeyDown(t *testing.T) {
	e := newEditor(t, "ABC")
	e.SetCaretIndex(1)

	steps := []struct {
		key     compas.Key
		handled bool
		want    int
	}{
		{compas.KeyRight, true, 2},
		{compas.KeyRight, true, 3},
		{compas.KeyRight, true, 3},
		{compas.KeyHome, true, 0},
		{compas.KeyLeft, true, 0},
		{compas.KeyEnd, true, 3},
		{compas.KeyLeft, true, 2},
		{compas.KeyUp, false, 2},
	}
	for i, s := range steps {
		if got := e.KeyDown(compas.KeyEvent{Key: s.key}); got != s.handled {
			t.Errorf("step %d: KeyDown(%s) handled = %v, want %v", i, compas.KeyName(s.key), got, s.handled)
		}
		if e.CaretIndex() != s.want {
			t.Errorf("step %d: CaretIndex() = %d, want %d", i, e.CaretIndex(), s.want)
		}
	}
}

func TestTextEditorSetTextClampsCaret(t *testing.T) {
	e := newEditor(t, "ABCDE")
	e.SetCaretIndex(5)
	e.SetText("AB")
	if e.CaretIndex() != 2 {
		t.Errorf("CaretIndex() = %d, want 2", e.CaretIndex())
	}
}

func TestTextEditorSetLineSpacing(t *testing.T) {
	e := newEditor(t, "A\nB")
	e.SetCaretIndex(2)
	e.SetLineSpacing(0)

	if y := e.Layout().Entries[2].Y; y != 20 {
		t.Errorf("second line y = %v, want 20", y)
	}
	if got := e.Caret().Pos().Y; got != 25 {
		t.Errorf("caret y = %v, want 25", got)
	}
}
