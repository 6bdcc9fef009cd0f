package compas_test

import (
	"testing"

	"github.com/go-theft-auto/compas"
)

func TestCaretBlink(t *testing.T) {
	c := compas.NewCaret(compas.DefaultBlinkPeriod)

	for tick := 0; tick < 40; tick++ {
		if want := tick >= 20; c.Visible() != want {
			t.Fatalf("after %d ticks: Visible() = %v, want %v", tick, c.Visible(), want)
		}
		c.Tick()
	}
	if c.Visible() {
		t.Error("caret should be hidden again after a full period")
	}
}

func TestCaretAlpha(t *testing.T) {
	c := compas.NewCaret(4)
	if c.Alpha() != 0 {
		t.Errorf("hidden caret alpha = %v, want 0", c.Alpha())
	}
	c.Tick()
	c.Tick()
	if c.Alpha() != 1 {
		t.Errorf("visible caret alpha = %v, want 1", c.Alpha())
	}
}

func TestCaretMoveKeepsPhase(t *testing.T) {
	c := compas.NewCaret(compas.DefaultBlinkPeriod)
	for i := 0; i < 25; i++ {
		c.Tick()
	}

	c.MoveTo(30, 40)
	if !c.Visible() {
		t.Error("MoveTo reset the blink phase")
	}
	if got := c.Pos(); got != (compas.Vec2{X: 30, Y: 40}) {
		t.Errorf("Pos() = %+v", got)
	}

	for i := 0; i < 15; i++ {
		c.Tick()
	}
	if c.Visible() {
		t.Error("expected caret hidden after wrapping")
	}
}

func TestNewCaretDefaultPeriod(t *testing.T) {
	for _, p := range []int{-1, 0, 1} {
		if got := compas.NewCaret(p).Period(); got != compas.DefaultBlinkPeriod {
			t.Errorf("NewCaret(%d).Period() = %d, want %d", p, got, compas.DefaultBlinkPeriod)
		}
	}
}
