package compas_test

import (
	"testing"

	"github.com/go-theft-auto/compas"
)

func TestInputMouseClickedOnPressFrameOnly(t *testing.T) {
	in := compas.NewInputState()
	in.SetMouseButton(compas.MouseButtonLeft, true)

	if !in.MouseClicked(compas.MouseButtonLeft) {
		t.Error("expected click on press frame")
	}

	in.Reset()
	in.SetMouseButton(compas.MouseButtonLeft, true)
	if in.MouseClicked(compas.MouseButtonLeft) {
		t.Error("held button should not click again")
	}
	if !in.MouseDown(compas.MouseButtonLeft) {
		t.Error("button should still be down")
	}
}

func TestInputMouseScaleAppliedOnce(t *testing.T) {
	in := compas.NewInputState()
	in.SetMouseScale(2, 3)
	in.SetMousePos(100, 50)

	// A cursor that does not move reports no new position.
	for i := 0; i < 3; i++ {
		in.Reset()
		if in.MouseX != 200 || in.MouseY != 150 {
			t.Fatalf("frame %d: mouse = (%v, %v), want (200, 150)", i, in.MouseX, in.MouseY)
		}
	}

	in.SetMouseScale(0, 0)
	in.SetMousePos(7, 9)
	if in.MouseX != 7 || in.MouseY != 9 {
		t.Errorf("zero scale: mouse = (%v, %v), want (7, 9)", in.MouseX, in.MouseY)
	}
}

func TestInputKeyRepeat(t *testing.T) {
	in := compas.NewInputState()
	in.SetKey(compas.KeyLeft, true)
	if !in.KeyRepeated(compas.KeyLeft) {
		t.Fatal("initial press should trigger")
	}

	frames := []struct {
		dt   float32
		want bool
	}{
		{0.1, false},   // 0.100 held, inside the delay
		{0.35, true},   // 0.450 held, first repeat
		{0.005, false}, // 0.455 held, same interval
		{0.02, true},   // 0.475 held, next interval
	}
	for i, f := range frames {
		in.Reset()
		// A platform key-repeat event must not restart the hold timer.
		in.SetKey(compas.KeyLeft, true)
		in.UpdateKeyRepeat(f.dt)
		if got := in.KeyRepeated(compas.KeyLeft); got != f.want {
			t.Errorf("frame %d: KeyRepeated = %v, want %v", i, got, f.want)
		}
		if in.KeyPressed(compas.KeyLeft) {
			t.Errorf("frame %d: held key reported as pressed", i)
		}
	}
}

func TestInputKeyReleaseResetsRepeat(t *testing.T) {
	in := compas.NewInputState()
	in.SetKey(compas.KeyRight, true)
	in.Reset()
	in.UpdateKeyRepeat(0.45)

	in.SetKey(compas.KeyRight, false)
	in.Reset()
	in.SetKey(compas.KeyRight, true)
	in.Reset()
	in.UpdateKeyRepeat(0.1)

	if in.KeyRepeated(compas.KeyRight) {
		t.Error("repeat should restart after release")
	}
}

func TestInputIgnoresOutOfRange(t *testing.T) {
	in := compas.NewInputState()
	in.SetKey(compas.KeyCount, true)
	in.SetMouseButton(compas.MouseButtonCount, true)

	if in.KeyDown(compas.KeyCount) || in.MouseDown(compas.MouseButtonCount) {
		t.Error("out of range input should be ignored")
	}
}

func TestInputChars(t *testing.T) {
	in := compas.NewInputState()
	in.AddInputChar('h')
	in.AddInputChar('i')
	if !in.HasInputChars() || string(in.InputChars) != "hi" {
		t.Errorf("InputChars = %q", string(in.InputChars))
	}
	in.Reset()
	if in.HasInputChars() {
		t.Error("Reset should clear typed characters")
	}
}

func TestKeyName(t *testing.T) {
	if got := compas.KeyName(compas.KeyEnter); got != "Enter" {
		t.Errorf("KeyName(KeyEnter) = %q", got)
	}
}
