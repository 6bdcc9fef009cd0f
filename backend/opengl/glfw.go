package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/compas"
)

// GLFWInputAdapter feeds a compas.InputState from GLFW window callbacks.
type GLFWInputAdapter struct {
	window   *glfw.Window
	input    *compas.InputState
	lastTime float64
	onResize func(width, height int)
}

// NewGLFWInputAdapter installs input callbacks on window.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window:   window,
		input:    compas.NewInputState(),
		lastTime: glfw.GetTime(),
	}

	window.SetKeyCallback(adapter.keyCallback)
	window.SetCharCallback(adapter.charCallback)
	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)
	window.SetFramebufferSizeCallback(adapter.framebufferSizeCallback)

	return adapter
}

// OnResize registers fn to run when the framebuffer size changes, typically
// compas.Stage.Resize.
func (a *GLFWInputAdapter) OnResize(fn func(width, height int)) {
	a.onResize = fn
}

// SetCursorScale sets the ratio of framebuffer pixels to window units.
// Cursor positions are reported to the input state in pixels.
func (a *GLFWInputAdapter) SetCursorScale(x, y float32) {
	a.input.SetMouseScale(x, y)
}

// BeginFrame clears the previous frame's edges and advances key repeat.
// Call it before glfw.PollEvents.
func (a *GLFWInputAdapter) BeginFrame() {
	now := glfw.GetTime()
	dt := float32(now - a.lastTime)
	a.lastTime = now

	a.input.Reset()
	a.input.UpdateKeyRepeat(dt)
}

// Input returns the input state. It is valid until the next BeginFrame.
func (a *GLFWInputAdapter) Input() *compas.InputState {
	return a.input
}

func (a *GLFWInputAdapter) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	k := mapKey(key)
	if k == compas.KeyNone {
		return
	}

	switch action {
	case glfw.Press, glfw.Repeat:
		a.input.SetKey(k, true)
	case glfw.Release:
		a.input.SetKey(k, false)
	}
}

func (a *GLFWInputAdapter) charCallback(_ *glfw.Window, char rune) {
	a.input.AddInputChar(char)
}

func (a *GLFWInputAdapter) mouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	b, ok := mapMouseButton(button)
	if !ok {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetMouseButton(b, true)
	case glfw.Release:
		a.input.SetMouseButton(b, false)
	}
}

func (a *GLFWInputAdapter) cursorPosCallback(_ *glfw.Window, x, y float64) {
	a.input.SetMousePos(float32(x), float32(y))
}

func (a *GLFWInputAdapter) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	if a.onResize != nil {
		a.onResize(width, height)
	}
}

func mapKey(key glfw.Key) compas.Key {
	switch key {
	case glfw.KeyTab:
		return compas.KeyTab
	case glfw.KeyLeft:
		return compas.KeyLeft
	case glfw.KeyRight:
		return compas.KeyRight
	case glfw.KeyUp:
		return compas.KeyUp
	case glfw.KeyDown:
		return compas.KeyDown
	case glfw.KeyHome:
		return compas.KeyHome
	case glfw.KeyEnd:
		return compas.KeyEnd
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return compas.KeyEnter
	case glfw.KeyEscape:
		return compas.KeyEscape
	default:
		return compas.KeyNone
	}
}

func mapMouseButton(button glfw.MouseButton) (compas.MouseButton, bool) {
	switch button {
	case glfw.MouseButtonLeft:
		return compas.MouseButtonLeft, true
	case glfw.MouseButtonRight:
		return compas.MouseButtonRight, true
	case glfw.MouseButtonMiddle:
		return compas.MouseButtonMiddle, true
	default:
		return 0, false
	}
}
