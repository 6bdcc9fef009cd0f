package compas

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// Key represents a keyboard key.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyEnter
	KeyEscape
	KeyCount
)

// Key repeat timing constants
const (
	KeyRepeatDelay    float32 = 0.4  // Initial delay before repeat starts (seconds)
	KeyRepeatInterval float32 = 0.03 // Repeat interval once repeating (seconds)
)

// InputState holds input state for the current frame.
// This is typically populated by a backend from GLFW or similar.
type InputState struct {
	// Mouse position
	MouseX, MouseY float32
	mouseScale     Vec2

	// Mouse buttons - current frame state
	mouseDown    [MouseButtonCount]bool
	mouseClicked [MouseButtonCount]bool // True on the frame button was pressed

	// Keyboard - current frame state
	keyDown    [KeyCount]bool
	keyPressed [KeyCount]bool // True on the frame key was pressed

	// Key repeat tracking
	keyHoldTime [KeyCount]float32 // How long each key has been held
	repeatFired [KeyCount]bool    // True if a repeat triggered this frame

	// Text input (Unicode characters typed this frame)
	InputChars []rune
}

// NewInputState creates a new InputState.
func NewInputState() *InputState {
	return &InputState{
		InputChars: make([]rune, 0, 16),
	}
}

// Reset clears per-frame input state.
// Call this at the start of each frame before collecting input.
func (s *InputState) Reset() {
	for i := range s.mouseClicked {
		s.mouseClicked[i] = false
	}
	for i := range s.keyPressed {
		s.keyPressed[i] = false
		s.repeatFired[i] = false
	}
	s.InputChars = s.InputChars[:0]
}

// SetMouseScale sets the factor SetMousePos applies, for backends that
// report the cursor in window units on a framebuffer of a different size.
// Zero components count as 1.
func (s *InputState) SetMouseScale(x, y float32) {
	s.mouseScale = Vec2{X: x, Y: y}
}

// SetMousePos sets the mouse position from backend coordinates, scaled by
// the mouse scale.
func (s *InputState) SetMousePos(x, y float32) {
	if s.mouseScale.X != 0 {
		x *= s.mouseScale.X
	}
	if s.mouseScale.Y != 0 {
		y *= s.mouseScale.Y
	}
	s.MouseX = x
	s.MouseY = y
}

// SetMouseButton sets mouse button state.
func (s *InputState) SetMouseButton(button MouseButton, down bool) {
	if button < 0 || button >= MouseButtonCount {
		return
	}

	wasDown := s.mouseDown[button]
	s.mouseDown[button] = down

	if down && !wasDown {
		s.mouseClicked[button] = true
	}
}

// SetKey sets key state.
func (s *InputState) SetKey(key Key, down bool) {
	if key <= KeyNone || key >= KeyCount {
		return
	}

	wasDown := s.keyDown[key]
	s.keyDown[key] = down

	if down != wasDown {
		s.keyHoldTime[key] = 0 // Reset hold time on fresh press and on release
	}
	if down && !wasDown {
		s.keyPressed[key] = true
	}
}

// UpdateKeyRepeat updates key hold times for repeat detection.
// Call this once per frame with the frame's delta time.
func (s *InputState) UpdateKeyRepeat(dt float32) {
	for key := Key(0); key < KeyCount; key++ {
		if !s.keyDown[key] {
			continue
		}
		prev := s.keyHoldTime[key]
		s.keyHoldTime[key] += dt
		if s.keyHoldTime[key] < KeyRepeatDelay {
			continue
		}
		prevCount := int((prev - KeyRepeatDelay) / KeyRepeatInterval)
		if prev < KeyRepeatDelay {
			prevCount = -1
		}
		if int((s.keyHoldTime[key]-KeyRepeatDelay)/KeyRepeatInterval) > prevCount {
			s.repeatFired[key] = true
		}
	}
}

// AddInputChar adds a typed character.
func (s *InputState) AddInputChar(ch rune) {
	s.InputChars = append(s.InputChars, ch)
}

// MouseDown returns true if a mouse button is currently held.
func (s *InputState) MouseDown(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseDown[button]
}

// MouseClicked returns true if a mouse button was just clicked (pressed this frame).
func (s *InputState) MouseClicked(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseClicked[button]
}

// KeyDown returns true if a key is currently held.
func (s *InputState) KeyDown(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyDown[key]
}

// KeyPressed returns true if a key was just pressed (pressed this frame).
func (s *InputState) KeyPressed(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyPressed[key]
}

// KeyRepeated returns true if a key should trigger this frame: on the
// initial press, then after KeyRepeatDelay, then every KeyRepeatInterval.
func (s *InputState) KeyRepeated(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyPressed[key] || s.repeatFired[key]
}

// HasInputChars returns true if there are typed characters this frame.
func (s *InputState) HasInputChars() bool {
	return len(s.InputChars) > 0
}

// KeyName returns a human-readable name for a key.
func KeyName(k Key) string {
	switch k {
	case KeyNone:
		return "--"
	case KeyTab:
		return "Tab"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyEnter:
		return "Enter"
	case KeyEscape:
		return "Esc"
	default:
		return "?"
	}
}
