package compas

// DefaultBlinkPeriod is the number of frames in one caret blink cycle.
const DefaultBlinkPeriod = 40

// Caret is a blinking insertion-point indicator.
//
// The blink phase is driven by a frame counter: Tick is called once per
// rendered frame and the caret is hidden for the first half of each period
// and visible for the second. Blink speed therefore follows the frame rate.
// Position changes never reset the phase.
type Caret struct {
	pos     Vec2
	counter int
	period  int
}

// NewCaret creates a hidden caret at the origin. A period below 2 selects
// DefaultBlinkPeriod.
func NewCaret(period int) *Caret {
	if period < 2 {
		period = DefaultBlinkPeriod
	}
	return &Caret{period: period}
}

// Tick advances the blink counter by one frame, wrapping at the period.
func (c *Caret) Tick() {
	c.counter++
	if c.counter >= c.period {
		c.counter = 0
	}
}

// MoveTo sets the caret's drawn position.
func (c *Caret) MoveTo(x, y float32) {
	c.pos = Vec2{X: x, Y: y}
}

// Pos returns the caret's drawn position.
func (c *Caret) Pos() Vec2 {
	return c.pos
}

// Visible reports whether the caret is in the visible half of its period.
func (c *Caret) Visible() bool {
	return c.counter >= c.period/2
}

// Alpha returns the caret's draw alpha: 0 while hidden, 1 while visible.
// There is no fade between the two.
func (c *Caret) Alpha() float32 {
	if c.Visible() {
		return 1
	}
	return 0
}

// Period returns the blink period in frames.
func (c *Caret) Period() int {
	return c.period
}
