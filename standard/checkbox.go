package standard

import "github.com/go-theft-auto/compas"

// checkboxGap separates the box from its label.
const checkboxGap = 8

// Checkbox is a square toggle with a label to its right. Its color is the
// color of the check mark.
type Checkbox struct {
	compas.Box
	res      *resources
	label    staticText
	checked  bool
	onChange []func(c compas.Checkbox, checked bool)
}

func newCheckbox(res *resources) *Checkbox {
	c := &Checkbox{res: res}
	c.SetColor(res.theme.Style.CheckColor)
	c.fit()
	return c
}

// SetText sets the label and resizes the checkbox to fit it.
func (c *Checkbox) SetText(text string) {
	c.label.set(c.res, text)
	c.fit()
}

// Text returns the label.
func (c *Checkbox) Text() string {
	return c.label.text
}

// SetChecked sets the state without notifying listeners.
func (c *Checkbox) SetChecked(checked bool) {
	c.checked = checked
}

// Checked returns the state.
func (c *Checkbox) Checked() bool {
	return c.checked
}

// OnChange registers fn to run after every toggle.
func (c *Checkbox) OnChange(fn func(c compas.Checkbox, checked bool)) {
	c.onChange = append(c.onChange, fn)
}

// PointerDown implements compas.PointerTarget. Any click inside the
// checkbox, label included, toggles it.
func (c *Checkbox) PointerDown(compas.PointerEvent) {
	c.checked = !c.checked
	for _, fn := range c.onChange {
		fn(c, c.checked)
	}
}

// Draw implements compas.Node.
func (c *Checkbox) Draw(dc *compas.DrawContext, origin compas.Vec2) {
	style := c.res.theme.Style
	abs := origin.Add(c.Pos())
	side := c.res.theme.CheckboxSize

	box := compas.Rect{X: abs.X, Y: abs.Y, W: side, H: side}
	dc.Rect(box, style.InputBgColor)
	dc.RectOutline(box, style.InputBorderColor, style.BorderSize)
	if c.checked {
		inset := side / 4
		dc.Rect(compas.Rect{X: box.X + inset, Y: box.Y + inset, W: side - 2*inset, H: side - 2*inset}, c.Color())
	}

	textPos := compas.Vec2{X: abs.X + side + checkboxGap, Y: abs.Y + (side-c.label.size().Y)/2}
	drawText(dc, c.res, c.label.layout, c.label.text, textPos, style.TextColor)
}

// fit sizes the checkbox to cover the box and the label.
func (c *Checkbox) fit() {
	side := c.res.theme.CheckboxSize
	size := c.label.size()
	w := side
	if size.X > 0 {
		w += checkboxGap + size.X
	}
	h := side
	if size.Y > h {
		h = size.Y
	}
	c.SetSize(w, h)
}
