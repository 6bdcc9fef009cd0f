package standard

import "github.com/go-theft-auto/compas"

// pressedFrames is how long a button shows its active color after a click.
const pressedFrames = 6

// Button is a clickable box with a centered label.
type Button struct {
	compas.Box
	res     *resources
	label   staticText
	onClick []func(b compas.Button)
	pressed int
}

func newButton(res *resources) *Button {
	b := &Button{res: res}
	b.SetSize(res.theme.ButtonSize.Width, res.theme.ButtonSize.Height)
	b.SetColor(res.theme.Style.ButtonColor)
	return b
}

// SetText sets the button label.
func (b *Button) SetText(text string) {
	b.label.set(b.res, text)
}

// Text returns the button label.
func (b *Button) Text() string {
	return b.label.text
}

// OnClick registers fn to run on every click.
func (b *Button) OnClick(fn func(b compas.Button)) {
	b.onClick = append(b.onClick, fn)
}

// Pressed reports whether the button is showing its click feedback.
func (b *Button) Pressed() bool {
	return b.pressed > 0
}

// PointerDown implements compas.PointerTarget.
func (b *Button) PointerDown(compas.PointerEvent) {
	b.pressed = pressedFrames
	for _, fn := range b.onClick {
		fn(b)
	}
}

// Update implements compas.Updater.
func (b *Button) Update() {
	if b.pressed > 0 {
		b.pressed--
	}
}

// Draw implements compas.Node.
func (b *Button) Draw(dc *compas.DrawContext, origin compas.Vec2) {
	style := b.res.theme.Style
	r := b.Bounds()
	r.X += origin.X
	r.Y += origin.Y

	bg := b.Color()
	if b.pressed > 0 {
		bg = style.ButtonActiveColor
	}
	dc.Rect(r, bg)
	dc.RectOutline(r, style.PanelBorderColor, style.BorderSize)

	size := b.label.size()
	textPos := compas.Vec2{X: r.X + (r.W-size.X)/2, Y: r.Y + (r.H-size.Y)/2}
	drawText(dc, b.res, b.label.layout, b.label.text, textPos, style.TextColor)
}
