package standard

import "github.com/go-theft-auto/compas"

// caretWidth is the caret width in unscaled units.
const caretWidth = 1

// TextField is an editable text box. Layout, hit testing and caret state
// live in its compas.TextEditor; the field adds focus, drawing and
// notifications.
//
// SetColor and Color address the text, not the background.
type TextField struct {
	compas.Box
	res       *resources
	editor    *compas.TextEditor
	textColor uint32
	focused   bool
	onChange  []func(tf compas.TextField, text string)
	onSubmit  []func(tf compas.TextField, text string)
}

func newTextField(res *resources) *TextField {
	tf := &TextField{
		res:       res,
		editor:    compas.NewTextEditor(res.metrics, res.theme.TextField),
		textColor: res.theme.Style.TextColor,
	}
	tf.Box.SetSize(res.theme.TextFieldSize.Width, res.theme.TextFieldSize.Height)
	return tf
}

// SetColor sets the text color.
func (tf *TextField) SetColor(color uint32) {
	tf.textColor = color
}

// Color returns the text color.
func (tf *TextField) Color() uint32 {
	return tf.textColor
}

// SetText replaces the content without notifying listeners.
func (tf *TextField) SetText(text string) {
	tf.editor.SetText(text)
}

// Text returns the content.
func (tf *TextField) Text() string {
	return tf.editor.Text()
}

// InsertAt inserts text at the given character index and notifies change
// listeners when the content changed.
func (tf *TextField) InsertAt(index int, text string) bool {
	if !tf.editor.InsertAt(index, text) {
		return false
	}
	tf.changed()
	return true
}

// CaretIndex returns the character index the caret sits before.
func (tf *TextField) CaretIndex() int {
	return tf.editor.CaretIndex()
}

// SetCaretIndex moves the caret before the character at index.
func (tf *TextField) SetCaretIndex(index int) {
	tf.editor.SetCaretIndex(index)
}

// Editor returns the underlying editor.
func (tf *TextField) Editor() *compas.TextEditor {
	return tf.editor
}

// OnChange registers fn to run after every edit.
func (tf *TextField) OnChange(fn func(tf compas.TextField, text string)) {
	tf.onChange = append(tf.onChange, fn)
}

// OnSubmit registers fn to run when Enter is pressed in a single-line field.
func (tf *TextField) OnSubmit(fn func(tf compas.TextField, text string)) {
	tf.onSubmit = append(tf.onSubmit, fn)
}

// SetFocused implements compas.Focusable.
func (tf *TextField) SetFocused(focused bool) {
	tf.focused = focused
}

// Focused implements compas.Focusable.
func (tf *TextField) Focused() bool {
	return tf.focused
}

// PointerDown implements compas.PointerTarget.
func (tf *TextField) PointerDown(e compas.PointerEvent) {
	tf.editor.PointerDown(e)
}

// KeyType implements compas.KeyTarget.
func (tf *TextField) KeyType(e compas.KeyTypeEvent) {
	if tf.editor.KeyType(e) {
		tf.changed()
	}
}

// KeyDown implements compas.KeyTarget.
func (tf *TextField) KeyDown(e compas.KeyEvent) {
	if e.Key != compas.KeyEnter {
		tf.editor.KeyDown(e)
		return
	}
	if tf.editor.Config().Multiline {
		tf.InsertAt(tf.editor.CaretIndex(), "\n")
		return
	}
	text := tf.editor.Text()
	for _, fn := range tf.onSubmit {
		fn(tf, text)
	}
}

// Update implements compas.Updater. It advances the caret blink.
func (tf *TextField) Update() {
	tf.editor.Tick()
}

// Draw implements compas.Node.
func (tf *TextField) Draw(dc *compas.DrawContext, origin compas.Vec2) {
	style := tf.res.theme.Style
	r := tf.Bounds()
	r.X += origin.X
	r.Y += origin.Y

	bg, border := style.InputBgColor, style.InputBorderColor
	if tf.focused {
		bg, border = style.InputFocusedBgColor, style.FocusColor
	}
	dc.Rect(r, bg)
	dc.RectOutline(r, border, style.BorderSize)

	dc.DrawList.PushClipRect(r.X*dc.Scale.X, r.Y*dc.Scale.Y, (r.X+r.W)*dc.Scale.X, (r.Y+r.H)*dc.Scale.Y)
	defer dc.DrawList.PopClipRect()

	textPos := r.Pos().Add(tf.editor.TextOrigin())
	drawText(dc, tf.res, tf.editor.Layout(), tf.editor.Text(), textPos, tf.textColor)

	if !tf.focused {
		return
	}
	caret := tf.editor.Caret()
	if alpha := caret.Alpha(); alpha > 0 {
		p := r.Pos().Add(caret.Pos())
		dc.Rect(compas.Rect{X: p.X, Y: p.Y, W: caretWidth, H: tf.editor.CaretHeight()}, compas.WithAlpha(style.CaretColor, alpha))
	}
}

func (tf *TextField) changed() {
	text := tf.editor.Text()
	for _, fn := range tf.onChange {
		fn(tf, text)
	}
}
