package compas

// TextFieldConfig configures the text layout and caret of a text field.
type TextFieldConfig struct {
	// LineSpacing is added to the line height after every newline.
	// Negative values pull lines together and may overlap them.
	LineSpacing float32 `toml:"line_spacing" yaml:"line_spacing"`

	// Multiline allows newlines in the text. Single-line fields drop
	// newlines from inserted text and report Enter as a submit.
	Multiline bool `toml:"multiline" yaml:"multiline"`

	// WordWrap is accepted for compatibility and has no effect on layout:
	// layout depends only on the text, the font and LineSpacing.
	WordWrap bool `toml:"word_wrap" yaml:"word_wrap"`

	// BlinkPeriod is the caret blink cycle in frames (0 = DefaultBlinkPeriod).
	BlinkPeriod int `toml:"blink_period" yaml:"blink_period"`

	// Padding is the offset of the text block from the field's top-left corner.
	Padding float32 `toml:"padding" yaml:"padding"`
}

// DefaultTextFieldConfig returns the configuration of the standard text field.
func DefaultTextFieldConfig() TextFieldConfig {
	return TextFieldConfig{
		LineSpacing: -8,
		Multiline:   true,
		WordWrap:    false,
		BlinkPeriod: DefaultBlinkPeriod,
		Padding:     5,
	}
}
