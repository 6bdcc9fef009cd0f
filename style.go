package compas

// Style defines the colors and borders of the standard widgets.
// Colors are packed RGBA as produced by RGBA.
type Style struct {
	// Text
	TextColor uint32 `toml:"text_color" yaml:"text_color"`

	// Panel colors
	PanelColor       uint32 `toml:"panel_color" yaml:"panel_color"`
	PanelBorderColor uint32 `toml:"panel_border_color" yaml:"panel_border_color"`

	// Button colors
	ButtonColor       uint32 `toml:"button_color" yaml:"button_color"`
	ButtonActiveColor uint32 `toml:"button_active_color" yaml:"button_active_color"`

	// Checkbox colors
	CheckColor uint32 `toml:"check_color" yaml:"check_color"`

	// Input colors
	InputBgColor        uint32 `toml:"input_bg_color" yaml:"input_bg_color"`
	InputFocusedBgColor uint32 `toml:"input_focused_bg_color" yaml:"input_focused_bg_color"`
	InputBorderColor    uint32 `toml:"input_border_color" yaml:"input_border_color"`
	CaretColor          uint32 `toml:"caret_color" yaml:"caret_color"`

	// Focus indicator
	FocusColor uint32 `toml:"focus_color" yaml:"focus_color"`

	// Border
	BorderSize float32 `toml:"border_size" yaml:"border_size"`
}

// DefaultStyle returns the default style with sensible defaults.
func DefaultStyle() Style {
	return Style{
		TextColor: ColorWhite,

		PanelColor:       RGBA(20, 20, 20, 200),
		PanelBorderColor: RGBA(80, 80, 80, 255),

		ButtonColor:       RGBA(50, 50, 50, 255),
		ButtonActiveColor: RGBA(90, 90, 90, 255),

		CheckColor: RGBA(0, 150, 200, 255),

		InputBgColor:        RGBA(30, 30, 30, 255),
		InputFocusedBgColor: RGBA(40, 40, 50, 255),
		InputBorderColor:    RGBA(100, 100, 100, 255),
		CaretColor:          ColorWhite,

		FocusColor: RGBA(0, 200, 255, 255),

		BorderSize: 1,
	}
}

// LightStyle returns a light theme.
func LightStyle() Style {
	return Style{
		TextColor: RGBA(20, 20, 20, 255),

		PanelColor:       RGBA(245, 245, 245, 250),
		PanelBorderColor: RGBA(200, 200, 200, 255),

		ButtonColor:       RGBA(220, 220, 220, 255),
		ButtonActiveColor: RGBA(180, 180, 180, 255),

		CheckColor: RGBA(0, 120, 215, 255),

		InputBgColor:        ColorWhite,
		InputFocusedBgColor: RGBA(235, 245, 255, 255),
		InputBorderColor:    RGBA(180, 180, 180, 255),
		CaretColor:          RGBA(20, 20, 20, 255),

		FocusColor: RGBA(0, 120, 215, 255),

		BorderSize: 1,
	}
}
