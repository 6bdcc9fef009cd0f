package standard

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/go-theft-auto/compas"
	"github.com/go-theft-auto/compas/font"
)

// ErrUnknownThemeFormat is returned for theme files that are neither TOML
// nor YAML.
var ErrUnknownThemeFormat = errors.New("standard: unknown theme format")

// Size is a width/height pair in theme files.
type Size struct {
	Width  float32 `toml:"width" yaml:"width"`
	Height float32 `toml:"height" yaml:"height"`
}

// Theme configures the standard look-and-feel.
type Theme struct {
	Font      font.Options           `toml:"font" yaml:"font"`
	Style     compas.Style           `toml:"style" yaml:"style"`
	TextField compas.TextFieldConfig `toml:"text_field" yaml:"text_field"`

	// Default widget sizes
	TextFieldSize Size    `toml:"text_field_size" yaml:"text_field_size"`
	PanelSize     Size    `toml:"panel_size" yaml:"panel_size"`
	ButtonSize    Size    `toml:"button_size" yaml:"button_size"`
	CheckboxSize  float32 `toml:"checkbox_size" yaml:"checkbox_size"`
}

// DefaultTheme returns the standard theme.
func DefaultTheme() Theme {
	return Theme{
		Font:          font.DefaultOptions(),
		Style:         compas.DefaultStyle(),
		TextField:     compas.DefaultTextFieldConfig(),
		TextFieldSize: Size{Width: 200, Height: 100},
		PanelSize:     Size{Width: 100, Height: 100},
		ButtonSize:    Size{Width: 120, Height: 44},
		CheckboxSize:  24,
	}
}

// LoadTheme reads a theme from a .toml, .yaml or .yml file. Fields missing
// from the file keep their DefaultTheme values.
func LoadTheme(path string) (Theme, error) {
	theme := DefaultTheme()

	data, err := os.ReadFile(path)
	if err != nil {
		return theme, fmt.Errorf("failed to read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &theme)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &theme)
	default:
		return theme, fmt.Errorf("%s: %w", path, ErrUnknownThemeFormat)
	}
	if err != nil {
		return theme, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	compas.Logger().Info("theme loaded", "path", path)
	return theme, nil
}

// SaveTheme writes theme to path, choosing TOML or YAML by extension.
func SaveTheme(path string, theme Theme) error {
	var (
		data []byte
		err  error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		data, err = toml.Marshal(theme)
	case ".yaml", ".yml":
		data, err = yaml.Marshal(theme)
	default:
		return fmt.Errorf("%s: %w", path, ErrUnknownThemeFormat)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal theme: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
