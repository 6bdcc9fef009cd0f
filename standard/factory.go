// Package standard implements the standard look-and-feel: a
// compas.ComponentFactory producing buttons, checkboxes, labels, panels and
// text fields drawn with the standard font.
package standard

import (
	"errors"
	"fmt"

	"github.com/go-theft-auto/compas"
	"github.com/go-theft-auto/compas/font"
)

// Name is the name the standard factory is registered under.
const Name = "standard"

func init() {
	compas.RegisterFactory(Name, func() (compas.ComponentFactory, error) {
		return NewFactory()
	})
}

// glyphAtlas is a glyph source that has been uploaded to the GPU.
type glyphAtlas interface {
	compas.GlyphSource
	TextureID() uint32
}

// resources is the font state shared by every widget of one factory.
type resources struct {
	theme   Theme
	metrics compas.FontMetrics
	glyphs  glyphAtlas // nil when text is measured but not drawn
}

// Factory creates standard widgets. It implements compas.ComponentFactory.
type Factory struct {
	res  *resources
	face *font.Face
}

// FactoryOption configures a Factory.
type FactoryOption func(*Factory)

// WithTheme sets the theme. Its font options apply when the standard font
// has not been loaded yet.
func WithTheme(theme Theme) FactoryOption {
	return func(f *Factory) { f.res.theme = theme }
}

// WithFont makes the factory measure and draw text with face instead of the
// standard font.
func WithFont(face *font.Face) FactoryOption {
	return func(f *Factory) { f.face = face }
}

// WithMetrics makes the factory measure text with m and draw no glyphs.
// Useful for headless use and tests.
func WithMetrics(m compas.FontMetrics) FactoryOption {
	return func(f *Factory) { f.res.metrics = m }
}

// NewFactory creates a standard factory.
func NewFactory(opts ...FactoryOption) (*Factory, error) {
	f := &Factory{res: &resources{theme: DefaultTheme()}}

	for _, opt := range opts {
		opt(f)
	}

	if f.res.metrics != nil {
		return f, nil
	}

	if f.face == nil {
		err := font.SetStandardOptions(nil, f.res.theme.Font)
		if err != nil && !errors.Is(err, font.ErrStandardLoaded) {
			return nil, err
		}
		face, err := font.Standard()
		if err != nil {
			return nil, fmt.Errorf("standard: %w", err)
		}
		f.face = face
	}

	f.res.metrics = f.face
	f.res.glyphs = f.face.Atlas()
	return f, nil
}

// Theme returns the factory theme.
func (f *Factory) Theme() Theme {
	return f.res.theme
}

// Font returns the face used for drawing, or nil when the factory was
// created WithMetrics.
func (f *Factory) Font() *font.Face {
	return f.face
}

// CreateButton implements compas.ComponentFactory.
func (f *Factory) CreateButton() compas.Button {
	return newButton(f.res)
}

// CreateCheckbox implements compas.ComponentFactory.
func (f *Factory) CreateCheckbox() compas.Checkbox {
	return newCheckbox(f.res)
}

// CreateLabel implements compas.ComponentFactory.
func (f *Factory) CreateLabel() compas.Label {
	return newLabel(f.res)
}

// CreatePanel implements compas.ComponentFactory.
func (f *Factory) CreatePanel() compas.Panel {
	return newPanel(f.res)
}

// CreateTextField implements compas.ComponentFactory.
func (f *Factory) CreateTextField() compas.TextField {
	return newTextField(f.res)
}
