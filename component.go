package compas

import "sort"

// Resizable is implemented by widgets whose size can be changed.
type Resizable interface {
	SetSize(width, height float32)
	SetWidth(value float32)
	SetHeight(value float32)
	Size() Vec2
}

// Colorable is implemented by widgets with a primary color.
type Colorable interface {
	SetColor(color uint32)
	Color() uint32
}

// Component is a widget: a scene node that can be resized, recolored and
// positioned inside its parent.
type Component interface {
	Node
	Resizable
	Colorable
	SetPos(x, y float32)
	Pos() Vec2
}

// Button is a clickable component with a text label.
type Button interface {
	Component
	SetText(text string)
	Text() string
	OnClick(fn func(b Button))
}

// Checkbox is a component holding a boolean that toggles on click.
type Checkbox interface {
	Component
	SetChecked(checked bool)
	Checked() bool
	SetText(text string)
	Text() string
	OnChange(fn func(c Checkbox, checked bool))
}

// Label is a component displaying static text.
type Label interface {
	Component
	SetText(text string)
	Text() string
}

// Panel is a component that holds other components.
type Panel interface {
	Component
	AddComponent(c Component)
	RemoveComponent(c Component) bool
	Components() []Component
}

// TextField is an editable text component.
type TextField interface {
	Component
	SetText(text string)
	Text() string
	InsertAt(index int, text string) bool
	CaretIndex() int
	SetCaretIndex(index int)
	Editor() *TextEditor
	OnChange(fn func(tf TextField, text string))
	OnSubmit(fn func(tf TextField, text string))
}

// ComponentFactory creates the widgets of one look-and-feel.
type ComponentFactory interface {
	CreateButton() Button
	CreateCheckbox() Checkbox
	CreateLabel() Label
	CreatePanel() Panel
	CreateTextField() TextField
}

// FactoryConstructor creates a ComponentFactory.
type FactoryConstructor func() (ComponentFactory, error)

// factoryRegistry stores registered factory constructors by name.
var factoryRegistry = make(map[string]FactoryConstructor)

// RegisterFactory registers a look-and-feel under name. Registering the same
// name twice replaces the earlier constructor.
//
// Example:
//
//	compas.RegisterFactory("flat", func() (compas.ComponentFactory, error) {
//	    return flat.NewFactory(), nil
//	})
func RegisterFactory(name string, ctor FactoryConstructor) {
	factoryRegistry[name] = ctor
}

// UnregisterFactory removes a look-and-feel from the registry.
func UnregisterFactory(name string) {
	delete(factoryRegistry, name)
}

// NewFactory creates the factory registered under name.
// It returns ErrUnknownFactory if nothing is registered under name.
func NewFactory(name string) (ComponentFactory, error) {
	ctor, ok := factoryRegistry[name]
	if !ok {
		return nil, &UnknownFactoryError{Name: name}
	}
	return ctor()
}

// ListFactories returns the registered factory names in sorted order.
func ListFactories() []string {
	names := make([]string, 0, len(factoryRegistry))
	for name := range factoryRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
