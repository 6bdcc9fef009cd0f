package compas

import "errors"

// ErrUnknownFactory is matched by errors.Is for lookups of unregistered
// look-and-feels.
var ErrUnknownFactory = errors.New("compas: unknown component factory")

// UnknownFactoryError reports a NewFactory lookup for an unregistered name.
type UnknownFactoryError struct {
	Name string
}

func (e *UnknownFactoryError) Error() string {
	return "compas: unknown component factory " + `"` + e.Name + `"`
}

// Is reports whether target is ErrUnknownFactory.
func (e *UnknownFactoryError) Is(target error) bool {
	return target == ErrUnknownFactory
}
