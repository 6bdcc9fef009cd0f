package font

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/go-theft-auto/compas"
)

// ErrStandardLoaded is returned when the standard font options are changed
// after the standard face was loaded.
var ErrStandardLoaded = errors.New("font: standard face already loaded")

// standard is the process-wide standard face. It is loaded at most once,
// on the first Standard call, from the Go Regular font.
var standard struct {
	mu     sync.Mutex
	loaded bool
	opts   Options
	data   []byte
	face   *Face
}

func init() {
	standard.opts = DefaultOptions()
	standard.data = goregular.TTF
}

// SetStandardOptions sets the options and font data used to load the
// standard face. nil data keeps the current data. It must be called before
// the first Standard call.
func SetStandardOptions(data []byte, opts Options) error {
	standard.mu.Lock()
	defer standard.mu.Unlock()

	if standard.loaded {
		return ErrStandardLoaded
	}
	if data != nil {
		standard.data = data
	}
	standard.opts = opts
	return nil
}

// Standard returns the process-wide standard face, loading it on first use.
func Standard() (*Face, error) {
	standard.mu.Lock()
	defer standard.mu.Unlock()

	if standard.loaded {
		return standard.face, nil
	}

	face, err := New(standard.data, standard.opts)
	if err != nil {
		return nil, fmt.Errorf("font: load standard face: %w", err)
	}
	standard.face = face
	standard.loaded = true

	compas.Logger().Info("standard font loaded", "size", standard.opts.Size)
	return face, nil
}

// ResetStandard unloads the standard face and restores the default options.
// Faces returned earlier stay usable.
func ResetStandard() {
	standard.mu.Lock()
	defer standard.mu.Unlock()

	standard.loaded = false
	standard.face = nil
	standard.opts = DefaultOptions()
	standard.data = goregular.TTF
}
