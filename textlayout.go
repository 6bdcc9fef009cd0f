package compas

// LayoutEntry is the placement of one character in the local coordinate
// space of a text block. CharIndex is the rune index in the source string.
type LayoutEntry struct {
	CharIndex int
	X, Y      float32
	Width     float32
	Height    float32
}

// Box returns the entry's rectangle in local coordinates.
func (e LayoutEntry) Box() Rect {
	return Rect{X: e.X, Y: e.Y, W: e.Width, H: e.Height}
}

// Layout is the placement of every character of a string, in string order.
// A Layout is a value: nothing mutates it after ComputeLayout returns it.
type Layout struct {
	// Entries holds one entry per rune.
	Entries []LayoutEntry

	// End is the pen position after the last rune, i.e. the caret slot at
	// index len(Entries).
	End Vec2
}

// Len returns the number of entries.
func (l Layout) Len() int {
	return len(l.Entries)
}

// PositionOf returns the caret slot just before the character at index.
// Indices past the end map to End; negative indices map to the origin.
func (l Layout) PositionOf(index int) Vec2 {
	switch {
	case index < 0:
		return Vec2{}
	case index >= len(l.Entries):
		return l.End
	}
	e := l.Entries[index]
	return Vec2{X: e.X, Y: e.Y}
}

// Size returns the extent of the laid out text: the widest line and the
// bottom of the lowest entry.
func (l Layout) Size() Vec2 {
	var size Vec2
	for _, e := range l.Entries {
		if r := e.X + e.Width; r > size.X {
			size.X = r
		}
		if b := e.Y + e.Height; b > size.Y {
			size.Y = b
		}
	}
	return size
}

// ComputeLayout places each rune of text on a pen that starts at (0, 0).
//
// A regular rune is placed at the pen and advances it by its width. A
// newline is placed at the pen with zero width, then moves the pen to the
// start of the next line, lineSpacing below the newline's height. Negative
// spacing is allowed and makes lines overlap.
//
// The result has exactly one entry per rune and depends only on its inputs.
func ComputeLayout(text string, metrics FontMetrics, lineSpacing float32) Layout {
	if text == "" {
		return Layout{}
	}

	entries := make([]LayoutEntry, 0, len(text))
	var x, y float32
	index := 0

	for _, r := range text {
		info := metrics.CharInfo(r)

		if r == '\n' {
			entries = append(entries, LayoutEntry{
				CharIndex: index,
				X:         x,
				Y:         y,
				Width:     0,
				Height:    info.Height,
			})
			x = 0
			y += info.Height + lineSpacing
		} else {
			entries = append(entries, LayoutEntry{
				CharIndex: index,
				X:         x,
				Y:         y,
				Width:     info.Width,
				Height:    info.Height,
			})
			x += info.Width
		}
		index++
	}

	return Layout{Entries: entries, End: Vec2{X: x, Y: y}}
}
