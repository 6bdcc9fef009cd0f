package compas

// HitNone is returned by HitTest when no character contains the query point.
const HitNone = -1

// HitTest returns the CharIndex of the first entry whose box contains query,
// or HitNone.
//
// Entry boxes are translated by textOrigin and then multiplied by scale:
//
//	left = (origin.X + entry.X) * scale.X
//	top  = (origin.Y + entry.Y) * scale.Y
//
// Containment is half-open, so zero-width newline entries never match.
// Each axis is translated by its own origin component.
func HitTest(layout Layout, textOrigin, scale, query Vec2) int {
	for _, e := range layout.Entries {
		box := Rect{
			X: (textOrigin.X + e.X) * scale.X,
			Y: (textOrigin.Y + e.Y) * scale.Y,
			W: e.Width * scale.X,
			H: e.Height * scale.Y,
		}
		if box.Contains(query) {
			return e.CharIndex
		}
	}
	return HitNone
}
