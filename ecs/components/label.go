package components

import "image/color"

// DefaultLineHeight is the vertical distance between label stack lines
// when the component does not set one.
const DefaultLineHeight = 30

// LabelStack renders an ordered list of text lines as one vertically
// centered block anchored on the entity's transform. Each line is
// horizontally centered on its own; line i sits lineHeight units below
// line i-1, and the whole block is shifted so its vertical midpoint
// lands on the transform.
type LabelStack struct {
	Lines      []string
	Color      color.Color
	LineHeight float64
	// TextSize is the face size in pixels; 0 uses the system default.
	TextSize float64
	Layer    int
}
