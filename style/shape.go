package style

import "github.com/gogpu/charts/backend"

// ShapeStyle describes how a shape is painted: its color, whether it is
// filled, and the stroke width for outlines.
type ShapeStyle struct {
	Color       RGBA
	IsFilled    bool
	StrokeWidth int
}

// Shape returns an outlined style with stroke width one.
func Shape(c RGBA) ShapeStyle {
	return ShapeStyle{Color: c, StrokeWidth: 1}
}

// Filled returns a copy of the style with filling enabled.
func (s ShapeStyle) Filled() ShapeStyle {
	s.IsFilled = true
	return s
}

// Stroke returns a copy of the style with the given stroke width.
func (s ShapeStyle) Stroke(width int) ShapeStyle {
	s.StrokeWidth = width
	return s
}

// Backend reduces the style to the wire form handed to drawing backends.
func (s ShapeStyle) Backend() backend.Style {
	w := s.StrokeWidth
	if w <= 0 {
		w = 1
	}
	return backend.Style{Color: s.Color.Backend(), StrokeWidth: w}
}
