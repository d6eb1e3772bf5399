// Package text is the font boundary of the chart engine.
//
// The core needs exactly one text capability: measuring how many pixels a
// string occupies so axis labels can be budgeted and anchored. Rendering is
// a backend concern. A Measurer provides that capability; when no real font
// metrics are available the Estimator degrades to a fixed average glyph
// width, which is a documented approximation rather than silent misbehavior.
package text

import "github.com/gogpu/charts/backend"

// Measurer reports the pixel bounding box of a string in a given style.
type Measurer interface {
	Measure(ts backend.TextStyle, s string) (width, height int, err error)
}

// Estimator is the metrics-free fallback Measurer. It assumes an average
// glyph width of 0.7 em and a line height of 1.24 em, where one em is
// size/1.24/1.24. These constants track common sans-serif faces closely
// enough for label budgeting.
type Estimator struct{}

var _ Measurer = Estimator{}

// Measure implements Measurer using the fixed average glyph width.
func (Estimator) Measure(ts backend.TextStyle, s string) (int, int, error) {
	size := ts.Size
	if size <= 0 {
		size = 12
	}
	em := size / 1.24 / 1.24
	n := len([]rune(s))
	// Round the per-glyph width once so the total stays proportional to
	// the rune count.
	w := n * int(em*0.7+0.5)
	h := int(em * 1.24)
	if ts.Rotation == backend.Rotate90 || ts.Rotation == backend.Rotate270 {
		w, h = h, w
	}
	return w, h, nil
}
