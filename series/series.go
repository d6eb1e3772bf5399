// Package series renders sample collections into chart primitives.
//
// Every renderer implements charts.Series: a stateless function of its
// samples, the chart context's coordinate specs, and its style. Samples
// are drawn in the order the caller supplies them; the package never
// sorts, so self-intersecting paths are the caller's choice. The first
// primitive error aborts the renderer and propagates unmodified.
package series

import "github.com/gogpu/charts/style"

// Sample is one logical data point.
type Sample[XV, YV any] struct {
	X XV
	Y YV
}

// XY is a convenience constructor for a Sample.
func XY[XV, YV any](x XV, y YV) Sample[XV, YV] {
	return Sample[XV, YV]{X: x, Y: y}
}

// strokeOf normalizes a shape style for outline drawing.
func strokeOf(s style.ShapeStyle) style.ShapeStyle {
	s.IsFilled = false
	return s
}
