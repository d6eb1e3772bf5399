package series

import (
	"github.com/gogpu/charts"
	"github.com/gogpu/charts/backend"
	"github.com/gogpu/charts/style"
)

// ErrorPoint is one measurement with an asymmetric uncertainty interval.
type ErrorPoint[XV any] struct {
	X         XV
	Y         float64
	Low, High float64
}

// Symmetric returns an error point spanning Y plus or minus dev.
func Symmetric[XV any](x XV, y, dev float64) ErrorPoint[XV] {
	return ErrorPoint[XV]{X: x, Y: y, Low: y - dev, High: y + dev}
}

// ErrorBar renders uncertainty intervals as vertical bars with
// perpendicular end caps and a center marker.
type ErrorBar[XV any] struct {
	points   []ErrorPoint[XV]
	style    style.ShapeStyle
	capWidth int
}

var _ charts.Series[float64, float64] = (*ErrorBar[float64])(nil)

// NewErrorBar returns an error-bar series. capWidth is half the cap span
// in pixels.
func NewErrorBar[XV any](points []ErrorPoint[XV], s style.ShapeStyle, capWidth int) *ErrorBar[XV] {
	if capWidth < 1 {
		capWidth = 3
	}
	return &ErrorBar[XV]{points: points, style: s, capWidth: capWidth}
}

// Draw implements charts.Series.
func (e *ErrorBar[XV]) Draw(ctx *charts.Context[XV, float64]) error {
	plot := ctx.PlotArea()
	stroke := strokeOf(e.style)
	cw := e.capWidth
	for _, p := range e.points {
		hi := ctx.Translate(p.X, p.High)
		lo := ctx.Translate(p.X, p.Low)
		center := ctx.Translate(p.X, p.Y)

		if err := plot.DrawLine(hi, lo, stroke); err != nil {
			return err
		}
		for _, end := range []backend.Coord{hi, lo} {
			err := plot.DrawLine(
				backend.Pt(end.X-cw, end.Y), backend.Pt(end.X+cw, end.Y), stroke)
			if err != nil {
				return err
			}
		}
		if err := plot.DrawCircle(center, 2, e.style.Filled()); err != nil {
			return err
		}
	}
	return nil
}
