package series

import (
	"github.com/gogpu/charts"
	"github.com/gogpu/charts/backend"
	"github.com/gogpu/charts/style"
)

// Line connects its samples with an open polyline, in input order.
type Line[XV, YV any] struct {
	samples []Sample[XV, YV]
	style   style.ShapeStyle
}

var _ charts.Series[float64, float64] = (*Line[float64, float64])(nil)

// NewLine returns a line series over the samples.
func NewLine[XV, YV any](samples []Sample[XV, YV], s style.ShapeStyle) *Line[XV, YV] {
	return &Line[XV, YV]{samples: samples, style: s}
}

// Draw implements charts.Series. A series of fewer than two samples draws
// nothing.
func (l *Line[XV, YV]) Draw(ctx *charts.Context[XV, YV]) error {
	if len(l.samples) < 2 {
		return nil
	}
	points := make([]backend.Coord, len(l.samples))
	for i, s := range l.samples {
		points[i] = ctx.Translate(s.X, s.Y)
	}
	return ctx.PlotArea().DrawPath(points, strokeOf(l.style))
}
