package series

import (
	"github.com/gogpu/charts"
	"github.com/gogpu/charts/backend"
	"github.com/gogpu/charts/style"
)

// Area fills the region between its samples and a baseline value. The
// polygon closes through the baseline at the first and last sample's x
// position.
type Area[XV, YV any] struct {
	samples  []Sample[XV, YV]
	baseline YV
	style    style.ShapeStyle
}

var _ charts.Series[float64, float64] = (*Area[float64, float64])(nil)

// NewArea returns an area series over the samples, closed to the baseline.
func NewArea[XV, YV any](samples []Sample[XV, YV], baseline YV, s style.ShapeStyle) *Area[XV, YV] {
	return &Area[XV, YV]{samples: samples, baseline: baseline, style: s}
}

// Draw implements charts.Series.
func (a *Area[XV, YV]) Draw(ctx *charts.Context[XV, YV]) error {
	if len(a.samples) < 2 {
		return nil
	}
	points := make([]backend.Coord, 0, len(a.samples)+2)
	for _, s := range a.samples {
		points = append(points, ctx.Translate(s.X, s.Y))
	}
	last := a.samples[len(a.samples)-1]
	first := a.samples[0]
	points = append(points,
		ctx.Translate(last.X, a.baseline),
		ctx.Translate(first.X, a.baseline),
	)
	return ctx.PlotArea().FillPolygon(points, a.style)
}
