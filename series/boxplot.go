package series

import (
	"github.com/gogpu/charts"
	"github.com/gogpu/charts/backend"
	"github.com/gogpu/charts/stats"
	"github.com/gogpu/charts/style"
)

// BoxItem is one box-and-whisker glyph: a position on the x axis and its
// precomputed five-number summary.
type BoxItem[XV any] struct {
	X     XV
	Stats stats.Quartiles
}

// BoxPlot renders five-number summaries as vertical box-and-whisker
// glyphs. Statistics are computed by the caller (see stats.NewQuartiles);
// the renderer only draws.
type BoxPlot[XV any] struct {
	items     []BoxItem[XV]
	style     style.ShapeStyle
	halfWidth int
}

var _ charts.Series[float64, float64] = (*BoxPlot[float64])(nil)

// NewBoxPlot returns a box-plot series. halfWidth is half the box width
// in pixels; whisker caps span the same width.
func NewBoxPlot[XV any](items []BoxItem[XV], s style.ShapeStyle, halfWidth int) *BoxPlot[XV] {
	if halfWidth < 1 {
		halfWidth = 5
	}
	return &BoxPlot[XV]{items: items, style: s, halfWidth: halfWidth}
}

// Draw implements charts.Series. Per glyph: whisker stem and caps first,
// then the quartile box, then the median line over it.
func (b *BoxPlot[XV]) Draw(ctx *charts.Context[XV, float64]) error {
	plot := ctx.PlotArea()
	stroke := strokeOf(b.style)
	hw := b.halfWidth
	for _, it := range b.items {
		q := it.Stats
		lo := ctx.Translate(it.X, q.LowerWhisker)
		hi := ctx.Translate(it.X, q.UpperWhisker)
		q1 := ctx.Translate(it.X, q.Q1)
		q3 := ctx.Translate(it.X, q.Q3)
		med := ctx.Translate(it.X, q.Median)

		if err := plot.DrawLine(hi, lo, stroke); err != nil {
			return err
		}
		for _, end := range []backend.Coord{hi, lo} {
			err := plot.DrawLine(
				backend.Pt(end.X-hw, end.Y), backend.Pt(end.X+hw, end.Y), stroke)
			if err != nil {
				return err
			}
		}
		err := plot.DrawRect(
			backend.Pt(q3.X-hw, q3.Y), backend.Pt(q1.X+hw, q1.Y), b.style)
		if err != nil {
			return err
		}
		err = plot.DrawLine(
			backend.Pt(med.X-hw, med.Y), backend.Pt(med.X+hw, med.Y), stroke)
		if err != nil {
			return err
		}
	}
	return nil
}
