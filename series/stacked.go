package series

import (
	"github.com/gogpu/charts"
	"github.com/gogpu/charts/backend"
	"github.com/gogpu/charts/style"
)

// Stacked renders layered area series sharing one x sample set. Each
// layer's baseline is the cumulative sum of the layers added before it,
// in caller order, so the stack's silhouette is the total.
type Stacked[XV any] struct {
	xs     []XV
	layers [][]float64
	styles []style.ShapeStyle
}

var _ charts.Series[float64, float64] = (*Stacked[float64])(nil)

// NewStacked starts a stack over the shared x samples.
func NewStacked[XV any](xs []XV) *Stacked[XV] {
	return &Stacked[XV]{xs: xs}
}

// Add appends one layer. values must match the x sample count; the
// mismatch surfaces as ErrLengthMismatch from Draw.
func (st *Stacked[XV]) Add(values []float64, s style.ShapeStyle) *Stacked[XV] {
	st.layers = append(st.layers, values)
	st.styles = append(st.styles, s)
	return st
}

// CumulativeTop returns the stack's upper contour after the given layer:
// the per-x sum of layers 0 through layer inclusive.
func (st *Stacked[XV]) CumulativeTop(layer int) []float64 {
	top := make([]float64, len(st.xs))
	for li := 0; li <= layer && li < len(st.layers); li++ {
		for i, v := range st.layers[li] {
			top[i] += v
		}
	}
	return top
}

// Draw implements charts.Series. Layers paint in caller order, each one
// over the previous, as a filled band between its baseline contour and
// its top contour.
func (st *Stacked[XV]) Draw(ctx *charts.Context[XV, float64]) error {
	for _, layer := range st.layers {
		if len(layer) != len(st.xs) {
			return ErrLengthMismatch
		}
	}
	if len(st.xs) < 2 {
		return nil
	}
	plot := ctx.PlotArea()
	base := make([]float64, len(st.xs))
	for li, layer := range st.layers {
		points := make([]backend.Coord, 0, 2*len(st.xs))
		for i, x := range st.xs {
			points = append(points, ctx.Translate(x, base[i]+layer[i]))
		}
		for i := len(st.xs) - 1; i >= 0; i-- {
			points = append(points, ctx.Translate(st.xs[i], base[i]))
		}
		if err := plot.FillPolygon(points, st.styles[li].Filled()); err != nil {
			return err
		}
		for i, v := range layer {
			base[i] += v
		}
	}
	return nil
}
