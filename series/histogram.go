package series

import (
	"errors"
	"math"
	"sort"

	"github.com/gogpu/charts"
	"github.com/gogpu/charts/style"
)

// Histogram binning errors.
var (
	ErrBadBins        = errors.New("series: invalid histogram bins")
	ErrLengthMismatch = errors.New("series: values and weights differ in length")
)

// Bin is one half-open histogram bucket [Low, High) and its accumulated
// weight.
type Bin struct {
	Low, High float64
	Weight    float64
}

// Histogram buckets values into half-open bins and draws one filled bar
// per non-empty bin. Bars run from the bin's weight down to the zero
// baseline.
type Histogram struct {
	bins  []Bin
	style style.ShapeStyle
}

var _ charts.Series[float64, float64] = (*Histogram)(nil)

// NewHistogram buckets values into fixed-width bins aligned to multiples
// of width. Each value counts as weight one.
func NewHistogram(values []float64, width float64, s style.ShapeStyle) (*Histogram, error) {
	return NewWeightedHistogram(values, nil, width, s)
}

// NewWeightedHistogram buckets values into fixed-width bins with an
// explicit weight per value. A nil weights slice means weight one each.
func NewWeightedHistogram(values, weights []float64, width float64, s style.ShapeStyle) (*Histogram, error) {
	if width <= 0 || math.IsNaN(width) {
		return nil, ErrBadBins
	}
	if weights != nil && len(weights) != len(values) {
		return nil, ErrLengthMismatch
	}
	acc := map[int]float64{}
	for i, v := range values {
		w := 1.0
		if weights != nil {
			w = weights[i]
		}
		acc[int(math.Floor(v/width))] += w
	}
	idxs := make([]int, 0, len(acc))
	for i := range acc {
		idxs = append(idxs, i)
	}
	sort.Ints(idxs)
	bins := make([]Bin, 0, len(idxs))
	for _, i := range idxs {
		bins = append(bins, Bin{
			Low:    float64(i) * width,
			High:   float64(i+1) * width,
			Weight: acc[i],
		})
	}
	return &Histogram{bins: bins, style: s.Filled()}, nil
}

// NewHistogramEdges buckets values into the bins delimited by the given
// ascending edges. n+1 edges produce n bins; values outside the edge span
// are discarded, and a value equal to the last edge falls outside its
// half-open final bin.
func NewHistogramEdges(values, edges []float64, s style.ShapeStyle) (*Histogram, error) {
	if len(edges) < 2 {
		return nil, ErrBadBins
	}
	for i := 1; i < len(edges); i++ {
		if edges[i] <= edges[i-1] {
			return nil, ErrBadBins
		}
	}
	bins := make([]Bin, len(edges)-1)
	for i := range bins {
		bins[i] = Bin{Low: edges[i], High: edges[i+1]}
	}
	for _, v := range values {
		// The first edge above v closes v's bin.
		i := sort.SearchFloat64s(edges, v)
		if i < len(edges) && edges[i] == v {
			i++
		}
		if i == 0 || i >= len(edges) {
			continue
		}
		bins[i-1].Weight++
	}
	return &Histogram{bins: bins, style: s.Filled()}, nil
}

// Bins returns the computed buckets in ascending order, empty ones
// included for the explicit-edges form.
func (h *Histogram) Bins() []Bin { return h.bins }

// Draw implements charts.Series.
func (h *Histogram) Draw(ctx *charts.Context[float64, float64]) error {
	plot := ctx.PlotArea()
	for _, b := range h.bins {
		if b.Weight == 0 {
			continue
		}
		top := ctx.Translate(b.Low, b.Weight)
		bottom := ctx.Translate(b.High, 0)
		if top.Y > bottom.Y {
			top.Y, bottom.Y = bottom.Y, top.Y
		}
		if err := plot.DrawRect(top, bottom, h.style); err != nil {
			return err
		}
	}
	return nil
}
