// Package stats computes the summary statistics box-plot series render.
package stats

import (
	"errors"

	mstats "github.com/aclements/go-moremath/stats"
)

// ErrNoData reports a quartile computation over an empty sample.
var ErrNoData = errors.New("stats: no data")

// Quartiles is a five-number summary. Whiskers sit at the most extreme
// data points within 1.5 IQR of the box, the Tukey convention.
type Quartiles struct {
	LowerWhisker float64
	Q1           float64
	Median       float64
	Q3           float64
	UpperWhisker float64
}

// NewQuartiles summarizes the data. The input is not modified.
func NewQuartiles(data []float64) (Quartiles, error) {
	if len(data) == 0 {
		return Quartiles{}, ErrNoData
	}
	s := mstats.Sample{Xs: data}
	q := Quartiles{
		Q1:     s.Quantile(0.25),
		Median: s.Quantile(0.5),
		Q3:     s.Quantile(0.75),
	}
	iqr := q.Q3 - q.Q1
	loFence := q.Q1 - 1.5*iqr
	hiFence := q.Q3 + 1.5*iqr

	// Whiskers clamp to actual data points inside the fences.
	q.LowerWhisker = q.Q1
	q.UpperWhisker = q.Q3
	for _, x := range data {
		if x >= loFence && x < q.LowerWhisker {
			q.LowerWhisker = x
		}
		if x <= hiFence && x > q.UpperWhisker {
			q.UpperWhisker = x
		}
	}
	return q, nil
}
