package coord

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// NumRange is a linear continuous domain over float64 values.
type NumRange struct {
	min, max float64
}

var _ Ranged[float64] = NumRange{}

// NewNumRange creates a linear range. min must not exceed max; a reversed
// axis is requested explicitly via Reversed, never by swapping the bounds.
func NewNumRange(min, max float64) (NumRange, error) {
	if min > max || math.IsNaN(min) || math.IsNaN(max) {
		return NumRange{}, fmt.Errorf("%w: [%v, %v]", ErrInvalidRange, min, max)
	}
	return NumRange{min: min, max: max}, nil
}

// Map implements Ranged. Out-of-domain values clamp to the boundary.
func (r NumRange) Map(v float64, px PixelRange) int {
	return mapLinear(v, r.min, r.max, px)
}

// Unmap implements Ranged.
func (r NumRange) Unmap(pixel int, px PixelRange) (float64, bool) {
	return unmapLinear(pixel, r.min, r.max, px)
}

// KeyPoints implements Ranged with ticks on 1/2/5 x 10^k step multiples.
func (r NumRange) KeyPoints(maxCount int) []float64 {
	return niceKeyPoints(r.min, r.max, maxCount, 0)
}

// Range implements Ranged.
func (r NumRange) Range() (float64, float64) { return r.min, r.max }

// Contains implements Ranged.
func (r NumRange) Contains(v float64) bool { return v >= r.min && v <= r.max }

// FormatValue implements Ranged.
func (r NumRange) FormatValue(v float64) string { return formatFloat(v) }

// IntRange is a linear domain over integer values. Tick steps never drop
// below one, so every key point is an exact domain value.
type IntRange[T constraints.Integer] struct {
	min, max T
}

// NewIntRange creates a linear integer range.
func NewIntRange[T constraints.Integer](min, max T) (IntRange[T], error) {
	if min > max {
		return IntRange[T]{}, fmt.Errorf("%w: [%v, %v]", ErrInvalidRange, min, max)
	}
	return IntRange[T]{min: min, max: max}, nil
}

// Map implements Ranged.
func (r IntRange[T]) Map(v T, px PixelRange) int {
	return mapLinear(float64(v), float64(r.min), float64(r.max), px)
}

// Unmap implements Ranged, rounding to the nearest integer value.
func (r IntRange[T]) Unmap(pixel int, px PixelRange) (T, bool) {
	f, ok := unmapLinear(pixel, float64(r.min), float64(r.max), px)
	if !ok {
		return 0, false
	}
	return T(math.Round(f)), true
}

// KeyPoints implements Ranged.
func (r IntRange[T]) KeyPoints(maxCount int) []T {
	pts := niceKeyPoints(float64(r.min), float64(r.max), maxCount, 1)
	out := make([]T, len(pts))
	for i, p := range pts {
		out[i] = T(math.Round(p))
	}
	return out
}

// Range implements Ranged.
func (r IntRange[T]) Range() (T, T) { return r.min, r.max }

// Contains implements Ranged.
func (r IntRange[T]) Contains(v T) bool { return v >= r.min && v <= r.max }

// FormatValue implements Ranged.
func (r IntRange[T]) FormatValue(v T) string { return formatInt(int64(v)) }

// Reversed flips the mapping direction of any range: the domain minimum
// maps to the far end of the pixel interval. Tick generation and
// containment are unchanged.
type Reversed[T any] struct {
	R Ranged[T]
}

var _ Ranged[float64] = Reversed[float64]{}

// Map implements Ranged by mapping into the flipped pixel interval.
func (r Reversed[T]) Map(v T, px PixelRange) int {
	return r.R.Map(v, PixelRange{Start: px.End, End: px.Start})
}

// Unmap implements Ranged.
func (r Reversed[T]) Unmap(pixel int, px PixelRange) (T, bool) {
	return r.R.Unmap(pixel, PixelRange{Start: px.End, End: px.Start})
}

// KeyPoints implements Ranged.
func (r Reversed[T]) KeyPoints(maxCount int) []T { return r.R.KeyPoints(maxCount) }

// Range implements Ranged.
func (r Reversed[T]) Range() (T, T) { return r.R.Range() }

// Contains implements Ranged.
func (r Reversed[T]) Contains(v T) bool { return r.R.Contains(v) }

// FormatValue implements Ranged.
func (r Reversed[T]) FormatValue(v T) string { return r.R.FormatValue(v) }

// FitRange returns the tightest NumRange covering the values, expanded to
// land on a nice step so auto-ranged axes start and end on round numbers.
// An empty slice yields the unit range.
func FitRange(values []float64) NumRange {
	if len(values) == 0 {
		return NumRange{min: 0, max: 1}
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo == hi {
		// Degenerate input widens by one unit either side.
		return NumRange{min: lo - 1, max: hi + 1}
	}
	step := niceCeilStep((hi - lo) / 10)
	return NumRange{
		min: math.Floor(lo/step) * step,
		max: math.Ceil(hi/step) * step,
	}
}

// niceCeilStep rounds x up to the next 1/2/5 x 10^k value.
func niceCeilStep(x float64) float64 {
	mag := math.Pow(10, math.Floor(math.Log10(x)))
	switch m := x / mag; {
	case m <= 1:
		return mag
	case m <= 2:
		return 2 * mag
	case m <= 5:
		return 5 * mag
	default:
		return 10 * mag
	}
}

// niceKeyPoints picks at most maxCount tick values in [lo, hi], aligned to
// multiples of a 1/2/5 x 10^k step. minStep, when positive, floors the step
// (integer domains pass 1). The result is empty only for an empty domain.
//
// Among the nice steps the densest one satisfying the bound wins; counts
// fall monotonically along the 1-2-5 ladder, so the scan is deterministic
// and needs no tie-break beyond first-fit.
func niceKeyPoints(lo, hi float64, maxCount int, minStep float64) []float64 {
	if maxCount <= 0 || hi <= lo {
		return nil
	}
	step := roughStep(hi-lo, maxCount)
	if minStep > 0 && step < minStep {
		step = minStep
	}
	for countAligned(lo, hi, step) > maxCount {
		step = nextNiceStep(step)
	}

	first := int64(math.Ceil(lo/step - 1e-9))
	last := int64(math.Floor(hi/step + 1e-9))
	out := make([]float64, 0, last-first+1)
	for k := first; k <= last; k++ {
		out = append(out, float64(k)*step)
	}
	return out
}

// roughStep returns the power of ten at or below span/maxCount.
func roughStep(span float64, maxCount int) float64 {
	rough := span / float64(maxCount)
	if rough <= 0 {
		return 1
	}
	return math.Pow(10, math.Floor(math.Log10(rough)))
}

// countAligned counts the step multiples inside [lo, hi].
func countAligned(lo, hi, step float64) int {
	first := math.Ceil(lo/step - 1e-9)
	last := math.Floor(hi/step + 1e-9)
	if last < first {
		return 0
	}
	return int(last-first) + 1
}

// nextNiceStep advances along the 1-2-5 ladder: 1 -> 2 -> 5 -> 10.
func nextNiceStep(step float64) float64 {
	mag := math.Pow(10, math.Floor(math.Log10(step)+1e-9))
	switch {
	case step < 2*mag:
		return 2 * mag
	case step < 5*mag:
		return 5 * mag
	default:
		return 10 * mag
	}
}
