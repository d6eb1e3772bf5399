package coord

import (
	"fmt"
	"math"
)

// LogRange is a logarithmic continuous domain. The mapping interpolates the
// logarithm of the value, so each decade spans the same number of pixels.
type LogRange struct {
	min, max float64
	base     float64
}

var _ Ranged[float64] = LogRange{}

// NewLogRange creates a base-10 logarithmic range. Both bounds must be
// strictly positive; feeding a non-positive bound is a configuration error,
// never clamped.
func NewLogRange(min, max float64) (LogRange, error) {
	return NewLogRangeBase(min, max, 10)
}

// NewLogRangeBase creates a logarithmic range with an arbitrary base > 1.
func NewLogRangeBase(min, max, base float64) (LogRange, error) {
	if min <= 0 || max <= 0 {
		return LogRange{}, fmt.Errorf("%w: [%v, %v]", ErrNonPositiveLog, min, max)
	}
	if min > max {
		return LogRange{}, fmt.Errorf("%w: [%v, %v]", ErrInvalidRange, min, max)
	}
	if base <= 1 || math.IsNaN(base) {
		return LogRange{}, fmt.Errorf("%w: base %v", ErrInvalidRange, base)
	}
	return LogRange{min: min, max: max, base: base}, nil
}

// Map implements Ranged. Out-of-domain values clamp to the boundary.
func (r LogRange) Map(v float64, px PixelRange) int {
	if v < r.min {
		v = r.min
	}
	if v > r.max {
		v = r.max
	}
	return mapLinear(math.Log(v), math.Log(r.min), math.Log(r.max), px)
}

// Unmap implements Ranged; it inverts the forward mapping exactly up to
// pixel granularity.
func (r LogRange) Unmap(pixel int, px PixelRange) (float64, bool) {
	lg, ok := unmapLinear(pixel, math.Log(r.min), math.Log(r.max), px)
	if !ok {
		return 0, false
	}
	return math.Exp(lg), true
}

// KeyPoints implements Ranged: one tick per power of the base inside the
// domain, with minor ticks at 2x and 5x of each decade when the budget
// allows (base 10 only). Decades subsample uniformly when even the majors
// exceed maxCount.
func (r LogRange) KeyPoints(maxCount int) []float64 {
	if maxCount <= 0 || r.min >= r.max {
		return nil
	}
	logBase := math.Log(r.base)
	kLo := int(math.Ceil(math.Log(r.min)/logBase - 1e-9))
	kHi := int(math.Floor(math.Log(r.max)/logBase + 1e-9))
	if kHi < kLo {
		// No power of the base inside the domain; fall back to the
		// domain bounds themselves.
		if maxCount >= 2 {
			return []float64{r.min, r.max}
		}
		return []float64{r.min}
	}

	majors := kHi - kLo + 1
	if majors > maxCount {
		stride := (majors + maxCount - 1) / maxCount
		out := make([]float64, 0, maxCount)
		for k := kLo; k <= kHi; k += stride {
			out = append(out, math.Pow(r.base, float64(k)))
		}
		return out
	}

	withMinors := r.base == 10 && 3*majors+2 <= maxCount
	out := make([]float64, 0, 3*majors+2)
	appendInRange := func(v float64) {
		if v >= r.min*(1-1e-12) && v <= r.max*(1+1e-12) {
			out = append(out, v)
		}
	}
	if withMinors {
		// Leading minors of the decade below the first major.
		below := math.Pow(10, float64(kLo-1))
		appendInRange(2 * below)
		appendInRange(5 * below)
	}
	for k := kLo; k <= kHi; k++ {
		major := math.Pow(r.base, float64(k))
		out = append(out, major)
		if withMinors {
			appendInRange(2 * major)
			appendInRange(5 * major)
		}
	}
	if len(out) > maxCount {
		out = out[:maxCount]
	}
	return out
}

// Range implements Ranged.
func (r LogRange) Range() (float64, float64) { return r.min, r.max }

// Contains implements Ranged.
func (r LogRange) Contains(v float64) bool { return v >= r.min && v <= r.max }

// FormatValue implements Ranged.
func (r LogRange) FormatValue(v float64) string { return formatFloat(v) }
