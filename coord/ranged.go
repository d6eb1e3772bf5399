// Package coord maps logical value domains onto pixel intervals.
//
// A Ranged binds an ordered value domain (numeric, logarithmic, discrete,
// date-time, nested, or partitioned) to any pixel interval handed to it.
// The mapping is monotonic and deterministic: the same value always maps to
// the same pixel and querying advances no hidden state, so independent
// render passes over equal inputs produce identical output.
//
// Tick generation (KeyPoints) is part of the same abstraction because the
// "nice" positions depend on the domain type: linear domains align ticks to
// 1/2/5 x 10^k step multiples, logarithmic domains tick each power of the
// base, discrete domains enumerate or stride-subsample their elements, and
// composite domains delegate to their children.
package coord

import (
	"errors"
	"math"
)

// Configuration errors surfaced at range construction or use. They are
// never silently clamped away.
var (
	// ErrInvalidRange reports a domain whose minimum exceeds its maximum.
	// Reversed axes are an explicit mode (see Reversed), not inferred
	// from swapped bounds.
	ErrInvalidRange = errors.New("coord: invalid range")

	// ErrEmptyDomain reports a discrete domain with no elements.
	ErrEmptyDomain = errors.New("coord: empty discrete domain")

	// ErrNonPositiveLog reports a logarithmic domain touching zero or
	// running negative.
	ErrNonPositiveLog = errors.New("coord: logarithmic domain requires strictly positive bounds")
)

// PixelRange is a closed pixel interval [Start, End]. End may be smaller
// than Start; a descending range flips the mapping direction, which is how
// Y axes put the domain minimum at the bottom of the plot.
type PixelRange struct {
	Start, End int
}

// Span returns End - Start. It is negative for descending ranges.
func (p PixelRange) Span() int { return p.End - p.Start }

// contains reports whether the pixel lies inside the closed interval.
func (p PixelRange) contains(px int) bool {
	lo, hi := p.Start, p.End
	if lo > hi {
		lo, hi = hi, lo
	}
	return px >= lo && px <= hi
}

// Ranged is a coordinate spec: one value domain bound to whichever pixel
// interval each call supplies.
//
// Map clamps out-of-domain values to the boundary for continuous domains.
// Discrete domains cannot clamp meaningfully; they map non-members to the
// interval start, so callers must check Contains first.
type Ranged[T any] interface {
	// Map translates a logical value to a pixel.
	Map(v T, px PixelRange) int

	// Unmap inverts Map. It reports false for pixels outside the
	// interval, and for discrete domains whose bands the pixel misses.
	Unmap(pixel int, px PixelRange) (T, bool)

	// KeyPoints returns at most maxCount tick values in ascending
	// domain order. It is empty only for an empty or zero-width domain,
	// and deterministic for identical inputs.
	KeyPoints(maxCount int) []T

	// Range returns the domain bounds.
	Range() (min, max T)

	// Contains reports whether the value lies in the domain.
	Contains(v T) bool

	// FormatValue renders a value as a tick label.
	FormatValue(v T) string
}

// Tick pairs a tick value with its rendered label.
type Tick[T any] struct {
	Value T
	Label string
}

// TicksOf derives the labelled tick set of a range: KeyPoints passed
// through FormatValue, in the same order.
func TicksOf[T any](r Ranged[T], maxCount int) []Tick[T] {
	points := r.KeyPoints(maxCount)
	ticks := make([]Tick[T], len(points))
	for i, p := range points {
		ticks[i] = Tick[T]{Value: p, Label: r.FormatValue(p)}
	}
	return ticks
}

// mapLinear interpolates v in [lo, hi] onto px, clamping to the domain
// boundary first. The endpoints map exactly to px.Start and px.End.
func mapLinear(v, lo, hi float64, px PixelRange) int {
	if hi <= lo {
		return px.Start
	}
	pos := (v - lo) / (hi - lo)
	if pos < 0 {
		pos = 0
	}
	if pos > 1 {
		pos = 1
	}
	return px.Start + int(math.Round(pos*float64(px.Span())))
}

// unmapLinear inverts mapLinear for pixels inside the interval.
func unmapLinear(pixel int, lo, hi float64, px PixelRange) (float64, bool) {
	if !px.contains(pixel) || px.Span() == 0 {
		return 0, false
	}
	pos := float64(pixel-px.Start) / float64(px.Span())
	return lo + pos*(hi-lo), true
}
