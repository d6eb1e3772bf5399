package coord

import (
	"fmt"
	"math"
)

// Categories is a discrete ordered domain. Each element owns an equal band
// of the pixel interval and maps to the band center, which is where bars
// and category labels sit.
type Categories[T comparable] struct {
	values []T
	index  map[T]int
}

// NewCategories creates a discrete domain from an ordered, duplicate-free
// element list. An empty list is a configuration error.
func NewCategories[T comparable](values []T) (*Categories[T], error) {
	if len(values) == 0 {
		return nil, ErrEmptyDomain
	}
	index := make(map[T]int, len(values))
	for i, v := range values {
		if _, dup := index[v]; dup {
			return nil, fmt.Errorf("%w: duplicate element %v", ErrInvalidRange, v)
		}
		index[v] = i
	}
	vals := make([]T, len(values))
	copy(vals, values)
	return &Categories[T]{values: vals, index: index}, nil
}

var _ Ranged[string] = (*Categories[string])(nil)

// Len returns the number of elements.
func (c *Categories[T]) Len() int { return len(c.values) }

// Values returns the elements in domain order. The slice is shared; do not
// mutate it.
func (c *Categories[T]) Values() []T { return c.values }

// IndexOf returns the position of v in the domain.
func (c *Categories[T]) IndexOf(v T) (int, bool) {
	i, ok := c.index[v]
	return i, ok
}

// band returns the pixel sub-interval owned by element i.
func (c *Categories[T]) band(i int, px PixelRange) PixelRange {
	n := float64(len(c.values))
	span := float64(px.Span())
	return PixelRange{
		Start: px.Start + int(math.Round(float64(i)/n*span)),
		End:   px.Start + int(math.Round(float64(i+1)/n*span)),
	}
}

// Map implements Ranged. There is no clamping for discrete domains:
// non-members map to the interval start and must be screened out with
// Contains beforehand.
func (c *Categories[T]) Map(v T, px PixelRange) int {
	i, ok := c.index[v]
	if !ok {
		return px.Start
	}
	b := c.band(i, px)
	return b.Start + b.Span()/2
}

// Unmap implements Ranged by locating the band the pixel falls in.
func (c *Categories[T]) Unmap(pixel int, px PixelRange) (T, bool) {
	var zero T
	span := px.Span()
	offset := pixel - px.Start
	if span < 0 {
		span, offset = -span, -offset
	}
	if span == 0 || offset < 0 || offset > span {
		return zero, false
	}
	// Integer band arithmetic keeps boundary pixels deterministic: the
	// shared edge between two bands belongs to the higher band.
	i := offset * len(c.values) / span
	if i == len(c.values) {
		i--
	}
	return c.values[i], true
}

// KeyPoints implements Ranged: every element, or a uniform stride subsample
// once the element count exceeds maxCount.
func (c *Categories[T]) KeyPoints(maxCount int) []T {
	if maxCount <= 0 {
		return nil
	}
	n := len(c.values)
	if n <= maxCount {
		out := make([]T, n)
		copy(out, c.values)
		return out
	}
	stride := (n + maxCount - 1) / maxCount
	out := make([]T, 0, maxCount)
	for i := 0; i < n; i += stride {
		out = append(out, c.values[i])
	}
	return out
}

// Range implements Ranged.
func (c *Categories[T]) Range() (T, T) {
	return c.values[0], c.values[len(c.values)-1]
}

// Contains implements Ranged.
func (c *Categories[T]) Contains(v T) bool {
	_, ok := c.index[v]
	return ok
}

// FormatValue implements Ranged.
func (c *Categories[T]) FormatValue(v T) string { return fmt.Sprint(v) }
