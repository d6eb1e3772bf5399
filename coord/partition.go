package coord

import (
	"fmt"
	"math"
)

// Segment is one continuous piece of a partitioned domain.
type Segment struct {
	Lo, Hi float64
}

// Partitioned splits a numeric domain at explicit breakpoints into
// independent linear segments, the broken-axis mode. Each segment receives
// a pixel share proportional to its length; values falling in a gap between
// segments clamp to the end of the segment below the gap.
type Partitioned struct {
	segments []Segment
	// cum[i] is the fraction of the pixel span consumed before segment i;
	// cum[len(segments)] is 1.
	cum []float64
}

var _ Ranged[float64] = (*Partitioned)(nil)

// NewPartitioned creates a broken axis from ascending, non-overlapping,
// non-empty segments.
func NewPartitioned(segments []Segment) (*Partitioned, error) {
	if len(segments) == 0 {
		return nil, fmt.Errorf("%w: no segments", ErrInvalidRange)
	}
	total := 0.0
	for i, s := range segments {
		if s.Lo >= s.Hi {
			return nil, fmt.Errorf("%w: segment %d [%v, %v]", ErrInvalidRange, i, s.Lo, s.Hi)
		}
		if i > 0 && s.Lo < segments[i-1].Hi {
			return nil, fmt.Errorf("%w: segment %d overlaps its predecessor", ErrInvalidRange, i)
		}
		total += s.Hi - s.Lo
	}
	segs := make([]Segment, len(segments))
	copy(segs, segments)
	cum := make([]float64, len(segs)+1)
	acc := 0.0
	for i, s := range segs {
		cum[i] = acc / total
		acc += s.Hi - s.Lo
	}
	cum[len(segs)] = 1
	return &Partitioned{segments: segs, cum: cum}, nil
}

// NewBrokenAxis is shorthand for the common two-segment broken axis.
func NewBrokenAxis(lo1, hi1, lo2, hi2 float64) (*Partitioned, error) {
	return NewPartitioned([]Segment{{lo1, hi1}, {lo2, hi2}})
}

// Segments returns the segments in ascending order. The slice is shared;
// do not mutate it.
func (p *Partitioned) Segments() []Segment { return p.segments }

// band returns the pixel sub-interval owned by segment i.
func (p *Partitioned) band(i int, px PixelRange) PixelRange {
	span := float64(px.Span())
	return PixelRange{
		Start: px.Start + int(math.Round(p.cum[i]*span)),
		End:   px.Start + int(math.Round(p.cum[i+1]*span)),
	}
}

// segmentFor locates the segment owning v: the containing segment, or for
// gap values the segment below the gap. A shared boundary between adjacent
// contiguous segments belongs to the higher segment.
func (p *Partitioned) segmentFor(v float64) int {
	for i := len(p.segments) - 1; i > 0; i-- {
		if v >= p.segments[i].Lo {
			return i
		}
	}
	return 0
}

// Map implements Ranged. Values outside [first.Lo, last.Hi] clamp to the
// overall boundary; gap values clamp within their neighboring segment.
func (p *Partitioned) Map(v float64, px PixelRange) int {
	i := p.segmentFor(v)
	s := p.segments[i]
	return mapLinear(v, s.Lo, s.Hi, p.band(i, px))
}

// Unmap implements Ranged: it finds the segment band containing the pixel
// and inverts that segment's linear mapping exactly.
func (p *Partitioned) Unmap(pixel int, px PixelRange) (float64, bool) {
	if !px.contains(pixel) {
		return 0, false
	}
	for i := range p.segments {
		b := p.band(i, px)
		if b.contains(pixel) {
			return unmapLinear(pixel, p.segments[i].Lo, p.segments[i].Hi, b)
		}
	}
	return 0, false
}

// KeyPoints implements Ranged: each segment generates nice ticks from a
// budget proportional to its pixel share, concatenated in ascending order.
func (p *Partitioned) KeyPoints(maxCount int) []float64 {
	if maxCount <= 0 {
		return nil
	}
	out := make([]float64, 0, maxCount)
	for i, s := range p.segments {
		budget := int(math.Round((p.cum[i+1] - p.cum[i]) * float64(maxCount)))
		if budget < 1 {
			budget = 1
		}
		for _, v := range niceKeyPoints(s.Lo, s.Hi, budget, 0) {
			if len(out) == maxCount {
				return out
			}
			// A boundary shared by contiguous segments would
			// otherwise tick twice.
			if len(out) > 0 && v == out[len(out)-1] {
				continue
			}
			out = append(out, v)
		}
	}
	return out
}

// Range implements Ranged.
func (p *Partitioned) Range() (float64, float64) {
	return p.segments[0].Lo, p.segments[len(p.segments)-1].Hi
}

// Contains implements Ranged: gap values are outside the domain.
func (p *Partitioned) Contains(v float64) bool {
	for _, s := range p.segments {
		if v >= s.Lo && v <= s.Hi {
			return true
		}
	}
	return false
}

// FormatValue implements Ranged.
func (p *Partitioned) FormatValue(v float64) string { return formatFloat(v) }
