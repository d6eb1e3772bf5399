package coord

import (
	"fmt"
	"time"
)

// TimeRange is a continuous date-time domain. Mapping is linear in elapsed
// time; tick steps come from a ladder of calendar-friendly durations
// instead of raw powers of ten.
type TimeRange struct {
	min, max time.Time
}

var _ Ranged[time.Time] = TimeRange{}

// timeSteps is the candidate tick step ladder, ascending. Months and years
// are approximated by fixed day counts; alignment stays deterministic.
var timeSteps = []time.Duration{
	time.Second,
	2 * time.Second,
	5 * time.Second,
	15 * time.Second,
	30 * time.Second,
	time.Minute,
	2 * time.Minute,
	5 * time.Minute,
	15 * time.Minute,
	30 * time.Minute,
	time.Hour,
	2 * time.Hour,
	3 * time.Hour,
	6 * time.Hour,
	12 * time.Hour,
	24 * time.Hour,
	48 * time.Hour,
	7 * 24 * time.Hour,
	14 * 24 * time.Hour,
	30 * 24 * time.Hour,
	90 * 24 * time.Hour,
	180 * 24 * time.Hour,
	365 * 24 * time.Hour,
}

// NewTimeRange creates a date-time range. min must not be after max.
func NewTimeRange(min, max time.Time) (TimeRange, error) {
	if min.After(max) {
		return TimeRange{}, fmt.Errorf("%w: [%v, %v]", ErrInvalidRange, min, max)
	}
	return TimeRange{min: min.UTC(), max: max.UTC()}, nil
}

// Map implements Ranged. Out-of-domain instants clamp to the boundary.
func (r TimeRange) Map(v time.Time, px PixelRange) int {
	return mapLinear(
		float64(v.UnixNano()),
		float64(r.min.UnixNano()),
		float64(r.max.UnixNano()),
		px,
	)
}

// Unmap implements Ranged.
func (r TimeRange) Unmap(pixel int, px PixelRange) (time.Time, bool) {
	f, ok := unmapLinear(pixel, float64(r.min.UnixNano()), float64(r.max.UnixNano()), px)
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(0, int64(f)).UTC(), true
}

// KeyPoints implements Ranged: ticks aligned to the smallest ladder step
// that keeps the count within maxCount.
func (r TimeRange) KeyPoints(maxCount int) []time.Time {
	if maxCount <= 0 || !r.min.Before(r.max) {
		return nil
	}
	span := r.max.Sub(r.min)
	step := timeSteps[len(timeSteps)-1]
	for _, s := range timeSteps {
		if int(span/s)+1 <= maxCount {
			step = s
			break
		}
	}

	first := r.min.Truncate(step)
	if first.Before(r.min) {
		first = first.Add(step)
	}
	out := make([]time.Time, 0, maxCount)
	for t := first; !t.After(r.max); t = t.Add(step) {
		if len(out) == maxCount {
			break
		}
		out = append(out, t)
	}
	if len(out) == 0 {
		// Step larger than the span with no aligned instant inside;
		// fall back to the domain start.
		out = append(out, r.min)
	}
	return out
}

// Range implements Ranged.
func (r TimeRange) Range() (time.Time, time.Time) { return r.min, r.max }

// Contains implements Ranged.
func (r TimeRange) Contains(v time.Time) bool {
	return !v.Before(r.min) && !v.After(r.max)
}

// FormatValue implements Ranged, choosing a layout from the domain span:
// seconds for sub-minute domains, clock time for intraday, dates beyond.
func (r TimeRange) FormatValue(v time.Time) string {
	span := r.max.Sub(r.min)
	switch {
	case span <= time.Minute:
		return v.Format("15:04:05")
	case span <= 48*time.Hour:
		return v.Format("15:04")
	case span <= 180*24*time.Hour:
		return v.Format("Jan 02")
	default:
		return v.Format("2006-01-02")
	}
}
