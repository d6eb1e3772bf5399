package coord

import (
	"errors"
	"testing"
	"time"
)

func TestTimeRange_MapBoundaries(t *testing.T) {
	min := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	max := min.Add(24 * time.Hour)
	r, err := NewTimeRange(min, max)
	if err != nil {
		t.Fatal(err)
	}
	px := PixelRange{0, 1440}
	if got := r.Map(min, px); got != 0 {
		t.Errorf("Map(min) = %d, want 0", got)
	}
	if got := r.Map(max, px); got != 1440 {
		t.Errorf("Map(max) = %d, want 1440", got)
	}
	if got := r.Map(min.Add(12*time.Hour), px); got != 720 {
		t.Errorf("Map(noon) = %d, want 720", got)
	}
	// Clamping.
	if got := r.Map(min.Add(-time.Hour), px); got != 0 {
		t.Errorf("before-domain instant must clamp, got %d", got)
	}
}

func TestTimeRange_KeyPointsAlignedAndBounded(t *testing.T) {
	min := time.Date(2024, 6, 1, 10, 7, 0, 0, time.UTC)
	max := min.Add(6 * time.Hour)
	r, _ := NewTimeRange(min, max)

	for _, n := range []int{2, 4, 8, 24} {
		pts := r.KeyPoints(n)
		if len(pts) == 0 || len(pts) > n {
			t.Fatalf("KeyPoints(%d) returned %d ticks", n, len(pts))
		}
		for i, p := range pts {
			if p.Before(min) || p.After(max) {
				t.Errorf("tick %v outside domain", p)
			}
			if i > 0 && !pts[i-1].Before(p) {
				t.Errorf("ticks not ascending: %v", pts)
			}
		}
	}

	// A 6h domain with budget 8 ticks hourly, aligned to whole hours.
	pts := r.KeyPoints(8)
	for _, p := range pts {
		if p.Minute() != 0 || p.Second() != 0 {
			t.Errorf("tick %v not aligned to the hour", p)
		}
	}
}

func TestTimeRange_KeyPointsDeterministic(t *testing.T) {
	min := time.Date(2023, 3, 14, 1, 59, 26, 0, time.UTC)
	r, _ := NewTimeRange(min, min.Add(100*time.Minute))
	a := r.KeyPoints(7)
	b := r.KeyPoints(7)
	if len(a) != len(b) {
		t.Fatal("tick generation not deterministic")
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			t.Fatal("tick generation not deterministic")
		}
	}
}

func TestTimeRange_RoundTrip(t *testing.T) {
	min := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	r, _ := NewTimeRange(min, min.Add(time.Hour))
	px := PixelRange{0, 3600}
	v := min.Add(20 * time.Minute)
	p := r.Map(v, px)
	back, ok := r.Unmap(p, px)
	if !ok {
		t.Fatal("Unmap reported out of range")
	}
	if d := back.Sub(v); d > time.Second || d < -time.Second {
		t.Errorf("round trip drifted by %v", d)
	}
}

func TestNewTimeRange_Invalid(t *testing.T) {
	now := time.Now()
	if _, err := NewTimeRange(now, now.Add(-time.Minute)); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("inverted time range error = %v, want ErrInvalidRange", err)
	}
}

func TestTimeRange_FormatBySpan(t *testing.T) {
	base := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	short, _ := NewTimeRange(base, base.Add(30*time.Second))
	if got := short.FormatValue(base); got != "07:08:09" {
		t.Errorf("sub-minute label = %q", got)
	}
	day, _ := NewTimeRange(base, base.Add(10*time.Hour))
	if got := day.FormatValue(base); got != "07:08" {
		t.Errorf("intraday label = %q", got)
	}
	year, _ := NewTimeRange(base, base.Add(400*24*time.Hour))
	if got := year.FormatValue(base); got != "2024-05-06" {
		t.Errorf("multi-year label = %q", got)
	}
}
