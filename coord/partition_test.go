package coord

import (
	"errors"
	"math"
	"testing"
)

func TestPartitioned_ProportionalBands(t *testing.T) {
	// Segments of length 10 and 30 split the span 1:3.
	p, err := NewPartitioned([]Segment{{0, 10}, {70, 100}})
	if err != nil {
		t.Fatal(err)
	}
	px := PixelRange{0, 400}

	if got := p.Map(0, px); got != 0 {
		t.Errorf("Map(0) = %d, want 0", got)
	}
	if got := p.Map(10, px); got != 100 {
		t.Errorf("Map(10) = %d, want 100 (end of first band)", got)
	}
	if got := p.Map(70, px); got != 100 {
		t.Errorf("Map(70) = %d, want 100 (start of second band)", got)
	}
	if got := p.Map(85, px); got != 250 {
		t.Errorf("Map(85) = %d, want 250", got)
	}
	if got := p.Map(100, px); got != 400 {
		t.Errorf("Map(100) = %d, want 400", got)
	}
}

func TestPartitioned_GapClamping(t *testing.T) {
	p, _ := NewBrokenAxis(0, 10, 70, 100)
	px := PixelRange{0, 400}
	// Gap values clamp to the end of the segment below the gap.
	if got := p.Map(40, px); got != 100 {
		t.Errorf("gap value Map = %d, want 100", got)
	}
	if p.Contains(40) {
		t.Error("gap values are outside the domain")
	}
	if !p.Contains(5) || !p.Contains(85) {
		t.Error("segment values are inside the domain")
	}
}

func TestPartitioned_RoundTrip(t *testing.T) {
	p, _ := NewBrokenAxis(0, 10, 70, 100)
	px := PixelRange{0, 400}
	// The shared band-edge pixel is ambiguous between the two segment
	// ends, so the round-trip law is checked on interior values.
	for _, v := range []float64{0, 3.7, 9.5, 71, 85.5, 100} {
		pix := p.Map(v, px)
		back, ok := p.Unmap(pix, px)
		if !ok {
			t.Fatalf("Unmap(%d) reported out of range", pix)
		}
		// One pixel of tolerance in the denser segment.
		if math.Abs(back-v) > 0.35 {
			t.Errorf("round trip %v -> %d -> %v exceeds tolerance", v, pix, back)
		}
	}
}

func TestPartitioned_KeyPoints(t *testing.T) {
	p, _ := NewBrokenAxis(0, 10, 70, 100)
	pts := p.KeyPoints(12)
	if len(pts) == 0 || len(pts) > 12 {
		t.Fatalf("KeyPoints(12) returned %d ticks", len(pts))
	}
	for i, v := range pts {
		if !p.Contains(v) {
			t.Errorf("tick %v falls in the gap", v)
		}
		if i > 0 && v <= pts[i-1] {
			t.Errorf("ticks not strictly ascending: %v", pts)
		}
	}
	// Determinism.
	again := p.KeyPoints(12)
	for i := range pts {
		if pts[i] != again[i] {
			t.Fatal("tick generation not deterministic")
		}
	}
}

func TestPartitioned_ContiguousSharedBoundary(t *testing.T) {
	p, err := NewPartitioned([]Segment{{0, 50}, {50, 100}})
	if err != nil {
		t.Fatal(err)
	}
	pts := p.KeyPoints(10)
	for i := 1; i < len(pts); i++ {
		if pts[i] == pts[i-1] {
			t.Errorf("shared boundary ticked twice: %v", pts)
		}
	}
	// The shared value maps deterministically (higher segment owns it).
	px := PixelRange{0, 100}
	if a, b := p.Map(50, px), p.Map(50, px); a != b {
		t.Errorf("shared boundary mapping unstable: %d vs %d", a, b)
	}
}

func TestNewPartitioned_Errors(t *testing.T) {
	tests := []struct {
		name string
		segs []Segment
	}{
		{"empty", nil},
		{"inverted segment", []Segment{{5, 1}}},
		{"overlap", []Segment{{0, 10}, {5, 20}}},
		{"zero width", []Segment{{3, 3}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewPartitioned(tt.segs); !errors.Is(err, ErrInvalidRange) {
				t.Errorf("error = %v, want ErrInvalidRange", err)
			}
		})
	}
}
