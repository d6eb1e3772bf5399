package coord

import (
	"errors"
	"math"
	"testing"
)

func TestLogRange_Scenario(t *testing.T) {
	r, err := NewLogRange(1, 1000)
	if err != nil {
		t.Fatal(err)
	}
	px := PixelRange{0, 900}

	pts := r.KeyPoints(4)
	want := []float64{1, 10, 100, 1000}
	if len(pts) != len(want) {
		t.Fatalf("KeyPoints(4) = %v, want %v", pts, want)
	}
	for i := range want {
		if math.Abs(pts[i]-want[i]) > 1e-9 {
			t.Fatalf("KeyPoints(4) = %v, want %v", pts, want)
		}
	}

	// Each decade spans one third of the pixel interval.
	p1, p10 := r.Map(1, px), r.Map(10, px)
	if p1 != 0 {
		t.Errorf("Map(1) = %d, want 0", p1)
	}
	if p10 != 300 {
		t.Errorf("Map(10) = %d, want 300 (one third of the span)", p10)
	}
	if got := r.Map(1000, px); got != 900 {
		t.Errorf("Map(1000) = %d, want 900", got)
	}
}

func TestLogRange_MinorTicks(t *testing.T) {
	r, _ := NewLogRange(1, 1000)
	pts := r.KeyPoints(20)
	want := []float64{1, 2, 5, 10, 20, 50, 100, 200, 500, 1000}
	if len(pts) != len(want) {
		t.Fatalf("KeyPoints(20) = %v, want %v", pts, want)
	}
	for i := range want {
		if math.Abs(pts[i]-want[i]) > 1e-9 {
			t.Fatalf("KeyPoints(20) = %v, want %v", pts, want)
		}
	}
}

func TestLogRange_RoundTrip(t *testing.T) {
	r, _ := NewLogRange(0.5, 4096)
	px := PixelRange{0, 1023}
	for _, v := range []float64{0.5, 1, 7.3, 100, 4096} {
		p := r.Map(v, px)
		back, ok := r.Unmap(p, px)
		if !ok {
			t.Fatalf("Unmap(%d) reported out of range", p)
		}
		// One pixel of log-space tolerance.
		ratio := math.Log(4096/0.5) / 1023
		if math.Abs(math.Log(back)-math.Log(v)) > ratio {
			t.Errorf("round trip %v -> %d -> %v exceeds tolerance", v, p, back)
		}
	}
}

func TestLogRange_Clamping(t *testing.T) {
	r, _ := NewLogRange(1, 100)
	px := PixelRange{0, 200}
	if got := r.Map(0.1, px); got != 0 {
		t.Errorf("below-domain value must clamp to Start, got %d", got)
	}
	if got := r.Map(1e6, px); got != 200 {
		t.Errorf("above-domain value must clamp to End, got %d", got)
	}
}

func TestNewLogRange_Errors(t *testing.T) {
	tests := []struct {
		name     string
		min, max float64
		want     error
	}{
		{"zero min", 0, 10, ErrNonPositiveLog},
		{"negative min", -1, 10, ErrNonPositiveLog},
		{"negative max", 1, -10, ErrNonPositiveLog},
		{"inverted", 100, 1, ErrInvalidRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewLogRange(tt.min, tt.max); !errors.Is(err, tt.want) {
				t.Errorf("NewLogRange(%v, %v) error = %v, want %v", tt.min, tt.max, err, tt.want)
			}
		})
	}
	if _, err := NewLogRangeBase(1, 10, 1); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("base 1 must be rejected, got %v", err)
	}
}

func TestLogRange_DecadeSubsample(t *testing.T) {
	r, _ := NewLogRange(1, 1e12)
	pts := r.KeyPoints(5)
	if len(pts) > 5 {
		t.Fatalf("KeyPoints(5) returned %d ticks", len(pts))
	}
	for i := 1; i < len(pts); i++ {
		if pts[i] <= pts[i-1] {
			t.Errorf("ticks not ascending: %v", pts)
		}
	}
}

func TestLogRange_Base2(t *testing.T) {
	r, err := NewLogRangeBase(1, 64, 2)
	if err != nil {
		t.Fatal(err)
	}
	pts := r.KeyPoints(10)
	want := []float64{1, 2, 4, 8, 16, 32, 64}
	if len(pts) != len(want) {
		t.Fatalf("KeyPoints(10) = %v, want %v", pts, want)
	}
	for i := range want {
		if math.Abs(pts[i]-want[i]) > 1e-9 {
			t.Fatalf("KeyPoints(10) = %v, want %v", pts, want)
		}
	}
}
