package coord

import (
	"errors"
	"testing"
)

func TestCategories_MapToBandCenters(t *testing.T) {
	c, err := NewCategories([]string{"a", "b", "c", "d"})
	if err != nil {
		t.Fatal(err)
	}
	px := PixelRange{0, 400}
	// Four bands of 100 pixels; elements sit at band centers.
	want := map[string]int{"a": 50, "b": 150, "c": 250, "d": 350}
	for v, wantPx := range want {
		if got := c.Map(v, px); got != wantPx {
			t.Errorf("Map(%q) = %d, want %d", v, got, wantPx)
		}
	}
}

func TestCategories_NonMemberPolicy(t *testing.T) {
	c, _ := NewCategories([]string{"a", "b"})
	px := PixelRange{10, 110}
	if c.Contains("zzz") {
		t.Error("Contains must reject non-members")
	}
	// No clamping for discrete domains: non-members map to the interval
	// start and callers are expected to have checked Contains.
	if got := c.Map("zzz", px); got != 10 {
		t.Errorf("non-member Map = %d, want interval start", got)
	}
}

func TestCategories_Unmap(t *testing.T) {
	c, _ := NewCategories([]int{10, 20, 30})
	px := PixelRange{0, 300}
	tests := []struct {
		pixel int
		want  int
		ok    bool
	}{
		{0, 10, true},
		{99, 10, true},
		{100, 20, true},
		{250, 30, true},
		{300, 30, true},
		{301, 0, false},
	}
	for _, tt := range tests {
		got, ok := c.Unmap(tt.pixel, px)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("Unmap(%d) = %v, %v, want %v, %v", tt.pixel, got, ok, tt.want, tt.ok)
		}
	}
}

func TestCategories_KeyPoints(t *testing.T) {
	c, _ := NewCategories([]string{"a", "b", "c", "d", "e"})
	all := c.KeyPoints(10)
	if len(all) != 5 {
		t.Fatalf("KeyPoints(10) = %v, want all five elements", all)
	}

	sub := c.KeyPoints(3)
	if len(sub) > 3 {
		t.Fatalf("KeyPoints(3) = %v, exceeds bound", sub)
	}
	// Uniform stride subsample keeps the first element.
	if sub[0] != "a" {
		t.Errorf("subsample must start at the first element, got %v", sub)
	}
}

func TestCategories_Errors(t *testing.T) {
	if _, err := NewCategories([]string{}); !errors.Is(err, ErrEmptyDomain) {
		t.Errorf("empty domain error = %v, want ErrEmptyDomain", err)
	}
	if _, err := NewCategories([]string{"x", "x"}); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("duplicate element error = %v, want ErrInvalidRange", err)
	}
}

func TestCategories_RoundTrip(t *testing.T) {
	c, _ := NewCategories([]string{"jan", "feb", "mar"})
	px := PixelRange{0, 299}
	for _, v := range c.Values() {
		p := c.Map(v, px)
		back, ok := c.Unmap(p, px)
		if !ok || back != v {
			t.Errorf("round trip %q -> %d -> %q, %v", v, p, back, ok)
		}
	}
}
