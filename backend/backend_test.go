package backend

import (
	"errors"
	"testing"
)

func TestRotation_Transform(t *testing.T) {
	tests := []struct {
		name   string
		r      Rotation
		x, y   int
		wantX  int
		wantY  int
	}{
		{"none", Rotate0, 1, 0, 1, 0},
		{"quarter", Rotate90, 1, 0, 0, 1},
		{"half", Rotate180, 1, 0, -1, 0},
		{"three quarters", Rotate270, 1, 0, 0, -1},
		{"quarter y", Rotate90, 0, 1, -1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gx, gy := tt.r.Transform(tt.x, tt.y)
			if gx != tt.wantX || gy != tt.wantY {
				t.Errorf("Transform(%d, %d) = (%d, %d), want (%d, %d)",
					tt.x, tt.y, gx, gy, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestColor_Mix(t *testing.T) {
	c := Color{R: 10, G: 20, B: 30, Alpha: 0.8}
	m := c.Mix(0.5)
	if m.Alpha != 0.4 {
		t.Errorf("Mix(0.5) alpha = %v, want 0.4", m.Alpha)
	}
	if m.R != 10 || m.G != 20 || m.B != 30 {
		t.Errorf("Mix must not touch the RGB triple: %+v", m)
	}
}

func TestRecorder_OrderPreserved(t *testing.T) {
	r := NewRecorder(100, 100)
	s := StyleFromColor(Color{Alpha: 1})
	if err := r.DrawLine(Pt(0, 0), Pt(9, 9), s); err != nil {
		t.Fatal(err)
	}
	if err := r.DrawRect(Pt(1, 1), Pt(5, 5), s, true); err != nil {
		t.Fatal(err)
	}
	if err := r.DrawText("hi", TextStyle{Size: 10}, Pt(2, 2)); err != nil {
		t.Fatal(err)
	}
	want := []OpKind{OpLine, OpRect, OpText}
	if len(r.Ops) != len(want) {
		t.Fatalf("recorded %d ops, want %d", len(r.Ops), len(want))
	}
	for i, k := range want {
		if r.Ops[i].Kind != k {
			t.Errorf("op %d kind = %v, want %v", i, r.Ops[i].Kind, k)
		}
	}
}

func TestRecorder_FailureInjection(t *testing.T) {
	r := NewRecorder(10, 10)
	r.FailAfter = 1
	s := StyleFromColor(Color{Alpha: 1})
	if err := r.DrawLine(Pt(0, 0), Pt(1, 1), s); err != nil {
		t.Fatalf("first op: %v", err)
	}
	err := r.DrawLine(Pt(1, 1), Pt(2, 2), s)
	if !errors.Is(err, ErrInjected) {
		t.Fatalf("second op error = %v, want ErrInjected", err)
	}
	var de *DrawingError
	if !errors.As(err, &de) {
		t.Fatal("injected failure must be a *DrawingError")
	}
}

func TestRecorder_InvalidGeometry(t *testing.T) {
	r := NewRecorder(10, 10)
	s := StyleFromColor(Color{Alpha: 1})
	if err := r.DrawPath(nil, s); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("empty path error = %v, want ErrInvalidGeometry", err)
	}
	if err := r.FillPolygon([]Coord{{0, 0}, {1, 1}}, s); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("degenerate polygon error = %v, want ErrInvalidGeometry", err)
	}
	if err := r.DrawCircle(Pt(0, 0), -1, s, false); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("negative radius error = %v, want ErrInvalidGeometry", err)
	}
}

func TestRecorder_EstimateTextSize(t *testing.T) {
	r := NewRecorder(10, 10)
	w, h, err := r.EstimateTextSize("12345", TextStyle{Size: 10})
	if err != nil {
		t.Fatal(err)
	}
	if w != 35 || h != 10 {
		t.Errorf("EstimateTextSize = (%d, %d), want (35, 10)", w, h)
	}
}
