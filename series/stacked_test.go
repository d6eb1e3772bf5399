package series

import (
	"errors"
	"testing"

	"github.com/gogpu/charts/backend"
	"github.com/gogpu/charts/style"
)

func TestStacked_CumulativeTop(t *testing.T) {
	st := NewStacked([]float64{0, 5, 10}).
		Add([]float64{1, 2, 3}, style.Shape(style.Blue)).
		Add([]float64{4, 5, 6}, style.Shape(style.Red))

	top := st.CumulativeTop(1)
	want := []float64{5, 7, 9}
	for i, v := range top {
		if v != want[i] {
			t.Errorf("top[%d] = %v, want %v", i, v, want[i])
		}
	}
	// Stack sum is exact: the silhouette equals the per-x totals.
	first := st.CumulativeTop(0)
	if first[0] != 1 || first[1] != 2 || first[2] != 3 {
		t.Errorf("first layer top = %v", first)
	}
}

func TestStacked_DrawsLayersInCallerOrder(t *testing.T) {
	ctx, rec := newChart(t)
	st := NewStacked([]float64{0, 10}).
		Add([]float64{2, 2}, style.Shape(style.Blue)).
		Add([]float64{3, 3}, style.Shape(style.Red))
	if err := ctx.Draw(st); err != nil {
		t.Fatal(err)
	}
	polys := rec.OpsOfKind(backend.OpPolygon)
	if len(polys) != 2 {
		t.Fatalf("got %d polygons, want 2", len(polys))
	}
	if polys[0].Style.Color != style.Blue.Backend() {
		t.Error("first added layer must paint first")
	}
	// Second layer's top contour sits above the first's.
	if polys[1].Points[0].Y >= polys[0].Points[0].Y {
		t.Errorf("layer 2 top %d not above layer 1 top %d",
			polys[1].Points[0].Y, polys[0].Points[0].Y)
	}
}

func TestStacked_LengthMismatch(t *testing.T) {
	ctx, _ := newChart(t)
	st := NewStacked([]float64{0, 5, 10}).Add([]float64{1, 2}, style.Shape(style.Blue))
	if err := ctx.Draw(st); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("got %v, want ErrLengthMismatch", err)
	}
}
