package series

import (
	"testing"

	"github.com/gogpu/charts/backend"
	"github.com/gogpu/charts/stats"
	"github.com/gogpu/charts/style"
)

func TestBoxPlot_GlyphStructure(t *testing.T) {
	ctx, rec := newChart(t)
	items := []BoxItem[float64]{{
		X: 5,
		Stats: stats.Quartiles{
			LowerWhisker: 1, Q1: 3, Median: 5, Q3: 7, UpperWhisker: 9,
		},
	}}
	if err := ctx.Draw(NewBoxPlot(items, style.Shape(style.Blue), 4)); err != nil {
		t.Fatal(err)
	}
	// Stem, two caps, median line; one box rect.
	if n := len(rec.OpsOfKind(backend.OpLine)); n != 4 {
		t.Errorf("got %d lines, want 4", n)
	}
	rects := rec.OpsOfKind(backend.OpRect)
	if len(rects) != 1 {
		t.Fatalf("got %d rects, want 1", len(rects))
	}
	box := rects[0]
	// Box spans Q3 (above) to Q1 (below) on a bottom-up y axis.
	if box.Points[0].Y >= box.Points[1].Y {
		t.Errorf("box corners not top-to-bottom: %+v", box.Points)
	}
	// Median line lies inside the box.
	med := rec.OpsOfKind(backend.OpLine)[3]
	if med.Points[0].Y <= box.Points[0].Y || med.Points[0].Y >= box.Points[1].Y {
		t.Errorf("median %d outside box %+v", med.Points[0].Y, box.Points)
	}
}

func TestErrorBar_Structure(t *testing.T) {
	ctx, rec := newChart(t)
	points := []ErrorPoint[float64]{Symmetric(5.0, 5, 2)}
	if err := ctx.Draw(NewErrorBar(points, style.Shape(style.Red), 3)); err != nil {
		t.Fatal(err)
	}
	if n := len(rec.OpsOfKind(backend.OpLine)); n != 3 {
		t.Errorf("got %d lines, want bar + 2 caps", n)
	}
	circles := rec.OpsOfKind(backend.OpCircle)
	if len(circles) != 1 {
		t.Fatalf("got %d center markers, want 1", len(circles))
	}
	// Center marker sits between the caps.
	bar := rec.OpsOfKind(backend.OpLine)[0]
	c := circles[0].Points[0]
	if c.Y <= bar.Points[0].Y || c.Y >= bar.Points[1].Y {
		t.Errorf("center %d outside bar %+v", c.Y, bar.Points)
	}
}

func TestErrorBar_Symmetric(t *testing.T) {
	p := Symmetric(1.0, 10, 3)
	if p.Low != 7 || p.High != 13 || p.Y != 10 {
		t.Errorf("Symmetric = %+v", p)
	}
}
