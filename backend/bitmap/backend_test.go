package bitmap

import (
	"bytes"
	"errors"
	"image/png"
	"testing"

	"github.com/gogpu/charts/backend"
)

var black = backend.Color{Alpha: 1}

func TestNew_WhiteSurface(t *testing.T) {
	b := New(40, 30)
	if w, h := b.Size(); w != 40 || h != 30 {
		t.Fatalf("Size = (%d, %d)", w, h)
	}
	c := b.Pixmap().GetPixel(20, 15)
	if c.R != 255 || c.G != 255 || c.B != 255 {
		t.Errorf("fresh surface not white: %+v", c)
	}
}

func TestDrawLine_Horizontal(t *testing.T) {
	b := New(20, 20)
	if err := b.DrawLine(backend.Pt(2, 10), backend.Pt(17, 10), backend.Style{Color: black, StrokeWidth: 1}); err != nil {
		t.Fatal(err)
	}
	for x := 2; x <= 17; x++ {
		if c := b.Pixmap().GetPixel(x, 10); c.R != 0 {
			t.Fatalf("pixel (%d, 10) not painted", x)
		}
	}
	if c := b.Pixmap().GetPixel(1, 10); c.R != 255 {
		t.Error("pixel before the line painted")
	}
}

func TestDrawLine_ThickStroke(t *testing.T) {
	b := New(20, 20)
	if err := b.DrawLine(backend.Pt(2, 10), backend.Pt(17, 10), backend.Style{Color: black, StrokeWidth: 3}); err != nil {
		t.Fatal(err)
	}
	for _, y := range []int{9, 10, 11} {
		if c := b.Pixmap().GetPixel(10, y); c.R != 0 {
			t.Errorf("row %d not covered by 3px stroke", y)
		}
	}
}

func TestDrawRect(t *testing.T) {
	b := New(20, 20)
	s := backend.Style{Color: black, StrokeWidth: 1}
	if err := b.DrawRect(backend.Pt(5, 5), backend.Pt(10, 10), s, true); err != nil {
		t.Fatal(err)
	}
	if c := b.Pixmap().GetPixel(7, 7); c.R != 0 {
		t.Error("filled rect interior not painted")
	}

	b2 := New(20, 20)
	if err := b2.DrawRect(backend.Pt(5, 5), backend.Pt(10, 10), s, false); err != nil {
		t.Fatal(err)
	}
	if c := b2.Pixmap().GetPixel(7, 7); c.R != 255 {
		t.Error("outlined rect interior painted")
	}
	if c := b2.Pixmap().GetPixel(5, 7); c.R != 0 {
		t.Error("outline edge missing")
	}
}

func TestFillPolygon_Triangle(t *testing.T) {
	b := New(30, 30)
	tri := []backend.Coord{{X: 15, Y: 5}, {X: 25, Y: 25}, {X: 5, Y: 25}}
	if err := b.FillPolygon(tri, backend.Style{Color: black}); err != nil {
		t.Fatal(err)
	}
	if c := b.Pixmap().GetPixel(15, 15); c.R != 0 {
		t.Error("triangle interior not filled")
	}
	if c := b.Pixmap().GetPixel(2, 10); c.R != 255 {
		t.Error("pixel outside triangle painted")
	}
	err := b.FillPolygon(tri[:2], backend.Style{Color: black})
	if !errors.Is(err, backend.ErrInvalidGeometry) {
		t.Errorf("degenerate polygon: got %v", err)
	}
}

func TestDrawCircle(t *testing.T) {
	b := New(30, 30)
	if err := b.DrawCircle(backend.Pt(15, 15), 6, backend.Style{Color: black}, true); err != nil {
		t.Fatal(err)
	}
	if c := b.Pixmap().GetPixel(15, 15); c.R != 0 {
		t.Error("filled circle center not painted")
	}
	if c := b.Pixmap().GetPixel(15, 5); c.R != 255 {
		t.Error("pixel outside radius painted")
	}
	if err := b.DrawCircle(backend.Pt(0, 0), -1, backend.Style{Color: black}, false); !errors.Is(err, backend.ErrInvalidGeometry) {
		t.Errorf("negative radius: got %v", err)
	}
}

func TestDrawText_PaintsAndMeasures(t *testing.T) {
	b := New(100, 40)
	ts := backend.TextStyle{Color: black, Size: 13}
	w, h, err := b.EstimateTextSize("abcd", ts)
	if err != nil {
		t.Fatal(err)
	}
	if w != 4*7 || h != 13 {
		t.Errorf("Face7x13 estimate = (%d, %d), want (28, 13)", w, h)
	}
	if err := b.DrawText("abcd", ts, backend.Pt(5, 5)); err != nil {
		t.Fatal(err)
	}
	painted := false
	for y := 5; y < 5+h && !painted; y++ {
		for x := 5; x < 5+w; x++ {
			if b.Pixmap().GetPixel(x, y).R != 255 {
				painted = true
				break
			}
		}
	}
	if !painted {
		t.Error("no glyph pixels painted")
	}
}

func TestDrawText_RotationSwapsExtent(t *testing.T) {
	b := New(100, 100)
	ts := backend.TextStyle{Color: black, Size: 13, Rotation: backend.Rotate90}
	w, h, err := b.EstimateTextSize("abcd", ts)
	if err != nil {
		t.Fatal(err)
	}
	if w != 13 || h != 28 {
		t.Errorf("rotated estimate = (%d, %d), want (13, 28)", w, h)
	}
	if err := b.DrawText("abcd", ts, backend.Pt(40, 30)); err != nil {
		t.Fatal(err)
	}
	// Painted pixels stay within the rotated box.
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			if b.Pixmap().GetPixel(x, y).R == 255 {
				continue
			}
			if x < 40 || x >= 40+13 || y < 30 || y >= 30+28 {
				t.Fatalf("pixel (%d, %d) outside rotated text box", x, y)
			}
		}
	}
}

func TestBlitBitmap(t *testing.T) {
	b := New(10, 10)
	rgb := []byte{255, 0, 0, 0, 255, 0}
	if err := b.BlitBitmap(backend.Pt(2, 3), 2, 1, rgb); err != nil {
		t.Fatal(err)
	}
	if c := b.Pixmap().GetPixel(2, 3); c.R != 255 || c.G != 0 {
		t.Errorf("blit pixel 0 = %+v", c)
	}
	if c := b.Pixmap().GetPixel(3, 3); c.G != 255 {
		t.Errorf("blit pixel 1 = %+v", c)
	}
	if err := b.BlitBitmap(backend.Pt(0, 0), 4, 4, rgb); !errors.Is(err, backend.ErrInvalidGeometry) {
		t.Errorf("short buffer: got %v", err)
	}
}

func TestEncodePNG_RoundTrip(t *testing.T) {
	b := New(17, 11)
	var buf bytes.Buffer
	if err := b.EncodePNG(&buf); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 17 || img.Bounds().Dy() != 11 {
		t.Errorf("decoded bounds = %v", img.Bounds())
	}
}

func TestBlendPixel_Alpha(t *testing.T) {
	p := NewPixmap(2, 2)
	p.Clear(backend.Color{R: 255, G: 255, B: 255, Alpha: 1})
	p.BlendPixel(0, 0, backend.Color{Alpha: 0.5})
	c := p.GetPixel(0, 0)
	if c.R < 120 || c.R > 135 {
		t.Errorf("half-alpha black over white = %d, want ~128", c.R)
	}
}
