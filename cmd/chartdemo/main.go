// Command chartdemo renders a sample line chart and histogram to PNG and
// SVG files in the current directory.
package main

import (
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/charts"
	"github.com/gogpu/charts/backend/bitmap"
	svgbackend "github.com/gogpu/charts/backend/svg"
	"github.com/gogpu/charts/coord"
	"github.com/gogpu/charts/drawing"
	"github.com/gogpu/charts/series"
	"github.com/gogpu/charts/style"
)

func main() {
	charts.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := renderLinePNG("line.png"); err != nil {
		log.Fatalf("line chart: %v", err)
	}
	if err := renderHistogramSVG("histogram.svg"); err != nil {
		log.Fatalf("histogram: %v", err)
	}
	log.Println("wrote line.png and histogram.svg")
}

func renderLinePNG(path string) error {
	db := bitmap.New(800, 600)

	x, err := coord.NewNumRange(0, 2*math.Pi)
	if err != nil {
		return err
	}
	y, err := coord.NewNumRange(-1.2, 1.2)
	if err != nil {
		return err
	}

	b := charts.NewBuilder(drawing.NewArea(db)).
		Margin(20).
		XLabelAreaSize(35).
		YLabelAreaSize(50).
		Caption("sin(x)", style.Text(style.Font("sans-serif", 20)))
	ctx, err := charts.Build2D(b, x, y)
	if err != nil {
		return err
	}
	if err := ctx.ConfigureMesh().XDesc("x").YDesc("sin(x)").Draw(); err != nil {
		return err
	}

	var samples []series.Sample[float64, float64]
	for i := 0; i <= 200; i++ {
		xv := 2 * math.Pi * float64(i) / 200
		samples = append(samples, series.XY(xv, math.Sin(xv)))
	}
	if err := ctx.Draw(series.NewLine(samples, style.Shape(style.Blue).Stroke(2))); err != nil {
		return err
	}
	if err := ctx.Present(); err != nil {
		return err
	}
	return db.SavePNG(path)
}

func renderHistogramSVG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	db := svgbackend.New(f, 800, 600)

	x, err := coord.NewNumRange(0, 50)
	if err != nil {
		return err
	}
	y, err := coord.NewNumRange(0, 6)
	if err != nil {
		return err
	}

	b := charts.NewBuilder(drawing.NewArea(db)).
		Margin(20).
		XLabelAreaSize(35).
		YLabelAreaSize(50).
		Caption("sample distribution", style.Text(style.Font("sans-serif", 20)))
	ctx, err := charts.Build2D(b, x, y)
	if err != nil {
		return err
	}
	if err := ctx.ConfigureMesh().Draw(); err != nil {
		return err
	}

	values := []float64{3, 7, 8, 12, 14, 14.5, 19, 22, 23, 24, 24.9, 25, 31, 33, 38, 42, 44, 47}
	h, err := series.NewHistogram(values, 5, style.Shape(style.Green))
	if err != nil {
		return err
	}
	if err := ctx.Draw(h); err != nil {
		return err
	}
	return ctx.Present()
}
