// Package charts is a data-visualization rendering engine for Go.
//
// # Overview
//
// charts turns numeric, temporal, and categorical series into primitive
// drawing calls (axes, grids, and plotted shapes) against any target that
// implements the backend drawing contract (in-memory raster, SVG, or a
// custom canvas bridge).
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/charts"
//	    "github.com/gogpu/charts/backend/bitmap"
//	    "github.com/gogpu/charts/coord"
//	    "github.com/gogpu/charts/series"
//	    "github.com/gogpu/charts/style"
//	)
//
//	db := bitmap.New(800, 600)
//	area := drawing.NewArea(db)
//
//	x, _ := coord.NewNumRange(0, 10)
//	y, _ := coord.NewNumRange(0, 100)
//	ctx, _ := charts.Build2D(charts.NewBuilder(area).Margin(10), x, y)
//
//	ctx.ConfigureMesh().Draw()
//	ctx.Draw(series.NewLine(samples, style.Shape(style.Blue)))
//	db.SavePNG("chart.png")
//
// # Architecture
//
// The library is organized into:
//   - coord: logical value domains mapped onto pixel intervals, with tick
//     generation (linear, logarithmic, discrete, date-time, nested,
//     partitioned)
//   - drawing: chart areas, rectangular regions with margins and splits
//   - charts (this package): the chart builder, context, and mesh/grid
//     generator
//   - series: renderers turning samples into primitives (line, area,
//     points, histogram, stacked bars, candlestick, box plot, error bars)
//   - backend: the primitive drawing contract plus concrete targets under
//     backend/bitmap and backend/svg
//   - style, text: paint and font-measurement value types
//
// # Coordinate System
//
// Pixel space follows the framebuffer convention: origin at the top-left,
// X right, Y down. Logical Y axes run bottom-up: the domain minimum maps
// to the bottom edge of the plot.
//
// # Concurrency
//
// A render pass is single-threaded and synchronous. Independent passes on
// independent backends may run in parallel; passes sharing a backend must
// be serialized by the caller.
package charts

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
