package charts

import (
	"github.com/gogpu/charts/backend"
	"github.com/gogpu/charts/coord"
	"github.com/gogpu/charts/drawing"
	"github.com/gogpu/charts/text"
)

// Context is a built chart: the plot area, the reserved label bands, and
// the coordinate spec binding logical values to plot pixels. It is the
// target for mesh drawing and for series renderers.
//
// A Context borrows its backend for the duration of one render pass and
// retains no state across passes.
type Context[XV, YV any] struct {
	plot  *drawing.Area
	bands [4]*drawing.Area

	cart     coord.Cartesian2D[XV, YV]
	measurer text.Measurer
}

// PlotArea returns the drawing area mapped by the coordinate spec.
func (c *Context[XV, YV]) PlotArea() *drawing.Area { return c.plot }

// LabelArea returns the reserved label band on one side, or nil when the
// builder reserved none (or the layout dropped it).
func (c *Context[XV, YV]) LabelArea(pos AxisPosition) *drawing.Area {
	return c.bands[pos]
}

// Backend returns the backend the chart draws into.
func (c *Context[XV, YV]) Backend() backend.DrawingBackend { return c.plot.Backend() }

// X returns the x-axis coordinate spec.
func (c *Context[XV, YV]) X() coord.Ranged[XV] { return c.cart.X }

// Y returns the y-axis coordinate spec.
func (c *Context[XV, YV]) Y() coord.Ranged[YV] { return c.cart.Y }

// Translate maps a logical point to a plot-relative pixel coordinate.
// The y-axis runs bottom-up: the domain minimum maps to the bottom edge.
func (c *Context[XV, YV]) Translate(x XV, y YV) backend.Coord {
	return c.cart.Translate(x, y)
}

// ReverseTranslate inverts Translate where both axes support it.
func (c *Context[XV, YV]) ReverseTranslate(p backend.Coord) (XV, YV, bool) {
	return c.cart.ReverseTranslate(p)
}

// Draw renders one series into the plot area. Series drawn later paint
// over series drawn earlier. The first primitive error aborts the series
// and propagates to the caller; the backend's partial state is undefined
// until a successful Present.
func (c *Context[XV, YV]) Draw(s Series[XV, YV]) error {
	return s.Draw(c)
}

// Present flushes the backend's pending output.
func (c *Context[XV, YV]) Present() error {
	return c.plot.Present()
}
