package series

import (
	"github.com/gogpu/charts"
	"github.com/gogpu/charts/backend"
	"github.com/gogpu/charts/style"
)

// OHLC is one open-high-low-close sample.
type OHLC[XV any] struct {
	X    XV
	Open, High, Low, Close float64
}

// Candlestick renders OHLC samples as wick-and-body candles. The body
// style depends on the sign of Close minus Open: gains, losses, and
// unchanged candles each get their own style, so the unchanged case is
// never misread as either direction.
type Candlestick[XV any] struct {
	data      []OHLC[XV]
	gain      style.ShapeStyle
	loss      style.ShapeStyle
	neutral   style.ShapeStyle
	halfWidth int
}

var _ charts.Series[float64, float64] = (*Candlestick[float64])(nil)

// NewCandlestick returns a candlestick series. halfWidth is half the body
// width in pixels.
func NewCandlestick[XV any](data []OHLC[XV], gain, loss, neutral style.ShapeStyle, halfWidth int) *Candlestick[XV] {
	if halfWidth < 1 {
		halfWidth = 3
	}
	return &Candlestick[XV]{
		data: data, gain: gain, loss: loss, neutral: neutral,
		halfWidth: halfWidth,
	}
}

// StyleFor returns the style a candle is drawn with.
func (c *Candlestick[XV]) StyleFor(o OHLC[XV]) style.ShapeStyle {
	switch {
	case o.Close > o.Open:
		return c.gain
	case o.Close < o.Open:
		return c.loss
	default:
		return c.neutral
	}
}

// Draw implements charts.Series. Each candle emits its wick first, then
// its body over it.
func (c *Candlestick[XV]) Draw(ctx *charts.Context[XV, float64]) error {
	plot := ctx.PlotArea()
	for _, o := range c.data {
		s := c.StyleFor(o)
		top := ctx.Translate(o.X, o.High)
		bottom := ctx.Translate(o.X, o.Low)
		if err := plot.DrawLine(top, bottom, strokeOf(s)); err != nil {
			return err
		}
		bodyTop := ctx.Translate(o.X, maxf(o.Open, o.Close))
		bodyBottom := ctx.Translate(o.X, minf(o.Open, o.Close))
		ul := backend.Pt(bodyTop.X-c.halfWidth, bodyTop.Y)
		br := backend.Pt(bodyBottom.X+c.halfWidth, bodyBottom.Y)
		if err := plot.DrawRect(ul, br, s.Filled()); err != nil {
			return err
		}
	}
	return nil
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
