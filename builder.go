package charts

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/charts/coord"
	"github.com/gogpu/charts/drawing"
	"github.com/gogpu/charts/style"
	"github.com/gogpu/charts/text"
)

// AxisPosition names one side of the plot area.
type AxisPosition int

const (
	PosTop AxisPosition = iota
	PosBottom
	PosLeft
	PosRight
)

// Builder assembles a chart layout on a drawing area: outer margins,
// reserved label bands per side, and an optional caption. Build2D consumes
// it into a render Context.
type Builder struct {
	root *drawing.Area

	margin    [4]int // top, bottom, left, right
	labelSize [4]int // indexed by AxisPosition

	caption      string
	captionStyle style.TextStyle

	measurer text.Measurer
}

// NewBuilder starts a chart layout covering the whole area.
func NewBuilder(area *drawing.Area) *Builder {
	return &Builder{root: area}
}

// Margin reserves the same margin on all four sides.
func (b *Builder) Margin(px int) *Builder {
	for i := range b.margin {
		b.margin[i] = px
	}
	return b
}

// MarginSides reserves individual margins.
func (b *Builder) MarginSides(top, bottom, left, right int) *Builder {
	b.margin = [4]int{top, bottom, left, right}
	return b
}

// XLabelAreaSize reserves a band below the plot for x-axis tick labels.
func (b *Builder) XLabelAreaSize(px int) *Builder {
	b.labelSize[PosBottom] = px
	return b
}

// YLabelAreaSize reserves a band left of the plot for y-axis tick labels.
func (b *Builder) YLabelAreaSize(px int) *Builder {
	b.labelSize[PosLeft] = px
	return b
}

// LabelAreaSize reserves a label band on an arbitrary side.
func (b *Builder) LabelAreaSize(pos AxisPosition, px int) *Builder {
	b.labelSize[pos] = px
	return b
}

// Caption draws a centered title above the chart.
func (b *Builder) Caption(title string, ts style.TextStyle) *Builder {
	b.caption = title
	b.captionStyle = ts
	return b
}

// Measurer overrides the text measurer used for label budgeting. By
// default the backend's own EstimateTextSize is consulted.
func (b *Builder) Measurer(m text.Measurer) *Builder {
	b.measurer = m
	return b
}

// Build2D consumes the builder into a Context binding the X and Y
// coordinate specs to the plot area.
//
// Layout impossibility is not an error: when the area is too small for the
// requested margins and label bands, the bands and then the margins are
// dropped so that the chart still renders, and the degrade is logged.
func Build2D[XV, YV any](b *Builder, x coord.Ranged[XV], y coord.Ranged[YV]) (*Context[XV, YV], error) {
	if x == nil || y == nil {
		return nil, fmt.Errorf("charts: %w", coord.ErrInvalidRange)
	}
	area := b.root
	if b.caption != "" {
		titled, err := area.Titled(b.caption, b.captionStyle)
		if err != nil {
			return nil, err
		}
		area = titled
	}

	margin := b.margin
	labels := b.labelSize
	inner := area.Margin(margin[0], margin[1], margin[2], margin[3])
	plotW := widthAfterLabels(inner, labels)
	plotH := heightAfterLabels(inner, labels)
	if plotW < 2 || plotH < 2 {
		// Degrade policy for cramped charts: drop the label bands
		// first, then the margins.
		Logger().Warn("charts: area too small for label bands, dropping labels",
			slog.Int("width", plotW), slog.Int("height", plotH))
		labels = [4]int{}
		if w, h := inner.Dim(); w < 2 || h < 2 {
			Logger().Warn("charts: area too small for margins, dropping margins")
			inner = area
		}
	}

	ctx := &Context[XV, YV]{measurer: b.measurer}

	work := inner
	if labels[PosTop] > 0 {
		ctx.bands[PosTop], work = work.SplitVertically(labels[PosTop] - 1)
	}
	if labels[PosBottom] > 0 {
		_, wh := work.Dim()
		work, ctx.bands[PosBottom] = work.SplitVertically(wh - labels[PosBottom] - 1)
	}
	if labels[PosLeft] > 0 {
		ctx.bands[PosLeft], work = work.SplitHorizontally(labels[PosLeft] - 1)
	}
	if labels[PosRight] > 0 {
		ww, _ := work.Dim()
		work, ctx.bands[PosRight] = work.SplitHorizontally(ww - labels[PosRight] - 1)
	}
	ctx.plot = work

	pw, ph := work.Dim()
	ctx.cart = coord.NewCartesian2D(x, y, 0, pw-1, 0, ph-1)
	return ctx, nil
}

func widthAfterLabels(a *drawing.Area, labels [4]int) int {
	w, _ := a.Dim()
	return w - labels[PosLeft] - labels[PosRight]
}

func heightAfterLabels(a *drawing.Area, labels [4]int) int {
	_, h := a.Dim()
	return h - labels[PosTop] - labels[PosBottom]
}

// Series is implemented by every series renderer. A renderer is a
// stateless function of its samples, the context's coordinate specs, and
// its style: Draw emits primitives and retains nothing.
type Series[XV, YV any] interface {
	Draw(ctx *Context[XV, YV]) error
}

// estimate measures a label through the context's measurer, falling back
// to the backend's own estimate.
func (c *Context[XV, YV]) estimate(s string, ts style.TextStyle) (int, int, error) {
	if c.measurer != nil {
		return c.measurer.Measure(ts.Backend(), s)
	}
	return c.plot.EstimateTextSize(s, ts)
}
