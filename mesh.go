package charts

import (
	"log/slog"

	"github.com/gogpu/charts/backend"
	"github.com/gogpu/charts/coord"
	"github.com/gogpu/charts/style"
)

const (
	// labelPad separates adjacent tick labels and keeps them off the
	// tick marks.
	labelPad = 4

	// minTicks is the fallback tick count when even a halved budget
	// still produces overlapping labels.
	minTicks = 3
)

// MeshStyle configures the chart mesh: grid lines, axis baselines, tick
// marks, tick labels, and axis descriptions. Obtain one from
// [Context.ConfigureMesh], adjust it fluently, then call Draw.
type MeshStyle[XV, YV any] struct {
	ctx *Context[XV, YV]

	gridStyle  style.ShapeStyle
	axisStyle  style.ShapeStyle
	labelStyle style.TextStyle
	descStyle  style.TextStyle
	tickSize   int

	xDesc, yDesc string

	xFormat func(XV) string
	yFormat func(YV) string

	// 0 means size the budget from measured label widths.
	maxXTicks, maxYTicks int

	disableXMesh, disableYMesh, disableAxes bool
}

// ConfigureMesh starts a mesh configuration with the default look: light
// gray grid lines, black axes, and 10px sans-serif labels.
func (c *Context[XV, YV]) ConfigureMesh() *MeshStyle[XV, YV] {
	return &MeshStyle[XV, YV]{
		ctx:        c,
		gridStyle:  style.Shape(style.LightGray),
		axisStyle:  style.Shape(style.Black),
		labelStyle: style.Text(style.Font(backend.FamilySansSerif, 10)),
		descStyle:  style.Text(style.Font(backend.FamilySansSerif, 12)),
		tickSize:   5,
	}
}

// LightLineStyle sets the grid line style.
func (m *MeshStyle[XV, YV]) LightLineStyle(s style.ShapeStyle) *MeshStyle[XV, YV] {
	m.gridStyle = s
	return m
}

// AxisStyle sets the style of the axis baselines and tick marks.
func (m *MeshStyle[XV, YV]) AxisStyle(s style.ShapeStyle) *MeshStyle[XV, YV] {
	m.axisStyle = s
	return m
}

// LabelStyle sets the tick label text style.
func (m *MeshStyle[XV, YV]) LabelStyle(ts style.TextStyle) *MeshStyle[XV, YV] {
	m.labelStyle = ts
	return m
}

// TickSize sets the tick mark length in pixels.
func (m *MeshStyle[XV, YV]) TickSize(px int) *MeshStyle[XV, YV] {
	m.tickSize = px
	return m
}

// XDesc sets the x-axis description drawn under the x label band.
func (m *MeshStyle[XV, YV]) XDesc(desc string) *MeshStyle[XV, YV] {
	m.xDesc = desc
	return m
}

// YDesc sets the y-axis description drawn along the y label band.
func (m *MeshStyle[XV, YV]) YDesc(desc string) *MeshStyle[XV, YV] {
	m.yDesc = desc
	return m
}

// XLabelFormatter overrides the x range's own FormatValue for tick labels.
func (m *MeshStyle[XV, YV]) XLabelFormatter(f func(XV) string) *MeshStyle[XV, YV] {
	m.xFormat = f
	return m
}

// YLabelFormatter overrides the y range's own FormatValue for tick labels.
func (m *MeshStyle[XV, YV]) YLabelFormatter(f func(YV) string) *MeshStyle[XV, YV] {
	m.yFormat = f
	return m
}

// MaxXTicks fixes the x tick budget instead of sizing it from measured
// label widths.
func (m *MeshStyle[XV, YV]) MaxXTicks(n int) *MeshStyle[XV, YV] {
	m.maxXTicks = n
	return m
}

// MaxYTicks fixes the y tick budget instead of sizing it from measured
// label heights.
func (m *MeshStyle[XV, YV]) MaxYTicks(n int) *MeshStyle[XV, YV] {
	m.maxYTicks = n
	return m
}

// DisableXMesh suppresses the vertical grid lines.
func (m *MeshStyle[XV, YV]) DisableXMesh() *MeshStyle[XV, YV] {
	m.disableXMesh = true
	return m
}

// DisableYMesh suppresses the horizontal grid lines.
func (m *MeshStyle[XV, YV]) DisableYMesh() *MeshStyle[XV, YV] {
	m.disableYMesh = true
	return m
}

// DisableAxes suppresses the axis baselines and tick marks.
func (m *MeshStyle[XV, YV]) DisableAxes() *MeshStyle[XV, YV] {
	m.disableAxes = true
	return m
}

// Draw renders the mesh into the plot area and label bands. Emission order
// is back to front: grid lines, then axis baselines, then tick marks, then
// tick labels, then axis descriptions, so later layers paint over earlier
// ones and series drawn afterwards paint over the grid.
func (m *MeshStyle[XV, YV]) Draw() error {
	xTicks, err := m.xTicks()
	if err != nil {
		return err
	}
	yTicks, err := m.yTicks()
	if err != nil {
		return err
	}

	plot := m.ctx.plot
	pw, ph := plot.Dim()

	if !m.disableXMesh {
		for _, t := range xTicks {
			px := m.ctx.cart.X.Map(t.Value, m.ctx.cart.XPixels)
			err := plot.DrawLine(backend.Pt(px, 0), backend.Pt(px, ph-1), m.gridStyle)
			if err != nil {
				return err
			}
		}
	}
	if !m.disableYMesh {
		for _, t := range yTicks {
			py := m.ctx.cart.Y.Map(t.Value, m.ctx.cart.YPixels)
			err := plot.DrawLine(backend.Pt(0, py), backend.Pt(pw-1, py), m.gridStyle)
			if err != nil {
				return err
			}
		}
	}

	if !m.disableAxes {
		if err := plot.DrawLine(backend.Pt(0, ph-1), backend.Pt(pw-1, ph-1), m.axisStyle); err != nil {
			return err
		}
		if err := plot.DrawLine(backend.Pt(0, 0), backend.Pt(0, ph-1), m.axisStyle); err != nil {
			return err
		}
	}

	if err := m.drawXBand(xTicks); err != nil {
		return err
	}
	return m.drawYBand(yTicks)
}

// drawXBand emits tick marks, labels, and the axis description into the
// bottom label band.
func (m *MeshStyle[XV, YV]) drawXBand(ticks []coord.Tick[XV]) error {
	band := m.ctx.bands[PosBottom]
	if band == nil {
		return nil
	}
	// The band spans the full chart width; plot pixels shift by the
	// offset between the two rectangles.
	off := m.ctx.plot.Rect().X0 - band.Rect().X0
	for _, t := range ticks {
		bx := off + m.ctx.cart.X.Map(t.Value, m.ctx.cart.XPixels)
		if !m.disableAxes {
			err := band.DrawLine(backend.Pt(bx, 0), backend.Pt(bx, m.tickSize), m.axisStyle)
			if err != nil {
				return err
			}
		}
		ts := m.labelStyle.WithAnchor(backend.HCenter, backend.VTop)
		if err := band.DrawText(t.Label, ts, backend.Pt(bx, m.tickSize+2)); err != nil {
			return err
		}
	}
	if m.xDesc != "" {
		bw, bh := band.Dim()
		ts := m.descStyle.WithAnchor(backend.HCenter, backend.VBottom)
		if err := band.DrawText(m.xDesc, ts, backend.Pt(bw/2, bh-1)); err != nil {
			return err
		}
	}
	return nil
}

// drawYBand emits tick marks, labels, and the axis description into the
// left label band.
func (m *MeshStyle[XV, YV]) drawYBand(ticks []coord.Tick[YV]) error {
	band := m.ctx.bands[PosLeft]
	if band == nil {
		return nil
	}
	bw, bh := band.Dim()
	off := m.ctx.plot.Rect().Y0 - band.Rect().Y0
	for _, t := range ticks {
		by := off + m.ctx.cart.Y.Map(t.Value, m.ctx.cart.YPixels)
		if !m.disableAxes {
			err := band.DrawLine(backend.Pt(bw-1-m.tickSize, by), backend.Pt(bw-1, by), m.axisStyle)
			if err != nil {
				return err
			}
		}
		ts := m.labelStyle.WithAnchor(backend.HRight, backend.VCenter)
		if err := band.DrawText(t.Label, ts, backend.Pt(bw-1-m.tickSize-2, by)); err != nil {
			return err
		}
	}
	if m.yDesc != "" {
		ts := m.descStyle.
			WithAnchor(backend.HCenter, backend.VTop).
			WithRotation(backend.Rotate270)
		if err := band.DrawText(m.yDesc, ts, backend.Pt(0, bh/2)); err != nil {
			return err
		}
	}
	return nil
}

// xTicks resolves the x tick set. With no explicit budget, the budget is
// derived from the measured width of the widest domain boundary label; if
// the resulting labels would still overlap, the budget is halved once, and
// after that a minimal fixed count is used.
func (m *MeshStyle[XV, YV]) xTicks() ([]coord.Tick[XV], error) {
	if m.maxXTicks > 0 {
		return m.relabelX(coord.TicksOf(m.ctx.X(), m.maxXTicks)), nil
	}
	pw, _ := m.ctx.plot.Dim()
	lw, err := m.widestBoundaryLabelX()
	if err != nil {
		return nil, err
	}
	budget := pw / (lw + labelPad)
	if budget < 2 {
		budget = 2
	}
	Logger().Debug("charts: x tick budget",
		slog.Int("plot_width", pw), slog.Int("label_width", lw), slog.Int("budget", budget))

	ticks := m.relabelX(coord.TicksOf(m.ctx.X(), budget))
	over, err := m.xOverlaps(ticks, pw)
	if err != nil {
		return nil, err
	}
	if over {
		Logger().Warn("charts: x tick labels overlap, halving budget",
			slog.Int("budget", budget), slog.Int("ticks", len(ticks)))
		ticks = m.relabelX(coord.TicksOf(m.ctx.X(), max(budget/2, 2)))
		if over, err = m.xOverlaps(ticks, pw); err != nil {
			return nil, err
		} else if over {
			ticks = m.relabelX(coord.TicksOf(m.ctx.X(), minTicks))
		}
	}
	return ticks, nil
}

// yTicks resolves the y tick set the same way, budgeted by label height.
func (m *MeshStyle[XV, YV]) yTicks() ([]coord.Tick[YV], error) {
	if m.maxYTicks > 0 {
		return m.relabelY(coord.TicksOf(m.ctx.Y(), m.maxYTicks)), nil
	}
	_, ph := m.ctx.plot.Dim()
	lo, _ := m.ctx.Y().Range()
	_, lh, err := m.ctx.estimate(m.formatY(lo), m.labelStyle)
	if err != nil {
		return nil, err
	}
	budget := ph / (2 * max(lh, 1))
	if budget < 2 {
		budget = 2
	}
	Logger().Debug("charts: y tick budget",
		slog.Int("plot_height", ph), slog.Int("label_height", lh), slog.Int("budget", budget))
	return m.relabelY(coord.TicksOf(m.ctx.Y(), budget)), nil
}

// widestBoundaryLabelX measures the wider of the two domain boundary
// labels as the representative tick label width.
func (m *MeshStyle[XV, YV]) widestBoundaryLabelX() (int, error) {
	lo, hi := m.ctx.X().Range()
	wLo, _, err := m.ctx.estimate(m.formatX(lo), m.labelStyle)
	if err != nil {
		return 0, err
	}
	wHi, _, err := m.ctx.estimate(m.formatX(hi), m.labelStyle)
	if err != nil {
		return 0, err
	}
	return max(max(wLo, wHi), 1), nil
}

// xOverlaps reports whether the summed label widths exceed the plot width.
func (m *MeshStyle[XV, YV]) xOverlaps(ticks []coord.Tick[XV], pw int) (bool, error) {
	total := 0
	for _, t := range ticks {
		w, _, err := m.ctx.estimate(t.Label, m.labelStyle)
		if err != nil {
			return false, err
		}
		total += w + labelPad
	}
	return total > pw, nil
}

func (m *MeshStyle[XV, YV]) formatX(v XV) string {
	if m.xFormat != nil {
		return m.xFormat(v)
	}
	return m.ctx.X().FormatValue(v)
}

func (m *MeshStyle[XV, YV]) formatY(v YV) string {
	if m.yFormat != nil {
		return m.yFormat(v)
	}
	return m.ctx.Y().FormatValue(v)
}

func (m *MeshStyle[XV, YV]) relabelX(ticks []coord.Tick[XV]) []coord.Tick[XV] {
	if m.xFormat == nil {
		return ticks
	}
	for i := range ticks {
		ticks[i].Label = m.xFormat(ticks[i].Value)
	}
	return ticks
}

func (m *MeshStyle[XV, YV]) relabelY(ticks []coord.Tick[YV]) []coord.Tick[YV] {
	if m.yFormat == nil {
		return ticks
	}
	for i := range ticks {
		ticks[i].Label = m.yFormat(ticks[i].Value)
	}
	return ticks
}
