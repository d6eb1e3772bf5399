package series

import (
	"github.com/gogpu/charts"
	"github.com/gogpu/charts/backend"
	"github.com/gogpu/charts/style"
)

// Marker selects the glyph a point series draws at each sample.
type Marker int

const (
	MarkerCircle Marker = iota
	MarkerCross
	MarkerTriangle
)

// Points draws one marker per sample at a constant pixel size, independent
// of the coordinate spec.
type Points[XV, YV any] struct {
	samples []Sample[XV, YV]
	marker  Marker
	size    int
	style   style.ShapeStyle
}

var _ charts.Series[float64, float64] = (*Points[float64, float64])(nil)

// NewPoints returns a point series with the given marker glyph and radius
// in pixels.
func NewPoints[XV, YV any](samples []Sample[XV, YV], marker Marker, size int, s style.ShapeStyle) *Points[XV, YV] {
	if size < 1 {
		size = 3
	}
	return &Points[XV, YV]{samples: samples, marker: marker, size: size, style: s}
}

// Draw implements charts.Series.
func (p *Points[XV, YV]) Draw(ctx *charts.Context[XV, YV]) error {
	plot := ctx.PlotArea()
	for _, s := range p.samples {
		c := ctx.Translate(s.X, s.Y)
		var err error
		switch p.marker {
		case MarkerCross:
			err = p.drawCross(plot, c)
		case MarkerTriangle:
			err = p.drawTriangle(plot, c)
		default:
			err = plot.DrawCircle(c, p.size, p.style)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (p *Points[XV, YV]) drawCross(plot plotTarget, c backend.Coord) error {
	r := p.size
	s := strokeOf(p.style)
	if err := plot.DrawLine(backend.Pt(c.X-r, c.Y-r), backend.Pt(c.X+r, c.Y+r), s); err != nil {
		return err
	}
	return plot.DrawLine(backend.Pt(c.X-r, c.Y+r), backend.Pt(c.X+r, c.Y-r), s)
}

func (p *Points[XV, YV]) drawTriangle(plot plotTarget, c backend.Coord) error {
	r := p.size
	vertices := []backend.Coord{
		backend.Pt(c.X, c.Y-r),
		backend.Pt(c.X+r, c.Y+r),
		backend.Pt(c.X-r, c.Y+r),
	}
	if p.style.IsFilled {
		return plot.FillPolygon(vertices, p.style)
	}
	closed := append(vertices, vertices[0])
	return plot.DrawPath(closed, p.style)
}

// plotTarget is the slice of drawing.Area the marker helpers need.
type plotTarget interface {
	DrawLine(from, to backend.Coord, s style.ShapeStyle) error
	DrawPath(points []backend.Coord, s style.ShapeStyle) error
	FillPolygon(points []backend.Coord, s style.ShapeStyle) error
	DrawCircle(center backend.Coord, radius int, s style.ShapeStyle) error
}
