// Package svg renders charts as SVG documents through ajstarks/svgo.
//
// The backend streams elements to its writer as drawing calls arrive, in
// painter's-algorithm order, so document order matches z order. Present
// closes the document; no drawing is valid afterwards.
package svg

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"io"

	svgo "github.com/ajstarks/svgo"

	"github.com/gogpu/charts/backend"
	"github.com/gogpu/charts/text"
)

// Backend implements backend.DrawingBackend on an SVG document.
type Backend struct {
	canvas *svgo.SVG
	width  int
	height int

	started bool
	ended   bool

	measurer text.Measurer
}

var _ backend.DrawingBackend = (*Backend)(nil)

// Option configures a Backend.
type Option func(*Backend)

// WithMeasurer overrides the text measurer used by EstimateTextSize. The
// default is the naive estimator; pass an OpenType measurer when layout
// must match a specific viewer font.
func WithMeasurer(m text.Measurer) Option {
	return func(b *Backend) { b.measurer = m }
}

// New creates an SVG backend writing to w.
func New(w io.Writer, width, height int, opts ...Option) *Backend {
	b := &Backend{
		canvas:   svgo.New(w),
		width:    width,
		height:   height,
		measurer: text.Estimator{},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Size implements backend.DrawingBackend.
func (b *Backend) Size() (int, int) { return b.width, b.height }

// EnsurePrepared implements backend.DrawingBackend. The first call opens
// the SVG document.
func (b *Backend) EnsurePrepared() error {
	if b.ended {
		return backend.NewDrawingError("prepare", errFinalized)
	}
	if !b.started {
		b.canvas.Start(b.width, b.height)
		b.started = true
	}
	return nil
}

// Present implements backend.DrawingBackend by closing the document.
func (b *Backend) Present() error {
	if err := b.EnsurePrepared(); err != nil {
		return err
	}
	b.canvas.End()
	b.ended = true
	return nil
}

var errFinalized = fmt.Errorf("svg: document already finalized")

// DrawPixel implements backend.DrawingBackend as a 1x1 rectangle.
func (b *Backend) DrawPixel(p backend.Coord, c backend.Color) error {
	if err := b.EnsurePrepared(); err != nil {
		return err
	}
	b.canvas.Rect(p.X, p.Y, 1, 1, fillStyle(c))
	return nil
}

// DrawLine implements backend.DrawingBackend.
func (b *Backend) DrawLine(from, to backend.Coord, s backend.Style) error {
	if err := b.EnsurePrepared(); err != nil {
		return err
	}
	b.canvas.Line(from.X, from.Y, to.X, to.Y, strokeStyle(s))
	return nil
}

// DrawRect implements backend.DrawingBackend.
func (b *Backend) DrawRect(upperLeft, bottomRight backend.Coord, s backend.Style, fill bool) error {
	if err := b.EnsurePrepared(); err != nil {
		return err
	}
	x0, x1 := order(upperLeft.X, bottomRight.X)
	y0, y1 := order(upperLeft.Y, bottomRight.Y)
	b.canvas.Rect(x0, y0, x1-x0+1, y1-y0+1, shapeStyle(s, fill))
	return nil
}

// DrawPath implements backend.DrawingBackend.
func (b *Backend) DrawPath(points []backend.Coord, s backend.Style) error {
	if len(points) == 0 {
		return backend.NewDrawingError("draw path", backend.ErrInvalidGeometry)
	}
	if err := b.EnsurePrepared(); err != nil {
		return err
	}
	xs, ys := split(points)
	b.canvas.Polyline(xs, ys, strokeStyle(s))
	return nil
}

// FillPolygon implements backend.DrawingBackend.
func (b *Backend) FillPolygon(vertices []backend.Coord, s backend.Style) error {
	if len(vertices) < 3 {
		return backend.NewDrawingError("fill polygon", backend.ErrInvalidGeometry)
	}
	if err := b.EnsurePrepared(); err != nil {
		return err
	}
	xs, ys := split(vertices)
	b.canvas.Polygon(xs, ys, fillStyle(s.Color))
	return nil
}

// DrawCircle implements backend.DrawingBackend.
func (b *Backend) DrawCircle(center backend.Coord, radius int, s backend.Style, fill bool) error {
	if radius < 0 {
		return backend.NewDrawingError("draw circle", backend.ErrInvalidGeometry)
	}
	if err := b.EnsurePrepared(); err != nil {
		return err
	}
	b.canvas.Circle(center.X, center.Y, radius, shapeStyle(s, fill))
	return nil
}

// DrawText implements backend.DrawingBackend. Anchoring maps to
// text-anchor and dominant-baseline; rotation wraps the element in a
// rotate transform about the anchor point.
func (b *Backend) DrawText(str string, ts backend.TextStyle, pos backend.Coord) error {
	if err := b.EnsurePrepared(); err != nil {
		return err
	}
	style := textStyle(ts)
	if deg := degrees(ts.Rotation); deg != 0 {
		b.canvas.Gtransform(fmt.Sprintf("rotate(%d,%d,%d)", deg, pos.X, pos.Y))
		b.canvas.Text(pos.X, pos.Y, str, style)
		b.canvas.Gend()
		return nil
	}
	b.canvas.Text(pos.X, pos.Y, str, style)
	return nil
}

// EstimateTextSize implements backend.DrawingBackend. The SVG viewer picks
// the real font, so sizes come from the configured measurer.
func (b *Backend) EstimateTextSize(str string, ts backend.TextStyle) (int, int, error) {
	return b.measurer.Measure(ts, str)
}

// BlitBitmap implements backend.DrawingBackend by embedding the pixels as
// a base64 PNG data URI.
func (b *Backend) BlitBitmap(pos backend.Coord, width, height int, rgb []byte) error {
	if len(rgb) < width*height*3 {
		return backend.NewDrawingError("blit bitmap", backend.ErrInvalidGeometry)
	}
	if err := b.EnsurePrepared(); err != nil {
		return err
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			si := (y*width + x) * 3
			di := img.PixOffset(x, y)
			img.Pix[di+0] = rgb[si+0]
			img.Pix[di+1] = rgb[si+1]
			img.Pix[di+2] = rgb[si+2]
			img.Pix[di+3] = 255
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return backend.NewDrawingError("blit bitmap", err)
	}
	uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
	b.canvas.Image(pos.X, pos.Y, width, height, uri)
	return nil
}

func split(points []backend.Coord) (xs, ys []int) {
	xs = make([]int, len(points))
	ys = make([]int, len(points))
	for i, p := range points {
		xs[i] = p.X
		ys[i] = p.Y
	}
	return xs, ys
}

func order(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}
