package bitmap

import (
	"image"
	"io"
	"sort"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/charts/backend"
	"github.com/gogpu/charts/text"
)

// Backend rasterizes chart primitives into a Pixmap. It implements
// backend.DrawingBackend for offline rendering: construct, draw, then
// encode through the Pixmap methods.
//
// Text renders through a golang.org/x/image font.Face. The default is the
// built-in 7x13 bitmap face; pass WithFace for anything else. The face's
// own metrics drive EstimateTextSize, so layout and rendering agree.
type Backend struct {
	pixmap   *Pixmap
	face     xfont.Face
	measurer text.FaceMeasurer
}

var _ backend.DrawingBackend = (*Backend)(nil)

// Option configures a Backend.
type Option func(*Backend)

// WithFace sets the font face used for text rendering and measuring.
func WithFace(face xfont.Face) Option {
	return func(b *Backend) { b.face = face }
}

// New creates a raster backend with a fresh white-cleared pixmap.
func New(width, height int, opts ...Option) *Backend {
	b := &Backend{
		pixmap: NewPixmap(width, height),
		face:   basicfont.Face7x13,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.measurer = text.FaceMeasurer{Face: b.face}
	b.pixmap.Clear(backend.Color{R: 255, G: 255, B: 255, Alpha: 1})
	return b
}

// Pixmap returns the underlying pixel buffer.
func (b *Backend) Pixmap() *Pixmap { return b.pixmap }

// SavePNG encodes the current buffer to a PNG file.
func (b *Backend) SavePNG(path string) error { return b.pixmap.SavePNG(path) }

// EncodePNG writes the current buffer as PNG.
func (b *Backend) EncodePNG(w io.Writer) error { return b.pixmap.EncodePNG(w) }

// Size implements backend.DrawingBackend.
func (b *Backend) Size() (int, int) { return b.pixmap.Width(), b.pixmap.Height() }

// EnsurePrepared implements backend.DrawingBackend. The buffer is always
// ready.
func (b *Backend) EnsurePrepared() error { return nil }

// Present implements backend.DrawingBackend. Raster output is finalized by
// encoding, so Present is a no-op.
func (b *Backend) Present() error { return nil }

// DrawPixel implements backend.DrawingBackend.
func (b *Backend) DrawPixel(p backend.Coord, c backend.Color) error {
	b.pixmap.BlendPixel(p.X, p.Y, c)
	return nil
}

// DrawLine implements backend.DrawingBackend with Bresenham stepping.
// Stroke widths above one thicken the line by stamping perpendicular
// offsets around each step.
func (b *Backend) DrawLine(from, to backend.Coord, s backend.Style) error {
	half := s.StrokeWidth / 2
	b.bresenham(from, to, func(x, y int) {
		if s.StrokeWidth <= 1 {
			b.pixmap.BlendPixel(x, y, s.Color)
			return
		}
		for dy := -half; dy <= half; dy++ {
			for dx := -half; dx <= half; dx++ {
				b.pixmap.BlendPixel(x+dx, y+dy, s.Color)
			}
		}
	})
	return nil
}

func (b *Backend) bresenham(from, to backend.Coord, plot func(x, y int)) {
	dx := abs(to.X - from.X)
	dy := -abs(to.Y - from.Y)
	sx := 1
	if from.X > to.X {
		sx = -1
	}
	sy := 1
	if from.Y > to.Y {
		sy = -1
	}
	x, y := from.X, from.Y
	err := dx + dy
	for {
		plot(x, y)
		if x == to.X && y == to.Y {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// DrawRect implements backend.DrawingBackend.
func (b *Backend) DrawRect(upperLeft, bottomRight backend.Coord, s backend.Style, fill bool) error {
	x0, x1 := order(upperLeft.X, bottomRight.X)
	y0, y1 := order(upperLeft.Y, bottomRight.Y)
	if fill {
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				b.pixmap.BlendPixel(x, y, s.Color)
			}
		}
		return nil
	}
	corners := []backend.Coord{
		{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}, {X: x0, Y: y0},
	}
	return b.DrawPath(corners, s)
}

// DrawPath implements backend.DrawingBackend.
func (b *Backend) DrawPath(points []backend.Coord, s backend.Style) error {
	if len(points) == 0 {
		return backend.NewDrawingError("draw path", backend.ErrInvalidGeometry)
	}
	for i := 1; i < len(points); i++ {
		if err := b.DrawLine(points[i-1], points[i], s); err != nil {
			return err
		}
	}
	return nil
}

// FillPolygon implements backend.DrawingBackend with even-odd scanline
// filling.
func (b *Backend) FillPolygon(vertices []backend.Coord, s backend.Style) error {
	if len(vertices) < 3 {
		return backend.NewDrawingError("fill polygon", backend.ErrInvalidGeometry)
	}
	minY, maxY := vertices[0].Y, vertices[0].Y
	for _, v := range vertices {
		if v.Y < minY {
			minY = v.Y
		}
		if v.Y > maxY {
			maxY = v.Y
		}
	}
	var xs []int
	for y := minY; y <= maxY; y++ {
		xs = xs[:0]
		j := len(vertices) - 1
		for i, vi := range vertices {
			vj := vertices[j]
			if (vi.Y <= y && vj.Y > y) || (vj.Y <= y && vi.Y > y) {
				t := float64(y-vi.Y) / float64(vj.Y-vi.Y)
				xs = append(xs, vi.X+int(t*float64(vj.X-vi.X)))
			}
			j = i
		}
		sort.Ints(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for x := xs[i]; x <= xs[i+1]; x++ {
				b.pixmap.BlendPixel(x, y, s.Color)
			}
		}
	}
	return nil
}

// DrawCircle implements backend.DrawingBackend with the midpoint circle
// algorithm; filled circles emit horizontal spans instead of boundary
// points.
func (b *Backend) DrawCircle(center backend.Coord, radius int, s backend.Style, fill bool) error {
	if radius < 0 {
		return backend.NewDrawingError("draw circle", backend.ErrInvalidGeometry)
	}
	if radius == 0 {
		b.pixmap.BlendPixel(center.X, center.Y, s.Color)
		return nil
	}
	x, y := radius, 0
	err := 1 - radius
	for x >= y {
		if fill {
			b.hspan(center.X-x, center.X+x, center.Y+y, s.Color)
			b.hspan(center.X-x, center.X+x, center.Y-y, s.Color)
			b.hspan(center.X-y, center.X+y, center.Y+x, s.Color)
			b.hspan(center.X-y, center.X+y, center.Y-x, s.Color)
		} else {
			for _, p := range [8][2]int{
				{x, y}, {y, x}, {-y, x}, {-x, y},
				{-x, -y}, {-y, -x}, {y, -x}, {x, -y},
			} {
				b.pixmap.BlendPixel(center.X+p[0], center.Y+p[1], s.Color)
			}
		}
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2*(y-x) + 1
		}
	}
	return nil
}

func (b *Backend) hspan(x0, x1, y int, c backend.Color) {
	for x := x0; x <= x1; x++ {
		b.pixmap.BlendPixel(x, y, c)
	}
}

// DrawText implements backend.DrawingBackend. The string is rasterized
// with the configured face; rotated text renders into an offscreen buffer
// first and blits the rotated result.
func (b *Backend) DrawText(str string, ts backend.TextStyle, pos backend.Coord) error {
	w, h, err := b.measureUnrotated(str, ts)
	if err != nil {
		return err
	}
	if ts.Rotation == backend.Rotate0 {
		x, y := anchorOffset(ts.Anchor, w, h)
		b.rasterize(str, ts, b.pixmap, pos.X+x, pos.Y+y)
		return nil
	}

	off := NewPixmap(w, h)
	b.rasterize(str, ts, off, 0, 0)

	rw, rh := w, h
	if ts.Rotation == backend.Rotate90 || ts.Rotation == backend.Rotate270 {
		rw, rh = h, w
	}
	x, y := anchorOffset(ts.Anchor, rw, rh)
	for sy := 0; sy < h; sy++ {
		for sx := 0; sx < w; sx++ {
			c := off.GetPixel(sx, sy)
			if c.Alpha == 0 {
				continue
			}
			dx, dy := rotateInto(sx, sy, w, h, ts.Rotation)
			b.pixmap.BlendPixel(pos.X+x+dx, pos.Y+y+dy, c)
		}
	}
	return nil
}

// rotateInto maps a source pixel of a w x h buffer to its position in the
// clockwise-rotated buffer. The rotated offset is translated back into the
// non-negative pixel grid of the rotated buffer.
func rotateInto(x, y, w, h int, r backend.Rotation) (int, int) {
	tx, ty := r.Transform(x, y)
	switch r {
	case backend.Rotate90:
		return tx + h - 1, ty
	case backend.Rotate180:
		return tx + w - 1, ty + h - 1
	case backend.Rotate270:
		return tx, ty + w - 1
	default:
		return x, y
	}
}

// anchorOffset shifts a text origin so the anchor point lands on pos.
func anchorOffset(a backend.Anchor, w, h int) (int, int) {
	x, y := 0, 0
	switch a.H {
	case backend.HCenter:
		x = -w / 2
	case backend.HRight:
		x = -w
	}
	switch a.V {
	case backend.VCenter:
		y = -h / 2
	case backend.VBottom:
		y = -h
	}
	return x, y
}

// rasterize draws the string's glyphs into dst with the top-left of the
// text box at (x, y).
func (b *Backend) rasterize(str string, ts backend.TextStyle, dst *Pixmap, x, y int) {
	metrics := b.face.Metrics()
	d := &xfont.Drawer{
		Dst:  &pixmapNRGBA{dst},
		Src:  image.NewUniform(nrgbaOf(ts.Color)),
		Face: b.face,
		Dot: fixed.Point26_6{
			X: fixed.I(x),
			Y: fixed.I(y) + metrics.Ascent,
		},
	}
	d.DrawString(str)
}

// measureUnrotated measures the string ignoring rotation; DrawText applies
// the rotation itself.
func (b *Backend) measureUnrotated(str string, ts backend.TextStyle) (int, int, error) {
	flat := ts
	flat.Rotation = backend.Rotate0
	return b.measurer.Measure(flat, str)
}

// EstimateTextSize implements backend.DrawingBackend using the configured
// face's metrics.
func (b *Backend) EstimateTextSize(str string, ts backend.TextStyle) (int, int, error) {
	return b.measurer.Measure(ts, str)
}

// BlitBitmap implements backend.DrawingBackend.
func (b *Backend) BlitBitmap(pos backend.Coord, width, height int, rgb []byte) error {
	if len(rgb) < width*height*3 {
		return backend.NewDrawingError("blit bitmap", backend.ErrInvalidGeometry)
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := (y*width + x) * 3
			b.pixmap.SetPixel(pos.X+x, pos.Y+y, backend.Color{
				R: rgb[i], G: rgb[i+1], B: rgb[i+2], Alpha: 1,
			})
		}
	}
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func order(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}
