// Package drawing provides the chart-area abstraction: a rectangular pixel
// region on a backend that can be partitioned into sub-areas, reserved into
// margin bands, and drawn into.
//
// An Area is created once per render pass from the backend's reported size,
// consumed by layout and draw calls, and discarded afterwards; nothing
// persists across passes. Areas borrow the backend: concurrent passes
// sharing one backend must be serialized by the caller.
package drawing

import (
	"fmt"

	"github.com/gogpu/charts/backend"
	"github.com/gogpu/charts/style"
)

// Rect is a pixel rectangle with inclusive edges.
type Rect struct {
	X0, Y0, X1, Y1 int
}

// Width returns the pixel width of the rectangle.
func (r Rect) Width() int { return r.X1 - r.X0 }

// Height returns the pixel height of the rectangle.
func (r Rect) Height() int { return r.Y1 - r.Y0 }

// Truncate clamps a coordinate into the rectangle.
func (r Rect) Truncate(p backend.Coord) backend.Coord {
	if p.X < r.X0 {
		p.X = r.X0
	}
	if p.X > r.X1 {
		p.X = r.X1
	}
	if p.Y < r.Y0 {
		p.Y = r.Y0
	}
	if p.Y > r.Y1 {
		p.Y = r.Y1
	}
	return p
}

// Area is one rectangular drawing region of a backend. Coordinates passed
// to its drawing methods are relative to the area's top-left corner.
type Area struct {
	db   backend.DrawingBackend
	rect Rect
}

// NewArea roots an area on the backend's full surface. The backend size is
// queried once here; the area does not poll for resizes mid-pass.
func NewArea(db backend.DrawingBackend) *Area {
	w, h := db.Size()
	return &Area{db: db, rect: Rect{X0: 0, Y0: 0, X1: w - 1, Y1: h - 1}}
}

// Backend returns the backend this area draws into.
func (a *Area) Backend() backend.DrawingBackend { return a.db }

// Rect returns the area's absolute pixel rectangle.
func (a *Area) Rect() Rect { return a.rect }

// Dim returns the area's width and height in pixels.
func (a *Area) Dim() (w, h int) { return a.rect.Width() + 1, a.rect.Height() + 1 }

// RelativeToWidth resolves a fraction of the area width, clamped to [0, 1].
func (a *Area) RelativeToWidth(f float64) int {
	return int(clamp01(f) * float64(a.rect.Width()))
}

// RelativeToHeight resolves a fraction of the area height, clamped to [0, 1].
func (a *Area) RelativeToHeight(f float64) int {
	return int(clamp01(f) * float64(a.rect.Height()))
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

func (a *Area) sub(r Rect) *Area { return &Area{db: a.db, rect: r} }

// Margin shrinks the area by the given pixel bands on each side. Bands
// larger than the area collapse it to a zero-size region rather than
// inverting it.
func (a *Area) Margin(top, bottom, left, right int) *Area {
	r := Rect{
		X0: a.rect.X0 + left,
		Y0: a.rect.Y0 + top,
		X1: a.rect.X1 - right,
		Y1: a.rect.Y1 - bottom,
	}
	if r.X0 > r.X1 {
		r.X1 = r.X0
	}
	if r.Y0 > r.Y1 {
		r.Y1 = r.Y0
	}
	return a.sub(r)
}

// SplitVertically cuts the area at y pixels from its top edge.
func (a *Area) SplitVertically(y int) (upper, lower *Area) {
	cut := a.rect.Y0 + y
	if cut < a.rect.Y0 {
		cut = a.rect.Y0
	}
	if cut > a.rect.Y1 {
		cut = a.rect.Y1
	}
	upper = a.sub(Rect{a.rect.X0, a.rect.Y0, a.rect.X1, cut})
	lower = a.sub(Rect{a.rect.X0, cut + 1, a.rect.X1, a.rect.Y1})
	return upper, lower
}

// SplitHorizontally cuts the area at x pixels from its left edge.
func (a *Area) SplitHorizontally(x int) (left, right *Area) {
	cut := a.rect.X0 + x
	if cut < a.rect.X0 {
		cut = a.rect.X0
	}
	if cut > a.rect.X1 {
		cut = a.rect.X1
	}
	left = a.sub(Rect{a.rect.X0, a.rect.Y0, cut, a.rect.Y1})
	right = a.sub(Rect{cut + 1, a.rect.Y0, a.rect.X1, a.rect.Y1})
	return left, right
}

// SplitEvenly partitions the area into a rows x cols grid, row-major.
// Remainder pixels distribute one-per-cell from the top-left, so the grid
// tiles the area exactly.
func (a *Area) SplitEvenly(rows, cols int) []*Area {
	if rows < 1 || cols < 1 {
		return nil
	}
	cut := func(from, to, n, idx int) int {
		size := to - from + 1
		lo := idx * (size / n)
		if idx < size%n {
			lo += idx
		} else {
			lo += size % n
		}
		return from + lo
	}
	out := make([]*Area, 0, rows*cols)
	for ri := 0; ri < rows; ri++ {
		for ci := 0; ci < cols; ci++ {
			out = append(out, a.sub(Rect{
				X0: cut(a.rect.X0, a.rect.X1, cols, ci),
				Y0: cut(a.rect.Y0, a.rect.Y1, rows, ri),
				X1: cut(a.rect.X0, a.rect.X1, cols, ci+1) - 1,
				Y1: cut(a.rect.Y0, a.rect.Y1, rows, ri+1) - 1,
			}))
		}
	}
	return out
}

// SplitByBreakpoints partitions the area along explicit x and y breakpoints
// (relative to the area origin), row-major. n+1 columns result from n x
// breakpoints, and likewise for rows.
func (a *Area) SplitByBreakpoints(xs, ys []int) []*Area {
	xcuts := []int{a.rect.X0}
	for _, x := range xs {
		xcuts = append(xcuts, a.rect.X0+x)
	}
	xcuts = append(xcuts, a.rect.X1+1)
	ycuts := []int{a.rect.Y0}
	for _, y := range ys {
		ycuts = append(ycuts, a.rect.Y0+y)
	}
	ycuts = append(ycuts, a.rect.Y1+1)

	out := make([]*Area, 0, (len(xcuts)-1)*(len(ycuts)-1))
	for yi := 0; yi+1 < len(ycuts); yi++ {
		for xi := 0; xi+1 < len(xcuts); xi++ {
			out = append(out, a.sub(Rect{
				X0: xcuts[xi], Y0: ycuts[yi],
				X1: xcuts[xi+1] - 1, Y1: ycuts[yi+1] - 1,
			}))
		}
	}
	return out
}

// prepare readies the backend for a batch of drawing calls. Every drawing
// method goes through it before touching the backend surface.
func (a *Area) prepare(op string) error {
	if err := a.db.EnsurePrepared(); err != nil {
		return fmt.Errorf("charts: prepare %s: %w", op, err)
	}
	return nil
}

// Fill paints the whole area with the style's color.
func (a *Area) Fill(s style.ShapeStyle) error {
	if err := a.prepare("fill area"); err != nil {
		return err
	}
	err := a.db.DrawRect(
		backend.Coord{X: a.rect.X0, Y: a.rect.Y0},
		backend.Coord{X: a.rect.X1, Y: a.rect.Y1},
		s.Backend(), true,
	)
	if err != nil {
		return fmt.Errorf("charts: fill area: %w", err)
	}
	return nil
}

// Titled draws a centered title along the area's top edge and returns the
// area below it.
func (a *Area) Titled(title string, ts style.TextStyle) (*Area, error) {
	bts := ts.Backend()
	_, h, err := a.db.EstimateTextSize(title, bts)
	if err != nil {
		return nil, fmt.Errorf("charts: measure title: %w", err)
	}
	if err := a.prepare("draw title"); err != nil {
		return nil, err
	}
	const pad = 5
	bts.Anchor = backend.Anchor{H: backend.HCenter, V: backend.VTop}
	pos := backend.Coord{X: (a.rect.X0 + a.rect.X1) / 2, Y: a.rect.Y0 + pad}
	if err := a.db.DrawText(title, bts, pos); err != nil {
		return nil, fmt.Errorf("charts: draw title: %w", err)
	}
	return a.Margin(h+2*pad, 0, 0, 0), nil
}

// DrawLine draws a line between two area-relative points, truncated into
// the area.
func (a *Area) DrawLine(from, to backend.Coord, s style.ShapeStyle) error {
	if err := a.prepare("draw line"); err != nil {
		return err
	}
	err := a.db.DrawLine(a.abs(from), a.abs(to), s.Backend())
	if err != nil {
		return fmt.Errorf("charts: draw line: %w", err)
	}
	return nil
}

// DrawRect draws a rectangle between two area-relative corners.
func (a *Area) DrawRect(upperLeft, bottomRight backend.Coord, s style.ShapeStyle) error {
	if err := a.prepare("draw rect"); err != nil {
		return err
	}
	err := a.db.DrawRect(a.abs(upperLeft), a.abs(bottomRight), s.Backend(), s.IsFilled)
	if err != nil {
		return fmt.Errorf("charts: draw rect: %w", err)
	}
	return nil
}

// DrawPath draws an open polyline through area-relative points.
func (a *Area) DrawPath(points []backend.Coord, s style.ShapeStyle) error {
	if err := a.prepare("draw path"); err != nil {
		return err
	}
	abs := make([]backend.Coord, len(points))
	for i, p := range points {
		abs[i] = a.abs(p)
	}
	if err := a.db.DrawPath(abs, s.Backend()); err != nil {
		return fmt.Errorf("charts: draw path: %w", err)
	}
	return nil
}

// FillPolygon fills the closed polygon through area-relative points.
func (a *Area) FillPolygon(points []backend.Coord, s style.ShapeStyle) error {
	if err := a.prepare("fill polygon"); err != nil {
		return err
	}
	abs := make([]backend.Coord, len(points))
	for i, p := range points {
		abs[i] = a.abs(p)
	}
	if err := a.db.FillPolygon(abs, s.Backend()); err != nil {
		return fmt.Errorf("charts: fill polygon: %w", err)
	}
	return nil
}

// DrawCircle draws a circle centered at an area-relative point.
func (a *Area) DrawCircle(center backend.Coord, radius int, s style.ShapeStyle) error {
	if err := a.prepare("draw circle"); err != nil {
		return err
	}
	err := a.db.DrawCircle(a.abs(center), radius, s.Backend(), s.IsFilled)
	if err != nil {
		return fmt.Errorf("charts: draw circle: %w", err)
	}
	return nil
}

// DrawText draws a string anchored at an area-relative point.
func (a *Area) DrawText(text string, ts style.TextStyle, pos backend.Coord) error {
	if err := a.prepare("draw text"); err != nil {
		return err
	}
	if err := a.db.DrawText(text, ts.Backend(), a.abs(pos)); err != nil {
		return fmt.Errorf("charts: draw text %q: %w", text, err)
	}
	return nil
}

// EstimateTextSize reports the pixel box the backend would use for the
// string.
func (a *Area) EstimateTextSize(text string, ts style.TextStyle) (int, int, error) {
	w, h, err := a.db.EstimateTextSize(text, ts.Backend())
	if err != nil {
		return 0, 0, fmt.Errorf("charts: measure text %q: %w", text, err)
	}
	return w, h, nil
}

// abs converts an area-relative coordinate to an absolute one, truncated
// into the area rectangle.
func (a *Area) abs(p backend.Coord) backend.Coord {
	return a.rect.Truncate(backend.Coord{X: p.X + a.rect.X0, Y: p.Y + a.rect.Y0})
}

// Present flushes the backend's pending output for this render pass.
func (a *Area) Present() error {
	if err := a.db.Present(); err != nil {
		return fmt.Errorf("charts: present: %w", err)
	}
	return nil
}
