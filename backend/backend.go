// Package backend defines the primitive drawing contract shared by every
// chart output target.
//
// A DrawingBackend exposes the minimal operation set the chart core needs:
// pixels, lines, rectangles, paths, polygons, circles, text, and bitmap
// blitting. Concrete implementations (in-memory raster, SVG writer, a live
// canvas bridge) live in sub-packages or third-party modules; the core only
// ever talks to this interface.
//
// Calls are issued in painter's-algorithm order: an earlier call is
// conceptually under a later one, and backends must preserve that ordering
// for overlapping geometry. Any error returned from a drawing operation is
// fatal to the current render pass; the core propagates it unmodified and
// performs no backend-specific recovery.
package backend

// Coord is a pixel coordinate. It follows the framebuffer convention:
// (0, 0) is the top-left corner, X grows right, Y grows down.
type Coord struct {
	X, Y int
}

// Pt is a convenience constructor for Coord.
func Pt(x, y int) Coord { return Coord{X: x, Y: y} }

// DrawingBackend is implemented by every chart output target.
//
// A backend registers its pixel dimensions at construction and reports them
// via Size. The core queries Size once per render pass and does not poll for
// resizes mid-pass. Backends are not safe for concurrent use; concurrent
// render passes sharing one backend must be serialized by the caller.
type DrawingBackend interface {
	// Size returns the exact pixel dimensions of the drawing surface.
	Size() (width, height int)

	// EnsurePrepared readies the backend for drawing. It is called before
	// each batch of drawing operations and must be a no-op if the backend
	// is already prepared for the current frame.
	EnsurePrepared() error

	// Present finalizes the current frame and flushes pending output.
	// For static targets this is called once at the end of the render pass.
	Present() error

	// DrawPixel draws a single pixel.
	DrawPixel(p Coord, c Color) error

	// DrawLine draws a straight line from one point to another.
	DrawLine(from, to Coord, s Style) error

	// DrawRect draws the rectangle spanned by its upper-left and
	// bottom-right corners, outlined or filled.
	DrawRect(upperLeft, bottomRight Coord, s Style, fill bool) error

	// DrawPath draws an open polyline through the given points in order.
	DrawPath(points []Coord, s Style) error

	// FillPolygon fills the closed polygon described by the vertices.
	FillPolygon(vertices []Coord, s Style) error

	// DrawCircle draws a circle, outlined or filled.
	DrawCircle(center Coord, radius int, s Style, fill bool) error

	// DrawText draws a string anchored at pos according to the text
	// style's anchor and rotation.
	DrawText(text string, ts TextStyle, pos Coord) error

	// EstimateTextSize reports the pixel bounding box the backend would
	// use for the string. Backends without real font metrics report an
	// estimate derived from a fixed average glyph width; see the text
	// package.
	EstimateTextSize(text string, ts TextStyle) (w, h int, err error)

	// BlitBitmap copies a pre-rendered RGB bitmap (3 bytes per pixel,
	// row-major) with its upper-left corner at pos.
	BlitBitmap(pos Coord, width, height int, rgb []byte) error
}
