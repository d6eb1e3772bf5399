package coord

import "github.com/gogpu/charts/backend"

// Cartesian2D pairs an X and a Y coordinate spec with the pixel rectangle
// of a plot area. X maps left to right; Y is handed a descending pixel
// range so the domain minimum sits at the bottom of the plot.
type Cartesian2D[XV, YV any] struct {
	X Ranged[XV]
	Y Ranged[YV]

	// XPixels runs from the plot's left edge to its right edge.
	// YPixels runs from the bottom edge to the top edge (descending).
	XPixels PixelRange
	YPixels PixelRange
}

// NewCartesian2D builds the combined spec for a plot rectangle given by its
// inclusive pixel edges.
func NewCartesian2D[XV, YV any](x Ranged[XV], y Ranged[YV], left, right, top, bottom int) Cartesian2D[XV, YV] {
	return Cartesian2D[XV, YV]{
		X:       x,
		Y:       y,
		XPixels: PixelRange{Start: left, End: right},
		YPixels: PixelRange{Start: bottom, End: top},
	}
}

// Translate maps a logical point to a backend pixel coordinate.
func (c Cartesian2D[XV, YV]) Translate(x XV, y YV) backend.Coord {
	return backend.Coord{
		X: c.X.Map(x, c.XPixels),
		Y: c.Y.Map(y, c.YPixels),
	}
}

// ReverseTranslate inverts Translate where both axes support it.
func (c Cartesian2D[XV, YV]) ReverseTranslate(p backend.Coord) (XV, YV, bool) {
	x, okx := c.X.Unmap(p.X, c.XPixels)
	y, oky := c.Y.Unmap(p.Y, c.YPixels)
	return x, y, okx && oky
}
