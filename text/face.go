package text

import (
	xfont "golang.org/x/image/font"

	"github.com/gogpu/charts/backend"
)

// FaceMeasurer adapts a golang.org/x/image/font.Face into a Measurer.
// The raster backend uses it so that measured widths match the face it
// actually renders with.
//
// font.Face is not safe for concurrent use; neither is FaceMeasurer.
type FaceMeasurer struct {
	Face xfont.Face
}

var _ Measurer = FaceMeasurer{}

// Measure implements Measurer using the face's own metrics. The style's
// size and family are ignored: the face is already sized.
func (m FaceMeasurer) Measure(ts backend.TextStyle, s string) (int, int, error) {
	if m.Face == nil {
		return Estimator{}.Measure(ts, s)
	}
	adv := xfont.MeasureString(m.Face, s)
	metrics := m.Face.Metrics()
	w := adv.Ceil()
	h := (metrics.Ascent + metrics.Descent).Ceil()
	if ts.Rotation == backend.Rotate90 || ts.Rotation == backend.Rotate270 {
		w, h = h, w
	}
	return w, h, nil
}
