package bitmap

import (
	"image/color"
	"image/draw"

	"github.com/gogpu/charts/backend"
)

// pixmapNRGBA adapts a Pixmap into a draw.Image so the x/image font
// drawer can composite glyphs into it.
type pixmapNRGBA struct {
	*Pixmap
}

var _ draw.Image = pixmapNRGBA{}

func (p pixmapNRGBA) Set(x, y int, c color.Color) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	p.BlendPixel(x, y, backend.Color{
		R: n.R, G: n.G, B: n.B, Alpha: float64(n.A) / 255,
	})
}

func nrgbaOf(c backend.Color) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: alphaByte(c.Alpha)}
}
