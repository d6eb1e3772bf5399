// Package bitmap renders charts into an in-memory RGBA pixel buffer and
// encodes it as PNG, JPEG, or GIF.
package bitmap

import (
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/gogpu/charts/backend"
)

// Pixmap represents a rectangular pixel buffer.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewPixmap creates a new pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel stores a color at a single pixel, replacing what is there.
func (p *Pixmap) SetPixel(x, y int, c backend.Color) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = alphaByte(c.Alpha)
}

// BlendPixel composites a color over the pixel with source-over blending.
// A fully opaque color degenerates to SetPixel.
func (p *Pixmap) BlendPixel(x, y int, c backend.Color) {
	if c.Alpha >= 1 {
		p.SetPixel(x, y, c)
		return
	}
	if c.Alpha <= 0 || x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	a := c.Alpha
	p.data[i+0] = blendByte(c.R, p.data[i+0], a)
	p.data[i+1] = blendByte(c.G, p.data[i+1], a)
	p.data[i+2] = blendByte(c.B, p.data[i+2], a)
	if na := a + float64(p.data[i+3])/255*(1-a); na > 0 {
		p.data[i+3] = alphaByte(na)
	}
}

// GetPixel returns the color of a single pixel.
func (p *Pixmap) GetPixel(x, y int) backend.Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return backend.Color{}
	}
	i := (y*p.width + x) * 4
	return backend.Color{
		R:     p.data[i+0],
		G:     p.data[i+1],
		B:     p.data[i+2],
		Alpha: float64(p.data[i+3]) / 255,
	}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c backend.Color) {
	a := alphaByte(c.Alpha)
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = c.R
		p.data[i+1] = c.G
		p.data[i+2] = c.B
		p.data[i+3] = a
	}
}

// ToImage converts the pixmap to an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return p.EncodePNG(f)
}

// EncodePNG writes the pixmap as PNG.
func (p *Pixmap) EncodePNG(w io.Writer) error {
	return png.Encode(w, p.ToImage())
}

// EncodeJPEG writes the pixmap as JPEG with the given quality (1-100).
func (p *Pixmap) EncodeJPEG(w io.Writer, quality int) error {
	return jpeg.Encode(w, p.ToImage(), &jpeg.Options{Quality: quality})
}

// EncodeGIF writes the pixmap as a single-frame GIF.
func (p *Pixmap) EncodeGIF(w io.Writer) error {
	return gif.Encode(w, p.ToImage(), nil)
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	c := p.GetPixel(x, y)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: alphaByte(c.Alpha)}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}

var _ image.Image = (*Pixmap)(nil)

func alphaByte(a float64) uint8 {
	if a <= 0 {
		return 0
	}
	if a >= 1 {
		return 255
	}
	return uint8(a*255 + 0.5)
}

func blendByte(src, dst uint8, a float64) uint8 {
	v := float64(src)*a + float64(dst)*(1-a)
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return uint8(v + 0.5)
}
