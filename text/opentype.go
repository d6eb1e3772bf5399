package text

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/charts/backend"
)

// OpenTypeMeasurer measures strings against a real OpenType font using
// HarfBuzz shaping, so kerning and ligatures are reflected in label widths.
//
// OpenTypeMeasurer is safe for concurrent use: the parsed font.Font is
// read-only, per-call font.Face instances are cheap wrappers around it, and
// the HarfbuzzShaper instances (which carry mutable buffers) are pooled.
type OpenTypeMeasurer struct {
	fnt *font.Font

	shaperPool sync.Pool
}

var _ Measurer = (*OpenTypeMeasurer)(nil)

// NewOpenTypeMeasurer parses TTF or OTF font data into a measurer.
// The data slice is not retained.
func NewOpenTypeMeasurer(data []byte) (*OpenTypeMeasurer, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("text: empty font data")
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, &backend.FontError{Err: err}
	}
	m := &OpenTypeMeasurer{fnt: face.Font}
	m.shaperPool.New = func() any { return &shaping.HarfbuzzShaper{} }
	return m, nil
}

// NewOpenTypeMeasurerFromFile loads a font file into a measurer.
func NewOpenTypeMeasurerFromFile(path string) (*OpenTypeMeasurer, error) {
	// #nosec G304 -- font file path is provided by the caller intentionally
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: read font file: %w", err)
	}
	return NewOpenTypeMeasurer(data)
}

// Measure implements Measurer by shaping the string and summing advances.
func (m *OpenTypeMeasurer) Measure(ts backend.TextStyle, s string) (int, int, error) {
	if s == "" {
		return 0, 0, nil
	}
	size := ts.Size
	if size <= 0 {
		size = 12
	}
	runes := []rune(s)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(m.fnt),
		Size:      floatToFixed(size),
		Script:    language.Latin,
		Language:  language.NewLanguage("en"),
	}

	shaper := m.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := shaper.Shape(input)
	m.shaperPool.Put(shaper)

	w := fixedToFloat(output.Advance)
	h := fixedToFloat(output.LineBounds.Ascent - output.LineBounds.Descent)
	width, height := int(w+0.5), int(h+0.5)
	if ts.Rotation == backend.Rotate90 || ts.Rotation == backend.Rotate270 {
		width, height = height, width
	}
	return width, height, nil
}

// floatToFixed converts a float64 font size to fixed.Int26_6.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
