package backend

// Color is the wire-level color handed to a backend: an opaque RGB triple
// plus a separate alpha in [0, 1]. Richer color handling (palettes, HSL,
// hex parsing) lives in the style package; by the time a drawing call
// reaches a backend it has been reduced to this.
type Color struct {
	R, G, B uint8
	Alpha   float64
}

// Mix returns the color with its alpha scaled by the given factor.
func (c Color) Mix(alpha float64) Color {
	c.Alpha *= alpha
	return c
}

// Style carries the stroke/fill parameters of a shape drawing call.
type Style struct {
	Color       Color
	StrokeWidth int
}

// StyleFromColor returns a Style with the default stroke width of one pixel.
func StyleFromColor(c Color) Style {
	return Style{Color: c, StrokeWidth: 1}
}

// FontFamily names a font family, either one of the generic CSS classes or
// a concrete family name.
type FontFamily string

// Generic font family classes. Backends map them to whatever concrete font
// they have available.
const (
	FamilySerif     FontFamily = "serif"
	FamilySansSerif FontFamily = "sans-serif"
	FamilyMonospace FontFamily = "monospace"
)

// FontVariant is the style variant of a font face.
type FontVariant int

const (
	FontNormal FontVariant = iota
	FontItalic
	FontOblique
	FontBold
)

// String returns the CSS-compatible name of the variant.
func (v FontVariant) String() string {
	switch v {
	case FontItalic:
		return "italic"
	case FontOblique:
		return "oblique"
	case FontBold:
		return "bold"
	default:
		return "normal"
	}
}

// HPos is the horizontal position of a text anchor point relative to the
// rendered string.
type HPos int

const (
	HLeft HPos = iota
	HCenter
	HRight
)

// VPos is the vertical position of a text anchor point relative to the
// rendered string.
type VPos int

const (
	VTop VPos = iota
	VCenter
	VBottom
)

// Anchor positions a string relative to its anchor point. The position is
// relative to the text itself, regardless of rotation.
type Anchor struct {
	H HPos
	V VPos
}

// AnchorTopLeft is the default anchor.
var AnchorTopLeft = Anchor{H: HLeft, V: VTop}

// Rotation is a clockwise text rotation in quarter turns.
type Rotation int

const (
	Rotate0 Rotation = iota
	Rotate90
	Rotate180
	Rotate270
)

// Transform rotates an offset vector from text space into device space.
func (r Rotation) Transform(x, y int) (int, int) {
	switch r {
	case Rotate90:
		return -y, x
	case Rotate180:
		return -x, -y
	case Rotate270:
		return y, -x
	default:
		return x, y
	}
}

// TextStyle carries everything a backend needs to place and paint a string.
type TextStyle struct {
	Color    Color
	Size     float64
	Family   FontFamily
	Variant  FontVariant
	Anchor   Anchor
	Rotation Rotation
}
