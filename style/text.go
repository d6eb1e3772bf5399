package style

import "github.com/gogpu/charts/backend"

// FontDesc identifies a font face by family, size in pixels, and variant.
type FontDesc struct {
	Family  backend.FontFamily
	Size    float64
	Variant backend.FontVariant
}

// Font is a convenience constructor for a normal-variant FontDesc.
func Font(family backend.FontFamily, size float64) FontDesc {
	return FontDesc{Family: family, Size: size}
}

// TextStyle describes how a string is placed and painted.
type TextStyle struct {
	Font     FontDesc
	Color    RGBA
	Anchor   backend.Anchor
	Rotation backend.Rotation
}

// Text returns a black text style in the given font, anchored top-left.
func Text(font FontDesc) TextStyle {
	return TextStyle{Font: font, Color: Black, Anchor: backend.AnchorTopLeft}
}

// WithColor returns a copy of the style painted in the given color.
func (t TextStyle) WithColor(c RGBA) TextStyle {
	t.Color = c
	return t
}

// WithAnchor returns a copy of the style with the given anchor.
func (t TextStyle) WithAnchor(h backend.HPos, v backend.VPos) TextStyle {
	t.Anchor = backend.Anchor{H: h, V: v}
	return t
}

// WithRotation returns a copy of the style rotated clockwise.
func (t TextStyle) WithRotation(r backend.Rotation) TextStyle {
	t.Rotation = r
	return t
}

// Backend reduces the style to the wire form handed to drawing backends.
func (t TextStyle) Backend() backend.TextStyle {
	size := t.Font.Size
	if size <= 0 {
		size = 12
	}
	family := t.Font.Family
	if family == "" {
		family = backend.FamilySansSerif
	}
	return backend.TextStyle{
		Color:    t.Color.Backend(),
		Size:     size,
		Family:   family,
		Variant:  t.Font.Variant,
		Anchor:   t.Anchor,
		Rotation: t.Rotation,
	}
}
