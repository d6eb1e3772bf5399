package style

// Palette is an ordered list of colors used to style successive series.
// Palettes are immutable lookup tables; Pick never mutates the palette and
// cycles when the index exceeds the palette length.
type Palette []RGBA

// Pick returns the color for the i-th series, cycling through the palette.
// An empty palette yields black.
func (p Palette) Pick(i int) RGBA {
	if len(p) == 0 {
		return Black
	}
	if i < 0 {
		i = -i
	}
	return p[i%len(p)]
}

// DefaultPalette is the standard series palette: saturated, mutually
// distinguishable hues in a fixed order.
var DefaultPalette = Palette{
	Hex("#1f77b4"),
	Hex("#ff7f0e"),
	Hex("#2ca02c"),
	Hex("#d62728"),
	Hex("#9467bd"),
	Hex("#8c564b"),
	Hex("#e377c2"),
	Hex("#7f7f7f"),
	Hex("#bcbd22"),
	Hex("#17becf"),
}

// PastelPalette is a lower-saturation alternative for dense charts.
var PastelPalette = Palette{
	Hex("#aec7e8"),
	Hex("#ffbb78"),
	Hex("#98df8a"),
	Hex("#ff9896"),
	Hex("#c5b0d5"),
	Hex("#c49c94"),
	Hex("#f7b6d2"),
	Hex("#c7c7c7"),
	Hex("#dbdb8d"),
	Hex("#9edae5"),
}
