package coord

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// printer renders default tick labels. Locale-aware grouping ("12,500")
// keeps long numeric labels readable; callers needing other locales or
// formats supply their own formatter at the mesh level.
var printer = message.NewPrinter(language.English)

// formatFloat renders a tick value. Magnitudes outside comfortable decimal
// territory fall back to compact scientific notation.
func formatFloat(v float64) string {
	if v == 0 {
		return "0"
	}
	abs := math.Abs(v)
	if abs >= 1e7 || abs < 1e-4 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return printer.Sprint(number.Decimal(v, number.MaxFractionDigits(6)))
}

// formatInt renders an integer tick value with locale grouping.
func formatInt(v int64) string {
	return printer.Sprint(number.Decimal(v))
}
