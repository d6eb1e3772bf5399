package svg

import (
	"fmt"
	"strings"

	"github.com/gogpu/charts/backend"
)

func rgb(c backend.Color) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

func opacity(prefix string, c backend.Color) string {
	if c.Alpha >= 1 {
		return ""
	}
	return fmt.Sprintf(";%s-opacity:%.3f", prefix, c.Alpha)
}

func fillStyle(c backend.Color) string {
	return "fill:" + rgb(c) + ";stroke:none" + opacity("fill", c)
}

func strokeStyle(s backend.Style) string {
	return fmt.Sprintf("fill:none;stroke:%s;stroke-width:%dpx%s",
		rgb(s.Color), s.StrokeWidth, opacity("stroke", s.Color))
}

func shapeStyle(s backend.Style, fill bool) string {
	if fill {
		return fillStyle(s.Color)
	}
	return strokeStyle(s)
}

func textStyle(ts backend.TextStyle) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "font-family:%s;font-size:%.1fpx;fill:%s",
		fontFamily(ts.Family), ts.Size, rgb(ts.Color))
	sb.WriteString(opacity("fill", ts.Color))
	switch ts.Variant {
	case backend.FontItalic:
		sb.WriteString(";font-style:italic")
	case backend.FontOblique:
		sb.WriteString(";font-style:oblique")
	case backend.FontBold:
		sb.WriteString(";font-weight:bold")
	}
	switch ts.Anchor.H {
	case backend.HCenter:
		sb.WriteString(";text-anchor:middle")
	case backend.HRight:
		sb.WriteString(";text-anchor:end")
	}
	switch ts.Anchor.V {
	case backend.VTop:
		sb.WriteString(";dominant-baseline:hanging")
	case backend.VCenter:
		sb.WriteString(";dominant-baseline:central")
	}
	return sb.String()
}

func fontFamily(f backend.FontFamily) string {
	switch f {
	case backend.FamilySerif:
		return "serif"
	case backend.FamilyMonospace:
		return "monospace"
	case backend.FamilySansSerif, "":
		return "sans-serif"
	default:
		return string(f)
	}
}

func degrees(r backend.Rotation) int {
	switch r {
	case backend.Rotate90:
		return 90
	case backend.Rotate180:
		return 180
	case backend.Rotate270:
		return 270
	default:
		return 0
	}
}
