package backend

import "errors"

// OpKind identifies a recorded drawing operation.
type OpKind int

const (
	OpPixel OpKind = iota
	OpLine
	OpRect
	OpPath
	OpPolygon
	OpCircle
	OpText
	OpBlit
)

// Op is one recorded drawing call. Only the fields relevant to the kind are
// populated.
type Op struct {
	Kind   OpKind
	Points []Coord
	Style  Style
	Text   TextStyle
	Fill   bool
	Radius int
	Str    string
}

// Recorder is a DrawingBackend that records every drawing call instead of
// producing output. It backs the package tests: assertions run against the
// recorded op sequence, which also pins down painter's-algorithm ordering.
//
// FailAfter, when non-negative, makes the recorder return ErrInjected on the
// drawing call after that many successful ones. Tests use it to verify that
// draw errors abort a render pass and propagate unmodified.
type Recorder struct {
	W, H int

	Ops       []Op
	FailAfter int

	// TextWidth, when positive, is the fixed per-rune width reported by
	// EstimateTextSize. Zero means 7 pixels, roughly a small bitmap font.
	TextWidth int

	presented int
	prepared  int
}

// ErrInjected is the failure produced by a Recorder with FailAfter set.
var ErrInjected = errors.New("backend: injected failure")

// NewRecorder returns a recording backend with the given dimensions.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{W: width, H: height, FailAfter: -1}
}

var _ DrawingBackend = (*Recorder)(nil)

// Size implements DrawingBackend.
func (r *Recorder) Size() (int, int) { return r.W, r.H }

// EnsurePrepared implements DrawingBackend.
func (r *Recorder) EnsurePrepared() error {
	r.prepared++
	return nil
}

// Present implements DrawingBackend.
func (r *Recorder) Present() error {
	r.presented++
	return nil
}

// Presented reports how many times Present has been called.
func (r *Recorder) Presented() int { return r.presented }

// Prepared reports how many times EnsurePrepared has been called.
func (r *Recorder) Prepared() int { return r.prepared }

func (r *Recorder) record(op Op) error {
	if r.FailAfter >= 0 && len(r.Ops) >= r.FailAfter {
		return NewDrawingError("record", ErrInjected)
	}
	r.Ops = append(r.Ops, op)
	return nil
}

// DrawPixel implements DrawingBackend.
func (r *Recorder) DrawPixel(p Coord, c Color) error {
	return r.record(Op{Kind: OpPixel, Points: []Coord{p}, Style: StyleFromColor(c)})
}

// DrawLine implements DrawingBackend.
func (r *Recorder) DrawLine(from, to Coord, s Style) error {
	return r.record(Op{Kind: OpLine, Points: []Coord{from, to}, Style: s})
}

// DrawRect implements DrawingBackend.
func (r *Recorder) DrawRect(upperLeft, bottomRight Coord, s Style, fill bool) error {
	return r.record(Op{Kind: OpRect, Points: []Coord{upperLeft, bottomRight}, Style: s, Fill: fill})
}

// DrawPath implements DrawingBackend.
func (r *Recorder) DrawPath(points []Coord, s Style) error {
	if len(points) == 0 {
		return NewDrawingError("draw path", ErrInvalidGeometry)
	}
	pts := make([]Coord, len(points))
	copy(pts, points)
	return r.record(Op{Kind: OpPath, Points: pts, Style: s})
}

// FillPolygon implements DrawingBackend.
func (r *Recorder) FillPolygon(vertices []Coord, s Style) error {
	if len(vertices) < 3 {
		return NewDrawingError("fill polygon", ErrInvalidGeometry)
	}
	pts := make([]Coord, len(vertices))
	copy(pts, vertices)
	return r.record(Op{Kind: OpPolygon, Points: pts, Style: s})
}

// DrawCircle implements DrawingBackend.
func (r *Recorder) DrawCircle(center Coord, radius int, s Style, fill bool) error {
	if radius < 0 {
		return NewDrawingError("draw circle", ErrInvalidGeometry)
	}
	return r.record(Op{Kind: OpCircle, Points: []Coord{center}, Style: s, Radius: radius, Fill: fill})
}

// DrawText implements DrawingBackend.
func (r *Recorder) DrawText(text string, ts TextStyle, pos Coord) error {
	return r.record(Op{Kind: OpText, Points: []Coord{pos}, Text: ts, Str: text})
}

// EstimateTextSize implements DrawingBackend with a fixed per-rune width,
// which keeps layout-dependent tests deterministic.
func (r *Recorder) EstimateTextSize(text string, ts TextStyle) (int, int, error) {
	w := r.TextWidth
	if w <= 0 {
		w = 7
	}
	n := len([]rune(text))
	h := int(ts.Size)
	if h <= 0 {
		h = 13
	}
	return n * w, h, nil
}

// BlitBitmap implements DrawingBackend.
func (r *Recorder) BlitBitmap(pos Coord, width, height int, rgb []byte) error {
	if len(rgb) < width*height*3 {
		return NewDrawingError("blit bitmap", ErrInvalidGeometry)
	}
	return r.record(Op{Kind: OpBlit, Points: []Coord{pos}, Radius: width, Fill: false, Str: ""})
}

// OpsOfKind returns the recorded operations of one kind, in emission order.
func (r *Recorder) OpsOfKind(k OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == k {
			out = append(out, op)
		}
	}
	return out
}
