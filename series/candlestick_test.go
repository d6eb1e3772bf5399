package series

import (
	"testing"

	"github.com/gogpu/charts/backend"
	"github.com/gogpu/charts/style"
)

func candleStyles() (gain, loss, neutral style.ShapeStyle) {
	return style.Shape(style.Green), style.Shape(style.Red), style.Shape(style.Gray)
}

func TestCandlestick_StyleSelection(t *testing.T) {
	gain, loss, neutral := candleStyles()
	c := NewCandlestick[float64](nil, gain, loss, neutral, 3)

	cases := []struct {
		name        string
		open, close float64
		want        style.ShapeStyle
	}{
		{"gain", 1, 2, gain},
		{"loss", 2, 1, loss},
		{"unchanged", 2, 2, neutral},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o := OHLC[float64]{Open: tc.open, Close: tc.close, High: 3, Low: 0}
			if got := c.StyleFor(o); got.Color != tc.want.Color {
				t.Errorf("StyleFor = %+v, want %+v", got.Color, tc.want.Color)
			}
		})
	}
}

func TestCandlestick_WickThenBody(t *testing.T) {
	ctx, rec := newChart(t)
	gain, loss, neutral := candleStyles()
	data := []OHLC[float64]{{X: 5, Open: 2, High: 9, Low: 1, Close: 7}}
	if err := ctx.Draw(NewCandlestick(data, gain, loss, neutral, 2)); err != nil {
		t.Fatal(err)
	}
	if len(rec.Ops) != 2 {
		t.Fatalf("got %d ops, want wick + body", len(rec.Ops))
	}
	if rec.Ops[0].Kind != backend.OpLine || rec.Ops[1].Kind != backend.OpRect {
		t.Fatalf("op order = %v, %v; want line then rect", rec.Ops[0].Kind, rec.Ops[1].Kind)
	}
	body := rec.Ops[1]
	if !body.Fill {
		t.Error("candle body must be filled")
	}
	// Body spans open..close, wick spans low..high.
	wick := rec.Ops[0]
	if wick.Points[0].Y >= body.Points[0].Y || wick.Points[1].Y <= body.Points[1].Y {
		t.Errorf("wick %+v does not extend beyond body %+v", wick.Points, body.Points)
	}
}

func TestCandlestick_DeterministicStyles(t *testing.T) {
	// Same inputs give byte-identical op sequences across passes.
	gain, loss, neutral := candleStyles()
	data := []OHLC[float64]{
		{X: 2, Open: 1, High: 5, Low: 0, Close: 4},
		{X: 5, Open: 4, High: 5, Low: 2, Close: 3},
		{X: 8, Open: 3, High: 4, Low: 2, Close: 3},
	}
	var runs [2][]backend.Op
	for i := range runs {
		ctx, rec := newChart(t)
		if err := ctx.Draw(NewCandlestick(data, gain, loss, neutral, 2)); err != nil {
			t.Fatal(err)
		}
		runs[i] = rec.Ops
	}
	if len(runs[0]) != len(runs[1]) {
		t.Fatalf("op counts differ: %d vs %d", len(runs[0]), len(runs[1]))
	}
	for i := range runs[0] {
		if runs[0][i].Kind != runs[1][i].Kind || runs[0][i].Style != runs[1][i].Style {
			t.Errorf("op %d differs between passes", i)
		}
	}
}
