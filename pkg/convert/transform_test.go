package convert

import (
	"io"
	"log/slog"
	"math"
	"strconv"
	"testing"
)

func newTestConverter() *Converter {
	return New(Config{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
}

func TestRound3(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{132.283501, 132.284},
		{-330.7087525, -330.709},
		{37.795286, 37.795},
		{75.590572, 75.591},
		{-0.0004, 0},
		{0, 0},
		{1.0006, 1.001},
	}
	for _, tt := range tests {
		got := Round3(tt.in)
		if got != tt.want {
			t.Errorf("Round3(%v): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestRound3NormalizesNegativeZero(t *testing.T) {
	got := Round3(-0.0001)
	if got != 0 {
		t.Fatalf("Expected 0, got %v", got)
	}
	if math.Signbit(got) {
		t.Error("Expected positive zero, got negative zero")
	}
}

func TestTransformCoord(t *testing.T) {
	c := newTestConverter()

	p, ok := c.transformCoord("(3.5, 8.75)")
	if !ok {
		t.Fatal("Expected an absolute coordinate")
	}
	if p.X != 132.284 {
		t.Errorf("Expected x 132.284, got %v", p.X)
	}
	if p.Y != -330.709 {
		t.Errorf("Expected y -330.709, got %v", p.Y)
	}
}

func TestTransformCoordNegativeZero(t *testing.T) {
	c := newTestConverter()

	p, ok := c.transformCoord("(0, 0)")
	if !ok {
		t.Fatal("Expected an absolute coordinate")
	}
	if math.Signbit(p.Y) {
		t.Error("Expected y to normalize to positive zero")
	}
}

func TestTransformCoordRejectsRelative(t *testing.T) {
	c := newTestConverter()

	inputs := []string{
		"([yshift=0.04cm]X1.north east)",
		"(Q1.text)",
		"(a, b)",
	}
	for _, input := range inputs {
		if _, ok := c.transformCoord(input); ok {
			t.Errorf("Expected %q rejected", input)
		}
	}
}

func TestTransformRoundsExactlyOnce(t *testing.T) {
	// Formatting a converted value and reconverting the formatted text
	// must not shift it: rounding happens once, after scaling.
	c := newTestConverter()
	for _, x := range []float64{3.5, -8.75, 9.54, 0.001, 12.648} {
		v := c.transformX(x)
		text := strconv.FormatFloat(v, 'f', -1, 64)
		back, err := strconv.ParseFloat(text, 64)
		if err != nil {
			t.Fatalf("Failed to reparse %q: %v", text, err)
		}
		if Round3(back) != v {
			t.Errorf("Value %v shifted through format/reparse to %v", v, Round3(back))
		}
	}
}
