package measure

import (
	"math"
	"testing"

	gtfont "github.com/go-text/typesetting/font"

	"github.com/juntao/mathshot/mast"
)

// fakeFont reports no glyph for any rune, exercising the missing-glyph
// fallback dimensions without needing a real font file on disk.
type fakeFont struct{}

func (fakeFont) GlyphIndex(r rune) (gtfont.GID, bool)              { return 0, false }
func (fakeFont) HorizontalAdvance(gtfont.GID, float64) float64     { return 0 }
func (fakeFont) Ascent(pixelSize float64) float64                  { return pixelSize * 0.75 }
func (fakeFont) Descent(pixelSize float64) float64                 { return pixelSize * 0.25 }

var stubFont = fakeFont{}

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestMeasureMissingGlyphFallback(t *testing.T) {
	d := Measure(stubFont, mast.Symbol{Ch: 'x'}, 24)
	want := Dims{Width: 24 * 0.6, Ascent: 24 * 0.7, Descent: 24 * 0.2}
	if !approxEqual(d.Width, want.Width, 1e-9) || !approxEqual(d.Ascent, want.Ascent, 1e-9) || !approxEqual(d.Descent, want.Descent, 1e-9) {
		t.Fatalf("Measure(Symbol) = %+v, want %+v", d, want)
	}
}

func TestMeasureSpace(t *testing.T) {
	d := Measure(stubFont, mast.Space{Em: 1.0}, 24)
	if d.Width != 24 || d.Ascent != 0 || d.Descent != 0 {
		t.Fatalf("Measure(Space) = %+v", d)
	}
}

func TestMeasureRowWidensWithSpacedOperator(t *testing.T) {
	plain := mast.Row{Children: []mast.Node{mast.Symbol{Ch: 'a'}, mast.Symbol{Ch: 'b'}}}
	spaced := mast.Row{Children: []mast.Node{mast.Symbol{Ch: 'a'}, mast.Symbol{Ch: '+'}, mast.Symbol{Ch: 'b'}}}

	dp := Measure(stubFont, plain, 24)
	ds := Measure(stubFont, spaced, 24)

	charW := 24 * 0.6
	wantPlain := charW + 24*0.05 + charW
	wantSpaced := charW + 24*0.2 + charW + 24*0.2 + charW
	if !approxEqual(dp.Width, wantPlain, 1e-9) {
		t.Fatalf("plain row width = %v, want %v", dp.Width, wantPlain)
	}
	if !approxEqual(ds.Width, wantSpaced, 1e-9) {
		t.Fatalf("spaced row width = %v, want %v", ds.Width, wantSpaced)
	}
}

func TestMeasureFracAscentDescentSymmetric(t *testing.T) {
	d := Measure(stubFont, mast.Frac{Num: mast.Symbol{Ch: '1'}, Den: mast.Symbol{Ch: '2'}}, 24)
	if d.Ascent <= 0 || d.Descent <= 0 {
		t.Fatalf("Frac dims should have positive ascent/descent, got %+v", d)
	}
	if !approxEqual(d.Ascent, d.Descent, 1e-9) {
		t.Fatalf("Frac of equal-height num/den should be symmetric, got ascent %v descent %v", d.Ascent, d.Descent)
	}
}

func TestMeasureRaggedMatrixUsesWidestRow(t *testing.T) {
	rows := [][]mast.Node{
		{mast.Symbol{Ch: '1'}, mast.Symbol{Ch: '2'}},
		{mast.Symbol{Ch: '3'}},
	}
	d := Measure(stubFont, mast.Matrix{Rows: rows, Left: mast.NoDelim, Right: mast.NoDelim}, 24)
	if d.Width <= 0 {
		t.Fatalf("matrix width should be positive, got %v", d.Width)
	}
	// Two columns (from the widest row) plus one column gap and the 0.2s margin.
	charW := 24 * 0.6
	want := charW + charW + 24*0.6 + 24*0.2
	if !approxEqual(d.Width, want, 1e-9) {
		t.Fatalf("matrix width = %v, want %v", d.Width, want)
	}
}

func TestMeasureDelimitedAddsDelimiterWidth(t *testing.T) {
	inner := mast.Symbol{Ch: 'x'}
	plain := Measure(stubFont, inner, 24)
	delim := Measure(stubFont, mast.Delimited{Left: '(', Right: ')', Inner: inner}, 24)
	if delim.Width <= plain.Width {
		t.Fatalf("delimited width %v should exceed plain width %v", delim.Width, plain.Width)
	}
}

func TestMeasureEmptyMatrixIsZero(t *testing.T) {
	d := Measure(stubFont, mast.Matrix{Left: mast.NoDelim, Right: mast.NoDelim}, 24)
	if d != (Dims{}) {
		t.Fatalf("empty matrix Dims = %+v, want zero value", d)
	}
}
