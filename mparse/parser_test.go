package mparse

import (
	"reflect"
	"testing"

	"github.com/juntao/mathshot/mast"
)

func TestParseSingleSymbol(t *testing.T) {
	got := Parse("x")
	want := mast.Symbol{Ch: 'x'}
	if got != want {
		t.Fatalf("Parse(%q) = %#v, want %#v", "x", got, want)
	}
}

func TestParseRow(t *testing.T) {
	got, ok := Parse("ab").(mast.Row)
	if !ok {
		t.Fatalf("Parse(%q) did not return a Row: %#v", "ab", got)
	}
	want := []mast.Node{mast.Symbol{Ch: 'a'}, mast.Symbol{Ch: 'b'}}
	if len(got.Children) != len(want) {
		t.Fatalf("Children = %#v, want %#v", got.Children, want)
	}
	for i := range want {
		if got.Children[i] != want[i] {
			t.Fatalf("Children[%d] = %#v, want %#v", i, got.Children[i], want[i])
		}
	}
}

func TestParseFrac(t *testing.T) {
	got := Parse(`\frac{1}{2}`)
	want := mast.Frac{Num: mast.Symbol{Ch: '1'}, Den: mast.Symbol{Ch: '2'}}
	if got != want {
		t.Fatalf(`Parse(\frac{1}{2}) = %#v, want %#v`, got, want)
	}
}

func TestParseSubSupOrder(t *testing.T) {
	got, ok := Parse("x^2_i").(mast.SubSup)
	if !ok {
		t.Fatalf("Parse(x^2_i) did not return SubSup: %#v", got)
	}
	if got.Base != (mast.Symbol{Ch: 'x'}) {
		t.Fatalf("Base = %#v", got.Base)
	}
	if got.Sub != (mast.Symbol{Ch: 'i'}) {
		t.Fatalf("Sub = %#v, want Symbol('i')", got.Sub)
	}
	if got.Sup != (mast.Symbol{Ch: '2'}) {
		t.Fatalf("Sup = %#v, want Symbol('2')", got.Sup)
	}
}

func TestParseSubThenSupSameResult(t *testing.T) {
	a := Parse("x_i^2")
	b := Parse("x^2_i")
	if a != b {
		t.Fatalf("order of scripts should not matter: %#v vs %#v", a, b)
	}
}

func TestParseGreekAndOperators(t *testing.T) {
	tests := []struct {
		in   string
		want rune
	}{
		{`\alpha`, 'α'},
		{`\leq`, '≤'},
		{`\rightarrow`, '→'},
		{`\times`, '×'},
	}
	for _, tt := range tests {
		got, ok := Parse(tt.in).(mast.Symbol)
		if !ok || got.Ch != tt.want {
			t.Errorf("Parse(%q) = %#v, want Symbol(%q)", tt.in, got, tt.want)
		}
	}
}

func TestParseSqrt(t *testing.T) {
	got := Parse(`\sqrt{x}`)
	want := mast.Sqrt{Inner: mast.Symbol{Ch: 'x'}}
	if got != want {
		t.Fatalf(`Parse(\sqrt{x}) = %#v, want %#v`, got, want)
	}
}

func TestParseDelimited(t *testing.T) {
	got, ok := Parse(`\left(x\right)`).(mast.Delimited)
	if !ok {
		t.Fatalf(`Parse(\left(x\right)) did not return Delimited: %#v`, got)
	}
	if got.Left != '(' || got.Right != ')' {
		t.Fatalf("Left/Right = %q/%q, want (/)", got.Left, got.Right)
	}
	if got.Inner != (mast.Symbol{Ch: 'x'}) {
		t.Fatalf("Inner = %#v, want Symbol('x')", got.Inner)
	}
}

func TestParseDelimitedDotOmitsRight(t *testing.T) {
	got, ok := Parse(`\left(x\right.`).(mast.Delimited)
	if !ok {
		t.Fatalf(`Parse did not return Delimited: %#v`, got)
	}
	if got.Left != '(' {
		t.Fatalf("Left = %q, want (", got.Left)
	}
	if mast.HasDelim(got.Right) {
		t.Fatalf("Right = %q, want NoDelim", got.Right)
	}
}

func TestParsePMatrix(t *testing.T) {
	got, ok := Parse(`\begin{pmatrix}1&2\\3&4\end{pmatrix}`).(mast.Matrix)
	if !ok {
		t.Fatalf("Parse(pmatrix) did not return Matrix: %#v", got)
	}
	if got.Left != '(' || got.Right != ')' {
		t.Fatalf("Left/Right = %q/%q, want (/)", got.Left, got.Right)
	}
	if len(got.Rows) != 2 {
		t.Fatalf("len(Rows) = %d, want 2", len(got.Rows))
	}
	for i, row := range got.Rows {
		if len(row) != 2 {
			t.Fatalf("len(Rows[%d]) = %d, want 2", i, len(row))
		}
	}
	if got.Rows[0][0] != (mast.Symbol{Ch: '1'}) || got.Rows[1][1] != (mast.Symbol{Ch: '4'}) {
		t.Fatalf("unexpected cell contents: %#v", got.Rows)
	}
}

func TestParseRaggedMatrixRows(t *testing.T) {
	got, ok := Parse(`\begin{matrix}1&2&3\\4\end{matrix}`).(mast.Matrix)
	if !ok {
		t.Fatalf("Parse did not return Matrix: %#v", got)
	}
	if len(got.Rows) != 2 {
		t.Fatalf("len(Rows) = %d, want 2", len(got.Rows))
	}
	if len(got.Rows[0]) != 3 {
		t.Fatalf("len(Rows[0]) = %d, want 3", len(got.Rows[0]))
	}
	if len(got.Rows[1]) != 1 {
		t.Fatalf("len(Rows[1]) = %d, want 1", len(got.Rows[1]))
	}
}

func TestParseCases(t *testing.T) {
	got, ok := Parse(`\begin{cases}1&x>0\\-1&x\leq0\end{cases}`).(mast.Cases)
	if !ok {
		t.Fatalf("Parse(cases) did not return Cases: %#v", got)
	}
	if len(got.Rows) != 2 {
		t.Fatalf("len(Rows) = %d, want 2", len(got.Rows))
	}
}

func TestParseUnknownCommandPassesThrough(t *testing.T) {
	got, ok := Parse(`\foobar`).(mast.Text)
	if !ok || got.S != `\foobar` {
		t.Fatalf(`Parse(\foobar) = %#v, want Text("\foobar")`, got)
	}
}

func TestParseFunctionName(t *testing.T) {
	got, ok := Parse(`\sin`).(mast.Text)
	if !ok || got.S != "sin" {
		t.Fatalf(`Parse(\sin) = %#v, want Text("sin")`, got)
	}
}

func TestParseTextCommand(t *testing.T) {
	got, ok := Parse(`\text{hello world}`).(mast.Text)
	if !ok || got.S != "hello world" {
		t.Fatalf(`Parse(\text{...}) = %#v, want Text("hello world")`, got)
	}
}

func TestParseStyleWrapperDiscardsStyling(t *testing.T) {
	a := Parse(`\mathbf{x}`)
	b := Parse(`x`)
	if a != b {
		t.Fatalf("mathbf should discard styling: %#v vs %#v", a, b)
	}
}

func TestParseStripsEquationWrapper(t *testing.T) {
	a := Parse(`\begin{equation}x+1\end{equation}`)
	b := Parse(`x+1`)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("equation wrapper should be stripped: %#v vs %#v", a, b)
	}
}
