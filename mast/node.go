// Package mast defines the abstract syntax tree produced by parsing a
// single math formula's markup.
//
// A tree is built once per formula, consumed by the measure and draw
// packages, and discarded when rendering completes. Nodes own their
// children outright; there is no sharing and no cycles.
package mast

// Node is implemented by every math AST variant. The method is unexported
// so the node set is closed to this package.
type Node interface {
	mathNode()
}

// Symbol is a single printable character, such as a letter, digit, or
// math operator.
type Symbol struct {
	Ch rune
}

func (Symbol) mathNode() {}

// Text is an opaque upright string: function names (sin, lim, ...) and
// the contents of \text{...} and friends.
type Text struct {
	S string
}

func (Text) mathNode() {}

// Space is a horizontal skip measured in em units of the current font
// size. The amount may be negative (e.g. \! is a negative thin space).
type Space struct {
	Em float64
}

func (Space) mathNode() {}

// Row is an ordered concatenation of nodes. The empty row is the neutral
// element of concatenation. A row with exactly one child is semantically
// equivalent to that child; parsers are expected to collapse such
// rows, but callers should not rely on that having happened.
type Row struct {
	Children []Node
}

func (Row) mathNode() {}

// Frac is a numerator over a denominator, separated by a horizontal rule.
type Frac struct {
	Num Node
	Den Node
}

func (Frac) mathNode() {}

// Sup attaches a superscript to a base. Exactly one script is present;
// use SubSup when both are needed.
type Sup struct {
	Base Node
	Sup  Node
}

func (Sup) mathNode() {}

// Sub attaches a subscript to a base.
type Sub struct {
	Base Node
	Sub  Node
}

func (Sub) mathNode() {}

// SubSup attaches both a subscript and a superscript to a base. Both
// scripts are always present. By convention the sub field is
// declared before the sup field; this ordering is part of the public
// contract and is asserted by tests.
type SubSup struct {
	Base Node
	Sub  Node
	Sup  Node
}

func (SubSup) mathNode() {}

// Sqrt is a radical with an overline spanning its inner content. The
// optional index of \sqrt[n]{x} is not modeled.
type Sqrt struct {
	Inner Node
}

func (Sqrt) mathNode() {}

// Overline draws a bar above its inner content.
type Overline struct {
	Inner Node
}

func (Overline) mathNode() {}

// Accent centers a combining mark above its inner content.
type Accent struct {
	Mark  rune
	Inner Node
}

func (Accent) mathNode() {}

// NoDelim is the sentinel delimiter character meaning "omitted" (the
// LaTeX dot delimiter, \left. or \right.). Nothing is drawn for it.
const NoDelim = '\x00'

// Matrix is a 2-D grid of cells with optional stretching delimiters on
// either side. Rows need not share a length; shorter rows are
// right-padded with empty cells at layout time.
type Matrix struct {
	Rows  [][]Node
	Left  rune // NoDelim if absent
	Right rune // NoDelim if absent
}

func (Matrix) mathNode() {}

// Cases is a matrix with a left brace and no right delimiter, as
// produced by the cases environment.
type Cases struct {
	Rows [][]Node
}

func (Cases) mathNode() {}

// Delimited is a pair of stretching delimiters around an inner
// expression, as produced by \left ... \right.
type Delimited struct {
	Left  rune // NoDelim if absent
	Right rune // NoDelim if absent
	Inner Node
}

func (Delimited) mathNode() {}

// HasDelim reports whether d denotes a delimiter that should actually be
// drawn.
func HasDelim(d rune) bool {
	return d != NoDelim
}
