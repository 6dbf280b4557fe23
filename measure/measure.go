// Package measure computes the pixel bounding box of every node in a
// math AST before it is positioned for drawing. Every measurement is a
// self-contained, side-effect-free function of the node and the current
// font size, so the same tree can be measured at several nested sizes
// (a fraction's numerator, a superscript) without re-parsing.
package measure

import (
	gtfont "github.com/go-text/typesetting/font"

	"github.com/juntao/mathshot/font"
	"github.com/juntao/mathshot/mast"
)

// FontMetrics is the subset of *font.Font that measurement needs. It is
// an interface, rather than a concrete type, so tests can measure
// against a fake face without loading a real font file.
type FontMetrics interface {
	GlyphIndex(r rune) (gtfont.GID, bool)
	HorizontalAdvance(gid gtfont.GID, pixelSize float64) float64
	Ascent(pixelSize float64) float64
	Descent(pixelSize float64) float64
}

// Dims is a node's measured box: its total width, and how far it
// extends above (ascent) and below (descent) the baseline it will be
// drawn on.
type Dims struct {
	Width   float64
	Ascent  float64
	Descent float64
}

// Height is the total vertical extent of the box.
func (d Dims) Height() float64 {
	return d.Ascent + d.Descent
}

// Metrics measures nodes against one font face.
type Metrics struct {
	Font FontMetrics
}

// Measure computes the Dims of node when set at the given pixel size.
func Measure(f FontMetrics, node mast.Node, size float64) Dims {
	return Metrics{Font: f}.Measure(node, size)
}

var _ FontMetrics = (*font.Font)(nil)

// Measure computes the Dims of node when set at the given pixel size.
func (m Metrics) Measure(node mast.Node, size float64) Dims {
	switch n := node.(type) {
	case mast.Symbol:
		return m.measureChar(n.Ch, size)

	case mast.Text:
		return m.measureText(n.S, size)

	case mast.Space:
		return Dims{Width: n.Em * size}

	case mast.Row:
		return m.measureRow(n.Children, size)

	case mast.Frac:
		return m.measureFrac(n, size)

	case mast.Sup:
		base := m.Measure(n.Base, size)
		sup := m.Measure(n.Sup, size*0.65)
		shift := base.Ascent * 0.5
		return Dims{
			Width:   base.Width + sup.Width + size*0.03,
			Ascent:  maxF(base.Ascent, shift+sup.Ascent),
			Descent: base.Descent,
		}

	case mast.Sub:
		base := m.Measure(n.Base, size)
		sub := m.Measure(n.Sub, size*0.65)
		shift := base.Descent + base.Ascent*0.2
		return Dims{
			Width:   base.Width + sub.Width + size*0.03,
			Ascent:  base.Ascent,
			Descent: maxF(base.Descent, shift+sub.Descent),
		}

	case mast.SubSup:
		base := m.Measure(n.Base, size)
		sc := size * 0.65
		sup := m.Measure(n.Sup, sc)
		sub := m.Measure(n.Sub, sc)
		return Dims{
			Width:   base.Width + maxF(sup.Width, sub.Width) + size*0.03,
			Ascent:  maxF(base.Ascent, base.Ascent*0.5+sup.Ascent),
			Descent: maxF(base.Descent, base.Descent+base.Ascent*0.2+sub.Descent),
		}

	case mast.Sqrt:
		c := m.Measure(n.Inner, size)
		return Dims{
			Width:   size*0.5 + c.Width + size*0.1,
			Ascent:  c.Ascent + size*0.15,
			Descent: c.Descent + size*0.1,
		}

	case mast.Overline:
		c := m.Measure(n.Inner, size)
		return Dims{Width: c.Width, Ascent: c.Ascent + size*0.15, Descent: c.Descent}

	case mast.Accent:
		c := m.Measure(n.Inner, size)
		return Dims{Width: c.Width, Ascent: c.Ascent + size*0.15, Descent: c.Descent}

	case mast.Matrix:
		return m.measureMatrix(n.Rows, mast.HasDelim(n.Left), mast.HasDelim(n.Right), size)

	case mast.Cases:
		return m.measureMatrix(n.Rows, true, false, size)

	case mast.Delimited:
		c := m.Measure(n.Inner, size)
		dw := size * 0.25
		return Dims{
			Width:   c.Width + dw*2 + size*0.1,
			Ascent:  c.Ascent + size*0.1,
			Descent: c.Descent + size*0.1,
		}

	default:
		return Dims{}
	}
}

func (m Metrics) measureRow(children []mast.Node, size float64) Dims {
	gap := size * 0.05
	var w, asc, desc float64
	for i, child := range children {
		d := m.Measure(child, size)
		if i > 0 {
			if IsSpacedNode(child) || IsSpacedNode(children[i-1]) {
				w += size * 0.2
			} else {
				w += gap
			}
		}
		w += d.Width
		asc = maxF(asc, d.Ascent)
		desc = maxF(desc, d.Descent)
	}
	return Dims{Width: w, Ascent: asc, Descent: desc}
}

func (m Metrics) measureFrac(n mast.Frac, size float64) Dims {
	ns := size * 0.8
	num := m.Measure(n.Num, ns)
	den := m.Measure(n.Den, ns)
	rule := size * 0.05
	gap := size * 0.15
	return Dims{
		Width:   maxF(num.Width, den.Width) + size*0.3,
		Ascent:  num.Height() + gap + rule/2,
		Descent: den.Height() + gap + rule/2,
	}
}

func (m Metrics) measureMatrix(rows [][]mast.Node, hasLeft, hasRight bool, size float64) Dims {
	if len(rows) == 0 {
		return Dims{}
	}
	ncols := 0
	for _, row := range rows {
		if len(row) > ncols {
			ncols = len(row)
		}
	}
	gapX := size * 0.6
	gapY := size * 0.3
	dw := size * 0.3

	colW := make([]float64, ncols)
	type rowExtent struct{ asc, desc float64 }
	rowH := make([]rowExtent, 0, len(rows))

	for _, row := range rows {
		ra, rd := size*0.4, size*0.2
		for j, cell := range row {
			d := m.Measure(cell, size)
			if j < ncols && d.Width > colW[j] {
				colW[j] = d.Width
			}
			ra = maxF(ra, d.Ascent)
			rd = maxF(rd, d.Descent)
		}
		rowH = append(rowH, rowExtent{ra, rd})
	}

	tw := size * 0.2
	for _, w := range colW {
		tw += w
	}
	if ncols > 1 {
		tw += gapX * float64(ncols-1)
	}
	if hasLeft {
		tw += dw
	}
	if hasRight {
		tw += dw
	}

	var th float64
	for _, r := range rowH {
		th += r.asc + r.desc
	}
	if len(rows) > 1 {
		th += gapY * float64(len(rows)-1)
	}

	return Dims{
		Width:   tw,
		Ascent:  th/2 + size*0.15,
		Descent: th/2 - size*0.15,
	}
}

func (m Metrics) measureChar(ch rune, size float64) Dims {
	gid, ok := m.Font.GlyphIndex(ch)
	if (!ok || gid == 0) && ch != ' ' {
		return Dims{Width: size * 0.6, Ascent: size * 0.7, Descent: size * 0.2}
	}
	return Dims{
		Width:   m.Font.HorizontalAdvance(gid, size),
		Ascent:  m.Font.Ascent(size),
		Descent: m.Font.Descent(size),
	}
}

func (m Metrics) measureText(text string, size float64) Dims {
	var w float64
	for _, ch := range text {
		gid, _ := m.Font.GlyphIndex(ch)
		w += m.Font.HorizontalAdvance(gid, size)
	}
	return Dims{Width: w, Ascent: m.Font.Ascent(size), Descent: m.Font.Descent(size)}
}

// IsSpacedNode reports whether extra spacing should surround node, as
// LaTeX does around binary operators and relations.
func IsSpacedNode(node mast.Node) bool {
	sym, ok := node.(mast.Symbol)
	return ok && isBinOrRel(sym.Ch)
}

func isBinOrRel(ch rune) bool {
	switch ch {
	case '=', '<', '>', '+', '-',
		'≤', '≥', '≠', '≈', '≡',
		'∼', '≃', '≅', '∝',
		'⊂', '⊃', '⊆', '⊇',
		'∈', '∉', '∋',
		'∪', '∩',
		'∨', '∧',
		'×', '÷',
		'±', '∓',
		'→', '←', '↔',
		'⇒', '⇐', '⇔',
		'↦',
		'≪', '≫':
		return true
	default:
		return false
	}
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
