// Package draw positions a measured math AST into a flat list of draw
// commands: glyphs, upright text runs, and horizontal rules, each with
// an absolute pixel position relative to a single shared baseline
// origin. The raster package turns this list into pixels; draw itself
// performs no pixel work.
package draw

import (
	"github.com/juntao/mathshot/mast"
	"github.com/juntao/mathshot/measure"
)

// Cmd is one positioned drawing primitive.
type Cmd interface {
	isCmd()
}

// Glyph draws a single codepoint at the given size, baseline-anchored at (X, Y).
type Glyph struct {
	X, Y float64
	Ch   rune
	Size float64
}

func (Glyph) isCmd() {}

// HLine draws a horizontal rule of the given thickness, left edge at X,
// vertically centered on Y.
type HLine struct {
	X, Y, Width, Thickness float64
}

func (HLine) isCmd() {}

// Text draws an upright string at the given size, baseline-anchored at (X, Y).
type Text struct {
	X, Y float64
	S    string
	Size float64
}

func (Text) isCmd() {}

// Layout positions node (already measured by the measure package at the
// same size) so its content is emitted into cmds relative to the
// baseline origin (x, by).
func Layout(f measure.FontMetrics, node mast.Node, size, x, by float64, cmds *[]Cmd) {
	m := measure.Metrics{Font: f}

	switch n := node.(type) {
	case mast.Symbol:
		*cmds = append(*cmds, Glyph{X: x, Y: by, Ch: n.Ch, Size: size})

	case mast.Text:
		*cmds = append(*cmds, Text{X: x, Y: by, S: n.S, Size: size})

	case mast.Space:
		// No visible output; its width already pushed later siblings over.

	case mast.Row:
		layoutRow(f, n.Children, size, x, by, cmds)

	case mast.Frac:
		layoutFrac(f, n, size, x, by, cmds)

	case mast.Sup:
		base := m.Measure(n.Base, size)
		Layout(f, n.Base, size, x, by, cmds)
		es := size * 0.65
		Layout(f, n.Sup, es, x+base.Width+size*0.03, by-base.Ascent*0.5, cmds)

	case mast.Sub:
		base := m.Measure(n.Base, size)
		Layout(f, n.Base, size, x, by, cmds)
		is := size * 0.65
		Layout(f, n.Sub, is, x+base.Width+size*0.03, by+base.Descent+base.Ascent*0.2, cmds)

	case mast.SubSup:
		base := m.Measure(n.Base, size)
		Layout(f, n.Base, size, x, by, cmds)
		sc := size * 0.65
		sx := x + base.Width + size*0.03
		Layout(f, n.Sup, sc, sx, by-base.Ascent*0.5, cmds)
		Layout(f, n.Sub, sc, sx, by+base.Descent+base.Ascent*0.2, cmds)

	case mast.Sqrt:
		layoutSqrt(f, n, size, x, by, cmds)

	case mast.Overline:
		c := m.Measure(n.Inner, size)
		*cmds = append(*cmds, HLine{X: x, Y: by - c.Ascent - size*0.1, Width: c.Width, Thickness: size * 0.05})
		Layout(f, n.Inner, size, x, by, cmds)

	case mast.Accent:
		layoutAccent(f, n, size, x, by, cmds)

	case mast.Matrix:
		layoutMatrix(f, n.Rows, n.Left, n.Right, size, x, by, cmds)

	case mast.Cases:
		layoutMatrix(f, n.Rows, '{', mast.NoDelim, size, x, by, cmds)

	case mast.Delimited:
		layoutDelimited(f, n, size, x, by, cmds)
	}
}

func layoutRow(f measure.FontMetrics, children []mast.Node, size, x, by float64, cmds *[]Cmd) {
	m := measure.Metrics{Font: f}
	gap := size * 0.05
	cx := x
	for i, child := range children {
		if i > 0 {
			if measure.IsSpacedNode(child) || measure.IsSpacedNode(children[i-1]) {
				cx += size * 0.2
			} else {
				cx += gap
			}
		}
		Layout(f, child, size, cx, by, cmds)
		cx += m.Measure(child, size).Width
	}
}

func layoutFrac(f measure.FontMetrics, n mast.Frac, size, x, by float64, cmds *[]Cmd) {
	m := measure.Metrics{Font: f}
	ns := size * 0.8
	num := m.Measure(n.Num, ns)
	den := m.Measure(n.Den, ns)
	ruleT := size * 0.05
	gap := size * 0.15
	tw := maxF(num.Width, den.Width) + size*0.3
	axis := by - size*0.22

	*cmds = append(*cmds, HLine{X: x, Y: axis, Width: tw, Thickness: ruleT})

	nx := x + (tw-num.Width)/2
	nby := axis - gap - ruleT/2 - num.Descent
	Layout(f, n.Num, ns, nx, nby, cmds)

	dx := x + (tw-den.Width)/2
	dby := axis + gap + ruleT/2 + den.Ascent
	Layout(f, n.Den, ns, dx, dby, cmds)
}

func layoutSqrt(f measure.FontMetrics, n mast.Sqrt, size, x, by float64, cmds *[]Cmd) {
	m := measure.Metrics{Font: f}
	c := m.Measure(n.Inner, size)
	rw := size * 0.5
	ruleT := size * 0.05
	*cmds = append(*cmds, Glyph{X: x, Y: by, Ch: '√', Size: size * 1.1})
	*cmds = append(*cmds, HLine{X: x + rw, Y: by - c.Ascent - size*0.1, Width: c.Width + size*0.1, Thickness: ruleT})
	Layout(f, n.Inner, size, x+rw, by, cmds)
}

func layoutAccent(f measure.FontMetrics, n mast.Accent, size, x, by float64, cmds *[]Cmd) {
	m := measure.Metrics{Font: f}
	c := m.Measure(n.Inner, size)
	Layout(f, n.Inner, size, x, by, cmds)
	as := size * 0.5
	gid, _ := f.GlyphIndex(n.Mark)
	aw := f.HorizontalAdvance(gid, as)
	*cmds = append(*cmds, Glyph{
		X:    x + (c.Width-aw)/2,
		Y:    by - c.Ascent - size*0.05,
		Ch:   n.Mark,
		Size: as,
	})
}

func layoutDelimited(f measure.FontMetrics, n mast.Delimited, size, x, by float64, cmds *[]Cmd) {
	m := measure.Metrics{Font: f}
	c := m.Measure(n.Inner, size)
	dw := size * 0.25
	ds := minF(c.Height()+size*0.2, size*2.5)
	if mast.HasDelim(n.Left) {
		*cmds = append(*cmds, Glyph{X: x, Y: by, Ch: n.Left, Size: ds})
	}
	Layout(f, n.Inner, size, x+dw+size*0.05, by, cmds)
	if mast.HasDelim(n.Right) {
		*cmds = append(*cmds, Glyph{X: x + dw + size*0.05 + c.Width + size*0.05, Y: by, Ch: n.Right, Size: ds})
	}
}

func layoutMatrix(f measure.FontMetrics, rows [][]mast.Node, left, right rune, size, x, by float64, cmds *[]Cmd) {
	if len(rows) == 0 {
		return
	}
	m := measure.Metrics{Font: f}
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
	rowM := make([]rowExtent, 0, len(rows))

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
		rowM = append(rowM, rowExtent{ra, rd})
	}

	var th float64
	for _, r := range rowM {
		th += r.asc + r.desc
	}
	if len(rows) > 1 {
		th += gapY * float64(len(rows)-1)
	}

	cx := x
	if mast.HasDelim(left) {
		ds := minF(th, size*3.0)
		*cmds = append(*cmds, Glyph{X: cx, Y: by, Ch: left, Size: ds})
		cx += dw
	}
	cx += size * 0.1

	top := by - th/2
	cy := top

	for i, row := range rows {
		ra := rowM[i].asc
		rd := rowM[i].desc
		cellBy := cy + ra
		cellX := cx
		for j, cell := range row {
			d := m.Measure(cell, size)
			off := (colW[j] - d.Width) / 2
			Layout(f, cell, size, cellX+off, cellBy, cmds)
			cellX += colW[j] + gapX
		}
		cy += ra + rd + gapY
	}

	if mast.HasDelim(right) {
		var contentW float64
		for _, w := range colW {
			contentW += w
		}
		if ncols > 1 {
			contentW += gapX * float64(ncols-1)
		}
		ds := minF(th, size*3.0)
		*cmds = append(*cmds, Glyph{X: cx + contentW + size*0.1, Y: by, Ch: right, Size: ds})
	}
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
