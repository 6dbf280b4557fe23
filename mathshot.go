// Package mathshot renders a math formula, written in a LaTeX-like
// markup, to a standalone raster image. It wires together the four
// pipeline stages that do the work: mparse turns markup into an AST,
// measure computes each node's pixel box, draw positions the tree into
// a flat command list, and raster executes that list onto a pixel
// buffer.
package mathshot

import (
	"github.com/juntao/mathshot/draw"
	"github.com/juntao/mathshot/font"
	"github.com/juntao/mathshot/mast"
	"github.com/juntao/mathshot/measure"
	"github.com/juntao/mathshot/mparse"
	"github.com/juntao/mathshot/raster"
)

// basePadding is the pixel margin, multiplied by the render scale, left
// around the formula's measured box on every side.
const basePadding = 16.0

// RenderMarkup parses markup and renders it to a pixel buffer at the
// given font size (in points) and render scale (multiplies font size
// and padding to produce a higher-resolution output).
func RenderMarkup(markup string, f *font.Font, theme raster.Theme, fontSize, scale float64) *raster.Buf {
	node := mparse.Parse(markup)
	return Render(node, f, theme, fontSize, scale)
}

// Render lays out and rasterizes an already-parsed AST node.
func Render(node mast.Node, f *font.Font, theme raster.Theme, fontSize, scale float64) *raster.Buf {
	pxSize := fontSize * scale
	padding := basePadding * scale

	dims := measure.Measure(f, node, pxSize)

	imgW := int(dims.Width + padding*2)
	imgH := int(dims.Height() + padding*2)
	if imgW < 1 {
		imgW = 1
	}
	if imgH < 1 {
		imgH = 1
	}

	img := raster.NewBuf(imgW, imgH, theme.BG())

	originX := padding
	originY := padding + dims.Ascent

	var cmds []draw.Cmd
	draw.Layout(f, node, pxSize, originX, originY, &cmds)

	raster.Render(cmds, f, theme.FG(), img)
	return img
}
