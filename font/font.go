// Package font loads a math typeface and exposes the metrics and glyph
// outlines the measure and raster packages need: advance widths, vertical
// metrics at a given pixel size, and outline segments for rasterization.
package font

import (
	"github.com/go-text/typesetting/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/runenames"

	"github.com/juntao/mathshot/outline"
)

// Font wraps a parsed font face with the handful of operations the
// renderer needs. Unlike a general-purpose typesetting font, it carries
// no style/weight/stretch matching: a formula is drawn with exactly one
// face, chosen by FontBook.ResolveMathFont from an ordered list of
// fallback families; there is no per-glyph fallback to other faces.
type Font struct {
	face *font.Face

	// Info contains font metadata (family, style, weight, etc.).
	Info FontInfo

	// Path is the filesystem path where the font was loaded from.
	// Empty for embedded fonts.
	Path string

	// Index is the face index within a font collection (TTC). Zero for
	// single-face fonts (TTF/OTF).
	Index int
}

// Face returns the underlying font face for glyph lookup and shaping.
func (f *Font) Face() *font.Face {
	return f.face
}

// Family returns the font family name.
func (f *Font) Family() string {
	return f.Info.Family
}

// GlyphIndex looks up the glyph id for a rune, returning (0, false) when
// the face has no glyph for it.
func (f *Font) GlyphIndex(r rune) (font.GID, bool) {
	return f.face.NominalGlyph(r)
}

func (f *Font) upem() float64 {
	upem := float64(f.face.Font.Upem())
	if upem == 0 {
		upem = 1000
	}
	return upem
}

// HorizontalAdvance returns a glyph's advance width in font units scaled
// to the given pixel size.
func (f *Font) HorizontalAdvance(gid font.GID, pixelSize float64) float64 {
	return float64(f.face.HorizontalAdvance(gid)) * pixelSize / f.upem()
}

// Ascent returns an approximate typographic ascent in pixels at the given
// size: a fixed three quarters of the em, whatever the face. Most math
// faces reserve about that much above the baseline; the face's own
// vertical metrics and per-glyph bounding boxes are not read.
func (f *Font) Ascent(pixelSize float64) float64 {
	return pixelSize * 0.75
}

// Descent returns an approximate typographic descent in pixels (a
// positive distance below the baseline) at the given size: a fixed
// quarter of the em, whatever the face.
func (f *Font) Descent(pixelSize float64) float64 {
	return pixelSize * 0.25
}

// Outline returns the glyph's outline as a sequence of path segments in
// pixel space at the given size, with the origin at the glyph's own
// baseline origin (y grows downward, matching the raster package's image
// coordinate convention). ok is false when the face has no outline data
// for the glyph (e.g. glyph id 0, the notdef/placeholder glyph).
func (f *Font) Outline(gid font.GID, pixelSize float64) (segs []outline.Segment, ok bool) {
	if gid == 0 {
		return nil, false
	}
	data := f.face.GlyphData(gid)
	glyphOutline, isOutline := data.(font.GlyphOutline)
	if !isOutline || len(glyphOutline.Segments) == 0 {
		return nil, false
	}

	scale := pixelSize / f.upem()
	toXY := func(p fixed.Point26_6) (float64, float64) {
		return float64(p.X) / 64 * scale, -float64(p.Y) / 64 * scale
	}

	var cur [2]float64
	for _, seg := range glyphOutline.Segments {
		switch seg.Op {
		case font.SegmentOpMoveTo:
			x, y := toXY(seg.Args[0])
			cur = [2]float64{x, y}
		case font.SegmentOpLineTo:
			x, y := toXY(seg.Args[0])
			segs = append(segs, &outline.Line{X0: cur[0], Y0: cur[1], X1: x, Y1: y})
			cur = [2]float64{x, y}
		case font.SegmentOpQuadTo:
			cx, cy := toXY(seg.Args[0])
			x, y := toXY(seg.Args[1])
			segs = append(segs, &outline.Quad{X0: cur[0], Y0: cur[1], X1: cx, Y1: cy, X2: x, Y2: y})
			cur = [2]float64{x, y}
		case font.SegmentOpCubeTo:
			c1x, c1y := toXY(seg.Args[0])
			c2x, c2y := toXY(seg.Args[1])
			x, y := toXY(seg.Args[2])
			segs = append(segs, &outline.Cubic{X0: cur[0], Y0: cur[1], X1: c1x, Y1: c1y, X2: c2x, Y2: c2y, X3: x, Y3: y})
			cur = [2]float64{x, y}
		}
	}
	return segs, len(segs) > 0
}

// GlyphName returns a human-readable Unicode name for r, for use in
// coverage-gap diagnostics (e.g. reporting which characters a chosen
// font has no glyph for).
func GlyphName(r rune) string {
	return runenames.Name(r)
}

// FontInfo contains metadata about a font.
type FontInfo struct {
	Family         string
	PostScriptName string
	FullName       string
	Style          Style
	Weight         Weight
	Stretch        Stretch
}

// Style represents font style. Math faces are almost always upright; the
// field is descriptive metadata only, and font resolution does not match
// on it.
type Style uint8

const (
	StyleNormal Style = iota
	StyleItalic
	StyleOblique
)

func (s Style) String() string {
	switch s {
	case StyleNormal:
		return "normal"
	case StyleItalic:
		return "italic"
	case StyleOblique:
		return "oblique"
	default:
		return "unknown"
	}
}

// Weight represents font weight on a scale of 100-900.
type Weight int

const (
	WeightNormal Weight = 400
	WeightBold   Weight = 700
)

// Stretch represents font width/stretch.
type Stretch float32

const StretchNormal Stretch = 1.0
