// Package raster turns a positioned draw-command list into pixels: an
// RGBA image buffer, alpha-blended pixel compositing, a horizontal-rule
// fill, and an antialiased glyph rasterizer built by feeding the outline
// package's path segments into golang.org/x/image/vector.
package raster

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/math/f32"
	"golang.org/x/image/vector"

	"github.com/juntao/mathshot/draw"
	"github.com/juntao/mathshot/font"
	"github.com/juntao/mathshot/outline"
)

// Theme selects the foreground/background color pair a formula is
// rendered with. Theme affects only color; it has no effect on geometry.
type Theme int

const (
	ThemeDark Theme = iota
	ThemeLight
)

// BG returns the background color for the theme.
func (t Theme) BG() color.RGBA {
	if t == ThemeLight {
		return color.RGBA{255, 255, 255, 255}
	}
	return color.RGBA{43, 48, 59, 255}
}

// FG returns the foreground (glyph/rule) color for the theme.
func (t Theme) FG() color.RGBA {
	if t == ThemeLight {
		return color.RGBA{51, 51, 51, 255}
	}
	return color.RGBA{192, 197, 206, 255}
}

// Buf is a row-major RGBA pixel buffer. It implements image.Image so it
// can be passed directly to image/png.Encode.
type Buf struct {
	Width, Height int
	Pix           []uint8 // 4 bytes per pixel, row-major, straight alpha in, 255 alpha out
}

// NewBuf allocates a buffer filled with bg.
func NewBuf(width, height int, bg color.RGBA) *Buf {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	b := &Buf{Width: width, Height: height, Pix: make([]uint8, width*height*4)}
	for i := 0; i < len(b.Pix); i += 4 {
		b.Pix[i+0] = bg.R
		b.Pix[i+1] = bg.G
		b.Pix[i+2] = bg.B
		b.Pix[i+3] = 255
	}
	return b
}

// ColorModel implements image.Image.
func (b *Buf) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (b *Buf) Bounds() image.Rectangle { return image.Rect(0, 0, b.Width, b.Height) }

// At implements image.Image.
func (b *Buf) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return color.RGBA{}
	}
	i := (y*b.Width + x) * 4
	return color.RGBA{b.Pix[i], b.Pix[i+1], b.Pix[i+2], b.Pix[i+3]}
}

// PutPixel alpha-blends color onto the pixel at (x, y) using a straight
// alpha coverage value in [0, 255]. The stored alpha channel is always
// forced to 255: the output is a flat, opaque image.
func (b *Buf) PutPixel(x, y int, c color.RGBA, alpha uint8) {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return
	}
	i := (y*b.Width + x) * 4
	a := float64(alpha) / 255
	inv := 1 - a
	b.Pix[i+0] = uint8(float64(c.R)*a + float64(b.Pix[i+0])*inv)
	b.Pix[i+1] = uint8(float64(c.G)*a + float64(b.Pix[i+1])*inv)
	b.Pix[i+2] = uint8(float64(c.B)*a + float64(b.Pix[i+2])*inv)
	b.Pix[i+3] = 255
}

// Render rasterizes cmds onto img in fg, using f to resolve glyph
// outlines and advances.
func Render(cmds []draw.Cmd, f *font.Font, fg color.RGBA, img *Buf) {
	for _, c := range cmds {
		switch cmd := c.(type) {
		case draw.Glyph:
			drawChar(f, img, cmd.Ch, cmd.X, cmd.Y, cmd.Size, fg)
		case draw.HLine:
			drawHLine(img, cmd.X, cmd.Y, cmd.Width, cmd.Thickness, fg)
		case draw.Text:
			drawTextStr(f, img, cmd.S, cmd.X, cmd.Y, cmd.Size, fg)
		}
	}
}

func drawChar(f *font.Font, img *Buf, ch rune, x, y, size float64, fg color.RGBA) {
	gid, ok := f.GlyphIndex(ch)
	if (!ok || gid == 0) && ch != ' ' {
		drawPlaceholder(img, x, y, size, fg)
		return
	}
	segs, ok := f.Outline(gid, size)
	if !ok {
		return
	}
	fillOutline(segs, x, y, fg, img)
}

func drawTextStr(f *font.Font, img *Buf, text string, x, y, size float64, fg color.RGBA) {
	cx := x
	for _, ch := range text {
		drawChar(f, img, ch, cx, y, size, fg)
		gid, _ := f.GlyphIndex(ch)
		cx += f.HorizontalAdvance(gid, size)
	}
}

func drawHLine(img *Buf, x, y, width, thickness float64, fg color.RGBA) {
	ys := int(math.Round(y - thickness/2))
	ye := int(math.Ceil(y + thickness/2))
	xs := int(math.Round(x))
	xe := int(math.Round(x + width))
	for py := ys; py <= ye; py++ {
		for px := xs; px < xe; px++ {
			img.PutPixel(px, py, fg, 255)
		}
	}
}

// drawPlaceholder renders a hollow rectangle for a glyph the font has no
// mapping for, so a missing symbol is still visible in the output.
func drawPlaceholder(img *Buf, x, y, size float64, fg color.RGBA) {
	w := int(size * 0.5)
	h := int(size * 0.6)
	x0 := int(x)
	y0 := int(y - size*0.5)
	for py := y0; py < y0+h; py++ {
		for px := x0; px < x0+w; px++ {
			if py == y0 || py == y0+h-1 || px == x0 || px == x0+w-1 {
				img.PutPixel(px, py, fg, 128)
			}
		}
	}
}

// fillOutline rasterizes a glyph outline (already scaled to pixel units,
// relative to its own origin) positioned at (originX, originY). The path
// segments are fed into a vector.Rasterizer, which accumulates an
// antialiased coverage mask; the mask is then composited onto img in fg.
func fillOutline(segs []outline.Segment, originX, originY float64, fg color.RGBA, img *Buf) {
	minX, minY, maxX, maxY := bboxOf(segs)
	if minX > maxX || minY > maxY {
		return
	}
	px0 := int(math.Floor(minX))
	py0 := int(math.Floor(minY))
	px1 := int(math.Ceil(maxX)) + 1
	py1 := int(math.Ceil(maxY)) + 1
	w := px1 - px0
	h := py1 - py0
	if w <= 0 || h <= 0 {
		return
	}

	r := vector.NewRasterizer(w, h)
	buildPath(r, segs, px0, py0)

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			a := mask.AlphaAt(col, row).A
			if a == 0 {
				continue
			}
			img.PutPixel(int(originX)+px0+col, int(originY)+py0+row, fg, a)
		}
	}
}

// buildPath feeds segs into r as a sequence of MoveTo/LineTo/QuadTo/CubeTo
// calls, offset so the segment coordinate (px0, py0) lands at the
// rasterizer's origin. A MoveTo is issued whenever a segment's start point
// doesn't continue from the previous segment's end, which is how contour
// (subpath) boundaries are detected since the flat segment list carries no
// explicit break markers.
func buildPath(r *vector.Rasterizer, segs []outline.Segment, px0, py0 int) {
	toVec := func(x, y float64) f32.Vec2 {
		return f32.Vec2{float32(x - float64(px0)), float32(y - float64(py0))}
	}

	var pen f32.Vec2
	havePen := false
	for _, seg := range segs {
		x0, y0, x1, y1 := segEndpoints(seg)
		start := toVec(x0, y0)
		if !havePen || start != pen {
			r.MoveTo(start)
		}
		switch s := seg.(type) {
		case *outline.Line:
			r.LineTo(toVec(s.X1, s.Y1))
		case *outline.Quad:
			r.QuadTo(toVec(s.X1, s.Y1), toVec(s.X2, s.Y2))
		case *outline.Cubic:
			r.CubeTo(toVec(s.X1, s.Y1), toVec(s.X2, s.Y2), toVec(s.X3, s.Y3))
		}
		pen = toVec(x1, y1)
		havePen = true
	}
}

// segEndpoints returns a segment's start and end points, used to detect
// contour breaks and to evaluate exact bounding boxes.
func segEndpoints(seg outline.Segment) (x0, y0, x1, y1 float64) {
	switch s := seg.(type) {
	case *outline.Line:
		return s.X0, s.Y0, s.X1, s.Y1
	case *outline.Quad:
		return s.X0, s.Y0, s.X2, s.Y2
	case *outline.Cubic:
		return s.X0, s.Y0, s.X3, s.Y3
	}
	return 0, 0, 0, 0
}

// bboxOf computes the exact bounding box of segs: line segments contribute
// their endpoints directly, and quadratic/cubic segments additionally
// contribute the curve point at each axis's derivative root (the only
// points where a curve can extend past its endpoints).
func bboxOf(segs []outline.Segment) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	any := false
	expand := func(x, y float64) {
		any = true
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}

	for _, seg := range segs {
		switch s := seg.(type) {
		case *outline.Line:
			expand(s.X0, s.Y0)
			expand(s.X1, s.Y1)
		case *outline.Quad:
			expand(s.X0, s.Y0)
			expand(s.X2, s.Y2)
			for _, t := range quadAxisExtremaT(s.X0, s.X1, s.X2) {
				expand(quadAxisPoint(s.X0, s.X1, s.X2, t), quadAxisPoint(s.Y0, s.Y1, s.Y2, t))
			}
			for _, t := range quadAxisExtremaT(s.Y0, s.Y1, s.Y2) {
				expand(quadAxisPoint(s.X0, s.X1, s.X2, t), quadAxisPoint(s.Y0, s.Y1, s.Y2, t))
			}
		case *outline.Cubic:
			expand(s.X0, s.Y0)
			expand(s.X3, s.Y3)
			for _, t := range cubicAxisExtremaT(s.X0, s.X1, s.X2, s.X3) {
				expand(cubicAxisPoint(s.X0, s.X1, s.X2, s.X3, t), cubicAxisPoint(s.Y0, s.Y1, s.Y2, s.Y3, t))
			}
			for _, t := range cubicAxisExtremaT(s.Y0, s.Y1, s.Y2, s.Y3) {
				expand(cubicAxisPoint(s.X0, s.X1, s.X2, s.X3, t), cubicAxisPoint(s.Y0, s.Y1, s.Y2, s.Y3, t))
			}
		}
	}
	if !any {
		return 0, 0, -1, -1
	}
	return minX, minY, maxX, maxY
}

func quadAxisPoint(p0, p1, p2, t float64) float64 {
	mt := 1 - t
	return mt*mt*p0 + 2*mt*t*p1 + t*t*p2
}

// quadAxisExtremaT returns the parameter t in (0, 1) where this axis's
// quadratic Bezier derivative is zero, if any — the single point (besides
// the endpoints) where the curve can reach an extremum on this axis.
func quadAxisExtremaT(p0, p1, p2 float64) []float64 {
	d := p0 - 2*p1 + p2
	if math.Abs(d) < 1e-12 {
		return nil
	}
	t := (p0 - p1) / d
	if t > 0 && t < 1 {
		return []float64{t}
	}
	return nil
}

func cubicAxisPoint(p0, p1, p2, p3, t float64) float64 {
	mt := 1 - t
	return mt*mt*mt*p0 + 3*mt*mt*t*p1 + 3*mt*t*t*p2 + t*t*t*p3
}

// cubicAxisExtremaT returns the parameter(s) t in (0, 1) where this axis's
// cubic Bezier derivative is zero: the derivative of a cubic is quadratic
// in t, so this is a direct quadratic solve rather than the recursive
// flattening IntersectLine uses.
func cubicAxisExtremaT(p0, p1, p2, p3 float64) []float64 {
	a := p1 - p0
	b := p2 - p1
	c := p3 - p2
	qa := a - 2*b + c
	qb := -2*a + 2*b
	qc := a

	var ts []float64
	if math.Abs(qa) < 1e-12 {
		if math.Abs(qb) > 1e-12 {
			t := -qc / qb
			if t > 0 && t < 1 {
				ts = append(ts, t)
			}
		}
		return ts
	}

	disc := qb*qb - 4*qa*qc
	if disc < 0 {
		return ts
	}
	sq := math.Sqrt(disc)
	for _, t := range []float64{(-qb + sq) / (2 * qa), (-qb - sq) / (2 * qa)} {
		if t > 0 && t < 1 {
			ts = append(ts, t)
		}
	}
	return ts
}
