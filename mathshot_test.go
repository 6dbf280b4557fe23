package mathshot

import (
	"testing"

	gtfont "github.com/go-text/typesetting/font"

	"github.com/juntao/mathshot/mast"
	"github.com/juntao/mathshot/measure"
	"github.com/juntao/mathshot/raster"
)

// fakeFont never resolves a glyph, so every symbol is measured with the
// missing-glyph fallback dimensions, without a real font file.
type fakeFont struct{}

func (fakeFont) GlyphIndex(r rune) (gtfont.GID, bool)          { return 0, false }
func (fakeFont) HorizontalAdvance(gtfont.GID, float64) float64 { return 10 }
func (fakeFont) Ascent(pixelSize float64) float64              { return pixelSize * 0.75 }
func (fakeFont) Descent(pixelSize float64) float64             { return pixelSize * 0.25 }

var _ measure.FontMetrics = fakeFont{}

func TestRenderProducesNonEmptyPaddedImage(t *testing.T) {
	node := mast.Row{Children: []mast.Node{mast.Symbol{Ch: 'x'}, mast.Symbol{Ch: '+'}, mast.Symbol{Ch: 'y'}}}
	img := renderWithFake(node, raster.ThemeDark, 24, 2)
	if img.Width <= int(basePadding*2) || img.Height <= int(basePadding*2) {
		t.Fatalf("image %dx%d should exceed the padding alone", img.Width, img.Height)
	}
}

func TestRenderLightThemeBackgroundMatchesPalette(t *testing.T) {
	node := mast.Symbol{Ch: 'x'}
	img := renderWithFake(node, raster.ThemeLight, 24, 1)
	c := img.At(0, 0)
	r, g, b, _ := c.RGBA()
	if r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
		t.Fatalf("corner pixel = %v, want light background", c)
	}
}

func TestRenderEmptyRowStillProducesMinimumImage(t *testing.T) {
	img := renderWithFake(mast.Row{}, raster.ThemeDark, 24, 1)
	if img.Width < 1 || img.Height < 1 {
		t.Fatalf("image %dx%d, want at least 1x1", img.Width, img.Height)
	}
}

// renderWithFake runs the measure stage with a fake font and allocates the
// background-filled buffer at the size Render would (Render needs the real
// *font.Font type for layout and rasterization, so those stages are not
// run here).
func renderWithFake(node mast.Node, theme raster.Theme, fontSize, scale float64) *raster.Buf {
	pxSize := fontSize * scale
	padding := basePadding * scale
	dims := measure.Measure(fakeFont{}, node, pxSize)

	imgW := int(dims.Width + padding*2)
	imgH := int(dims.Height() + padding*2)
	if imgW < 1 {
		imgW = 1
	}
	if imgH < 1 {
		imgH = 1
	}
	return raster.NewBuf(imgW, imgH, theme.BG())
}
