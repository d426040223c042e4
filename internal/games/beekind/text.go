package beekind

import (
	"math"

	"github.com/vovakirdan/beekind/internal/core"
)

// designGlyphW is the glyph width screen layouts are measured in. Wider
// fonts are drawn at a reduced scale so text keeps roughly the same extent.
const designGlyphW = 4

// textMetrics returns the pixel size of one character at scale 1.
func (g *Game) textMetrics() (int, int) {
	if ts, ok := g.surface.(core.TextSurface); ok {
		return ts.TextMetrics()
	}
	return g.font.Width(), g.font.Height()
}

// glyphScale converts a layout text size into a pixel scale for the font in
// use. Native text surfaces always draw at scale 1.
func (g *Game) glyphScale(size int) int {
	if _, ok := g.surface.(core.TextSurface); ok {
		return 1
	}
	return max(1, size*designGlyphW/g.font.Width())
}

// textWidth returns the pixel width of text written at size.
func (g *Game) textWidth(text string, size int) int {
	fw, _ := g.textMetrics()
	return len(text) * fw * g.glyphScale(size)
}

// write draws text with its top-left at (x, y). Characters outside the
// printable ASCII range leave a gap.
func (g *Game) write(x, y float64, text string, size int, colour core.RGBA) {
	s := g.surface
	s.SetColour(colour)

	if ts, ok := s.(core.TextSurface); ok {
		b := []byte(text)
		for i, c := range b {
			if c < 32 || c > 126 {
				b[i] = ' '
			}
		}
		ts.Text(int(math.Floor(x)), int(math.Floor(y)), string(b))
		return
	}

	scale := g.glyphScale(size)
	fw := g.font.Width()
	for i := 0; i < len(text); i++ {
		rows, ok := g.font.Glyph(text[i])
		if !ok {
			continue
		}
		ox := x + float64(i*fw*scale)
		for py, row := range rows {
			for px := 0; px < fw && px < 8; px++ {
				if row&(1<<(7-px)) == 0 {
					continue
				}
				s.SolidRect(int(math.Floor(ox))+px*scale, int(math.Floor(y))+py*scale, scale, scale)
			}
		}
	}
}

// writeCentred draws text centred horizontally on the screen.
func (g *Game) writeCentred(y float64, text string, size int, colour core.RGBA) {
	x := (screenW - g.textWidth(text, size)) / 2
	g.write(float64(x), y, text, size, colour)
}
