// Package font supplies the fixed-cell bitmap font used by the Bee Kind text
// writer. Each glyph is a slice of rows; bit 7 of a row byte is the leftmost
// pixel.
package font

import (
	"image"
	"sync"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Printable ASCII range covered by a font.
const (
	First = 32
	Last  = 126
)

// Provider exposes glyph bitmaps by character code.
type Provider interface {
	Width() int
	Height() int
	Glyph(c byte) ([]uint8, bool)
}

// Bitmap is a rasterised fixed-cell font.
type Bitmap struct {
	width  int
	height int
	glyphs [Last - First + 1][]uint8
}

var (
	basicOnce sync.Once
	basic     *Bitmap
)

// Basic returns the 7x13 font from golang.org/x/image, rasterised once.
func Basic() *Bitmap {
	basicOnce.Do(func() {
		basic = Rasterise(basicfont.Face7x13)
	})
	return basic
}

// Rasterise renders the printable range of a monospaced face into row bitmaps.
// Cells wider than eight pixels are cropped.
func Rasterise(face xfont.Face) *Bitmap {
	m := face.Metrics()
	w := xfont.MeasureString(face, "M").Ceil()
	h := m.Height.Ceil()
	if w > 8 {
		w = 8
	}

	b := &Bitmap{width: w, height: h}
	for c := First; c <= Last; c++ {
		img := image.NewAlpha(image.Rect(0, 0, w, h))
		d := xfont.Drawer{
			Dst:  img,
			Src:  image.Opaque,
			Face: face,
			Dot:  fixed.P(0, m.Ascent.Ceil()),
		}
		d.DrawString(string(rune(c)))

		rows := make([]uint8, h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if img.AlphaAt(x, y).A >= 0x80 {
					rows[y] |= 1 << (7 - x)
				}
			}
		}
		b.glyphs[c-First] = rows
	}
	return b
}

// Width returns the glyph cell width in pixels.
func (b *Bitmap) Width() int { return b.width }

// Height returns the glyph cell height in pixels.
func (b *Bitmap) Height() int { return b.height }

// Glyph returns the rows for c, or false when c is outside the printable range.
func (b *Bitmap) Glyph(c byte) ([]uint8, bool) {
	if c < First || c > Last {
		return nil, false
	}
	return b.glyphs[c-First], true
}
