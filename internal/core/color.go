package core

import "fmt"

// RGBA is a colour with straight (non-premultiplied) alpha.
type RGBA struct {
	R, G, B, A uint8
}

// RGB returns an opaque colour.
func RGB(r, g, b uint8) RGBA {
	return RGBA{R: r, G: g, B: b, A: 255}
}

// Predefined colours.
var (
	ColorBlack = RGB(0, 0, 0)
	ColorWhite = RGB(255, 255, 255)
)

// WithAlpha returns the colour with alpha set from a 0..1 fraction.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = uint8(ClampF(a, 0, 1) * 255)
	return c
}

// Over composites c over dst and returns an opaque result.
func (c RGBA) Over(dst RGBA) RGBA {
	if c.A == 255 {
		return c
	}
	a := float64(c.A) / 255
	mix := func(s, d uint8) uint8 {
		return uint8(float64(s)*a + float64(d)*(1-a))
	}
	return RGB(mix(c.R, dst.R), mix(c.G, dst.G), mix(c.B, dst.B))
}

// Hex returns the colour as #rrggbb, ignoring alpha.
func (c RGBA) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
