package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/beekind/internal/core"
)

// Surface draws the simulation onto an ebiten image.
type Surface struct {
	dst    *ebiten.Image
	atlas  *Atlas
	colour core.RGBA
}

// NewSurface creates a surface drawing onto dst with sprites from atlas.
func NewSurface(dst *ebiten.Image, atlas *Atlas) *Surface {
	return &Surface{dst: dst, atlas: atlas, colour: core.ColorBlack}
}

// SetColour sets the colour used by Clear and SolidRect.
func (s *Surface) SetColour(c core.RGBA) {
	s.colour = c
}

// Clear fills the image with the current colour.
func (s *Surface) Clear() {
	s.dst.Fill(toColor(s.colour.Over(core.ColorBlack)))
}

// SolidRect fills a rectangle with the current colour, blended by its alpha.
func (s *Surface) SolidRect(x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	vector.FillRect(s.dst, float32(x), float32(y), float32(w), float32(h), toColor(s.colour), false)
}

// Image draws a tileset sprite with its top-left at (x, y).
func (s *Surface) Image(x, y, id int, flip core.FlipMode) {
	tile := s.atlas.Tile(id)
	if tile == nil {
		return
	}

	op := &ebiten.DrawImageOptions{}
	if flip == core.FlipHorizontal {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(tileSize, 0)
	}
	op.GeoM.Translate(float64(x), float64(y))
	s.dst.DrawImage(tile, op)
}
