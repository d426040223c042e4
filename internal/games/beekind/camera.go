package beekind

import (
	"math"

	"github.com/vovakirdan/beekind/internal/core"
)

const (
	screenW = core.ScreenWidth
	screenH = core.ScreenHeight
)

// scrollToPlayer moves the camera to centre the player, clamped to the
// level. With damping the camera eases over, faster when far behind.
func (g *Game) scrollToPlayer(dampened bool) {
	p := &g.player
	maxX := max(g.grid.Width()*TileSize-screenW, 0)
	maxY := max(g.grid.Height()*TileSize-screenH, 0)

	nx := core.ClampF(p.X-float64((screenW-TileSize)/2), 0, float64(maxX))
	ny := core.ClampF(p.Y-float64((screenH-TileSize)/2), 0, float64(maxY))

	if !dampened {
		g.xoff, g.yoff = int(nx), int(ny)
		return
	}
	g.xoff = ease(g.xoff, nx, screenW/5)
	g.yoff = ease(g.yoff, ny, screenH/5)
}

// ease steps off one pixel towards target, or four when more than far away.
func ease(off int, target float64, far int) int {
	if float64(off) == target {
		return off
	}
	step := 1
	if math.Abs(float64(off)-target) > float64(far) {
		step = 4
	}
	if target > float64(off) {
		return off + step
	}
	return off - step
}

// drawSprite draws sprite id at level position (x, y), skipping sprites
// entirely off screen.
func (g *Game) drawSprite(id int, x, y float64, flip bool) {
	if id == 0 {
		return
	}
	sx := x - float64(g.xoff)
	sy := y - float64(g.yoff)
	if sx < -TileSize || sx > screenW || sy < -TileSize || sy > screenH {
		return
	}
	mode := core.FlipNone
	if flip {
		mode = core.FlipHorizontal
	}
	g.surface.Image(int(math.Floor(x))-g.xoff, int(math.Floor(y))-g.yoff, id, mode)
}
