package beekind

import (
	"math"

	"github.com/vovakirdan/beekind/internal/core"
)

// Player hitbox inside the 16x16 sprite cell.
const (
	hitX = TileSize / 3
	hitY = (TileSize / 5) * 2
	hitW = TileSize / 3
	hitH = (TileSize / 5) * 3
)

// collide reports whether box r is blocked by the level: past the left or
// right edge, or overlapping a solid tile.
func (g *Game) collide(r core.Rect) bool {
	if r.X <= -(TileSize / 5) {
		return true
	}
	if r.X+TileSize/3 >= float64(g.grid.Width()*TileSize) {
		return true
	}

	x0 := int(math.Floor(r.X/TileSize)) - 1
	x1 := int(math.Floor(r.Right()/TileSize)) + 1
	y0 := int(math.Floor(r.Y/TileSize)) - 1
	y1 := int(math.Floor(r.Bottom()/TileSize)) + 1
	for ty := max(y0, 0); ty <= min(y1, g.grid.Height()-1); ty++ {
		for tx := max(x0, 0); tx <= min(x1, g.grid.Width()-1); tx++ {
			if !g.grid.Solid(tx, ty) {
				continue
			}
			tile := core.NewRect(float64(tx*TileSize), float64(ty*TileSize), TileSize, TileSize)
			if r.Intersects(tile) {
				return true
			}
		}
	}
	return false
}

// playerBox returns the player hitbox with the sprite at (x, y).
func playerBox(x, y float64) core.Rect {
	return core.NewRect(x+hitX, y+hitY, hitW, hitH)
}

// playerCollide reports whether the player would be blocked at (x, y).
func (g *Game) playerCollide(x, y float64) bool {
	return g.collide(playerBox(x, y))
}

// cellAt returns the tile cell id under pixel (x, y), or -1 outside the grid.
func (g *Game) cellAt(x, y float64) int {
	cx := int(math.Floor(x / TileSize))
	cy := int(math.Floor(y / TileSize))
	if !g.grid.InBounds(cx, cy) {
		return -1
	}
	return g.grid.ID(cx, cy)
}
