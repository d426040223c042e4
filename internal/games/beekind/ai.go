package beekind

import "github.com/vovakirdan/beekind/internal/core"

// updateCharAI runs one tick of every entity's behaviour, then drops the
// entities marked for deletion. Entities appended during the pass, such as
// newly hatched bees, are processed in the same pass.
func (g *Game) updateCharAI() {
	for i := 0; i < len(g.chars); i++ {
		c := g.chars[i]
		if c.Del {
			continue
		}
		if c.HTime > 0 {
			c.HTime--
		}

		switch k := c.Kind.(type) {
		case *Grazer:
			g.updateGrazer(c, k)
		case *Forager:
			g.updateForager(c, k)
		case *Predator:
			g.updatePredator(c, k)
		case *Drifter:
			g.updateDrifter(c)
		}
	}
	g.purgeChars()
}

// retarget routes c to t unless it is already heading there. Either
// coordinate matching the stored target counts as heading there. With no
// route available c dwells and plans again afterwards.
func (g *Game) retarget(c *Char, nav *Nav, t *Char) {
	if float64(nav.DX) == t.X || float64(nav.DY) == t.Y {
		return
	}
	nav.Route = g.route(c.X, c.Y, t.X, t.Y)
	if len(nav.Route) == 0 {
		c.Dwell = g.cfg.AI.IdleDwell
		nav.clearTarget()
		return
	}
	nav.DX, nav.DY = int(t.X), int(t.Y)
}

// route finds a path between the cells under two pixel positions, or nil
// when either lies outside the level.
func (g *Game) route(fromX, fromY, toX, toY float64) []int {
	src := g.cellAt(fromX, fromY)
	dst := g.cellAt(toX, toY)
	if src < 0 || dst < 0 {
		return nil
	}
	return g.grid.FindPath(src, dst)
}

// advance moves c towards the first cell of its route at speed. It pops the
// cell and reports true once c is within half a tile of it on both axes.
func (g *Game) advance(c *Char, nav *Nav, speed float64) bool {
	cx, cy := g.grid.XY(nav.Route[0])
	nextX := float64(cx * TileSize)
	nextY := float64(cy * TileSize)
	dx := core.Abs(int(nextX - c.X))
	dy := core.Abs(int(nextY - c.Y))

	if dx <= TileSize/2 && dy <= TileSize/2 {
		nav.Route = nav.Route[1:]
		return true
	}

	if dx != 0 {
		c.HS = speed
		if nextX < c.X {
			c.HS = -speed
		}
		c.X += c.HS
		c.Flip = c.HS < 0
		if c.X < 0 {
			c.X = 0
		}
	}
	if dy != 0 {
		if nextY < c.Y {
			c.Y -= speed
		} else {
			c.Y += speed
		}
	}
	return false
}

// updateGrazer regrows a short plant once its timer runs out.
func (g *Game) updateGrazer(c *Char, k *Grazer) {
	if c.Sprite != SpriteToadstoolShort && c.Sprite != SpriteFlowerSingle {
		return
	}
	k.GrowTime--
	if k.GrowTime <= 0 {
		c.Health = g.cfg.AI.PlantHealth
		c.Sprite--
	}
}
