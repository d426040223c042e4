package beekind

import "github.com/vovakirdan/beekind/internal/core"

// updateDrifter runs a grub: eat a toadstool under it, otherwise patrol,
// turning at walls and ledge ends. A well fed grub turns into a zombee.
func (g *Game) updateDrifter(c *Char) {
	ai := g.cfg.AI

	if c.Dwell > 0 {
		c.Dwell--
		c.HS = 0
		return
	}

	mouth := core.NewRect(c.X+TileSize/2, c.Y+TileSize/2, 1, 1)
	for _, o := range g.chars {
		if o.Del || !isToadstool(o.Sprite) || !mouth.Intersects(o.Box()) {
			continue
		}
		c.Health++
		c.Dwell = ai.EatDwell
		g.graze(o)
		return
	}

	if c.HS == 0 {
		c.HS = g.tune.grubSpeed
		if g.rnd() < 0.5 {
			c.HS = -c.HS
		}
		c.Flip = c.HS < 0

		if float64(c.Health) > float64(ai.GrubHealth)*ai.GrubGrowth && g.countChars(isZombee) < g.tune.maxZombees {
			g.transform(c)
			return
		}
	}

	nx := c.X + c.HS
	ahead := float64(TileSize / 2)
	if c.Flip {
		ahead = -ahead
	}
	wall := g.collide(core.NewRect(nx, c.Y, TileSize, TileSize))
	ledge := !g.collide(core.NewRect(nx+ahead, c.Y, TileSize, TileSize)) &&
		!g.collide(core.NewRect(nx+ahead, c.Y+TileSize/2, TileSize, TileSize))
	if wall || ledge {
		c.HS = -c.HS
		c.Flip = !c.Flip
		return
	}
	c.X = nx
}

// transform turns a grub into a zombee in place.
func (g *Game) transform(c *Char) {
	c.Sprite = SpriteZombee
	c.Health = g.cfg.AI.ZombeeHealth
	c.Dwell = g.cfg.AI.HatchDwell
	c.Kind = &Predator{Nav: newNav()}

	cx, cy := c.Box().Center()
	g.generateParticles(cx, cy, 16, 16, colourRandom)
	g.log.Debug("grub transformed", "x", c.X, "y", c.Y, "zombees", g.countChars(isZombee))
}
