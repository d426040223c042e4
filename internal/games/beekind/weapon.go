package beekind

import "github.com/vovakirdan/beekind/internal/core"

// gunCheck cools the honey gun, fires when the trigger is held and moves
// shots, applying damage to whatever they hit.
func (g *Game) gunCheck() {
	p := &g.player
	w := g.cfg.Weapon

	if p.GunHeat > 0 {
		p.GunHeat--
	}

	if p.Gun && p.GunHeat == 0 && g.held(core.ButtonFire) {
		v := w.ShotSpeed
		if p.Flip {
			v = -v
		}
		g.shots = append(g.shots, Shot{X: p.X + v, Y: p.Y + 3, Dir: v, Flip: p.Flip, TTL: w.ShotTTL})
		p.GunHeat = w.HeatTicks
	}

	for i := range g.shots {
		s := &g.shots[i]
		s.X += s.Dir

		box := core.NewRect(s.X, s.Y, TileSize, TileSize)
		for _, c := range g.chars {
			if s.Dir == 0 {
				break
			}
			if c.Del || !box.Intersects(c.Box()) {
				continue
			}
			if g.damage(c) {
				s.Dir = 0
				s.TTL = w.HitTTL
			}
		}

		s.TTL--
		if s.TTL <= 0 {
			s.Del = true
		}
	}

	kept := g.shots[:0]
	for _, s := range g.shots {
		if !s.Del {
			kept = append(kept, s)
		}
	}
	g.shots = kept
}

// damage applies a honey hit to c and reports whether c can be hit at all.
func (g *Game) damage(c *Char) bool {
	cx, cy := c.Box().Center()

	switch {
	case isToadstool(c.Sprite):
		c.HTime = 2 * FPS
		g.graze(c)
		count := 2
		if c.Health <= 0 || c.Del {
			count = 16
		}
		g.generateParticles(cx, cy, 8, count, colourOrange)

	case isZombee(c.Sprite), isGrub(c.Sprite):
		c.HTime = 2 * FPS
		c.Health--
		count := 4
		if c.Health <= 0 {
			c.Del = true
			count = 32
		}
		colour := colourBlue
		if isGrub(c.Sprite) {
			colour = colourOrange
		}
		g.generateParticles(cx, cy, 16, count, colour)

	default:
		return false
	}
	return true
}

// graze takes one health from a plant. A plant at zero health drops to its
// short form and starts regrowing, or is eaten when already short.
func (g *Game) graze(c *Char) {
	c.Health--
	if c.Health > 0 {
		return
	}

	if c.Sprite == SpriteToadstool || c.Sprite == SpriteFlower {
		c.Sprite++
		c.Health = g.cfg.AI.PlantHealth
		if gr, ok := c.Kind.(*Grazer); ok {
			gr.GrowTime = g.growTime()
		}
		return
	}
	c.Del = true
}
