package beekind

import "fmt"

// updateForager runs a bee: follow the current route, otherwise collect
// pollen at flowers and deliver it to hives, then pick the next target.
func (g *Game) updateForager(c *Char, f *Forager) {
	ai := g.cfg.AI

	if c.Dwell > 0 {
		c.Dwell--
		return
	}

	if len(f.Nav.Route) > 0 {
		if g.advance(c, &f.Nav, g.tune.beeSpeed) && len(f.Nav.Route) == 0 {
			if f.Nav.DX == -1 {
				c.Dwell = ai.IdleDwell
			}
			f.Nav.clearTarget()
		}
		return
	}

	box := c.Box()
	for _, o := range g.chars {
		if o.Del || o == c || !box.Intersects(o.Box()) {
			continue
		}
		switch {
		case isFlower(o.Sprite):
			c.Dwell = ai.ForageDwell
			f.Pollen++
			g.graze(o)
		case isHive(o.Sprite):
			if f.Pollen > 0 {
				g.deliver(c, f, o)
			}
		}
	}

	if c.Dwell != 0 {
		return
	}

	hive := g.findNearest(c.X, c.Y, isHive)
	flower := g.findNearest(c.X, c.Y, isFlower)
	var target *Char
	if hive != nil && f.Pollen > 0 {
		target = hive
	}
	if flower != nil && f.Pollen < ai.CarryThreshold {
		target = flower
	}

	if target != nil {
		g.retarget(c, &f.Nav, target)
		return
	}
	if len(f.Nav.Route) == 0 {
		p := &g.player
		f.Nav.Route = g.route(c.X, c.Y, p.X, p.Y)
		if len(f.Nav.Route) <= 1 {
			c.Dwell = ai.IdleDwell
		}
	}
}

// deliver moves a bee's pollen into a hive. A hive holding enough pollen
// hatches a new bee while the colony is below its cap.
func (g *Game) deliver(c *Char, f *Forager, hive *Char) {
	ai := g.cfg.AI
	depot, ok := hive.Kind.(*Depot)
	if !ok {
		return
	}

	c.Dwell = ai.ForageDwell
	depot.Pollen += f.Pollen
	f.Pollen = 0

	if depot.Pollen <= ai.HiveThreshold || g.countChars(isBee) >= g.cfg.Spawn.MaxBees {
		return
	}

	g.chars = append(g.chars, &Char{
		Sprite: SpriteBee,
		X:      hive.X,
		Y:      hive.Y,
		Dwell:  ai.HatchDwell,
		Kind:   &Forager{Nav: newNav()},
	})
	depot.Pollen -= ai.HiveThreshold

	cx, cy := c.Box().Center()
	g.generateParticles(cx, cy, 16, 16, colourRandom)

	bees, needed := g.Colony()
	g.log.Debug("bee hatched", "bees", bees, "needed", needed)
	if remaining := needed - bees; remaining > 0 {
		g.showMessage(fmt.Sprintf("[%d]%d more bees needed", SpriteBee, remaining), 3*FPS)
	} else if !g.LevelCompleted() {
		g.showMessage(fmt.Sprintf("[%d]Remove all threats", SpriteZombee), 3*FPS)
	}
}
