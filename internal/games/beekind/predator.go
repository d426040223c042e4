package beekind

// updatePredator runs a zombee: rob pollen from bees it touches, break
// intact hives, then hunt the nearest hive or bee.
func (g *Game) updatePredator(c *Char, z *Predator) {
	ai := g.cfg.AI

	if c.Dwell > 0 {
		c.Dwell--
		return
	}

	box := c.Box()
	for _, o := range g.chars {
		if c.Dwell != 0 {
			break
		}
		if o.Del || o == c || !box.Intersects(o.Box()) {
			continue
		}
		switch {
		case isBee(o.Sprite):
			if bee, ok := o.Kind.(*Forager); ok && bee.Pollen > 0 {
				bee.Pollen--
				z.Pollen++
				c.Dwell = ai.StealDwell
			}
		case o.Sprite == SpriteHive:
			o.Sprite = SpriteHiveBroken
			if depot, ok := o.Kind.(*Depot); ok {
				depot.Pollen /= 2
			}
			c.Dwell = ai.BreakDwell
		}
	}

	target := g.findNearest(c.X, c.Y, func(id int) bool {
		return id == SpriteHive || isBee(id)
	})
	if target != nil {
		g.retarget(c, &z.Nav, target)
	} else {
		c.Dwell = ai.IdleDwell
	}

	if len(z.Nav.Route) > 0 && g.advance(c, &z.Nav, g.tune.zombeeSpeed) && len(z.Nav.Route) == 0 {
		c.Dwell = ai.IdleDwell
		z.Nav.clearTarget()
	}
}
