package beekind

import (
	"fmt"
	"math"

	"github.com/vovakirdan/beekind/internal/core"
)

// drawPlaying renders a frame of play: background, level, entities, the
// player, shots, particles and the hint box.
func (g *Game) drawPlaying() {
	g.scrollToPlayer(true)
	g.drawParallax()
	g.drawLevel()
	g.write(10, 10, fmt.Sprintf("Level %d", g.level+1), 1, core.ColorBlack)
	g.drawChars()

	p := &g.player
	if p.InvTime > 0 {
		g.generateParticles(p.X+TileSize/2, p.Y+TileSize, 4, 2, colourBlue)
	}
	if p.HTime == 0 || p.HTime%30 <= 15 {
		g.drawSprite(p.Sprite, p.X, p.Y, p.Flip)
	}

	g.drawShots()
	g.drawParticles()
	g.drawMessageBox()

	if g.held(core.ButtonDebug) {
		g.drawCounters()
	}
}

func (g *Game) drawParallax() {
	for _, c := range g.clouds {
		x := c.X - math.Floor(float64(g.xoff)/c.Z)
		y := c.Y - math.Floor(float64(g.yoff)/c.Z)
		switch c.T {
		case 0, 1:
			g.drawSprite(SpriteCloudSmall+c.T, x, y, false)
		case 2:
			g.drawSprite(SpriteCloud, x, y, false)
			g.drawSprite(SpriteCloudRight, x+TileSize, y, false)
		}
	}
}

// drawLevel draws the tiles within view.
func (g *Game) drawLevel() {
	x0, y0 := g.xoff/TileSize, g.yoff/TileSize
	x1 := core.Clamp(x0+screenW/TileSize+1, 0, g.grid.Width()-1)
	y1 := core.Clamp(y0+screenH/TileSize+1, 0, g.grid.Height()-1)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if tile := g.grid.At(x, y); tile != 0 {
				g.drawSprite(int(tile)-1, float64(x*TileSize), float64(y*TileSize), false)
			}
		}
	}
}

// drawChars draws entities with their health bars, and the debug overlay
// when enabled.
func (g *Game) drawChars() {
	debug := g.held(core.ButtonDebug)
	s := g.surface

	for _, c := range g.chars {
		g.drawSprite(c.Sprite, c.X, c.Y, c.Flip)

		if c.Health > 0 && c.HTime > 0 {
			if full := g.maxHealth(c.Sprite); full > 0 {
				s.SetColour(colourHealthBar)
				w := int(math.Floor(TileSize*float64(c.Health)/float64(full))) + 1
				s.SolidRect(int(c.X)-g.xoff, int(c.Y)-g.yoff, w, 2)
			}
		}

		if debug {
			g.drawCharStats(c)
		}
	}
}

// drawCharStats writes an entity's non-zero health, pollen and dwell next
// to it.
func (g *Game) drawCharStats(c *Char) {
	x := c.X - float64(g.xoff)
	y := c.Y - float64(g.yoff)
	if c.Health != 0 {
		g.write(x, y-8, fmt.Sprint(c.Health), 1, core.ColorBlack)
	}
	if pollen := c.Pollen(); pollen != 0 {
		g.write(x+12, y-8, fmt.Sprint(pollen), 1, core.RGB(255, 0, 255))
	}
	if c.Dwell != 0 {
		g.write(x+12, y+TileSize, fmt.Sprint(c.Dwell), 1, core.RGB(0, 255, 0))
	}
}

// maxHealth returns the full health of a damageable sprite, or 0.
func (g *Game) maxHealth(id int) int {
	switch {
	case isToadstool(id):
		return g.cfg.AI.PlantHealth
	case isZombee(id):
		return g.cfg.AI.ZombeeHealth
	case isGrub(id):
		return g.cfg.AI.GrubHealth
	}
	return 0
}

func (g *Game) drawShots() {
	flash := g.cfg.Weapon.ShotTTL - g.cfg.Weapon.FlashTicks
	for _, s := range g.shots {
		id := SpriteShot
		if s.TTL >= flash {
			id = SpriteFlash
		}
		g.drawSprite(id, s.X, s.Y, s.Flip)
	}
}

// drawCounters shows the population counts in the top-right corner.
func (g *Game) drawCounters() {
	fw, fh := g.textMetrics()
	x := float64(screenW - 12*fw)
	rows := []struct {
		label string
		match func(int) bool
	}{
		{"GRB", isGrub},
		{"ZOM", isZombee},
		{"BEE", isBee},
	}
	for i, r := range rows {
		g.write(x, float64(fh*(i+1)), fmt.Sprintf("%s : %d", r.label, g.countChars(r.match)), 1, colourDebug)
	}
}
