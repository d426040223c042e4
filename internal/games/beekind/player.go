package beekind

import (
	"math"

	"github.com/vovakirdan/beekind/internal/core"
)

// Player is the rabbit the user controls.
type Player struct {
	X, Y     float64 // sprite position
	StartX   float64 // respawn point
	StartY   float64
	HS, VS   float64 // velocity
	Jump     bool    // rising from a jump
	Fall     bool    // falling, landing raises dust
	Duck     bool
	HTime    int  // hurt ticks left, movement is slowed
	InvTime  int  // invulnerable ticks left
	Dir      int  // -1, 0 or 1, the direction friction acts against
	Coyote   int  // ticks left to jump after leaving the ground
	Sprite   int  // current animation frame
	Flip     bool // facing left
	Gun      bool // carrying the honey gun
	GunHeat  int  // ticks until the next shot
	TopDown  bool // gravity off, up and down move freely
}

func (g *Game) held(b core.Button) bool {
	return g.input.Held(b)
}

// resetPlayer places the player at (x, y) as a fresh respawn point.
func (g *Game) resetPlayer(x, y float64) {
	p := &g.player
	p.X, p.Y = x, y
	p.StartX, p.StartY = x, y
	p.HS, p.VS = 0, 0
	p.Jump, p.Fall = false, false
	p.Dir = 0
	p.Flip = false
	p.Gun = false
	p.GunHeat = 0
	p.TopDown = false
	g.shots = nil
	g.particles = nil
	g.spawnTime = g.tune.spawnInterval
}

// updateMovements runs one tick of player physics, shots, particles and
// input handling.
func (g *Game) updateMovements() {
	p := &g.player
	phys := g.cfg.Physics

	g.offMapCheck()
	if !p.TopDown {
		g.groundCheck()
		g.jumpCheck()
	}
	g.collisionCheck()
	g.standCheck()
	g.gunCheck()
	g.particleCheck()

	left, right := g.held(core.ButtonLeft), g.held(core.ButtonRight)
	speed := phys.Speed
	if p.HTime != 0 {
		speed = phys.HurtSpeed
	}
	switch {
	case left && !right:
		p.HS = -speed
		p.Dir = -1
		p.Flip = true
	case right && !left:
		p.HS = speed
		p.Dir = 1
		p.Flip = false
	}

	if p.TopDown {
		up, down := g.held(core.ButtonUp), g.held(core.ButtonDown)
		switch {
		case up && !down:
			p.VS = -speed
		case down && !up:
			p.VS = speed
		}
	}

	if p.HTime > 0 {
		p.HTime--
	}
	if p.InvTime > 0 {
		p.InvTime--
	}

	g.updateAnimation()
}

// offMapCheck returns a player who fell out of the level to the start.
func (g *Game) offMapCheck() {
	p := &g.player
	w := float64(g.grid.Width() * TileSize)
	h := float64(g.grid.Height() * TileSize)
	if p.X < -TileSize || p.X+1 > w || p.Y > h {
		p.X, p.Y = p.StartX, p.StartY
		p.HS, p.VS = 0, 0
		g.scrollToPlayer(false)
	}
}

// groundCheck lands, jumps and applies gravity.
func (g *Game) groundCheck() {
	p := &g.player
	phys := g.cfg.Physics

	if p.Coyote > 0 {
		p.Coyote--
	}

	if g.playerCollide(p.X, p.Y+1) {
		if p.Fall {
			g.generateParticles(p.X+TileSize/2, p.Y+TileSize, 4, 4, colourDust)
		}
		p.VS = 0
		p.Jump = false
		p.Fall = false
		p.Coyote = phys.CoyoteTicks

		if g.held(core.ButtonUp) && !p.Duck {
			p.Jump = true
			p.VS = -phys.JumpSpeed
		}
		return
	}

	if g.held(core.ButtonUp) && !p.Duck && !p.Jump && p.Coyote > 0 {
		p.Jump = true
		p.VS = -phys.JumpSpeed
	}
	if p.VS < phys.TerminalVelocity {
		p.VS += phys.Gravity
	}
	if p.VS > 0 {
		p.Fall = true
	}
}

// jumpCheck ends the rising phase of a jump at its apex.
func (g *Game) jumpCheck() {
	p := &g.player
	if p.Jump && p.VS >= 0 {
		p.Jump = false
		p.Fall = true
	}
}

// collisionCheck moves the player by its velocity. A blocked axis is
// approached one pixel at a time, at most a tile, and its velocity zeroed.
func (g *Game) collisionCheck() {
	p := &g.player

	if p.HS != 0 {
		if g.playerCollide(p.X+p.HS, p.Y) {
			step := math.Copysign(1, p.HS)
			for i := 0; i < TileSize && !g.playerCollide(p.X+step, p.Y); i++ {
				p.X += step
			}
			p.HS = 0
		}
		p.X += math.Floor(p.HS)
	}

	if p.VS != 0 {
		if g.playerCollide(p.X, p.Y+p.VS) {
			step := math.Copysign(1, p.VS)
			for i := 0; i < TileSize && !g.playerCollide(p.X, p.Y+step); i++ {
				p.Y += step
			}
			p.VS = 0
		}
		p.Y += math.Floor(p.VS)
	}
}

// standCheck applies ducking and friction.
func (g *Game) standCheck() {
	p := &g.player
	friction := g.cfg.Physics.Friction

	p.Duck = g.held(core.ButtonDown) || p.HTime > 0

	if g.held(core.ButtonLeft) == g.held(core.ButtonRight) {
		switch p.Dir {
		case -1:
			if p.HS < 0 {
				p.HS += friction
			} else {
				p.HS = 0
				p.Dir = 0
			}
		case 1:
			if p.HS > 0 {
				p.HS -= friction
			} else {
				p.HS = 0
				p.Dir = 0
			}
		}
	}

	if p.TopDown && g.held(core.ButtonUp) == g.held(core.ButtonDown) {
		switch {
		case p.VS < 0:
			p.VS = math.Min(p.VS+friction, 0)
		case p.VS > 0:
			p.VS = math.Max(p.VS-friction, 0)
		}
	}
}

// updateAnimation steps sprite frames every eight ticks.
func (g *Game) updateAnimation() {
	if g.anim > 0 {
		g.anim--
		return
	}

	p := &g.player
	moving := p.HS != 0 || (p.TopDown && p.VS != 0)
	switch {
	case moving && p.Gun:
		p.Sprite++
		if p.Sprite < SpritePlayerGun || p.Sprite > SpritePlayerGun+2 {
			p.Sprite = SpritePlayerGun
		}
	case moving:
		p.Sprite = nextFrame(p.Sprite, SpritePlayer)
	case p.Gun:
		p.Sprite = SpritePlayerGun
	default:
		p.Sprite = SpritePlayer
	}

	for _, c := range g.chars {
		switch {
		case isBee(c.Sprite):
			c.Sprite = nextFrame(c.Sprite, SpriteBee)
		case isZombee(c.Sprite):
			c.Sprite = nextFrame(c.Sprite, SpriteZombee)
		case isGrub(c.Sprite):
			c.Sprite = nextFrame(c.Sprite, SpriteGrub)
		}
	}

	g.anim = 8
}

// nextFrame toggles a two-frame animation starting at base.
func nextFrame(id, base int) int {
	if id == base {
		return base + 1
	}
	return base
}

// updatePlayerChar resolves player contact with entities: toggles, pickups
// and enemies.
func (g *Game) updatePlayerChar() {
	p := &g.player
	hit := playerBox(p.X, p.Y)

	// Indexed so a gun dropped here is checked in the same pass.
	for i := 0; i < len(g.chars); i++ {
		c := g.chars[i]
		if c.Del || !hit.Intersects(c.Box()) {
			continue
		}

		switch {
		case c.Sprite == SpriteToggle:
			col := int(math.Floor(c.X / TileSize))
			row := int(math.Floor((c.Y - TileSize) / TileSize))
			p.TopDown = g.grid.At(col, row) <= 1 && p.VS < 0

		case c.Sprite == SpriteShield:
			p.HTime = 0
			p.InvTime += 10 * FPS
			c.Del = true

		case isZombee(c.Sprite):
			if p.InvTime == 0 && p.HTime == 0 {
				p.HTime = 5 * FPS
			}
			if p.Gun {
				g.chars = append(g.chars, &Char{Sprite: SpriteGun, X: p.X, Y: p.Y, Kind: &Inert{}})
				p.Gun = false
			}

		case isGrub(c.Sprite):
			if p.InvTime == 0 && p.HTime == 0 {
				p.HTime = 2 * FPS
			}

		case c.Sprite == SpriteGun:
			if p.InvTime > 0 || p.HTime == 0 {
				p.Gun = true
				p.Sprite = SpritePlayerGun
				c.Del = true
			}
		}
	}
}
