package beekind

import (
	"math"

	"github.com/vovakirdan/beekind/internal/core"
)

// generateParticles emits count particles around (x, y), each up to travel
// pixels out. A zero colour channel is randomised per particle.
func (g *Game) generateParticles(x, y, travel float64, count int, colour core.RGBA) {
	for i := 0; i < count; i++ {
		p := Particle{
			X:      x,
			Y:      y,
			Angle:  math.Floor(g.rnd() * 360),
			Travel: math.Floor(g.rnd() * travel),
			Colour: core.RGB(g.channel(colour.R), g.channel(colour.G), g.channel(colour.B)),
			Alpha:  1,
			Size:   1,
		}
		if g.rnd() < 0.25 {
			p.Size = 2
		}
		g.particles = append(g.particles, p)
	}
}

func (g *Game) channel(v uint8) uint8 {
	if v != 0 {
		return v
	}
	return uint8(math.Floor(g.rnd() * 256))
}

// particleCheck drifts particles outward and down while fading them.
func (g *Game) particleCheck() {
	gravity := g.cfg.Physics.Gravity
	kept := g.particles[:0]
	for _, p := range g.particles {
		p.Travel += 0.5
		p.Y += gravity * 2
		p.Alpha -= 0.007
		if p.Alpha > 0 {
			kept = append(kept, p)
		}
	}
	g.particles = kept
}

// drawParticles renders particles relative to the camera.
func (g *Game) drawParticles() {
	s := g.surface
	for _, p := range g.particles {
		x := p.X + p.Travel*math.Cos(p.Angle)
		y := p.Y + p.Travel*math.Sin(p.Angle)
		s.SetColour(p.Colour.WithAlpha(p.Alpha))
		s.SolidRect(int(math.Floor(x))-g.xoff, int(math.Floor(y))-g.yoff, p.Size, p.Size)
	}
}
