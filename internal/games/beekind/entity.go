package beekind

import (
	"math"

	"github.com/vovakirdan/beekind/internal/core"
)

// Char is a level entity: scenery, pickups and the four NPC kinds. The fields
// every entity shares live here; behaviour-specific state lives in Kind.
type Char struct {
	Sprite int     // current sprite id, also selects the animation frame
	X, Y   float64 // top-left position in pixels
	Flip   bool    // facing left
	HS, VS float64 // velocity, used by grubs and the end-game swarm
	Dwell  int     // ticks left idling in place
	HTime  int     // ticks left showing the health bar
	Health int
	Del    bool // marked for removal at the end of the AI pass
	Kind   Kind
}

// Kind is the behavioural variant of a Char. The set is closed: Grazer,
// Forager, Predator, Drifter, Depot and Inert.
type Kind interface {
	kind()
}

// Grazer is a plant that regrows after being grazed: toadstools and flowers.
type Grazer struct {
	GrowTime int // ticks until the short form grows back
}

// Forager is a bee carrying pollen between flowers and hives.
type Forager struct {
	Pollen int
	Nav    Nav
}

// Predator is a zombee stealing pollen and breaking hives.
type Predator struct {
	Pollen int
	Nav    Nav
}

// Drifter is a grub patrolling a ledge and eating toadstools.
type Drifter struct{}

// Depot is a hive accumulating pollen.
type Depot struct {
	Pollen int
}

// Inert covers pickups and scenery with no behaviour of their own.
type Inert struct{}

func (*Grazer) kind()   {}
func (*Forager) kind()  {}
func (*Predator) kind() {}
func (*Drifter) kind()  {}
func (*Depot) kind()    {}
func (*Inert) kind()    {}

// Nav is a pathing target and the route towards it. DX, DY hold the target
// position, or -1 when the entity has none.
type Nav struct {
	DX, DY int
	Route  []int // cell ids still to visit, nearest first
}

func newNav() Nav {
	return Nav{DX: -1, DY: -1}
}

// clearTarget forgets the target position.
func (n *Nav) clearTarget() {
	n.DX, n.DY = -1, -1
}

// Box returns the entity's 16x16 collision box.
func (c *Char) Box() core.Rect {
	return core.NewRect(c.X, c.Y, TileSize, TileSize)
}

// Pollen returns the pollen an entity carries or stores.
func (c *Char) Pollen() int {
	switch k := c.Kind.(type) {
	case *Forager:
		return k.Pollen
	case *Predator:
		return k.Pollen
	case *Depot:
		return k.Pollen
	}
	return 0
}

// Shot is a honey projectile.
type Shot struct {
	X, Y float64
	Dir  float64 // pixels per tick, 0 once the shot has hit something
	Flip bool
	TTL  int
	Del  bool
}

// Particle is a puff of colour drifting out from an origin.
type Particle struct {
	X, Y   float64 // origin
	Angle  float64 // radians
	Travel float64 // distance from the origin
	Colour core.RGBA
	Alpha  float64
	Size   int
}

// Cloud is a parallax background element.
type Cloud struct {
	T    int // 0 and 1 are small puffs, 2 is the wide cloud
	X, Y float64
	Z    float64 // scroll divisor
}

// newChar builds the entity a char layer cell seeds.
func (g *Game) newChar(sprite int, x, y float64) *Char {
	c := &Char{Sprite: sprite, X: x, Y: y, Kind: &Inert{}}
	ai := g.cfg.AI

	switch {
	case isToadstool(sprite) || isFlower(sprite):
		c.Health = ai.PlantHealth
		c.Kind = &Grazer{GrowTime: g.growTime()}
	case isZombee(sprite):
		c.Health = ai.ZombeeHealth
		c.Dwell = int(math.Floor(g.rnd() * FPS))
		c.Kind = &Predator{Nav: newNav()}
	case isBee(sprite):
		c.Dwell = int(math.Floor(g.rnd() * FPS))
		c.Kind = &Forager{Nav: newNav()}
	case isHive(sprite):
		c.Kind = &Depot{}
	case isGrub(sprite):
		c.Health = ai.GrubHealth
		c.HS = g.tune.grubSpeed
		if g.rnd() >= 0.5 {
			c.HS = -c.HS
		}
		c.Flip = c.HS < 0
		c.Kind = &Drifter{}
	}
	return c
}

// growTime returns a regrow timer with jitter so plants don't recover in
// lockstep.
func (g *Game) growTime() int {
	return g.cfg.AI.GrowTicks + int(math.Floor(g.rnd()*float64(g.cfg.AI.GrowJitter)))
}

// purgeChars drops entities marked for deletion.
func (g *Game) purgeChars() {
	kept := g.chars[:0]
	for _, c := range g.chars {
		if !c.Del {
			kept = append(kept, c)
		}
	}
	for i := len(kept); i < len(g.chars); i++ {
		g.chars[i] = nil
	}
	g.chars = kept
}

// countChars counts live entities whose sprite satisfies match.
func (g *Game) countChars(match func(int) bool) int {
	n := 0
	for _, c := range g.chars {
		if !c.Del && match(c.Sprite) {
			n++
		}
	}
	return n
}

// findNearest returns the closest live entity to (x, y) whose sprite
// satisfies match, or nil. Ties keep the earliest entity.
func (g *Game) findNearest(x, y float64, match func(int) bool) *Char {
	var found *Char
	closest := float64(g.grid.Width() * g.grid.Height() * TileSize)
	for _, c := range g.chars {
		if c.Del || !match(c.Sprite) {
			continue
		}
		d := math.Hypot(c.X-x, c.Y-y)
		if d < closest {
			closest = d
			found = c
		}
	}
	return found
}
