package beekind

import (
	"math"
)

// checkSpawn grows a new plant on a free ledge once the spawn timer runs
// out. Candidate cells sit directly above a ledge tile, are empty, and keep
// three or four tiles from every entity.
func (g *Game) checkSpawn() {
	g.spawnTime--
	if g.spawnTime > 0 {
		return
	}
	g.spawnTime = g.tune.spawnInterval

	type point struct{ x, y int }
	var points []point

	w, h := g.grid.Width(), g.grid.Height()
	for y := 1; y < h; y++ {
		for x := 0; x < w; x++ {
			if !isLedge(int(g.grid.At(x, y))-1) || g.grid.At(x, y-1) > 1 {
				continue
			}

			px, py := float64(x*TileSize), float64(y*TileSize)
			crowded := false
			for _, c := range g.chars {
				reach := 3.0
				if g.rnd() >= 0.5 {
					reach = 4
				}
				if math.Hypot(c.X-px, c.Y-py) < reach*TileSize {
					crowded = true
				}
			}
			if !crowded {
				points = append(points, point{x, y - 1})
			}
		}
	}
	if len(points) == 0 {
		return
	}

	pt := points[int(math.Floor(g.rnd()*float64(len(points))))]
	sprite := SpriteToadstoolShort
	if g.rnd() < g.cfg.Spawn.FlowerChance {
		sprite = SpriteFlowerSingle
	}
	plant := &Char{
		Sprite: sprite,
		X:      float64(pt.x * TileSize),
		Y:      float64(pt.y * TileSize),
		Dwell:  g.cfg.AI.HatchDwell,
		Health: g.cfg.AI.PlantHealth,
		Kind:   &Grazer{GrowTime: g.cfg.AI.GrowTicks},
	}
	g.chars = append([]*Char{plant}, g.chars...)
	g.log.Debug("plant spawned", "sprite", SpriteName(sprite), "x", pt.x, "y", pt.y)
}
