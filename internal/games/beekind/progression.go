package beekind

import (
	"math"
	"sort"

	"github.com/vovakirdan/beekind/internal/games/beekind/grid"
)

// Timeline offsets, in rendered frames.
const (
	levelInfoFrames = 3 * FPS
	hintFrames      = 3 * FPS
	cinematicFrames = 10 * FPS
)

// LevelCompleted reports whether the current level's goal is met: no grubs,
// no zombees and a colony of at least level+ColonyBase bees.
func (g *Game) LevelCompleted() bool {
	bees, needed := g.Colony()
	return g.countChars(isGrub) == 0 && g.countChars(isZombee) == 0 && bees >= needed
}

// completeLevel moves on to the next level, or to the end-game cinematic
// after the last one.
func (g *Game) completeLevel() {
	g.xoff, g.yoff = 0, 0
	g.log.Info("level cleared", "level", g.level, "ticks", g.ticks)
	if g.onCleared != nil {
		g.onCleared(g.level, g.ticks)
	}

	if g.level+1 >= g.levels.Count() {
		g.state = StateComplete
		g.tl.Reset()
		g.tl.Schedule(cinematicFrames, nil)
		g.tl.SetCallback(g.endGame)
		g.tl.Begin(0)
		return
	}
	g.newLevel(g.level + 1)
}

// newLevel shows the title card for level and queues its hints. Play starts
// once the card has been shown.
func (g *Game) newLevel(level int) {
	if level < 0 || level >= g.levels.Count() {
		return
	}

	g.tl.Reset()
	g.state = StateNewLevel
	g.level = level
	g.msg.clear()
	g.retune()

	g.tl.Schedule(levelInfoFrames, g.startPlaying)
	if lvl, ok := g.levels.Level(level); ok {
		for _, hint := range lvl.Hints {
			g.showMessage(hint, hintFrames)
		}
	}
	g.tl.Begin(1)
}

// startPlaying loads the current level and hands control to the player.
func (g *Game) startPlaying() {
	g.state = StatePlaying
	g.loadLevel()
}

// loadLevel builds the grid, entities, player start and background for the
// current level.
func (g *Game) loadLevel() {
	lvl, ok := g.levels.Level(g.level)
	if !ok {
		return
	}

	g.grid = grid.New(lvl.Width, lvl.Height, lvl.Tiles)
	g.chars = g.chars[:0]
	g.ticks = 0

	for y := 0; y < lvl.Height; y++ {
		for x := 0; x < lvl.Width; x++ {
			v := lvl.Char(x, y)
			if v == 0 {
				continue
			}
			sprite := int(v) - 1
			px, py := float64(x*TileSize), float64(y*TileSize)
			if isPlayerStart(sprite) {
				g.resetPlayer(px, py)
				continue
			}
			g.chars = append(g.chars, g.newChar(sprite, px, py))
		}
	}

	sort.SliceStable(g.chars, func(i, j int) bool {
		return !isActor(g.chars[i].Sprite) && isActor(g.chars[j].Sprite)
	})

	g.clouds = g.clouds[:0]
	for i := 0; i < 4; i++ {
		for z := 1; z <= 2; z++ {
			g.clouds = append(g.clouds, Cloud{
				T: int(math.Floor(g.rnd() * 3)),
				X: math.Floor(g.rnd() * float64(lvl.Width) * TileSize),
				Y: math.Floor(g.rnd() * float64(lvl.Height/2) * TileSize),
				Z: float64(z * 10),
			})
		}
	}

	g.scrollToPlayer(false)
	g.log.Info("level loaded", "level", g.level, "title", lvl.Title, "size", [2]int{lvl.Width, lvl.Height}, "chars", len(g.chars))
}

// resetToIntro schedules the title cinematic.
func (g *Game) resetToIntro() {
	g.tl.Reset()
	g.tl.Schedule(cinematicFrames, nil)
	g.tl.SetCallback(g.intro)
	g.tl.Begin(1)
}
