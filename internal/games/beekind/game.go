// Package beekind implements the Bee Kind simulation: a rabbit protects a bee
// colony from grubs and the zombees they turn into, across a sequence of
// tile-based levels.
//
// The simulation is host-neutral. A host polls input through core.Input,
// calls Update twice per rendered frame and Draw once, handing Draw a
// core.Surface to paint on.
package beekind

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/beekind/internal/config"
	"github.com/vovakirdan/beekind/internal/core"
	"github.com/vovakirdan/beekind/internal/games/beekind/font"
	"github.com/vovakirdan/beekind/internal/games/beekind/grid"
	"github.com/vovakirdan/beekind/internal/games/beekind/levels"
	"github.com/vovakirdan/beekind/internal/games/beekind/timeline"
)

// Simulation constants.
const (
	FPS      = config.FPS
	TileSize = 16
)

// State is the top-level game state.
type State int

const (
	StateIntro    State = 0
	StatePlaying  State = 2
	StateNewLevel State = 3
	StateComplete State = 4
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIntro:
		return "intro"
	case StatePlaying:
		return "playing"
	case StateNewLevel:
		return "new level"
	case StateComplete:
		return "complete"
	}
	return "unknown"
}

// ErrNoInput is returned by Initialize when the game has no input source.
var ErrNoInput = errors.New("beekind: no input")

// Options configures a Game. Zero fields fall back to the embedded defaults.
type Options struct {
	Config config.BeeKindConfig
	Levels levels.Provider
	Font   font.Provider
	Seed   int64 // 0 seeds from the clock
	Logger *log.Logger

	// OnLevelCleared is called when a level's completion condition is met,
	// with the level index and the ticks spent playing it.
	OnLevelCleared func(level, ticks int)
}

// tuning holds the per-level values the difficulty manager scales.
type tuning struct {
	beeSpeed      float64
	zombeeSpeed   float64
	grubSpeed     float64
	maxZombees    int
	spawnInterval int
}

// Game is the Bee Kind simulation.
type Game struct {
	input      core.Input
	cfg        config.BeeKindConfig
	difficulty *config.DifficultyManager
	tune       tuning
	levels     levels.Provider
	font       font.Provider
	log        *log.Logger
	rng        *rand.Rand
	tl         *timeline.Timeline
	surface    core.Surface // target of the current Draw, used by timeline callbacks
	initErr    error        // deferred from New

	state     State
	level     int           // current level index
	grid      *grid.Grid    // tile layer of the current level
	player    Player        // the rabbit
	chars     []*Char       // level entities, scenery first
	shots     []Shot        // honey in flight
	particles []Particle    // active particle effects
	clouds    []Cloud       // parallax background
	xoff      int           // camera offset
	yoff      int           // camera offset
	spawnTime int           // ticks until the next plant spawn
	anim      int           // ticks until the next animation frame
	msg       messageBox    // hint box and its queue
	ticks     int           // simulation ticks spent in the current level
	onCleared func(int, int)
}

// New creates a game polling input. Call Initialize before the first Update.
func New(input core.Input, opts Options) *Game {
	g := &Game{
		input:     input,
		cfg:       opts.Config,
		levels:    opts.Levels,
		font:      opts.Font,
		log:       opts.Logger,
		tl:        timeline.New(),
		onCleared: opts.OnLevelCleared,
	}

	if g.cfg == (config.BeeKindConfig{}) {
		g.cfg = config.DefaultBeeKindConfig()
	}
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	if g.levels == nil {
		set, err := levels.Default()
		if err != nil {
			g.initErr = fmt.Errorf("loading embedded levels: %w", err)
		} else {
			g.levels = set
		}
	}
	if g.font == nil {
		g.font = font.Basic()
	}
	if g.log == nil {
		g.log = log.New(io.Discard)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))
	g.retune()
	return g
}

// Initialize resets all state and starts the intro.
func (g *Game) Initialize() error {
	if g.input == nil {
		return ErrNoInput
	}
	if g.initErr != nil {
		return g.initErr
	}
	if g.levels == nil || g.levels.Count() == 0 {
		return levels.ErrNoLevels
	}

	g.resetState()
	g.resetToIntro()
	g.log.Info("initialized", "levels", g.levels.Count())
	return nil
}

// resetState returns the simulation to its power-on state.
func (g *Game) resetState() {
	g.tl.Reset()
	g.state = StateIntro
	g.level = 0
	g.grid = grid.New(0, 0, nil)
	g.player = Player{}
	g.chars = nil
	g.shots = nil
	g.particles = nil
	g.clouds = nil
	g.xoff, g.yoff = 0, 0
	g.spawnTime = 0
	g.anim = 0
	g.msg = messageBox{}
	g.ticks = 0
	g.retune()
}

// Update advances the simulation by one tick. It only has an effect while a
// level is being played; other states are driven by the timeline in Draw.
func (g *Game) Update() {
	if g.state != StatePlaying {
		return
	}

	g.ticks++
	g.updateMovements()
	g.updateCharAI()
	g.updatePlayerChar()
	g.checkSpawn()

	if g.LevelCompleted() {
		g.completeLevel()
	}
}

// Draw renders the current frame onto s and advances the timeline.
func (g *Game) Draw(s core.Surface) {
	g.surface = s

	if g.state == StatePlaying {
		s.SetColour(colourSky)
	} else {
		s.SetColour(core.ColorBlack)
	}
	s.Clear()

	switch g.state {
	case StateNewLevel:
		g.levelInfo()
	case StatePlaying:
		g.drawPlaying()
	}

	g.tl.Tick()
}

// Shutdown releases the level state.
func (g *Game) Shutdown() {
	g.tl.Reset()
	g.chars = nil
	g.shots = nil
	g.particles = nil
	g.clouds = nil
	g.surface = nil
	g.log.Info("shutdown", "level", g.level, "state", g.state)
}

// State returns the current game state.
func (g *Game) State() State {
	return g.state
}

// Level returns the current level index.
func (g *Game) Level() int {
	return g.level
}

// LevelCount returns the number of levels.
func (g *Game) LevelCount() int {
	if g.levels == nil {
		return 0
	}
	return g.levels.Count()
}

// LevelTitle returns the title of level i, or "" when there is no such level.
func (g *Game) LevelTitle(i int) string {
	if g.levels == nil {
		return ""
	}
	if lvl, ok := g.levels.Level(i); ok {
		return lvl.Title
	}
	return ""
}

// Ticks returns the simulation ticks spent in the current level.
func (g *Game) Ticks() int {
	return g.ticks
}

// Colony returns the number of bees alive and the number the current level
// requires.
func (g *Game) Colony() (bees, needed int) {
	return g.countChars(isBee), g.level + g.cfg.Spawn.ColonyBase
}

// retune resolves the difficulty-scaled values for the current level.
func (g *Game) retune() {
	ai, spawn := g.cfg.AI, g.cfg.Spawn
	g.tune = tuning{
		beeSpeed:      ai.BeeSpeed,
		zombeeSpeed:   g.difficulty.Speed(ai.ZombeeSpeed, g.level),
		grubSpeed:     g.difficulty.Speed(ai.GrubSpeed, g.level),
		maxZombees:    g.difficulty.Cap(spawn.MaxZombees, g.level),
		spawnInterval: g.difficulty.Interval(spawn.IntervalTicks, g.level),
	}
}

// rnd returns a uniform value in [0, 1).
func (g *Game) rnd() float64 {
	return g.rng.Float64()
}
