// Package window hosts the Bee Kind simulation in a desktop window with
// Ebitengine.
package window

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/beekind/internal/config"
	"github.com/vovakirdan/beekind/internal/core"
	"github.com/vovakirdan/beekind/internal/games/beekind"
	"github.com/vovakirdan/beekind/internal/games/beekind/levels"
	"github.com/vovakirdan/beekind/internal/storage"
)

// Options configures a window session.
type Options struct {
	Runtime core.RuntimeConfig
	Config  config.BeeKindConfig
	Levels  levels.Provider // nil uses the embedded levels
	Store   *storage.Store  // nil disables records
	Logger  *log.Logger
	Tileset string // PNG tileset path, empty for placeholder art
	Scale   int    // window pixels per logical pixel
}

// buttonKeys maps each logical button to the keys that hold it.
var buttonKeys = map[core.Button][]ebiten.Key{
	core.ButtonUp:    {ebiten.KeyW, ebiten.KeyZ, ebiten.KeyArrowUp},
	core.ButtonDown:  {ebiten.KeyS, ebiten.KeyArrowDown},
	core.ButtonLeft:  {ebiten.KeyA, ebiten.KeyQ, ebiten.KeyArrowLeft},
	core.ButtonRight: {ebiten.KeyD, ebiten.KeyArrowRight},
	core.ButtonFire:  {ebiten.KeyEnter, ebiten.KeySpace, ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
}

// Host implements ebiten.Game around a beekind.Game.
type Host struct {
	game    *beekind.Game
	input   *core.ButtonState
	frame   *ebiten.Image // last rendered frame at logical resolution
	surface *Surface
	log     *log.Logger
	updates int
	debug   bool
	overlay bool
}

// NewHost creates the host and initializes the game.
func NewHost(opts Options) (*Host, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	seed := opts.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	atlas := PlaceholderAtlas()
	if opts.Tileset != "" {
		a, err := LoadAtlas(opts.Tileset)
		if err != nil {
			return nil, err
		}
		atlas = a
	}

	frame := ebiten.NewImage(core.ScreenWidth, core.ScreenHeight)
	h := &Host{
		input:   core.NewButtonState(),
		frame:   frame,
		surface: NewSurface(frame, atlas),
		log:     logger,
	}

	var game *beekind.Game
	title := func(level int) string { return game.LevelTitle(level) }
	onErr := func(err error) { logger.Warn("cannot save clear", "err", err) }

	game = beekind.New(h.input, beekind.Options{
		Config:         opts.Config,
		Levels:         opts.Levels,
		Seed:           seed,
		Logger:         logger,
		OnLevelCleared: opts.Store.ClearHook(seed, title, onErr),
	})
	if err := game.Initialize(); err != nil {
		return nil, err
	}
	h.game = game
	return h, nil
}

// Update polls the keyboard and advances the simulation. Ebiten runs it at
// twice the frame rate; every second tick renders a frame.
func (h *Host) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		h.game.Shutdown()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		h.debug = !h.debug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		h.overlay = !h.overlay
	}

	h.poll(ebiten.IsKeyPressed)
	h.step()
	return nil
}

// poll refreshes the held buttons from a key query.
func (h *Host) poll(pressed func(ebiten.Key) bool) {
	for b, keys := range buttonKeys {
		h.input.Release(b)
		for _, k := range keys {
			if pressed(k) {
				h.input.Set(b)
				break
			}
		}
	}
	if h.debug {
		h.input.Set(core.ButtonDebug)
	} else {
		h.input.Release(core.ButtonDebug)
	}
}

// step runs one simulation update, drawing after every second one.
func (h *Host) step() {
	h.game.Update()
	h.updates++
	if h.updates%2 == 0 {
		h.game.Draw(h.surface)
	}
}

// Draw scales the last rendered frame onto the window.
func (h *Host) Draw(screen *ebiten.Image) {
	screen.DrawImage(h.frame, nil)
	if h.overlay {
		bees, needed := h.game.Colony()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %0.1f  %s  L%d  bees %d/%d",
			ebiten.ActualTPS(), h.game.State(), h.game.Level()+1, bees, needed), 4, core.ScreenHeight-16)
	}
}

// Layout fixes the logical screen; ebiten scales it to the window.
func (h *Host) Layout(_, _ int) (int, int) {
	return core.ScreenWidth, core.ScreenHeight
}

// Game returns the running simulation.
func (h *Host) Game() *beekind.Game {
	return h.game
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	h, err := NewHost(opts)
	if err != nil {
		return err
	}

	scale := opts.Scale
	if scale <= 0 {
		scale = 2
	}
	tickRate := opts.Runtime.TickRate
	if tickRate <= 0 {
		tickRate = beekind.FPS
	}

	ebiten.SetWindowSize(core.ScreenWidth*scale, core.ScreenHeight*scale)
	ebiten.SetWindowTitle(beekind.Metadata().Description)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(tickRate * 2)

	h.log.Info("window opened", "scale", scale, "tps", tickRate*2)
	if err := ebiten.RunGame(h); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
