package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/beekind/internal/config"
	"github.com/vovakirdan/beekind/internal/core"
	"github.com/vovakirdan/beekind/internal/games/beekind"
	"github.com/vovakirdan/beekind/internal/games/beekind/levels"
	"github.com/vovakirdan/beekind/internal/storage"
)

// Options configures a terminal session.
type Options struct {
	Runtime core.RuntimeConfig
	Config  config.BeeKindConfig
	Levels  levels.Provider // nil uses the embedded levels
	Store   *storage.Store  // nil disables records
	Logger  *log.Logger
}

// Model is the Bubble Tea model running a Bee Kind session.
type Model struct {
	game     *beekind.Game
	input    *core.ButtonState
	hold     *holdTracker
	screen   *core.Screen
	renderer *Renderer
	keys     KeyMap
	help     help.Model
	config   core.RuntimeConfig
	log      *log.Logger
	debug    bool
	width    int
	height   int
	quitting bool
}

// NewModel creates the session model and initializes the game.
func NewModel(opts Options) (Model, error) {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = beekind.FPS
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	input := core.NewButtonState()
	m := Model{
		input:    input,
		hold:     newHoldTracker(input, cfg.TickRate),
		screen:   core.NewScreen(core.ScreenWidth/core.CellW, core.ScreenHeight/core.CellH),
		renderer: NewRenderer(),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		config:   cfg,
		log:      logger,
		width:    cfg.ScreenW,
		height:   cfg.ScreenH,
	}
	m.screen.SetArt(SpriteArt)

	var game *beekind.Game
	title := func(level int) string { return game.LevelTitle(level) }
	onErr := func(err error) { logger.Warn("cannot save clear", "err", err) }

	game = beekind.New(input, beekind.Options{
		Config:         opts.Config,
		Levels:         opts.Levels,
		Seed:           cfg.Seed,
		Logger:         logger,
		OnLevelCleared: opts.Store.ClearHook(cfg.Seed, title, onErr),
	})
	if err := game.Initialize(); err != nil {
		return Model{}, err
	}
	m.game = game

	return m, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.game.Shutdown()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.log.Warn("screenshot failed", "err", err)
		} else {
			m.log.Info("screenshot saved", "path", path)
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Debug):
		m.debug = !m.debug
		if m.debug {
			m.input.Set(core.ButtonDebug)
		} else {
			m.input.Release(core.ButtonDebug)
		}
		return m, nil
	}

	if b, ok := m.keys.Button(msg); ok {
		m.hold.press(b)
	}
	return m, nil
}

// handleTick runs one rendered frame: two simulation updates, then a draw.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.game.Update()
	m.game.Update()
	m.game.Draw(m.screen)
	m.hold.tick()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current screen as plain text.
func (m Model) saveScreenshot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".beekind", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("beekind_L%d_%s.txt", m.game.Level()+1, timestamp))
	return path, os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current frame with the help footer, centred in the
// terminal.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	frame := lipgloss.JoinVertical(lipgloss.Center,
		m.renderer.Render(m.screen),
		helpStyle.Render(m.help.View(m.keys)),
	)

	if m.width <= 0 || m.height <= 0 {
		return frame
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, frame)
}

// Game returns the running simulation.
func (m Model) Game() *beekind.Game {
	return m.game
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
