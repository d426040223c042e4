package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/beekind/internal/core"
	"github.com/vovakirdan/beekind/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start Bee Kind in the terminal.

Controls:
  A/Q/Left, D/Right   - Walk
  W/Z/Up              - Jump (climb in top-down areas)
  S/Down              - Duck
  Space/Enter         - Fire the honey gun
  Tab                 - Debug overlay
  Ctrl+S              - Save a text screenshot
  Esc/Ctrl+C          - Quit

Terminals report key presses but not releases, so a press holds its
button briefly and key repeat keeps it held.

Difficulty options:
  easy   - Enemies start slow and speed up level by level
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, the base tuning throughout

Examples:
  beekind play
  beekind play --difficulty easy
  beekind play --seed 42 --log beekind.log -v`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	set, err := loadLevels()
	if err != nil {
		fail("%v", err)
	}

	// The alternate screen owns stdout, so logs go to --log or nowhere.
	logger, closeLog, err := newLogger(flagLog, nil)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store := openStore()

	runErr := tui.Run(tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Config: cfg,
		Levels: set,
		Store:  store,
		Logger: logger,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		closeLog()
		fail("running game: %v", runErr)
	}
}
