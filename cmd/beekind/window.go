package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/beekind/internal/core"
	"github.com/vovakirdan/beekind/internal/platform/window"
)

var (
	flagTileset string
	flagScale   int
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start Bee Kind in a 320x240 window scaled up for the desktop.

Controls:
  A/Q/Left, D/Right   - Walk
  W/Z/Up              - Jump (climb in top-down areas)
  S/Down              - Duck
  Space/Enter/Shift   - Fire the honey gun
  Tab                 - Debug overlay
  F3                  - Frame rate overlay
  F11                 - Toggle fullscreen
  Esc                 - Quit

Without --tileset the sprites are drawn as flat coloured placeholders.

Examples:
  beekind window
  beekind window --scale 3 --tileset ./assets/tiles.png`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagTileset, "tileset", "", "PNG tileset of 16px tiles, 10 per row")
	windowCmd.Flags().IntVar(&flagScale, "scale", 2, "Window pixels per game pixel")
}

func runWindow(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	set, err := loadLevels()
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := newLogger(flagLog, os.Stderr)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	store := openStore()

	runErr := window.Run(window.Options{
		Runtime: core.RuntimeConfig{
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Config:  cfg,
		Levels:  set,
		Store:   store,
		Logger:  logger,
		Tileset: flagTileset,
		Scale:   flagScale,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		closeLog()
		fail("running game: %v", runErr)
	}
}
