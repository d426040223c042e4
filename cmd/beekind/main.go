// beekind runs the Bee Kind platformer in a terminal or a desktop window.
//
// Usage:
//
//	beekind play      - Play in the terminal
//	beekind window    - Play in a desktop window
//	beekind levels    - List the levels
//	beekind records   - Show level clear records
//
// Global flags:
//
//	--fps <rate>          - Rendered frames per second (default: 30)
//	--seed <value>        - RNG seed for reproducible gameplay
//	--db <path>           - Records database (default: ~/.beekind/records.db)
//	--config <path>       - Custom game config YAML
//	--levels <dir>        - Directory of level YAML files
//	--difficulty <preset> - easy, normal, hard or fixed
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/beekind/internal/games/beekind"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagLevels     string
	flagDifficulty string
	flagLog        string
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "beekind",
	Short: "Bee Kind - grow the colony, stop the zombees",
	Long: `Bee Kind is a tile-based platformer. You are a rabbit with a honey gun
protecting a bee colony from grubs and the zombees they turn into.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  levels   - List the levels
  records  - Show level clear records

Examples:
  beekind play
  beekind play --difficulty hard --seed 42
  beekind window --scale 3
  beekind levels --levels ./my-levels
  beekind records`,
	Version: version(),
}

func version() string {
	md := beekind.Metadata()
	return fmt.Sprintf("%d.%d (%s, engine API %d.%d)", md.VersionMajor, md.VersionMinor, md.Name, md.APIMajor, md.APIMinor)
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", beekind.FPS, "Rendered frames per second")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.beekind/records.db", "Path to records database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Directory of level YAML files (default: embedded levels)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(recordsCmd)
}
