package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/beekind/internal/config"
	"github.com/vovakirdan/beekind/internal/games/beekind/levels"
	"github.com/vovakirdan/beekind/internal/storage"
)

// loadConfig loads the game config and applies the difficulty flag.
func loadConfig() (config.BeeKindConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagDifficulty != "" {
		preset, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}
	return cfg, nil
}

// loadLevels returns the levels from --levels, or the embedded set.
func loadLevels() (levels.Set, error) {
	if flagLevels == "" {
		return levels.Default()
	}
	return levels.NewLoader(flagLevels).LoadAll()
}

// openStore opens the records database. A failure is only a warning: the
// game runs without records.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open records database: %v\n", err)
		return nil
	}
	return store
}

// newLogger builds the session logger. An empty path discards unless
// fallback is set.
func newLogger(path string, fallback io.Writer) (*log.Logger, func(), error) {
	w := io.Discard
	closer := func() {}

	switch {
	case path != "":
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closer = func() { f.Close() }
	case fallback != nil:
		w = fallback
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "beekind",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}

// fail prints an error the way every command reports one and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
