package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/axesporen/internal/config"
	"github.com/vovakirdan/axesporen/internal/registry"
)

// loadGameConfig loads the game config and applies the --difficulty preset
// and an optional generator override.
func loadGameConfig(generator string) (config.GameConfig, error) {
	cfg, err := config.LoadGame(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagDifficulty != "" {
		preset := config.DifficultyPreset(flagDifficulty)
		switch preset {
		case config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard, config.DifficultyFixed:
			config.ApplyPreset(&cfg, preset)
		default:
			return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
	}

	if generator != "" {
		if !registry.Exists(generator) {
			return cfg, fmt.Errorf("unknown generator %q; run 'axesporen generators' to list them", generator)
		}
		cfg.World.Generator = generator
	}
	// Flat worlds are always bordered and ignore the generator
	if cfg.World.Layout != config.LayoutFlat && !registry.Exists(cfg.World.Generator) {
		return cfg, fmt.Errorf("config: unknown world.generator %q; run 'axesporen generators' to list them", cfg.World.Generator)
	}
	return cfg, nil
}

// newLogger creates the logger for terminal sessions. The game owns the
// terminal, so logs go to ~/.axesporen/axesporen.log; when that file cannot
// be opened they are discarded.
func newLogger() (*log.Logger, func()) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		level = log.InfoLevel
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	if home, homeErr := os.UserHomeDir(); homeErr == nil {
		dir := filepath.Join(home, config.AppDir)
		if mkErr := os.MkdirAll(dir, 0o755); mkErr == nil {
			f, openErr := os.OpenFile(filepath.Join(dir, "axesporen.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
			if openErr == nil {
				w = f
				closeFn = func() { f.Close() }
			}
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "axesporen",
	})
	return logger, closeFn
}

// stderrLogger creates a logger for commands that do not own the terminal.
func stderrLogger(prefix string) *log.Logger {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          prefix,
	})
}
