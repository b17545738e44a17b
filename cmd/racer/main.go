package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"racer/internal/collision"
	"racer/internal/config"
	"racer/internal/game"
	"racer/internal/laps"
	"racer/internal/logging"
)

func main() {
	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			_ = os.Chdir(execDir)
		}
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(".")
	if err != nil {
		return err
	}

	var logFile *os.File
	if cfg.LogFile != "" {
		logFile, err = os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer logFile.Close()
	}
	log := newLogger(cfg.LogLevel, logFile)
	log.Info().Int("player", cfg.PlayerID).Msg("Starting racer")

	var store *laps.Store
	if cfg.Laps.Enabled {
		store, err = laps.Open(cfg.Laps.Path, log)
		if err != nil {
			// The game runs without history rather than not at all.
			log.Error().Err(err).Msg("Lap store unavailable")
			store = nil
		} else {
			defer store.Close()
		}
	}

	var metrics *collision.Metrics
	if cfg.Metrics.Enabled {
		if metrics, err = collision.NewMetrics(nil); err != nil {
			return err
		}
	}

	game.New(cfg, log, store, metrics).Run()
	log.Info().Msg("Bye")
	return nil
}

func newLogger(level string, file *os.File) zerolog.Logger {
	if file == nil {
		return logging.New(level, os.Stdout, nil)
	}
	return logging.New(level, os.Stdout, file)
}
