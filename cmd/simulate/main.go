// Headless run of the race world with scripted input.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"

	"racer/internal/collision"
	"racer/internal/config"
	"racer/internal/laps"
	"racer/internal/logging"
	"racer/internal/world"
)

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logging.New(cfg.LogLevel, os.Stdout, nil)

	var store *laps.Store
	if cfg.Laps.Enabled {
		if store, err = laps.Open(cfg.Laps.Path, log); err != nil {
			log.Fatal().Err(err).Msg("Failed to open lap store")
		}
		defer store.Close()
	}

	var metrics *collision.Metrics
	if cfg.Metrics.Enabled {
		if metrics, err = collision.NewMetrics(nil); err != nil {
			log.Fatal().Err(err).Msg("Failed to register metrics")
		}
	}

	start := time.Now()
	res, err := simulate(context.Background(), cfg, log, store, metrics)
	if err != nil {
		log.Fatal().Err(err).Msg("Simulation failed")
	}

	log.Info().
		Int("steps", cfg.Sim.Steps).
		Dur("took", time.Since(start)).
		Int("laps", res.Laps).
		Float32("best", res.Best).
		Int("ground", res.Stats.Ground).
		Int("box", res.Stats.Box).
		Int("wall", res.Stats.Wall).
		Int("parallel", res.Stats.Parallel).
		Str("position", fmt.Sprintf("(%.2f, %.2f, %.2f)", res.Position.X, res.Position.Y, res.Position.Z)).
		Float32("angle", res.Angle).
		Msg("Simulation finished")
}

type result struct {
	Laps     int
	Best     float32
	Stats    collision.Stats
	Position rl.Vector3
	Angle    float32
}

// simulate runs cfg.Sim.Steps fixed ticks of the world driven by
// cfg.Sim.Script, or DefaultScript when it is empty.
func simulate(ctx context.Context, cfg config.Config, log zerolog.Logger, store *laps.Store, metrics *collision.Metrics) (result, error) {
	src := cfg.Sim.Script
	if src == "" {
		src = DefaultScript
	}
	steps, err := parseScript(src)
	if err != nil {
		return result{}, fmt.Errorf("parsing sim script: %w", err)
	}

	tuning := cfg.Vehicle
	w := world.New(world.Options{
		PlayerID: cfg.Sim.PlayerID,
		Tuning:   &tuning,
		Input:    &scriptInput{steps: steps},
		Metrics:  metrics,
		Log:      log,
	})
	if store != nil {
		store.Watch(ctx, w.Player.Laps, cfg.Laps.Track, cfg.Sim.PlayerID)
	}
	w.Player.Laps.OnHalfRing.AddListener(func() {
		log.Debug().Msg("Half ring passed")
	})

	for i := 0; i < cfg.Sim.Steps; i++ {
		if err := ctx.Err(); err != nil {
			return result{}, err
		}
		w.Update(cfg.Sim.DT)
		if i%600 == 0 {
			s := &w.Player.Car.State
			log.Debug().Int("step", i).Float32("speed", s.Speed()).
				Str("braking", w.Player.Car.BrakingState().String()).Msg("Tick")
		}
	}

	p := w.Player
	return result{
		Laps:     p.Laps.Laps(),
		Best:     p.Laps.Best(),
		Stats:    p.Resolver.Stats,
		Position: p.Car.State.PositionWC,
		Angle:    p.Car.State.Angle,
	}, nil
}
