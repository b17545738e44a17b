package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"racer/internal/vehicle"
)

// FileName is the config file looked up in the directory passed to Load.
const FileName = "racer.cfg.json"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

type WindowConfig struct {
	Width     int    `json:"width" mapstructure:"width"`
	Height    int    `json:"height" mapstructure:"height"`
	Title     string `json:"title" mapstructure:"title"`
	TargetFPS int    `json:"targetFps" mapstructure:"targetFps"`
}

// SimConfig drives the headless simulator.
type SimConfig struct {
	Steps    int     `json:"steps" mapstructure:"steps"`
	DT       float32 `json:"dt" mapstructure:"dt"`
	PlayerID int     `json:"playerId" mapstructure:"playerId"`
	Script   string  `json:"script" mapstructure:"script"`
}

type LapsConfig struct {
	Enabled bool   `json:"enabled" mapstructure:"enabled"`
	Path    string `json:"path" mapstructure:"path"`
	Track   string `json:"track" mapstructure:"track"`
}

type MetricsConfig struct {
	Enabled bool `json:"enabled" mapstructure:"enabled"`
}

type Config struct {
	LogLevel string         `json:"logLevel" mapstructure:"logLevel"`
	LogFile  string         `json:"logFile" mapstructure:"logFile"`
	PlayerID int            `json:"playerId" mapstructure:"playerId"`
	Vehicle  vehicle.Tuning `json:"vehicle" mapstructure:"vehicle"`
	Window   WindowConfig   `json:"window" mapstructure:"window"`
	Sim      SimConfig      `json:"sim" mapstructure:"sim"`
	Laps     LapsConfig     `json:"laps" mapstructure:"laps"`
	Metrics  MetricsConfig  `json:"metrics" mapstructure:"metrics"`
}

func setDefaults() {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logFile", "")
	viper.SetDefault("playerId", 1)

	t := vehicle.DefaultTuning()
	viper.SetDefault("vehicle.drag", t.Drag)
	viper.SetDefault("vehicle.rollingResistance", t.RollingResistance)
	viper.SetDefault("vehicle.corneringFront", t.CorneringFront)
	viper.SetDefault("vehicle.corneringRear", t.CorneringRear)
	viper.SetDefault("vehicle.maxGrip", t.MaxGrip)
	viper.SetDefault("vehicle.cgToFront", t.CGToFront)
	viper.SetDefault("vehicle.cgToRear", t.CGToRear)
	viper.SetDefault("vehicle.mass", t.Mass)
	viper.SetDefault("vehicle.inertia", t.Inertia)
	viper.SetDefault("vehicle.wheelCircumference", t.WheelCircumference)
	viper.SetDefault("vehicle.tractionGain", t.TractionGain)
	viper.SetDefault("vehicle.gravity", t.Gravity)

	viper.SetDefault("window.width", 1280)
	viper.SetDefault("window.height", 720)
	viper.SetDefault("window.title", "racer")
	viper.SetDefault("window.targetFps", 60)

	viper.SetDefault("sim.steps", 3600)
	viper.SetDefault("sim.dt", 1.0/60)
	viper.SetDefault("sim.playerId", 1)
	viper.SetDefault("sim.script", "")

	viper.SetDefault("laps.enabled", true)
	viper.SetDefault("laps.path", "./laps.db")
	viper.SetDefault("laps.track", "desert")

	viper.SetDefault("metrics.enabled", false)
}

// Load sets defaults, reads FileName from configDir if it exists and
// returns the validated result. A missing file leaves the defaults.
func Load(configDir string) (Config, error) {
	setDefaults()

	viper.SetConfigName(FileName)
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := c.Vehicle.Validate(); err != nil {
		return fmt.Errorf("%w: vehicle: %w", ErrInvalid, err)
	}
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Sim.DT <= 0:
		return fmt.Errorf("%w: sim.dt must be positive, got %v", ErrInvalid, c.Sim.DT)
	case c.Sim.Steps < 0:
		return fmt.Errorf("%w: sim.steps must not be negative, got %d", ErrInvalid, c.Sim.Steps)
	case c.Laps.Enabled && c.Laps.Path == "":
		return fmt.Errorf("%w: laps.path is empty", ErrInvalid)
	}
	return nil
}
