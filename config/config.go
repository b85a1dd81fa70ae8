// Package config loads host settings from an optional TOML file and SIEGE_ environment variables.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/lixenwraith/tower-siege/engine"
	"github.com/lixenwraith/tower-siege/parameter"
)

// EnvPrefix namespaces environment overrides, e.g. SIEGE_SIM_SPEED
const EnvPrefix = "SIEGE"

// Config is the resolved host configuration
type Config struct {
	Sim   Sim
	Host  Host
	Log   Log
	Store Store
	Audio Audio
}

type Sim struct {
	// Seed of the engine generator, 0 seeds from the clock
	Seed     uint64
	Speed    float64
	MaxSteps int
}

type Host struct {
	FPS int
}

type Log struct {
	Level string
	// Dir enables file logging when non-empty
	Dir string
}

type Store struct {
	Enabled bool
	Path    string
}

type Audio struct {
	Enabled    bool
	Volume     float64
	SampleRate int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("sim.seed", 0)
	v.SetDefault("sim.speed", parameter.DefaultSpeed)
	v.SetDefault("sim.max_steps", parameter.MaxStepsPerCall)

	v.SetDefault("host.fps", 60)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.dir", "")

	v.SetDefault("store.enabled", true)
	v.SetDefault("store.path", "siege.db")

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", 0.0)
	v.SetDefault("audio.sample_rate", 44100)
}

// Load reads path when given, then applies environment overrides over defaults
// A missing file is not an error when path is empty
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		v.SetConfigName("siege")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	cfg := &Config{
		Sim: Sim{
			Seed:     v.GetUint64("sim.seed"),
			Speed:    v.GetFloat64("sim.speed"),
			MaxSteps: v.GetInt("sim.max_steps"),
		},
		Host: Host{FPS: v.GetInt("host.fps")},
		Log: Log{
			Level: v.GetString("log.level"),
			Dir:   v.GetString("log.dir"),
		},
		Store: Store{
			Enabled: v.GetBool("store.enabled"),
			Path:    v.GetString("store.path"),
		},
		Audio: Audio{
			Enabled:    v.GetBool("audio.enabled"),
			Volume:     v.GetFloat64("audio.volume"),
			SampleRate: v.GetInt("audio.sample_rate"),
		},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the engine or host cannot honour
func (c *Config) Validate() error {
	var errs []error
	if !slices.Contains(parameter.AllowedSpeeds, c.Sim.Speed) {
		errs = append(errs, fmt.Errorf("sim.speed %v: %w", c.Sim.Speed, engine.ErrInvalidSpeed))
	}
	if c.Sim.MaxSteps <= 0 {
		errs = append(errs, fmt.Errorf("sim.max_steps must be positive, got %d", c.Sim.MaxSteps))
	}
	if c.Host.FPS <= 0 {
		errs = append(errs, fmt.Errorf("host.fps must be positive, got %d", c.Host.FPS))
	}
	if c.Audio.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("audio.sample_rate must be positive, got %d", c.Audio.SampleRate))
	}
	return errors.Join(errs...)
}

// EngineConfig converts the simulation section into engine construction settings
func (c *Config) EngineConfig() engine.Config {
	ec := engine.DefaultConfig()
	ec.Speed = c.Sim.Speed
	ec.MaxStepsPerCall = c.Sim.MaxSteps
	return ec
}

// EngineOptions returns the seed option when a fixed seed is configured
func (c *Config) EngineOptions() []engine.Option {
	if c.Sim.Seed == 0 {
		return nil
	}
	return []engine.Option{engine.WithSeed(c.Sim.Seed)}
}
