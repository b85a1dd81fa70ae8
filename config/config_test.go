package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/tower-siege/engine"
	"github.com/lixenwraith/tower-siege/parameter"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "siege.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, uint64(0), cfg.Sim.Seed)
	assert.Equal(t, parameter.DefaultSpeed, cfg.Sim.Speed)
	assert.Equal(t, parameter.MaxStepsPerCall, cfg.Sim.MaxSteps)
	assert.Equal(t, 60, cfg.Host.FPS)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Log.Dir)
	assert.True(t, cfg.Store.Enabled)
	assert.Equal(t, "siege.db", cfg.Store.Path)
	assert.True(t, cfg.Audio.Enabled)
	assert.Equal(t, 44100, cfg.Audio.SampleRate)
	assert.Nil(t, cfg.EngineOptions())
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
[sim]
seed = 42
speed = 1.5
max_steps = 4

[host]
fps = 30

[log]
level = "debug"
dir = "logs"

[store]
enabled = false

[audio]
enabled = false
volume = -1.5
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, uint64(42), cfg.Sim.Seed)
	assert.Equal(t, 1.5, cfg.Sim.Speed)
	assert.Equal(t, 4, cfg.Sim.MaxSteps)
	assert.Equal(t, 30, cfg.Host.FPS)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "logs", cfg.Log.Dir)
	assert.False(t, cfg.Store.Enabled)
	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, -1.5, cfg.Audio.Volume)
	assert.Len(t, cfg.EngineOptions(), 1)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "[sim]\nspeed = 1.5\n")
	t.Setenv("SIEGE_SIM_SPEED", "3")
	t.Setenv("SIEGE_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3.0, cfg.Sim.Speed)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_InvalidValues(t *testing.T) {
	path := writeConfig(t, "[sim]\nspeed = 2.5\nmax_steps = 0\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, engine.ErrInvalidSpeed)
	assert.Contains(t, err.Error(), "sim.max_steps")
}

func TestEngineConfig(t *testing.T) {
	cfg := &Config{Sim: Sim{Speed: 2, MaxSteps: 5}}
	ec := cfg.EngineConfig()

	def := engine.DefaultConfig()
	assert.Equal(t, 2.0, ec.Speed)
	assert.Equal(t, 5, ec.MaxStepsPerCall)
	assert.Equal(t, def.Rows, ec.Rows)
	assert.Equal(t, def.Cols, ec.Cols)
	assert.Equal(t, def.StartingMoney, ec.StartingMoney)
	assert.Equal(t, def.StartingLives, ec.StartingLives)
}
