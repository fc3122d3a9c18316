package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 4, cfg.CaveIterations)
	assert.Equal(t, 5, cfg.CaveBirthLimit)
	assert.Equal(t, 4, cfg.CaveSurviveLimit)
	assert.Equal(t, 25, cfg.BlockAttemptsPerSlot)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cave_iterations: 6\nmaze_randomness: 30\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	// Overridden values change, the rest keeps its default.
	assert.Equal(t, 6, cfg.CaveIterations)
	assert.Equal(t, 30, cfg.MazeRandomness)
	assert.Equal(t, 5, cfg.CaveBirthLimit)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("bad yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "gen.yaml")
		require.NoError(t, os.WriteFile(path, []byte("cave_iterations: [\n"), 0o644))
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "gen.yaml")
		require.NoError(t, os.WriteFile(path, []byte("maze_randomness: 150\n"), 0o644))
		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GeneratorConfig)
	}{
		{"zero attempts", func(c *GeneratorConfig) { c.BlockAttemptsPerSlot = 0 }},
		{"negative iterations", func(c *GeneratorConfig) { c.CaveIterations = -1 }},
		{"fill pct too high", func(c *GeneratorConfig) { c.CaveRoomFillPct = 100 }},
		{"house bounds inverted", func(c *GeneratorConfig) { c.TownHouseMax = c.TownHouseMin - 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
