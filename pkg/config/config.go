// Package config holds the tuning knobs of the map generators. The
// defaults are the values the tests pin; a YAML file can override
// them for experimentation.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// GeneratorConfig collects the implementation-fixed tunables of the
// generation pipeline.
type GeneratorConfig struct {
	// Blocks placement
	BlockAttemptsPerSlot  int `yaml:"block_attempts_per_slot"`  // retries before abandoning one rectangle
	PackedAttemptsPerSlot int `yaml:"packed_attempts_per_slot"` // higher retry budget for tight packing

	// Cellular automata
	CaveIterations    int `yaml:"cave_iterations"`     // Moore-neighborhood CA rounds
	CaveBirthLimit    int `yaml:"cave_birth_limit"`    // floor neighbors to become floor
	CaveSurviveLimit  int `yaml:"cave_survive_limit"`  // floor neighbors to stay floor
	CaveRoomFillPct   int `yaml:"cave_room_fill_pct"`  // initial floor fill for cave rooms
	CaveRoomIteration int `yaml:"cave_room_iteration"` // CA rounds for cave-shaped rooms

	// Maze defaults
	MazeRandomness int `yaml:"maze_randomness"` // direction-change chance, percent

	// Town layout
	TownHouseMin int `yaml:"town_house_min"` // minimum house side
	TownHouseMax int `yaml:"town_house_max"` // maximum house side
}

// Default returns the pinned default configuration.
func Default() *GeneratorConfig {
	return &GeneratorConfig{
		BlockAttemptsPerSlot:  25,
		PackedAttemptsPerSlot: 100,
		CaveIterations:        4,
		CaveBirthLimit:        5,
		CaveSurviveLimit:      4,
		CaveRoomFillPct:       55,
		CaveRoomIteration:     4,
		MazeRandomness:        50,
		TownHouseMin:          5,
		TownHouseMax:          9,
	}
}

// Load reads a YAML config file and overlays it on the defaults.
func Load(path string) (*GeneratorConfig, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate rejects configurations the generators cannot honor.
func (c *GeneratorConfig) Validate() error {
	if c.BlockAttemptsPerSlot < 1 {
		return fmt.Errorf("block_attempts_per_slot must be >= 1, got %d", c.BlockAttemptsPerSlot)
	}
	if c.PackedAttemptsPerSlot < 1 {
		return fmt.Errorf("packed_attempts_per_slot must be >= 1, got %d", c.PackedAttemptsPerSlot)
	}
	if c.CaveIterations < 0 {
		return fmt.Errorf("cave_iterations must be >= 0, got %d", c.CaveIterations)
	}
	if c.CaveRoomFillPct < 1 || c.CaveRoomFillPct > 99 {
		return fmt.Errorf("cave_room_fill_pct must be in [1,99], got %d", c.CaveRoomFillPct)
	}
	if c.MazeRandomness < 0 || c.MazeRandomness > 100 {
		return fmt.Errorf("maze_randomness must be in [0,100], got %d", c.MazeRandomness)
	}
	if c.TownHouseMin < 3 || c.TownHouseMax < c.TownHouseMin {
		return fmt.Errorf("town house bounds invalid: min %d max %d", c.TownHouseMin, c.TownHouseMax)
	}
	return nil
}
