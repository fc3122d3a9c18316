package terrain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PRiewe/neon-sub000/pkg/pcg"
)

func TestFeatureGenerator_Lake(t *testing.T) {
	grid := NewGrid(40, 40)
	for x := 0; x < 40; x++ {
		for y := 0; y < 40; y++ {
			grid.Set(x, y, &Cell{Base: "grass"})
		}
	}

	fg := NewFeatureGenerator(pcg.NewRandomSource(42), nil)
	bounds := pcg.Rectangle{X: 10, Y: 10, Width: 12, Height: 12}
	fg.Lake(grid, "water", bounds)

	water := 0
	for x := 0; x < 40; x++ {
		for y := 0; y < 40; y++ {
			if grid.Get(x, y).Base == "water" {
				water++
				assert.True(t, bounds.Contains(x, y), "water outside bounds at (%d,%d)", x, y)
			}
		}
	}
	assert.Greater(t, water, 0, "lake painted no water")
}

func TestFeatureGenerator_River(t *testing.T) {
	grid := NewGrid(50, 50)
	for x := 0; x < 50; x++ {
		for y := 0; y < 50; y++ {
			grid.Set(x, y, &Cell{Base: "grass"})
		}
	}

	fg := NewFeatureGenerator(pcg.NewRandomSource(42), nil)
	fg.River(grid, "water", 2)

	water := 0
	for x := 0; x < 50; x++ {
		for y := 0; y < 50; y++ {
			if grid.Get(x, y).Base == "water" {
				water++
			}
		}
	}

	// A river crosses the whole grid: at least length x width tiles.
	require.GreaterOrEqual(t, water, 50*2)
}

func TestFeatureGenerator_RiverDeterministic(t *testing.T) {
	paint := func(seed int64) [][]string {
		grid := NewGrid(30, 30)
		for x := 0; x < 30; x++ {
			for y := 0; y < 30; y++ {
				grid.Set(x, y, &Cell{Base: "grass"})
			}
		}
		NewFeatureGenerator(pcg.NewRandomSource(seed), nil).River(grid, "water", 1)
		return grid.Strings()
	}

	assert.Equal(t, paint(9), paint(9))
}
