// Package cave generates open cellular-automata caves.
package cave

import (
	"github.com/PRiewe/neon-sub000/pkg/config"
	"github.com/PRiewe/neon-sub000/pkg/pcg"
)

// Generator produces open caves on a TileGrid.
type Generator struct {
	rng *pcg.RandomSource
	cfg *config.GeneratorConfig
}

// NewGenerator creates a cave generator. A nil cfg uses the defaults.
func NewGenerator(rng *pcg.RandomSource, cfg *config.GeneratorConfig) *Generator {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Generator{rng: rng, cfg: cfg}
}

// GenerateOpenCave seeds the grid interior with wall at probability
// sparseness/10 (the rest floor), runs the Moore-neighborhood
// automaton (a cell becomes floor at birth-limit floor neighbors and
// keeps floor at survive-limit), walls the border, and repairs
// connectivity. Higher sparseness means a sparser, more broken cave.
func (g *Generator) GenerateOpenCave(w, h, sparseness int) *pcg.TileGrid {
	grid := pcg.NewTileGrid(w, h)

	fill := 1.0 - float64(sparseness)/10.0
	for x := 1; x < w-1; x++ {
		for y := 1; y < h-1; y++ {
			if g.rng.Float64() < fill {
				grid.Set(x, y, pcg.TileFloor)
			}
		}
	}

	for i := 0; i < g.cfg.CaveIterations; i++ {
		grid = g.step(grid)
	}

	grid.EnforceBorder()
	pcg.RepairConnectivity(grid, g.rng)
	return grid
}

// step applies one automaton round into a fresh grid. Out-of-bounds
// neighbors count as wall.
func (g *Generator) step(grid *pcg.TileGrid) *pcg.TileGrid {
	w, h := grid.Width(), grid.Height()
	next := pcg.NewTileGrid(w, h)

	for x := 1; x < w-1; x++ {
		for y := 1; y < h-1; y++ {
			floors := countFloorNeighbors(grid, x, y)
			switch {
			case floors >= g.cfg.CaveBirthLimit:
				next.Set(x, y, pcg.TileFloor)
			case grid.Get(x, y) == pcg.TileFloor && floors >= g.cfg.CaveSurviveLimit:
				next.Set(x, y, pcg.TileFloor)
			}
		}
	}

	return next
}

// countFloorNeighbors counts floor tiles in the 8-neighborhood.
func countFloorNeighbors(grid *pcg.TileGrid, x, y int) int {
	count := 0
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if grid.Get(x+dx, y+dy) == pcg.TileFloor {
				count++
			}
		}
	}
	return count
}
