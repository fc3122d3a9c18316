// Package zone assembles whole zones: base tiles by theme type,
// terrain annotation, region emission, door placement and linking,
// and the town branch.
package zone

import (
	"fmt"

	"github.com/PRiewe/neon-sub000/pkg/config"
	"github.com/PRiewe/neon-sub000/pkg/pcg"
	"github.com/PRiewe/neon-sub000/pkg/pcg/cave"
	"github.com/PRiewe/neon-sub000/pkg/pcg/levels"
	"github.com/PRiewe/neon-sub000/pkg/pcg/maze"
	"github.com/PRiewe/neon-sub000/pkg/pcg/themes"
)

// TileGenerator turns a zone theme type into a base tile grid.
type TileGenerator struct {
	rng     *pcg.RandomSource
	cfg     *config.GeneratorConfig
	maze    *maze.Generator
	cave    *cave.Generator
	complex *levels.ComplexGenerator
}

// NewTileGenerator creates a tile generator sharing one RandomSource
// across the algorithmic stages.
func NewTileGenerator(rng *pcg.RandomSource, cfg *config.GeneratorConfig) *TileGenerator {
	if cfg == nil {
		cfg = config.Default()
	}
	return &TileGenerator{
		rng:     rng,
		cfg:     cfg,
		maze:    maze.NewGenerator(rng),
		cave:    cave.NewGenerator(rng, cfg),
		complex: levels.NewComplexGenerator(rng, cfg, nil),
	}
}

// GenerateBaseTiles dispatches on the theme type and returns a
// bordered, connected tile grid. An empty walkable set surfaces
// ErrDegenerate; the caller must not re-roll.
func (tg *TileGenerator) GenerateBaseTiles(zoneType themes.ZoneType, w, h int) (*pcg.TileGrid, error) {
	var grid *pcg.TileGrid
	var err error

	switch zoneType {
	case themes.ZoneCave:
		grid = MakeTiles(tg.maze.GenerateSquashed(w, h, 3), w, h)
	case themes.ZonePits:
		grid = tg.cave.GenerateOpenCave(w, h, 3)
	case themes.ZoneMaze:
		grid = MakeTiles(tg.maze.Generate(w, h, 3, tg.cfg.MazeRandomness), w, h)
	case themes.ZoneMine:
		walk := tg.maze.GenerateSquashed(w, h, 12)
		for p := range tg.maze.Generate(w, h, 12, 40) {
			walk.Add(p)
		}
		grid = MakeTiles(walk, w, h)
	case themes.ZoneBSP:
		grid, err = tg.complex.GenerateBSP(w, h, 5, 12)
	case themes.ZonePacked:
		grid, err = tg.complex.GeneratePacked(w, h, 10, 4, 7)
	default:
		grid, err = tg.complex.GenerateSparse(w, h, 5, 5, 15)
	}

	if err != nil {
		return nil, fmt.Errorf("base tiles for type %q: %w", zoneType, err)
	}

	pcg.RepairConnectivity(grid, tg.rng)
	grid.EnforceBorder()

	if _, ok := grid.FindFirstWalkable(); !ok {
		return nil, fmt.Errorf("base tiles for type %q: %w", zoneType, pcg.ErrDegenerate)
	}
	return grid, nil
}

// MakeTiles converts a walkable set into a bordered tile grid.
// Points on the outer ring are clamped away to preserve the border.
func MakeTiles(walk pcg.WalkableSet, w, h int) *pcg.TileGrid {
	grid := pcg.NewTileGrid(w, h)
	for x := 1; x < w-1; x++ {
		for y := 1; y < h-1; y++ {
			if walk.Has(pcg.Point{X: x, Y: y}) {
				grid.Set(x, y, pcg.TileFloor)
			}
		}
	}
	return grid
}
