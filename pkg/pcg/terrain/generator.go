package terrain

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/PRiewe/neon-sub000/pkg/config"
	"github.com/PRiewe/neon-sub000/pkg/game"
	"github.com/PRiewe/neon-sub000/pkg/pcg"
	"github.com/PRiewe/neon-sub000/pkg/pcg/themes"
)

// WildernessGenerator composes island patches, vegetation, and
// population annotations into a terrain grid for one region.
type WildernessGenerator struct {
	rng      *pcg.RandomSource
	dice     *game.DiceRoller
	cfg      *config.GeneratorConfig
	features *FeatureGenerator
	logger   *logrus.Logger
}

// NewWildernessGenerator creates a wilderness generator. Nil cfg or
// logger use defaults.
func NewWildernessGenerator(rng *pcg.RandomSource, cfg *config.GeneratorConfig, logger *logrus.Logger) *WildernessGenerator {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &WildernessGenerator{
		rng:      rng,
		dice:     game.NewDiceRoller(rng),
		cfg:      cfg,
		features: NewFeatureGenerator(rng, cfg),
		logger:   logger,
	}
}

// Islands runs the classic cellular-automata island pass: a
// fillProb/100 random fill, then the given number of rounds where a
// cell lives iff it has at least minNeighbors living neighbors.
// The caller composes the boolean result into terrain.
func (wg *WildernessGenerator) Islands(w, h, fillProb, minNeighbors, iterations int) [][]bool {
	alive := make([][]bool, w)
	for x := range alive {
		alive[x] = make([]bool, h)
		for y := range alive[x] {
			alive[x][y] = wg.rng.Chance(fillProb)
		}
	}

	for i := 0; i < iterations; i++ {
		next := make([][]bool, w)
		for x := range next {
			next[x] = make([]bool, h)
			for y := range next[x] {
				next[x][y] = aliveNeighbors(alive, x, y) >= minNeighbors
			}
		}
		alive = next
	}

	return alive
}

// GenerateTerrainOnly fills bounds with the texture terrain, overlays
// island patches of the theme's floor alternatives, and samples
// vegetation, creature, and item annotations: each theme entry with
// value N places 1dN occurrences on random unoccupied cells. No lakes
// or rivers are painted.
func (wg *WildernessGenerator) GenerateTerrainOnly(bounds pcg.Rectangle, theme *themes.RegionTheme, textureID string) (*Grid, error) {
	if bounds.Width < 1 || bounds.Height < 1 {
		return nil, fmt.Errorf("wilderness bounds %dx%d: %w", bounds.Width, bounds.Height, pcg.ErrDegenerate)
	}

	grid := NewGrid(bounds.Width, bounds.Height)
	for x := 0; x < bounds.Width; x++ {
		for y := 0; y < bounds.Height; y++ {
			grid.Set(x, y, &Cell{Base: textureID})
		}
	}

	if len(theme.Floor) > 0 {
		patches := wg.Islands(bounds.Width, bounds.Height, 40, 4, 4)
		for x := 0; x < bounds.Width; x++ {
			for y := 0; y < bounds.Height; y++ {
				if patches[x][y] {
					grid.Set(x, y, &Cell{Base: wg.rng.PickString(theme.Floor)})
				}
			}
		}
	}

	// Vegetation reads as placed flora: an item annotation on the cell.
	wg.placeAnnotations(grid, theme.Vegetation, func(c *Cell, id string) bool {
		if c.Item != "" {
			return false
		}
		c.Item = id
		return true
	})
	wg.placeAnnotations(grid, theme.Creatures, func(c *Cell, id string) bool {
		if c.Creature != "" {
			return false
		}
		c.Creature = id
		return true
	})
	wg.placeAnnotations(grid, theme.Items, func(c *Cell, id string) bool {
		if c.Item != "" {
			return false
		}
		c.Item = id
		return true
	})

	wg.logger.WithFields(logrus.Fields{
		"theme":  theme.ID,
		"bounds": fmt.Sprintf("%dx%d", bounds.Width, bounds.Height),
	}).Debug("wilderness terrain generated")
	return grid, nil
}

// placeAnnotations rolls 1dN per sorted theme entry and annotates
// random cells that the apply callback accepts. Placement attempts are
// bounded; a crowded grid silently under-places.
func (wg *WildernessGenerator) placeAnnotations(grid *Grid, counts map[string]int, apply func(*Cell, string) bool) {
	ids := maps.Keys(counts)
	slices.Sort(ids)

	for _, id := range ids {
		n := wg.dice.Roll(1, counts[id], 0)
		for i := 0; i < n; i++ {
			for attempt := 0; attempt < 10; attempt++ {
				x := wg.rng.IntRange(0, grid.Width()-1)
				y := wg.rng.IntRange(0, grid.Height()-1)
				cell := grid.Get(x, y)
				if cell != nil && apply(cell, id) {
					break
				}
			}
		}
	}
}
