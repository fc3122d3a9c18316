package terrain

import (
	"github.com/PRiewe/neon-sub000/pkg/config"
	"github.com/PRiewe/neon-sub000/pkg/pcg"
)

// FeatureGenerator paints water features onto a terrain grid.
type FeatureGenerator struct {
	rng *pcg.RandomSource
	cfg *config.GeneratorConfig
}

// NewFeatureGenerator creates a feature generator. A nil cfg uses the
// defaults.
func NewFeatureGenerator(rng *pcg.RandomSource, cfg *config.GeneratorConfig) *FeatureGenerator {
	if cfg == nil {
		cfg = config.Default()
	}
	return &FeatureGenerator{rng: rng, cfg: cfg}
}

// Lake runs a cellular automaton over bounds and turns the surviving
// cells into water. Every painted tile lies within bounds; void cells
// stay void and existing annotations under the lake are dropped.
func (fg *FeatureGenerator) Lake(grid *Grid, waterID string, bounds pcg.Rectangle) {
	alive := make([][]bool, bounds.Width)
	for x := range alive {
		alive[x] = make([]bool, bounds.Height)
		for y := range alive[x] {
			alive[x][y] = fg.rng.Chance(fg.cfg.CaveRoomFillPct)
		}
	}

	for i := 0; i < fg.cfg.CaveIterations; i++ {
		alive = caStep(alive, fg.cfg.CaveBirthLimit, fg.cfg.CaveSurviveLimit)
	}

	for x := 0; x < bounds.Width; x++ {
		for y := 0; y < bounds.Height; y++ {
			if alive[x][y] {
				fg.paintWater(grid, bounds.X+x, bounds.Y+y, waterID)
			}
		}
	}
}

// River walks from a uniformly chosen grid edge to the opposite edge
// with a bounded-turn 1D random walk and paints a band of the given
// width along the way.
func (fg *FeatureGenerator) River(grid *Grid, waterID string, width int) {
	if width < 1 {
		width = 1
	}

	w, h := grid.Width(), grid.Height()
	vertical := fg.rng.Chance(50)  // top-to-bottom vs left-to-right
	reversed := fg.rng.Chance(50)  // which of the two opposite edges starts

	span := w
	length := h
	if !vertical {
		span = h
		length = w
	}
	if span < 2*width+2 {
		return
	}

	lateral := fg.rng.IntRange(width, span-width-1)
	for step := 0; step < length; step++ {
		along := step
		if reversed {
			along = length - 1 - step
		}

		for band := -width / 2; band <= (width-1)/2; band++ {
			pos := lateral + band
			if vertical {
				fg.paintWater(grid, pos, along, waterID)
			} else {
				fg.paintWater(grid, along, pos, waterID)
			}
		}

		// Bounded turn: drift at most one tile sideways per step.
		lateral += fg.rng.IntRange(-1, 1)
		if lateral < width {
			lateral = width
		}
		if lateral > span-width-1 {
			lateral = span - width - 1
		}
	}
}

func (fg *FeatureGenerator) paintWater(grid *Grid, x, y int, waterID string) {
	if grid.Get(x, y) != nil {
		grid.Set(x, y, &Cell{Base: waterID})
	}
}

// caStep applies one automaton round on a boolean grid; out-of-bounds
// neighbors count as dead.
func caStep(alive [][]bool, birth, survive int) [][]bool {
	w := len(alive)
	h := len(alive[0])
	next := make([][]bool, w)
	for x := range next {
		next[x] = make([]bool, h)
		for y := range next[x] {
			n := aliveNeighbors(alive, x, y)
			if n >= birth {
				next[x][y] = true
			} else if alive[x][y] && n >= survive {
				next[x][y] = true
			}
		}
	}
	return next
}

func aliveNeighbors(alive [][]bool, x, y int) int {
	w := len(alive)
	h := len(alive[0])
	count := 0
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if nx >= 0 && nx < w && ny >= 0 && ny < h && alive[nx][ny] {
				count++
			}
		}
	}
	return count
}
