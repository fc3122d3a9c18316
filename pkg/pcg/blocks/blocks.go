// Package blocks produces sets of non-overlapping axis-aligned
// rectangles inside a bounding area: sparse (few, well-separated),
// packed (many, tight but disjoint), and BSP (an exact tiling of the
// whole area).
package blocks

import (
	"github.com/PRiewe/neon-sub000/pkg/config"
	"github.com/PRiewe/neon-sub000/pkg/pcg"
)

// Generator places rectangles using a dedicated RandomSource.
type Generator struct {
	rng *pcg.RandomSource
	cfg *config.GeneratorConfig
}

// NewGenerator creates a block generator. A nil cfg uses the defaults.
func NewGenerator(rng *pcg.RandomSource, cfg *config.GeneratorConfig) *Generator {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Generator{rng: rng, cfg: cfg}
}

// Sparse generates up to n rectangles inside [0,w)x[0,h) with sides in
// [minSize, maxSize] and aspect ratio at most maxRatio. Accepted
// rectangles keep a one-tile separation: they may not even touch.
// Attempts per slot are bounded; a slot that cannot be filled is
// silently abandoned.
func (g *Generator) Sparse(w, h, minSize, maxSize int, maxRatio float64, n int) []pcg.Rectangle {
	return g.place(w, h, minSize, maxSize, maxRatio, n, g.cfg.BlockAttemptsPerSlot, true)
}

// Packed is Sparse with edge contact permitted and a higher retry
// budget, tuned to fit more rectangles into less area.
func (g *Generator) Packed(w, h, minSize, maxSize int, maxRatio float64, n int) []pcg.Rectangle {
	return g.place(w, h, minSize, maxSize, maxRatio, n, g.cfg.PackedAttemptsPerSlot, false)
}

func (g *Generator) place(w, h, minSize, maxSize int, maxRatio float64, n, attemptsPerSlot int, separated bool) []pcg.Rectangle {
	var accepted []pcg.Rectangle
	if minSize < 1 || minSize > maxSize || n < 1 {
		return accepted
	}

	for slot := 0; slot < n; slot++ {
		for attempt := 0; attempt < attemptsPerSlot; attempt++ {
			rw := g.rng.IntRange(minSize, maxSize)
			rh := g.rng.IntRange(minSize, maxSize)
			if ratioOf(rw, rh) > maxRatio {
				continue
			}
			if rw > w || rh > h {
				continue
			}

			rect := pcg.Rectangle{
				X:      g.rng.IntRange(0, w-rw),
				Y:      g.rng.IntRange(0, h-rh),
				Width:  rw,
				Height: rh,
			}

			if overlapsAny(rect, accepted, separated) {
				continue
			}
			accepted = append(accepted, rect)
			break
		}
	}

	return accepted
}

func ratioOf(w, h int) float64 {
	a, b := float64(w), float64(h)
	if a > b {
		return a / b
	}
	return b / a
}

func overlapsAny(rect pcg.Rectangle, accepted []pcg.Rectangle, separated bool) bool {
	probe := rect
	if separated {
		probe = rect.Inflate(1)
	}
	for _, other := range accepted {
		if probe.Intersects(other) {
			return true
		}
	}
	return false
}

// BSP recursively partitions [0,w)x[0,h) along each node's longer axis
// at a random position keeping both children at least minSize wide.
// Recursion stops when no legal split exists or a node's sides are
// within maxSize. The returned rectangles tile the full area exactly:
// their areas sum to w*h with no gaps and no overlaps.
func (g *Generator) BSP(w, h, minSize, maxSize int) []pcg.Rectangle {
	var leaves []pcg.Rectangle
	if w < 1 || h < 1 || minSize < 1 {
		return leaves
	}

	var split func(node pcg.Rectangle)
	split = func(node pcg.Rectangle) {
		longer := node.Width
		if node.Height > longer {
			longer = node.Height
		}

		if longer <= maxSize || longer < 2*minSize {
			leaves = append(leaves, node)
			return
		}

		if node.Width >= node.Height {
			at := g.rng.IntRange(minSize, node.Width-minSize)
			split(pcg.Rectangle{X: node.X, Y: node.Y, Width: at, Height: node.Height})
			split(pcg.Rectangle{X: node.X + at, Y: node.Y, Width: node.Width - at, Height: node.Height})
		} else {
			at := g.rng.IntRange(minSize, node.Height-minSize)
			split(pcg.Rectangle{X: node.X, Y: node.Y, Width: node.Width, Height: at})
			split(pcg.Rectangle{X: node.X, Y: node.Y + at, Width: node.Width, Height: node.Height - at})
		}
	}

	split(pcg.Rectangle{X: 0, Y: 0, Width: w, Height: h})
	return leaves
}
