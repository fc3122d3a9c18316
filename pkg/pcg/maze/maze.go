// Package maze generates mazes over a cell lattice with a recursive
// backtracker: the classic variant on odd coordinates with walls on
// even coordinates, and a squashed unit-pitch variant whose 1-wide
// corridors read as cave floor.
package maze

import (
	"sort"

	"github.com/PRiewe/neon-sub000/pkg/pcg"
)

// Generator carves mazes using a dedicated RandomSource.
type Generator struct {
	rng *pcg.RandomSource
}

// NewGenerator creates a maze generator.
func NewGenerator(rng *pcg.RandomSource) *Generator {
	return &Generator{rng: rng}
}

var directions = [4]pcg.Point{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}

// Generate runs the recursive backtracker on the odd-coordinate cell
// lattice of a w x h grid. When picking the next cell, a roll against
// randomness (percent) chooses a uniformly random unvisited neighbor;
// otherwise the walk keeps its current direction when it can, which
// minimizes turns. Afterwards a sparseness/100 fraction of dead-end
// cells is filled back per pass until a pass removes nothing.
//
// The returned set is connected and contains both cells and the
// carved wall points between them.
func (g *Generator) Generate(w, h, sparseness, randomness int) pcg.WalkableSet {
	walk := make(pcg.WalkableSet)
	cw, ch := (w-1)/2, (h-1)/2
	if cw < 1 || ch < 1 {
		return walk
	}

	cellAt := func(c pcg.Point) pcg.Point {
		return pcg.Point{X: 2*c.X + 1, Y: 2*c.Y + 1}
	}

	visited := make([]bool, cw*ch)
	start := pcg.Point{X: g.rng.IntRange(0, cw-1), Y: g.rng.IntRange(0, ch-1)}
	visited[start.X*ch+start.Y] = true
	walk.Add(cellAt(start))

	stack := []pcg.Point{start}
	lastDir := -1

	for len(stack) > 0 {
		current := stack[len(stack)-1]

		var open []int
		for di, d := range directions {
			n := pcg.Point{X: current.X + d.X, Y: current.Y + d.Y}
			if n.X < 0 || n.X >= cw || n.Y < 0 || n.Y >= ch || visited[n.X*ch+n.Y] {
				continue
			}
			open = append(open, di)
		}

		if len(open) == 0 {
			stack = stack[:len(stack)-1]
			lastDir = -1
			continue
		}

		di := open[0]
		if g.rng.Chance(randomness) {
			di = open[g.rng.Intn(len(open))]
		} else if lastDir >= 0 {
			for _, candidate := range open {
				if candidate == lastDir {
					di = candidate
					break
				}
			}
		}

		d := directions[di]
		next := pcg.Point{X: current.X + d.X, Y: current.Y + d.Y}
		visited[next.X*ch+next.Y] = true

		// Carve the wall point between the two cells, then the cell.
		cc, nc := cellAt(current), cellAt(next)
		walk.Add(pcg.Point{X: (cc.X + nc.X) / 2, Y: (cc.Y + nc.Y) / 2})
		walk.Add(nc)

		stack = append(stack, next)
		lastDir = di
	}

	g.prune(walk, sparseness)
	return walk
}

// GenerateSquashed is the backtracker on a unit-pitch lattice: no
// interleaved wall cells, corridors 1 tile wide with nothing between
// them. A cell is eligible only while at most one of its neighbors is
// already carved, which keeps the result corridor-shaped instead of
// an open field. Each new cell touches only the cell it was carved
// from, so the carved set is a tree: it has no loops or braids.
func (g *Generator) GenerateSquashed(w, h, sparseness int) pcg.WalkableSet {
	walk := make(pcg.WalkableSet)
	if w < 3 || h < 3 {
		return walk
	}

	inField := func(p pcg.Point) bool {
		return p.X >= 1 && p.X <= w-2 && p.Y >= 1 && p.Y <= h-2
	}
	carvedNeighbors := func(p pcg.Point) int {
		n := 0
		for _, d := range directions {
			if walk.Has(pcg.Point{X: p.X + d.X, Y: p.Y + d.Y}) {
				n++
			}
		}
		return n
	}

	start := pcg.Point{X: g.rng.IntRange(1, w-2), Y: g.rng.IntRange(1, h-2)}
	walk.Add(start)
	stack := []pcg.Point{start}

	for len(stack) > 0 {
		current := stack[len(stack)-1]

		var open []pcg.Point
		for _, d := range directions {
			n := pcg.Point{X: current.X + d.X, Y: current.Y + d.Y}
			if inField(n) && !walk.Has(n) && carvedNeighbors(n) <= 1 {
				open = append(open, n)
			}
		}

		if len(open) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := open[g.rng.Intn(len(open))]
		walk.Add(next)
		stack = append(stack, next)
	}

	g.prune(walk, sparseness)
	return walk
}

// prune repeatedly fills back a sparseness/100 fraction of the
// current dead ends, in scan order, until a pass removes nothing.
// Removing only dead ends cannot disconnect the set.
func (g *Generator) prune(walk pcg.WalkableSet, sparseness int) {
	if sparseness <= 0 {
		return
	}

	for {
		deadEnds := deadEndsOf(walk)
		remove := len(deadEnds) * sparseness / 100
		if remove == 0 {
			return
		}
		for _, p := range deadEnds[:remove] {
			walk.Remove(p)
		}
	}
}

// deadEndsOf lists the points with at most one walkable neighbor, in
// deterministic order sorted by X then Y.
func deadEndsOf(walk pcg.WalkableSet) []pcg.Point {
	var dead []pcg.Point
	for p := range walk {
		n := 0
		for _, d := range directions {
			if walk.Has(pcg.Point{X: p.X + d.X, Y: p.Y + d.Y}) {
				n++
			}
		}
		if n <= 1 {
			dead = append(dead, p)
		}
	}
	sort.Slice(dead, func(i, j int) bool {
		if dead[i].X != dead[j].X {
			return dead[i].X < dead[j].X
		}
		return dead[i].Y < dead[j].Y
	})
	return dead
}
