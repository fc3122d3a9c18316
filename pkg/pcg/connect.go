package pcg

// RepairConnectivity merges all walkable components of the grid into
// one by carving straight 1-wide Corridor tiles. For each component
// other than the largest, an L-shaped corridor runs from the nearest
// tile of that component toward the centroid of the largest one, bend
// direction chosen uniformly. The component count is re-checked after
// each carve, so termination is O(components).
//
// Calling this on an already-connected grid changes nothing and draws
// nothing from rng.
func RepairConnectivity(grid *TileGrid, rng *RandomSource) {
	for {
		components := grid.Components()
		if len(components) <= 1 {
			return
		}

		largest := 0
		for i, comp := range components {
			if len(comp) > len(components[largest]) {
				largest = i
			}
		}
		target := centroidOf(grid, components[largest])

		// Merge the first non-largest component; the loop re-checks.
		var source []Point
		for i, comp := range components {
			if i != largest {
				source = comp
				break
			}
		}

		from := nearestTo(source, target)
		carveL(grid, from, target, rng.Chance(50))
	}
}

// centroidOf returns the walkable tile of comp nearest to the
// component's arithmetic centroid.
func centroidOf(grid *TileGrid, comp []Point) Point {
	sx, sy := 0, 0
	for _, p := range comp {
		sx += p.X
		sy += p.Y
	}
	mid := Point{X: sx / len(comp), Y: sy / len(comp)}
	return nearestTo(comp, mid)
}

// nearestTo returns the point of pts with minimal Manhattan distance
// to target, ties broken by scan order.
func nearestTo(pts []Point, target Point) Point {
	best := pts[0]
	bestDist := manhattan(best, target)
	for _, p := range pts[1:] {
		if d := manhattan(p, target); d < bestDist {
			best = p
			bestDist = d
		}
	}
	return best
}

func manhattan(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// carveL carves an axis-aligned corridor with one bend between from
// and to. horizontalFirst selects which leg runs first. Only wall
// variants are converted to Corridor; walkable tiles pass through
// untouched.
func carveL(grid *TileGrid, from, to Point, horizontalFirst bool) {
	if horizontalFirst {
		carveSpanX(grid, from.X, to.X, from.Y)
		carveSpanY(grid, from.Y, to.Y, to.X)
	} else {
		carveSpanY(grid, from.Y, to.Y, from.X)
		carveSpanX(grid, from.X, to.X, to.Y)
	}
}

func carveSpanX(grid *TileGrid, x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		if !grid.Walkable(x, y) {
			grid.Set(x, y, TileCorridor)
		}
	}
}

func carveSpanY(grid *TileGrid, y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		if !grid.Walkable(x, y) {
			grid.Set(x, y, TileCorridor)
		}
	}
}
