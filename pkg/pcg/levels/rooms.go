// Package levels carves rooms into tile grids and composes them into
// multi-room dungeons: sparse, packed, and BSP layouts with corridor
// carving and a connectivity guarantee.
package levels

import (
	"github.com/PRiewe/neon-sub000/pkg/config"
	"github.com/PRiewe/neon-sub000/pkg/pcg"
)

// Room describes one carved room, used to plan corridors.
type Room struct {
	Bounds        pcg.Rectangle
	FloorCentroid pcg.Point
}

// RoomGenerator carves single rooms into an existing TileGrid.
type RoomGenerator struct {
	rng *pcg.RandomSource
	cfg *config.GeneratorConfig
}

// NewRoomGenerator creates a room generator. A nil cfg uses the defaults.
func NewRoomGenerator(rng *pcg.RandomSource, cfg *config.GeneratorConfig) *RoomGenerator {
	if cfg == nil {
		cfg = config.Default()
	}
	return &RoomGenerator{rng: rng, cfg: cfg}
}

// MakeRoom fills the bounds interior with Floor, the perimeter with
// WallRoom, and the four corner tiles with Corner.
func (rg *RoomGenerator) MakeRoom(grid *pcg.TileGrid, bounds pcg.Rectangle) Room {
	for x := bounds.X; x < bounds.X+bounds.Width; x++ {
		for y := bounds.Y; y < bounds.Y+bounds.Height; y++ {
			onEdge := x == bounds.X || x == bounds.X+bounds.Width-1 ||
				y == bounds.Y || y == bounds.Y+bounds.Height-1
			if onEdge {
				grid.Set(x, y, pcg.TileWallRoom)
			} else {
				grid.Set(x, y, pcg.TileFloor)
			}
		}
	}

	grid.Set(bounds.X, bounds.Y, pcg.TileCorner)
	grid.Set(bounds.X+bounds.Width-1, bounds.Y, pcg.TileCorner)
	grid.Set(bounds.X, bounds.Y+bounds.Height-1, pcg.TileCorner)
	grid.Set(bounds.X+bounds.Width-1, bounds.Y+bounds.Height-1, pcg.TileCorner)

	return Room{Bounds: bounds, FloorCentroid: bounds.Center()}
}

// MakePolyRoom unions the floors of 1-4 random sub-rectangles inside
// bounds. Each sub-rectangle after the first must intersect one
// already placed, which keeps the floor set 4-connected. The union's
// rim becomes WallRoom, with Corner on the diagonal-contact tiles.
func (rg *RoomGenerator) MakePolyRoom(grid *pcg.TileGrid, bounds pcg.Rectangle) Room {
	inner := bounds.Inset(1)
	if inner.Width < 1 || inner.Height < 1 {
		return rg.MakeRoom(grid, bounds)
	}

	count := rg.rng.IntRange(1, 4)
	var subs []pcg.Rectangle
	for i := 0; i < count; i++ {
		sw := rg.rng.IntRange(1, inner.Width)
		sh := rg.rng.IntRange(1, inner.Height)
		sub := pcg.Rectangle{
			X:      rg.rng.IntRange(inner.X, inner.X+inner.Width-sw),
			Y:      rg.rng.IntRange(inner.Y, inner.Y+inner.Height-sh),
			Width:  sw,
			Height: sh,
		}

		if len(subs) > 0 && !intersectsAny(sub, subs) {
			continue
		}
		subs = append(subs, sub)
	}

	for _, sub := range subs {
		for x := sub.X; x < sub.X+sub.Width; x++ {
			for y := sub.Y; y < sub.Y+sub.Height; y++ {
				grid.Set(x, y, pcg.TileFloor)
			}
		}
	}

	decorateRim(grid, bounds)
	return Room{Bounds: bounds, FloorCentroid: floorCentroid(grid, bounds)}
}

// MakeCaveRoom runs a short cellular automaton restricted to bounds;
// surviving cells become Floor, the rest stays Wall. Only the largest
// floor component is kept so the room reads as one cavity.
func (rg *RoomGenerator) MakeCaveRoom(grid *pcg.TileGrid, bounds pcg.Rectangle) Room {
	inner := bounds.Inset(1)
	if inner.Width < 1 || inner.Height < 1 {
		return rg.MakeRoom(grid, bounds)
	}

	scratch := pcg.NewTileGrid(inner.Width, inner.Height)
	for x := 0; x < inner.Width; x++ {
		for y := 0; y < inner.Height; y++ {
			if rg.rng.Chance(rg.cfg.CaveRoomFillPct) {
				scratch.Set(x, y, pcg.TileFloor)
			}
		}
	}

	for i := 0; i < rg.cfg.CaveRoomIteration; i++ {
		scratch = caveStep(scratch, rg.cfg)
	}

	keepLargestComponent(scratch)
	if _, ok := scratch.FindFirstWalkable(); !ok {
		// Automaton collapsed; a single floor tile keeps the room usable.
		scratch.Set(inner.Width/2, inner.Height/2, pcg.TileFloor)
	}

	for x := 0; x < inner.Width; x++ {
		for y := 0; y < inner.Height; y++ {
			if scratch.Get(x, y) == pcg.TileFloor {
				grid.Set(inner.X+x, inner.Y+y, pcg.TileFloor)
			}
		}
	}

	return Room{Bounds: bounds, FloorCentroid: floorCentroid(grid, bounds)}
}

func intersectsAny(rect pcg.Rectangle, others []pcg.Rectangle) bool {
	for _, o := range others {
		if rect.Intersects(o) {
			return true
		}
	}
	return false
}

// decorateRim turns wall tiles inside bounds that touch floor into
// WallRoom (4-adjacent) or Corner (diagonal contact only).
func decorateRim(grid *pcg.TileGrid, bounds pcg.Rectangle) {
	for x := bounds.X; x < bounds.X+bounds.Width; x++ {
		for y := bounds.Y; y < bounds.Y+bounds.Height; y++ {
			if grid.Get(x, y) != pcg.TileWall {
				continue
			}

			edge := false
			diagonal := false
			for dx := -1; dx <= 1; dx++ {
				for dy := -1; dy <= 1; dy++ {
					if dx == 0 && dy == 0 {
						continue
					}
					if grid.Get(x+dx, y+dy) == pcg.TileFloor {
						if dx == 0 || dy == 0 {
							edge = true
						} else {
							diagonal = true
						}
					}
				}
			}

			if edge {
				grid.Set(x, y, pcg.TileWallRoom)
			} else if diagonal {
				grid.Set(x, y, pcg.TileCorner)
			}
		}
	}
}

// floorCentroid returns the floor tile of bounds nearest the mean of
// all floor tiles, falling back to the geometric center.
func floorCentroid(grid *pcg.TileGrid, bounds pcg.Rectangle) pcg.Point {
	var floors []pcg.Point
	sx, sy := 0, 0
	for x := bounds.X; x < bounds.X+bounds.Width; x++ {
		for y := bounds.Y; y < bounds.Y+bounds.Height; y++ {
			if grid.Get(x, y) == pcg.TileFloor {
				floors = append(floors, pcg.Point{X: x, Y: y})
				sx += x
				sy += y
			}
		}
	}
	if len(floors) == 0 {
		return bounds.Center()
	}

	mean := pcg.Point{X: sx / len(floors), Y: sy / len(floors)}
	best := floors[0]
	bestDist := dist2(best, mean)
	for _, p := range floors[1:] {
		if d := dist2(p, mean); d < bestDist {
			best = p
			bestDist = d
		}
	}
	return best
}

func dist2(a, b pcg.Point) int {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx + dy*dy
}

// caveStep applies one automaton round on the scratch grid.
func caveStep(grid *pcg.TileGrid, cfg *config.GeneratorConfig) *pcg.TileGrid {
	w, h := grid.Width(), grid.Height()
	next := pcg.NewTileGrid(w, h)

	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			floors := 0
			for dx := -1; dx <= 1; dx++ {
				for dy := -1; dy <= 1; dy++ {
					if dx == 0 && dy == 0 {
						continue
					}
					if grid.Get(x+dx, y+dy) == pcg.TileFloor {
						floors++
					}
				}
			}
			switch {
			case floors >= cfg.CaveBirthLimit:
				next.Set(x, y, pcg.TileFloor)
			case grid.Get(x, y) == pcg.TileFloor && floors >= cfg.CaveSurviveLimit:
				next.Set(x, y, pcg.TileFloor)
			}
		}
	}

	return next
}

// keepLargestComponent fills every walkable component except the
// largest back to wall.
func keepLargestComponent(grid *pcg.TileGrid) {
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
	for i, comp := range components {
		if i == largest {
			continue
		}
		for _, p := range comp {
			grid.Set(p.X, p.Y, pcg.TileWall)
		}
	}
}
