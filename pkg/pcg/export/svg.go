// Package export renders generated grids to SVG for debugging and
// the demo binary.
package export

import (
	"bytes"

	svg "github.com/ajstarks/svgo"

	"github.com/PRiewe/neon-sub000/pkg/pcg"
	"github.com/PRiewe/neon-sub000/pkg/pcg/terrain"
)

// SVGOptions configures grid rendering.
type SVGOptions struct {
	TileSize int    // Pixel size of one tile (default: 8)
	Title    string // Optional title above the grid
}

// DefaultSVGOptions returns sensible defaults.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{TileSize: 8}
}

var tileFill = map[pcg.TileClass]string{
	pcg.TileWall:       "#1b1b1b",
	pcg.TileFloor:      "#d9c89b",
	pcg.TileCorridor:   "#b8a878",
	pcg.TileWallRoom:   "#4a423a",
	pcg.TileCorner:     "#5d5347",
	pcg.TileDoor:       "#9c2f2f",
	pcg.TileDoorClosed: "#7a2424",
	pcg.TileDoorLocked: "#581a1a",
	pcg.TileEntry:      "#2f6f9c",
}

// TileGridSVG renders a tile grid, one rectangle per tile.
func TileGridSVG(grid *pcg.TileGrid, opts SVGOptions) []byte {
	if opts.TileSize < 1 {
		opts.TileSize = 8
	}
	ts := opts.TileSize

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(grid.Width()*ts, grid.Height()*ts)
	if opts.Title != "" {
		canvas.Title(opts.Title)
	}

	for x := 0; x < grid.Width(); x++ {
		for y := 0; y < grid.Height(); y++ {
			fill := tileFill[grid.Get(x, y)]
			canvas.Rect(x*ts, y*ts, ts, ts, "fill:"+fill)
		}
	}

	canvas.End()
	return buf.Bytes()
}

// TerrainGridSVG renders a terrain grid: void tiles dark, terrain
// tiles light, with markers on annotated cells.
func TerrainGridSVG(grid *terrain.Grid, opts SVGOptions) []byte {
	if opts.TileSize < 1 {
		opts.TileSize = 8
	}
	ts := opts.TileSize

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(grid.Width()*ts, grid.Height()*ts)
	if opts.Title != "" {
		canvas.Title(opts.Title)
	}

	for x := 0; x < grid.Width(); x++ {
		for y := 0; y < grid.Height(); y++ {
			cell := grid.Get(x, y)
			if cell == nil {
				canvas.Rect(x*ts, y*ts, ts, ts, "fill:#1b1b1b")
				continue
			}
			canvas.Rect(x*ts, y*ts, ts, ts, "fill:#d9c89b")
			if cell.Creature != "" {
				canvas.Circle(x*ts+ts/2, y*ts+ts/2, ts/3, "fill:#9c2f2f")
			}
			if cell.Item != "" {
				canvas.Circle(x*ts+ts/2, y*ts+ts/2, ts/4, "fill:#2f6f9c")
			}
		}
	}

	canvas.End()
	return buf.Bytes()
}
