// Package terrain builds and annotates terrain grids: the tile stage
// hands over walkability, this stage decides what the ground is made
// of and what lives on it. It also paints wilderness features such as
// island patches, lakes, and rivers.
package terrain

import (
	"fmt"
	"strings"
)

// Cell is one terrain cell: a base terrain id plus optional creature
// and item annotations. A nil *Cell in a grid is impassable void.
type Cell struct {
	Base     string
	Creature string
	Item     string
}

// Format collapses the cell to its exchange form:
// "<base>[;c:<creatureId>][;i:<itemId>]".
func (c *Cell) Format() string {
	var b strings.Builder
	b.WriteString(c.Base)
	if c.Creature != "" {
		b.WriteString(";c:")
		b.WriteString(c.Creature)
	}
	if c.Item != "" {
		b.WriteString(";i:")
		b.WriteString(c.Item)
	}
	return b.String()
}

// ParseCell parses the exchange form back into a cell.
func ParseCell(s string) (*Cell, error) {
	parts := strings.Split(s, ";")
	if parts[0] == "" {
		return nil, fmt.Errorf("terrain cell %q: empty base", s)
	}

	cell := &Cell{Base: parts[0]}
	for _, part := range parts[1:] {
		switch {
		case strings.HasPrefix(part, "c:"):
			cell.Creature = part[2:]
		case strings.HasPrefix(part, "i:"):
			cell.Item = part[2:]
		default:
			return nil, fmt.Errorf("terrain cell %q: unknown annotation %q", s, part)
		}
	}
	return cell, nil
}

// Grid is a rectangular terrain map. X is the outer axis, matching
// TileGrid. Cells are owned by the grid; nil means wall/outside.
type Grid struct {
	width  int
	height int
	cells  [][]*Cell
}

// NewGrid creates an all-void terrain grid.
func NewGrid(width, height int) *Grid {
	cells := make([][]*Cell, width)
	for x := range cells {
		cells[x] = make([]*Cell, height)
	}
	return &Grid{width: width, height: height, cells: cells}
}

// Width returns the horizontal cell count.
func (g *Grid) Width() int { return g.width }

// Height returns the vertical cell count.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x, y) is inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the cell at (x, y), nil when void or out of bounds.
func (g *Grid) Get(x, y int) *Cell {
	if !g.InBounds(x, y) {
		return nil
	}
	return g.cells[x][y]
}

// Set writes the cell at (x, y). Out-of-bounds writes are ignored.
func (g *Grid) Set(x, y int, c *Cell) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[x][y] = c
}

// Strings renders the whole grid in the exchange form, "" for void.
func (g *Grid) Strings() [][]string {
	out := make([][]string, g.width)
	for x := 0; x < g.width; x++ {
		out[x] = make([]string, g.height)
		for y := 0; y < g.height; y++ {
			if g.cells[x][y] != nil {
				out[x][y] = g.cells[x][y].Format()
			}
		}
	}
	return out
}
