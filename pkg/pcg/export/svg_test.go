package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PRiewe/neon-sub000/pkg/pcg"
	"github.com/PRiewe/neon-sub000/pkg/pcg/terrain"
)

func TestTileGridSVG(t *testing.T) {
	grid := pcg.NewTileGrid(4, 3)
	grid.Set(1, 1, pcg.TileFloor)
	grid.Set(2, 1, pcg.TileDoor)

	out := string(TileGridSVG(grid, DefaultSVGOptions()))

	require.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "</svg>")
	assert.Contains(t, out, tileFill[pcg.TileFloor])
	assert.Contains(t, out, tileFill[pcg.TileDoor])
}

func TestTerrainGridSVG(t *testing.T) {
	grid := terrain.NewGrid(3, 3)
	grid.Set(1, 1, &terrain.Cell{Base: "grass", Creature: "wolf"})

	opts := DefaultSVGOptions()
	opts.Title = "demo"
	out := string(TerrainGridSVG(grid, opts))

	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "demo")
	assert.Contains(t, out, "circle")
}
