package zone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/PRiewe/neon-sub000/pkg/pcg"
	"github.com/PRiewe/neon-sub000/pkg/pcg/themes"
)

var allZoneTypes = []themes.ZoneType{
	themes.ZoneCave,
	themes.ZonePits,
	themes.ZoneMaze,
	themes.ZoneMine,
	themes.ZoneBSP,
	themes.ZonePacked,
	themes.ZoneDefault,
}

func TestTileGenerator_GenerateBaseTilesCave(t *testing.T) {
	tg := NewTileGenerator(pcg.NewRandomSource(42), nil)
	grid, err := tg.GenerateBaseTiles(themes.ZoneCave, 30, 30)

	require.NoError(t, err)
	assert.Equal(t, 30, grid.Width())
	assert.Equal(t, 30, grid.Height())

	walkable := grid.WalkableCount()
	require.Greater(t, walkable, 0)

	start, ok := grid.FindFirstWalkable()
	require.True(t, ok)
	assert.Equal(t, walkable, grid.FloodFillCountWalkable(start),
		"walkable tiles form more than one component")
}

func TestTileGenerator_GenerateBaseTilesAllTypes(t *testing.T) {
	for _, zoneType := range allZoneTypes {
		t.Run(string(zoneType), func(t *testing.T) {
			tg := NewTileGenerator(pcg.NewRandomSource(42), nil)
			grid, err := tg.GenerateBaseTiles(zoneType, 40, 40)

			require.NoError(t, err)
			assert.True(t, grid.Connected(), "type %s disconnected", zoneType)

			for x := 0; x < 40; x++ {
				assert.False(t, grid.Walkable(x, 0))
				assert.False(t, grid.Walkable(x, 39))
			}
			for y := 0; y < 40; y++ {
				assert.False(t, grid.Walkable(0, y))
				assert.False(t, grid.Walkable(39, y))
			}
		})
	}
}

func TestTileGenerator_Deterministic(t *testing.T) {
	for _, zoneType := range allZoneTypes {
		t.Run(string(zoneType), func(t *testing.T) {
			a, err := NewTileGenerator(pcg.NewRandomSource(7), nil).GenerateBaseTiles(zoneType, 35, 35)
			require.NoError(t, err)
			b, err := NewTileGenerator(pcg.NewRandomSource(7), nil).GenerateBaseTiles(zoneType, 35, 35)
			require.NoError(t, err)

			for x := 0; x < 35; x++ {
				for y := 0; y < 35; y++ {
					require.Equal(t, a.Get(x, y), b.Get(x, y),
						"type %s tile (%d,%d) differs", zoneType, x, y)
				}
			}
		})
	}
}

// Connectivity holds for every dungeon type across many seeds.
func TestTileGenerator_ConnectivityProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Int64().Draw(t, "seed")
		zoneType := rapid.SampledFrom(allZoneTypes).Draw(t, "type")
		size := rapid.IntRange(25, 50).Draw(t, "size")

		grid, err := NewTileGenerator(pcg.NewRandomSource(seed), nil).GenerateBaseTiles(zoneType, size, size)
		if err != nil {
			t.Fatalf("type %s size %d seed %d: %v", zoneType, size, seed, err)
		}
		if !grid.Connected() {
			t.Fatalf("type %s size %d seed %d disconnected", zoneType, size, seed)
		}
	})
}

func TestMakeTiles(t *testing.T) {
	walk := make(pcg.WalkableSet)
	walk.Add(pcg.Point{X: 2, Y: 2})
	walk.Add(pcg.Point{X: 2, Y: 3})
	walk.Add(pcg.Point{X: 0, Y: 0}) // border point must be clamped away

	grid := MakeTiles(walk, 10, 10)
	assert.Equal(t, pcg.TileFloor, grid.Get(2, 2))
	assert.Equal(t, pcg.TileFloor, grid.Get(2, 3))
	assert.Equal(t, pcg.TileWall, grid.Get(0, 0))
	assert.Equal(t, 2, grid.WalkableCount())
}
