package terrain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PRiewe/neon-sub000/pkg/pcg"
	"github.com/PRiewe/neon-sub000/pkg/pcg/themes"
)

func TestWildernessGenerator_Islands(t *testing.T) {
	wg := NewWildernessGenerator(pcg.NewRandomSource(42), nil, nil)
	alive := wg.Islands(30, 20, 45, 4, 3)

	require.Len(t, alive, 30)
	require.Len(t, alive[0], 20)

	living := 0
	for x := range alive {
		for y := range alive[x] {
			if alive[x][y] {
				living++
			}
		}
	}
	assert.Greater(t, living, 0)
	assert.Less(t, living, 30*20)
}

func TestWildernessGenerator_IslandsDeterministic(t *testing.T) {
	a := NewWildernessGenerator(pcg.NewRandomSource(5), nil, nil).Islands(25, 25, 40, 4, 4)
	b := NewWildernessGenerator(pcg.NewRandomSource(5), nil, nil).Islands(25, 25, 40, 4, 4)

	assert.Equal(t, a, b)
}

func TestWildernessGenerator_GenerateTerrainOnly(t *testing.T) {
	theme := &themes.RegionTheme{
		ID:         "plains",
		Floor:      []string{"grass","meadow"},
		Creatures:  map[string]int{"deer": 4, "boar": 2},
		Vegetation: map[string]int{"oak": 6},
		Items:      map[string]int{"herb": 3},
	}

	wg := NewWildernessGenerator(pcg.NewRandomSource(42), nil, nil)
	grid, err := wg.GenerateTerrainOnly(pcg.Rectangle{Width: 40, Height: 40}, theme, "dirt")
	require.NoError(t, err)

	creatures, items := 0, 0
	for x := 0; x < 40; x++ {
		for y := 0; y < 40; y++ {
			cell := grid.Get(x, y)
			require.NotNil(t, cell)
			assert.Contains(t, []string{"dirt", "grass", "meadow"}, cell.Base)
			if cell.Creature != "" {
				assert.Contains(t, []string{"deer", "boar"}, cell.Creature)
				creatures++
			}
			if cell.Item != "" {
				assert.Contains(t, []string{"oak", "herb"}, cell.Item)
				items++
			}
		}
	}

	// 1dN per entry: between 1 and N of each id, minus crowd losses.
	assert.GreaterOrEqual(t, creatures, 1)
	assert.LessOrEqual(t, creatures, 6)
	assert.GreaterOrEqual(t, items, 1)
	assert.LessOrEqual(t, items, 9)
}

func TestWildernessGenerator_GenerateTerrainOnlyDeterministic(t *testing.T) {
	theme := &themes.RegionTheme{
		ID:        "plains",
		Floor:     []string{"grass"},
		Creatures: map[string]int{"deer": 3},
	}

	run := func() [][]string {
		wg := NewWildernessGenerator(pcg.NewRandomSource(11), nil, nil)
		grid, err := wg.GenerateTerrainOnly(pcg.Rectangle{Width: 30, Height: 30}, theme, "dirt")
		require.NoError(t, err)
		return grid.Strings()
	}

	assert.Equal(t, run(), run())
}

func TestWildernessGenerator_GenerateTerrainOnlyDegenerate(t *testing.T) {
	wg := NewWildernessGenerator(pcg.NewRandomSource(1), nil, nil)
	_, err := wg.GenerateTerrainOnly(pcg.Rectangle{Width: 0, Height: 10}, &themes.RegionTheme{}, "dirt")

	assert.ErrorIs(t, err, pcg.ErrDegenerate)
}
