package themes

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PRiewe/neon-sub000/pkg/pcg"
)

func TestStore_LoadReaderZone(t *testing.T) {
	const doc = `
<themes>
  <zone id="dungeon_cave" type="cave" min="25" max="40"
        floor="cave_floor,cave_rubble" walls="cave_wall" doors="cave_door">
    <creature id="rat" n="6"/>
    <creature id="bat" n="3"/>
    <item id="gold" n="4"/>
    <features lakes="1" rivers="0" water="cave_water"/>
  </zone>
</themes>`

	store := NewStore()
	require.NoError(t, store.LoadReader(strings.NewReader(doc)))

	theme, err := store.GetZoneTheme("dungeon_cave")
	require.NoError(t, err)

	assert.Equal(t, ZoneCave, theme.Type)
	assert.Equal(t, 25, theme.Min)
	assert.Equal(t, 40, theme.Max)
	assert.Equal(t, []string{"cave_floor", "cave_rubble"}, theme.Floor)
	assert.Equal(t, "cave_wall", theme.Walls)
	assert.Equal(t, "cave_door", theme.Doors)
	assert.Equal(t, map[string]int{"rat": 6, "bat": 3}, theme.Creatures)
	assert.Equal(t, map[string]int{"gold": 4}, theme.Items)
	require.NotNil(t, theme.Features)
	assert.Equal(t, 1, theme.Features.Lakes)
	assert.Equal(t, "cave_water", theme.Features.Water)
}

// Attribute order never matters.
func TestStore_LoadReaderAttributePermutation(t *testing.T) {
	const a = `<zone id="z" type="maze" min="10" max="20" floor="f" walls="w" doors="d"/>`
	const b = `<zone doors="d" walls="w" floor="f" max="20" min="10" type="maze" id="z"/>`

	for _, doc := range []string{a, b} {
		store := NewStore()
		require.NoError(t, store.LoadReader(strings.NewReader(doc)))
		theme, err := store.GetZoneTheme("z")
		require.NoError(t, err)
		assert.Equal(t, ZoneMaze, theme.Type)
		assert.Equal(t, 10, theme.Min)
	}
}

// CSV fields split on "," with no whitespace trimming.
func TestStore_LoadReaderCSVNoTrim(t *testing.T) {
	const doc = `<zone id="z" type="cave" min="10" max="20" floor="a, b,c" walls="w" doors="d"/>`

	store := NewStore()
	require.NoError(t, store.LoadReader(strings.NewReader(doc)))

	theme, err := store.GetZoneTheme("z")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", " b", "c"}, theme.Floor)
}

func TestStore_LoadReaderRegion(t *testing.T) {
	const doc = `
<region id="town_big" type="town_big" floor="cobble,plank" walls="brick" doors="door_wood"
        house_min="6" house_max="10" houses="12">
  <creature id="villager" n="8"/>
  <vegetation id="hedge" n="5"/>
  <item id="crate" n="3"/>
</region>`

	store := NewStore()
	require.NoError(t, store.LoadReader(strings.NewReader(doc)))

	theme, err := store.GetRegionTheme("town_big")
	require.NoError(t, err)
	assert.Equal(t, "town_big", theme.Type)
	assert.Equal(t, []string{"cobble", "plank"}, theme.Floor)
	assert.Equal(t, 6, theme.HouseMin)
	assert.Equal(t, 10, theme.HouseMax)
	assert.Equal(t, 12, theme.HouseCount)
	assert.Equal(t, map[string]int{"hedge": 5}, theme.Vegetation)
}

func TestStore_LoadReaderDungeon(t *testing.T) {
	const doc = `
<dungeon id="old_mine">
  <zone id="mine_entrance"/>
  <zone id="mine_shaft"/>
  <zone id="mine_depths"/>
  <connection from="0" to="1"/>
  <connection from="1" to="2"/>
</dungeon>`

	store := NewStore()
	require.NoError(t, store.LoadReader(strings.NewReader(doc)))

	theme, err := store.GetDungeonTheme("old_mine")
	require.NoError(t, err)
	assert.Equal(t, []string{"mine_entrance", "mine_shaft", "mine_depths"}, theme.ZoneThemes)
	assert.Equal(t, []Connection{{From: 0, To: 1}, {From: 1, To: 2}}, theme.Connections)

	assert.Equal(t, []uint32{0, 2}, theme.ConnectedTo(1))
	assert.Equal(t, []uint32{1}, theme.ConnectedTo(0))
}

func TestStore_LoadReaderInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing min", `<zone id="z" type="cave" max="20" floor="f" walls="w" doors="d"/>`},
		{"bad min", `<zone id="z" type="cave" min="zero" max="20" floor="f" walls="w" doors="d"/>`},
		{"negative houses", `<region id="r" type="town" floor="f" houses="-3"/>`},
		{"broken xml", `<zone id="z"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore()
			assert.Error(t, store.LoadReader(strings.NewReader(tt.doc)))
		})
	}
}

func TestStore_Resolution(t *testing.T) {
	store := NewStore()

	_, err := store.GetZoneTheme("nope")
	var resErr *pcg.ThemeResolutionError
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, "nope", resErr.ID)

	_, err = store.GetRegionTheme("nope")
	assert.Error(t, err)
	_, err = store.GetDungeonTheme("nope")
	assert.Error(t, err)
}
