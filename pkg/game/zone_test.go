package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PRiewe/neon-sub000/pkg/pcg"
)

func TestZone_DoorTo(t *testing.T) {
	z := NewZone(3, "theme")

	_, ok := z.DoorTo(0)
	assert.False(t, ok)

	z.AddDoor(&Door{UID: "a", DestinationZoneIndex: 2})
	z.AddDoor(&Door{UID: "b", DestinationZoneIndex: 0})

	d, ok := z.DoorTo(0)
	require.True(t, ok)
	assert.Equal(t, EntityID("b"), d.UID)
}

func TestZone_AddRegion(t *testing.T) {
	z := NewZone(0, "theme")
	z.AddRegion(Region{TerrainBase: "grass", Bounds: pcg.Rectangle{Width: 4, Height: 1}})

	require.Len(t, z.Regions, 1)
	assert.Equal(t, TerrainID("grass"), z.Regions[0].TerrainBase)
}

func TestUUIDEntityStore(t *testing.T) {
	store := &UUIDEntityStore{}

	a := store.NewEntityUID()
	b := store.NewEntityUID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)

	store.AddEntity(&Door{UID: a})
	require.Len(t, store.Doors, 1)
}
