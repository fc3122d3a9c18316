package game

import "github.com/PRiewe/neon-sub000/pkg/pcg"

// Position is a tile coordinate inside a zone.
type Position struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// EntityID identifies an entity owned by the host engine.
type EntityID string

// TerrainID names a terrain resource.
type TerrainID string

// CreatureID names a creature resource.
type CreatureID string

// ItemID names an item resource.
type ItemID string

// Region is a contiguous flood-fill-uniform piece of a zone. The
// generator creates regions and hands them to the zone; the zone owns
// them thereafter. Town layering: the town floor plan sits at the base
// layer, houses one above, house-door floor tiles one above that.
type Region struct {
	TerrainBase TerrainID     `yaml:"terrain_base"`
	Bounds      pcg.Rectangle `yaml:"bounds"`
	ZLayer      uint8         `yaml:"z_layer"`
}

// Door transports the player to a destination zone and position.
// DestinationPosition is set only once the door has been linked to its
// peer in the destination zone.
type Door struct {
	UID                  EntityID
	Position             Position
	DestinationZoneIndex uint32
	DestinationPosition  *Position
}

// Zone is one self-contained level of a dungeon or region of the
// world. The generator mutates the zone through a single owning
// reference during a generation call and holds nothing afterwards.
type Zone struct {
	Index     uint32
	Name      string
	ThemeID   string
	Width     int
	Height    int
	Regions   []Region
	Doors     []*Door
	Creatures map[Position]CreatureID
	Items     map[Position]ItemID
}

// NewZone creates an empty zone with the given index and theme.
func NewZone(index uint32, themeID string) *Zone {
	return &Zone{
		Index:     index,
		ThemeID:   themeID,
		Creatures: make(map[Position]CreatureID),
		Items:     make(map[Position]ItemID),
	}
}

// AddRegion attaches a region to the zone.
func (z *Zone) AddRegion(r Region) {
	z.Regions = append(z.Regions, r)
}

// AddDoor attaches a door entity to the zone.
func (z *Zone) AddDoor(d *Door) {
	z.Doors = append(z.Doors, d)
}

// DoorTo returns the first door leading to the given zone index.
func (z *Zone) DoorTo(index uint32) (*Door, bool) {
	for _, d := range z.Doors {
		if d.DestinationZoneIndex == index {
			return d, true
		}
	}
	return nil, false
}
