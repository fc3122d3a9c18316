// Package themes holds the declarative theme records the generators
// consume, their XML ingest format, and the in-memory theme store.
package themes

import "strings"

// ZoneType selects the tile-generation algorithm for a zone.
type ZoneType string

const (
	ZoneCave    ZoneType = "cave"
	ZonePits    ZoneType = "pits"
	ZoneMaze    ZoneType = "maze"
	ZoneMine    ZoneType = "mine"
	ZoneBSP     ZoneType = "bsp"
	ZonePacked  ZoneType = "packed"
	ZoneDefault ZoneType = "default"
)

// ZoneFeatures declares optional water features for a zone.
type ZoneFeatures struct {
	Lakes  int    `xml:"lakes,attr"`
	Rivers int    `xml:"rivers,attr"`
	Water  string `xml:"water,attr"`
}

// ZoneTheme drives dungeon-zone generation. Min and Max bound the
// generated square side. Creature and item values are dice upper
// bounds: a value of N places 1dN occurrences of that id.
type ZoneTheme struct {
	ID        string
	Type      ZoneType
	Min       int
	Max       int
	Floor     []string // CSV alternatives for walkable base terrain
	Walls     string
	Doors     string
	Creatures map[string]int
	Items     map[string]int
	Features  *ZoneFeatures
}

// DungeonTheme defines how zone indices compose into a dungeon.
type DungeonTheme struct {
	ID          string
	ZoneThemes  []string // zone theme id per zone index
	Connections []Connection
}

// Connection links two zone indices of a dungeon bidirectionally.
type Connection struct {
	From uint32
	To   uint32
}

// ConnectedTo lists the zone indices connected to the given index.
func (dt *DungeonTheme) ConnectedTo(index uint32) []uint32 {
	var out []uint32
	for _, c := range dt.Connections {
		switch index {
		case c.From:
			out = append(out, c.To)
		case c.To:
			out = append(out, c.From)
		}
	}
	return out
}

// RegionTheme drives the wilderness and town branches.
type RegionTheme struct {
	ID         string
	Type       string
	Floor      []string
	Walls      string
	Doors      string
	Creatures  map[string]int
	Vegetation map[string]int
	Items      map[string]int
	HouseMin   int
	HouseMax   int
	HouseCount int
}

// splitCSV splits a comma-separated attribute without trimming.
// Whitespace inside entries is the theme author's bug and is kept as
// part of the id; terrain ids are not resolved anywhere, so no error
// is reported for it.
func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
