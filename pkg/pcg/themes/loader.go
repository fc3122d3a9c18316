package themes

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// xmlCount is a <creature/>, <item/>, or <vegetation/> child.
type xmlCount struct {
	ID string `xml:"id,attr"`
	N  int    `xml:"n,attr"`
}

// xmlConnection is a <connection from=".." to=".."/> child.
type xmlConnection struct {
	From uint32 `xml:"from,attr"`
	To   uint32 `xml:"to,attr"`
}

type xmlZone struct {
	ID        string        `xml:"id,attr"`
	Type      string        `xml:"type,attr"`
	Min       string        `xml:"min,attr"`
	Max       string        `xml:"max,attr"`
	Floor     string        `xml:"floor,attr"`
	Walls     string        `xml:"walls,attr"`
	Doors     string        `xml:"doors,attr"`
	Creatures []xmlCount    `xml:"creature"`
	Items     []xmlCount    `xml:"item"`
	Features  *ZoneFeatures `xml:"features"`
}

type xmlRegion struct {
	ID         string     `xml:"id,attr"`
	Type       string     `xml:"type,attr"`
	Floor      string     `xml:"floor,attr"`
	Walls      string     `xml:"walls,attr"`
	Doors      string     `xml:"doors,attr"`
	HouseMin   string     `xml:"house_min,attr"`
	HouseMax   string     `xml:"house_max,attr"`
	HouseCount string     `xml:"houses,attr"`
	Creatures  []xmlCount `xml:"creature"`
	Vegetation []xmlCount `xml:"vegetation"`
	Items      []xmlCount `xml:"item"`
}

type xmlDungeon struct {
	ID          string          `xml:"id,attr"`
	ZoneRefs    []xmlZoneRef    `xml:"zone"`
	Connections []xmlConnection `xml:"connection"`
}

type xmlZoneRef struct {
	ID string `xml:"id,attr"`
}

// LoadFile reads theme records from an XML file into the store.
func (s *Store) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open theme file: %w", err)
	}
	defer f.Close()

	if err := s.LoadReader(f); err != nil {
		return fmt.Errorf("failed to load themes from %s: %w", path, err)
	}
	return nil
}

// LoadReader decodes a stream of theme records. Records have root tag
// zone, region, or dungeon; a wrapper element around them is
// tolerated and attribute order never matters. Unknown elements are
// skipped.
func (s *Store) LoadReader(r io.Reader) error {
	dec := xml.NewDecoder(r)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read theme token: %w", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		switch start.Name.Local {
		case "zone":
			var rec xmlZone
			if err := dec.DecodeElement(&rec, &start); err != nil {
				return fmt.Errorf("failed to decode zone record: %w", err)
			}
			zone, err := rec.toTheme()
			if err != nil {
				return err
			}
			s.AddZoneTheme(zone)
		case "region":
			var rec xmlRegion
			if err := dec.DecodeElement(&rec, &start); err != nil {
				return fmt.Errorf("failed to decode region record: %w", err)
			}
			region, err := rec.toTheme()
			if err != nil {
				return err
			}
			s.AddRegionTheme(region)
		case "dungeon":
			var rec xmlDungeon
			if err := dec.DecodeElement(&rec, &start); err != nil {
				return fmt.Errorf("failed to decode dungeon record: %w", err)
			}
			s.AddDungeonTheme(rec.toTheme())
		}
	}
}

func (z *xmlZone) toTheme() (*ZoneTheme, error) {
	min, err := parseBound(z.ID, "min", z.Min)
	if err != nil {
		return nil, err
	}
	max, err := parseBound(z.ID, "max", z.Max)
	if err != nil {
		return nil, err
	}

	return &ZoneTheme{
		ID:        z.ID,
		Type:      ZoneType(z.Type),
		Min:       min,
		Max:       max,
		Floor:     splitCSV(z.Floor),
		Walls:     z.Walls,
		Doors:     z.Doors,
		Creatures: countMap(z.Creatures),
		Items:     countMap(z.Items),
		Features:  z.Features,
	}, nil
}

func (r *xmlRegion) toTheme() (*RegionTheme, error) {
	houseMin, err := parseOptional(r.ID, "house_min", r.HouseMin)
	if err != nil {
		return nil, err
	}
	houseMax, err := parseOptional(r.ID, "house_max", r.HouseMax)
	if err != nil {
		return nil, err
	}
	houses, err := parseOptional(r.ID, "houses", r.HouseCount)
	if err != nil {
		return nil, err
	}

	return &RegionTheme{
		ID:         r.ID,
		Type:       r.Type,
		Floor:      splitCSV(r.Floor),
		Walls:      r.Walls,
		Doors:      r.Doors,
		Creatures:  countMap(r.Creatures),
		Vegetation: countMap(r.Vegetation),
		Items:      countMap(r.Items),
		HouseMin:   houseMin,
		HouseMax:   houseMax,
		HouseCount: houses,
	}, nil
}

func (d *xmlDungeon) toTheme() *DungeonTheme {
	theme := &DungeonTheme{ID: d.ID}
	for _, ref := range d.ZoneRefs {
		theme.ZoneThemes = append(theme.ZoneThemes, ref.ID)
	}
	for _, c := range d.Connections {
		theme.Connections = append(theme.Connections, Connection{From: c.From, To: c.To})
	}
	return theme
}

func countMap(entries []xmlCount) map[string]int {
	m := make(map[string]int, len(entries))
	for _, e := range entries {
		m[e.ID] = e.N
	}
	return m
}

func parseBound(themeID, attr, raw string) (int, error) {
	if raw == "" {
		return 0, fmt.Errorf("theme %q: missing %s attribute", themeID, attr)
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return 0, fmt.Errorf("theme %q: invalid %s attribute %q", themeID, attr, raw)
	}
	return v, nil
}

func parseOptional(themeID, attr, raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("theme %q: invalid %s attribute %q", themeID, attr, raw)
	}
	return v, nil
}
