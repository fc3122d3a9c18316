package themes

import "github.com/PRiewe/neon-sub000/pkg/pcg"

// ThemeStore resolves theme records by id.
type ThemeStore interface {
	GetZoneTheme(id string) (*ZoneTheme, error)
	GetRegionTheme(id string) (*RegionTheme, error)
	GetDungeonTheme(id string) (*DungeonTheme, error)
}

// Store is the in-memory ThemeStore, loaded once before generation
// and effectively immutable while generators run.
type Store struct {
	zones    map[string]*ZoneTheme
	regions  map[string]*RegionTheme
	dungeons map[string]*DungeonTheme
}

// NewStore creates an empty theme store.
func NewStore() *Store {
	return &Store{
		zones:    make(map[string]*ZoneTheme),
		regions:  make(map[string]*RegionTheme),
		dungeons: make(map[string]*DungeonTheme),
	}
}

// AddZoneTheme registers a zone theme, replacing any previous record
// with the same id.
func (s *Store) AddZoneTheme(t *ZoneTheme) {
	s.zones[t.ID] = t
}

// AddRegionTheme registers a region theme.
func (s *Store) AddRegionTheme(t *RegionTheme) {
	s.regions[t.ID] = t
}

// AddDungeonTheme registers a dungeon theme.
func (s *Store) AddDungeonTheme(t *DungeonTheme) {
	s.dungeons[t.ID] = t
}

// GetZoneTheme resolves a zone theme id.
func (s *Store) GetZoneTheme(id string) (*ZoneTheme, error) {
	t, ok := s.zones[id]
	if !ok {
		return nil, &pcg.ThemeResolutionError{ID: id}
	}
	return t, nil
}

// GetRegionTheme resolves a region theme id.
func (s *Store) GetRegionTheme(id string) (*RegionTheme, error) {
	t, ok := s.regions[id]
	if !ok {
		return nil, &pcg.ThemeResolutionError{ID: id}
	}
	return t, nil
}

// GetDungeonTheme resolves a dungeon theme id.
func (s *Store) GetDungeonTheme(id string) (*DungeonTheme, error) {
	t, ok := s.dungeons[id]
	if !ok {
		return nil, &pcg.ThemeResolutionError{ID: id}
	}
	return t, nil
}
