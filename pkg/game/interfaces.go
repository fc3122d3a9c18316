package game

import "github.com/google/uuid"

// ResourceKind classifies a resource id during quest injection.
type ResourceKind int

const (
	ResourceUnknown ResourceKind = iota
	ResourceCreature
	ResourceItem
	ResourceDoor
	ResourceTerrain
)

// EntityStore allocates entity UIDs and takes ownership of generated
// entities. Callers attempting parallel generation must supply a
// thread-safe implementation.
type EntityStore interface {
	NewEntityUID() EntityID
	AddEntity(door *Door)
}

// ResourceResolver classifies resource ids, used during quest
// injection to decide creature-vs-item placement.
type ResourceResolver interface {
	Classify(id string) ResourceKind
}

// QuestProvider exposes the single quest hook the generator consumes:
// the next object a running quest wants placed in the world, if any.
type QuestProvider interface {
	NextRequestedObject() (string, bool)
}

// UUIDEntityStore is the default EntityStore: random UUIDs for entity
// ids and an in-memory door list. UID allocation is outside the
// deterministic seed stream on purpose; tile and annotation output
// never depends on it.
type UUIDEntityStore struct {
	Doors []*Door
}

// NewEntityUID allocates a fresh UUID-backed entity id.
func (s *UUIDEntityStore) NewEntityUID() EntityID {
	return EntityID(uuid.NewString())
}

// AddEntity records the door.
func (s *UUIDEntityStore) AddEntity(door *Door) {
	s.Doors = append(s.Doors, door)
}
