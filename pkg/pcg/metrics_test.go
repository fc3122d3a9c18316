package pcg

import (
	"errors"
	"testing"
	"time"
)

func TestObserveGeneration(t *testing.T) {
	start := time.Now()

	// Both paths must be safe to call repeatedly.
	ObserveGeneration("dungeon", start, nil)
	ObserveGeneration("dungeon", start, errors.New("boom"))
	ObserveGeneration("town", start, nil)
}
