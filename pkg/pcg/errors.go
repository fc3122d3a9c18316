package pcg

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the generator core. Invalid inputs are
// reported to the caller; random-retry failures are recovered locally
// up to the configured bound, then surfaced. Determinism is never
// sacrificed for recoverability: a failed call fails, it does not
// re-roll within the same seed stream.
var (
	// ErrDegenerate signals that generator invariants could not be
	// satisfied: an empty walkable set or an impossible size window.
	ErrDegenerate = errors.New("degenerate generation: invariants unsatisfiable")

	// ErrMissingReturnDoor signals that the dungeon's connection set
	// holds no way back to the previous zone.
	ErrMissingReturnDoor = errors.New("no connection back to previous zone")

	// ErrQuotaExhausted signals that rectangle placement ran out of
	// retries before placing a single block. Not fatal; callers may
	// retry with relaxed constraints.
	ErrQuotaExhausted = errors.New("block placement quota exhausted")
)

// DiceParseError reports a malformed dice expression.
type DiceParseError struct {
	Expression string
}

func (e *DiceParseError) Error() string {
	return fmt.Sprintf("invalid dice expression: %q", e.Expression)
}

// ThemeResolutionError reports an id that is not present in the theme
// store: a zone, region, or dungeon theme reference. Creature, item,
// and terrain ids are not checked and never produce it.
type ThemeResolutionError struct {
	ID string
}

func (e *ThemeResolutionError) Error() string {
	return fmt.Sprintf("unresolved theme id: %q", e.ID)
}
