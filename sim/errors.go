package sim

import (
	"errors"
	"fmt"
)

// Fatal conditions. A rejected move is not an error and never produces one.
var (
	// ErrInvalidParameters marks malformed run parameters, detected before any state exists.
	ErrInvalidParameters = errors.New("invalid run parameters")

	// ErrOverlap marks a live particle, or the whole system, reporting overlap.
	ErrOverlap = errors.New("overlap in live configuration")

	// ErrCapacityExhausted marks an insertion beyond the store's pre-allocated capacity.
	ErrCapacityExhausted = errors.New("particle store capacity exhausted")

	// ErrTotalsMismatch marks incrementally tracked totals drifting from a recomputation.
	ErrTotalsMismatch = errors.New("tracked totals disagree with recomputation")
)

// SimulationError locates a fatal condition inside a run.
// Block, Step and Try are 1-based; zero means "outside the loop".
type SimulationError struct {
	Check   string
	Block   int
	Step    int
	Try     int
	Wrapped error
}

func (e *SimulationError) Error() string {
	if e.Block == 0 {
		return fmt.Sprintf("%s: %v", e.Check, e.Wrapped)
	}
	return fmt.Sprintf("%s (block %d, step %d, try %d): %v", e.Check, e.Block, e.Step, e.Try, e.Wrapped)
}

func (e *SimulationError) Unwrap() error {
	return e.Wrapped
}
