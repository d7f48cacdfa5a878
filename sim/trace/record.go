// Package trace provides per-try move decision recording for chain diagnostics.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// MoveRecord captures a single Monte Carlo try.
type MoveRecord struct {
	Block    int
	Step     int
	Try      int
	Kind     string // "move", "create" or "destroy"
	Accepted bool
	N        int // particle count after the try
}
