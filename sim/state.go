package sim

import (
	"fmt"
	"math"
)

// totalsRelTol bounds the relative drift allowed between tracked and recomputed totals.
const totalsRelTol = 1e-6

// SimulationTotals are the running aggregates kept in step with every accepted move.
type SimulationTotals struct {
	Potential float64
	Virial    float64
}

// State is the mutable Markov chain state shared by the move kernels.
// It is owned by one engine for the duration of a run.
type State struct {
	Params    RunParameters
	Store     *ParticleStore
	Totals    SimulationTotals
	Potential PotentialEvaluator
	RNG       RandomSource
}

// NewState builds the run state from an initial configuration in box-relative
// units. Capacity <= 0 selects twice the initial particle count. The initial
// configuration must be overlap-free; totals are seeded from a full evaluation.
func NewState(params RunParameters, initial []Vec3, capacity int, pot PotentialEvaluator, rng RandomSource) (*State, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if capacity <= 0 {
		capacity = 2 * len(initial)
	}
	store, err := NewParticleStore(capacity, initial)
	if err != nil {
		return nil, err
	}
	total := pot.Total(store)
	if total.Overlap {
		return nil, &SimulationError{Check: "initial configuration", Wrapped: ErrOverlap}
	}
	return &State{
		Params:    params,
		Store:     store,
		Totals:    SimulationTotals{Potential: total.Energy, Virial: total.Virial},
		Potential: pot,
		RNG:       rng,
	}, nil
}

// Density returns n / V.
func (s *State) Density() float64 {
	return float64(s.Store.Len()) / s.Params.Volume()
}

// Recompute evaluates the whole system from scratch and compares it with the
// tracked totals. It returns the recomputed totals and ErrOverlap or
// ErrTotalsMismatch when the chain state is inconsistent.
func (s *State) Recompute() (SimulationTotals, error) {
	total := s.Potential.Total(s.Store)
	got := SimulationTotals{Potential: total.Energy, Virial: total.Virial}
	if total.Overlap {
		return got, ErrOverlap
	}
	if !closeEnough(got.Potential, s.Totals.Potential) || !closeEnough(got.Virial, s.Totals.Virial) {
		return got, fmt.Errorf("recomputed pot=%.10g vir=%.10g, tracked pot=%.10g vir=%.10g: %w",
			got.Potential, got.Virial, s.Totals.Potential, s.Totals.Virial, ErrTotalsMismatch)
	}
	return got, nil
}

// closeEnough compares with relative tolerance, falling back to absolute
// tolerance for magnitudes below one.
func closeEnough(a, b float64) bool {
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
	return math.Abs(a-b) <= totalsRelTol*scale
}
