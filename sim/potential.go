package sim

import "fmt"

// InteractionResult is the outcome of one evaluation. When Overlap is true the
// configuration is inadmissible and Energy and Virial carry no meaning.
type InteractionResult struct {
	Energy  float64
	Virial  float64
	Overlap bool
}

// Add accumulates o into r. Overlap is sticky.
func (r InteractionResult) Add(o InteractionResult) InteractionResult {
	return InteractionResult{
		Energy:  r.Energy + o.Energy,
		Virial:  r.Virial + o.Virial,
		Overlap: r.Overlap || o.Overlap,
	}
}

// PotentialEvaluator computes cutoff-truncated pair interactions over a store.
// Implementations are constructed for a fixed box length and cutoff radius.
type PotentialEvaluator interface {
	// Single returns the interaction of a particle at ri with every live
	// particle except index i. Passing i == store.Len() evaluates a trial
	// insertion against the whole live set.
	Single(store *ParticleStore, i int, ri Vec3) InteractionResult

	// Total returns the whole-system interaction computed from scratch.
	Total(store *ParticleStore) InteractionResult

	// EnergyLRC is the long-range energy correction per particle at the given density.
	EnergyLRC(density float64) float64

	// PressureLRC is the long-range pressure correction at the given density.
	PressureLRC(density float64) float64

	// PressureDelta corrects the cut (unshifted) pressure for the potential's
	// discontinuity at the cutoff.
	PressureDelta(density float64) float64
}

// PotentialConfig selects and parameterizes a PotentialEvaluator.
type PotentialConfig struct {
	Name         string  // registered model name, e.g. "lj"
	BoxLength    float64 // absolute box length
	CutoffRadius float64 // absolute cutoff radius
}

// NewPotentialFunc is set by sim/potential's init(). Importing sim/potential
// (or blank-importing it in tests) is required before calling NewPotential.
var NewPotentialFunc func(cfg PotentialConfig) (PotentialEvaluator, error)

// NewPotential builds the evaluator named in cfg.
func NewPotential(cfg PotentialConfig) (PotentialEvaluator, error) {
	if NewPotentialFunc == nil {
		return nil, fmt.Errorf("no potential implementations registered; import sim/potential")
	}
	return NewPotentialFunc(cfg)
}
