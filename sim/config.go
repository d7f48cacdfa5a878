package sim

import (
	"fmt"
	"math"
)

// RunParameters is immutable for the duration of a run.
type RunParameters struct {
	BoxLength       float64 // absolute box length (must be > 0)
	Temperature     float64 // kT in reduced units (must be > 0)
	Activity        float64 // z = exp(mu/kT) (must be >= 0)
	CutoffRadius    float64 // absolute cutoff, below BoxLength/2
	MaxDisplacement float64 // absolute translation half-width (must be > 0)
	ProbMove        float64 // translation probability
	ProbCreate      float64 // insertion probability; deletion takes the remainder
}

// NewRunParameters fills ProbCreate as half of the non-translation probability,
// leaving an equal share for deletion.
func NewRunParameters(box, temperature, activity, rCut, drMax, probMove float64) RunParameters {
	return RunParameters{
		BoxLength:       box,
		Temperature:     temperature,
		Activity:        activity,
		CutoffRadius:    rCut,
		MaxDisplacement: drMax,
		ProbMove:        probMove,
		ProbCreate:      (1 - probMove) / 2,
	}
}

// ProbDestroy returns 1 - ProbMove - ProbCreate.
func (p RunParameters) ProbDestroy() float64 {
	return 1 - p.ProbMove - p.ProbCreate
}

// Volume returns BoxLength^3.
func (p RunParameters) Volume() float64 {
	return p.BoxLength * p.BoxLength * p.BoxLength
}

// Validate reports the first malformed field, wrapped in ErrInvalidParameters.
func (p RunParameters) Validate() error {
	checks := []struct {
		name string
		val  float64
	}{
		{"box_length", p.BoxLength},
		{"temperature", p.Temperature},
		{"activity", p.Activity},
		{"r_cut", p.CutoffRadius},
		{"dr_max", p.MaxDisplacement},
		{"prob_move", p.ProbMove},
		{"prob_create", p.ProbCreate},
	}
	for _, c := range checks {
		if math.IsNaN(c.val) || math.IsInf(c.val, 0) {
			return fmt.Errorf("%s must be a finite number, got %f: %w", c.name, c.val, ErrInvalidParameters)
		}
	}
	switch {
	case p.BoxLength <= 0:
		return fmt.Errorf("box_length must be positive, got %g: %w", p.BoxLength, ErrInvalidParameters)
	case p.Temperature <= 0:
		return fmt.Errorf("temperature must be positive, got %g: %w", p.Temperature, ErrInvalidParameters)
	case p.Activity < 0:
		return fmt.Errorf("activity must be non-negative, got %g: %w", p.Activity, ErrInvalidParameters)
	case p.CutoffRadius <= 0:
		return fmt.Errorf("r_cut must be positive, got %g: %w", p.CutoffRadius, ErrInvalidParameters)
	case p.CutoffRadius/p.BoxLength >= 0.5:
		return fmt.Errorf("r_cut %g too large for box %g (r_cut/box must be < 0.5): %w",
			p.CutoffRadius, p.BoxLength, ErrInvalidParameters)
	case p.MaxDisplacement <= 0:
		return fmt.Errorf("dr_max must be positive, got %g: %w", p.MaxDisplacement, ErrInvalidParameters)
	case p.ProbMove < 0 || p.ProbMove > 1:
		return fmt.Errorf("prob_move must be in [0, 1], got %g: %w", p.ProbMove, ErrInvalidParameters)
	case p.ProbCreate < 0 || p.ProbMove+p.ProbCreate > 1+1e-12:
		return fmt.Errorf("prob_create must be in [0, 1-prob_move], got %g: %w", p.ProbCreate, ErrInvalidParameters)
	}
	return nil
}
