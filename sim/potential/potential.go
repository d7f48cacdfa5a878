// Package potential provides pair potential implementations for the zVT engine.
// The PotentialEvaluator interface is defined in sim/ (parent package).
// This package provides LennardJones (cut, not shifted) and HardSphere.
package potential

import (
	"fmt"
	"math"
	"sort"

	"github.com/zvt-sim/zvt-sim/sim"
)

const (
	// NameLennardJones selects LennardJones.
	NameLennardJones = "lj"
	// NameHardSphere selects HardSphere.
	NameHardSphere = "hs"
)

var constructors = map[string]func(box, rCut float64) sim.PotentialEvaluator{
	NameLennardJones: func(box, rCut float64) sim.PotentialEvaluator { return NewLennardJones(box, rCut) },
	NameHardSphere:   func(box, rCut float64) sim.PotentialEvaluator { return NewHardSphere(box) },
}

// Names lists the registered model names in sorted order.
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsValidName reports whether name selects a registered model.
func IsValidName(name string) bool {
	_, ok := constructors[name]
	return ok
}

// New constructs the model named in cfg. Lengths are absolute.
func New(cfg sim.PotentialConfig) (sim.PotentialEvaluator, error) {
	ctor, ok := constructors[cfg.Name]
	if !ok {
		return nil, fmt.Errorf("unknown potential %q; valid: %v", cfg.Name, Names())
	}
	if err := validatePositive("box_length", cfg.BoxLength); err != nil {
		return nil, err
	}
	if err := validatePositive("r_cut", cfg.CutoffRadius); err != nil {
		return nil, err
	}
	return ctor(cfg.BoxLength, cfg.CutoffRadius), nil
}

func validatePositive(name string, val float64) error {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return fmt.Errorf("potential: %s must be a finite number, got %f", name, val)
	}
	if val <= 0 {
		return fmt.Errorf("potential: %s must be positive, got %f", name, val)
	}
	return nil
}
