package sim

import (
	"fmt"
	"math"
)

// MoveKind identifies one of the three trial moves.
type MoveKind int

const (
	MoveTranslate MoveKind = iota
	MoveCreate
	MoveDestroy
)

func (k MoveKind) String() string {
	switch k {
	case MoveTranslate:
		return "move"
	case MoveCreate:
		return "create"
	case MoveDestroy:
		return "destroy"
	}
	return fmt.Sprintf("MoveKind(%d)", int(k))
}

// Metropolis accepts unconditionally when delta <= 0 and otherwise accepts
// with probability exp(-delta). delta is already divided by temperature and
// includes any chemical-potential bias. A uniform draw is consumed only when
// delta > 0. +Inf always rejects; NaN always rejects.
func Metropolis(delta float64, rng RandomSource) bool {
	if delta <= 0 {
		return true
	}
	return rng.Float64() < math.Exp(-delta)
}

// InsertionDelta is the reduced acceptance exponent for inserting a particle
// with interaction energy e into a system of n particles.
func InsertionDelta(e, temperature, activity float64, n int) float64 {
	return e/temperature - math.Log(activity/float64(n+1))
}

// DeletionDelta is the reduced acceptance exponent for removing a particle
// with interaction energy e from a system of n particles.
func DeletionDelta(e, temperature, activity float64, n int) float64 {
	return -e/temperature - math.Log(float64(n)/activity)
}

// Translate attempts to displace a uniformly chosen particle by a uniform
// vector in [-dr_max, dr_max]^3, wrapped into the box. It returns whether the
// move was accepted; errors are fatal invariant violations.
//
// With no particles the try is rejected without consuming random numbers.
func Translate(s *State) (bool, error) {
	n := s.Store.Len()
	if n == 0 {
		return false, nil
	}
	i := s.RNG.Intn(n)
	ri := s.Store.At(i)

	atomOld := s.Potential.Single(s.Store, i, ri)
	if atomOld.Overlap {
		return false, fmt.Errorf("translate: particle %d of %d: %w", i, n, ErrOverlap)
	}

	dr := s.Params.MaxDisplacement / s.Params.BoxLength
	var zeta Vec3
	for k := range zeta {
		zeta[k] = (2*s.RNG.Float64() - 1) * dr
	}
	riNew := ri.Add(zeta).Wrap()

	atomNew := s.Potential.Single(s.Store, i, riNew)
	if atomNew.Overlap {
		return false, nil
	}

	delta := (atomNew.Energy - atomOld.Energy) / s.Params.Temperature
	if !Metropolis(delta, s.RNG) {
		return false, nil
	}
	s.Totals.Potential += atomNew.Energy - atomOld.Energy
	s.Totals.Virial += atomNew.Virial - atomOld.Virial
	s.Store.Set(i, riNew)
	return true, nil
}

// Create attempts to insert a particle at a uniform position in the box.
// A full store is a fatal ErrCapacityExhausted and leaves the state untouched.
func Create(s *State) (bool, error) {
	n := s.Store.Len()
	if n+1 > s.Store.Cap() {
		return false, fmt.Errorf("create: n+1=%d exceeds capacity %d: %w", n+1, s.Store.Cap(), ErrCapacityExhausted)
	}

	var ri Vec3
	for k := range ri {
		ri[k] = s.RNG.Float64() - 0.5
	}

	atomNew := s.Potential.Single(s.Store, n, ri)
	if atomNew.Overlap {
		return false, nil
	}

	// The bias excludes long-range corrections; those enter reported averages only.
	delta := InsertionDelta(atomNew.Energy, s.Params.Temperature, s.Params.Activity, n)
	if !Metropolis(delta, s.RNG) {
		return false, nil
	}
	if err := s.Store.Append(ri); err != nil {
		return false, fmt.Errorf("create: %w", err)
	}
	s.Totals.Potential += atomNew.Energy
	s.Totals.Virial += atomNew.Virial
	return true, nil
}

// Destroy attempts to remove a uniformly chosen particle.
// With no particles the try is rejected without consuming random numbers.
func Destroy(s *State) (bool, error) {
	n := s.Store.Len()
	if n == 0 {
		return false, nil
	}
	i := s.RNG.Intn(n)

	atomOld := s.Potential.Single(s.Store, i, s.Store.At(i))
	if atomOld.Overlap {
		return false, fmt.Errorf("destroy: particle %d of %d: %w", i, n, ErrOverlap)
	}

	delta := DeletionDelta(atomOld.Energy, s.Params.Temperature, s.Params.Activity, n)
	if !Metropolis(delta, s.RNG) {
		return false, nil
	}
	s.Store.Remove(i)
	s.Totals.Potential -= atomOld.Energy
	s.Totals.Virial -= atomOld.Virial
	return true, nil
}
