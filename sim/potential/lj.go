package potential

import (
	"math"

	"github.com/zvt-sim/zvt-sim/sim"
)

// ljOverlapSR2 is (sigma/r)^2 at r = 0.75 sigma; closer pairs count as overlap.
const ljOverlapSR2 = 1.77

// LennardJones is the 12-6 potential in reduced units (sigma = epsilon = 1),
// truncated but not shifted at the cutoff. Energies and virials are cut;
// the corrections below restore the full-potential averages.
type LennardJones struct {
	box    float64
	rCut   float64
	rCutSq float64 // cutoff squared in box units
}

// NewLennardJones builds the model for an absolute box length and cutoff.
func NewLennardJones(box, rCut float64) *LennardJones {
	rc := rCut / box
	return &LennardJones{box: box, rCut: rCut, rCutSq: rc * rc}
}

// pair returns the un-prefactored sums (sr12 - sr6, 2 sr12 - sr6) for a
// minimum-image separation squared in box units.
func (lj *LennardJones) pair(rijSq float64) (pot, vir float64, overlap, inRange bool) {
	if rijSq >= lj.rCutSq {
		return 0, 0, false, false
	}
	sr2 := 1 / (rijSq * lj.box * lj.box)
	if sr2 > ljOverlapSR2 {
		return 0, 0, true, true
	}
	sr6 := sr2 * sr2 * sr2
	sr12 := sr6 * sr6
	return sr12 - sr6, 2*sr12 - sr6, false, true
}

func (lj *LennardJones) finish(pot, vir float64) sim.InteractionResult {
	return sim.InteractionResult{Energy: 4 * pot, Virial: 24 * vir / 3}
}

func (lj *LennardJones) Single(store *sim.ParticleStore, i int, ri sim.Vec3) sim.InteractionResult {
	var pot, vir float64
	for j, rj := range store.Live() {
		if j == i {
			continue
		}
		p, v, overlap, in := lj.pair(ri.Sub(rj).Wrap().Norm2())
		if overlap {
			return sim.InteractionResult{Overlap: true}
		}
		if in {
			pot += p
			vir += v
		}
	}
	return lj.finish(pot, vir)
}

func (lj *LennardJones) Total(store *sim.ParticleStore) sim.InteractionResult {
	var pot, vir float64
	r := store.Live()
	for i := 0; i < len(r)-1; i++ {
		for j := i + 1; j < len(r); j++ {
			p, v, overlap, in := lj.pair(r[i].Sub(r[j]).Wrap().Norm2())
			if overlap {
				return sim.InteractionResult{Overlap: true}
			}
			if in {
				pot += p
				vir += v
			}
		}
	}
	return lj.finish(pot, vir)
}

func (lj *LennardJones) EnergyLRC(density float64) float64 {
	sr3 := 1 / (lj.rCut * lj.rCut * lj.rCut)
	sr9 := sr3 * sr3 * sr3
	return math.Pi * ((8.0/9.0)*sr9 - (8.0/3.0)*sr3) * density
}

func (lj *LennardJones) PressureLRC(density float64) float64 {
	sr3 := 1 / (lj.rCut * lj.rCut * lj.rCut)
	sr9 := sr3 * sr3 * sr3
	return math.Pi * ((32.0/9.0)*sr9 - (16.0/3.0)*sr3) * density * density
}

// PressureDelta accounts for the impulsive force at the cutoff of the
// unshifted potential.
func (lj *LennardJones) PressureDelta(density float64) float64 {
	sr3 := 1 / (lj.rCut * lj.rCut * lj.rCut)
	sr9 := sr3 * sr3 * sr3
	return math.Pi * (8.0 / 3.0) * (sr9 - sr3) * density * density
}
