package potential

import "github.com/zvt-sim/zvt-sim/sim"

// HardSphere models unit-diameter spheres: zero energy, overlap below contact.
// It has no cutoff and no corrections; virial pressure is not available from
// configurations alone, so Virial is always zero.
type HardSphere struct {
	sigmaSq float64 // diameter squared in box units
}

func NewHardSphere(box float64) *HardSphere {
	return &HardSphere{sigmaSq: 1 / (box * box)}
}

func (hs *HardSphere) Single(store *sim.ParticleStore, i int, ri sim.Vec3) sim.InteractionResult {
	for j, rj := range store.Live() {
		if j != i && ri.Sub(rj).Wrap().Norm2() < hs.sigmaSq {
			return sim.InteractionResult{Overlap: true}
		}
	}
	return sim.InteractionResult{}
}

func (hs *HardSphere) Total(store *sim.ParticleStore) sim.InteractionResult {
	r := store.Live()
	for i := 0; i < len(r)-1; i++ {
		for j := i + 1; j < len(r); j++ {
			if r[i].Sub(r[j]).Wrap().Norm2() < hs.sigmaSq {
				return sim.InteractionResult{Overlap: true}
			}
		}
	}
	return sim.InteractionResult{}
}

func (hs *HardSphere) EnergyLRC(float64) float64     { return 0 }
func (hs *HardSphere) PressureLRC(float64) float64   { return 0 }
func (hs *HardSphere) PressureDelta(float64) float64 { return 0 }
