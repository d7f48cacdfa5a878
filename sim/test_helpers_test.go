package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// ljPair returns the Lennard-Jones energy and virial of one pair at absolute distance r.
func ljPair(r float64) (energy, virial float64) {
	sr6 := math.Pow(1/r, 6)
	sr12 := sr6 * sr6
	return 4 * (sr12 - sr6), 8 * (2*sr12 - sr6)
}

// newLJState builds a State over box-relative positions with the registered
// Lennard-Jones model.
func newLJState(t *testing.T, params RunParameters, capacity int, rng RandomSource, rel ...Vec3) *State {
	t.Helper()
	pot, err := NewPotential(PotentialConfig{Name: "lj", BoxLength: params.BoxLength, CutoffRadius: params.CutoffRadius})
	require.NoError(t, err)
	s, err := NewState(params, rel, capacity, pot, rng)
	require.NoError(t, err)
	return s
}

// defaultParams is a 10-sigma box at T=1 with the standard 2.5 sigma cutoff.
func defaultParams() RunParameters {
	return NewRunParameters(10, 1.0, 0.1, 2.5, 0.2, 0.34)
}

// corruptPotential reports overlap for every evaluation of a live particle
// while leaving whole-system evaluation clean.
type corruptPotential struct{}

func (corruptPotential) Single(store *ParticleStore, i int, _ Vec3) InteractionResult {
	return InteractionResult{Overlap: i < store.Len()}
}
func (corruptPotential) Total(*ParticleStore) InteractionResult { return InteractionResult{} }
func (corruptPotential) EnergyLRC(float64) float64              { return 0 }
func (corruptPotential) PressureLRC(float64) float64            { return 0 }
func (corruptPotential) PressureDelta(float64) float64          { return 0 }

// recordingSink keeps every observable vector it is given.
type recordingSink struct {
	begun, ended []int
	obs          []Observables
}

func (r *recordingSink) BeginBlock(blk int)  { r.begun = append(r.begun, blk) }
func (r *recordingSink) Add(obs Observables) { r.obs = append(r.obs, obs) }
func (r *recordingSink) EndBlock(blk int)    { r.ended = append(r.ended, blk) }

// memWriter keeps every written configuration keyed by tag.
type memWriter struct {
	tags    []string
	configs map[string][]Vec3
	err     error
}

func (m *memWriter) WriteConfig(tag string, _ float64, positions []Vec3) error {
	if m.err != nil {
		return m.err
	}
	if m.configs == nil {
		m.configs = make(map[string][]Vec3)
	}
	m.tags = append(m.tags, tag)
	m.configs[tag] = positions
	return nil
}
