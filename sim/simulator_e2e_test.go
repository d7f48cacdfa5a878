package sim_test

import (
	"math"
	"math/rand"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zvt-sim/zvt-sim/sim"
	"github.com/zvt-sim/zvt-sim/sim/cnf"
	"github.com/zvt-sim/zvt-sim/sim/potential"
	"github.com/zvt-sim/zvt-sim/sim/stats"
)

func newChain(t *testing.T, c *cnf.Config, params sim.RunParameters, seed int64) *sim.State {
	t.Helper()
	pot, err := potential.New(sim.PotentialConfig{Name: potential.NameLennardJones, BoxLength: c.Box, CutoffRadius: params.CutoffRadius})
	require.NoError(t, err)
	rng := sim.NewPartitionedRNG(sim.NewSimulationKey(seed)).ForSubsystem(sim.SubsystemMC)
	s, err := sim.NewState(params, c.BoxUnits(), 0, pot, rng)
	require.NoError(t, err)
	return s
}

func TestRun_ZeroActivityNeverInserts(t *testing.T) {
	// GIVEN two well separated particles and z = 0
	c := &cnf.Config{Box: 10, Positions: []sim.Vec3{{0, 0, 0}, {3, 3, 3}}}
	params := sim.NewRunParameters(c.Box, 1.0, 0, 2.5, 0.2, 0.34)
	s := newChain(t, c, params, 42)
	engine := sim.NewSimulator(s, nil, nil)

	// WHEN 10000 tries run
	require.NoError(t, engine.Run(10, 500))

	// THEN no insertion was ever accepted and n never grew
	assert.Equal(t, 10*500*2, engine.RunCounters.Tries[0]+engine.RunCounters.Tries[1]+engine.RunCounters.Tries[2])
	assert.Equal(t, 0, engine.RunCounters.Accepts[sim.MoveCreate])
	assert.LessOrEqual(t, s.Store.Len(), 2)
}

func TestRun_NoStepsRoundTripsConfiguration(t *testing.T) {
	// GIVEN an input configuration on disk
	dir := t.TempDir()
	in := &cnf.Config{Box: 8, Positions: []sim.Vec3{{0.5, -1.25, 2}, {-3, 3, 1.5}, {2.5, 2.5, -2.5}}}
	require.NoError(t, cnf.Write(dir+"/cnf.inp", in))
	read, err := cnf.Read(dir + "/cnf.inp")
	require.NoError(t, err)

	params := sim.NewRunParameters(read.Box, 1.0, 0.1, 2.5, 0.15, 0.34)
	s := newChain(t, read, params, 1)
	writer := cnf.NewDirWriter(dir)

	// WHEN one block of zero steps runs
	require.NoError(t, sim.NewSimulator(s, stats.NewBlockAverages(nil), writer).Run(1, 0))

	// THEN both the block and the final file hold the input configuration
	for _, tag := range []string{"001", sim.FinalTag} {
		_, err := os.Stat(writer.Path(tag))
		require.NoError(t, err, tag)
	}
	out, err := cnf.Read(writer.Path(sim.FinalTag))
	require.NoError(t, err)
	assert.Equal(t, in.Box, out.Box)
	require.Equal(t, in.N(), out.N())
	for i := range in.Positions {
		for k := 0; k < 3; k++ {
			assert.InDelta(t, in.Positions[i][k], out.Positions[i][k], 1e-9)
		}
	}
}

func TestRun_LatticeChainStaysConsistent(t *testing.T) {
	// GIVEN a 108-atom FCC lattice at moderate density
	c, err := cnf.FCCLattice(3, 0.5)
	require.NoError(t, err)
	params := sim.NewRunParameters(c.Box, 1.0, 0.0795, 2.5, 0.15, 0.34)
	s := newChain(t, c, params, 42)
	sink := stats.NewBlockAverages(nil)

	// WHEN a short chain runs (Run itself recomputes the totals at the end)
	require.NoError(t, sim.NewSimulator(s, sink, nil).Run(3, 10))

	// THEN block averages exist and stay physical
	assert.Equal(t, 3, sink.Blocks())
	mean, _ := sink.RunAverages()
	for k, v := range mean {
		assert.False(t, math.IsNaN(v), sim.ObservableNames[k])
	}
	assert.GreaterOrEqual(t, mean[0], 0.0)
	assert.LessOrEqual(t, mean[0], 1.0)
	assert.LessOrEqual(t, s.Store.Len(), s.Store.Cap())
	_, err = s.Recompute()
	assert.NoError(t, err)
}

func TestRun_SameSeedSameChain(t *testing.T) {
	run := func() []sim.Vec3 {
		c, err := cnf.FCCLattice(2, 0.3)
		require.NoError(t, err)
		cnf.Jitter(c, 0.05, rand.New(rand.NewSource(5)))
		params := sim.NewRunParameters(c.Box, 1.5, 0.05, 2.0, 0.15, 0.34)
		s := newChain(t, c, params, 99)
		require.NoError(t, sim.NewSimulator(s, nil, nil).Run(2, 20))
		return s.Store.Snapshot()
	}

	assert.Equal(t, run(), run())
}
