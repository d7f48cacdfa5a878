package stats

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zvt-sim/zvt-sim/sim"
)

func obsWithDensity(d float64) sim.Observables {
	return sim.Observables{Density: d, MoveRatio: 0.5}
}

func TestBlockAverages_BlockMeansAndRunError(t *testing.T) {
	// GIVEN three blocks with density means 1, 2 and 3
	var buf bytes.Buffer
	b := NewBlockAverages(&buf)
	for blk, vals := range [][]float64{{0.5, 1.5}, {2, 2}, {2.5, 3.5}} {
		b.BeginBlock(blk + 1)
		for _, v := range vals {
			b.Add(obsWithDensity(v))
		}
		b.EndBlock(blk + 1)
	}

	// THEN block means are per-block averages
	require.Equal(t, 3, b.Blocks())
	assert.InDelta(t, 1.0, b.BlockMean(0, 3), 1e-12)
	assert.InDelta(t, 3.0, b.BlockMean(2, 3), 1e-12)

	// AND the run error is the standard error of the block means
	mean, stdErr := b.RunAverages()
	assert.InDelta(t, 2.0, mean[3], 1e-12)
	assert.InDelta(t, 1.0/math.Sqrt(3), stdErr[3], 1e-12)
	assert.InDelta(t, 0.5, mean[0], 1e-12)
	assert.InDelta(t, 0.0, stdErr[0], 1e-12)

	b.PrintSummary()
	out := buf.String()
	assert.Contains(t, out, "Density")
	assert.Contains(t, out, "Run avg")
	assert.Contains(t, out, "Run err")
}

func TestBlockAverages_EmptyBlocksContributeNothing(t *testing.T) {
	// GIVEN a block with no steps
	b := NewBlockAverages(nil)
	b.BeginBlock(1)
	b.EndBlock(1)

	// THEN there are no averages
	assert.Equal(t, 0, b.Blocks())
	mean, stdErr := b.RunAverages()
	assert.True(t, math.IsNaN(mean[0]))
	assert.True(t, math.IsNaN(stdErr[0]))
	b.PrintSummary() // nil writer is a no-op
}

func TestBlockAverages_SingleBlockHasNoError(t *testing.T) {
	b := NewBlockAverages(nil)
	b.BeginBlock(1)
	b.Add(obsWithDensity(0.7))
	b.EndBlock(1)

	mean, stdErr := b.RunAverages()
	assert.InDelta(t, 0.7, mean[3], 1e-12)
	assert.True(t, math.IsNaN(stdErr[3]))
}

func TestBlockAverages_BeginBlockResetsSums(t *testing.T) {
	b := NewBlockAverages(nil)
	b.BeginBlock(1)
	b.Add(obsWithDensity(10))
	b.EndBlock(1)
	b.BeginBlock(2)
	b.Add(obsWithDensity(4))
	b.EndBlock(2)

	assert.InDelta(t, 4.0, b.BlockMean(1, 3), 1e-12)
}

func TestBlockAverages_ImplementsSink(t *testing.T) {
	var _ sim.ObservableSink = NewBlockAverages(nil)
}
