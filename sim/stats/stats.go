// Package stats accumulates the per-step observable stream into block and run
// averages. Run errors are standard errors of the block means.
package stats

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"

	"github.com/zvt-sim/zvt-sim/sim"
)

// BlockAverages implements sim.ObservableSink.
type BlockAverages struct {
	Names []string

	out        io.Writer
	sums       []float64
	steps      int
	blockMeans [][]float64 // one row per completed block with at least one step
}

// NewBlockAverages prints one row per block to out; nil out disables printing.
func NewBlockAverages(out io.Writer) *BlockAverages {
	return &BlockAverages{
		Names: sim.ObservableNames,
		out:   out,
		sums:  make([]float64, len(sim.ObservableNames)),
	}
}

func (b *BlockAverages) BeginBlock(blk int) {
	for i := range b.sums {
		b.sums[i] = 0
	}
	b.steps = 0
	if blk == 1 {
		b.printHeader()
	}
}

func (b *BlockAverages) Add(obs sim.Observables) {
	for i, v := range obs.Values() {
		b.sums[i] += v
	}
	b.steps++
}

// EndBlock closes block blk. A block without steps contributes nothing.
func (b *BlockAverages) EndBlock(blk int) {
	if b.steps == 0 {
		logrus.Debugf("block %d had no steps; nothing averaged", blk)
		return
	}
	means := make([]float64, len(b.sums))
	for i, s := range b.sums {
		means[i] = s / float64(b.steps)
	}
	b.blockMeans = append(b.blockMeans, means)
	b.printRow(fmt.Sprintf("%8d", blk), means)
}

// Blocks returns the number of averaged blocks.
func (b *BlockAverages) Blocks() int { return len(b.blockMeans) }

// BlockMean returns the mean of series k over block index i (0-based).
func (b *BlockAverages) BlockMean(i, k int) float64 { return b.blockMeans[i][k] }

// RunAverages returns the mean over blocks of every series and the standard
// error of that mean. With no blocks all values are NaN; with one block the
// errors are NaN.
func (b *BlockAverages) RunAverages() (mean, stdErr []float64) {
	mean = make([]float64, len(b.Names))
	stdErr = make([]float64, len(b.Names))
	nb := len(b.blockMeans)
	col := make([]float64, nb)
	for k := range b.Names {
		if nb == 0 {
			mean[k], stdErr[k] = math.NaN(), math.NaN()
			continue
		}
		for i, row := range b.blockMeans {
			col[i] = row[k]
		}
		if nb == 1 {
			mean[k], stdErr[k] = col[0], math.NaN()
			continue
		}
		m, sd := stat.MeanStdDev(col, nil)
		mean[k], stdErr[k] = m, sd/math.Sqrt(float64(nb))
	}
	return mean, stdErr
}

// PrintSummary writes run averages and errors below the block table.
func (b *BlockAverages) PrintSummary() {
	if b.out == nil {
		return
	}
	mean, stdErr := b.RunAverages()
	fmt.Fprintln(b.out, strings.Repeat("-", 8+16*len(b.Names)))
	b.printRow("Run avg", mean)
	b.printRow("Run err", stdErr)
}

func (b *BlockAverages) printHeader() {
	if b.out == nil {
		return
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%8s", "Block")
	for _, name := range b.Names {
		fmt.Fprintf(&sb, "%16s", name)
	}
	fmt.Fprintln(b.out, sb.String())
	fmt.Fprintln(b.out, strings.Repeat("-", 8+16*len(b.Names)))
}

func (b *BlockAverages) printRow(label string, vals []float64) {
	if b.out == nil {
		return
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%8s", label)
	for _, v := range vals {
		fmt.Fprintf(&sb, "%16.6f", v)
	}
	fmt.Fprintln(b.out, sb.String())
}
