// sim/simulator.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/zvt-sim/zvt-sim/sim/trace"
)

// ObservableSink accumulates the per-step observable stream into block averages.
type ObservableSink interface {
	BeginBlock(blk int)
	Add(obs Observables)
	EndBlock(blk int)
}

// ConfigWriter persists a configuration snapshot. Positions are box-relative
// copies; the writer owns them.
type ConfigWriter interface {
	WriteConfig(tag string, box float64, positions []Vec3) error
}

// FinalTag names the configuration written after the last block.
const FinalTag = "out"

// BlockTag names the configuration saved at the end of block blk (1-based).
// Blocks beyond 999 share one overwritten tag.
func BlockTag(blk int) string {
	if blk < 1000 {
		return fmt.Sprintf("%03d", blk)
	}
	return "sav"
}

// Simulator drives the block/step/try loop of one grand-canonical chain.
type Simulator struct {
	State *State
	// Sink receives one Observables per step; nil discards them.
	Sink ObservableSink
	// Writer receives block and final configurations; nil skips persistence.
	Writer ConfigWriter
	// Trace records every try when non-nil.
	Trace *trace.SimulationTrace
	// Log carries run-scoped fields such as the run identifier.
	Log *logrus.Entry

	// TryCount is the number of tries per step, fixed at the start of Run.
	TryCount int
	// Totals of tries and accepts per kind over the whole run.
	RunCounters MoveCounters
}

// NewSimulator wraps a prepared State.
func NewSimulator(state *State, sink ObservableSink, writer ConfigWriter) *Simulator {
	return &Simulator{
		State:  state,
		Sink:   sink,
		Writer: writer,
		Log:    logrus.NewEntry(logrus.StandardLogger()),
	}
}

// Run executes nblock blocks of nstep steps. Each step makes as many tries as
// there were particles when Run started. Any returned error is fatal: the
// chain state is not usable afterwards.
func (sim *Simulator) Run(nblock, nstep int) error {
	if nblock < 0 || nstep < 0 {
		return fmt.Errorf("nblock=%d nstep=%d must be non-negative: %w", nblock, nstep, ErrInvalidParameters)
	}
	sim.TryCount = sim.State.Store.Len()
	sim.Log.Infof("Starting %d blocks of %d steps, %d tries per step, capacity %d",
		nblock, nstep, sim.TryCount, sim.State.Store.Cap())

	for blk := 1; blk <= nblock; blk++ {
		if sim.Sink != nil {
			sim.Sink.BeginBlock(blk)
		}
		for stp := 1; stp <= nstep; stp++ {
			obs, err := sim.Step(blk, stp)
			if err != nil {
				return err
			}
			if sim.Sink != nil {
				sim.Sink.Add(obs)
			}
		}
		if sim.Sink != nil {
			sim.Sink.EndBlock(blk)
		}
		if err := sim.writeConfig(BlockTag(blk)); err != nil {
			return err
		}
		sim.Log.Infof("[block %03d] n=%d pot=%.6f vir=%.6f", blk,
			sim.State.Store.Len(), sim.State.Totals.Potential, sim.State.Totals.Virial)
	}

	recomputed, err := sim.State.Recompute()
	if err != nil {
		return &SimulationError{Check: "final configuration", Wrapped: err}
	}
	sim.Log.Infof("Final check: n=%d pot=%.6f (tracked %.6f) vir=%.6f (tracked %.6f)",
		sim.State.Store.Len(), recomputed.Potential, sim.State.Totals.Potential,
		recomputed.Virial, sim.State.Totals.Virial)
	return sim.writeConfig(FinalTag)
}

// Step performs TryCount tries and returns the step's observables.
func (sim *Simulator) Step(blk, stp int) (Observables, error) {
	var counters MoveCounters
	p := sim.State.Params
	for try := 1; try <= sim.TryCount; try++ {
		zeta := sim.State.RNG.Float64()
		var kind MoveKind
		switch {
		case zeta < p.ProbMove:
			kind = MoveTranslate
		case zeta < p.ProbMove+p.ProbCreate:
			kind = MoveCreate
		default:
			kind = MoveDestroy
		}

		accepted, err := sim.attempt(kind)
		if err != nil {
			return Observables{}, &SimulationError{
				Check: kind.String() + " kernel", Block: blk, Step: stp, Try: try, Wrapped: err,
			}
		}
		counters.Record(kind, accepted)
		sim.RunCounters.Record(kind, accepted)
		if sim.Trace != nil {
			sim.Trace.RecordMove(trace.MoveRecord{
				Block: blk, Step: stp, Try: try,
				Kind: kind.String(), Accepted: accepted, N: sim.State.Store.Len(),
			})
		}
	}
	obs := ComputeObservables(sim.State, &counters)
	sim.Log.Debugf("[block %03d step %05d] n=%d ratios=%.3f/%.3f/%.3f", blk, stp,
		sim.State.Store.Len(), obs.MoveRatio, obs.CreateRatio, obs.DestroyRatio)
	return obs, nil
}

func (sim *Simulator) attempt(kind MoveKind) (bool, error) {
	switch kind {
	case MoveTranslate:
		return Translate(sim.State)
	case MoveCreate:
		return Create(sim.State)
	default:
		return Destroy(sim.State)
	}
}

func (sim *Simulator) writeConfig(tag string) error {
	if sim.Writer == nil {
		return nil
	}
	if err := sim.Writer.WriteConfig(tag, sim.State.Params.BoxLength, sim.State.Store.Snapshot()); err != nil {
		return fmt.Errorf("writing configuration %q: %w", tag, err)
	}
	return nil
}
