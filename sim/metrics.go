// Per-step observables and per-kind acceptance counters.

package sim

// ObservableNames lists the observable series in emission order.
var ObservableNames = []string{
	"Move ratio",
	"Create ratio",
	"Destroy ratio",
	"Density",
	"E/N (cut)",
	"P (cut)",
	"E/N (full)",
	"P (full)",
}

// Observables is the vector forwarded to the sink once per step.
type Observables struct {
	MoveRatio    float64
	CreateRatio  float64
	DestroyRatio float64
	Density      float64
	EnergyCut    float64 // energy per particle, cutoff potential, with ideal-gas term
	PressureCut  float64 // cut pressure including the cutoff-discontinuity delta
	EnergyFull   float64 // EnergyCut plus long-range correction
	PressureFull float64 // cut pressure (without delta) plus long-range correction
}

// Values returns the observables in ObservableNames order.
func (o Observables) Values() []float64 {
	return []float64{
		o.MoveRatio, o.CreateRatio, o.DestroyRatio, o.Density,
		o.EnergyCut, o.PressureCut, o.EnergyFull, o.PressureFull,
	}
}

// MoveCounters tallies tries and acceptances per move kind within one step.
type MoveCounters struct {
	Tries   [3]int
	Accepts [3]int
}

// Record counts one try of kind k.
func (c *MoveCounters) Record(k MoveKind, accepted bool) {
	c.Tries[k]++
	if accepted {
		c.Accepts[k]++
	}
}

// Ratio returns accepts/tries for kind k, or 0 when there were no tries.
func (c *MoveCounters) Ratio(k MoveKind) float64 {
	if c.Tries[k] == 0 {
		return 0
	}
	return float64(c.Accepts[k]) / float64(c.Tries[k])
}

// ComputeObservables derives the reported thermodynamic quantities from the
// current state. Moves never see the corrections applied here.
//
// With zero particles the potential contribution per particle is taken as zero.
func ComputeObservables(s *State, c *MoveCounters) Observables {
	p := s.Params
	vol := p.Volume()
	n := s.Store.Len()
	density := float64(n) / vol

	ePot := 0.0
	if n > 0 {
		ePot = s.Totals.Potential / float64(n)
	}
	eCut := ePot + 1.5*p.Temperature
	pCut := s.Totals.Virial/vol + density*p.Temperature

	return Observables{
		MoveRatio:    c.Ratio(MoveTranslate),
		CreateRatio:  c.Ratio(MoveCreate),
		DestroyRatio: c.Ratio(MoveDestroy),
		Density:      density,
		EnergyCut:    eCut,
		PressureCut:  pCut + s.Potential.PressureDelta(density),
		EnergyFull:   eCut + s.Potential.EnergyLRC(density),
		PressureFull: pCut + s.Potential.PressureLRC(density),
	}
}
