package trace

// KindSummary counts tries and acceptances for one move kind.
type KindSummary struct {
	Tries    int
	Accepted int
}

// Ratio returns Accepted/Tries, or 0 without tries.
func (k KindSummary) Ratio() float64 {
	if k.Tries == 0 {
		return 0
	}
	return float64(k.Accepted) / float64(k.Tries)
}

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalTries int
	Accepted   int
	Rejected   int
	ByKind     map[string]KindSummary
	MinN       int
	MaxN       int
	FinalN     int
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		ByKind: make(map[string]KindSummary),
	}
	if st == nil || len(st.Moves) == 0 {
		return summary
	}

	summary.TotalTries = len(st.Moves)
	summary.MinN = st.Moves[0].N
	summary.MaxN = st.Moves[0].N
	for _, m := range st.Moves {
		k := summary.ByKind[m.Kind]
		k.Tries++
		if m.Accepted {
			k.Accepted++
			summary.Accepted++
		} else {
			summary.Rejected++
		}
		summary.ByKind[m.Kind] = k
		summary.MinN = min(summary.MinN, m.N)
		summary.MaxN = max(summary.MaxN, m.N)
	}
	summary.FinalN = st.Moves[len(st.Moves)-1].N

	return summary
}
