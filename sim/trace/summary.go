package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalDispatches int
	ContextSwitches int           // consecutive dispatches of different jobs
	IdleTime        int64         // gaps between the end of one dispatch and the start of the next
	FinalClock      int64         // end of the last dispatch
	DispatchCounts  map[int]int   // job ID → number of dispatches
	RunTotals       map[int]int64 // job ID → summed durations
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		DispatchCounts: make(map[int]int),
		RunTotals:      make(map[int]int64),
	}
	if st == nil {
		return summary
	}

	summary.TotalDispatches = len(st.Dispatches)
	for i, d := range st.Dispatches {
		summary.DispatchCounts[d.JobID]++
		summary.RunTotals[d.JobID] += d.Duration
		if i > 0 {
			prev := st.Dispatches[i-1]
			if prev.JobID != d.JobID {
				summary.ContextSwitches++
			}
			if gap := d.Clock - prev.End(); gap > 0 {
				summary.IdleTime += gap
			}
		}
		summary.FinalClock = max(summary.FinalClock, d.End())
	}

	return summary
}
