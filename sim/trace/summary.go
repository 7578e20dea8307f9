package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalDispatches      int
	ContextSwitches      int // dispatches whose PID differs from the previous dispatch
	UniqueProcesses      int
	BusyTime             int64
	DispatchesPerProcess map[int]int // PID → number of dispatches
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		DispatchesPerProcess: make(map[int]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalDispatches = len(st.Dispatches)
	for i, d := range st.Dispatches {
		summary.DispatchesPerProcess[d.PID]++
		summary.BusyTime += d.Amount
		if i > 0 && st.Dispatches[i-1].PID != d.PID {
			summary.ContextSwitches++
		}
	}

	summary.UniqueProcesses = len(summary.DispatchesPerProcess)

	return summary
}
