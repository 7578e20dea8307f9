// Collects per-process and aggregate statistics once a run has terminated.

package sim

// ProcessMetrics is the final record for one process.
type ProcessMetrics struct {
	ID         int   `json:"id"`
	Burst      int64 `json:"burst"`
	Wait       int64 `json:"wait"`
	Turnaround int64 `json:"turnaround"` // Wait + service time; every process arrives at 0
	Response   int64 `json:"response"`   // clock of first dispatch; 0 for processes that never ran
	Dispatches int   `json:"dispatches"`
}

// Metrics aggregates the results of one simulation run for reporting.
type Metrics struct {
	RunID     string `json:"run_id"`
	Algorithm string `json:"algorithm"`
	Quantum   int64  `json:"quantum,omitempty"`
	Elapsed   int64  `json:"elapsed"`

	Processes []ProcessMetrics `json:"processes"`

	AverageWait       float64 `json:"average_wait"`
	AverageTurnaround float64 `json:"average_turnaround"`
	AverageResponse   float64 `json:"average_response"`
	Throughput        float64 `json:"throughput"` // processes per tick

	Dispatches      int `json:"dispatches"`
	ContextSwitches int `json:"context_switches"`
}

// Bursts returns the initial burst of every process in order.
func (m *Metrics) Bursts() []int64 {
	bursts := make([]int64, len(m.Processes))
	for i, p := range m.Processes {
		bursts[i] = p.Burst
	}
	return bursts
}

// Waits returns the final wait of every process in order.
func (m *Metrics) Waits() []int64 {
	waits := make([]int64, len(m.Processes))
	for i, p := range m.Processes {
		waits[i] = p.Wait
	}
	return waits
}

func (s *Simulator) collectMetrics(elapsed int64) *Metrics {
	m := &Metrics{
		RunID:           s.RunID,
		Algorithm:       s.Scheduler.Name(),
		Elapsed:         elapsed,
		Processes:       make([]ProcessMetrics, s.table.Len()),
		ContextSwitches: s.switches,
	}
	if rr, ok := s.Scheduler.(*RoundRobinScheduler); ok {
		m.Quantum = rr.Quantum
	}

	var waitSum, turnaroundSum, responseSum int64
	for i, p := range s.table.Processes() {
		pm := ProcessMetrics{
			ID:         p.ID,
			Burst:      p.Burst,
			Wait:       p.Wait,
			Turnaround: p.Wait + max(p.Burst, 0),
			Dispatches: s.dispatches[i],
		}
		if s.firstStart[i] >= 0 {
			pm.Response = s.firstStart[i]
		}
		m.Processes[i] = pm
		m.Dispatches += pm.Dispatches

		waitSum += pm.Wait
		turnaroundSum += pm.Turnaround
		responseSum += pm.Response
	}

	n := float64(len(m.Processes))
	m.AverageWait = float64(waitSum) / n
	m.AverageTurnaround = float64(turnaroundSum) / n
	m.AverageResponse = float64(responseSum) / n
	if elapsed > 0 {
		m.Throughput = n / float64(elapsed)
	}
	return m
}
