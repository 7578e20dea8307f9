package sim

import "github.com/procsim/procsim/sim/trace"

// SimConfig groups everything needed to build one simulation run.
type SimConfig struct {
	Algorithm  string           // "fcfs" or "rr" (alias "round-robin")
	Quantum    int64            // time slice for round-robin (must be > 0 for rr; ignored for fcfs)
	Bursts     []int64          // CPU burst per process, in arrival order (at least one)
	TraceLevel trace.TraceLevel // "none" (default) or "dispatches"
}

// NewSimConfig creates a SimConfig with tracing disabled.
func NewSimConfig(algorithm string, quantum int64, bursts []int64) SimConfig {
	return SimConfig{
		Algorithm:  algorithm,
		Quantum:    quantum,
		Bursts:     bursts,
		TraceLevel: trace.TraceLevelNone,
	}
}
