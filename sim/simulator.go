// Drives a single scheduling run: builds the ProcessTable, hands it to one
// Scheduler and collects dispatch bookkeeping for the final Metrics.

package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/procsim/procsim/sim/internal/idgen"
	"github.com/procsim/procsim/sim/trace"
)

// Simulator owns the ProcessTable for one run and the scheduler driving it.
type Simulator struct {
	RunID     string
	Config    SimConfig
	Scheduler Scheduler
	Trace     *trace.SimulationTrace // nil unless TraceLevel is "dispatches"

	table      *ProcessTable
	firstStart []int64 // clock of each process's first dispatch, -1 if never run
	dispatches []int   // dispatches per process
	switches   int
	lastPID    int
	metrics    *Metrics
}

// NewSimulator validates cfg and allocates the ProcessTable.
// All validation happens here; no state exists if an error is returned.
func NewSimulator(cfg SimConfig) (*Simulator, error) {
	if !trace.IsValidTraceLevel(string(cfg.TraceLevel)) {
		return nil, fmt.Errorf("%w: unknown trace level %q", ErrInvalidInput, cfg.TraceLevel)
	}
	scheduler, err := NewScheduler(cfg.Algorithm, cfg.Quantum)
	if err != nil {
		return nil, err
	}
	table, err := NewProcessTable(cfg.Bursts)
	if err != nil {
		return nil, err
	}

	s := &Simulator{
		RunID:      idgen.New(),
		Config:     cfg,
		Scheduler:  scheduler,
		table:      table,
		firstStart: make([]int64, table.Len()),
		dispatches: make([]int, table.Len()),
		lastPID:    -1,
	}
	for i := range s.firstStart {
		s.firstStart[i] = -1
	}
	if cfg.TraceLevel == trace.TraceLevelDispatches {
		s.Trace = trace.NewSimulationTrace(trace.TraceConfig{Level: cfg.TraceLevel})
	}
	return s, nil
}

// Table exposes the ProcessTable for read-only inspection after Run.
func (s *Simulator) Table() *ProcessTable {
	return s.table
}

// Run executes the scheduler to termination and returns the final metrics.
// A Simulator runs once; later calls return the same Metrics.
func (s *Simulator) Run() *Metrics {
	if s.metrics != nil {
		return s.metrics
	}
	logrus.Infof("Starting %s simulation %s with %d processes, quantum=%d",
		s.Scheduler.Name(), s.RunID, s.table.Len(), s.Config.Quantum)

	elapsed := s.Scheduler.Run(s.table, s.observe)

	s.metrics = s.collectMetrics(elapsed)
	logrus.Infof("Simulation %s complete: elapsed=%d ticks, average wait=%.2f",
		s.RunID, elapsed, s.metrics.AverageWait)
	return s.metrics
}

func (s *Simulator) observe(d Dispatch) {
	logrus.Debugf("<< Dispatch: P%d at %d ticks for %d ticks", d.PID, d.Start, d.Amount)

	if s.firstStart[d.PID] < 0 {
		s.firstStart[d.PID] = d.Start
	}
	s.dispatches[d.PID]++
	if s.lastPID >= 0 && s.lastPID != d.PID {
		s.switches++
	}
	s.lastPID = d.PID

	if s.Trace != nil {
		s.Trace.RecordDispatch(trace.DispatchRecord{PID: d.PID, Start: d.Start, Amount: d.Amount})
	}
}
