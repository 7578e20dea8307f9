package sim

import (
	"fmt"
)

// Dispatch describes one call into RunProcess that did work.
type Dispatch struct {
	PID    int   // index of the process that ran
	Start  int64 // simulated clock when it started running
	Amount int64 // ticks actually run
}

// DispatchObserver is notified after every dispatch. It may be nil.
// Observers only see the dispatch; they never touch the ProcessTable.
type DispatchObserver func(d Dispatch)

// Scheduler drives RunProcess over a ProcessTable until every process is finished.
// Run returns the total elapsed simulated time.
type Scheduler interface {
	Name() string
	Run(pt *ProcessTable, observe DispatchObserver) int64
}

// dispatch runs one accounting step and reports it to observe.
func dispatch(pt *ProcessTable, pid int, amount, clock int64, observe DispatchObserver) int64 {
	actual := RunProcess(pt, pid, amount)
	if actual > 0 && observe != nil {
		observe(Dispatch{PID: pid, Start: clock, Amount: actual})
	}
	return actual
}

// FCFSScheduler runs processes to completion in their original order.
type FCFSScheduler struct{}

func (f *FCFSScheduler) Name() string { return "fcfs" }

// Run visits each index once, in input order. Finished processes are skipped.
func (f *FCFSScheduler) Run(pt *ProcessTable, observe DispatchObserver) int64 {
	var elapsed int64
	for i := 0; i < pt.Len(); i++ {
		if pt.Finished(i) {
			continue
		}
		// run to completion
		elapsed += dispatch(pt, i, pt.procs[i].Remaining, elapsed, observe)
	}
	return elapsed
}

// RoundRobinScheduler grants each unfinished process at most Quantum ticks per
// turn, cycling in index order until all processes are finished.
type RoundRobinScheduler struct {
	Quantum int64
}

func (r *RoundRobinScheduler) Name() string { return "rr" }

// Run is a no-op returning 0 when Quantum is not positive.
func (r *RoundRobinScheduler) Run(pt *ProcessTable, observe DispatchObserver) int64 {
	if r.Quantum <= 0 {
		return 0
	}
	var elapsed int64
	previous := -1
	for {
		next, ok := NextCandidate(previous, pt)
		if !ok {
			break // all processes finished
		}
		amount := min(pt.procs[next].Remaining, r.Quantum)
		elapsed += dispatch(pt, next, amount, elapsed, observe)
		previous = next
	}
	return elapsed
}

// NextCandidate returns the next unfinished process after previous in circular
// index order, or false when every process is finished.
// An out-of-range previous (including -1) starts the scan at index 0.
// The scan covers at most one full cycle.
func NextCandidate(previous int, pt *ProcessTable) (int, bool) {
	n := pt.Len()
	if n == 0 || pt.AllFinished() {
		return 0, false
	}
	if previous < 0 || previous >= n {
		previous = -1
	}
	for step := 1; step <= n; step++ {
		idx := (previous + step) % n
		if !pt.Finished(idx) {
			return idx, true
		}
	}
	return 0, false
}

// ValidSchedulers is the set of recognized scheduler names.
var ValidSchedulers = map[string]bool{"fcfs": true, "rr": true, "round-robin": true}

// IsValidScheduler returns true if name is a recognized scheduler.
func IsValidScheduler(name string) bool {
	return ValidSchedulers[name]
}

// NewScheduler creates a Scheduler by name.
// Valid names: "fcfs", "rr" (alias "round-robin"). Round-robin requires quantum > 0;
// quantum is ignored for FCFS.
func NewScheduler(name string, quantum int64) (Scheduler, error) {
	if !IsValidScheduler(name) {
		return nil, fmt.Errorf("%w: unknown scheduler %q", ErrInvalidInput, name)
	}
	switch name {
	case "fcfs":
		return &FCFSScheduler{}, nil
	default:
		if quantum <= 0 {
			return nil, fmt.Errorf("%w: round-robin quantum must be positive, got %d", ErrInvalidInput, quantum)
		}
		return &RoundRobinScheduler{Quantum: quantum}, nil
	}
}
