// Defines the Process record and the ProcessTable that holds every process of a single run.
// The table is built once from the burst sequence and then owned by exactly one scheduler.

package sim

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is returned when a simulation cannot be built from its input:
// an empty burst sequence, a non-positive RR quantum or an unknown scheduler.
var ErrInvalidInput = errors.New("invalid input")

// Process models one simulated process (its PCB).
type Process struct {
	ID        int   // 0-based position in the input burst sequence
	Burst     int64 // Initial CPU burst (service time)
	Remaining int64 // CPU time still owed; non-increasing, 0 when finished
	Wait      int64 // Accumulated waiting time; non-decreasing
}

// Finished reports whether the process owes no more CPU time.
// Zero and negative bursts are finished from the start.
func (p Process) Finished() bool {
	return p.Remaining <= 0
}

// This method returns a human-readable string representation of a Process.
func (p Process) String() string {
	return fmt.Sprintf("P%d: (Burst: %d, Remaining: %d, Wait: %d)", p.ID, p.Burst, p.Remaining, p.Wait)
}

// ProcessTable is the ordered, index-addressable set of processes for one run.
type ProcessTable struct {
	procs []Process
}

// NewProcessTable allocates a table with one Process per burst.
// Process i starts with Remaining = bursts[i], Wait = 0 and ID = i.
//
// The sum of positive bursts bounds the elapsed time and every Wait, so it must
// not exceed math.MaxInt64 / len(bursts); then per-run totals of Wait and
// turnaround fit in an int64 too.
func NewProcessTable(bursts []int64) (*ProcessTable, error) {
	if len(bursts) == 0 {
		return nil, fmt.Errorf("%w: at least one burst is required", ErrInvalidInput)
	}
	limit := math.MaxInt64 / int64(len(bursts))
	var total int64
	for i, b := range bursts {
		if b <= 0 {
			continue
		}
		if b > limit-total {
			return nil, fmt.Errorf("%w: burst %d (%d) pushes the total CPU time past %d for %d processes",
				ErrInvalidInput, i, b, limit, len(bursts))
		}
		total += b
	}
	procs := make([]Process, len(bursts))
	for i, b := range bursts {
		procs[i] = Process{ID: i, Burst: b, Remaining: b}
	}
	return &ProcessTable{procs: procs}, nil
}

// Len returns the number of processes in the table. Safe on a nil table.
func (pt *ProcessTable) Len() int {
	if pt == nil {
		return 0
	}
	return len(pt.procs)
}

// Process returns a copy of the process at index i.
// Panics if the table is nil or i is out of range.
func (pt *ProcessTable) Process(i int) Process {
	return pt.procs[i]
}

// Processes returns a copy of every process in table order.
func (pt *ProcessTable) Processes() []Process {
	if pt == nil {
		return nil
	}
	out := make([]Process, len(pt.procs))
	copy(out, pt.procs)
	return out
}

// Finished reports whether the process at index i is finished.
// Panics if the table is nil or i is out of range.
func (pt *ProcessTable) Finished(i int) bool {
	return pt.procs[i].Finished()
}

// AllFinished reports whether no process owes CPU time. True for a nil table.
func (pt *ProcessTable) AllFinished() bool {
	if pt == nil {
		return true
	}
	for i := range pt.procs {
		if !pt.procs[i].Finished() {
			return false
		}
	}
	return true
}

// TotalWait sums the accumulated wait of all processes. 0 for a nil table.
func (pt *ProcessTable) TotalWait() int64 {
	if pt == nil {
		return 0
	}
	var total int64
	for i := range pt.procs {
		total += pt.procs[i].Wait
	}
	return total
}

// AverageWait returns TotalWait divided by the number of processes.
func (pt *ProcessTable) AverageWait() float64 {
	if pt.Len() == 0 {
		return 0
	}
	return float64(pt.TotalWait()) / float64(len(pt.procs))
}
