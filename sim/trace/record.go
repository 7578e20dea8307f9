// Package trace provides dispatch-trace recording for scheduling analysis.
// This package has no dependencies on sim/ — it stores pure data types.
package trace

// DispatchRecord captures a single scheduler dispatch: which process ran,
// when it started and for how long.
type DispatchRecord struct {
	Seq    int   // 0-based dispatch sequence number
	PID    int   // process index
	Start  int64 // simulated clock at dispatch
	Amount int64 // ticks actually run
}

// End returns the simulated clock when the dispatch finished.
func (r DispatchRecord) End() int64 {
	return r.Start + r.Amount
}

// Slice is a contiguous interval during which one process held the CPU.
// Consecutive dispatches of the same process are merged into one Slice.
type Slice struct {
	PID   int
	Start int64
	Stop  int64
}
