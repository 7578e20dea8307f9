package sim

// RunProcess advances simulated time by running the process at index current
// for at most amount ticks.
//
// The process's Remaining drops by the actual run time (capped at what it still
// owes), and every other unfinished process accrues the same amount of wait.
// It is a no-op returning 0 when the table is empty, current is out of range,
// amount is not positive or the process is already finished.
//
// Both schedulers are expressed purely as sequences of RunProcess calls.
func RunProcess(pt *ProcessTable, current int, amount int64) int64 {
	if pt.Len() == 0 {
		return 0
	}
	if current < 0 || current >= len(pt.procs) {
		return 0
	}
	if amount <= 0 || pt.procs[current].Finished() {
		return 0
	}

	actual := min(pt.procs[current].Remaining, amount)
	pt.procs[current].Remaining -= actual

	for i := range pt.procs {
		if i == current {
			continue
		}
		if !pt.procs[i].Finished() {
			pt.procs[i].Wait += actual
		}
	}
	return actual
}
