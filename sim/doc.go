// Package sim provides the core discrete-time CPU scheduling simulator.
//
// # Reading Guide
//
// Start with these four files to understand the simulation kernel:
//   - process.go: Process records and the ProcessTable owned by one run
//   - accounting.go: RunProcess, the single primitive that advances time
//   - scheduler.go: FCFS and Round-Robin, both driving RunProcess
//   - simulator.go: validation, the run itself, dispatch bookkeeping
//
// # Architecture
//
// The sim package defines the data model and the schedulers; supporting code
// lives in sub-packages:
//   - sim/trace/: Dispatch trace recording and Gantt slices
//   - sim/report/: Console, table, Gantt and JSON rendering of Metrics
//   - sim/workload/: YAML workload specs and seeded burst generation
//
// # Time Model
//
// All processes arrive at time 0. Time advances only inside RunProcess: the
// running process loses the executed amount from Remaining and every other
// unfinished process gains the same amount of Wait. A process is finished once
// Remaining <= 0, so zero and negative bursts never run and never wait.
//
// Everything here runs on a single goroutine and nothing blocks.
package sim
