package sim_test

import (
	"fmt"
	"strings"

	"github.com/procsim/procsim/sim"
)

func ExampleRunProcess() {
	pt, _ := sim.NewProcessTable([]int64{5, 8, 2})
	sim.RunProcess(pt, 0, 4)
	for _, p := range pt.Processes() {
		fmt.Println(p)
	}
	// Output:
	// P0: (Burst: 5, Remaining: 1, Wait: 0)
	// P1: (Burst: 8, Remaining: 8, Wait: 4)
	// P2: (Burst: 2, Remaining: 2, Wait: 4)
}

func ExampleFCFSScheduler() {
	pt, _ := sim.NewProcessTable([]int64{5, 8, 2})
	elapsed := (&sim.FCFSScheduler{}).Run(pt, nil)
	fmt.Printf("elapsed=%d average wait=%.2f\n", elapsed, pt.AverageWait())
	// Output:
	// elapsed=15 average wait=6.00
}

func ExampleRoundRobinScheduler() {
	pt, _ := sim.NewProcessTable([]int64{5, 8, 2})
	rr := &sim.RoundRobinScheduler{Quantum: 2}
	var order []string
	elapsed := rr.Run(pt, func(d sim.Dispatch) {
		order = append(order, fmt.Sprintf("P%d@%d", d.PID, d.Start))
	})
	fmt.Println(strings.Join(order, " "))
	fmt.Printf("elapsed=%d average wait=%.2f\n", elapsed, pt.AverageWait())
	// Output:
	// P0@0 P1@2 P2@4 P0@6 P1@8 P0@10 P1@11 P1@13
	// elapsed=15 average wait=5.67
}
