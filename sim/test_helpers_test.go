package sim

import (
	"math/rand"
	"testing"
)

// mustTable builds a ProcessTable or fails the test.
func mustTable(t *testing.T, bursts ...int64) *ProcessTable {
	t.Helper()
	pt, err := NewProcessTable(bursts)
	if err != nil {
		t.Fatalf("NewProcessTable(%v): %v", bursts, err)
	}
	return pt
}

// waitsOf returns the Wait of each process in table order.
func waitsOf(pt *ProcessTable) []int64 {
	waits := make([]int64, pt.Len())
	for i, p := range pt.Processes() {
		waits[i] = p.Wait
	}
	return waits
}

// remainingOf returns the Remaining of each process in table order.
func remainingOf(pt *ProcessTable) []int64 {
	rem := make([]int64, pt.Len())
	for i, p := range pt.Processes() {
		rem[i] = p.Remaining
	}
	return rem
}

// randomBursts draws n bursts in [0, maxBurst] from rng.
func randomBursts(rng *rand.Rand, n int, maxBurst int64) []int64 {
	bursts := make([]int64, n)
	for i := range bursts {
		bursts[i] = rng.Int63n(maxBurst + 1)
	}
	return bursts
}

func sum(values []int64) int64 {
	var total int64
	for _, v := range values {
		total += v
	}
	return total
}
