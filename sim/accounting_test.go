package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunProcess_PartialRun(t *testing.T) {
	// GIVEN bursts [5, 8, 2]
	pt := mustTable(t, 5, 8, 2)

	// WHEN P0 runs for 4
	actual := RunProcess(pt, 0, 4)

	// THEN P0 owes 1 and both others waited 4
	assert.Equal(t, int64(4), actual)
	assert.Equal(t, []int64{1, 8, 2}, remainingOf(pt))
	assert.Equal(t, []int64{0, 4, 4}, waitsOf(pt))
}

func TestRunProcess_CapsAtRemaining(t *testing.T) {
	pt := mustTable(t, 3, 5)

	actual := RunProcess(pt, 0, 10)

	assert.Equal(t, int64(3), actual, "cannot run longer than the remaining burst")
	assert.Equal(t, []int64{0, 5}, remainingOf(pt))
	assert.Equal(t, []int64{0, 3}, waitsOf(pt))
}

func TestRunProcess_FinishedProcessesDoNotWait(t *testing.T) {
	// GIVEN P1 already finished
	pt := mustTable(t, 4, 0, 2)

	// WHEN P0 runs
	RunProcess(pt, 0, 2)

	// THEN only the unfinished P2 accrues wait
	assert.Equal(t, []int64{0, 0, 2}, waitsOf(pt))
}

func TestRunProcess_NoOps(t *testing.T) {
	tests := []struct {
		name    string
		current int
		amount  int64
	}{
		{"negative index", -1, 2},
		{"index past end", 3, 2},
		{"zero amount", 0, 0},
		{"negative amount", 0, -5},
		{"finished process", 1, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pt := mustTable(t, 5, 0, 2)
			before := pt.Processes()

			actual := RunProcess(pt, tt.current, tt.amount)

			assert.Equal(t, int64(0), actual)
			assert.Equal(t, before, pt.Processes(), "table must be unchanged")
		})
	}
}

func TestRunProcess_NilTable(t *testing.T) {
	assert.Equal(t, int64(0), RunProcess(nil, 0, 5))
}
