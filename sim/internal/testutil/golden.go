// Package testutil provides shared test infrastructure for the scheduling simulator.
// It consolidates golden dataset types and assertion helpers used across
// sim/ and its sub-package tests.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenTestCase represents a single scheduling scenario from the golden dataset.
type GoldenTestCase struct {
	Name      string        `json:"name"`
	Algorithm string        `json:"algorithm"`
	Quantum   int64         `json:"quantum"`
	Bursts    []int64       `json:"bursts"`
	Metrics   GoldenMetrics `json:"metrics"`
}

// GoldenMetrics represents the expected results of a golden scenario.
type GoldenMetrics struct {
	// Exact match metrics (integers)
	Elapsed    int64   `json:"elapsed"`
	Waits      []int64 `json:"waits"`
	Responses  []int64 `json:"responses"`
	Dispatches int     `json:"dispatches"`

	// Derived floating-point metrics
	AverageWait       float64 `json:"average_wait"`
	AverageTurnaround float64 `json:"average_turnaround"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from sim/internal/testutil/ to repo root testdata/
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldendataset.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}

	return &dataset
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
