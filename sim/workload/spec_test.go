package workload

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procsim/procsim/sim"
)

func writeTempYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "workload.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadWorkloadSpec_ExplicitBursts(t *testing.T) {
	path := writeTempYAML(t, `
algorithms: [fcfs, rr]
quantum: 2
bursts: [5, 8, 2]
`)
	spec, err := LoadWorkloadSpec(path)
	require.NoError(t, err)

	assert.Equal(t, "1", spec.Version, "empty version defaults to 1")
	assert.Equal(t, []string{"fcfs", "rr"}, spec.Algorithms)
	assert.Equal(t, int64(2), spec.Quantum)

	bursts, err := spec.Resolve()
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 8, 2}, bursts)
}

func TestLoadWorkloadSpec_UnknownFieldRejected(t *testing.T) {
	path := writeTempYAML(t, `
algorithms: [fcfs]
burst: [1, 2]
`)
	_, err := LoadWorkloadSpec(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing workload spec")
}

func TestLoadWorkloadSpec_MissingFile(t *testing.T) {
	_, err := LoadWorkloadSpec(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading workload spec")
}

func TestWorkloadSpec_Validate(t *testing.T) {
	tests := []struct {
		name string
		spec WorkloadSpec
	}{
		{"no algorithms", WorkloadSpec{Bursts: []int64{1}}},
		{"unknown algorithm", WorkloadSpec{Algorithms: []string{"sjf"}, Bursts: []int64{1}}},
		{"rr without quantum", WorkloadSpec{Algorithms: []string{"rr"}, Bursts: []int64{1}}},
		{"neither bursts nor generate", WorkloadSpec{Algorithms: []string{"fcfs"}}},
		{"both bursts and generate", WorkloadSpec{Algorithms: []string{"fcfs"}, Bursts: []int64{1}, Generate: &GenerateSpec{Count: 1, MaxBurst: 1}}},
		{"zero count", WorkloadSpec{Algorithms: []string{"fcfs"}, Generate: &GenerateSpec{Count: 0, MaxBurst: 3}}},
		{"negative min", WorkloadSpec{Algorithms: []string{"fcfs"}, Generate: &GenerateSpec{Count: 2, MinBurst: -1, MaxBurst: 3}}},
		{"max below min", WorkloadSpec{Algorithms: []string{"fcfs"}, Generate: &GenerateSpec{Count: 2, MinBurst: 4, MaxBurst: 3}}},
		{"range wider than int63", WorkloadSpec{Algorithms: []string{"fcfs"}, Generate: &GenerateSpec{Count: 2, MinBurst: 0, MaxBurst: math.MaxInt64}}},
		{"count above cap", WorkloadSpec{Algorithms: []string{"fcfs"}, Generate: &GenerateSpec{Count: maxGenerateCount + 1, MaxBurst: 3}}},
		{"bad version", WorkloadSpec{Version: "9", Algorithms: []string{"fcfs"}, Bursts: []int64{1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate()
			assert.True(t, errors.Is(err, sim.ErrInvalidInput), "got %v", err)
		})
	}
}

func TestWorkloadSpec_Resolve_GeneratedIsDeterministic(t *testing.T) {
	spec := WorkloadSpec{
		Seed:       42,
		Algorithms: []string{"fcfs"},
		Generate:   &GenerateSpec{Count: 20, MinBurst: 1, MaxBurst: 9},
	}

	first, err := spec.Resolve()
	require.NoError(t, err)
	second, err := spec.Resolve()
	require.NoError(t, err)

	assert.Equal(t, first, second, "same seed must reproduce the same bursts")
	assert.Len(t, first, 20)
	for _, b := range first {
		assert.GreaterOrEqual(t, b, int64(1))
		assert.LessOrEqual(t, b, int64(9))
	}
}

func TestWorkloadSpec_Resolve_CopiesExplicitBursts(t *testing.T) {
	spec := WorkloadSpec{Algorithms: []string{"fcfs"}, Bursts: []int64{3, 4}}
	bursts, err := spec.Resolve()
	require.NoError(t, err)
	bursts[0] = 99
	assert.Equal(t, int64(3), spec.Bursts[0])
}

func TestWorkloadSpec_SimConfigs_SharesBursts(t *testing.T) {
	spec := WorkloadSpec{Algorithms: []string{"fcfs", "rr"}, Quantum: 3, Bursts: []int64{5, 8, 2}}

	configs, err := spec.SimConfigs()
	require.NoError(t, err)

	require.Len(t, configs, 2)
	assert.Equal(t, sim.NewSimConfig("fcfs", 3, []int64{5, 8, 2}), configs[0])
	assert.Equal(t, sim.NewSimConfig("rr", 3, []int64{5, 8, 2}), configs[1])
}

func TestWorkloadSpec_Resolve_WidestRangeDoesNotPanic(t *testing.T) {
	// GIVEN a generate range the RNG cannot draw from in one call
	spec := WorkloadSpec{
		Algorithms: []string{"fcfs"},
		Generate:   &GenerateSpec{Count: 2, MinBurst: 0, MaxBurst: math.MaxInt64},
	}

	// WHEN resolving
	var bursts []int64
	var err error
	require.NotPanics(t, func() { bursts, err = spec.Resolve() })

	// THEN it is rejected as invalid input
	assert.Nil(t, bursts)
	assert.True(t, errors.Is(err, sim.ErrInvalidInput), "got %v", err)
}

func TestWorkloadSpec_Resolve_NearWidestRange(t *testing.T) {
	// GIVEN the widest range Int63n still accepts
	spec := WorkloadSpec{
		Algorithms: []string{"fcfs"},
		Generate:   &GenerateSpec{Count: 3, MinBurst: 1, MaxBurst: math.MaxInt64},
	}

	bursts, err := spec.Resolve()
	require.NoError(t, err)
	require.Len(t, bursts, 3)
	for _, b := range bursts {
		assert.GreaterOrEqual(t, b, int64(1))
	}
}
