package cmd

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procsim/procsim/sim"
)

func TestParseBursts(t *testing.T) {
	bursts, err := parseBursts([]string{"5", "0", "-3", "12"})
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 0, -3, 12}, bursts)
}

func TestParseBursts_Invalid(t *testing.T) {
	for _, args := range [][]string{nil, {"5", "abc"}, {"3.5"}, {"7x"}, {""}} {
		_, err := parseBursts(args)
		assert.True(t, errors.Is(err, sim.ErrInvalidInput), "args=%q err=%v", args, err)
	}
}

func TestParseQuantum(t *testing.T) {
	q, err := parseQuantum("4")
	require.NoError(t, err)
	assert.Equal(t, int64(4), q)

	for _, arg := range []string{"0", "-2", "q"} {
		_, err := parseQuantum(arg)
		assert.True(t, errors.Is(err, sim.ErrInvalidInput), "arg=%q", arg)
	}
}

func TestSeparateNumericArgs(t *testing.T) {
	root := newRootCmd(io.Discard)
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"no negatives untouched", []string{"fcfs", "5", "8"}, []string{"fcfs", "5", "8"}},
		{"negative burst", []string{"fcfs", "5", "-3", "2"}, []string{"fcfs", "--", "5", "-3", "2"}},
		{"negative quantum", []string{"rr", "-1", "5"}, []string{"rr", "--", "-1", "5"}},
		{"flags keep their values", []string{"--format", "json", "compare", "--quantum", "2", "-4", "3", "--gantt"},
			[]string{"compare", "--format", "json", "--quantum", "2", "--gantt", "--", "-4", "3"}},
		{"negative flag value is not positional", []string{"compare", "--quantum", "-2", "5"}, []string{"compare", "--quantum", "-2", "5"}},
		{"explicit separator untouched", []string{"fcfs", "--", "-3", "4"}, []string{"fcfs", "--", "-3", "4"}},
		{"equals form", []string{"--format=table", "fcfs", "-3"}, []string{"fcfs", "--format=table", "--", "-3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, separateNumericArgs(root, tt.args))
		})
	}
}
