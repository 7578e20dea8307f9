package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/procsim/procsim/sim"
)

// parseBursts converts positional arguments into burst times.
// Parsing is strict: anything that is not a base-10 integer is rejected.
func parseBursts(args []string) ([]int64, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: no bursts given", sim.ErrInvalidInput)
	}
	bursts := make([]int64, len(args))
	for i, a := range args {
		b, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: burst %d: %q is not an integer", sim.ErrInvalidInput, i, a)
		}
		bursts[i] = b
	}
	return bursts, nil
}

// parseQuantum converts a positional argument into a positive quantum.
func parseQuantum(arg string) (int64, error) {
	q, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: quantum %q is not an integer", sim.ErrInvalidInput, arg)
	}
	if q <= 0 {
		return 0, fmt.Errorf("%w: quantum must be positive, got %d", sim.ErrInvalidInput, q)
	}
	return q, nil
}

// separateNumericArgs lets negative bursts appear anywhere on the command line,
// as in `fcfs 5 -3 2`. pflag would read "-3" as a shorthand flag, so when a
// negative integer shows up before any "--", the positional arguments are moved
// behind a "--" terminator. The subcommand name stays in front and flags keep
// their values.
func separateNumericArgs(root *cobra.Command, args []string) []string {
	var flags, positional []string
	negative := false
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--":
			return args
		case isNegativeInt(a):
			negative = true
			positional = append(positional, a)
		case strings.HasPrefix(a, "-") && len(a) > 1:
			flags = append(flags, a)
			if !strings.Contains(a, "=") && takesValue(root, a) && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		default:
			positional = append(positional, a)
		}
	}
	if !negative {
		return args
	}

	out := make([]string, 0, len(args)+1)
	out = append(out, positional[0])
	out = append(out, flags...)
	out = append(out, "--")
	return append(out, positional[1:]...)
}

func isNegativeInt(s string) bool {
	if !strings.HasPrefix(s, "-") {
		return false
	}
	_, err := strconv.ParseInt(s, 10, 64)
	return err == nil
}

// takesValue reports whether a long flag anywhere in the command tree consumes
// the next argument. Shorthands are all boolean here.
func takesValue(root *cobra.Command, token string) bool {
	if !strings.HasPrefix(token, "--") {
		return false
	}
	name := strings.TrimPrefix(token, "--")
	for _, c := range append([]*cobra.Command{root}, root.Commands()...) {
		if f := c.PersistentFlags().Lookup(name); f != nil {
			return f.NoOptDefVal == ""
		}
		if f := c.Flags().Lookup(name); f != nil {
			return f.NoOptDefVal == ""
		}
	}
	return false
}
