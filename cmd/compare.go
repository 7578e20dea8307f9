package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/procsim/procsim/sim"
)

func newCompareCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <burst>...",
		Short: "Run FCFS and Round-Robin on the same bursts and compare them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.quantum <= 0 {
				return fmt.Errorf("%w: --quantum must be positive, got %d", sim.ErrInvalidInput, opts.quantum)
			}
			bursts, err := parseBursts(args)
			if err != nil {
				return err
			}
			return opts.simulate(cmd, []sim.SimConfig{
				sim.NewSimConfig("fcfs", 0, bursts),
				sim.NewSimConfig("rr", opts.quantum, bursts),
			})
		},
	}
	cmd.Flags().Int64Var(&opts.quantum, "quantum", 0, "Round-Robin time quantum (required unless set in --config)")
	return cmd
}
