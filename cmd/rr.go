package cmd

import (
	"github.com/spf13/cobra"

	"github.com/procsim/procsim/sim"
)

func newRRCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "rr <quantum> <burst>...",
		Short: "Simulate Round-Robin scheduling with the given time quantum",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			quantum, err := parseQuantum(args[0])
			if err != nil {
				return err
			}
			bursts, err := parseBursts(args[1:])
			if err != nil {
				return err
			}
			return opts.simulate(cmd, []sim.SimConfig{sim.NewSimConfig("rr", quantum, bursts)})
		},
	}
}
