package cmd

import (
	"github.com/spf13/cobra"

	"github.com/procsim/procsim/sim"
)

func newFCFSCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "fcfs <burst>...",
		Short: "Simulate First-Come-First-Served scheduling",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bursts, err := parseBursts(args)
			if err != nil {
				return err
			}
			return opts.simulate(cmd, []sim.SimConfig{sim.NewSimConfig("fcfs", 0, bursts)})
		},
	}
}
