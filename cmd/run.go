package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/procsim/procsim/sim"
	"github.com/procsim/procsim/sim/workload"
)

func newRunCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run every algorithm listed in a workload YAML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.workload == "" {
				return fmt.Errorf("%w: --workload is required", sim.ErrInvalidInput)
			}
			spec, err := workload.LoadWorkloadSpec(opts.workload)
			if err != nil {
				return err
			}
			configs, err := spec.SimConfigs()
			if err != nil {
				return err
			}
			logrus.Infof("Loaded workload %s: %d processes, algorithms=%v",
				opts.workload, len(configs[0].Bursts), spec.Algorithms)
			return opts.simulate(cmd, configs)
		},
	}
	cmd.Flags().StringVar(&opts.workload, "workload", "", "Path to a workload YAML file")
	return cmd
}
