package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/procsim/procsim/sim/report"
)

const version = "0.1.0"

// missingArgumentsMessage is printed for every usage error: missing or invalid
// arguments, a non-positive quantum and unknown subcommands alike.
const missingArgumentsMessage = "ERROR: Missing arguments"

var errMissingArguments = errors.New("missing arguments")

// options holds the CLI flags shared by every subcommand.
type options struct {
	logLevel   string // Log verbosity level
	configPath string // Optional defaults YAML
	format     string // Output format: text, table or json
	gantt      bool   // Print a Gantt chart after each run
	otelOut    string // Export OpenTelemetry spans to this file
	quantum    int64  // compare: RR quantum
	workload   string // run: workload YAML path
}

// newRootCmd builds the command tree. Each call returns an independent tree so
// flag state never leaks between executions.
func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "procsim",
		Short:         "Discrete-time simulator for FCFS and Round-Robin CPU scheduling",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return errMissingArguments
		},
	}
	rootCmd.SetOut(out)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	flags.StringVar(&opts.configPath, "config", "", "Path to a defaults YAML file")
	flags.StringVar(&opts.format, "format", string(report.FormatText), "Output format (text, table, json)")
	flags.BoolVar(&opts.gantt, "gantt", false, "Print a Gantt chart of every run")
	flags.StringVar(&opts.otelOut, "otel-out", "", "Write OpenTelemetry spans for each run to this file")

	rootCmd.AddCommand(
		newFCFSCmd(opts),
		newRRCmd(opts),
		newCompareCmd(opts),
		newRunCmd(opts),
	)
	return rootCmd
}

// setup merges the defaults file into unset flags, then configures logging.
// Flags given explicitly on the command line always win over the file.
func (o *options) setup(cmd *cobra.Command) error {
	if o.configPath != "" {
		cfg, err := loadConfig(o.configPath)
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		if !flags.Changed("log") && cfg.LogLevel != "" {
			o.logLevel = cfg.LogLevel
		}
		if !flags.Changed("format") && cfg.Format != "" {
			o.format = cfg.Format
		}
		if !flags.Changed("gantt") {
			o.gantt = cfg.Gantt
		}
		if !flags.Changed("otel-out") && cfg.OtelOut != "" {
			o.otelOut = cfg.OtelOut
		}
		if flags.Lookup("quantum") != nil && !flags.Changed("quantum") && cfg.Quantum > 0 {
			o.quantum = cfg.Quantum
		}
	}

	level, err := logrus.ParseLevel(o.logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", o.logLevel, err)
	}
	logrus.SetLevel(level)

	if !report.IsValidFormat(o.format) {
		return fmt.Errorf("unknown output format %q", o.format)
	}
	return nil
}

// ExecuteArgs runs the CLI with args, writing results to out, and returns the
// process exit status.
func ExecuteArgs(args []string, out io.Writer) int {
	rootCmd := newRootCmd(out)
	rootCmd.SetArgs(separateNumericArgs(rootCmd, args))
	if err := rootCmd.Execute(); err != nil {
		logrus.Debugf("command failed: %v", err)
		fmt.Fprintln(out, missingArgumentsMessage)
		return 1
	}
	return 0
}

// Execute runs the CLI root command
func Execute() {
	os.Exit(ExecuteArgs(os.Args[1:], os.Stdout))
}
