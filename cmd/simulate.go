package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/procsim/procsim/sim"
	"github.com/procsim/procsim/sim/report"
	"github.com/procsim/procsim/sim/trace"
	"github.com/procsim/procsim/tracing"
)

// simulate builds every simulator up front so invalid input fails before any
// run starts, then runs them in order and renders the results.
func (o *options) simulate(cmd *cobra.Command, configs []sim.SimConfig) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	sims := make([]*sim.Simulator, 0, len(configs))
	for _, cfg := range configs {
		if o.gantt || o.otelOut != "" {
			cfg.TraceLevel = trace.TraceLevelDispatches
		}
		s, err := sim.NewSimulator(cfg)
		if err != nil {
			return err
		}
		sims = append(sims, s)
	}

	var provider *tracing.Provider
	if o.otelOut != "" {
		var err error
		provider, err = tracing.Init("procsim", version, o.otelOut)
		if err != nil {
			return fmt.Errorf("initialising tracing: %w", err)
		}
		defer func() {
			if err := provider.Shutdown(ctx); err != nil {
				logrus.Warnf("flushing spans to %s: %v", o.otelOut, err)
			}
		}()
	}

	runs := make([]*sim.Metrics, 0, len(sims))
	for _, s := range sims {
		runs = append(runs, runTraced(ctx, s, provider != nil))
	}
	return o.render(cmd, sims, runs)
}

// runTraced runs s, wrapping it in a span when tracing is enabled.
func runTraced(ctx context.Context, s *sim.Simulator, traced bool) *sim.Metrics {
	if !traced {
		return s.Run()
	}
	_, span := tracing.StartSpan(ctx, "simulate."+s.Scheduler.Name())
	m := s.Run()
	span.WithAttributes(map[string]string{
		"run_id":    m.RunID,
		"algorithm": m.Algorithm,
		"processes": strconv.Itoa(len(m.Processes)),
	}).
		WithInt64("quantum", m.Quantum).
		WithInt64("elapsed", m.Elapsed).
		WithFloat64("average_wait", m.AverageWait)
	for _, d := range s.Trace.Dispatches {
		span.AddEvent("dispatch", map[string]int64{
			"pid":    int64(d.PID),
			"start":  d.Start,
			"amount": d.Amount,
		})
	}
	tracing.EndSpan(span, nil)
	return m
}

func (o *options) render(cmd *cobra.Command, sims []*sim.Simulator, runs []*sim.Metrics) error {
	out := cmd.OutOrStdout()
	format := report.Format(o.format)

	if format == report.FormatJSON {
		if len(runs) == 1 {
			return report.WriteJSON(out, runs[0])
		}
		return report.WriteJSON(out, runs)
	}

	for i, m := range runs {
		if i > 0 {
			fmt.Fprintln(out)
		}
		if err := report.Write(out, format, m); err != nil {
			return err
		}
		if o.gantt {
			fmt.Fprintln(out)
			if err := report.WriteGantt(out, sims[i].Trace.Slices()); err != nil {
				return err
			}
		}
	}
	if len(runs) > 1 {
		fmt.Fprintln(out)
		return report.WriteComparison(out, runs)
	}
	return nil
}
