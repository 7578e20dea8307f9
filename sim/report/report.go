// Package report renders simulation Metrics for the console: the plain text
// summary, a per-process table, a Gantt chart of dispatches and JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/procsim/procsim/sim"
	"github.com/procsim/procsim/sim/trace"
)

// Format selects how a run is rendered.
type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

var validFormats = map[Format]bool{FormatText: true, FormatTable: true, FormatJSON: true}

// IsValidFormat returns true if name is a recognized output format.
func IsValidFormat(name string) bool {
	return validFormats[Format(name)]
}

// Heading returns the banner line for an algorithm, e.g. "Using FCFS" or "Using RR(2).".
func Heading(m *sim.Metrics) string {
	if m.Algorithm == "rr" {
		return fmt.Sprintf("Using RR(%d).", m.Quantum)
	}
	return "Using " + strings.ToUpper(m.Algorithm)
}

// Write renders m in the given format.
func Write(w io.Writer, format Format, m *sim.Metrics) error {
	switch format {
	case FormatTable:
		return WriteTable(w, m)
	case FormatJSON:
		return WriteJSON(w, m)
	case FormatText, "":
		return WriteText(w, m)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// WriteText prints the accepted processes and the average wait time.
func WriteText(w io.Writer, m *sim.Metrics) error {
	var sb strings.Builder
	sb.WriteString(Heading(m))
	sb.WriteString("\n\n")
	for _, p := range m.Processes {
		fmt.Fprintf(&sb, "Accepted P%d: Burst %d\n", p.ID, p.Burst)
	}
	fmt.Fprintf(&sb, "Average wait time: %.2f\n", m.AverageWait)
	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteTable prints one row per process with an averages footer.
func WriteTable(w io.Writer, m *sim.Metrics) error {
	if _, err := fmt.Fprintln(w, Heading(m)); err != nil {
		return err
	}
	rows := make([][]string, 0, len(m.Processes))
	for _, p := range m.Processes {
		rows = append(rows, []string{
			fmt.Sprintf("P%d", p.ID),
			fmt.Sprint(p.Burst),
			fmt.Sprint(p.Wait),
			fmt.Sprint(p.Turnaround),
			fmt.Sprint(p.Response),
			fmt.Sprint(p.Dispatches),
		})
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Burst", "Wait", "Turnaround", "Response", "Dispatches"})
	table.AppendBulk(rows)
	table.SetFooter([]string{
		"",
		fmt.Sprintf("Elapsed\n%d", m.Elapsed),
		fmt.Sprintf("Average\n%.2f", m.AverageWait),
		fmt.Sprintf("Average\n%.2f", m.AverageTurnaround),
		fmt.Sprintf("Average\n%.2f", m.AverageResponse),
		fmt.Sprintf("Switches\n%d", m.ContextSwitches),
	})
	table.Render()
	return nil
}

// WriteJSON prints v (a *sim.Metrics or a slice of them) as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling metrics: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// WriteGantt prints a Gantt chart: a row of process labels followed by the
// start time of every slice and the final stop time.
func WriteGantt(w io.Writer, slices []trace.Slice) error {
	if len(slices) == 0 {
		_, err := fmt.Fprintln(w, "Gantt schedule: (no dispatches)")
		return err
	}
	var sb strings.Builder
	sb.WriteString("Gantt schedule\n|")
	for _, s := range slices {
		pid := fmt.Sprintf("P%d", s.PID)
		padding := strings.Repeat(" ", max(0, (8-len(pid))/2))
		sb.WriteString(padding + pid + padding + "|")
	}
	sb.WriteString("\n")
	for _, s := range slices {
		fmt.Fprintf(&sb, "%d\t", s.Start)
	}
	fmt.Fprintf(&sb, "%d\n", slices[len(slices)-1].Stop)
	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteComparison prints one row per run so algorithms can be compared on the
// same workload.
func WriteComparison(w io.Writer, runs []*sim.Metrics) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Elapsed", "Avg Wait", "Avg Turnaround", "Avg Response", "Switches"})
	for _, m := range runs {
		table.Append([]string{
			strings.TrimSuffix(strings.TrimPrefix(Heading(m), "Using "), "."),
			fmt.Sprint(m.Elapsed),
			fmt.Sprintf("%.2f", m.AverageWait),
			fmt.Sprintf("%.2f", m.AverageTurnaround),
			fmt.Sprintf("%.2f", m.AverageResponse),
			fmt.Sprint(m.ContextSwitches),
		})
	}
	table.Render()
	return nil
}
