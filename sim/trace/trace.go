package trace

// TraceLevel controls the verbosity of dispatch tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelDispatches captures every scheduler dispatch.
	TraceLevelDispatches TraceLevel = "dispatches"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:       true,
	TraceLevelDispatches: true,
	"":                   true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
}

// SimulationTrace collects dispatch records during a simulation run.
type SimulationTrace struct {
	Config     TraceConfig
	Dispatches []DispatchRecord
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(config TraceConfig) *SimulationTrace {
	return &SimulationTrace{
		Config:     config,
		Dispatches: make([]DispatchRecord, 0),
	}
}

// RecordDispatch appends a dispatch record, assigning its sequence number.
func (st *SimulationTrace) RecordDispatch(record DispatchRecord) {
	record.Seq = len(st.Dispatches)
	st.Dispatches = append(st.Dispatches, record)
}

// Slices merges back-to-back dispatches of the same process into Gantt slices.
// Safe for a nil trace.
func (st *SimulationTrace) Slices() []Slice {
	if st == nil || len(st.Dispatches) == 0 {
		return nil
	}
	slices := make([]Slice, 0, len(st.Dispatches))
	for _, d := range st.Dispatches {
		last := len(slices) - 1
		if last >= 0 && slices[last].PID == d.PID && slices[last].Stop == d.Start {
			slices[last].Stop = d.End()
			continue
		}
		slices = append(slices, Slice{PID: d.PID, Start: d.Start, Stop: d.End()})
	}
	return slices
}
