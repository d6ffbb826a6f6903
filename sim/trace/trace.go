package trace

// TraceLevel controls the verbosity of dispatch tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelDecisions captures every dispatch decision.
	TraceLevelDecisions TraceLevel = "decisions"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:      true,
	TraceLevelDecisions: true,
	"":                  true, // empty defaults to decisions
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
}

// Enabled reports whether records should be collected.
func (c TraceConfig) Enabled() bool {
	return c.Level != TraceLevelNone
}

// SimulationTrace collects dispatch records during a policy run.
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

// RecordDispatch appends a dispatch record. Safe on a nil trace.
func (st *SimulationTrace) RecordDispatch(record DispatchRecord) {
	if st == nil {
		return
	}
	st.Dispatches = append(st.Dispatches, record)
}

// Len returns the number of recorded dispatches. Safe on a nil trace.
func (st *SimulationTrace) Len() int {
	if st == nil {
		return 0
	}
	return len(st.Dispatches)
}

// Lines renders every record with FormatDispatch, in recording order.
func (st *SimulationTrace) Lines() []string {
	if st == nil {
		return nil
	}
	lines := make([]string, len(st.Dispatches))
	for i, r := range st.Dispatches {
		lines[i] = FormatDispatch(r)
	}
	return lines
}
