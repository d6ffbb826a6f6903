package trace

import (
	"testing"
)

func TestSimulationTrace_RecordDispatch_AppendsRecord(t *testing.T) {
	// GIVEN a trace configured for decisions
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelDecisions})

	// WHEN a dispatch record is recorded
	st.RecordDispatch(DispatchRecord{Clock: 4, JobID: 1, Arrival: 2, Duration: 3})

	// THEN the trace contains one record with correct data
	if len(st.Dispatches) != 1 {
		t.Fatalf("expected 1 dispatch, got %d", len(st.Dispatches))
	}
	if st.Dispatches[0].JobID != 1 {
		t.Errorf("expected job 1, got %d", st.Dispatches[0].JobID)
	}
	if st.Dispatches[0].End() != 7 {
		t.Errorf("expected end 7, got %d", st.Dispatches[0].End())
	}
}

func TestSimulationTrace_NilReceiver_IsSafe(t *testing.T) {
	// GIVEN a disabled (nil) trace
	var st *SimulationTrace

	// WHEN records are pushed and read
	st.RecordDispatch(DispatchRecord{Clock: 0, JobID: 0, Duration: 1})

	// THEN nothing panics and the trace reports empty
	if st.Len() != 0 {
		t.Errorf("expected 0 records, got %d", st.Len())
	}
	if st.Lines() != nil {
		t.Error("expected nil lines for nil trace")
	}
}

func TestSimulationTrace_MultipleRecords_PreservesOrder(t *testing.T) {
	// GIVEN a trace
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelDecisions})

	// WHEN multiple records are added
	st.RecordDispatch(DispatchRecord{Clock: 0, JobID: 0, Duration: 2})
	st.RecordDispatch(DispatchRecord{Clock: 2, JobID: 1, Duration: 2})
	st.RecordDispatch(DispatchRecord{Clock: 4, JobID: 0, Duration: 1})

	// THEN order is preserved
	want := []int{0, 1, 0}
	for i, d := range st.Dispatches {
		if d.JobID != want[i] {
			t.Errorf("dispatch %d: job %d, want %d", i, d.JobID, want[i])
		}
	}
}

func TestFormatDispatch_MatchesTraceLineFormat(t *testing.T) {
	got := FormatDispatch(DispatchRecord{Clock: 10, JobID: 0, Arrival: 10, Duration: 3})
	want := "t=10: [Job 0] arrived at [10], ran for: [3]"
	if got != want {
		t.Errorf("FormatDispatch = %q, want %q", got, want)
	}
}

func TestIsValidTraceLevel_ValidLevels(t *testing.T) {
	tests := []struct {
		level string
		valid bool
	}{
		{"none", true},
		{"decisions", true},
		{"", true},
		{"detailed", false},
		{"NONE", false}, // case-sensitive
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			if got := IsValidTraceLevel(tt.level); got != tt.valid {
				t.Errorf("IsValidTraceLevel(%q) = %v, want %v", tt.level, got, tt.valid)
			}
		})
	}
}

func TestTraceConfig_Enabled(t *testing.T) {
	if (TraceConfig{Level: TraceLevelNone}).Enabled() {
		t.Error("none level must be disabled")
	}
	if !(TraceConfig{Level: ""}).Enabled() {
		t.Error("empty level must default to enabled")
	}
}
