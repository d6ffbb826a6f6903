package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/inference-sim/schedsim/sim"
	"github.com/inference-sim/schedsim/sim/trace"
)

// Output formats accepted by --format.
const (
	formatText  = "text"
	formatTable = "table"
	formatJSON  = "json"
)

var validFormats = map[string]bool{formatText: true, formatTable: true, formatJSON: true}

// writeTrace prints the dispatch trace framed by its header and footer lines.
func writeTrace(w io.Writer, policy sim.Policy, st *trace.SimulationTrace) {
	fmt.Fprintf(w, "Execution trace with %s:\n", policy)
	for _, line := range st.Lines() {
		fmt.Fprintln(w, line)
	}
	fmt.Fprintf(w, "End of execution with %s.\n", policy)
}

// writeReport renders a finished run. The trace is printed only when it was
// collected; metrics only when analysis is requested.
func writeReport(w io.Writer, res *sim.Result, analysis bool, format string) error {
	switch format {
	case formatJSON:
		out := struct {
			Policy  sim.Policy             `json:"policy"`
			Trace   []trace.DispatchRecord `json:"trace,omitempty"`
			Metrics *sim.Metrics           `json:"metrics,omitempty"`
		}{Policy: res.Policy}
		if res.Trace != nil {
			out.Trace = res.Trace.Dispatches
		}
		if analysis {
			out.Metrics = res.Metrics
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case formatTable:
		if res.Trace != nil {
			writeTrace(w, res.Policy, res.Trace)
		}
		if analysis {
			res.Metrics.PrintTable(w)
		}
		return nil
	case formatText:
		if res.Trace != nil {
			writeTrace(w, res.Policy, res.Trace)
		}
		if analysis {
			res.Metrics.Print(w)
		}
		return nil
	default:
		return &sim.ConfigError{Field: "format", Err: fmt.Errorf("unknown format %q; valid: text, table, json", format)}
	}
}
