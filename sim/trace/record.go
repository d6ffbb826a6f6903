// Package trace provides dispatch-trace recording for scheduling policy runs.
// This package has no dependencies on sim/; it stores pure data types.
package trace

import "fmt"

// DispatchRecord captures a single scheduling decision: job JobID was given
// the CPU at Clock for Duration time units.
type DispatchRecord struct {
	Clock    int64 `json:"clock"`
	JobID    int   `json:"job_id"`
	Arrival  int64 `json:"arrival"`
	Duration int64 `json:"duration"`
}

// End returns the clock value at which the dispatch finished.
func (r DispatchRecord) End() int64 {
	return r.Clock + r.Duration
}

// FormatDispatch renders a record in the line format of the scheduling trace:
//
//	t=<time>: [Job <id>] arrived at [<arrival>], ran for: [<duration>]
func FormatDispatch(r DispatchRecord) string {
	return fmt.Sprintf("t=%d: [Job %d] arrived at [%d], ran for: [%d]", r.Clock, r.JobID, r.Arrival, r.Duration)
}
