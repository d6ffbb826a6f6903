// Computes per-job and aggregate scheduling metrics: response, turnaround
// and wait time, from a registry whose jobs have all completed.

package sim

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
)

// JobMetrics holds the timing results for one job.
type JobMetrics struct {
	JobID      int   `json:"job_id"`
	Arrival    int64 `json:"arrival"`
	Length     int64 `json:"length"`
	Response   int64 `json:"response"`   // first dispatch - arrival
	Turnaround int64 `json:"turnaround"` // completion - arrival
	Wait       int64 `json:"wait"`       // per-policy, see WaitModel
}

// Metrics aggregates statistics about a finished policy run.
type Metrics struct {
	Policy        Policy       `json:"policy"`
	Jobs          []JobMetrics `json:"jobs"`
	AvgResponse   float64      `json:"avg_response"`
	AvgTurnaround float64      `json:"avg_turnaround"`
	AvgWait       float64      `json:"avg_wait"`
	P90Turnaround float64      `json:"p90_turnaround"`
	Makespan      int64        `json:"makespan"`   // last completion - first arrival
	Throughput    float64      `json:"throughput"` // jobs per time unit over the makespan
}

// ComputeMetrics reads a finalized registry and derives per-job metrics and
// their arithmetic means. Wait time follows the given model.
// Returns ErrNoJobs for an empty registry. Panics if any job has not
// completed, which indicates a defect in the policy that ran.
func ComputeMetrics(reg *Registry, policy Policy) (*Metrics, error) {
	if reg == nil || reg.Len() == 0 {
		return nil, ErrNoJobs
	}
	model := policy.WaitModel()
	m := &Metrics{Policy: policy, Jobs: make([]JobMetrics, 0, reg.Len())}

	responses := make([]int64, 0, reg.Len())
	turnarounds := make([]int64, 0, reg.Len())
	waits := make([]int64, 0, reg.Len())
	var firstArrival, lastCompletion int64
	for i, j := range reg.Jobs() {
		if !j.Completed || !j.Started {
			panic(fmt.Sprintf("metrics requested for unfinished job %d (%s)", j.ID, j.State()))
		}
		jm := JobMetrics{
			JobID:      j.ID,
			Arrival:    j.Arrival,
			Length:     j.Length,
			Response:   j.StartTime - j.Arrival,
			Turnaround: j.CompletionTime - j.Arrival,
		}
		switch model {
		case WaitFromResponse:
			jm.Wait = jm.Response
		case WaitFromTurnaround:
			jm.Wait = jm.Turnaround - j.Length
		case WaitAccrued:
			jm.Wait = j.AccruedWait
		default:
			panic(fmt.Sprintf("unhandled wait model %d", model))
		}
		m.Jobs = append(m.Jobs, jm)
		responses = append(responses, jm.Response)
		turnarounds = append(turnarounds, jm.Turnaround)
		waits = append(waits, jm.Wait)

		if i == 0 || j.Arrival < firstArrival {
			firstArrival = j.Arrival
		}
		lastCompletion = max(lastCompletion, j.CompletionTime)
	}

	m.AvgResponse = CalculateMean(responses)
	m.AvgTurnaround = CalculateMean(turnarounds)
	m.AvgWait = CalculateMean(waits)
	m.P90Turnaround = CalculatePercentile(turnarounds, 90)
	m.Makespan = lastCompletion - firstArrival
	if m.Makespan > 0 {
		m.Throughput = float64(len(m.Jobs)) / float64(m.Makespan)
	}
	return m, nil
}

// Print writes the per-job analysis lines and the averages line.
func (m *Metrics) Print(w io.Writer) {
	fmt.Fprintf(w, "Begin analyzing %s:\n", m.Policy)
	for _, jm := range m.Jobs {
		fmt.Fprintf(w, "Job %d -- Response time: %d  Turnaround: %d  Wait: %d\n",
			jm.JobID, jm.Response, jm.Turnaround, jm.Wait)
	}
	fmt.Fprintf(w, "Average -- Response: %.2f  Turnaround %.2f  Wait %.2f\n",
		m.AvgResponse, m.AvgTurnaround, m.AvgWait)
	fmt.Fprintf(w, "End analyzing %s.\n", m.Policy)
}

// PrintTable renders the per-job metrics as a table with an averages footer.
func (m *Metrics) PrintTable(w io.Writer) {
	rows := make([][]string, 0, len(m.Jobs))
	for _, jm := range m.Jobs {
		rows = append(rows, []string{
			strconv.Itoa(jm.JobID),
			strconv.FormatInt(jm.Arrival, 10),
			strconv.FormatInt(jm.Length, 10),
			strconv.FormatInt(jm.Response, 10),
			strconv.FormatInt(jm.Turnaround, 10),
			strconv.FormatInt(jm.Wait, 10),
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Job", "Arrival", "Length", "Response", "Turnaround", "Wait"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "Average",
		fmt.Sprintf("%.2f", m.AvgResponse),
		fmt.Sprintf("%.2f", m.AvgTurnaround),
		fmt.Sprintf("%.2f", m.AvgWait),
	})
	table.Render()
}

// SaveResults writes the metrics as indented JSON to path.
func (m *Metrics) SaveResults(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling metrics: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing metrics to %s: %w", path, err)
	}
	logrus.Debugf("Successfully wrote metrics to '%s'", path)
	return nil
}

// PrintComparison renders one row of averages per policy run.
func PrintComparison(w io.Writer, runs []*Metrics) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Policy", "Avg Response", "Avg Turnaround", "Avg Wait", "P90 Turnaround", "Makespan"})
	for _, m := range runs {
		table.Append([]string{
			string(m.Policy),
			fmt.Sprintf("%.2f", m.AvgResponse),
			fmt.Sprintf("%.2f", m.AvgTurnaround),
			fmt.Sprintf("%.2f", m.AvgWait),
			fmt.Sprintf("%.2f", m.P90Turnaround),
			strconv.FormatInt(m.Makespan, 10),
		})
	}
	table.Render()
}
