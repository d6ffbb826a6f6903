package sim

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeMetrics_RoundRobin_WaitFromTurnaround(t *testing.T) {
	reg, _ := runPolicy(t, PolicyRoundRobin, 2, [2]int64{0, 5}, [2]int64{0, 3})

	m, err := ComputeMetrics(reg, PolicyRoundRobin)
	require.NoError(t, err)

	assert.Equal(t, []JobMetrics{
		{JobID: 0, Arrival: 0, Length: 5, Response: 0, Turnaround: 8, Wait: 3},
		{JobID: 1, Arrival: 0, Length: 3, Response: 2, Turnaround: 7, Wait: 4},
	}, m.Jobs)
	assert.InDelta(t, 1.0, m.AvgResponse, 1e-9)
	assert.InDelta(t, 7.5, m.AvgTurnaround, 1e-9)
	assert.InDelta(t, 3.5, m.AvgWait, 1e-9)
	assert.Equal(t, int64(8), m.Makespan)
	assert.InDelta(t, 0.25, m.Throughput, 1e-9)
}

func TestComputeMetrics_SJF_WaitEqualsResponse(t *testing.T) {
	reg, _ := runPolicy(t, PolicySJF, 0, [2]int64{0, 5}, [2]int64{0, 2})

	m, err := ComputeMetrics(reg, PolicySJF)
	require.NoError(t, err)
	for _, jm := range m.Jobs {
		assert.Equal(t, jm.Response, jm.Wait, "job %d", jm.JobID)
	}
	assert.InDelta(t, 4.5, m.AvgTurnaround, 1e-9)
}

func TestComputeMetrics_Lottery_UsesAccruedWait(t *testing.T) {
	reg, _ := runPolicy(t, PolicyLottery, 1, [2]int64{0, 1}, [2]int64{0, 1})

	m, err := ComputeMetrics(reg, PolicyLottery)
	require.NoError(t, err)
	assert.Equal(t, int64(1), m.Jobs[0].Wait+m.Jobs[1].Wait)
	for _, jm := range m.Jobs {
		assert.Equal(t, reg.Job(jm.JobID).AccruedWait, jm.Wait)
	}
}

func TestComputeMetrics_EmptyRegistry_ErrNoJobs(t *testing.T) {
	_, err := ComputeMetrics(&Registry{}, PolicyFIFO)
	assert.True(t, errors.Is(err, ErrNoJobs))
}

func TestComputeMetrics_UnfinishedJob_Panics(t *testing.T) {
	reg := mustLoad(t, [2]int64{0, 1})
	assert.Panics(t, func() { _, _ = ComputeMetrics(reg, PolicyFIFO) })
}

func TestMetrics_Print_TextFormat(t *testing.T) {
	reg, _ := runPolicy(t, PolicySJF, 0, [2]int64{0, 5}, [2]int64{0, 2})
	m, err := ComputeMetrics(reg, PolicySJF)
	require.NoError(t, err)

	var buf bytes.Buffer
	m.Print(&buf)

	assert.Equal(t, "Begin analyzing SJF:\n"+
		"Job 0 -- Response time: 2  Turnaround: 7  Wait: 2\n"+
		"Job 1 -- Response time: 0  Turnaround: 2  Wait: 0\n"+
		"Average -- Response: 1.00  Turnaround 4.50  Wait 1.00\n"+
		"End analyzing SJF.\n", buf.String())
}

func TestMetrics_PrintTable_ContainsAverages(t *testing.T) {
	reg, _ := runPolicy(t, PolicyRoundRobin, 2, [2]int64{0, 5}, [2]int64{0, 3})
	m, err := ComputeMetrics(reg, PolicyRoundRobin)
	require.NoError(t, err)

	var buf bytes.Buffer
	m.PrintTable(&buf)
	out := buf.String()
	assert.Contains(t, out, "TURNAROUND")
	assert.Contains(t, out, "7.50")
	assert.Contains(t, out, "3.50")
}

func TestMetrics_SaveResults_WritesJSON(t *testing.T) {
	reg, _ := runPolicy(t, PolicyFIFO, 0, [2]int64{0, 2}, [2]int64{1, 1})
	m, err := ComputeMetrics(reg, PolicyFIFO)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "results.json")
	require.NoError(t, m.SaveResults(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded Metrics
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, PolicyFIFO, decoded.Policy)
	assert.Equal(t, m.Jobs, decoded.Jobs)
}

func TestPrintComparison_OneRowPerPolicy(t *testing.T) {
	var runs []*Metrics
	for _, p := range []Policy{PolicyFIFO, PolicySJF} {
		reg, _ := runPolicy(t, p, 0, [2]int64{0, 5}, [2]int64{0, 2})
		m, err := ComputeMetrics(reg, p)
		require.NoError(t, err)
		runs = append(runs, m)
	}

	var buf bytes.Buffer
	PrintComparison(&buf, runs)
	assert.Contains(t, buf.String(), "FIFO")
	assert.Contains(t, buf.String(), "SJF")
}
