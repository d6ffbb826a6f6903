package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/schedsim/sim"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParsePositional_Valid(t *testing.T) {
	inv, err := parsePositional([]string{"1", "RR", "2", "jobs.txt"})
	require.NoError(t, err)
	assert.True(t, inv.Analysis)
	assert.Equal(t, sim.PolicyRoundRobin, inv.Policy)
	assert.Equal(t, int64(2), inv.Slice)
	assert.Equal(t, "jobs.txt", inv.TracePath)
}

func TestParsePositional_Malformed_ConfigError(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		field string
	}{
		{"too few", []string{"1", "RR", "2"}, "args"},
		{"too many", []string{"1", "RR", "2", "a", "b"}, "args"},
		{"analysis not int", []string{"yes", "RR", "2", "a"}, "analysis"},
		{"analysis out of range", []string{"2", "RR", "2", "a"}, "analysis"},
		{"slice not int", []string{"0", "RR", "two", "a"}, "slice"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parsePositional(tc.args)
			var cfgErr *sim.ConfigError
			require.True(t, errors.As(err, &cfgErr), "error = %v", err)
			assert.Equal(t, tc.field, cfgErr.Field)
		})
	}
}

func TestParsePositional_UnknownPolicy(t *testing.T) {
	_, err := parsePositional([]string{"0", "MLFQ", "2", "a"})
	var unknown *sim.UnknownPolicyError
	assert.True(t, errors.As(err, &unknown))
}

func TestRunPositional_RoundRobinWithAnalysis(t *testing.T) {
	// GIVEN a two-job trace
	path := writeTempFile(t, "jobs.txt", "0,5\n0,3\n")
	inv, err := parsePositional([]string{"1", "RR", "2", path})
	require.NoError(t, err)

	// WHEN the positional form runs
	var buf bytes.Buffer
	require.NoError(t, runPositional(&buf, inv))

	// THEN the trace is followed by the analysis block
	assert.Equal(t, "Execution trace with RR:\n"+
		"t=0: [Job 0] arrived at [0], ran for: [2]\n"+
		"t=2: [Job 1] arrived at [0], ran for: [2]\n"+
		"t=4: [Job 0] arrived at [0], ran for: [2]\n"+
		"t=6: [Job 1] arrived at [0], ran for: [1]\n"+
		"t=7: [Job 0] arrived at [0], ran for: [1]\n"+
		"End of execution with RR.\n"+
		"Begin analyzing RR:\n"+
		"Job 0 -- Response time: 0  Turnaround: 8  Wait: 3\n"+
		"Job 1 -- Response time: 2  Turnaround: 7  Wait: 4\n"+
		"Average -- Response: 1.00  Turnaround 7.50  Wait 3.50\n"+
		"End analyzing RR.\n", buf.String())
}

func TestRunPositional_NoAnalysis_TraceOnly(t *testing.T) {
	path := writeTempFile(t, "jobs.txt", "10,3\n")
	inv, err := parsePositional([]string{"0", "FIFO", "0", path})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, runPositional(&buf, inv))
	assert.Equal(t, "Execution trace with FIFO:\n"+
		"t=10: [Job 0] arrived at [10], ran for: [3]\n"+
		"End of execution with FIFO.\n", buf.String())
}

func TestRunPositional_LoadErrors(t *testing.T) {
	var buf bytes.Buffer

	missing := &invocation{Policy: sim.PolicyFIFO, TracePath: filepath.Join(t.TempDir(), "nope.txt")}
	var cfgErr *sim.ConfigError
	assert.True(t, errors.As(runPositional(&buf, missing), &cfgErr))

	empty := &invocation{Policy: sim.PolicyFIFO, TracePath: writeTempFile(t, "empty.txt", "")}
	var emptyErr *sim.EmptyWorkloadError
	assert.True(t, errors.As(runPositional(&buf, empty), &emptyErr))

	noSlice := &invocation{Policy: sim.PolicyRoundRobin, TracePath: writeTempFile(t, "one.txt", "0,1\n")}
	assert.True(t, errors.As(runPositional(&buf, noSlice), &cfgErr))

	assert.Empty(t, buf.String(), "nothing is printed when a run cannot start")
}
