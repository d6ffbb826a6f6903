// Package testutil provides shared test infrastructure for the scheduling
// simulator: the golden dataset types and assertion helpers used by sim/
// and cmd/ test packages.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenTestCase is one hand-verified policy run: a workload, the exact
// trace it must produce and the metrics derived from it.
type GoldenTestCase struct {
	Name    string        `json:"name"`
	Policy  string        `json:"policy"`
	Slice   int64         `json:"slice"`
	Jobs    [][2]int64    `json:"jobs"` // [arrival, length] in registry order
	Trace   []string      `json:"trace"`
	Metrics GoldenMetrics `json:"metrics"`
}

// GoldenJobMetrics is the expected timing of one job.
type GoldenJobMetrics struct {
	Response   int64 `json:"response"`
	Turnaround int64 `json:"turnaround"`
	Wait       int64 `json:"wait"`
}

// GoldenMetrics represents the expected metrics from a golden test case.
type GoldenMetrics struct {
	Jobs          []GoldenJobMetrics `json:"jobs"`
	AvgResponse   float64            `json:"avg_response"`
	AvgTurnaround float64            `json:"avg_turnaround"`
	AvgWait       float64            `json:"avg_wait"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from sim/internal/testutil/ to repo root testdata/
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldendataset.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}

	return &dataset
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
