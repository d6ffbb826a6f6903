package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/schedsim/sim"
	"github.com/inference-sim/schedsim/sim/trace"
	"github.com/inference-sim/schedsim/sim/workload"
)

var (
	compareWorkload    string // Trace CSV or workload YAML
	compareSlice       int64  // Quantum for RR and LT
	compareSeed        int64  // Lottery seed
	compareResultsPath string // JSON export path for every run's metrics
)

// compareCmd replays one workload under every policy and tabulates the averages
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run every scheduling policy over one workload and compare averages",
	Run: func(cmd *cobra.Command, args []string) {
		if err := executeCompare(os.Stdout, compareWorkload, compareSlice, compareSeed, compareResultsPath); err != nil {
			logrus.Fatalf("%v", err)
		}
	},
}

// executeCompare runs each policy in turn on the same registry.
func executeCompare(w io.Writer, path string, slice, seed int64, resultsPath string) error {
	if path == "" {
		return &sim.ConfigError{Field: "workload", Err: fmt.Errorf("a trace or workload file is required")}
	}
	reg, err := workload.LoadRegistry(path)
	if err != nil {
		return err
	}

	runs := make([]*sim.Metrics, 0, len(sim.PolicyNames()))
	for _, name := range sim.PolicyNames() {
		policy := sim.Policy(name)
		s, err := sim.NewSimulator(reg, sim.SimulatorConfig{
			Policy: policy,
			Slice:  slice,
			Seed:   seed,
			Trace:  trace.TraceConfig{Level: trace.TraceLevelNone},
		})
		if err != nil {
			return fmt.Errorf("%s: %w", policy, err)
		}
		res, err := s.Run()
		if err != nil {
			return fmt.Errorf("%s: %w", policy, err)
		}
		runs = append(runs, res.Metrics)
	}
	sim.PrintComparison(w, runs)

	if resultsPath != "" {
		data, err := json.MarshalIndent(runs, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling comparison: %w", err)
		}
		if err := os.WriteFile(resultsPath, data, 0644); err != nil {
			return fmt.Errorf("writing comparison to %s: %w", resultsPath, err)
		}
	}
	return nil
}

func init() {
	compareCmd.Flags().StringVar(&compareWorkload, "workload", "", "Trace CSV (arrival,length per line) or workload YAML")
	compareCmd.Flags().Int64Var(&compareSlice, "slice", 2, "Time quantum for RR and LT")
	compareCmd.Flags().Int64Var(&compareSeed, "seed", sim.LotterySeed, "Seed for lottery draws")
	compareCmd.Flags().StringVar(&compareResultsPath, "results-path", "", "Write every run's metrics as a JSON array to this file")
}
