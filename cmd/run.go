package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/inference-sim/schedsim/sim"
	"github.com/inference-sim/schedsim/sim/trace"
	"github.com/inference-sim/schedsim/sim/workload"
)

var (
	// CLI flags for a single policy run
	runPolicyName  string // Scheduling policy
	runSlice       int64  // Quantum for RR and LT
	runSeed        int64  // Lottery seed
	runWorkload    string // Trace CSV or workload YAML
	runAnalysis    bool   // Print per-job metrics after the trace
	runFormat      string // text, table or json
	runTraceLevel  string // none or decisions
	runTraceOut    string // CSV export path for the dispatch trace
	runResultsPath string // JSON export path for metrics
	runConfigPath  string // YAML file supplying any of the above
)

// runCmd executes one policy using parameters from flags and an optional config file
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one scheduling policy over a workload",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := resolveRunConfig(cmd.Flags())
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		if err := executeRun(os.Stdout, cfg); err != nil {
			logrus.Fatalf("%v", err)
		}
		logrus.Info("Simulation complete.")
	},
}

// resolveRunConfig starts from the config file, if any, and applies every
// flag the user set explicitly. Without a config file the flag defaults apply.
func resolveRunConfig(flags *pflag.FlagSet) (*RunConfig, error) {
	cfg := &RunConfig{
		Policy:      runPolicyName,
		Slice:       runSlice,
		Seed:        runSeed,
		Workload:    runWorkload,
		Analysis:    runAnalysis,
		Format:      runFormat,
		TraceLevel:  runTraceLevel,
		TraceOut:    runTraceOut,
		ResultsPath: runResultsPath,
	}
	if runConfigPath == "" {
		return cfg, nil
	}

	fileCfg, err := loadRunConfig(runConfigPath)
	if err != nil {
		return nil, err
	}
	// zero values in the file fall back to flag defaults
	if fileCfg.Policy == "" {
		fileCfg.Policy = runPolicyName
	}
	if fileCfg.Seed == 0 {
		fileCfg.Seed = runSeed
	}
	if fileCfg.Format == "" {
		fileCfg.Format = runFormat
	}
	if fileCfg.TraceLevel == "" {
		fileCfg.TraceLevel = runTraceLevel
	}
	if flags.Changed("policy") {
		fileCfg.Policy = runPolicyName
	}
	if flags.Changed("slice") {
		fileCfg.Slice = runSlice
	}
	if flags.Changed("seed") {
		fileCfg.Seed = runSeed
	}
	if flags.Changed("workload") {
		fileCfg.Workload = runWorkload
	}
	if flags.Changed("analysis") {
		fileCfg.Analysis = runAnalysis
	}
	if flags.Changed("format") {
		fileCfg.Format = runFormat
	}
	if flags.Changed("trace-level") {
		fileCfg.TraceLevel = runTraceLevel
	}
	if flags.Changed("trace-out") {
		fileCfg.TraceOut = runTraceOut
	}
	if flags.Changed("results-path") {
		fileCfg.ResultsPath = runResultsPath
	}
	return fileCfg, nil
}

// executeRun validates cfg, runs the simulation and writes every requested output.
func executeRun(w io.Writer, cfg *RunConfig) error {
	if cfg.Workload == "" {
		return &sim.ConfigError{Field: "workload", Err: fmt.Errorf("a trace or workload file is required")}
	}
	if !validFormats[cfg.Format] {
		return &sim.ConfigError{Field: "format", Err: fmt.Errorf("unknown format %q; valid: text, table, json", cfg.Format)}
	}
	policy, err := sim.ParsePolicy(cfg.Policy)
	if err != nil {
		return err
	}
	reg, err := workload.LoadRegistry(cfg.Workload)
	if err != nil {
		return err
	}
	s, err := sim.NewSimulator(reg, sim.SimulatorConfig{
		Policy: policy,
		Slice:  cfg.Slice,
		Seed:   cfg.Seed,
		Trace:  trace.TraceConfig{Level: trace.TraceLevel(cfg.TraceLevel)},
	})
	if err != nil {
		return err
	}
	res, err := s.Run()
	if err != nil {
		return err
	}

	if err := writeReport(w, res, cfg.Analysis, cfg.Format); err != nil {
		return err
	}
	if cfg.TraceOut != "" {
		if err := exportTrace(cfg.TraceOut, res.Trace); err != nil {
			return err
		}
	}
	if cfg.ResultsPath != "" {
		if err := res.Metrics.SaveResults(cfg.ResultsPath); err != nil {
			return err
		}
	}
	return nil
}

// exportTrace writes the dispatch records to a CSV file.
func exportTrace(path string, st *trace.SimulationTrace) error {
	if st == nil {
		return &sim.ConfigError{Field: "trace-out", Err: fmt.Errorf("trace export requested with tracing disabled")}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating trace export %s: %w", path, err)
	}
	defer f.Close()
	if err := trace.ExportCSV(f, st.Dispatches); err != nil {
		return fmt.Errorf("writing trace export %s: %w", path, err)
	}
	logrus.Debugf("Wrote %d dispatch records to '%s'", st.Len(), path)
	return nil
}

func init() {
	runCmd.Flags().StringVar(&runPolicyName, "policy", string(sim.PolicyFIFO), "Scheduling policy (FIFO, SJF, STCF, RR, LT)")
	runCmd.Flags().Int64Var(&runSlice, "slice", 0, "Time quantum for RR and LT")
	runCmd.Flags().Int64Var(&runSeed, "seed", sim.LotterySeed, "Seed for lottery draws")
	runCmd.Flags().StringVar(&runWorkload, "workload", "", "Trace CSV (arrival,length per line) or workload YAML")
	runCmd.Flags().BoolVar(&runAnalysis, "analysis", false, "Print per-job and average metrics after the trace")
	runCmd.Flags().StringVar(&runFormat, "format", formatText, "Output format (text, table, json)")
	runCmd.Flags().StringVar(&runTraceLevel, "trace-level", string(trace.TraceLevelDecisions), "Trace verbosity (none, decisions)")
	runCmd.Flags().StringVar(&runTraceOut, "trace-out", "", "Write dispatch records to this CSV file")
	runCmd.Flags().StringVar(&runResultsPath, "results-path", "", "Write metrics JSON to this file")
	runCmd.Flags().StringVar(&runConfigPath, "config", "", "YAML file with run settings; explicit flags override it")
}
