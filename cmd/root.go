package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/schedsim/sim"
	"github.com/inference-sim/schedsim/sim/workload"
)

var (
	logLevel string // Log verbosity level
)

// rootCmd is the base command for the CLI. Invoked with four positional
// arguments it runs one policy over a trace file:
//
//	schedsim <analysis:0|1> <policy> <slice> <trace-file>
var rootCmd = &cobra.Command{
	Use:   "schedsim <analysis:0|1> <policy> <slice> <trace-file>",
	Short: "Discrete-event simulator for CPU scheduling policies",
	Long: `Replays a fixed workload of jobs against a scheduling policy
(FIFO, SJF, STCF, RR, LT) and reports the dispatch trace and, when
analysis is 1, per-job response, turnaround and wait times.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			_ = cmd.Help()
			return
		}
		inv, err := parsePositional(args)
		if err != nil {
			fmt.Fprintln(os.Stderr, cmd.UsageString())
			logrus.Fatalf("%v", err)
		}
		if err := runPositional(os.Stdout, inv); err != nil {
			logrus.Fatalf("%v", err)
		}
	},
}

// setupLogging applies the --log flag.
func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// invocation is a validated positional command line.
type invocation struct {
	Analysis  bool
	Policy    sim.Policy
	Slice     int64
	TracePath string
}

// parsePositional validates the four positional arguments. Malformed input
// yields *sim.ConfigError, an unrecognized policy *sim.UnknownPolicyError.
func parsePositional(args []string) (*invocation, error) {
	if len(args) != 4 {
		return nil, &sim.ConfigError{Field: "args", Err: fmt.Errorf("expected 4 arguments, got %d", len(args))}
	}
	analysis, err := strconv.Atoi(args[0])
	if err != nil || (analysis != 0 && analysis != 1) {
		return nil, &sim.ConfigError{Field: "analysis", Err: fmt.Errorf("must be 0 or 1, got %q", args[0])}
	}
	policy, err := sim.ParsePolicy(args[1])
	if err != nil {
		return nil, err
	}
	slice, err := strconv.ParseInt(args[2], 10, 64)
	if err != nil {
		return nil, &sim.ConfigError{Field: "slice", Err: fmt.Errorf("must be an integer, got %q", args[2])}
	}
	return &invocation{
		Analysis:  analysis == 1,
		Policy:    policy,
		Slice:     slice,
		TracePath: args[3],
	}, nil
}

// runPositional loads the trace, runs the policy and writes the text report.
func runPositional(w io.Writer, inv *invocation) error {
	specs, err := workload.LoadJobs(inv.TracePath)
	if err != nil {
		return err
	}
	res, err := sim.Simulate(specs, sim.SimulatorConfig{
		Policy: inv.Policy,
		Slice:  inv.Slice,
		Seed:   sim.LotterySeed,
	})
	if err != nil {
		return err
	}
	return writeReport(w, res, inv.Analysis, formatText)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(generateCmd)
}
