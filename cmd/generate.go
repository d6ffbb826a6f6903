package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/schedsim/sim/workload"
)

var (
	genSeed             int64   // Generator seed
	genCount            int     // Number of jobs
	genStartAt          int64   // Arrival of the first job
	genInterarrivalMean float64 // Mean Poisson inter-arrival gap
	genLengthMin        int64   // Minimum job length
	genLengthMax        int64   // Maximum job length
	genOut              string  // Output path; empty writes to stdout
)

// generateCmd writes a synthetic trace with Poisson arrivals and uniform lengths
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a synthetic workload trace",
	Run: func(cmd *cobra.Command, args []string) {
		g := &workload.GeneratorSpec{
			Seed:         genSeed,
			Count:        genCount,
			StartAt:      genStartAt,
			Interarrival: workload.DistSpec{Type: "poisson", Params: map[string]float64{"mean": genInterarrivalMean}},
			Length: workload.DistSpec{Type: "uniform", Params: map[string]float64{
				"min": float64(genLengthMin), "max": float64(genLengthMax),
			}},
		}
		var w io.Writer = os.Stdout
		if genOut != "" {
			f, err := os.Create(genOut)
			if err != nil {
				logrus.Fatalf("Failed to create %s: %v", genOut, err)
			}
			defer f.Close()
			w = f
		}
		if err := executeGenerate(w, g); err != nil {
			logrus.Fatalf("%v", err)
		}
	},
}

// executeGenerate generates jobs from g and writes them as a trace.
func executeGenerate(w io.Writer, g *workload.GeneratorSpec) error {
	specs, err := workload.GenerateJobs(g)
	if err != nil {
		return err
	}
	if err := workload.WriteTrace(w, specs); err != nil {
		return fmt.Errorf("writing generated trace: %w", err)
	}
	logrus.Infof("Generated %d jobs (seed %d)", len(specs), g.Seed)
	return nil
}

func init() {
	generateCmd.Flags().Int64Var(&genSeed, "seed", 42, "Seed for workload generation")
	generateCmd.Flags().IntVar(&genCount, "count", 20, "Number of jobs")
	generateCmd.Flags().Int64Var(&genStartAt, "start-at", 0, "Arrival time of the first job")
	generateCmd.Flags().Float64Var(&genInterarrivalMean, "interarrival-mean", 5, "Mean inter-arrival gap (Poisson arrivals)")
	generateCmd.Flags().Int64Var(&genLengthMin, "length-min", 1, "Minimum job length")
	generateCmd.Flags().Int64Var(&genLengthMax, "length-max", 20, "Maximum job length")
	generateCmd.Flags().StringVar(&genOut, "out", "", "Output file (default stdout)")
}
