package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/inference-sim/schedsim/sim"
)

// RunConfig is the YAML form of the run command's flags. Flags explicitly
// set on the command line override values from the file.
type RunConfig struct {
	Policy      string `yaml:"policy"`
	Slice       int64  `yaml:"slice"`
	Seed        int64  `yaml:"seed"`
	Workload    string `yaml:"workload"`
	Analysis    bool   `yaml:"analysis"`
	Format      string `yaml:"format"`
	TraceLevel  string `yaml:"trace_level"`
	TraceOut    string `yaml:"trace_out"`
	ResultsPath string `yaml:"results_path"`
}

// loadRunConfig parses a run config file.
// Uses strict field checking: typos must cause errors.
func loadRunConfig(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &sim.ConfigError{Field: path, Err: fmt.Errorf("reading config: %w", err)}
	}
	var cfg RunConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, &sim.ConfigError{Field: path, Err: fmt.Errorf("parsing config: %w", err)}
	}
	return &cfg, nil
}
