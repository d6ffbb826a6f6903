package workload

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/inference-sim/schedsim/sim"
)

// WorkloadSpec is the YAML workload format: explicit jobs, a generator, or
// both. Explicit jobs come first in registry order.
// Loaded from YAML via LoadWorkloadSpec(path).
type WorkloadSpec struct {
	Version   string         `yaml:"version"`
	Jobs      []JobEntry     `yaml:"jobs,omitempty"`
	Generator *GeneratorSpec `yaml:"generator,omitempty"`
}

// JobEntry is one explicitly listed job.
type JobEntry struct {
	Arrival int64 `yaml:"arrival"`
	Length  int64 `yaml:"length"`
	Tickets int64 `yaml:"tickets,omitempty"` // 0 = default weight by position
}

// GeneratorSpec describes a synthetic workload.
type GeneratorSpec struct {
	Seed         int64    `yaml:"seed"`
	Count        int      `yaml:"count"`
	StartAt      int64    `yaml:"start_at,omitempty"` // arrival of the first generated job
	Interarrival DistSpec `yaml:"interarrival"`
	Length       DistSpec `yaml:"length"`
}

// DistSpec parameterizes a distribution.
type DistSpec struct {
	Type   string             `yaml:"type"`
	Params map[string]float64 `yaml:"params,omitempty"`
}

// Valid value registries.
var (
	validVersions  = map[string]bool{"": true, "1": true}
	validDistTypes = map[string]bool{
		"constant": true, "uniform": true, "exponential": true, "poisson": true, "gaussian": true,
	}
)

// LoadWorkloadSpec reads and parses a YAML workload specification file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadWorkloadSpec(path string) (*WorkloadSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &sim.ConfigError{Field: path, Err: fmt.Errorf("reading workload spec: %w", err)}
	}
	var spec WorkloadSpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, &sim.ConfigError{Field: path, Err: fmt.Errorf("parsing workload spec: %w", err)}
	}
	return &spec, nil
}

// Validate checks that all fields in the spec are valid.
func (s *WorkloadSpec) Validate() error {
	if !validVersions[s.Version] {
		return fmt.Errorf("unsupported version %q; valid: 1", s.Version)
	}
	for i, j := range s.Jobs {
		prefix := fmt.Sprintf("jobs[%d]", i)
		if j.Arrival < 0 {
			return fmt.Errorf("%s: arrival must be non-negative, got %d", prefix, j.Arrival)
		}
		if j.Length <= 0 {
			return fmt.Errorf("%s: length must be positive, got %d", prefix, j.Length)
		}
		if j.Tickets < 0 {
			return fmt.Errorf("%s: tickets must be non-negative, got %d", prefix, j.Tickets)
		}
	}
	if s.Generator != nil {
		if err := s.Generator.Validate(); err != nil {
			return fmt.Errorf("generator: %w", err)
		}
	}
	return nil
}

// Validate checks generator parameters.
func (g *GeneratorSpec) Validate() error {
	if g.Count <= 0 {
		return fmt.Errorf("count must be positive, got %d", g.Count)
	}
	if g.StartAt < 0 {
		return fmt.Errorf("start_at must be non-negative, got %d", g.StartAt)
	}
	if err := validateDistSpec("interarrival", &g.Interarrival); err != nil {
		return err
	}
	return validateDistSpec("length", &g.Length)
}

func validateDistSpec(prefix string, d *DistSpec) error {
	if !validDistTypes[d.Type] {
		return fmt.Errorf("%s: unknown distribution type %q; valid: constant, uniform, exponential, poisson, gaussian", prefix, d.Type)
	}
	for name, val := range d.Params {
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return fmt.Errorf("%s.params.%s must be a finite number, got %f", prefix, name, val)
		}
	}
	return nil
}

// JobSpecs expands the spec into loader output: explicit jobs followed by
// generated ones.
func (s *WorkloadSpec) JobSpecs() ([]sim.JobSpec, error) {
	if err := s.Validate(); err != nil {
		return nil, &sim.ConfigError{Field: "workload spec", Err: err}
	}
	specs := make([]sim.JobSpec, 0, len(s.Jobs))
	for _, j := range s.Jobs {
		specs = append(specs, sim.JobSpec{Arrival: j.Arrival, Length: j.Length, Tickets: j.Tickets})
	}
	if s.Generator != nil {
		generated, err := GenerateJobs(s.Generator)
		if err != nil {
			return nil, &sim.ConfigError{Field: "generator", Err: err}
		}
		specs = append(specs, generated...)
	}
	return specs, nil
}
