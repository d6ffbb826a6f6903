package workload

import (
	"path/filepath"
	"strings"

	"github.com/inference-sim/schedsim/sim"
)

// LoadJobs reads job specs from path. Files ending in .yaml or .yml are
// workload specs; anything else is parsed as a CSV trace.
// Returns *sim.EmptyWorkloadError when the source yields no jobs.
func LoadJobs(path string) ([]sim.JobSpec, error) {
	var (
		specs []sim.JobSpec
		err   error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var ws *WorkloadSpec
		ws, err = LoadWorkloadSpec(path)
		if err == nil {
			specs, err = ws.JobSpecs()
		}
	default:
		specs, err = LoadTrace(path)
	}
	if err != nil {
		return nil, err
	}
	if len(specs) == 0 {
		return nil, &sim.EmptyWorkloadError{Source: path}
	}
	return specs, nil
}

// LoadRegistry reads path and builds a registry from its jobs.
func LoadRegistry(path string) (*sim.Registry, error) {
	specs, err := LoadJobs(path)
	if err != nil {
		return nil, err
	}
	return sim.Load(specs)
}
