package sim

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoJobs is returned when metrics are requested over an empty registry.
var ErrNoJobs = errors.New("no jobs to aggregate")

// ConfigError reports unusable input: a missing or unreadable trace, a
// malformed trace line, malformed CLI arguments or an invalid job spec.
// Always fatal before any simulation runs.
type ConfigError struct {
	Field string // offending argument, file or field (may be empty)
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("config: %v", e.Err)
	}
	return fmt.Sprintf("config: %s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// EmptyWorkloadError reports a workload that yielded zero jobs.
type EmptyWorkloadError struct {
	Source string // trace path, if known
}

func (e *EmptyWorkloadError) Error() string {
	if e.Source == "" {
		return "workload is empty"
	}
	return fmt.Sprintf("workload %s is empty", e.Source)
}

// UnknownPolicyError reports a policy name that is not recognized.
type UnknownPolicyError struct {
	Name string
}

func (e *UnknownPolicyError) Error() string {
	return fmt.Sprintf("unknown policy %q; valid: %s", e.Name, strings.Join(PolicyNames(), ", "))
}
