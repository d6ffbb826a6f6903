package sim

import (
	"fmt"

	"github.com/inference-sim/schedsim/sim/trace"
)

// Policy names a scheduling discipline. Names are case-sensitive.
type Policy string

const (
	PolicyFIFO       Policy = "FIFO"
	PolicySJF        Policy = "SJF"
	PolicySTCF       Policy = "STCF"
	PolicyRoundRobin Policy = "RR"
	PolicyLottery    Policy = "LT"
)

// validPolicies is the set of recognized policy names, in presentation order.
var validPolicies = []Policy{PolicyFIFO, PolicySJF, PolicySTCF, PolicyRoundRobin, PolicyLottery}

// PolicyNames returns the recognized policy names.
func PolicyNames() []string {
	names := make([]string, len(validPolicies))
	for i, p := range validPolicies {
		names[i] = string(p)
	}
	return names
}

// ParsePolicy returns the Policy for name, or *UnknownPolicyError.
func ParsePolicy(name string) (Policy, error) {
	for _, p := range validPolicies {
		if string(p) == name {
			return p, nil
		}
	}
	return "", &UnknownPolicyError{Name: name}
}

// Preemptive reports whether the policy may interrupt a dispatched job.
func (p Policy) Preemptive() bool {
	switch p {
	case PolicySTCF, PolicyRoundRobin, PolicyLottery:
		return true
	default:
		return false
	}
}

// UsesSlice reports whether the policy reads the quantum.
func (p Policy) UsesSlice() bool {
	return p == PolicyRoundRobin || p == PolicyLottery
}

// WaitModel selects how wait time is derived for a policy's jobs.
type WaitModel int

const (
	// WaitFromResponse: a job never waits once started, so wait = response.
	WaitFromResponse WaitModel = iota
	// WaitFromTurnaround: wait = turnaround - requested length.
	WaitFromTurnaround
	// WaitAccrued: wait is the incrementally tracked AccruedWait.
	WaitAccrued
)

// WaitModel returns the wait accounting used by the policy.
func (p Policy) WaitModel() WaitModel {
	switch p {
	case PolicyRoundRobin, PolicySTCF:
		return WaitFromTurnaround
	case PolicyLottery:
		return WaitAccrued
	default:
		return WaitFromResponse
	}
}

// Scheduler runs one policy over a registry, populating each job's timing
// fields and appending one record per dispatch to st (st may be nil).
// Implementations assume a freshly loaded (or Reset) registry.
type Scheduler interface {
	Policy() Policy
	Run(reg *Registry, st *trace.SimulationTrace)
}

// SchedulerConfig carries the policy parameters.
type SchedulerConfig struct {
	Slice int64 // quantum for RR and LT (must be > 0 for those policies)
	Seed  int64 // lottery seed
}

// NewScheduler creates a Scheduler for policy p.
// Returns *ConfigError when a quantum-based policy gets a non-positive slice.
// Panics on a Policy value not produced by ParsePolicy.
func NewScheduler(p Policy, cfg SchedulerConfig) (Scheduler, error) {
	if p.UsesSlice() && cfg.Slice <= 0 {
		return nil, &ConfigError{Field: "slice", Err: fmt.Errorf("policy %s requires a positive slice, got %d", p, cfg.Slice)}
	}
	switch p {
	case PolicyFIFO:
		return &FIFOScheduler{}, nil
	case PolicySJF:
		return &SJFScheduler{}, nil
	case PolicySTCF:
		return &STCFScheduler{}, nil
	case PolicyRoundRobin:
		return &RoundRobinScheduler{Slice: cfg.Slice}, nil
	case PolicyLottery:
		return &LotteryScheduler{Slice: cfg.Slice, Seed: cfg.Seed}, nil
	default:
		panic(fmt.Sprintf("unhandled policy %q", p))
	}
}
