// sim/simulator.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/schedsim/sim/trace"
)

// SimulatorConfig selects the policy and its parameters for one run.
type SimulatorConfig struct {
	Policy Policy
	Slice  int64             // quantum for RR and LT
	Seed   int64             // lottery seed (LotterySeed unless overridden)
	Trace  trace.TraceConfig // dispatch trace collection
}

// Result is everything a finished run exposes.
type Result struct {
	Policy  Policy
	Trace   *trace.SimulationTrace // nil when tracing is disabled
	Summary *trace.TraceSummary
	Metrics *Metrics
}

// Simulator owns a registry for the duration of a policy run.
type Simulator struct {
	Config    SimulatorConfig
	Registry  *Registry
	scheduler Scheduler
}

// NewSimulator validates cfg against the policy and binds it to reg.
func NewSimulator(reg *Registry, cfg SimulatorConfig) (*Simulator, error) {
	if reg == nil || reg.Len() == 0 {
		return nil, &EmptyWorkloadError{}
	}
	if !trace.IsValidTraceLevel(string(cfg.Trace.Level)) {
		return nil, &ConfigError{Field: "trace-level", Err: fmt.Errorf("unknown trace level %q", cfg.Trace.Level)}
	}
	sched, err := NewScheduler(cfg.Policy, SchedulerConfig{Slice: cfg.Slice, Seed: cfg.Seed})
	if err != nil {
		return nil, err
	}
	return &Simulator{Config: cfg, Registry: reg, scheduler: sched}, nil
}

// Run resets the registry, replays it under the configured policy and
// aggregates metrics. Runs are independent: calling Run twice yields
// identical results.
func (s *Simulator) Run() (*Result, error) {
	s.Registry.Reset()

	var st *trace.SimulationTrace
	if s.Config.Trace.Enabled() {
		st = trace.NewSimulationTrace(s.Config.Trace)
	}

	logrus.Infof("Starting %s simulation: %d jobs, %d units of work, slice=%d",
		s.Config.Policy, s.Registry.Len(), s.Registry.TotalWork(), s.Config.Slice)
	s.scheduler.Run(s.Registry, st)

	if !s.Registry.AllCompleted() {
		panic(fmt.Sprintf("%s run ended with incomplete jobs", s.Config.Policy))
	}

	metrics, err := ComputeMetrics(s.Registry, s.Config.Policy)
	if err != nil {
		return nil, err
	}
	summary := trace.Summarize(st)
	logrus.Infof("%s simulation ended at t=%d after %d dispatches", s.Config.Policy, summary.FinalClock, summary.TotalDispatches)

	return &Result{
		Policy:  s.Config.Policy,
		Trace:   st,
		Summary: summary,
		Metrics: metrics,
	}, nil
}

// Simulate loads specs and runs them once under cfg.
func Simulate(specs []JobSpec, cfg SimulatorConfig) (*Result, error) {
	reg, err := Load(specs)
	if err != nil {
		return nil, err
	}
	s, err := NewSimulator(reg, cfg)
	if err != nil {
		return nil, err
	}
	return s.Run()
}
