package sim

import (
	"math/rand"
	"testing"

	"github.com/inference-sim/schedsim/sim/trace"
)

// mustLoad builds a registry from [arrival, length] pairs.
func mustLoad(t *testing.T, jobs ...[2]int64) *Registry {
	t.Helper()
	specs := make([]JobSpec, len(jobs))
	for i, j := range jobs {
		specs[i] = JobSpec{Arrival: j[0], Length: j[1]}
	}
	reg, err := Load(specs)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return reg
}

// runPolicy runs policy p over jobs and returns the finished registry and
// its dispatch trace.
func runPolicy(t *testing.T, p Policy, slice int64, jobs ...[2]int64) (*Registry, *trace.SimulationTrace) {
	t.Helper()
	reg := mustLoad(t, jobs...)
	sched, err := NewScheduler(p, SchedulerConfig{Slice: slice, Seed: LotterySeed})
	if err != nil {
		t.Fatalf("NewScheduler(%s): %v", p, err)
	}
	st := trace.NewSimulationTrace(trace.TraceConfig{Level: trace.TraceLevelDecisions})
	sched.Run(reg, st)
	return reg, st
}

// randomWorkload draws n jobs with bursty arrivals and occasional idle gaps.
func randomWorkload(seed int64, n int) [][2]int64 {
	rng := rand.New(rand.NewSource(seed))
	jobs := make([][2]int64, n)
	var now int64
	for i := range jobs {
		if rng.Intn(4) == 0 {
			now += rng.Int63n(15)
		}
		jobs[i] = [2]int64{now, 1 + rng.Int63n(12)}
	}
	// shuffle so registry order differs from arrival order
	rng.Shuffle(len(jobs), func(i, k int) { jobs[i], jobs[k] = jobs[k], jobs[i] })
	return jobs
}
