package sim

import (
	"github.com/sirupsen/logrus"

	"github.com/inference-sim/schedsim/sim/trace"
)

// selectFunc picks the index of the next job among the eligible (arrived,
// incomplete) jobs, or -1 when none is eligible.
type selectFunc func(reg *Registry, now int64) int

// FIFOScheduler runs jobs to completion in order of arrival, ties broken by id.
type FIFOScheduler struct{}

func (f *FIFOScheduler) Policy() Policy { return PolicyFIFO }

func (f *FIFOScheduler) Run(reg *Registry, st *trace.SimulationTrace) {
	runToCompletion(reg, st, selectEarliestArrival)
}

// SJFScheduler runs the shortest eligible job to completion. Equal lengths
// go to the first job found in registry order.
// Warning: SJF can starve long jobs when short ones keep arriving.
type SJFScheduler struct{}

func (s *SJFScheduler) Policy() Policy { return PolicySJF }

func (s *SJFScheduler) Run(reg *Registry, st *trace.SimulationTrace) {
	runToCompletion(reg, st, selectShortest)
}

func eligible(j *Job, now int64) bool {
	return !j.Completed && j.Arrival <= now
}

func selectEarliestArrival(reg *Registry, now int64) int {
	best := -1
	for i, j := range reg.Jobs() {
		if !eligible(j, now) {
			continue
		}
		if best < 0 {
			best = i
			continue
		}
		b := reg.Job(best)
		if j.Arrival < b.Arrival || (j.Arrival == b.Arrival && j.ID < b.ID) {
			best = i
		}
	}
	return best
}

func selectShortest(reg *Registry, now int64) int {
	best := -1
	for i, j := range reg.Jobs() {
		if !eligible(j, now) {
			continue
		}
		// strict comparison keeps the first job found on ties
		if best < 0 || j.Length < reg.Job(best).Length {
			best = i
		}
	}
	return best
}

// runToCompletion is the shared non-preemptive loop: pick, run to completion,
// repeat; jump the clock over idle gaps without emitting trace entries.
func runToCompletion(reg *Registry, st *trace.SimulationTrace, pick selectFunc) {
	now := reg.startClock()
	finished := 0
	for finished < reg.Len() {
		idx := pick(reg, now)
		if idx < 0 {
			next, ok := reg.nextArrival(func(j *Job) bool { return !j.Completed })
			if !ok {
				panic("non-preemptive loop: incomplete jobs remain but none is pending arrival")
			}
			logrus.Debugf("[t=%d] idle until next arrival at %d", now, next)
			now = next
			continue
		}

		j := reg.Job(idx)
		j.markStarted(now)
		recordDispatch(st, now, j, j.Length)
		now += j.Length
		j.markCompleted(now)
		finished++
	}
}

// recordDispatch logs and records one scheduling decision.
func recordDispatch(st *trace.SimulationTrace, now int64, j *Job, duration int64) {
	logrus.Debugf("[t=%d] dispatch job %d (arrival %d) for %d", now, j.ID, j.Arrival, duration)
	st.RecordDispatch(trace.DispatchRecord{
		Clock:    now,
		JobID:    j.ID,
		Arrival:  j.Arrival,
		Duration: duration,
	})
}
