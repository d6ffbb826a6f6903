package sim

import (
	"github.com/sirupsen/logrus"

	"github.com/inference-sim/schedsim/sim/trace"
)

// RoundRobinScheduler grants each ready job at most one quantum per pass
// through a FIFO ready queue. Jobs arriving during a quantum queue ahead of
// the job that was just preempted.
type RoundRobinScheduler struct {
	Slice int64
}

func (rr *RoundRobinScheduler) Policy() Policy { return PolicyRoundRobin }

func (rr *RoundRobinScheduler) Run(reg *Registry, st *trace.SimulationTrace) {
	if rr.Slice <= 0 {
		panic("RoundRobinScheduler: slice must be positive")
	}
	n := reg.Len()
	enqueued := make([]bool, n)
	ready := NewReadyQueue()

	// admit enqueues, in registry order, every job that has arrived by now
	admit := func(now int64) {
		for i, j := range reg.Jobs() {
			if !enqueued[i] && j.Arrival <= now {
				enqueued[i] = true
				ready.Enqueue(i)
			}
		}
	}

	now := reg.startClock()
	finished := 0
	for finished < n {
		admit(now)

		idx, ok := ready.Dequeue()
		if !ok {
			next, pending := reg.nextArrival(func(j *Job) bool { return !enqueued[j.ID] })
			if !pending {
				break
			}
			logrus.Debugf("[t=%d] ready queue empty, jumping to %d", now, next)
			now = next
			continue
		}

		j := reg.Job(idx)
		run := min(rr.Slice, j.Remaining)
		j.markStarted(now)
		recordDispatch(st, now, j, run)
		now += run
		j.Remaining -= run

		// new arrivals go ahead of the returning job
		admit(now)

		if j.Remaining == 0 {
			j.markCompleted(now)
			finished++
		} else {
			ready.Enqueue(idx)
		}
	}
}
