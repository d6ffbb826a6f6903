package sim

import (
	"github.com/sirupsen/logrus"

	"github.com/inference-sim/schedsim/sim/trace"
)

// STCFScheduler is preemptive shortest-job-first (shortest time to completion
// first). At every arrival instant the running job is preempted only when a
// ready job has strictly less remaining work. Equal remaining work resolves
// to the lower registry index. One trace record is emitted per contiguous run
// segment.
type STCFScheduler struct{}

func (s *STCFScheduler) Policy() Policy { return PolicySTCF }

func (s *STCFScheduler) Run(reg *Registry, st *trace.SimulationTrace) {
	pending := NewJobHeap() // keyed by arrival
	for i, j := range reg.Jobs() {
		pending.Push(j.Arrival, i)
	}
	ready := NewJobHeap() // keyed by remaining work

	admit := func(now int64) {
		for {
			arrival, idx, ok := pending.Peek()
			if !ok || arrival > now {
				return
			}
			pending.Pop()
			ready.Push(reg.Job(idx).Remaining, idx)
		}
	}

	now := reg.startClock()
	finished := 0
	for finished < reg.Len() {
		admit(now)

		_, idx, ok := ready.Pop()
		if !ok {
			next, _, more := pending.Peek()
			if !more {
				break
			}
			logrus.Debugf("[t=%d] idle until next arrival at %d", now, next)
			now = next
			continue
		}

		j := reg.Job(idx)
		j.markStarted(now)
		segStart := now
		for {
			runUntil := now + j.Remaining
			if next, _, more := pending.Peek(); more && next < runUntil {
				runUntil = next
			}
			j.Remaining -= runUntil - now
			now = runUntil
			if j.Remaining == 0 {
				break
			}
			admit(now)
			if best, _, ok := ready.Peek(); ok && best < j.Remaining {
				break
			}
		}

		recordDispatch(st, segStart, j, now-segStart)
		if j.Remaining == 0 {
			j.markCompleted(now)
			finished++
		} else {
			logrus.Debugf("[t=%d] preempt job %d (remaining %d)", now, j.ID, j.Remaining)
			ready.Push(j.Remaining, idx)
		}
	}
}
