package sim

import (
	"github.com/sirupsen/logrus"

	"github.com/inference-sim/schedsim/sim/trace"
)

// LotteryScheduler draws one winning ticket per quantum among the arrived,
// incomplete jobs. Ticket ranges are laid out in registry order.
//
// Every quantum advances the clock by the full Slice and is reported as
// Slice in the trace, including a job's final quantum when less work remained.
// Jobs that were eligible but not chosen accrue Slice of wait per quantum.
type LotteryScheduler struct {
	Slice int64
	Seed  int64 // draw seed; callers normally pass LotterySeed
}

func (l *LotteryScheduler) Policy() Policy { return PolicyLottery }

func (l *LotteryScheduler) Run(reg *Registry, st *trace.SimulationTrace) {
	if l.Slice <= 0 {
		panic("LotteryScheduler: slice must be positive")
	}
	rng := NewPartitionedRNG(NewSimulationKey(l.Seed)).ForSubsystem(SubsystemLottery)

	now := reg.startClock()
	finished := 0
	for finished < reg.Len() {
		pool := l.ticketPool(reg, now)
		if pool == 0 {
			next, ok := reg.nextArrival(func(j *Job) bool { return !j.Completed && j.Arrival > now })
			if !ok {
				break
			}
			logrus.Debugf("[t=%d] no tickets in play, jumping to %d", now, next)
			now = next
			continue
		}

		winning := rng.Int63n(pool)
		winner := drawWinner(reg, now, winning)
		if winner == nil {
			panic("lottery draw landed outside every ticket range")
		}

		winner.markStarted(now)
		for _, j := range reg.Jobs() {
			if j != winner && eligible(j, now) {
				j.AccruedWait += l.Slice
			}
		}
		recordDispatch(st, now, winner, l.Slice)
		winner.Remaining -= l.Slice
		now += l.Slice
		if winner.Remaining <= 0 {
			winner.markCompleted(now)
			finished++
		}
	}
}

// ticketPool sums the tickets of every eligible job.
func (l *LotteryScheduler) ticketPool(reg *Registry, now int64) int64 {
	var pool int64
	for _, j := range reg.Jobs() {
		if eligible(j, now) {
			pool += j.Tickets
		}
	}
	return pool
}

// drawWinner returns the first eligible job, in registry order, whose
// cumulative ticket count exceeds winning.
func drawWinner(reg *Registry, now int64, winning int64) *Job {
	var counter int64
	for _, j := range reg.Jobs() {
		if !eligible(j, now) {
			continue
		}
		counter += j.Tickets
		if counter > winning {
			return j
		}
	}
	return nil
}
