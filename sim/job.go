// Defines the Job struct that models one workload unit in the simulation,
// and the Registry that owns the closed set of jobs for a run.

package sim

import (
	"fmt"
)

// DefaultTicketStep is the lottery weight increment between consecutive jobs.
// Job i (0-based, registry order) receives (i+1)*DefaultTicketStep tickets
// unless its JobSpec carries an explicit weight.
const DefaultTicketStep int64 = 100

// JobState represents the lifecycle state of a job.
type JobState string

const (
	JobPending   JobState = "pending"   // not yet arrived, or arrived but never dispatched
	JobStarted   JobState = "started"   // dispatched at least once, work outstanding
	JobCompleted JobState = "completed" // all work consumed
)

// JobSpec is the loader-facing description of a job before ids are assigned.
type JobSpec struct {
	Arrival int64 // time unit at which the job becomes eligible
	Length  int64 // total required execution time (> 0)
	Tickets int64 // lottery weight; 0 = assign default by registry position
}

// Job models a single job's lifecycle in the simulation.
type Job struct {
	ID      int   // 0..N-1, assigned in registry (input) order
	Arrival int64 // time unit at which the job becomes eligible to run
	Length  int64 // originally requested execution time; never mutated
	Tickets int64 // lottery weight

	Remaining      int64 // outstanding work; decremented by preemptive policies
	Completed      bool  // true once all work has been consumed
	Started        bool  // tracks whether StartTime has been set
	StartTime      int64 // time of first dispatch (valid only when Started)
	CompletionTime int64 // time at which the last unit of work finished
	AccruedWait    int64 // eligible-but-not-chosen time; maintained by Lottery only
}

// State reports the job's lifecycle state.
func (j *Job) State() JobState {
	switch {
	case j.Completed:
		return JobCompleted
	case j.Started:
		return JobStarted
	default:
		return JobPending
	}
}

// markStarted records the first dispatch time. Later calls are no-ops.
func (j *Job) markStarted(now int64) {
	if j.Started {
		return
	}
	j.Started = true
	j.StartTime = now
}

// markCompleted records completion at now.
func (j *Job) markCompleted(now int64) {
	if j.Completed {
		panic(fmt.Sprintf("job %d completed twice", j.ID))
	}
	j.Completed = true
	j.Remaining = 0
	j.CompletionTime = now
}

// This method returns a human-readable string representation of a Job.
func (j Job) String() string {
	return fmt.Sprintf("Job: (ID: %d, State: %s, Arrival: %d, Length: %d, Remaining: %d)",
		j.ID, j.State(), j.Arrival, j.Length, j.Remaining)
}

// Registry is the ordered, closed set of jobs handed to a policy run.
// Insertion order = id order. Arrival times need not be sorted or unique.
type Registry struct {
	jobs []*Job
}

// Load builds a Registry from specs, assigning ids by position.
// Returns *EmptyWorkloadError for an empty input and *ConfigError for a spec
// with a negative arrival or non-positive length.
func Load(specs []JobSpec) (*Registry, error) {
	if len(specs) == 0 {
		return nil, &EmptyWorkloadError{}
	}
	jobs := make([]*Job, 0, len(specs))
	for i, s := range specs {
		if s.Arrival < 0 {
			return nil, &ConfigError{Field: fmt.Sprintf("job[%d].arrival", i), Err: fmt.Errorf("must be non-negative, got %d", s.Arrival)}
		}
		if s.Length <= 0 {
			return nil, &ConfigError{Field: fmt.Sprintf("job[%d].length", i), Err: fmt.Errorf("must be positive, got %d", s.Length)}
		}
		if s.Tickets < 0 {
			return nil, &ConfigError{Field: fmt.Sprintf("job[%d].tickets", i), Err: fmt.Errorf("must be non-negative, got %d", s.Tickets)}
		}
		tickets := s.Tickets
		if tickets == 0 {
			tickets = int64(i+1) * DefaultTicketStep
		}
		jobs = append(jobs, &Job{
			ID:        i,
			Arrival:   s.Arrival,
			Length:    s.Length,
			Tickets:   tickets,
			Remaining: s.Length,
		})
	}
	return &Registry{jobs: jobs}, nil
}

// Len returns the number of jobs.
func (r *Registry) Len() int {
	return len(r.jobs)
}

// Job returns the job at registry index i.
func (r *Registry) Job(i int) *Job {
	return r.jobs[i]
}

// Jobs returns the registry contents for iteration.
// The returned slice is the registry's internal storage; callers MUST NOT
// append to or reslice it.
func (r *Registry) Jobs() []*Job {
	return r.jobs
}

// Reset restores every job to its freshly-loaded state so the registry can
// be replayed under another policy.
func (r *Registry) Reset() {
	for _, j := range r.jobs {
		j.Remaining = j.Length
		j.Completed = false
		j.Started = false
		j.StartTime = 0
		j.CompletionTime = 0
		j.AccruedWait = 0
	}
}

// AllCompleted reports whether every job has been marked completed.
func (r *Registry) AllCompleted() bool {
	for _, j := range r.jobs {
		if !j.Completed {
			return false
		}
	}
	return true
}

// TotalWork returns the sum of requested lengths.
func (r *Registry) TotalWork() int64 {
	var total int64
	for _, j := range r.jobs {
		total += j.Length
	}
	return total
}

// startClock returns the time at which a simulation begins: the earliest
// arrival if positive, otherwise 0.
func (r *Registry) startClock() int64 {
	earliest, ok := r.nextArrival(func(*Job) bool { return true })
	if !ok || earliest < 0 {
		return 0
	}
	return earliest
}

// nextArrival returns the minimum arrival among jobs matching keep.
func (r *Registry) nextArrival(keep func(*Job) bool) (int64, bool) {
	var (
		best  int64
		found bool
	)
	for _, j := range r.jobs {
		if !keep(j) {
			continue
		}
		if !found || j.Arrival < best {
			best = j.Arrival
			found = true
		}
	}
	return best, found
}
