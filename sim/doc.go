// Package sim provides the scheduling-policy engine for schedsim.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - job.go: Job lifecycle (pending → started → completed) and the Registry
//   - policy.go: Policy names, wait accounting and the Scheduler factory
//   - simulator.go: Binds a registry to a policy, runs it, aggregates metrics
//
// # Policies
//
// Each policy is a single-threaded loop over a virtual clock:
//   - nonpreemptive.go: FIFO and SJF, run-to-completion with repeated scans
//   - round_robin.go: fixed quantum, FIFO ready queue, arrivals queue ahead of the preempted job
//   - lottery.go: weighted ticket draw per quantum from a fixed-seed RNG
//   - stcf.go: preemptive shortest-remaining-time at arrival instants
//
// Idle gaps are skipped by jumping the clock to the next arrival; no trace
// record is emitted for them.
//
// # Sub-packages
//   - sim/trace/: dispatch trace records, formatting and summaries
//   - sim/workload/: trace file parsing, YAML workload specs and generation
package sim
