// Implements the ready queues used by the preemptive policies.

package sim

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/emirpasic/gods/queues/priorityqueue"
	"github.com/emirpasic/gods/utils"
)

// ReadyQueue is a FIFO queue of registry indices of jobs ready to run.
// Round-Robin dispatches from its head and returns preempted jobs to its tail.
type ReadyQueue struct {
	queue *linkedlistqueue.Queue
}

// NewReadyQueue returns an empty ReadyQueue.
func NewReadyQueue() *ReadyQueue {
	return &ReadyQueue{queue: linkedlistqueue.New()}
}

// Enqueue adds a job index to the back of the queue.
func (rq *ReadyQueue) Enqueue(idx int) {
	rq.queue.Enqueue(idx)
}

// Dequeue removes the index at the front of the queue.
// ok is false when the queue is empty.
func (rq *ReadyQueue) Dequeue() (idx int, ok bool) {
	v, ok := rq.queue.Dequeue()
	if !ok {
		return 0, false
	}
	return v.(int), true
}

// Len returns the number of queued indices.
func (rq *ReadyQueue) Len() int {
	return rq.queue.Size()
}

// Empty reports whether the queue holds no indices.
func (rq *ReadyQueue) Empty() bool {
	return rq.queue.Empty()
}

func (rq *ReadyQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, val := range rq.queue.Values() {
		sb.WriteString(fmt.Sprint(val))
		if i < rq.queue.Size()-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// jobKey orders jobs by a policy metric, then by registry index.
type jobKey struct {
	metric int64
	idx    int
}

func compareJobKeys(a, b interface{}) int {
	ka, kb := a.(jobKey), b.(jobKey)
	if c := utils.Int64Comparator(ka.metric, kb.metric); c != 0 {
		return c
	}
	return utils.IntComparator(ka.idx, kb.idx)
}

// JobHeap is a min-heap of job indices keyed by (metric, registry index).
// Equal metrics pop in registry order, matching a forward-scan tie-break.
type JobHeap struct {
	pq *priorityqueue.Queue
}

// NewJobHeap returns an empty JobHeap.
func NewJobHeap() *JobHeap {
	return &JobHeap{pq: priorityqueue.NewWith(compareJobKeys)}
}

// Push inserts job idx with the given metric.
func (h *JobHeap) Push(metric int64, idx int) {
	h.pq.Enqueue(jobKey{metric: metric, idx: idx})
}

// Peek returns the smallest (metric, idx) without removing it.
func (h *JobHeap) Peek() (metric int64, idx int, ok bool) {
	v, ok := h.pq.Peek()
	if !ok {
		return 0, 0, false
	}
	k := v.(jobKey)
	return k.metric, k.idx, true
}

// Pop removes and returns the smallest (metric, idx).
func (h *JobHeap) Pop() (metric int64, idx int, ok bool) {
	v, ok := h.pq.Dequeue()
	if !ok {
		return 0, 0, false
	}
	k := v.(jobKey)
	return k.metric, k.idx, true
}

// Len returns the number of entries.
func (h *JobHeap) Len() int {
	return h.pq.Size()
}
