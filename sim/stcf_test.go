package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSTCF_PreemptsForShorterArrival(t *testing.T) {
	reg, st := runPolicy(t, PolicySTCF, 0, [2]int64{0, 8}, [2]int64{1, 4}, [2]int64{2, 9}, [2]int64{3, 5})

	assert.Equal(t, []string{
		"t=0: [Job 0] arrived at [0], ran for: [1]",
		"t=1: [Job 1] arrived at [1], ran for: [4]",
		"t=5: [Job 3] arrived at [3], ran for: [5]",
		"t=10: [Job 0] arrived at [0], ran for: [7]",
		"t=17: [Job 2] arrived at [2], ran for: [9]",
	}, st.Lines())
	assert.Equal(t, int64(26), reg.Job(2).CompletionTime)
	assert.Equal(t, int64(8), reg.Job(0).Length, "preemption leaves the requested length intact")
}

func TestSTCF_EqualRemaining_NoPreemption(t *testing.T) {
	// GIVEN job 1 arriving with exactly job 0's remaining work
	_, st := runPolicy(t, PolicySTCF, 0, [2]int64{0, 4}, [2]int64{2, 2})

	// THEN job 0 keeps the CPU in one contiguous segment
	assert.Equal(t, []string{
		"t=0: [Job 0] arrived at [0], ran for: [4]",
		"t=4: [Job 1] arrived at [2], ran for: [2]",
	}, st.Lines())
}

func TestSTCF_LongerArrival_SingleSegment(t *testing.T) {
	_, st := runPolicy(t, PolicySTCF, 0, [2]int64{0, 3}, [2]int64{1, 10}, [2]int64{2, 10})

	// arrivals at t=1 and t=2 do not split job 0's segment
	assert.Equal(t, 3, st.Len())
	assert.Equal(t, int64(3), st.Dispatches[0].Duration)
}

func TestSTCF_IdleGap(t *testing.T) {
	reg, st := runPolicy(t, PolicySTCF, 0, [2]int64{5, 1}, [2]int64{20, 2})

	assert.Equal(t, int64(5), st.Dispatches[0].Clock)
	assert.Equal(t, int64(20), st.Dispatches[1].Clock)
	assert.Equal(t, int64(22), reg.Job(1).CompletionTime)
}
