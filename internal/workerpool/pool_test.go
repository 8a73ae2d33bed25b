// ABOUTME: Tests for the worker pool's submit/wait/close behavior.
// ABOUTME: Covers full task completion and multiple sequential submit-then-wait rounds.

package workerpool_test

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"slotsolver/internal/workerpool"
)

func TestPoolRunsAllSubmittedTasks(t *testing.T) {
	pool := workerpool.New(100)
	defer pool.Close()

	var completed int64
	const taskCount = 500
	for i := 0; i < taskCount; i++ {
		pool.Submit(func() {
			atomic.AddInt64(&completed, 1)
		})
	}
	pool.Wait()

	require.EqualValues(t, taskCount, atomic.LoadInt64(&completed))
}

func TestPoolWaitReturnsOnlyAfterAllTasksFinish(t *testing.T) {
	pool := workerpool.New(10)
	defer pool.Close()

	results := make([]int32, 50)
	for i := range results {
		i := i
		pool.Submit(func() {
			atomic.StoreInt32(&results[i], 1)
		})
	}
	pool.Wait()

	for i, v := range results {
		require.EqualValues(t, 1, atomic.LoadInt32(&v), "task %d did not complete before Wait returned", i)
	}
}

func TestPoolSupportsMultipleWaitRounds(t *testing.T) {
	pool := workerpool.New(10)
	defer pool.Close()

	var firstRound, secondRound int64

	for i := 0; i < 20; i++ {
		pool.Submit(func() { atomic.AddInt64(&firstRound, 1) })
	}
	pool.Wait()
	require.EqualValues(t, 20, atomic.LoadInt64(&firstRound))

	for i := 0; i < 30; i++ {
		pool.Submit(func() { atomic.AddInt64(&secondRound, 1) })
	}
	pool.Wait()
	require.EqualValues(t, 30, atomic.LoadInt64(&secondRound))
}
