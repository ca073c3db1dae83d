package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FruitReels_Go/internal/testing/leaktest"
)

type testJob struct {
	executed *int32
}

func (j *testJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	return nil
}

func TestPool(t *testing.T) {
	var executed int32
	pool := NewPool(TestWorkerCount, TestQueueSize)
	pool.Start()

	job := &testJob{executed: &executed}
	require.NoError(t, pool.Enqueue(job))
	require.NoError(t, pool.Enqueue(job))

	// Wait a bit for workers to process
	time.Sleep(TestWorkerProcessWaitTime * time.Millisecond)

	pool.Stop()

	if atomic.LoadInt32(&executed) != TestExpectedJobCount {
		t.Errorf("Expected %d jobs executed, got %d", TestExpectedJobCount, executed)
	}
}

func TestPool_EnqueueAfterStop(t *testing.T) {
	pool := NewPool(TestWorkerCount, TestQueueSize)
	pool.Start()
	pool.Stop()

	err := pool.Enqueue(JobFunc(func(ctx context.Context) error { return nil }))
	assert.ErrorIs(t, err, ErrPoolStopped)
}

func TestPool_StopIsIdempotent(t *testing.T) {
	pool := NewPool(1, 1)
	pool.Start()
	pool.Stop()
	assert.NotPanics(t, pool.Stop)
}

func TestPool_SurvivesFailingAndPanickingJobs(t *testing.T) {
	pool := NewPool(1, TestQueueSize)
	pool.Start()
	defer pool.Stop()

	var executed int32
	require.NoError(t, pool.Enqueue(JobFunc(func(ctx context.Context) error { return errors.New("boom") })))
	require.NoError(t, pool.Enqueue(JobFunc(func(ctx context.Context) error { panic("kaboom") })))
	require.NoError(t, pool.Enqueue(&testJob{executed: &executed}))

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&executed) == 1
	}, time.Second, 5*time.Millisecond)
}

func TestPool_StopReleasesWorkers(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		pool := NewPool(4, TestQueueSize)
		pool.Start()
		require.NoError(t, pool.Enqueue(JobFunc(func(ctx context.Context) error { return nil })))
		pool.Stop()
	})
}
