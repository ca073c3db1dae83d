package scheduler

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/FruitReels_Go/internal/logger"
	"github.com/osse101/FruitReels_Go/internal/worker"
)

// Scheduler fires keyed one-shot jobs on the worker pool after a delay.
// Each key has at most one pending job; a job is either cancelled or enqueued, never both.
type Scheduler struct {
	workerPool *worker.Pool

	mu      sync.Mutex
	timers  map[uuid.UUID]*time.Timer
	stopped bool
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		timers:     make(map[uuid.UUID]*time.Timer),
	}
}

// ScheduleOnce runs job once after delay. A pending job with the same id is replaced.
// It returns false if the scheduler has been stopped.
func (s *Scheduler) ScheduleOnce(id uuid.UUID, delay time.Duration, job worker.Job) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return false
	}
	if prev, ok := s.timers[id]; ok {
		prev.Stop()
	}

	var timer *time.Timer
	timer = time.AfterFunc(delay, func() {
		s.mu.Lock()
		current, ok := s.timers[id]
		if !ok || current != timer {
			s.mu.Unlock()
			return
		}
		delete(s.timers, id)
		s.mu.Unlock()

		if err := s.workerPool.Enqueue(job); err != nil {
			logger.Warn(LogMsgEnqueueFailed, "job_id", id, "error", err)
		}
	})
	s.timers[id] = timer
	return true
}

// Cancel removes the pending job for id. It reports whether a job was removed
// before it fired.
func (s *Scheduler) Cancel(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	timer, ok := s.timers[id]
	if !ok {
		return false
	}
	timer.Stop()
	delete(s.timers, id)
	return true
}

// Pending returns the number of jobs waiting to fire
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Stop cancels all pending jobs and rejects new ones
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
	s.stopped = true
}
