package worker

import (
	"context"
	"errors"
	"sync"

	"github.com/osse101/FruitReels_Go/internal/logger"
)

// ErrPoolStopped is returned by Enqueue once Stop has been called
var ErrPoolStopped = errors.New(ErrMsgPoolStopped)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// JobFunc adapts a plain function to the Job interface
type JobFunc func(ctx context.Context) error

// Process calls f(ctx)
func (f JobFunc) Process(ctx context.Context) error {
	return f(ctx)
}

// Pool represents a worker pool
type Pool struct {
	workers  int
	jobQueue chan Job
	wg       sync.WaitGroup
	quit     chan struct{}
	stopOnce sync.Once
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{
		workers:  workers,
		jobQueue: make(chan Job, queueSize),
		quit:     make(chan struct{}),
	}
}

// Start starts the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()
	ctx := logger.WithWorker(context.Background(), id)
	for {
		select {
		case job := <-p.jobQueue:
			p.run(ctx, job)
		case <-p.quit:
			return
		}
	}
}

func (p *Pool) run(ctx context.Context, job Job) {
	defer func() {
		if r := recover(); r != nil {
			logger.FromContext(ctx).Error(LogMsgWorkerJobPanicked, "panic", r)
		}
	}()
	if err := job.Process(ctx); err != nil {
		logger.FromContext(ctx).Error(LogMsgWorkerJobFailed, "error", err)
	}
}

// Enqueue adds a job to the queue, blocking while the queue is full.
// It returns ErrPoolStopped if the pool is stopped before the job is accepted.
func (p *Pool) Enqueue(job Job) error {
	select {
	case <-p.quit:
		return ErrPoolStopped
	default:
	}

	select {
	case p.jobQueue <- job:
		return nil
	case <-p.quit:
		return ErrPoolStopped
	}
}

// Stop stops the workers and waits for them to finish their current job.
// Jobs still queued are discarded.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		close(p.quit)
	})
	p.wg.Wait()
}
