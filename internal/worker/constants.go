package worker

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

const (
	// LogMsgWorkerJobFailed is logged when a worker fails to process a job
	LogMsgWorkerJobFailed = "Worker job failed"

	// LogMsgWorkerJobPanicked is logged when a job panics; the worker keeps running
	LogMsgWorkerJobPanicked = "Worker job panicked"
)

// ErrMsgPoolStopped is the message of ErrPoolStopped
const ErrMsgPoolStopped = "worker pool stopped"

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
