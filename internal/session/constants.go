package session

import "time"

// Session defaults
const (
	DefaultInitialWinnings = 1000
	DefaultHistorySize     = 100
	DefaultHistoryTTL      = time.Hour
)

// Log messages
const (
	LogMsgRollStarted      = "Roll started"
	LogMsgRollIgnored      = "Roll request ignored, roll already in progress"
	LogMsgRollSettled      = "Roll settled"
	LogMsgStalePayout      = "Payout applied after reset"
	LogMsgPayoutSkipped    = "Payout skipped, task was cancelled"
	LogMsgRollReset        = "Roll reset"
	LogMsgPublishFailed    = "Failed to publish session event"
	LogMsgShuttingDown     = "Shutting down session"
	LogMsgCancelledOnStop  = "Cancelled pending payout"
	LogMsgShutdownComplete = "Session shutdown complete"
	LogMsgShutdownTimeout  = "Session shutdown timeout"
)

// Error context messages
const (
	ErrContextStartRoll    = "failed to start roll"
	ErrContextEvaluateRoll = "failed to evaluate roll"
)
