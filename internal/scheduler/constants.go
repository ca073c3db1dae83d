package scheduler

// LogMsgEnqueueFailed is logged when a fired job cannot be handed to the worker pool
const LogMsgEnqueueFailed = "Scheduled job could not be enqueued"
