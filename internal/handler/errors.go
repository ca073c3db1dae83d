package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
// Both handlers and tests should reference these constants.
const (
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidRollID         = "Invalid roll ID"
	ErrMsgRollFailed            = "Failed to start roll"
	ErrMsgResetFailed           = "Failed to reset"
)

// Log messages
const (
	LogMsgRollRequestFailed  = "Roll request failed"
	LogMsgResetRequestFailed = "Reset request failed"
	LogMsgGetRollFailed      = "Roll lookup failed"
	LogMsgEncodeFailed       = "Failed to encode JSON response"
	LogMsgWriteFailed        = "Failed to write response buffer"
)
