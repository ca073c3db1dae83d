package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Catalog errors
	ErrMsgUnknownSymbol  = "unknown symbol kind"
	ErrMsgInvalidCatalog = "invalid symbol catalog"

	// Configuration errors
	ErrMsgInvalidConfig = "invalid configuration"

	// Roll errors
	ErrMsgInvalidRoll  = "invalid roll"
	ErrMsgRollNotFound = "roll not found"

	// Session errors
	ErrMsgSessionClosed = "session is shut down"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Catalog errors
	ErrUnknownSymbol  = errors.New(ErrMsgUnknownSymbol)
	ErrInvalidCatalog = errors.New(ErrMsgInvalidCatalog)

	// Configuration errors are fatal at startup
	ErrInvalidConfig = errors.New(ErrMsgInvalidConfig)

	// Roll errors
	ErrInvalidRoll  = errors.New(ErrMsgInvalidRoll)
	ErrRollNotFound = errors.New(ErrMsgRollNotFound)

	// Session errors
	ErrSessionClosed = errors.New(ErrMsgSessionClosed)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
