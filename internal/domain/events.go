package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "roll.started")
const (
	// EventTypeRollStarted is published when the session accepts a roll request
	EventTypeRollStarted = "roll.started"

	// EventTypeRollSettled is published when a roll's payout is applied to winnings
	EventTypeRollSettled = "roll.settled"

	// EventTypeRollReset is published when the in-flight roll is abandoned by a reset request
	EventTypeRollReset = "roll.reset"

	// EventTypeRollIgnored is published when a roll request arrives while a roll is in progress
	EventTypeRollIgnored = "roll.ignored"
)

// RollStartedPayloadV1 is the payload for roll.started
type RollStartedPayloadV1 struct {
	Roll      Roll  `json:"roll"`
	Winnings  int   `json:"winnings"`
	Timestamp int64 `json:"timestamp"`
}

// RollSettledPayloadV1 is the payload for roll.settled
type RollSettledPayloadV1 struct {
	Settlement Settlement `json:"settlement"`
	Timestamp  int64      `json:"timestamp"`
}

// RollResetPayloadV1 is the payload for roll.reset
type RollResetPayloadV1 struct {
	RollID          string `json:"roll_id,omitempty"` // Empty when nothing was in flight
	PayoutCancelled bool   `json:"payout_cancelled"`
	Winnings        int    `json:"winnings"`
	Timestamp       int64  `json:"timestamp"`
}

// RollIgnoredPayloadV1 is the payload for roll.ignored
type RollIgnoredPayloadV1 struct {
	InFlightRollID string `json:"in_flight_roll_id"`
	Timestamp      int64  `json:"timestamp"`
}
