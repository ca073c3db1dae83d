package sse

import "github.com/osse101/FruitReels_Go/internal/domain"

// RollStartedPayload is what a client needs to animate a roll
type RollStartedPayload struct {
	RollID           string                `json:"roll_id"`
	Reels            []domain.ReelSequence `json:"reels"`
	Landing          []domain.Symbol       `json:"landing"`
	DurationsSeconds []float64             `json:"durations_seconds"`
	Stops            []domain.ReelStop     `json:"stops"`
	Winnings         int                   `json:"winnings"`
}

// RollSettledPayload reports the payout applied for a roll
type RollSettledPayload struct {
	RollID      string `json:"roll_id"`
	Multiplier  int    `json:"multiplier"`
	PayoutDelta int    `json:"payout_delta"`
	Winnings    int    `json:"winnings"`
	Stale       bool   `json:"stale"`
	Message     string `json:"message"`
}

// RollResetPayload reports a reset request
type RollResetPayload struct {
	RollID          string `json:"roll_id,omitempty"`
	PayoutCancelled bool   `json:"payout_cancelled"`
	Winnings        int    `json:"winnings"`
}

// RollIgnoredPayload reports a roll request dropped while another was in flight
type RollIgnoredPayload struct {
	InFlightRollID string `json:"in_flight_roll_id"`
}
