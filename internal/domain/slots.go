package domain

import (
	"time"

	"github.com/google/uuid"
)

// SymbolKind identifies one entry of the symbol catalog
type SymbolKind string

// Symbol is an immutable catalog entry
type Symbol struct {
	Kind       SymbolKind `json:"kind"`
	Multiplier int        `json:"multiplier"`  // Payout weight for a pair, doubled for three of a kind
	DisplayRef string     `json:"display_ref"` // Opaque handle for the presentation layer (asset name)
}

// ReelSequence is the vertical strip of symbols rendered for one reel
type ReelSequence []Symbol

// RollResult holds the reels generated for one roll and the symbol each reel lands on
type RollResult struct {
	ID      uuid.UUID      `json:"id"`
	Reels   []ReelSequence `json:"reels"`
	Landing []Symbol       `json:"landing"`
}

// Outcome is the evaluated payout of a roll
type Outcome struct {
	Multiplier  int        `json:"multiplier"`
	PayoutDelta int        `json:"payout_delta"`           // costPerRoll * (multiplier - 1)
	MatchedKind SymbolKind `json:"matched_kind,omitempty"` // Empty when no kind appears twice
	MatchCount  int        `json:"match_count"`            // 0, 2 or 3
}

// IsWin reports whether the outcome increases winnings
func (o Outcome) IsWin() bool {
	return o.PayoutDelta > 0
}

// ReelTiming holds the per-reel settle durations in settle order.
// Units are sorted ascending so reel i never settles after reel i+1.
type ReelTiming struct {
	Units []int         `json:"units"`
	Unit  time.Duration `json:"-"`
}

// Duration returns the settle duration of reel i
func (t ReelTiming) Duration(i int) time.Duration {
	return time.Duration(t.Units[i]) * t.Unit
}

// Completion returns the time after which every reel has settled
func (t ReelTiming) Completion() time.Duration {
	longest := 0
	for _, u := range t.Units {
		if u > longest {
			longest = u
		}
	}
	return time.Duration(longest) * t.Unit
}

// Seconds returns the durations in seconds for presentation clients
func (t ReelTiming) Seconds() []float64 {
	out := make([]float64, len(t.Units))
	for i := range t.Units {
		out[i] = t.Duration(i).Seconds()
	}
	return out
}

// ReelStop describes how the presentation layer animates one reel into place
type ReelStop struct {
	Reel            int     `json:"reel"`
	DurationSeconds float64 `json:"duration_seconds"`
	StartOffsetRows int     `json:"start_offset_rows"` // Strip starts translated so its last symbol is visible
	EndOffsetRows   int     `json:"end_offset_rows"`   // Strip ends with the landing symbol in the viewport
}

// Roll is everything the session emits to presentation when a roll starts
type Roll struct {
	Result    RollResult `json:"result"`
	Timing    ReelTiming `json:"timing"`
	Stops     []ReelStop `json:"stops"`
	StartedAt time.Time  `json:"started_at"`
}

// Settlement records the payout applied for a roll
type Settlement struct {
	RollID         uuid.UUID `json:"roll_id"`
	Outcome        Outcome   `json:"outcome"`
	WinningsBefore int       `json:"winnings_before"`
	WinningsAfter  int       `json:"winnings_after"`
	Stale          bool      `json:"stale"` // Payout landed after the roll was reset
	Message        string    `json:"message"`
	SettledAt      time.Time `json:"settled_at"`
}

// SessionStatus is the state of the session state machine
type SessionStatus string

const (
	SessionStatusIdle    SessionStatus = "Idle"
	SessionStatusRolling SessionStatus = "Rolling"
)

// SessionState is the mutable state owned by the session
type SessionState struct {
	Winnings       int  `json:"winnings"`
	RollInProgress bool `json:"roll_in_progress"`
}

// SessionSnapshot is a read-only copy of the session for presentation
type SessionSnapshot struct {
	Status         SessionStatus `json:"status"`
	Winnings       int           `json:"winnings"`
	RollInProgress bool          `json:"roll_in_progress"`
	CurrentRoll    *Roll         `json:"current_roll,omitempty"`
	LastSettlement *Settlement   `json:"last_settlement,omitempty"`
	PendingPayouts int           `json:"pending_payouts"`
}

// RollRecord pairs a roll with its settlement for history lookups
type RollRecord struct {
	Roll       Roll        `json:"roll"`
	Settlement *Settlement `json:"settlement,omitempty"`
	Reset      bool        `json:"reset"`
}
