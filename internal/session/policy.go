package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/osse101/FruitReels_Go/internal/domain"
)

// ResetPolicy decides what a reset does to the payout of the roll it abandons
type ResetPolicy string

const (
	// ResetPolicyKeep leaves the payout scheduled; it lands later flagged as stale
	ResetPolicyKeep ResetPolicy = "keep"

	// ResetPolicyCancel cancels the pending payout; no winnings change is applied
	ResetPolicyCancel ResetPolicy = "cancel"
)

// ParseResetPolicy parses a policy name, case-insensitively
func ParseResetPolicy(s string) (ResetPolicy, error) {
	switch p := ResetPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case ResetPolicyKeep, ResetPolicyCancel:
		return p, nil
	case "":
		return ResetPolicyKeep, nil
	default:
		return "", fmt.Errorf("%w: unknown reset policy %q", domain.ErrInvalidConfig, s)
	}
}

// Config holds the session parameters
type Config struct {
	InitialWinnings int
	ResetPolicy     ResetPolicy
	HistorySize     int
	HistoryTTL      time.Duration // Zero disables expiry
}

// DefaultConfig starts at 1000 winnings and keeps stale payouts
func DefaultConfig() Config {
	return Config{
		InitialWinnings: DefaultInitialWinnings,
		ResetPolicy:     ResetPolicyKeep,
		HistorySize:     DefaultHistorySize,
		HistoryTTL:      DefaultHistoryTTL,
	}
}

// Validate reports configuration errors
func (c Config) Validate() error {
	if _, err := ParseResetPolicy(string(c.ResetPolicy)); err != nil {
		return err
	}
	if c.HistorySize <= 0 {
		return fmt.Errorf("%w: history size must be positive, got %d", domain.ErrInvalidConfig, c.HistorySize)
	}
	if c.HistoryTTL < 0 {
		return fmt.Errorf("%w: history ttl must not be negative, got %s", domain.ErrInvalidConfig, c.HistoryTTL)
	}
	return nil
}
