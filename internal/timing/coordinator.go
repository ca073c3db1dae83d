package timing

import (
	"fmt"
	"sort"
	"time"

	"github.com/osse101/FruitReels_Go/internal/domain"
	"github.com/osse101/FruitReels_Go/internal/utils"
)

// Config bounds the per-reel settle durations
type Config struct {
	MinUnits int
	MaxUnits int
	Unit     time.Duration
}

// DefaultConfig draws 1-10 seconds per reel
func DefaultConfig() Config {
	return Config{
		MinUnits: DefaultMinUnits,
		MaxUnits: DefaultMaxUnits,
		Unit:     DefaultUnit,
	}
}

// Validate reports configuration errors
func (c Config) Validate() error {
	if c.MinUnits < 1 {
		return fmt.Errorf("%w: min timing units must be at least 1, got %d", domain.ErrInvalidConfig, c.MinUnits)
	}
	if c.MaxUnits < c.MinUnits {
		return fmt.Errorf("%w: max timing units %d below min %d", domain.ErrInvalidConfig, c.MaxUnits, c.MinUnits)
	}
	if c.Unit <= 0 {
		return fmt.Errorf("%w: timing unit must be positive, got %s", domain.ErrInvalidConfig, c.Unit)
	}
	return nil
}

// Coordinator assigns settle durations to reels
type Coordinator struct {
	cfg Config
	rng utils.IntnFunc
}

// NewCoordinator creates a coordinator drawing from crypto/rand
func NewCoordinator(cfg Config) (*Coordinator, error) {
	return NewCoordinatorWithRand(cfg, utils.SecureIntn)
}

// NewCoordinatorWithRand creates a coordinator with an explicit random source
func NewCoordinatorWithRand(cfg Config, rng utils.IntnFunc) (*Coordinator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = utils.SecureIntn
	}
	return &Coordinator{cfg: cfg, rng: rng}, nil
}

// Config returns the coordinator bounds
func (c *Coordinator) Config() Config {
	return c.cfg
}

// AssignTimings draws reelCount independent durations and sorts them ascending,
// so reel 0 always settles first and the last reel settles last.
func (c *Coordinator) AssignTimings(reelCount int) domain.ReelTiming {
	if reelCount < 0 {
		reelCount = 0
	}
	span := c.cfg.MaxUnits - c.cfg.MinUnits + 1
	units := make([]int, reelCount)
	for i := range units {
		units[i] = c.cfg.MinUnits + c.rng(span)
	}
	sort.Ints(units)

	return domain.ReelTiming{Units: units, Unit: c.cfg.Unit}
}

// Stops returns the per-reel animation parameters for presentation.
// Each strip starts translated up by reelLength-1 rows and slides to offset 0,
// where its landing symbol fills the viewport.
func Stops(t domain.ReelTiming, reelLength int) []domain.ReelStop {
	start := 0
	if reelLength > 0 {
		start = -(reelLength - 1)
	}
	stops := make([]domain.ReelStop, len(t.Units))
	for i := range t.Units {
		stops[i] = domain.ReelStop{
			Reel:            i,
			DurationSeconds: t.Duration(i).Seconds(),
			StartOffsetRows: start,
			EndOffsetRows:   0,
		}
	}
	return stops
}
