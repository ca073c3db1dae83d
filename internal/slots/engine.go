package slots

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/osse101/FruitReels_Go/internal/catalog"
	"github.com/osse101/FruitReels_Go/internal/domain"
	"github.com/osse101/FruitReels_Go/internal/utils"
)

// Config holds the engine parameters
type Config struct {
	CostPerRoll int
	ReelCount   int
	ReelLength  int
}

// DefaultConfig returns costPerRoll 100 over 3 reels of 40 symbols
func DefaultConfig() Config {
	return Config{
		CostPerRoll: DefaultCostPerRoll,
		ReelCount:   DefaultReelCount,
		ReelLength:  DefaultTotalSymbolCount / DefaultReelCount,
	}
}

// Validate reports configuration errors; they are fatal at startup
func (c Config) Validate() error {
	if c.CostPerRoll <= 0 {
		return fmt.Errorf("%w: cost per roll must be positive, got %d", domain.ErrInvalidConfig, c.CostPerRoll)
	}
	if c.ReelCount != DefaultReelCount {
		return fmt.Errorf("%w: reel count must be %d, got %d", domain.ErrInvalidConfig, DefaultReelCount, c.ReelCount)
	}
	if c.ReelLength <= 0 {
		return fmt.Errorf("%w: reel length must be positive, got %d", domain.ErrInvalidConfig, c.ReelLength)
	}
	return nil
}

// landingOffset is where every strip comes to rest once its offset transition completes
const landingOffset = 0

// Engine generates reels and evaluates payouts
type Engine struct {
	catalog *catalog.Catalog
	cfg     Config
	rng     utils.IntnFunc // Injectable for testing
}

// NewEngine creates an engine drawing from crypto/rand
func NewEngine(cat *catalog.Catalog, cfg Config) (*Engine, error) {
	return NewEngineWithRand(cat, cfg, utils.SecureIntn)
}

// NewEngineWithRand creates an engine with an explicit random source
func NewEngineWithRand(cat *catalog.Catalog, cfg Config, rng utils.IntnFunc) (*Engine, error) {
	if cat == nil {
		return nil, fmt.Errorf("%w: catalog is required", domain.ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = utils.SecureIntn
	}
	return &Engine{catalog: cat, cfg: cfg, rng: rng}, nil
}

// Config returns the engine parameters
func (e *Engine) Config() Config {
	return e.cfg
}

// Catalog returns the symbol catalog
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// GenerateReels draws reelCount*reelLength symbols uniformly with replacement.
// Draws are partitioned contiguously: the first reelLength go to reel 0, and so on.
func (e *Engine) GenerateReels(reelCount, reelLength int) ([]domain.ReelSequence, error) {
	if reelCount <= 0 || reelLength <= 0 {
		return nil, fmt.Errorf("%w: reel count %d and length %d must be positive", domain.ErrInvalidConfig, reelCount, reelLength)
	}

	kinds := e.catalog.Len()
	reels := make([]domain.ReelSequence, reelCount)
	for r := range reels {
		seq := make(domain.ReelSequence, reelLength)
		for i := range seq {
			seq[i] = e.catalog.Symbol(e.rng(kinds))
		}
		reels[r] = seq
	}
	return reels, nil
}

// LandingIndex is the position within a reel's own sequence that ends up in the viewport.
// Every reel lands on its first symbol, so the index does not depend on the reel.
// An empty reel has no landing position and yields -1.
func LandingIndex(_ int, reelLength int) int {
	if reelLength <= landingOffset {
		return -1
	}
	return landingOffset
}

// FlatLandingIndex is LandingIndex expressed over the flattened draw order
func FlatLandingIndex(reel, reelLength int) int {
	return reel*reelLength + LandingIndex(reel, reelLength)
}

// LandingSymbols returns the landing symbol of each reel
func LandingSymbols(reels []domain.ReelSequence) ([]domain.Symbol, error) {
	landing := make([]domain.Symbol, len(reels))
	for r, seq := range reels {
		idx := LandingIndex(r, len(seq))
		if idx < 0 {
			return nil, fmt.Errorf("%w: reel %d is empty", domain.ErrInvalidRoll, r)
		}
		landing[r] = seq[idx]
	}
	return landing, nil
}

// Roll generates a fresh RollResult using the configured reel shape
func (e *Engine) Roll() (domain.RollResult, error) {
	reels, err := e.GenerateReels(e.cfg.ReelCount, e.cfg.ReelLength)
	if err != nil {
		return domain.RollResult{}, fmt.Errorf("%s: %w", ErrContextGenerateReels, err)
	}
	landing, err := LandingSymbols(reels)
	if err != nil {
		return domain.RollResult{}, err
	}
	return domain.RollResult{
		ID:      uuid.New(),
		Reels:   reels,
		Landing: landing,
	}, nil
}

// Evaluate computes the outcome of a set of reels. It is pure: repeated calls
// on the same reels yield the same outcome.
func (e *Engine) Evaluate(reels []domain.ReelSequence) (domain.Outcome, error) {
	if len(reels) != e.cfg.ReelCount {
		return domain.Outcome{}, fmt.Errorf("%w: expected %d reels, got %d", domain.ErrInvalidRoll, e.cfg.ReelCount, len(reels))
	}
	landing, err := LandingSymbols(reels)
	if err != nil {
		return domain.Outcome{}, err
	}
	return e.EvaluateLanding(landing)
}

// EvaluateLanding computes the outcome from the landing symbols directly.
// Multipliers come from the catalog, never from the symbol values passed in.
func (e *Engine) EvaluateLanding(landing []domain.Symbol) (domain.Outcome, error) {
	if len(landing) != e.cfg.ReelCount {
		return domain.Outcome{}, fmt.Errorf("%w: expected %d landing symbols, got %d", domain.ErrInvalidRoll, e.cfg.ReelCount, len(landing))
	}

	counts := make(map[domain.SymbolKind]int, len(landing))
	for _, s := range landing {
		counts[s.Kind]++
	}

	out := domain.Outcome{}
	// With three landing symbols at most one kind can reach two or more.
	for kind, n := range counts {
		if n < PairCount {
			continue
		}
		sym, err := e.catalog.Lookup(kind)
		if err != nil {
			return domain.Outcome{}, fmt.Errorf("%s: %w", ErrContextLookupLanding, err)
		}
		out.MatchedKind = kind
		out.MatchCount = n
		switch {
		case n >= TripleCount:
			out.Multiplier = sym.Multiplier * TripleFactor
		default:
			out.Multiplier = sym.Multiplier
		}
	}

	out.PayoutDelta = e.PayoutDelta(out.Multiplier)
	return out, nil
}

// PayoutDelta is costPerRoll * (multiplier - 1)
func (e *Engine) PayoutDelta(multiplier int) int {
	return e.cfg.CostPerRoll * (multiplier - 1)
}

// Classify returns the outcome class label
func Classify(o domain.Outcome) string {
	switch {
	case o.MatchCount >= TripleCount:
		return OutcomeTriple
	case o.MatchCount == PairCount:
		return OutcomePair
	default:
		return OutcomeLoss
	}
}
