package slots

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/FruitReels_Go/internal/catalog"
	"github.com/osse101/FruitReels_Go/internal/domain"
	"github.com/osse101/FruitReels_Go/internal/utils"
)

// SimulationStats aggregates the outcomes of many rolls
type SimulationStats struct {
	Rolls     int
	Wagered   int64
	Returned  int64 // Gross payouts, costPerRoll * multiplier per roll
	Wins      int
	ByClass   map[string]int
	PairHits  map[domain.SymbolKind]int
	TripleHit map[domain.SymbolKind]int
}

func newSimulationStats() SimulationStats {
	return SimulationStats{
		ByClass:   make(map[string]int),
		PairHits:  make(map[domain.SymbolKind]int),
		TripleHit: make(map[domain.SymbolKind]int),
	}
}

// RTP is the return to player, gross payouts over wagers
func (s SimulationStats) RTP() float64 {
	if s.Wagered == 0 {
		return 0
	}
	return float64(s.Returned) / float64(s.Wagered)
}

// HitFrequency is the share of rolls that paid more than they cost
func (s SimulationStats) HitFrequency() float64 {
	if s.Rolls == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Rolls)
}

func (s *SimulationStats) add(o domain.Outcome, cost int) {
	s.Rolls++
	s.Wagered += int64(cost)
	s.Returned += int64(cost) * int64(o.Multiplier)
	if o.IsWin() {
		s.Wins++
	}
	class := Classify(o)
	s.ByClass[class]++
	switch class {
	case OutcomePair:
		s.PairHits[o.MatchedKind]++
	case OutcomeTriple:
		s.TripleHit[o.MatchedKind]++
	}
}

func (s *SimulationStats) merge(o SimulationStats) {
	s.Rolls += o.Rolls
	s.Wagered += o.Wagered
	s.Returned += o.Returned
	s.Wins += o.Wins
	for k, v := range o.ByClass {
		s.ByClass[k] += v
	}
	for k, v := range o.PairHits {
		s.PairHits[k] += v
	}
	for k, v := range o.TripleHit {
		s.TripleHit[k] += v
	}
}

// Simulate runs rolls through engines seeded from seed, split across workers.
// The same seed, rolls and workers always produce the same stats.
func Simulate(ctx context.Context, cat *catalog.Catalog, cfg Config, rolls, workers int, seed uint64) (SimulationStats, error) {
	if rolls < 0 {
		return SimulationStats{}, fmt.Errorf("%w: rolls must not be negative, got %d", domain.ErrInvalidInput, rolls)
	}
	if workers < 1 {
		workers = 1
	}

	parts := make([]SimulationStats, workers)
	g, gctx := errgroup.WithContext(ctx)

	for w := 0; w < workers; w++ {
		share := rolls / workers
		if w < rolls%workers {
			share++
		}
		engine, err := NewEngineWithRand(cat, cfg, utils.SeededIntn(seed+uint64(w)))
		if err != nil {
			return SimulationStats{}, err
		}

		g.Go(func() error {
			stats := newSimulationStats()
			for i := 0; i < share; i++ {
				if i%1024 == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				result, err := engine.Roll()
				if err != nil {
					return err
				}
				outcome, err := engine.EvaluateLanding(result.Landing)
				if err != nil {
					return err
				}
				stats.add(outcome, cfg.CostPerRoll)
			}
			parts[w] = stats
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return SimulationStats{}, err
	}

	total := newSimulationStats()
	for _, p := range parts {
		total.merge(p)
	}
	return total, nil
}
