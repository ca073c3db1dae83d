package slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FruitReels_Go/internal/catalog"
	"github.com/osse101/FruitReels_Go/internal/domain"
	"github.com/osse101/FruitReels_Go/internal/utils"
)

func newTestEngine(t *testing.T, rng utils.IntnFunc) *Engine {
	t.Helper()
	e, err := NewEngineWithRand(catalog.Default(), DefaultConfig(), rng)
	require.NoError(t, err)
	return e
}

func sym(t *testing.T, kind domain.SymbolKind) domain.Symbol {
	t.Helper()
	s, err := catalog.Default().Lookup(kind)
	require.NoError(t, err)
	return s
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 100, cfg.CostPerRoll)
	assert.Equal(t, 3, cfg.ReelCount)
	assert.Equal(t, 40, cfg.ReelLength)
	assert.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero cost", Config{CostPerRoll: 0, ReelCount: 3, ReelLength: 40}},
		{"negative cost", Config{CostPerRoll: -5, ReelCount: 3, ReelLength: 40}},
		{"two reels", Config{CostPerRoll: 100, ReelCount: 2, ReelLength: 40}},
		{"zero length", Config{CostPerRoll: 100, ReelCount: 3, ReelLength: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.cfg.Validate(), domain.ErrInvalidConfig)
		})
	}
}

func TestNewEngine_RequiresCatalog(t *testing.T) {
	_, err := NewEngine(nil, DefaultConfig())
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestGenerateReels_ShapeAndMembership(t *testing.T) {
	e, err := NewEngine(catalog.Default(), DefaultConfig())
	require.NoError(t, err)
	cat := e.Catalog()

	for i := 0; i < 50; i++ {
		reels, err := e.GenerateReels(3, 40)
		require.NoError(t, err)
		require.Len(t, reels, 3)
		for _, reel := range reels {
			require.Len(t, reel, 40)
			for _, s := range reel {
				assert.True(t, cat.Contains(s), "symbol %v not in catalog", s)
			}
		}
	}
}

func TestGenerateReels_ContiguousPartition(t *testing.T) {
	// Draw order 0,0,1,1,2,2 over 3 reels of 2: contiguous gives [C C] [A A] [B B],
	// interleaving would give [C A] ...
	e := newTestEngine(t, utils.SequenceIntn(0, 0, 1, 1, 2, 2))

	reels, err := e.GenerateReels(3, 2)
	require.NoError(t, err)

	assert.Equal(t, domain.ReelSequence{sym(t, catalog.KindCherry), sym(t, catalog.KindCherry)}, reels[0])
	assert.Equal(t, domain.ReelSequence{sym(t, catalog.KindApple), sym(t, catalog.KindApple)}, reels[1])
	assert.Equal(t, domain.ReelSequence{sym(t, catalog.KindBanana), sym(t, catalog.KindBanana)}, reels[2])
}

func TestGenerateReels_InvalidShape(t *testing.T) {
	e := newTestEngine(t, utils.SequenceIntn(0))

	_, err := e.GenerateReels(0, 40)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
	_, err = e.GenerateReels(3, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestGenerateReels_UsesWholeKindRange(t *testing.T) {
	e := newTestEngine(t, utils.SeededIntn(7))

	seen := map[domain.SymbolKind]bool{}
	reels, err := e.GenerateReels(3, 40)
	require.NoError(t, err)
	for _, reel := range reels {
		for _, s := range reel {
			seen[s.Kind] = true
		}
	}
	assert.Len(t, seen, 3)
}

func TestLandingIndex(t *testing.T) {
	for reel := 0; reel < 3; reel++ {
		assert.Equal(t, 0, LandingIndex(reel, 40))
	}
	assert.Equal(t, 0, FlatLandingIndex(0, 40))
	assert.Equal(t, 40, FlatLandingIndex(1, 40))
	assert.Equal(t, 80, FlatLandingIndex(2, 40))
	assert.Equal(t, -1, LandingIndex(0, 0))
}

func TestLandingSymbols(t *testing.T) {
	cherry, apple, banana := sym(t, catalog.KindCherry), sym(t, catalog.KindApple), sym(t, catalog.KindBanana)
	reels := []domain.ReelSequence{
		{cherry, banana, banana},
		{apple, cherry, cherry},
		{banana, apple, apple},
	}

	landing, err := LandingSymbols(reels)
	require.NoError(t, err)
	assert.Equal(t, []domain.Symbol{cherry, apple, banana}, landing)

	_, err = LandingSymbols([]domain.ReelSequence{{cherry}, {}, {banana}})
	assert.ErrorIs(t, err, domain.ErrInvalidRoll)
}

func TestEvaluateLanding(t *testing.T) {
	e := newTestEngine(t, nil)
	cherry, apple, banana := sym(t, catalog.KindCherry), sym(t, catalog.KindApple), sym(t, catalog.KindBanana)

	tests := []struct {
		name           string
		landing        []domain.Symbol
		wantMultiplier int
		wantDelta      int
		wantKind       domain.SymbolKind
		wantCount      int
		wantErr        error
	}{
		{"pair of apples", []domain.Symbol{apple, apple, cherry}, 4, 300, catalog.KindApple, 2, nil},
		{"split pair", []domain.Symbol{banana, cherry, banana}, 8, 700, catalog.KindBanana, 2, nil},
		{"three cherries", []domain.Symbol{cherry, cherry, cherry}, 4, 300, catalog.KindCherry, 3, nil},
		{"three bananas", []domain.Symbol{banana, banana, banana}, 16, 1500, catalog.KindBanana, 3, nil},
		{"all distinct", []domain.Symbol{cherry, apple, banana}, 0, -100, "", 0, nil},
		{"two pairs over four symbols", []domain.Symbol{cherry, cherry, banana, banana}, 0, 0, "", 0, domain.ErrInvalidRoll},
		{"too few symbols", []domain.Symbol{apple, apple}, 0, 0, "", 0, domain.ErrInvalidRoll},
		{"no symbols", nil, 0, 0, "", 0, domain.ErrInvalidRoll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := e.EvaluateLanding(tt.landing)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, domain.Outcome{}, out)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMultiplier, out.Multiplier)
			assert.Equal(t, tt.wantDelta, out.PayoutDelta)
			assert.Equal(t, tt.wantKind, out.MatchedKind)
			assert.Equal(t, tt.wantCount, out.MatchCount)
		})
	}
}

func TestEvaluateLanding_RepeatedCallsAgree(t *testing.T) {
	e := newTestEngine(t, nil)
	cherry, banana := sym(t, catalog.KindCherry), sym(t, catalog.KindBanana)
	landing := []domain.Symbol{banana, cherry, banana}

	want, err := e.EvaluateLanding(landing)
	require.NoError(t, err)
	for i := 0; i < 200; i++ {
		got, err := e.EvaluateLanding(landing)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	// Inputs that could hold two pairs never produce an outcome
	for i := 0; i < 200; i++ {
		_, err := e.EvaluateLanding([]domain.Symbol{cherry, cherry, banana, banana})
		require.ErrorIs(t, err, domain.ErrInvalidRoll)
	}
}

func TestEvaluateLanding_UsesCatalogMultiplier(t *testing.T) {
	e := newTestEngine(t, nil)
	forged := sym(t, catalog.KindCherry)
	forged.Multiplier = 1000

	out, err := e.EvaluateLanding([]domain.Symbol{forged, forged, sym(t, catalog.KindApple)})
	require.NoError(t, err)
	assert.Equal(t, catalog.MultiplierCherry, out.Multiplier)
}

func TestEvaluateLanding_UnknownKind(t *testing.T) {
	e := newTestEngine(t, nil)
	plum := domain.Symbol{Kind: "PLUM", Multiplier: 2}

	_, err := e.EvaluateLanding([]domain.Symbol{plum, plum, sym(t, catalog.KindApple)})
	assert.ErrorIs(t, err, domain.ErrUnknownSymbol)
}

func TestEvaluate_ReadsLandingPositionsOnly(t *testing.T) {
	e := newTestEngine(t, nil)
	cherry, apple, banana := sym(t, catalog.KindCherry), sym(t, catalog.KindApple), sym(t, catalog.KindBanana)

	// Every non-landing position is banana; only the first symbol of each reel counts.
	reels := []domain.ReelSequence{
		{apple, banana, banana},
		{apple, banana, banana},
		{cherry, banana, banana},
	}

	out, err := e.Evaluate(reels)
	require.NoError(t, err)
	assert.Equal(t, 4, out.Multiplier)
	assert.Equal(t, 300, out.PayoutDelta)
}

func TestEvaluate_Idempotent(t *testing.T) {
	e := newTestEngine(t, utils.SeededIntn(99))

	for i := 0; i < 20; i++ {
		result, err := e.Roll()
		require.NoError(t, err)

		first, err := e.Evaluate(result.Reels)
		require.NoError(t, err)
		second, err := e.Evaluate(result.Reels)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	}
}

func TestEvaluate_WrongReelCount(t *testing.T) {
	e := newTestEngine(t, nil)
	_, err := e.Evaluate([]domain.ReelSequence{{sym(t, catalog.KindApple)}})
	assert.ErrorIs(t, err, domain.ErrInvalidRoll)
}

func TestRoll(t *testing.T) {
	e := newTestEngine(t, utils.SeededIntn(1))

	a, err := e.Roll()
	require.NoError(t, err)
	b, err := e.Roll()
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	require.Len(t, a.Reels, 3)
	require.Len(t, a.Landing, 3)
	for r, reel := range a.Reels {
		assert.Len(t, reel, 40)
		assert.Equal(t, reel[0], a.Landing[r])
	}
}

func TestClassify(t *testing.T) {
	assert.Equal(t, OutcomeLoss, Classify(domain.Outcome{}))
	assert.Equal(t, OutcomePair, Classify(domain.Outcome{MatchCount: 2}))
	assert.Equal(t, OutcomeTriple, Classify(domain.Outcome{MatchCount: 3}))
}

func TestPayoutDelta(t *testing.T) {
	e := newTestEngine(t, nil)
	assert.Equal(t, -100, e.PayoutDelta(0))
	assert.Equal(t, 0, e.PayoutDelta(1))
	assert.Equal(t, 100, e.PayoutDelta(2))
}
