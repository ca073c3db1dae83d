package bootstrap

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FruitReels_Go/internal/config"
	"github.com/osse101/FruitReels_Go/internal/domain"
	"github.com/osse101/FruitReels_Go/internal/handler"
	"github.com/osse101/FruitReels_Go/internal/testing/leaktest"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:               0,
		Environment:        "test",
		LogLevel:           "info",
		LogFormat:          "text",
		CostPerRoll:        100,
		ReelCount:          3,
		TotalSymbolCount:   30,
		InitialWinnings:    1000,
		Locale:             "en",
		TimingMinUnits:     1,
		TimingMaxUnits:     2,
		TimingUnit:         5 * time.Millisecond,
		ResetPolicy:        "keep",
		HistorySize:        10,
		HistoryTTL:         time.Minute,
		WorkerCount:        1,
		WorkerQueueSize:    4,
		CORSAllowedOrigins: []string{"*"},
		ShutdownTimeout:    time.Second,
	}
}

func getSnapshot(t *testing.T, h http.Handler) domain.SessionSnapshot {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/session", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var snap domain.SessionSnapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	return snap
}

func TestBuild_RollSettlesEndToEnd(t *testing.T) {
	app, err := Build(testConfig())
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = GracefulShutdown(context.Background(), app.ShutdownComponents())
	})
	h := app.Server.Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/roll", nil))
	require.Equal(t, http.StatusAccepted, rec.Code)

	var resp handler.RollResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Roll)
	assert.Len(t, resp.Roll.Result.Reels, 3)
	assert.Len(t, resp.Roll.Result.Reels[0], 10)

	require.Eventually(t, func() bool {
		return !getSnapshot(t, h).RollInProgress
	}, 2*time.Second, 5*time.Millisecond)

	snap := getSnapshot(t, h)
	require.NotNil(t, snap.LastSettlement)
	assert.Equal(t, resp.Roll.Result.ID, snap.LastSettlement.RollID)
	assert.Equal(t, 900+100*snap.LastSettlement.Outcome.Multiplier, snap.Winnings)
	assert.NotEmpty(t, snap.LastSettlement.Message)
}

func TestBuild_InvalidInputs(t *testing.T) {
	t.Run("missing catalog file", func(t *testing.T) {
		cfg := testConfig()
		cfg.CatalogPath = "does/not/exist.yaml"
		_, err := Build(cfg)
		assert.ErrorContains(t, err, ErrMsgFailedLoadCatalog)
	})

	t.Run("bad locale", func(t *testing.T) {
		cfg := testConfig()
		cfg.Locale = "!!"
		_, err := Build(cfg)
		assert.ErrorContains(t, err, ErrMsgFailedParseLocale)
	})

	t.Run("unknown reset policy", func(t *testing.T) {
		cfg := testConfig()
		cfg.ResetPolicy = "later"
		_, err := Build(cfg)
		assert.ErrorIs(t, err, domain.ErrInvalidConfig)
	})
}

func TestGracefulShutdown_StopsBackgroundWork(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		cfg := testConfig()
		cfg.HistoryTTL = 0 // Expiring history runs a cleanup goroutine for the process lifetime
		app, err := Build(cfg)
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		app.Server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/roll", nil))
		require.Equal(t, http.StatusAccepted, rec.Code)

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		require.NoError(t, GracefulShutdown(ctx, app.ShutdownComponents()))
	})
}

func TestGracefulShutdown_NilComponents(t *testing.T) {
	assert.NoError(t, GracefulShutdown(context.Background(), ShutdownComponents{}))
}
