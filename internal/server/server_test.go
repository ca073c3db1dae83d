package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/osse101/FruitReels_Go/internal/catalog"
	"github.com/osse101/FruitReels_Go/internal/event"
	"github.com/osse101/FruitReels_Go/internal/handler"
	"github.com/osse101/FruitReels_Go/internal/scheduler"
	"github.com/osse101/FruitReels_Go/internal/session"
	"github.com/osse101/FruitReels_Go/internal/slots"
	"github.com/osse101/FruitReels_Go/internal/sse"
	"github.com/osse101/FruitReels_Go/internal/timing"
	"github.com/osse101/FruitReels_Go/internal/worker"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	cat := catalog.Default()
	engine, err := slots.NewEngine(cat, slots.DefaultConfig())
	require.NoError(t, err)

	coord, err := timing.NewCoordinator(timing.Config{MinUnits: 1, MaxUnits: 2, Unit: time.Hour})
	require.NoError(t, err)

	pool := worker.NewPool(1, 4)
	pool.Start()
	sched := scheduler.New(pool)
	bus := event.NewMemoryBus()

	svc, err := session.NewService(session.DefaultConfig(), engine, coord, sched, bus,
		slots.NewFormatter(language.English, slots.DefaultCostPerRoll))
	require.NoError(t, err)

	hub := sse.NewHub()
	hub.Start()

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = svc.Shutdown(ctx)
		sched.Stop()
		pool.Stop()
		hub.Stop()
	})

	opts := Options{Port: 0, AllowedOrigins: []string{"http://localhost:3000"}}
	return NewRouter(opts, handler.NewGameHandler(svc, cat, slots.DefaultCostPerRoll), hub)
}

func TestRouter_Routes(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
		status int
	}{
		{"healthz", http.MethodGet, "/healthz", http.StatusOK},
		{"version", http.MethodGet, "/version", http.StatusOK},
		{"metrics", http.MethodGet, "/metrics", http.StatusOK},
		{"session", http.MethodGet, "/api/v1/session", http.StatusOK},
		{"catalog", http.MethodGet, "/api/v1/catalog", http.StatusOK},
		{"rolls", http.MethodGet, "/api/v1/rolls", http.StatusOK},
		{"unknown roll", http.MethodGet, "/api/v1/rolls/00000000-0000-0000-0000-000000000001", http.StatusNotFound},
		{"bad roll id", http.MethodGet, "/api/v1/rolls/not-a-uuid", http.StatusBadRequest},
		{"reset while idle", http.MethodPost, "/api/v1/reset", http.StatusOK},
		{"wrong method", http.MethodGet, "/api/v1/roll", http.StatusMethodNotAllowed},
		{"unknown route", http.MethodGet, "/api/v1/nope", http.StatusNotFound},
		{"swagger ui", http.MethodGet, "/swagger/index.html", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestRouter_RollThenIgnored(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/roll", nil))
	require.Equal(t, http.StatusAccepted, rec.Code)

	var first handler.RollResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &first))
	assert.True(t, first.Started)
	require.NotNil(t, first.Roll)
	assert.Len(t, first.Roll.Stops, slots.DefaultReelCount)

	// Payout is an hour away so the second request lands mid-roll
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/roll", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var second handler.RollResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &second))
	assert.False(t, second.Started)
	require.NotNil(t, second.Roll)
	assert.Equal(t, first.Roll.Result.ID, second.Roll.Result.ID)
	require.NotNil(t, second.Session)
	assert.True(t, second.Session.RollInProgress)
	// Winnings only move when the payout lands
	assert.Equal(t, session.DefaultInitialWinnings, second.Session.Winnings)
}

func TestRouter_RequestID(t *testing.T) {
	router := newTestRouter(t)

	t.Run("generated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/session", nil))
		assert.NotEmpty(t, rec.Header().Get(HeaderRequestID))
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/session", nil)
		req.Header.Set(HeaderRequestID, "req-123")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, "req-123", rec.Header().Get(HeaderRequestID))
	})

	t.Run("quiet paths skip request id", func(t *testing.T) {
		for _, path := range []string{"/healthz", "/swagger/index.html"} {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Empty(t, rec.Header().Get(HeaderRequestID), path)
		}
	})
}

func TestRouter_CORS(t *testing.T) {
	router := newTestRouter(t)

	t.Run("allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/v1/roll", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.True(t, strings.Contains(rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost))
	})

	t.Run("foreign origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/session", nil)
		req.Header.Set("Origin", "http://evil.example")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestResponseWriter_Flush(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	_, err := rw.Write([]byte("data"))
	require.NoError(t, err)
	rw.Flush()

	assert.True(t, rec.Flushed)
	assert.Equal(t, http.StatusOK, rw.statusCode)
}
