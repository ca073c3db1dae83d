package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/FruitReels_Go/internal/handler"
	"github.com/osse101/FruitReels_Go/internal/logger"
	"github.com/osse101/FruitReels_Go/internal/metrics"
	"github.com/osse101/FruitReels_Go/internal/sse"
)

// Options configures the HTTP surface
type Options struct {
	Port           int
	AllowedOrigins []string
	TrustedProxies []string
}

// Server is the presentation bridge for one local game session
type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, game *handler.GameHandler, hub *sse.Hub) *Server {
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", opts.Port),
		Handler:           NewRouter(opts, game, hub),
		ReadHeaderTimeout: ReadHeaderTimeout,
	}
	// Open event streams never go idle, so end them when shutdown begins
	httpServer.RegisterOnShutdown(hub.Stop)

	return &Server{httpServer: httpServer}
}

// NewRouter builds the route table and middleware stack
func NewRouter(opts Options, game *handler.GameHandler, hub *sse.Hub) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", HeaderRequestID},
		ExposedHeaders: []string{HeaderRequestID},
		MaxAge:         CORSMaxAgeSeconds,
	}))
	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(opts.TrustedProxies, NewRateLimiter(RateLimitRequests, RateLimitWindow)))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/roll", game.HandleRoll)
		r.Post("/reset", game.HandleReset)
		r.Get("/session", game.HandleSession)
		r.Get("/rolls", game.HandleRecentRolls)
		r.Get("/rolls/{id}", game.HandleGetRoll)
		r.Get("/catalog", game.HandleCatalog)
		r.Get("/events", sse.Handler(hub))
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Flush keeps the SSE stream working through the wrapper
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func isQuietPath(path string) bool {
	for _, p := range QuietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		// Reuse the caller's request ID when it sends one
		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		w.Header().Set(HeaderRequestID, requestID)

		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderCookie) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start starts the server and blocks until it stops
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
