package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"
)

type ctxKey string

const (
	requestIDKey ctxKey = "requestID"
	workerKey    ctxKey = "worker"
)

// InitLogger installs the default slog logger writing to stdout and, when
// cfg.Dir is set, to a size-rotated file. The returned closer flushes the file sink.
func InitLogger(cfg Config) io.Closer {
	var out io.Writer = os.Stdout
	var closer io.Closer = nopCloser{}

	if cfg.Dir != "" {
		file := &lumberjack.Logger{
			Filename:   filepath.Join(cfg.Dir, LogFileName),
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   true,
		}
		out = io.MultiWriter(os.Stdout, file)
		closer = file
	}

	InitLoggerWithWriter(cfg, out)
	return closer
}

// InitLoggerWithWriter installs the default slog logger writing to w
func InitLoggerWithWriter(cfg Config, w io.Writer) {
	opts := &slog.HandlerOptions{
		Level:     cfg.LogLevel(),
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	if cfg.IsJSON() {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	handler = handler.WithAttrs(cfg.BaseAttributes())

	slog.SetDefault(slog.New(handler))
}

// GenerateRequestID creates a new UUID for tracing requests.
func GenerateRequestID() string {
	return uuid.NewString()
}

// WithRequestID returns a new context containing the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFromContext extracts the request ID from the context, if present.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey).(string)
	return id, ok
}

// GetRequestID returns the request ID or an empty string
func GetRequestID(ctx context.Context) string {
	id, _ := RequestIDFromContext(ctx)
	return id
}

// WithWorker tags ctx with the worker index of the pool goroutine running a job
func WithWorker(ctx context.Context, id int) context.Context {
	return context.WithValue(ctx, workerKey, id)
}

// FromContext returns a logger that includes the request_id and worker attributes when present.
func FromContext(ctx context.Context) *slog.Logger {
	log := slog.Default()
	if id, ok := RequestIDFromContext(ctx); ok {
		log = log.With(AttrKeyRequestID, id)
	}
	if w, ok := ctx.Value(workerKey).(int); ok {
		log = log.With(AttrKeyWorker, w)
	}
	return log
}

// Debug logs at debug level on the default logger
func Debug(msg string, args ...any) { slog.Default().Debug(msg, args...) }

// Info logs at info level on the default logger
func Info(msg string, args ...any) { slog.Default().Info(msg, args...) }

// Warn logs at warn level on the default logger
func Warn(msg string, args ...any) { slog.Default().Warn(msg, args...) }

// Error logs at error level on the default logger
func Error(msg string, args ...any) { slog.Default().Error(msg, args...) }

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
