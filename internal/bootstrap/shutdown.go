package bootstrap

import (
	"context"
	"errors"
	"log/slog"

	"github.com/osse101/FruitReels_Go/internal/scheduler"
	"github.com/osse101/FruitReels_Go/internal/server"
	"github.com/osse101/FruitReels_Go/internal/session"
	"github.com/osse101/FruitReels_Go/internal/sse"
	"github.com/osse101/FruitReels_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server    *server.Server
	Session   session.Service
	Scheduler *scheduler.Scheduler
	Pool      *worker.Pool
	Hub       *sse.Hub
}

// GracefulShutdown stops the application in order:
// 1. HTTP server (stop accepting roll requests)
// 2. Session (cancel unfired payouts, wait for running ones)
// 3. Scheduler and worker pool
// 4. SSE hub
//
// Every step runs even when an earlier one fails; the errors are joined.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) error {
	slog.Info(LogMsgShuttingDownServer)

	var errs []error
	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
			errs = append(errs, err)
		}
	}

	if components.Session != nil {
		if err := components.Session.Shutdown(ctx); err != nil {
			slog.Error(LogMsgSessionShutdownFail, "error", err)
			errs = append(errs, err)
		}
	}

	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}
	if components.Pool != nil {
		components.Pool.Stop()
	}
	if components.Hub != nil {
		components.Hub.Stop()
	}

	slog.Info(LogMsgServerStopped)
	return errors.Join(errs...)
}
