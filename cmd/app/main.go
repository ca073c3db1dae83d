package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/automaxprocs/maxprocs"
	"golang.org/x/sync/errgroup"

	"github.com/osse101/FruitReels_Go/internal/bootstrap"
	"github.com/osse101/FruitReels_Go/internal/config"
	"github.com/osse101/FruitReels_Go/internal/handler"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	closer := initLogger(cfg)
	defer closer.Close()

	if _, err := maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
		slog.Debug(fmt.Sprintf(format, args...))
	})); err != nil {
		slog.Warn("Failed to set GOMAXPROCS", "error", err)
	}

	for _, w := range cfg.Warnings() {
		slog.Warn(w)
	}

	slog.Info(bootstrap.LogMsgStartingFruitReels,
		"version", handler.GetVersion(),
		"environment", cfg.Environment,
		"port", cfg.Port,
		"reset_policy", cfg.ResetPolicy)

	app, err := bootstrap.Build(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := app.Server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		return bootstrap.GracefulShutdown(shutdownCtx, app.ShutdownComponents())
	})

	return g.Wait()
}
