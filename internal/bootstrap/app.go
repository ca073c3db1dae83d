package bootstrap

import (
	"fmt"
	"log/slog"

	"golang.org/x/text/language"

	"github.com/osse101/FruitReels_Go/internal/catalog"
	"github.com/osse101/FruitReels_Go/internal/config"
	"github.com/osse101/FruitReels_Go/internal/event"
	"github.com/osse101/FruitReels_Go/internal/handler"
	"github.com/osse101/FruitReels_Go/internal/scheduler"
	"github.com/osse101/FruitReels_Go/internal/server"
	"github.com/osse101/FruitReels_Go/internal/session"
	"github.com/osse101/FruitReels_Go/internal/slots"
	"github.com/osse101/FruitReels_Go/internal/sse"
	"github.com/osse101/FruitReels_Go/internal/timing"
	"github.com/osse101/FruitReels_Go/internal/worker"
)

// App holds every long-lived component of a running game
type App struct {
	Server    *server.Server
	Session   session.Service
	Scheduler *scheduler.Scheduler
	Pool      *worker.Pool
	Hub       *sse.Hub
	Bus       event.Bus
}

// Build wires the application from configuration. Background components are
// started; call GracefulShutdown with the returned components to stop them.
func Build(cfg *config.Config) (*App, error) {
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}
	slog.Info(LogMsgCatalogLoaded, "path", cfg.CatalogPath, "kinds", cat.Kinds())

	engine, err := slots.NewEngine(cat, slots.Config{
		CostPerRoll: cfg.CostPerRoll,
		ReelCount:   cfg.ReelCount,
		ReelLength:  cfg.ReelLength(),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateEngine, err)
	}

	coordinator, err := timing.NewCoordinator(timing.Config{
		MinUnits: cfg.TimingMinUnits,
		MaxUnits: cfg.TimingMaxUnits,
		Unit:     cfg.TimingUnit,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateCoordinate, err)
	}

	locale, err := language.Parse(cfg.Locale)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedParseLocale, err)
	}

	policy, err := session.ParseResetPolicy(cfg.ResetPolicy)
	if err != nil {
		return nil, err
	}

	// Payouts run on the worker pool once their timer fires
	pool := worker.NewPool(cfg.WorkerCount, cfg.WorkerQueueSize)
	pool.Start()
	sched := scheduler.New(pool)

	hub := sse.NewHub()
	hub.Start()
	bus := InitializeEventSystem(hub)

	svc, err := session.NewService(session.Config{
		InitialWinnings: cfg.InitialWinnings,
		ResetPolicy:     policy,
		HistorySize:     cfg.HistorySize,
		HistoryTTL:      cfg.HistoryTTL,
	}, engine, coordinator, sched, bus, slots.NewFormatter(locale, cfg.CostPerRoll))
	if err != nil {
		sched.Stop()
		pool.Stop()
		hub.Stop()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateSession, err)
	}

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		TrustedProxies: cfg.TrustedProxies,
	}, handler.NewGameHandler(svc, cat, cfg.CostPerRoll), hub)

	return &App{
		Server:    srv,
		Session:   svc,
		Scheduler: sched,
		Pool:      pool,
		Hub:       hub,
		Bus:       bus,
	}, nil
}

// ShutdownComponents returns the components in the form GracefulShutdown takes
func (a *App) ShutdownComponents() ShutdownComponents {
	return ShutdownComponents{
		Server:    a.Server,
		Session:   a.Session,
		Scheduler: a.Scheduler,
		Pool:      a.Pool,
		Hub:       a.Hub,
	}
}
