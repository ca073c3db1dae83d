package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/FruitReels_Go/internal/event"
	"github.com/osse101/FruitReels_Go/internal/logger"
	"github.com/osse101/FruitReels_Go/internal/metrics"
	"github.com/osse101/FruitReels_Go/internal/sse"
)

// InitializeEventSystem creates the event bus and attaches every subscriber:
// the metrics collector, the SSE bridge and a debug-level event trace.
func InitializeEventSystem(hub *sse.Hub) event.Bus {
	bus := event.NewMemoryBus()

	metrics.NewEventMetricsCollector().Register(bus)
	slog.Info(LogMsgMetricsCollectorInit)

	sse.NewSubscriber(hub, bus).Subscribe()
	slog.Info(LogMsgSSESubscriberInit)

	bus.SubscribeAll(event.AllRollTypes, traceEvent)

	slog.Info(LogMsgEventSystemReady, "types", event.AllRollTypes)
	return bus
}

func traceEvent(ctx context.Context, evt event.Event) error {
	logger.FromContext(ctx).Debug(LogMsgEventTrace, "type", evt.Type, "version", evt.Version)
	return nil
}
