package metrics

import (
	"context"

	"github.com/osse101/FruitReels_Go/internal/domain"
	"github.com/osse101/FruitReels_Go/internal/event"
	"github.com/osse101/FruitReels_Go/internal/logger"
)

// EventMetricsCollector subscribes to roll events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all roll events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, eventType := range event.AllRollTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.RollStarted:
		p, err := event.DecodePayload[domain.RollStartedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadUnexpected, "type", evt.Type, "error", err)
			return nil
		}
		RollsStarted.Inc()
		PendingPayouts.Inc()
		Winnings.Set(float64(p.Winnings))

	case event.RollIgnored:
		RollsIgnored.Inc()

	case event.RollSettled:
		p, err := event.DecodePayload[domain.RollSettledPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadUnexpected, "type", evt.Type, "error", err)
			return nil
		}
		s := p.Settlement
		RollsSettled.WithLabelValues(OutcomeLabel(s.Outcome)).Inc()
		PayoutDelta.Observe(float64(s.Outcome.PayoutDelta))
		PendingPayouts.Dec()
		Winnings.Set(float64(s.WinningsAfter))
		if s.Stale {
			StalePayouts.Inc()
		}

	case event.RollReset:
		p, err := event.DecodePayload[domain.RollResetPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadUnexpected, "type", evt.Type, "error", err)
			return nil
		}
		RollsReset.Inc()
		if p.PayoutCancelled {
			CancelledPayouts.Inc()
			PendingPayouts.Dec()
		}
	}

	return nil
}

// OutcomeLabel maps an outcome to its metric label
func OutcomeLabel(o domain.Outcome) string {
	switch o.MatchCount {
	case 3:
		return OutcomeTriple
	case 2:
		return OutcomePair
	default:
		return OutcomeLoss
	}
}
