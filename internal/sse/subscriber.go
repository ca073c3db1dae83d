package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/FruitReels_Go/internal/domain"
	"github.com/osse101/FruitReels_Go/internal/event"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers handlers for all roll event types
func (s *Subscriber) Subscribe() {
	s.bus.Subscribe(event.RollStarted, s.handleRollStarted)
	s.bus.Subscribe(event.RollSettled, s.handleRollSettled)
	s.bus.Subscribe(event.RollReset, s.handleRollReset)
	s.bus.Subscribe(event.RollIgnored, s.handleRollIgnored)

	slog.Info(LogMsgSubscriberReady, "types", event.AllRollTypes)
}

func (s *Subscriber) handleRollStarted(_ context.Context, evt event.Event) error {
	p, err := event.DecodePayload[domain.RollStartedPayloadV1](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "type", evt.Type, "error", err)
		return nil
	}

	roll := p.Roll
	s.hub.Broadcast(EventTypeRollStarted, RollStartedPayload{
		RollID:           roll.Result.ID.String(),
		Reels:            roll.Result.Reels,
		Landing:          roll.Result.Landing,
		DurationsSeconds: roll.Timing.Seconds(),
		Stops:            roll.Stops,
		Winnings:         p.Winnings,
	})

	slog.Debug(LogMsgEventBroadcast, "event_type", EventTypeRollStarted, "roll_id", roll.Result.ID)
	return nil
}

func (s *Subscriber) handleRollSettled(_ context.Context, evt event.Event) error {
	p, err := event.DecodePayload[domain.RollSettledPayloadV1](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "type", evt.Type, "error", err)
		return nil
	}

	st := p.Settlement
	s.hub.Broadcast(EventTypeRollSettled, RollSettledPayload{
		RollID:      st.RollID.String(),
		Multiplier:  st.Outcome.Multiplier,
		PayoutDelta: st.Outcome.PayoutDelta,
		Winnings:    st.WinningsAfter,
		Stale:       st.Stale,
		Message:     st.Message,
	})

	slog.Debug(LogMsgEventBroadcast, "event_type", EventTypeRollSettled, "roll_id", st.RollID, "stale", st.Stale)
	return nil
}

func (s *Subscriber) handleRollReset(_ context.Context, evt event.Event) error {
	p, err := event.DecodePayload[domain.RollResetPayloadV1](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(EventTypeRollReset, RollResetPayload{
		RollID:          p.RollID,
		PayoutCancelled: p.PayoutCancelled,
		Winnings:        p.Winnings,
	})
	return nil
}

func (s *Subscriber) handleRollIgnored(_ context.Context, evt event.Event) error {
	p, err := event.DecodePayload[domain.RollIgnoredPayloadV1](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(EventTypeRollIgnored, RollIgnoredPayload{InFlightRollID: p.InFlightRollID})
	return nil
}
