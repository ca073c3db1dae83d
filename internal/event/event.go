package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/FruitReels_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Roll lifecycle event types
const (
	RollStarted Type = domain.EventTypeRollStarted
	RollSettled Type = domain.EventTypeRollSettled
	RollReset   Type = domain.EventTypeRollReset
	RollIgnored Type = domain.EventTypeRollIgnored
)

// AllRollTypes lists every event the session publishes
var AllRollTypes = []Type{RollStarted, RollSettled, RollReset, RollIgnored}

// NewRollStartedEvent creates a roll started event with type-safe payload
func NewRollStartedEvent(roll domain.Roll, winnings int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RollStarted,
		Payload: domain.RollStartedPayloadV1{
			Roll:      roll,
			Winnings:  winnings,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewRollSettledEvent creates a roll settled event. Stale settlements are
// tagged in metadata so subscribers can filter them without decoding.
func NewRollSettledEvent(s domain.Settlement) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RollSettled,
		Payload: domain.RollSettledPayloadV1{
			Settlement: s,
			Timestamp:  time.Now().Unix(),
		},
		Metadata: map[string]interface{}{"stale": s.Stale},
	}
}

// NewRollResetEvent creates a roll reset event. rollID is empty when no roll was in flight.
func NewRollResetEvent(rollID string, payoutCancelled bool, winnings int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RollReset,
		Payload: domain.RollResetPayloadV1{
			RollID:          rollID,
			PayoutCancelled: payoutCancelled,
			Winnings:        winnings,
			Timestamp:       time.Now().Unix(),
		},
	}
}

// NewRollIgnoredEvent creates an event for a roll request dropped while another is in flight
func NewRollIgnoredEvent(inFlightRollID string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RollIgnored,
		Payload: domain.RollIgnoredPayloadV1{
			InFlightRollID: inFlightRollID,
			Timestamp:      time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers.
// Handlers run synchronously in subscription order.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// SubscribeAll subscribes one handler to several event types
func (b *MemoryBus) SubscribeAll(types []Type, handler Handler) {
	for _, t := range types {
		b.Subscribe(t, handler)
	}
}
