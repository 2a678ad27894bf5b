package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/CarPacks_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version  string                 `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type                   `json:"type"`
	Payload  interface{}            `json:"payload"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// Pack event types
const (
	PackOpened       Type = domain.EventTypePackOpened
	PackOpenRejected Type = domain.EventTypePackOpenRejected
)

// PackOpenedPayloadV1 is the typed payload for pack opened events
type PackOpenedPayloadV1 struct {
	ParticipantID string   `json:"participant_id"`
	PackID        string   `json:"pack_id"`
	CardID        string   `json:"card_id"`
	Rarity        string   `json:"rarity"`
	NewHolding    bool     `json:"new_holding"`
	Degraded      []string `json:"degraded,omitempty"`
	DurationMS    int64    `json:"duration_ms"`
	Timestamp     int64    `json:"timestamp"`
}

// PackOpenRejectedPayloadV1 is the typed payload for cooldown rejections
type PackOpenRejectedPayloadV1 struct {
	ParticipantID    string `json:"participant_id"`
	PackID           string `json:"pack_id"`
	RemainingSeconds int64  `json:"remaining_seconds"`
	Timestamp        int64  `json:"timestamp"`
}

// NewPackOpenedEvent creates a pack opened event with type-safe payload
func NewPackOpenedEvent(participantID, packID string, result domain.OpenResult, newHolding bool, took time.Duration) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PackOpened,
		Payload: PackOpenedPayloadV1{
			ParticipantID: participantID,
			PackID:        packID,
			CardID:        result.Card.ID,
			Rarity:        result.Rarity,
			NewHolding:    newHolding,
			Degraded:      result.Degraded,
			DurationMS:    took.Milliseconds(),
			Timestamp:     result.OpenedAt.Unix(),
		},
	}
}

// NewPackOpenRejectedEvent creates a cooldown rejection event
func NewPackOpenRejectedEvent(participantID, packID string, remaining time.Duration, at time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PackOpenRejected,
		Payload: PackOpenRejectedPayloadV1{
			ParticipantID:    participantID,
			PackID:           packID,
			RemainingSeconds: int64(remaining.Seconds()),
			Timestamp:        at.Unix(),
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

// Publish runs every subscriber synchronously and aggregates their errors
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

// Subscribe registers a handler for an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
