package metrics

import (
	"context"
	"time"

	"github.com/osse101/CarPacks_Go/internal/event"
	"github.com/osse101/CarPacks_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	for _, eventType := range []event.Type{event.PackOpened, event.PackOpenRejected} {
		bus.Subscribe(eventType, e.HandleEvent)
	}
	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch p := evt.Payload.(type) {
	case event.PackOpenedPayloadV1:
		PacksOpened.WithLabelValues(p.PackID, p.Rarity).Inc()
		PackOpenDuration.WithLabelValues(p.PackID).Observe((time.Duration(p.DurationMS) * time.Millisecond).Seconds())
		if p.NewHolding {
			NewHoldings.Inc()
		}
	case event.PackOpenRejectedPayloadV1:
		CooldownRejections.WithLabelValues(p.PackID).Inc()
	default:
		log.Debug(LogMsgUnexpectedPayload, "type", evt.Type)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
