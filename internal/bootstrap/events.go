package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/CarPacks_Go/internal/event"
	"github.com/osse101/CarPacks_Go/internal/metrics"
)

// InitializeEventSystem creates the in-process event bus and registers the metrics collector on it.
func InitializeEventSystem() (event.Bus, error) {
	bus := event.NewMemoryBus()

	collector := metrics.NewEventMetricsCollector()
	if err := collector.Register(bus); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)
	slog.Info(LogMsgEventSystemInitialized)

	return bus, nil
}
