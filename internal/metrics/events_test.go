package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CarPacks_Go/internal/domain"
	"github.com/osse101/CarPacks_Go/internal/event"
)

func TestEventMetricsCollector_PackOpened(t *testing.T) {
	bus := event.NewMemoryBus()
	require.NoError(t, NewEventMetricsCollector().Register(bus))

	opened := PacksOpened.WithLabelValues("metrics-pack", domain.RarityEpic)
	before := testutil.ToFloat64(opened)
	newBefore := testutil.ToFloat64(NewHoldings)

	evt := event.NewPackOpenedEvent("p1", "metrics-pack", domain.OpenResult{
		Card:     domain.Card{ID: "c1"},
		Rarity:   domain.RarityEpic,
		OpenedAt: time.Now(),
	}, true, 20*time.Millisecond)
	require.NoError(t, bus.Publish(context.Background(), evt))

	assert.Equal(t, before+1, testutil.ToFloat64(opened))
	assert.Equal(t, newBefore+1, testutil.ToFloat64(NewHoldings))
}

func TestEventMetricsCollector_Rejected(t *testing.T) {
	bus := event.NewMemoryBus()
	require.NoError(t, NewEventMetricsCollector().Register(bus))

	c := CooldownRejections.WithLabelValues("metrics-rejected")
	before := testutil.ToFloat64(c)

	require.NoError(t, bus.Publish(context.Background(),
		event.NewPackOpenRejectedEvent("p1", "metrics-rejected", time.Minute, time.Now())))

	assert.Equal(t, before+1, testutil.ToFloat64(c))
}

func TestEventMetricsCollector_IgnoresUnknownPayload(t *testing.T) {
	err := NewEventMetricsCollector().HandleEvent(context.Background(), event.Event{Type: event.PackOpened, Payload: "raw"})
	assert.NoError(t, err)
}

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/api/v1/packs/{packID}/status", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	counter := HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/packs/{packID}/status", "418")
	before := testutil.ToFloat64(counter)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/packs/starter/status", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
