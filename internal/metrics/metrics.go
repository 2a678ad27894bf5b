package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	PacksOpened = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePacksOpened,
			Help: HelpTextPacksOpened,
		},
		[]string{LabelPack, LabelRarity},
	)

	PackOpenOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePackOpenOutcomes,
			Help: HelpTextPackOpenOutcomes,
		},
		[]string{LabelOutcome},
	)

	PackOpenDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNamePackOpenDuration,
			Help:    HelpTextPackOpenDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelPack},
	)

	CooldownRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCooldownRejections,
			Help: HelpTextCooldownRejections,
		},
		[]string{LabelPack},
	)

	NewHoldings = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameNewHoldings,
			Help: HelpTextNewHoldings,
		},
	)

	HoldingFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameHoldingFallbacks,
			Help: HelpTextHoldingFallbacks,
		},
	)

	DegradedWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDegradedWrites,
			Help: HelpTextDegradedWrites,
		},
		[]string{LabelStep},
	)
)

// Cache Metrics
var (
	CatalogCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCatalogCacheLookups,
			Help: HelpTextCatalogCacheLookups,
		},
		[]string{LabelKind, LabelResult},
	)
)
