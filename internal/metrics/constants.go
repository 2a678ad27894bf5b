package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNamePacksOpened        = "packs_opened_total"
	MetricNamePackOpenOutcomes   = "pack_open_outcomes_total"
	MetricNamePackOpenDuration   = "pack_open_duration_seconds"
	MetricNameCooldownRejections = "pack_cooldown_rejections_total"
	MetricNameNewHoldings        = "holdings_created_total"
	MetricNameHoldingFallbacks   = "holding_insert_fallbacks_total"
	MetricNameDegradedWrites     = "pack_open_degraded_writes_total"
)

// Cache metric names
const (
	MetricNameCatalogCacheLookups = "catalog_cache_lookups_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextPacksOpened        = "Total number of successful pack opens by pack and rarity"
	HelpTextPackOpenOutcomes   = "Pack open attempts by terminal outcome"
	HelpTextPackOpenDuration   = "Time spent opening a pack in seconds"
	HelpTextCooldownRejections = "Pack opens refused because the cooldown was active"
	HelpTextNewHoldings        = "Opens that granted a card the participant did not hold yet"
	HelpTextHoldingFallbacks   = "Holding inserts that lost a race and fell back to increment"
	HelpTextDegradedWrites     = "Best-effort writes that failed after the reward was granted"
)

// Cache metric help text
const (
	HelpTextCatalogCacheLookups = "Catalog cache lookups by kind and result"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelPack    = "pack"
	LabelRarity  = "rarity"
	LabelOutcome = "outcome"
	LabelStep    = "step"
	LabelKind    = "kind"
	LabelResult  = "result"
)

// Cache lookup results
const (
	CacheResultHit  = "hit"
	CacheResultMiss = "miss"
)

// PathUnmatched labels requests that matched no route
const PathUnmatched = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgUnexpectedPayload = "Event payload has unexpected type"
	LogMsgMetricsRecorded   = "Metrics recorded for event"
)
