package server

import (
	"net/http"
	"time"
)

// HTTP error messages for middleware responses
const (
	ErrMsgTooManyRequests = "Too many requests. Slow down."
)

// Security alert message templates
const (
	SecurityAlertFailedAuth = "⚠️ SECURITY ALERT: Multiple failed authentication attempts"
	SecurityAlertHighRate   = "⚠️ SECURITY ALERT: Blocking high request rate"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Authentication failed"
)

// HTTP header names
const (
	HeaderAPIKey         = "Apikey"
	HeaderAuthorization  = "Authorization"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"
	HeaderOrigin         = "Origin"
	HeaderVary           = "Vary"

	HeaderAllowOrigin    = "Access-Control-Allow-Origin"
	HeaderAllowHeaders   = "Access-Control-Allow-Headers"
	HeaderAllowMethods   = "Access-Control-Allow-Methods"
	HeaderMaxAge         = "Access-Control-Max-Age"
	HeaderRequestMethod  = "Access-Control-Request-Method"
	HeaderRequestHeaders = "Access-Control-Request-Headers"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// CORS values advertised to browser clients
const (
	CORSWildcard      = "*"
	CORSPreflightBody = "ok"
	CORSMaxAgeSeconds = 300
)

var (
	CORSAllowedHeaders = []string{"Authorization", "X-Client-Info", "Apikey", "Content-Type"}
	CORSAllowedMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
)

// Abuse detection thresholds
const (
	detectorWindow        = 5 * time.Minute
	failedAuthAlertAt     = 5
	requestLimitPerWindow = 1000
	highRateLogEveryN     = 100
	DefaultMaxBodyBytes   = 1 << 20
	readHeaderTimeout     = 5 * time.Second
)

// Paths that skip request logging
var QuietPaths = []string{
	"/healthz",
	"/readyz",
	"/metrics",
}

// Header redaction marker
const (
	RedactedValue = "[REDACTED]"
)
