package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/CarPacks_Go/internal/clock"
	"github.com/osse101/CarPacks_Go/internal/database"
	"github.com/osse101/CarPacks_Go/internal/handler"
	"github.com/osse101/CarPacks_Go/internal/identity"
	"github.com/osse101/CarPacks_Go/internal/logger"
	"github.com/osse101/CarPacks_Go/internal/metrics"
	"github.com/osse101/CarPacks_Go/internal/pack"
	"github.com/osse101/CarPacks_Go/internal/repository"
)

// Options carries the listener and middleware settings.
type Options struct {
	Port               int
	TrustedProxies     []string
	CORSAllowedOrigins []string
	MaxBodyBytes       int64
}

// Dependencies are the services the routes delegate to.
type Dependencies struct {
	DBPool   database.Pool
	Catalog  repository.Catalog
	Packs    pack.Service
	Resolver identity.Resolver
	Clock    clock.Clock
}

type Server struct {
	httpServer *http.Server
	router     chi.Router
}

// NewServer creates a new Server instance
func NewServer(opts Options, deps Dependencies) *Server {
	r := NewRouter(opts, deps)
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           r,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		router: r,
	}
}

// NewRouter builds the route table and middleware stack
func NewRouter(opts Options, deps Dependencies) chi.Router {
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if deps.Clock == nil {
		deps.Clock = clock.NewRealClock()
	}

	r := chi.NewRouter()
	detector := NewSuspiciousActivityDetector()

	// Set before Route so subrouters inherit them
	r.NotFound(handler.HandleNotFound())
	r.MethodNotAllowed(handler.HandleMethodNotAllowed())

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(SecurityHeadersMiddleware())
	r.Use(CORSMiddleware(opts.CORSAllowedOrigins))
	r.Use(loggingMiddleware)
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(opts.MaxBodyBytes))
	r.Use(metrics.Middleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.DBPool, deps.Catalog))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		// Auth is applied per endpoint so wrong-method requests get 405 without a credential
		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware(deps.Resolver, opts.TrustedProxies, detector))

			r.Post("/packs/open", handler.HandleOpenPack(deps.Packs))
			r.Get("/packs/{packID}/status", handler.HandlePackStatus(deps.Packs, deps.Clock))
		})
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func isQuietPath(path string) bool {
	for _, p := range QuietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func redactHeaders(h http.Header) http.Header {
	sanitized := make(http.Header, len(h))
	for k, v := range h {
		if strings.EqualFold(k, HeaderAuthorization) || strings.EqualFold(k, HeaderAPIKey) {
			sanitized[k] = []string{RedactedValue}
			continue
		}
		sanitized[k] = v
	}
	return sanitized
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())
		log.Debug(LogMsgRequestHeaders, "headers", redactHeaders(r.Header))

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
