package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/osse101/CarPacks_Go/internal/database"
	"github.com/osse101/CarPacks_Go/internal/domain"
	"github.com/osse101/CarPacks_Go/internal/logger"
)

// readinessTimeout bounds each probe of /readyz
const readinessTimeout = 2 * time.Second

// Readiness check names and states
const (
	CheckDatabase = "database"
	CheckCatalog  = "catalog"

	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string            `json:"status"`
	Message string            `json:"message,omitempty"`
	Checks  map[string]string `json:"checks,omitempty"`
}

// PackLister is the slice of the catalog readiness needs.
type PackLister interface {
	ListPacks(ctx context.Context) ([]domain.Pack, error)
}

// HandleHealthz provides a basic liveness check
// @Summary Liveness check
// @Description Returns OK if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: StatusOK})
	}
}

// HandleReadyz reports ready once the database answers and the catalog holds at least one pack.
// A nil catalog skips the catalog probe.
// @Summary Readiness check
// @Description Returns OK if the database is reachable and a pack catalog is loaded
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(dbPool database.Pool, catalog PackLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		resp := HealthResponse{Status: StatusOK, Checks: map[string]string{}}

		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		if err := dbPool.Ping(ctx); err != nil {
			log.Error(LogMsgReadinessFailed, "check", CheckDatabase, "error", err)
			resp.Status = StatusUnavailable
			resp.Message = "database connection failed"
			resp.Checks[CheckDatabase] = StatusUnavailable
			respondJSON(w, http.StatusServiceUnavailable, resp)
			return
		}
		resp.Checks[CheckDatabase] = StatusOK

		if catalog != nil {
			packs, err := catalog.ListPacks(ctx)
			switch {
			case err != nil:
				log.Error(LogMsgReadinessFailed, "check", CheckCatalog, "error", err)
				resp.Status = StatusUnavailable
				resp.Message = "catalog unavailable"
				resp.Checks[CheckCatalog] = StatusUnavailable
			case len(packs) == 0:
				resp.Status = StatusUnavailable
				resp.Message = "catalog has no packs"
				resp.Checks[CheckCatalog] = "empty"
			default:
				resp.Checks[CheckCatalog] = strconv.Itoa(len(packs)) + " packs"
			}
		}

		status := http.StatusOK
		if resp.Status != StatusOK {
			status = http.StatusServiceUnavailable
		}
		respondJSON(w, status, resp)
	}
}
