package handler

import (
	"math"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/CarPacks_Go/internal/clock"
	"github.com/osse101/CarPacks_Go/internal/domain"
	"github.com/osse101/CarPacks_Go/internal/identity"
	"github.com/osse101/CarPacks_Go/internal/logger"
	"github.com/osse101/CarPacks_Go/internal/pack"
)

// OpenPackRequest is the body of POST /api/v1/packs/open
type OpenPackRequest struct {
	PackID string `json:"pack_id" validate:"required,max=64,packid"`
}

// OpenPackResponse is returned after a successful open
type OpenPackResponse struct {
	Card            domain.Card `json:"card"`
	Rarity          string      `json:"rarity"`
	CooldownMinutes int         `json:"cooldown_minutes"`
}

// PackStatusResponse describes a participant's eligibility for one pack
type PackStatusResponse struct {
	PackID           string     `json:"pack_id"`
	Eligible         bool       `json:"eligible"`
	CooldownMinutes  int        `json:"cooldown_minutes"`
	LastOpenedAt     *time.Time `json:"last_opened_at"`
	NextEligibleAt   *time.Time `json:"next_eligible_at"`
	RemainingSeconds int64      `json:"remaining_seconds"`
}

// HandleOpenPack opens a pack for the authenticated participant
// @Summary Open a pack
// @Description Draws one card from the pack, subject to its cooldown
// @Tags packs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body OpenPackRequest true "Pack to open"
// @Success 200 {object} OpenPackResponse
// @Failure 400 {object} ErrorResponse "Invalid request or pack misconfigured"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Pack not found"
// @Failure 429 {object} CooldownResponse "Cooldown active"
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/packs/open [post]
func HandleOpenPack(svc pack.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		participantID, ok := identity.ParticipantFromContext(r.Context())
		if !ok {
			respondError(w, http.StatusUnauthorized, CodeUnauthorized, ErrMsgUnauthorized)
			return
		}

		var req OpenPackRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Open pack"); err != nil {
			return
		}

		result, err := svc.OpenPack(r.Context(), participantID, req.PackID)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		respondJSON(w, http.StatusOK, OpenPackResponse{
			Card:            result.Card,
			Rarity:          result.Rarity,
			CooldownMinutes: result.CooldownMinutes,
		})
	}
}

// HandlePackStatus reports cooldown status for the authenticated participant
// @Summary Pack cooldown status
// @Tags packs
// @Produce json
// @Security BearerAuth
// @Param packID path string true "Pack ID"
// @Success 200 {object} PackStatusResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Pack not found"
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/packs/{packID}/status [get]
func HandlePackStatus(svc pack.Service, clk clock.Clock) http.HandlerFunc {
	if clk == nil {
		clk = clock.NewRealClock()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		participantID, ok := identity.ParticipantFromContext(r.Context())
		if !ok {
			respondError(w, http.StatusUnauthorized, CodeUnauthorized, ErrMsgUnauthorized)
			return
		}

		packID := chi.URLParam(r, "packID")
		elig, err := svc.GetStatus(r.Context(), participantID, packID)
		if err != nil {
			logger.FromContext(r.Context()).Debug(LogMsgPackStatusFailed, "pack_id", packID, "error", err)
			writeServiceError(r.Context(), w, err)
			return
		}

		respondJSON(w, http.StatusOK, PackStatusResponse{
			PackID:           elig.PackID,
			Eligible:         elig.Eligible,
			CooldownMinutes:  elig.EffectiveCooldownMinutes,
			LastOpenedAt:     elig.LastOpenedAt,
			NextEligibleAt:   elig.NextEligibleAt(),
			RemainingSeconds: int64(math.Ceil(elig.Remaining(clk.Now()).Seconds())),
		})
	}
}
