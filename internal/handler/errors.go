package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/osse101/CarPacks_Go/internal/cooldown"
	"github.com/osse101/CarPacks_Go/internal/domain"
	"github.com/osse101/CarPacks_Go/internal/logger"
)

// Machine-readable error codes returned in the "error" field.
const (
	CodeCooldownActive       = "COOLDOWN_ACTIVE"
	CodeUnauthorized         = "UNAUTHORIZED"
	CodeInvalidRequest       = "INVALID_REQUEST"
	CodePackNotFound         = "PACK_NOT_FOUND"
	CodeNoProbabilities      = "NO_PROBABILITIES"
	CodeEmptyPool            = "EMPTY_POOL"
	CodeNoCardsForRarity     = "NO_CARDS_FOR_RARITY"
	CodeInvalidConfiguration = "INVALID_CONFIGURATION"
	CodeInternalError        = "INTERNAL_ERROR"
	CodeMethodNotAllowed     = "METHOD_NOT_ALLOWED"
	CodeNotFound             = "NOT_FOUND"
	CodeRateLimited          = "RATE_LIMITED"
)

// User-facing messages. They never carry internal error details.
const (
	ErrMsgCooldownActive       = "This pack is on cooldown. Try again later."
	ErrMsgUnauthorized         = "Authentication required."
	ErrMsgInvalidRequest       = "Invalid request. Please check your inputs."
	ErrMsgInvalidRequestBody   = "Invalid request body"
	ErrMsgPackNotFound         = "Pack not found."
	ErrMsgNoProbabilities      = "This pack has no rarity odds configured."
	ErrMsgEmptyPool            = "This pack has no cards in its pool."
	ErrMsgNoCardsForRarity     = "This pack has no cards for the drawn rarity."
	ErrMsgInvalidConfiguration = "This pack is misconfigured."
	ErrMsgInternalError        = "Something went wrong. Please try again."
	ErrMsgMethodNotAllowed     = "Method not allowed"
	ErrMsgNotFound             = "Not found"
)

// CooldownResponse is returned with 429 when the pack is not yet eligible.
type CooldownResponse struct {
	Error           string    `json:"error"`
	CooldownMinutes int       `json:"cooldown_minutes"`
	LastOpenedAt    time.Time `json:"last_opened_at"`
}

// mapOpenError converts a service error to a status code and error code.
// Only ErrUnauthenticated yields 401.
func mapOpenError(err error) (int, string, string) {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, CodeUnauthorized, ErrMsgUnauthorized
	case errors.Is(err, domain.ErrOnCooldown):
		return http.StatusTooManyRequests, CodeCooldownActive, ErrMsgCooldownActive
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, CodeInvalidRequest, ErrMsgInvalidRequest
	case errors.Is(err, domain.ErrPackNotFound):
		return http.StatusNotFound, CodePackNotFound, ErrMsgPackNotFound
	case errors.Is(err, domain.ErrNoProbabilities):
		return http.StatusBadRequest, CodeNoProbabilities, ErrMsgNoProbabilities
	case errors.Is(err, domain.ErrEmptyPool):
		return http.StatusBadRequest, CodeEmptyPool, ErrMsgEmptyPool
	case errors.Is(err, domain.ErrNoCardsForRarity):
		return http.StatusBadRequest, CodeNoCardsForRarity, ErrMsgNoCardsForRarity
	case errors.Is(err, domain.ErrInvalidWeight):
		return http.StatusBadRequest, CodeInvalidConfiguration, ErrMsgInvalidConfiguration
	default:
		return http.StatusInternalServerError, CodeInternalError, ErrMsgInternalError
	}
}

// writeServiceError writes the mapped response for err.
func writeServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	status, code, message := mapOpenError(err)

	var cooldownErr *cooldown.ErrOnCooldown
	if status == http.StatusTooManyRequests && errors.As(err, &cooldownErr) {
		retryAfter := int(cooldownErr.Remaining.Seconds())
		if retryAfter < 1 {
			retryAfter = 1
		}
		w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
		respondJSON(w, status, CooldownResponse{
			Error:           code,
			CooldownMinutes: cooldownErr.CooldownMinutes,
			LastOpenedAt:    cooldownErr.LastOpenedAt,
		})
		return
	}

	body := ErrorResponse{Error: code, Message: message}
	if status == http.StatusInternalServerError {
		body.RequestID = logger.GetRequestID(ctx)
		if errors.Is(err, context.Canceled) {
			logger.FromContext(ctx).Debug(LogMsgClientGone)
		}
	}
	respondJSON(w, status, body)
}

// HandleMethodNotAllowed answers 405 with the JSON error shape.
func HandleMethodNotAllowed() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, CodeMethodNotAllowed, ErrMsgMethodNotAllowed)
	}
}

// HandleNotFound answers 404 for unknown routes.
func HandleNotFound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, CodeNotFound, ErrMsgNotFound)
	}
}
