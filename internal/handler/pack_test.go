package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CarPacks_Go/internal/clock"
	"github.com/osse101/CarPacks_Go/internal/cooldown"
	"github.com/osse101/CarPacks_Go/internal/domain"
	"github.com/osse101/CarPacks_Go/internal/identity"
	"github.com/osse101/CarPacks_Go/internal/logger"
	"github.com/osse101/CarPacks_Go/internal/mocks"
)

const testParticipant = "b3c9e2f1-5a7d-4c8e-9f01-23456789abcd"

func authed(req *http.Request) *http.Request {
	return req.WithContext(identity.WithParticipant(req.Context(), testParticipant))
}

func openRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/packs/open", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHandleOpenPack_Success(t *testing.T) {
	svc := mocks.NewMockService(t)
	year := 1997
	card := domain.Card{ID: "supra-mk4", Make: "Toyota", Model: "Supra", Year: &year, Rarity: domain.RarityRare}
	svc.EXPECT().OpenPack(mock.Anything, testParticipant, "starter").Return(&domain.OpenResult{
		Card:            card,
		Rarity:          domain.RarityRare,
		CooldownMinutes: 60,
		HoldingCount:    2,
	}, nil)

	w := httptest.NewRecorder()
	HandleOpenPack(svc).ServeHTTP(w, authed(openRequest(`{"pack_id":"starter"}`)))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Rare", body["rarity"])
	assert.Equal(t, float64(60), body["cooldown_minutes"])
	cardBody := body["card"].(map[string]interface{})
	assert.Equal(t, "supra-mk4", cardBody["id"])
	assert.Equal(t, float64(1997), cardBody["year"])
	assert.Contains(t, cardBody, "set_id")
	assert.Contains(t, cardBody, "image_path")
	assert.NotContains(t, body, "HoldingCount")
	assert.Len(t, body, 3)
}

func TestHandleOpenPack_Unauthenticated(t *testing.T) {
	svc := mocks.NewMockService(t)

	w := httptest.NewRecorder()
	HandleOpenPack(svc).ServeHTTP(w, openRequest(`{"pack_id":"starter"}`))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, CodeUnauthorized, decodeError(t, w).Error)
}

func TestHandleOpenPack_InvalidRequests(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{"empty body", ``, ""},
		{"malformed json", `{"pack_id":`, ""},
		{"missing pack_id", `{}`, "pack_id"},
		{"blank pack_id", `{"pack_id":"   "}`, "pack_id"},
		{"too long", fmt.Sprintf(`{"pack_id":"%s"}`, strings.Repeat("x", 65)), "pack_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockService(t)

			w := httptest.NewRecorder()
			HandleOpenPack(svc).ServeHTTP(w, authed(openRequest(tt.body)))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			body := decodeError(t, w)
			assert.Equal(t, CodeInvalidRequest, body.Error)
			if tt.wantField != "" {
				assert.Contains(t, body.Fields, tt.wantField)
			}
		})
	}
}

func TestHandleOpenPack_Cooldown(t *testing.T) {
	svc := mocks.NewMockService(t)
	last := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	svc.EXPECT().OpenPack(mock.Anything, testParticipant, "starter").Return(nil, &cooldown.ErrOnCooldown{
		PackID:          "starter",
		CooldownMinutes: 1440,
		LastOpenedAt:    last,
		Remaining:       90 * time.Second,
	})

	w := httptest.NewRecorder()
	HandleOpenPack(svc).ServeHTTP(w, authed(openRequest(`{"pack_id":"starter"}`)))

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "90", w.Header().Get("Retry-After"))

	var body CooldownResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, CodeCooldownActive, body.Error)
	assert.Equal(t, 1440, body.CooldownMinutes)
	assert.True(t, last.Equal(body.LastOpenedAt))
}

func TestHandleOpenPack_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"pack not found", fmt.Errorf("lookup: %w", domain.ErrPackNotFound), http.StatusNotFound, CodePackNotFound},
		{"no probabilities", domain.ErrNoProbabilities, http.StatusBadRequest, CodeNoProbabilities},
		{"empty pool", domain.ErrEmptyPool, http.StatusBadRequest, CodeEmptyPool},
		{"no cards for rarity", domain.ErrNoCardsForRarity, http.StatusBadRequest, CodeNoCardsForRarity},
		{"invalid weight", domain.ErrInvalidWeight, http.StatusBadRequest, CodeInvalidConfiguration},
		{"store unavailable", fmt.Errorf("%w: timeout", domain.ErrStoreUnavailable), http.StatusInternalServerError, CodeInternalError},
		{"unexpected", errors.New("pq: relation does not exist"), http.StatusInternalServerError, CodeInternalError},
		{"unauthenticated", identity.ErrInvalidCredential, http.StatusUnauthorized, CodeUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockService(t)
			svc.EXPECT().OpenPack(mock.Anything, testParticipant, "starter").Return(nil, tt.err)

			w := httptest.NewRecorder()
			HandleOpenPack(svc).ServeHTTP(w, authed(openRequest(`{"pack_id":"starter"}`)))

			assert.Equal(t, tt.wantStatus, w.Code)
			body := decodeError(t, w)
			assert.Equal(t, tt.wantCode, body.Error)
			assert.NotContains(t, w.Body.String(), "relation does not exist")
		})
	}
}

func TestHandleOpenPack_InternalErrorCarriesRequestID(t *testing.T) {
	svc := mocks.NewMockService(t)
	svc.EXPECT().OpenPack(mock.Anything, testParticipant, "starter").Return(nil, errors.New("boom"))

	req := authed(openRequest(`{"pack_id":"starter"}`))
	req = req.WithContext(logger.WithRequestID(req.Context(), "req-123"))
	w := httptest.NewRecorder()
	HandleOpenPack(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "req-123", decodeError(t, w).RequestID)
}

func statusRequest(packID string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/packs/"+packID+"/status", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("packID", packID)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestHandlePackStatus(t *testing.T) {
	now := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	last := now.Add(-20 * time.Minute)
	svc := mocks.NewMockService(t)
	svc.EXPECT().GetStatus(mock.Anything, testParticipant, "hourly").Return(&domain.Eligibility{
		PackID:                   "hourly",
		Eligible:                 false,
		EffectiveCooldownMinutes: 60,
		LastOpenedAt:             &last,
	}, nil)

	w := httptest.NewRecorder()
	HandlePackStatus(svc, clock.NewMockClock(now)).ServeHTTP(w, authed(statusRequest("hourly")))

	assert.Equal(t, http.StatusOK, w.Code)
	var body PackStatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "hourly", body.PackID)
	assert.False(t, body.Eligible)
	assert.Equal(t, 60, body.CooldownMinutes)
	assert.Equal(t, int64(40*60), body.RemainingSeconds)
	require.NotNil(t, body.NextEligibleAt)
	assert.True(t, now.Add(40*time.Minute).Equal(*body.NextEligibleAt))
}

func TestHandlePackStatus_NeverOpened(t *testing.T) {
	svc := mocks.NewMockService(t)
	svc.EXPECT().GetStatus(mock.Anything, testParticipant, "daily").Return(&domain.Eligibility{
		PackID:                   "daily",
		Eligible:                 true,
		EffectiveCooldownMinutes: 1440,
	}, nil)

	w := httptest.NewRecorder()
	HandlePackStatus(svc, nil).ServeHTTP(w, authed(statusRequest("daily")))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"pack_id":"daily","eligible":true,"cooldown_minutes":1440,"last_opened_at":null,"next_eligible_at":null,"remaining_seconds":0}`, w.Body.String())
}

func TestHandlePackStatus_NotFound(t *testing.T) {
	svc := mocks.NewMockService(t)
	svc.EXPECT().GetStatus(mock.Anything, testParticipant, "ghost").Return(nil, domain.ErrPackNotFound)

	w := httptest.NewRecorder()
	HandlePackStatus(svc, nil).ServeHTTP(w, authed(statusRequest("ghost")))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, CodePackNotFound, decodeError(t, w).Error)
}

func TestHandlePackStatus_LogsFailure(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	svc := mocks.NewMockService(t)
	svc.EXPECT().GetStatus(mock.Anything, testParticipant, "ghost").Return(nil, domain.ErrPackNotFound)

	w := httptest.NewRecorder()
	HandlePackStatus(svc, nil).ServeHTTP(w, authed(statusRequest("ghost")))

	require.Equal(t, http.StatusNotFound, w.Code)
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, LogMsgPackStatusFailed, entry["msg"])
	assert.Equal(t, "ghost", entry["pack_id"])
}
