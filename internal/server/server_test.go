package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CarPacks_Go/internal/clock"
	"github.com/osse101/CarPacks_Go/internal/domain"
	"github.com/osse101/CarPacks_Go/internal/identity"
	"github.com/osse101/CarPacks_Go/internal/mocks"
)

const testSecret = "router-test-secret"

func newTestRouter(t *testing.T) (http.Handler, *mocks.MockService) {
	t.Helper()
	svc := mocks.NewMockService(t)
	s := NewServer(Options{Port: 0, CORSAllowedOrigins: []string{"*"}}, Dependencies{
		Packs:    svc,
		Resolver: identity.NewJWTResolver(testSecret, ""),
		Clock:    clock.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)),
	})
	return s.Handler(), svc
}

func bearer(t *testing.T) string {
	t.Helper()
	token, err := identity.NewIssuer(testSecret, "").Issue(testParticipant, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body.Error
}

func TestRouter_OpenPack(t *testing.T) {
	h, svc := newTestRouter(t)
	svc.EXPECT().OpenPack(mock.Anything, testParticipant, "starter").Return(&domain.OpenResult{
		Card:            domain.Card{ID: "civic-ek", Make: "Honda", Model: "Civic", Rarity: domain.RarityCommon},
		Rarity:          domain.RarityCommon,
		CooldownMinutes: 60,
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/packs/open", strings.NewReader(`{"pack_id":"starter"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearer(t))
	req.Header.Set("Origin", "https://app.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "nosniff", rec.Header().Get(HeaderContentType))
	assert.Equal(t, "*", rec.Header().Get(HeaderAllowOrigin))
}

func TestRouter_OpenPackWithoutCredential(t *testing.T) {
	h, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/packs/open", strings.NewReader(`{"pack_id":"starter"}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", errorCode(t, rec))
}

func TestRouter_WrongMethodIs405(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/packs/open", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "METHOD_NOT_ALLOWED", errorCode(t, rec))
}

func TestRouter_UnknownRouteIs404(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", errorCode(t, rec))
}

func TestRouter_PreflightSkipsAuth(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/v1/packs/open", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestRouter_PackStatus(t *testing.T) {
	h, svc := newTestRouter(t)
	svc.EXPECT().GetStatus(mock.Anything, testParticipant, "starter").Return(&domain.Eligibility{
		PackID:                   "starter",
		Eligible:                 true,
		EffectiveCooldownMinutes: 60,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/packs/starter/status", nil)
	req.Header.Set("Authorization", bearer(t))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"eligible":true`)
}

func TestRouter_PublicEndpoints(t *testing.T) {
	h, _ := newTestRouter(t)

	for _, path := range []string{"/healthz", "/version", "/metrics"} {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}
