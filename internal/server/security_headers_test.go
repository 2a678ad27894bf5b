package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSecurityHeadersMiddleware(t *testing.T) {
	h := SecurityHeadersMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/packs/open", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	for header, expected := range map[string]string{
		HeaderContentType:    HeaderValueNoSniff,
		HeaderFrameOptions:   HeaderValueSameOrigin,
		HeaderXSSProtection:  HeaderValueXSSBlock,
		HeaderReferrerPolicy: HeaderValueReferrerStrictOrigin,
	} {
		assert.Equal(t, expected, rec.Header().Get(header), header)
	}
}

func TestSecurityHeadersMiddleware_SetOnRejectedRequests(t *testing.T) {
	h := SecurityHeadersMiddleware()(RateLimitMiddleware(nil, NewSuspiciousActivityDetector())(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})))

	var rec *httptest.ResponseRecorder
	for i := 0; i <= requestLimitPerWindow; i++ {
		rec = httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.RemoteAddr = "10.0.0.9:1234"
		h.ServeHTTP(rec, req)
	}

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
}
