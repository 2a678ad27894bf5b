package server

import (
	"net/http"
	"strings"

	"github.com/go-chi/cors"
)

// ParseOrigins splits a comma-separated origin list. An empty list means any origin.
func ParseOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{CORSWildcard}
	}
	return origins
}

// CORSMiddleware applies the browser-facing CORS policy. Every OPTIONS request is
// answered here with 200 "ok" after the policy headers are set, so preflights
// never reach auth or the route table.
func CORSMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	policy := cors.Handler(cors.Options{
		AllowedOrigins:     allowedOrigins,
		AllowedMethods:     CORSAllowedMethods,
		AllowedHeaders:     CORSAllowedHeaders,
		MaxAge:             CORSMaxAgeSeconds,
		OptionsPassthrough: true,
	})

	return func(next http.Handler) http.Handler {
		return policy(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				w.Header().Set("Content-Type", "text/plain; charset=utf-8")
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(CORSPreflightBody))
				return
			}
			next.ServeHTTP(w, r)
		}))
	}
}
