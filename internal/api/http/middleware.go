package http

import (
	"net/http"
	"strings"
	"time"

	"rentadesk-backend/internal/logger"
	"rentadesk-backend/internal/security"

	"github.com/gorilla/mux"
)

// Auth validates a bearer token if one is supplied and stores the resolved
// identity on the request context for audit attribution. A request without a
// token still proceeds; the actor is then recorded as none.
func Auth(tm security.TokenManager) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}

			token := authHeader
			if len(token) > 7 && strings.EqualFold(token[0:7], "bearer ") {
				token = token[7:]
			}

			claims, err := tm.ValidateToken(token)
			if err != nil {
				writeJSON(w, http.StatusUnauthorized, false, "invalid token", nil, nil)
				return
			}

			ctx := r.Context()
			switch claims.Type {
			case security.TokenTypeAccount:
				ctx = security.WithAccountID(ctx, claims.UserID)
			case security.TokenTypeTenantLocal:
				ctx = security.WithTenantLocalID(ctx, claims.UserID)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Logging logs one line per request.
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("Request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds())
	})
}
