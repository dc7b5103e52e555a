package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"gym-registration-api/internal/session"
)

type ctxKey string

const (
	identityKey ctxKey = "identity"
	tokenKey    ctxKey = "token"
)

// authenticate guards protected routes. A missing token is 401; a token that
// fails verification outright is 403; a revoked token is 401 (the client held
// a valid session and logged it out).
func (h *Handlers) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Authorization token missing"})
			return
		}

		id, err := h.sessions.Verify(r.Context(), raw)
		if err != nil {
			if errors.Is(err, session.ErrRevoked) {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Token is revoked"})
				return
			}
			writeJSON(w, http.StatusForbidden, map[string]string{"error": "Invalid token"})
			return
		}

		ctx := context.WithValue(r.Context(), identityKey, id)
		ctx = context.WithValue(ctx, tokenKey, raw)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func identityFrom(ctx context.Context) session.Identity {
	id, _ := ctx.Value(identityKey).(session.Identity)
	return id
}

func tokenFrom(ctx context.Context) string {
	tok, _ := ctx.Value(tokenKey).(string)
	return tok
}

// statusWriter captures the written status code for request logging.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (sw *statusWriter) WriteHeader(code int) {
	if sw.wroteHeader {
		return
	}
	sw.status = code
	sw.wroteHeader = true
	sw.ResponseWriter.WriteHeader(code)
}

func (sw *statusWriter) Write(b []byte) (int, error) {
	if !sw.wroteHeader {
		sw.WriteHeader(http.StatusOK)
	}
	return sw.ResponseWriter.Write(b)
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}

		next.ServeHTTP(sw, r)

		slog.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"duration", time.Since(start),
		)
	})
}
