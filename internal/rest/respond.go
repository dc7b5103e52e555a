package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"gym-registration-api/internal/service"
)

// handlerFunc is a handler that returns its error instead of writing it; the
// handle adapter owns translation to status codes and the JSON error body.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

func handle(fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := fn(w, r)
		if err == nil {
			return
		}

		status := http.StatusInternalServerError
		msg := "Internal server error"
		var se *service.Error
		if errors.As(err, &se) {
			switch se.Kind {
			case service.KindInvalid, service.KindConflict:
				status = http.StatusBadRequest
			case service.KindUnauthenticated:
				status = http.StatusUnauthorized
			case service.KindNotFound:
				status = http.StatusNotFound
			}
			if se.Kind != service.KindInternal {
				msg = se.Message
			}
		}

		if status >= 500 {
			slog.Error("request failed",
				"method", r.Method,
				"path", r.URL.Path,
				"error", err,
				"cause", errors.Unwrap(err),
			)
		} else {
			slog.Warn("client error",
				"method", r.Method,
				"path", r.URL.Path,
				"status", status,
				"error", err,
			)
		}

		writeJSON(w, status, map[string]string{"error": msg})
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		slog.Error("marshal response", "error", err)
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Internal server error"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func readJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return service.Invalid("request body must be valid JSON")
	}
	return nil
}
