package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/therapprove/provider-portal/backend/internal/availability"
)

type ResponseWriter struct {
	http.ResponseWriter
	StatusCode int
}

func (rw *ResponseWriter) WriteHeader(statusCode int) {
	rw.StatusCode = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}

func (h *Handler) logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &ResponseWriter{ResponseWriter: w}
		next.ServeHTTP(rw, r)
		duration := time.Since(start)
		slog.Info("request handled", "status", rw.StatusCode, "ip", r.RemoteAddr, "method", r.Method, "path", r.URL.Path, "duration", duration)
	})
}

func (h *Handler) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				h.internalServerError(w, r, fmt.Errorf("panic: %v", err))
				stackTrace := string(debug.Stack())
				fmt.Print(stackTrace) // slog would mangle the stack trace
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(h.config.Session.CookieName)
		if err != nil {
			switch {
			case errors.Is(err, http.ErrNoCookie):
				h.errorResponse(w, r, "No active session")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		claims := &SessionClaims{}
		_, err = jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (interface{}, error) {
			return []byte(h.config.Session.Secret), nil
		})
		if err != nil {
			h.errorResponse(w, r, "Invalid session token")
			return
		}

		sessionID := claims.Subject
		sess, ok := h.sessions.Get(sessionID)
		if !ok {
			// the process restarted under a live cookie; rebuild the
			// session from its persisted blob
			persisted, lastSaved := h.store.LoadAvailability(sessionID)
			sess = h.sessions.Create(sessionID, availability.StartOfWeek(time.Now()), persisted, lastSaved)
		}

		ctx := context.WithValue(r.Context(), SessionCtxKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
