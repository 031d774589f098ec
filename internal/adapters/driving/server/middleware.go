package server

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/recipe-book/internal/logger"
)

// Catalogue operations served by the API routes. They label metrics and
// request logs in place of raw paths so recipe ids never become labels.
const (
	opList   = "list"
	opCreate = "create"
	opUpdate = "update"
	opDelete = "delete"
)

// withMiddleware wraps the handler for one catalogue operation.
func (s *Server) withMiddleware(op string, handler http.HandlerFunc) http.HandlerFunc {
	return s.metricsMiddleware(op,
		s.requestIDMiddleware(
			s.panicRecoveryMiddleware(
				s.rateLimitMiddleware(op,
					s.loggingMiddleware(op, handler),
				),
			),
		),
	)
}

// requestIDMiddleware propagates a valid X-Request-Id or generates one.
func (s *Server) requestIDMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", id)

		ctx := context.WithValue(r.Context(), contextKeyRequestID, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// rateLimitMiddleware shares one token bucket across all operations.
// Rejections are counted per operation.
func (s *Server) rateLimitMiddleware(op string, next http.HandlerFunc) http.HandlerFunc {
	limit := strconv.Itoa(int(s.config.RateLimit))
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.rateLimiter.Allow() {
			rateLimitRejects.WithLabelValues(op).Inc()
			w.Header().Set("Retry-After", "1")
			writeError(w, r, http.StatusTooManyRequests, ErrCodeRateLimitExceeded, "Rate limit exceeded")
			return
		}

		w.Header().Set("X-RateLimit-Limit", limit)
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(int(s.rateLimiter.Tokens())))
		next.ServeHTTP(w, r)
	}
}

// panicRecoveryMiddleware turns a handler panic into a 500.
func (s *Server) panicRecoveryMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				panicRecoveries.Inc()
				logger.Error("panic recovered: %v (request %s, %s %s)",
					rec, requestID(r), r.Method, r.URL.Path)
				writeError(w, r, http.StatusInternalServerError, ErrCodeInternalError, "Internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	}
}

// loggingMiddleware writes one line per request, naming the recipe when
// the route addresses one.
func (s *Server) loggingMiddleware(op string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := newResponseWriter(w)

		next.ServeHTTP(rw, r)

		subject := "recipes"
		if id := r.PathValue("id"); id != "" {
			subject = "recipe " + id
		}
		logger.Info("%s %s: %d in %s (request %s)",
			op, subject, rw.Status(), time.Since(start).Round(time.Microsecond), requestID(r))
	}
}

// requestID returns the id stored by requestIDMiddleware.
func requestID(r *http.Request) string {
	id, _ := r.Context().Value(contextKeyRequestID).(string)
	return id
}
