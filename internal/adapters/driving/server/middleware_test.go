package server

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/recipe-book/internal/logger"
)

func newMiddlewareServer() *Server {
	return &Server{
		config:      DefaultConfig(),
		rateLimiter: rate.NewLimiter(100, 200),
	}
}

func TestRequestIDMiddleware_GeneratesNewID(t *testing.T) {
	s := newMiddlewareServer()

	var captured string
	handler := s.requestIDMiddleware(func(w http.ResponseWriter, r *http.Request) {
		captured, _ = r.Context().Value(contextKeyRequestID).(string)
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/api", nil))

	_, err := uuid.Parse(captured)
	require.NoError(t, err)
	assert.Equal(t, captured, rec.Header().Get("X-Request-Id"))
}

func TestRequestIDMiddleware_UsesProvidedID(t *testing.T) {
	s := newMiddlewareServer()
	provided := uuid.NewString()

	var captured string
	handler := s.requestIDMiddleware(func(_ http.ResponseWriter, r *http.Request) {
		captured, _ = r.Context().Value(contextKeyRequestID).(string)
	})

	req := httptest.NewRequest(http.MethodGet, "/api", nil)
	req.Header.Set("X-Request-Id", provided)
	handler(httptest.NewRecorder(), req)

	assert.Equal(t, provided, captured)
}

func TestRequestIDMiddleware_ReplacesInvalidID(t *testing.T) {
	s := newMiddlewareServer()

	var captured string
	handler := s.requestIDMiddleware(func(_ http.ResponseWriter, r *http.Request) {
		captured, _ = r.Context().Value(contextKeyRequestID).(string)
	})

	req := httptest.NewRequest(http.MethodGet, "/api", nil)
	req.Header.Set("X-Request-Id", "not-a-uuid")
	handler(httptest.NewRecorder(), req)

	assert.NotEqual(t, "not-a-uuid", captured)
	_, err := uuid.Parse(captured)
	assert.NoError(t, err)
}

func TestPanicRecoveryMiddleware(t *testing.T) {
	s := newMiddlewareServer()
	handler := s.requestIDMiddleware(s.panicRecoveryMiddleware(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		handler(rec, httptest.NewRequest(http.MethodGet, "/api", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrCodeInternalError)
}

func TestRateLimitMiddleware_SetsHeaders(t *testing.T) {
	s := newMiddlewareServer()
	handler := s.rateLimitMiddleware(opList, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/api", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Limit"))
	assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimitMiddleware_RejectsWhenEmpty(t *testing.T) {
	s := newMiddlewareServer()
	s.rateLimiter = rate.NewLimiter(rate.Every(time.Hour), 1)
	called := 0
	handler := s.requestIDMiddleware(s.rateLimitMiddleware(opCreate, func(http.ResponseWriter, *http.Request) {
		called++
	}))

	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api", nil))
	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodPost, "/api", nil))

	assert.Equal(t, 1, called)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), ErrCodeRateLimitExceeded)
}

func TestLoggingMiddleware_NamesOperationAndRecipe(t *testing.T) {
	var buf bytes.Buffer
	prev := logger.SetOutput(&buf)
	t.Cleanup(func() { logger.SetOutput(prev) })
	logger.SetVerbose(true)
	t.Cleanup(func() { logger.SetVerbose(false) })

	s := newMiddlewareServer()
	mux := http.NewServeMux()
	mux.HandleFunc("PUT /api/{id}", s.loggingMiddleware(opUpdate, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPut, "/api/abc", nil))

	assert.Contains(t, buf.String(), "update recipe abc: 404")
}

func TestOutcome(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{http.StatusOK, "ok"},
		{http.StatusCreated, "ok"},
		{http.StatusBadRequest, "invalid"},
		{http.StatusNotFound, "not_found"},
		{http.StatusTooManyRequests, "limited"},
		{http.StatusInternalServerError, "error"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, outcome(tt.status))
		})
	}
}

func TestResponseWriter_FirstStatusWins(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	rw.WriteHeader(http.StatusCreated)
	rw.WriteHeader(http.StatusInternalServerError)
	_, err := rw.Write([]byte("ok"))

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rw.Status())
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestResponseWriter_ImplicitOK(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	_, err := rw.Write([]byte("ok"))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rw.Status())
}
