package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/recipe-book/internal/core/domain"
	"github.com/custodia-labs/recipe-book/internal/core/ports/driving"
	"github.com/custodia-labs/recipe-book/internal/logger"
)

// Config holds server settings.
type Config struct {
	// Addr is the listen address.
	Addr string

	// Path is the collection path. A trailing slash is ignored.
	Path string

	// RateLimit is the sustained requests per second accepted on API routes.
	RateLimit float64

	// RateBurst is the token bucket size.
	RateBurst int

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	// MaxBodyBytes caps request bodies.
	MaxBodyBytes int64
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Addr:            domain.DefaultServerAddr,
		Path:            domain.DefaultServerPath,
		RateLimit:       domain.DefaultServerRateLimit,
		RateBurst:       domain.DefaultServerRateBurst,
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    30 * time.Second,
		IdleTimeout:     120 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		MaxBodyBytes:    1 << 20,
	}
}

// ConfigFromSettings builds a server config from application settings.
func ConfigFromSettings(s domain.ServerSettings) Config {
	cfg := DefaultConfig()
	if s.Addr != "" {
		cfg.Addr = s.Addr
	}
	if s.Path != "" {
		cfg.Path = s.Path
	}
	if s.RateLimit > 0 {
		cfg.RateLimit = s.RateLimit
	}
	if s.RateBurst > 0 {
		cfg.RateBurst = s.RateBurst
	}
	return cfg
}

// Server serves the recipe collection over HTTP.
type Server struct {
	config      Config
	catalogue   driving.RecipeCatalogue
	rateLimiter *rate.Limiter
	handler     http.Handler
}

// New creates a server backed by the given catalogue.
func New(cfg Config, catalogue driving.RecipeCatalogue) *Server {
	defaults := DefaultConfig()
	if cfg.Path == "" {
		cfg.Path = defaults.Path
	}
	cfg.Path = "/" + strings.Trim(cfg.Path, "/")
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = defaults.RateLimit
	}
	if cfg.RateBurst <= 0 {
		cfg.RateBurst = defaults.RateBurst
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = defaults.MaxBodyBytes
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaults.ShutdownTimeout
	}

	s := &Server{
		config:      cfg,
		catalogue:   catalogue,
		rateLimiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst),
	}
	s.handler = s.routes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Config returns the effective configuration.
func (s *Server) Config() Config {
	return s.config
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	// System endpoints (no rate limiting)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())

	collection := s.config.Path
	item := collection + "/{id}"
	mux.HandleFunc("GET "+collection, s.withMiddleware(opList, s.handleList))
	mux.HandleFunc("POST "+collection, s.withMiddleware(opCreate, s.handleCreate))
	mux.HandleFunc("PUT "+item, s.withMiddleware(opUpdate, s.handleUpdate))
	mux.HandleFunc("DELETE "+item, s.withMiddleware(opDelete, s.handleDelete))

	return mux
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.config.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully within the configured timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	httpServer := &http.Server{
		Handler:      s.handler,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("serving recipes on %s%s", ln.Addr(), s.config.Path)
		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
		defer cancel()
		logger.Info("shutting down server")
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
