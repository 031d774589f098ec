// Package httpapi provides a RecipeSource adapter for a REST recipe backend.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/recipe-book/internal/adapters/wire"
	"github.com/custodia-labs/recipe-book/internal/core/domain"
	"github.com/custodia-labs/recipe-book/internal/core/ports/driven"
	"github.com/custodia-labs/recipe-book/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.RecipeSource = (*Client)(nil)

// Default configuration values.
const (
	DefaultBaseURL = domain.DefaultAPIBaseURL
	DefaultTimeout = domain.DefaultAPITimeout

	// maxErrorBody caps how much of an error response is kept for messages.
	maxErrorBody = 512
)

// Operation names reported in TransportError.Op.
const (
	OpList   = "list"
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
)

// Config holds configuration for the HTTP recipe source.
type Config struct {
	// BaseURL is the collection URL (default: http://localhost:8787/api).
	BaseURL string

	// Timeout is the per-request timeout (default: 10s).
	Timeout time.Duration

	// RateLimit throttles requests per second. Zero disables throttling.
	RateLimit float64

	// UserAgent is sent with every request when set.
	UserAgent string

	// HTTPClient overrides the underlying client. Timeout is ignored when set.
	HTTPClient *http.Client
}

// checker is implemented by decoded bodies that validate themselves.
type checker interface {
	Check() error
}

// errIDMismatch is reported when an update returns a different record.
var errIDMismatch = errors.New("id mismatch")

// updated is an update response that must echo the edited ID.
type updated struct {
	wire.Record
	id string
}

func (u updated) Check() error {
	if err := u.Record.Check(); err != nil {
		return err
	}
	if u.ID != u.id {
		return fmt.Errorf("%w: got %q", errIDMismatch, u.ID)
	}
	return nil
}

// Client talks to the recipe backend over HTTP.
type Client struct {
	client    *http.Client
	baseURL   string
	userAgent string
	limiter   *rate.Limiter
}

// NewClient creates a new HTTP recipe source.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q: %w", cfg.BaseURL, domain.ErrInvalidInput)
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}

	c := &Client{
		client:    client,
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
	}
	if cfg.RateLimit > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), 1)
	}
	return c, nil
}

// BaseURL returns the collection URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// List fetches the whole collection.
func (c *Client) List(ctx context.Context) ([]domain.Recipe, error) {
	var records wire.Records
	if err := c.do(ctx, OpList, http.MethodGet, c.baseURL, nil, &records); err != nil {
		return nil, err
	}
	return wire.Recipes(records), nil
}

// Create posts a new recipe and returns the stored record.
func (c *Client) Create(ctx context.Context, draft domain.RecipeDraft) (domain.Recipe, error) {
	var record wire.Record
	if err := c.do(ctx, OpCreate, http.MethodPost, c.baseURL, wire.FromDraft(draft), &record); err != nil {
		return domain.Recipe{}, err
	}
	return record.Recipe(), nil
}

// Update replaces the recipe with the given ID and returns the stored record.
func (c *Client) Update(ctx context.Context, id string, draft domain.RecipeDraft) (domain.Recipe, error) {
	record := updated{id: id}
	if err := c.do(ctx, OpUpdate, http.MethodPut, c.itemURL(id), wire.FromDraft(draft), &record); err != nil {
		return domain.Recipe{}, err
	}
	return record.Recipe(), nil
}

// Delete removes the recipe with the given ID. The response body is ignored.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, OpDelete, http.MethodDelete, c.itemURL(id), nil, nil)
}

func (c *Client) itemURL(id string) string {
	return c.baseURL + "/" + url.PathEscape(id)
}

// do issues one request. A non-nil body is sent as JSON and a non-nil out
// receives the decoded response, which must pass Check when out implements
// it. Every failure is a *domain.TransportError.
func (c *Client) do(ctx context.Context, op, method, target string, body, out any) error {
	fail := func(status int, err error) error {
		return &domain.TransportError{Op: op, Method: method, URL: target, StatusCode: status, Err: err}
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fail(0, fmt.Errorf("throttle: %w", err))
		}
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fail(0, fmt.Errorf("marshal request: %w", err))
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fail(0, fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	logger.Debug("%s %s", method, target)
	resp, err := c.client.Do(req)
	if err != nil {
		return fail(0, fmt.Errorf("send request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		var cause error
		if msg := strings.TrimSpace(string(snippet)); msg != "" {
			cause = errors.New(msg)
		}
		return fail(resp.StatusCode, cause)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fail(resp.StatusCode, fmt.Errorf("decode response: %w", err))
	}
	if chk, ok := out.(checker); ok {
		if err := chk.Check(); err != nil {
			return fail(resp.StatusCode, fmt.Errorf("decode response: %w", err))
		}
	}
	return nil
}
