// Package api implements the HTTP client for the hosted backend: the auth
// endpoints that mint and refresh sessions, and the REST surface for the
// tasks and Accounts tables. It is a thin pass-through with no caching and
// no retries; callers own all state.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ElizavetaFed/Task-Manager2025/internal/logging"
)

const (
	// defaultTimeout is the per-request HTTP timeout.
	defaultTimeout = 10 * time.Second

	// authPath and restPath are the backend's fixed URL prefixes.
	authPath = "/auth/v1"
	restPath = "/rest/v1"
)

// Error is a backend failure with the provider's message preserved verbatim,
// so the UI can surface it unmodified.
type Error struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("backend error (status %d)", e.StatusCode)
}

// Client talks to a Supabase-compatible backend project.
type Client struct {
	baseURL    string
	anonKey    string
	httpClient *http.Client
	log        *logging.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client entirely.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger used for request debug logs.
func WithLogger(log *logging.Logger) Option {
	return func(c *Client) {
		c.log = log.WithComponent("api")
	}
}

// NewClient creates a client for the backend project at baseURL.
// The anon key is sent with every request as the project API key.
func NewClient(baseURL, anonKey string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("backend URL not configured")
	}
	if anonKey == "" {
		return nil, fmt.Errorf("backend anon key not configured")
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		anonKey: anonKey,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		log: logging.NopLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// request describes one backend call for the do helper.
type request struct {
	method string
	path   string // joined onto the base URL, query string included
	token  string // bearer token; the anon key is used when empty
	body   any    // JSON-encoded when non-nil
	prefer string // Prefer header value, if any
}

// do executes a request and returns the raw response body for 2xx statuses.
// Non-2xx statuses are decoded into an *Error carrying the provider message.
func (c *Client) do(ctx context.Context, r request) ([]byte, error) {
	var reqBody io.Reader
	if r.body != nil {
		encoded, err := json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, c.baseURL+r.path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	token := r.token
	if token == "" {
		token = c.anonKey
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+token)
	if r.prefer != "" {
		req.Header.Set("Prefer", r.prefer)
	}

	requestID := uuid.NewString()
	log := c.log.With("request_id", requestID, "method", r.method, "path", req.URL.Path)
	log.Debug("backend request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("backend request failed", "error", err)
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("read response failed", "error", err)
		return nil, fmt.Errorf("read response: %w", err)
	}

	log.Debug("backend response", "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{
			StatusCode: resp.StatusCode,
			Message:    providerMessage(body),
		}
		log.Error("backend error", "status", resp.StatusCode, "message", apiErr.Message)
		return nil, apiErr
	}

	return body, nil
}

// providerMessage extracts the human-readable error message from a backend
// error payload. The auth and REST surfaces use different field names.
func providerMessage(body []byte) string {
	var payload struct {
		ErrorDescription string `json:"error_description"`
		Msg              string `json:"msg"`
		Message          string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return strings.TrimSpace(string(body))
	}

	switch {
	case payload.ErrorDescription != "":
		return payload.ErrorDescription
	case payload.Msg != "":
		return payload.Msg
	case payload.Message != "":
		return payload.Message
	}
	return strings.TrimSpace(string(body))
}

// eq renders a PostgREST equality query parameter value.
func eq(v any) string {
	return url.QueryEscape(fmt.Sprintf("eq.%v", v))
}
