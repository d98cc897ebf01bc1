// Package api is the single authenticated gateway every console screen
// talks through. One best-effort round trip per call: no retries, no
// caching, no timeouts beyond the injected http.Client's.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/Spok95/university-records-console/internal/metrics"
	"github.com/Spok95/university-records-console/internal/observability"
	"go.uber.org/zap"
)

type Client struct {
	baseURL string
	hc      *http.Client
	log     *zap.Logger

	mu    sync.Mutex
	token string
}

// New builds the gateway with the token known at start (empty when the
// persisted session had none). Login pushes the fresh token in later via
// SetToken semantics; the client is not rebuilt on token change.
func New(baseURL, token string, log *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		hc:      &http.Client{Timeout: 30 * time.Second},
		log:     log,
	}
}

// SetToken replaces the token used for subsequent requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) currentToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

type LoginResponse struct {
	Token string `json:"token"`
	// Raw keeps the full body for callers that want more than the token.
	Raw json.RawMessage `json:"-"`
}

// Login posts the credentials and, on success, stores the returned token
// on the client itself. The session store is NOT updated here; the caller
// owns persistence.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	status, body, err := c.roundTrip(ctx, http.MethodPost, "/api/auth/login", credentials{email, password}, false)
	if err != nil {
		return nil, &RequestError{Method: http.MethodPost, Path: "/api/auth/login", Err: err}
	}
	if status/100 != 2 {
		return nil, &AuthError{Status: status}
	}
	out := &LoginResponse{Raw: body}
	if err := json.Unmarshal(body, out); err != nil {
		return nil, fmt.Errorf("decode login response: %w", err)
	}
	c.SetToken(out.Token)
	c.log.Info("logged in", zap.String("email", email))
	return out, nil
}

// Register returns the decoded body whatever the status. The backend
// reports registration problems inside the body, so the caller has to
// inspect it either way; this is the one deliberately permissive call.
func (c *Client) Register(ctx context.Context, email, password string) (json.RawMessage, error) {
	_, body, err := c.roundTrip(ctx, http.MethodPost, "/api/auth/register", credentials{email, password}, false)
	if err != nil {
		return nil, &RequestError{Method: http.MethodPost, Path: "/api/auth/register", Err: err}
	}
	return body, nil
}

func (c *Client) Get(ctx context.Context, path string) (json.RawMessage, error) {
	return c.call(ctx, http.MethodGet, path, nil)
}

func (c *Client) Post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.call(ctx, http.MethodPost, path, body)
}

func (c *Client) Put(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.call(ctx, http.MethodPut, path, body)
}

func (c *Client) Delete(ctx context.Context, path string) (json.RawMessage, error) {
	return c.call(ctx, http.MethodDelete, path, nil)
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// call is the authenticated path: bearer header attached, non-2xx turned
// into RequestError, system failures captured.
func (c *Client) call(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	status, data, err := c.roundTrip(ctx, method, path, body, true)
	if err != nil {
		rerr := &RequestError{Method: method, Path: path, Err: err}
		observability.CaptureSystemErr(rerr)
		return nil, rerr
	}
	if status/100 != 2 {
		rerr := &RequestError{Method: method, Path: path, Status: status}
		observability.CaptureSystemErr(rerr)
		c.log.Warn("request failed", zap.String("method", method), zap.String("path", path), zap.Int("status", status))
		return nil, rerr
	}
	return data, nil
}

func (c *Client) roundTrip(ctx context.Context, method, path string, body any, authed bool) (int, json.RawMessage, error) {
	var rd io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("encode body: %w", err)
		}
		rd = bytes.NewReader(buf)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return 0, nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		// Header omitted entirely when no token is set.
		if tok := c.currentToken(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	t0 := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		metrics.ObserveAPIRequest(method, path, 0, time.Since(t0))
		return 0, nil, err
	}
	defer func() { _ = resp.Body.Close() }()
	metrics.ObserveAPIRequest(method, path, resp.StatusCode, time.Since(t0))

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("read body: %w", err)
	}
	return resp.StatusCode, data, nil
}
