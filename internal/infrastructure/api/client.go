// Package api implements the HTTP client for the remote StudyTech
// platform. Every operation is a single round trip: no retries, no
// caching, no request deduplication. Failures map onto the domain
// error taxonomy so callers never see raw HTTP status codes.
package api

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

	"github.com/rs/zerolog"

	"github.com/studytech/studytech-client/internal/core/domain"
)

const defaultTimeout = 10 * time.Second

// Config captures the settings for reaching the platform.
type Config struct {
	// BaseURL is the platform root, e.g. https://study-tech-phi.vercel.app/
	BaseURL string
	// Timeout bounds each round trip. Defaults to 10s.
	Timeout time.Duration
	// Client overrides the underlying *http.Client, mainly for tests.
	Client *http.Client
}

// Client talks to the users and posts resources.
type Client struct {
	base   *url.URL
	client *http.Client
	log    zerolog.Logger
}

// NewClient validates the base URL and returns a ready client.
func NewClient(cfg Config, log zerolog.Logger) (*Client, error) {
	raw := strings.TrimSpace(cfg.BaseURL)
	if raw == "" {
		return nil, errors.New("api: base URL is required")
	}
	base, err := url.Parse(raw)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("api: invalid base URL %q", raw)
	}

	hc := cfg.Client
	if hc == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		hc = &http.Client{Timeout: timeout}
	}

	return &Client{base: base, client: hc, log: log}, nil
}

// errorEnvelope is the platform's error body: {"error": "<message>"}.
type errorEnvelope struct {
	Error string `json:"error"`
}

// do issues one request and decodes the response into out (when out is
// non-nil). Body may be nil for bodyless requests.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(encoded)
	}

	target, err := url.JoinPath(c.base.String(), path)
	if err != nil {
		return fmt.Errorf("api: build url for %s: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("api: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Debug().Err(err).Str("method", method).Str("path", path).Msg("transport failure")
		return fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %v", domain.ErrNetwork, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.mapError(resp.StatusCode, payload, method, path)
	}

	if out != nil && len(payload) > 0 {
		if err := json.Unmarshal(payload, out); err != nil {
			return fmt.Errorf("%w: decode response: %v", domain.ErrNetwork, err)
		}
	}
	return nil
}

// mapError translates a non-2xx response into the failure taxonomy:
// 400/422 validation, 401/403 unauthorized, 404 not found, 409 existing
// user, everything else (5xx included) a network-class failure.
func (c *Client) mapError(status int, body []byte, method, path string) error {
	msg := http.StatusText(status)
	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != "" {
		msg = envelope.Error
	}

	var kind error
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		kind = domain.ErrValidation
	case http.StatusUnauthorized, http.StatusForbidden:
		kind = domain.ErrUnauthorized
	case http.StatusNotFound:
		kind = domain.ErrNotFound
	case http.StatusConflict:
		kind = domain.ErrUserExists
	default:
		kind = domain.ErrNetwork
	}

	c.log.Debug().Int("status", status).Str("method", method).Str("path", path).Str("message", msg).Msg("request failed")
	return fmt.Errorf("%w: %s", kind, msg)
}
