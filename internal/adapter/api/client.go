// Package api is the HTTP adapter for the SwiftBus booking backend
// (JSON over HTTPS). It maps transport failures to NetworkError and
// non-2xx responses to the typed error taxonomy so callers never see
// raw HTTP details.
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

	"github.com/tersoo/swiftbus/internal/core/domain"
)

const (
	defaultTimeout     = 15 * time.Second
	defaultMaxAttempts = 3
	defaultRetryDelay  = 500 * time.Millisecond
)

// TokenSource supplies the bearer token attached to authenticated
// requests. An empty token means the request goes out anonymous.
type TokenSource interface {
	Token() string
}

type Client struct {
	httpClient  *http.Client
	baseURL     string
	tokens      TokenSource
	maxAttempts int
	retryDelay  time.Duration
}

// NewClient creates a backend client. If httpClient is nil a default
// with a bounded timeout is used; calls fail as NetworkError rather
// than hanging.
func NewClient(httpClient *http.Client, baseURL string, tokens TokenSource) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		httpClient:  httpClient,
		baseURL:     strings.TrimRight(baseURL, "/"),
		tokens:      tokens,
		maxAttempts: defaultMaxAttempts,
		retryDelay:  defaultRetryDelay,
	}
}

// envelope is the backend's uniform response shape:
// {"status": "success", "message": ..., "data": ...}.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	op := method + " " + path
	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if attempt > 1 {
			timer := time.NewTimer(c.retryDelay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return &domain.NetworkError{Op: op, Err: ctx.Err()}
			case <-timer.C:
			}
		}

		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")
		if c.tokens != nil {
			if token := c.tokens.Token(); token != "" {
				req.Header.Set("Authorization", "Bearer "+token)
			}
		}

		res, err := c.httpClient.Do(req)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return &domain.NetworkError{Op: op, Err: err}
			}
			lastErr = &domain.NetworkError{Op: op, Err: err}
			continue
		}

		snippet, _ := io.ReadAll(io.LimitReader(res.Body, 1<<20))
		_ = res.Body.Close()

		if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
			apiErr := classifyStatus(res.StatusCode, snippet)
			if res.StatusCode >= http.StatusInternalServerError && attempt < c.maxAttempts {
				lastErr = apiErr
				continue
			}
			return apiErr
		}

		var env envelope
		if err := json.Unmarshal(snippet, &env); err != nil {
			return fmt.Errorf("decode response from %s: %w", op, err)
		}
		if env.Status != "" && env.Status != "success" {
			return &domain.ServerError{StatusCode: res.StatusCode, Message: env.Message}
		}
		if out != nil {
			data := env.Data
			if len(data) == 0 {
				data = snippet
			}
			if err := json.Unmarshal(data, out); err != nil {
				return fmt.Errorf("decode response data from %s: %w", op, err)
			}
		}
		return nil
	}
	return lastErr
}

// classifyStatus maps a non-2xx response onto the error taxonomy. The
// backend's structured message is kept where present so user-safe
// messages surface verbatim.
func classifyStatus(statusCode int, body []byte) error {
	var env envelope
	message := ""
	if err := json.Unmarshal(body, &env); err == nil {
		message = env.Message
	}
	if message == "" {
		message = strings.TrimSpace(string(body))
		if len(message) > 200 {
			message = message[:200]
		}
	}

	switch {
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		return &domain.AuthError{Reason: message}
	case statusCode == http.StatusConflict:
		return &domain.ConflictError{Message: message}
	default:
		return &domain.ServerError{StatusCode: statusCode, Message: message}
	}
}
