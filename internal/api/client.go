package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const maxResponseBody = 1 << 20 // 1MB

// TokenSource supplies the bearer credential for authenticated requests.
// An empty token means the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// StaticToken is a fixed-credential TokenSource.
type StaticToken string

func (s StaticToken) Token() string { return string(s) }

// TokenFunc adapts a plain function to the TokenSource interface.
type TokenFunc func() string

func (f TokenFunc) Token() string { return f() }

// APIError is a structured rejection from the marketplace server
// (insufficient stock, bad credentials, ...). Transport failures are
// returned as plain wrapped errors instead.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// IsRejection reports whether err is a server-side rejection rather than a
// transport failure.
func IsRejection(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

// ErrorMessage returns the server's message for structured rejections and
// the fallback for transport failures.
func ErrorMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return fallback
}

// Client is a typed HTTP client for the marketplace REST API.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	breaker *gobreaker.CircuitBreaker[[]byte]
}

func NewClient(baseURL string, tokens TokenSource, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		tokens:  tokens,
		breaker: newBreaker("marketplace-api"),
	}
}

func newBreaker(name string) *gobreaker.CircuitBreaker[[]byte] {
	return gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		// Structured rejections are the server doing its job, only
		// transport-level failures should trip the breaker.
		IsSuccessful: func(err error) bool {
			return err == nil || IsRejection(err)
		},
	})
}

// do executes one request and decodes the JSON response into out (if non-nil).
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", uuid.New().String())
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	data, err := c.breaker.Execute(func() ([]byte, error) {
		resp, errDo := c.http.Do(req)
		if errDo != nil {
			return nil, fmt.Errorf("request failed: %w", errDo)
		}
		defer resp.Body.Close()

		payload, errRead := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
		if errRead != nil {
			return nil, fmt.Errorf("read response: %w", errRead)
		}
		if resp.StatusCode >= 400 {
			return nil, decodeAPIError(resp.StatusCode, payload)
		}
		return payload, nil
	})
	if err != nil {
		return err
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("unmarshal response: %w", err)
		}
	}
	return nil
}

func decodeAPIError(status int, payload []byte) *APIError {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(payload, &body); err == nil && body.Message != "" {
		return &APIError{Status: status, Message: body.Message}
	}
	return &APIError{Status: status, Message: http.StatusText(status)}
}
