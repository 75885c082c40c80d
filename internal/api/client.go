package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "http://localhost:8000/api"

// fallbackErrorMessage is shown when an error response carries no usable body.
const fallbackErrorMessage = "Something went wrong"

// TokenSource supplies the bearer token for authenticated requests. An empty
// string means unauthenticated; the Authorization header is then omitted and
// the backend decides whether to reject the call.
type TokenSource interface {
	Token() string
}

// Error represents a non-success HTTP response from the backend, carrying the
// human-readable message extracted from the response body.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

// Request describes a single backend call. It is transient and never
// persisted.
type Request struct {
	Path   string
	Method string

	// Body is JSON-serialized when non-nil.
	Body any

	// SkipAuth suppresses the Authorization header even when a token is
	// available. Used by register and login.
	SkipAuth bool

	// Header holds extra headers merged over the defaults.
	Header http.Header
}

// Client is a minimal JSON API client for the blog backend.
type Client struct {
	baseURL    string
	tokens     TokenSource
	httpClient *http.Client
}

// NewClient creates a new API client. If baseURL is empty, it defaults to
// http://localhost:8000/api. The token source is consulted on every request;
// the client itself holds no credentials and never mutates the session.
func NewClient(baseURL string, tokens TokenSource) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		tokens:  tokens,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SetHTTPClient replaces the underlying HTTP client, e.g. to change the
// timeout. It must be called before the first request.
func (c *Client) SetHTTPClient(hc *http.Client) {
	c.httpClient = hc
}

// Do executes the described request and, when the response has a body and
// result is non-nil, unmarshals the body into result. A 204 response leaves
// result untouched. Any non-2xx status yields a *Error; partial data is never
// returned.
func (c *Client) Do(ctx context.Context, r Request, result any) error {
	var payload io.Reader
	if r.Body != nil {
		data, err := json.Marshal(r.Body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, c.baseURL+r.Path, payload)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if !r.SkipAuth {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	for key, values := range r.Header {
		req.Header.Del(key)
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &Error{
			Status:  resp.StatusCode,
			Message: errorMessage(respBody),
		}
	}

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("unmarshal response: %w", err)
		}
	}

	return nil
}

// errorMessage extracts the backend's message field from an error response
// body, falling back to a generic message when the body is not the expected
// shape.
func errorMessage(body []byte) string {
	var parsed struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil || parsed.Detail == "" {
		return fallbackErrorMessage
	}
	return parsed.Detail
}
