package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/galmaraz/Sistema-de-Gesti-n-ISP/pkg/logger"
)

const requestTimeout = 10 * time.Second

// TokenSource supplies the bearer token attached to upstream requests.
// An empty token means the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// Client wraps all calls to the upstream ISP API: fixed base URL, JSON
// bodies, 10 second timeout, one log line per request/response pair.
// It never retries; callers decide whether a failure is worth retrying.
type Client struct {
	baseURL string
	http    *http.Client
	log     *logger.Logger
	tokens  TokenSource
}

func New(baseURL string, log *logger.Logger, tokens TokenSource) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: requestTimeout},
		log:     log,
		tokens:  tokens,
	}
}

// Request issues one HTTP call and returns the raw response body.
// Non-2xx responses become a *TransportError carrying the status code and
// the server-supplied message when one is present; failures to get any
// response at all (timeout, refused connection, DNS) become a *NetworkError.
func (c *Client) Request(ctx context.Context, method, path string, body interface{}) (json.RawMessage, error) {
	reqID := uuid.NewString()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		netErr := &NetworkError{Method: method, Path: path, Err: err}
		c.log.Error("upstream request failed", "request_id", reqID, "method", method, "path", path, "error", err.Error())
		return nil, netErr
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		netErr := &NetworkError{Method: method, Path: path, Err: err}
		c.log.Error("upstream response unreadable", "request_id", reqID, "method", method, "path", path, "error", err.Error())
		return nil, netErr
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		tErr := &TransportError{StatusCode: resp.StatusCode, Message: serverMessage(raw)}
		c.log.Warn("upstream request rejected", "request_id", reqID, "method", method, "path", path,
			"status", resp.StatusCode, "message", tErr.Message)
		return nil, tErr
	}

	c.log.Debug("upstream request ok", "request_id", reqID, "method", method, "path", path,
		"status", resp.StatusCode, "duration_ms", time.Since(start).Milliseconds())

	return raw, nil
}

func (c *Client) Get(ctx context.Context, path string) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, path, nil)
}

func (c *Client) Post(ctx context.Context, path string, body interface{}) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodPost, path, body)
}

func (c *Client) Put(ctx context.Context, path string, body interface{}) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodPut, path, body)
}

func (c *Client) Delete(ctx context.Context, path string) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodDelete, path, nil)
}

// serverMessage pulls a human-readable error out of an upstream failure
// body. The API is inconsistent about the key it uses.
func serverMessage(raw []byte) string {
	var body map[string]interface{}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	for _, key := range []string{"error", "message", "mensaje"} {
		if v, ok := body[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
