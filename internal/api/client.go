package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

// maxErrorBody bounds how much of a failure response we read back for messages.
const maxErrorBody = 1 << 20

// Client is the shared REST plumbing for the auth, records and AI endpoints.
// All three live behind one base URL.
type Client struct {
	httpClient *http.Client
	baseURL    string
	log        *slog.Logger
}

func NewClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		log:        slog.Default(),
	}
}

// WithHTTPClient swaps the underlying transport (tests, custom timeouts).
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	if hc != nil {
		c.httpClient = hc
	}
	return c
}

func (c *Client) url(path string) string {
	return c.baseURL + path
}

// do sends a JSON request. body may be nil. The caller owns closing resp.Body.
func (c *Client) do(ctx context.Context, method, path, token string, body any) (*http.Response, error) {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.url(path), rd)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return c.httpClient.Do(req)
}

// serverMessage extracts the human-readable failure message from an error
// response body. The auth/records endpoints use `message`, the AI endpoints
// use `error`; fall back to a generic status line when neither parses.
func serverMessage(resp *http.Response, fallback string) string {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(b, &payload); err == nil {
		if strings.TrimSpace(payload.Message) != "" {
			return payload.Message
		}
		if strings.TrimSpace(payload.Error) != "" {
			return payload.Error
		}
	}
	if fallback != "" {
		return fallback
	}
	return fmt.Sprintf("server error: status=%d", resp.StatusCode)
}

func decodeJSON(resp *http.Response, v any) error {
	return json.NewDecoder(io.LimitReader(resp.Body, 8<<20)).Decode(v)
}
