package sfmcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// mcpPath is the endpoint path the server mounts its JSON-RPC handler on.
const mcpPath = "/mcp"

// defaultTimeout bounds every request when no custom http.Client is set.
const defaultTimeout = 60 * time.Second

// HTTPTransport posts JSON-RPC requests to a Salesforce MCP Server over
// plain request/response HTTP.
type HTTPTransport struct {
	// URL is the full endpoint URL, including the /mcp path.
	URL string

	// Headers are sent on every request. Credential headers built from
	// Credentials live here.
	Headers map[string]string

	// HeaderProvider can add dynamic headers (e.g. rotated credentials) per
	// request. Values returned here override static Headers.
	HeaderProvider func(ctx context.Context) (map[string]string, error)

	// Client defaults to a 60s timeout client when nil.
	Client *http.Client
}

// NewHTTPTransport builds a transport for the server at baseURL using the
// given credentials. The /mcp path is appended after trimming any trailing
// slash from baseURL.
func NewHTTPTransport(baseURL string, creds Credentials) *HTTPTransport {
	return &HTTPTransport{
		URL:     strings.TrimRight(baseURL, "/") + mcpPath,
		Headers: creds.headers(),
	}
}

func (t *HTTPTransport) Call(ctx context.Context, req json.RawMessage) (json.RawMessage, error) {
	if t == nil || t.URL == "" {
		return nil, fmt.Errorf("sfmcp: http transport url is required")
	}
	client := t.Client
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}

	r, err := http.NewRequestWithContext(ctx, http.MethodPost, t.URL, bytes.NewReader(req))
	if err != nil {
		return nil, err
	}
	r.Header.Set("Content-Type", "application/json")
	for k, v := range t.Headers {
		if v != "" {
			r.Header.Set(k, v)
		}
	}
	if t.HeaderProvider != nil {
		h, err := t.HeaderProvider(ctx)
		if err != nil {
			return nil, err
		}
		for k, v := range h {
			if v != "" {
				r.Header.Set(k, v)
			}
		}
	}

	resp, err := client.Do(r)
	if err != nil {
		return nil, &TransportError{URL: t.URL, Cause: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: t.URL, Cause: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{URL: t.URL, StatusCode: resp.StatusCode, Body: body}
	}
	return append(json.RawMessage(nil), body...), nil
}

// Close is a no-op: the server holds no per-client session state.
func (t *HTTPTransport) Close() error { return nil }
