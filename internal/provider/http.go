package provider

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

// DefaultHTTPTimeout bounds a single transform request when the caller
// does not configure one. Transformation services are slow compared to
// ordinary APIs, but a hung provider must never block result delivery.
const DefaultHTTPTimeout = 15 * time.Second

// maxResponseSize limits the transform response body. Summaries are short;
// anything larger indicates a misbehaving endpoint.
const maxResponseSize = 1 * 1024 * 1024 // 1MB

// HTTPProvider calls a JSON transformation endpoint.
//
// The wire contract is minimal: POST {"role": ..., "input": ...} and read
// {"output": ...} back. Any non-2xx status, malformed body, or empty output
// is an error, which the summary pipeline recovers from.
type HTTPProvider struct {
	// name identifies the provider in logs.
	name string

	// role is sent with every request so one endpoint can serve all stages.
	role Role

	// endpoint is the transform URL.
	endpoint string

	// token is an optional bearer token.
	token string

	// client is the HTTP client used for requests.
	client *http.Client

	// userAgent is sent with each request.
	userAgent string
}

// HTTPOption configures an HTTPProvider.
type HTTPOption func(*HTTPProvider)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) HTTPOption {
	return func(p *HTTPProvider) {
		p.client = client
	}
}

// WithToken sets a bearer token for the Authorization header.
func WithToken(token string) HTTPOption {
	return func(p *HTTPProvider) {
		p.token = token
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) HTTPOption {
	return func(p *HTTPProvider) {
		p.userAgent = userAgent
	}
}

// NewHTTPProvider creates a provider that POSTs transform requests to the
// given endpoint for the given role.
func NewHTTPProvider(role Role, endpoint string, opts ...HTTPOption) *HTTPProvider {
	p := &HTTPProvider{
		name:     string(role) + "-http",
		role:     role,
		endpoint: endpoint,
		client:   &http.Client{Timeout: DefaultHTTPTimeout},
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Name returns the provider name.
func (p *HTTPProvider) Name() string {
	return p.name
}

// transformRequest is the JSON request body.
type transformRequest struct {
	Role  string `json:"role"`
	Input string `json:"input"`
}

// transformResponse is the JSON response body.
type transformResponse struct {
	Output string `json:"output"`
}

// Transform sends input to the endpoint and returns the transformed text.
func (p *HTTPProvider) Transform(ctx context.Context, input string) (string, error) {
	body, err := json.Marshal(transformRequest{
		Role:  string(p.role),
		Input: input,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode transform request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create transform request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if p.userAgent != "" {
		req.Header.Set("User-Agent", p.userAgent)
	}
	if p.token != "" {
		req.Header.Set("Authorization", "Bearer "+p.token)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("transform request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // Best-effort close on read path

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("transform endpoint returned status %d", resp.StatusCode)
	}

	var result transformResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode transform response: %w", err)
	}

	if strings.TrimSpace(result.Output) == "" {
		return "", fmt.Errorf("transform endpoint returned empty output")
	}

	return result.Output, nil
}
