// Package client implements a thin client for the GoodData Cloud REST API.
// Request shapes live in pkg/model and are validated against their schema
// descriptors before anything goes on the wire.
package client

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

	"github.com/google/uuid"

	"github.com/quanb-duy/gooddata-go-sdk/internal/schema"
)

const defaultTimeout = 30 * time.Second

var (
	// ErrMissingToken is returned when no API token is configured
	ErrMissingToken = errors.New("API token must not be empty")
	// ErrInvalidHost is returned when the host is not an absolute URL
	ErrInvalidHost = errors.New("host must be an absolute http(s) URL")
)

// Client talks to one GoodData Cloud organization
type Client struct {
	host       string
	token      string
	userAgent  string
	headers    map[string]string
	httpClient *http.Client
}

// Option customizes a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithUserAgent overrides the User-Agent header
func WithUserAgent(agent string) Option {
	return func(c *Client) { c.userAgent = agent }
}

// WithHeader attaches a custom header to every request
func WithHeader(name, value string) Option {
	return func(c *Client) { c.headers[name] = value }
}

// New creates a client for the given organization host and API token
func New(host, token string, opts ...Option) (*Client, error) {
	parsed, err := url.Parse(host)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidHost, host)
	}
	if token == "" {
		return nil, ErrMissingToken
	}

	c := &Client{
		host:       strings.TrimRight(host, "/"),
		token:      token,
		userAgent:  "gooddata-go-sdk",
		headers:    make(map[string]string),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// NewFromProfile creates a client from a resolved profile
func NewFromProfile(profile Profile, opts ...Option) (*Client, error) {
	headerOpts := make([]Option, 0, len(profile.CustomHeaders)+len(opts))
	for name, value := range profile.CustomHeaders {
		headerOpts = append(headerOpts, WithHeader(name, value))
	}
	return New(profile.Host, profile.Token, append(headerOpts, opts...)...)
}

// APIError is the error body returned by the REST API
type APIError struct {
	StatusCode int    `json:"-"`
	Title      string `json:"title,omitempty"`
	Detail     string `json:"detail,omitempty"`
	TraceID    string `json:"traceId,omitempty"`
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("API error %d", e.StatusCode)
	if e.Title != "" {
		msg += ": " + e.Title
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.TraceID != "" {
		msg += " (trace " + e.TraceID + ")"
	}
	return msg
}

// do runs one JSON round trip against the API
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.host+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for name, value := range c.headers {
		req.Header.Set(name, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeAPIError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return apiErr
	}
	if jsonErr := json.Unmarshal(data, apiErr); jsonErr != nil && len(data) > 0 {
		apiErr.Detail = strings.TrimSpace(string(data))
	}
	return apiErr
}

// validateRequest checks a typed request against its schema descriptor so
// malformed payloads fail locally instead of with a server 400.
func validateRequest(v any, modelName string) error {
	desc, ok := schema.Lookup(modelName)
	if !ok {
		return fmt.Errorf("no schema descriptor registered for %s", modelName)
	}
	if result := schema.ValidateModel(v, desc); !result.Valid {
		return fmt.Errorf("%s does not conform to its schema: %w", modelName, result.Err())
	}
	return nil
}

// validateRawDocument is validateRequest for payloads that are already raw JSON
func validateRawDocument(data []byte, modelName string) error {
	desc, ok := schema.Lookup(modelName)
	if !ok {
		return fmt.Errorf("no schema descriptor registered for %s", modelName)
	}
	if result := schema.Validate(data, desc); !result.Valid {
		return fmt.Errorf("%s does not conform to its schema: %w", modelName, result.Err())
	}
	return nil
}
