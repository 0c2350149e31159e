package apiclient

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

	"github.com/google/uuid"
)

// RequestIDHeader carries a per-request correlation id.
const RequestIDHeader = "X-Request-ID"

// TokenSource supplies the bearer token of the current session, if any.
type TokenSource interface {
	Token() string
}

// Client issues requests against the admin REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	headers    http.Header
	tokens     TokenSource
	logger     *slog.Logger
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithHeader adds a header sent on every request. Per-request headers win.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.headers.Set(key, value)
	}
}

// WithTokenSource attaches "Authorization: Bearer <token>" whenever the source
// returns a non-empty token.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) {
		c.tokens = ts
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// New creates a Client for the API rooted at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		headers:    http.Header{},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AssetURL returns the public URL of a stored attachment.
func (c *Client) AssetURL(name string) string {
	return c.baseURL + "/public/" + strings.TrimLeft(name, "/")
}

type request struct {
	method      string
	body        []byte
	contentType string
	headers     http.Header
}

// RequestOption configures a single request.
type RequestOption func(*request) error

// Method sets the HTTP method. Requests default to GET.
func Method(m string) RequestOption {
	return func(r *request) error {
		r.method = m
		return nil
	}
}

// JSONBody encodes v as the JSON request body.
func JSONBody(v any) RequestOption {
	return func(r *request) error {
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encoding json body: %w", err)
		}
		r.body = b
		r.contentType = "application/json"
		return nil
	}
}

// MultipartBody encodes f as a multipart/form-data body. Its content type,
// including the boundary, replaces the JSON default.
func MultipartBody(f *Form) RequestOption {
	return func(r *request) error {
		b, ct, err := f.Encode()
		if err != nil {
			return err
		}
		r.body = b
		r.contentType = ct
		return nil
	}
}

// Header sets a request header, overriding defaults.
func Header(key, value string) RequestOption {
	return func(r *request) error {
		r.headers.Set(key, value)
		return nil
	}
}

// Fetch issues a request to endpoint and decodes the JSON response into T.
// An empty response body yields the zero T.
func Fetch[T any](ctx context.Context, c *Client, endpoint string, opts ...RequestOption) (T, error) {
	var out T

	body, err := c.send(ctx, endpoint, opts...)
	if err != nil {
		return out, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return out, fmt.Errorf("decoding response from %s: %w", endpoint, err)
	}
	return out, nil
}

// Do issues a request to endpoint and discards the response body.
func (c *Client) Do(ctx context.Context, endpoint string, opts ...RequestOption) error {
	_, err := c.send(ctx, endpoint, opts...)
	return err
}

func (c *Client) send(ctx context.Context, endpoint string, opts ...RequestOption) ([]byte, error) {
	r := &request{method: http.MethodGet, headers: http.Header{}}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	url := c.baseURL + endpoint

	var reader io.Reader
	if r.body != nil {
		reader = bytes.NewReader(r.body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, r.method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	for k, vs := range c.headers {
		httpReq.Header[k] = append([]string(nil), vs...)
	}
	if r.contentType != "" {
		httpReq.Header.Set("Content-Type", r.contentType)
	}
	if c.tokens != nil {
		if tok := c.tokens.Token(); tok != "" {
			httpReq.Header.Set("Authorization", "Bearer "+tok)
		}
	}
	for k, vs := range r.headers {
		httpReq.Header[k] = append([]string(nil), vs...)
	}
	requestID := httpReq.Header.Get(RequestIDHeader)
	if requestID == "" {
		requestID = uuid.New().String()
		httpReq.Header.Set(RequestIDHeader, requestID)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Debug("api request failed", "method", r.method, "endpoint", endpoint, "requestId", requestID, "error", err)
		return nil, fmt.Errorf("%s %s: %w", r.method, endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Debug("api request",
		"method", r.method,
		"endpoint", endpoint,
		"status", resp.StatusCode,
		"requestId", requestID,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 400 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &HTTPError{StatusCode: resp.StatusCode, Method: r.method, Endpoint: endpoint}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response from %s: %w", endpoint, err)
	}
	return body, nil
}
