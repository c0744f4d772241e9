package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// HTTPClient interface for mockable HTTP operations. The session
// cookie string is forwarded verbatim; cookie/session management
// belongs to the caller.
type HTTPClient interface {
	Get(ctx context.Context, url string, cookies string) (*Response, error)
	PostForm(ctx context.Context, url string, form url.Values, cookies string) (*Response, error)
}

// Response wraps HTTP response data
type Response struct {
	StatusCode int
	Body       []byte
	Headers    map[string]string
}

// RealHTTPClient implements HTTPClient using net/http
type RealHTTPClient struct {
	client    *http.Client
	userAgent string
}

// NewRealHTTPClient creates a new real HTTP client
func NewRealHTTPClient(transport http.RoundTripper, userAgent string) *RealHTTPClient {
	return &RealHTTPClient{
		client: &http.Client{
			Transport: transport,
			Timeout:   30 * time.Second,
		},
		userAgent: userAgent,
	}
}

// Get performs an HTTP GET request
func (c *RealHTTPClient) Get(ctx context.Context, url string, cookies string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	c.setHeaders(req, cookies)
	return c.do(req, url)
}

// PostForm performs an HTTP POST with a form-encoded body. The
// claim/donation download flow submits parsed form fields this way.
func (c *RealHTTPClient) PostForm(ctx context.Context, url string, form url.Values, cookies string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.setHeaders(req, cookies)
	return c.do(req, url)
}

func (c *RealHTTPClient) setHeaders(req *http.Request, cookies string) {
	req.Header.Set("User-Agent", c.userAgent)
	if cookies != "" {
		req.Header.Set("Cookie", cookies)
	}
}

func (c *RealHTTPClient) do(req *http.Request, url string) (*Response, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch '%s': %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	headers := make(map[string]string)
	for k, v := range resp.Header {
		if len(v) > 0 {
			headers[k] = v[0]
		}
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       body,
		Headers:    headers,
	}, nil
}

// MockHTTPClient implements HTTPClient for testing
type MockHTTPClient struct {
	responses map[string]*Response
	errors    map[string]error
	calls     []string
	postCalls []string
}

// NewMockHTTPClient creates a new mock HTTP client
func NewMockHTTPClient() *MockHTTPClient {
	return &MockHTTPClient{
		responses: make(map[string]*Response),
		errors:    make(map[string]error),
		calls:     make([]string, 0),
	}
}

// SetResponse sets a mock response for a URL
func (m *MockHTTPClient) SetResponse(url string, response *Response) {
	m.responses[url] = response
}

// SetError sets a mock error for a URL
func (m *MockHTTPClient) SetError(url string, err error) {
	m.errors[url] = err
}

// GetCalls returns all URLs that were requested, GETs and POSTs alike
func (m *MockHTTPClient) GetCalls() []string {
	return m.calls
}

// PostCalls returns the URLs that were requested via POST
func (m *MockHTTPClient) PostCalls() []string {
	return m.postCalls
}

// Get returns a mock response or error
func (m *MockHTTPClient) Get(ctx context.Context, url string, cookies string) (*Response, error) {
	m.calls = append(m.calls, url)
	return m.lookup(url)
}

// PostForm returns a mock response or error
func (m *MockHTTPClient) PostForm(ctx context.Context, url string, form url.Values, cookies string) (*Response, error) {
	m.calls = append(m.calls, url)
	m.postCalls = append(m.postCalls, url)
	return m.lookup(url)
}

func (m *MockHTTPClient) lookup(url string) (*Response, error) {
	if err, exists := m.errors[url]; exists {
		return nil, err
	}

	if resp, exists := m.responses[url]; exists {
		return resp, nil
	}

	return nil, fmt.Errorf("no mock response configured for URL: %s", url)
}
