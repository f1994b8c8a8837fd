// Package upgradapi implements the outbound gateways against the remote
// UpgradEshop REST API. One shared Client carries the HTTP plumbing:
// JSON encoding, the x-auth-token header, error-body decoding and request
// metrics. The per-gateway files translate between the wire DTOs and the
// domain model.
package upgradapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ErrRemoteRequest is the sentinel for transport and HTTP-level failures
// talking to the remote API.
var ErrRemoteRequest = errors.New("remote api request failed")

// RemoteError is a non-2xx response from the remote API, with the message
// its body carried when there was one.
type RemoteError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *RemoteError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("remote api request failed: status %d", e.StatusCode)
	}
	return fmt.Sprintf("remote api request failed: status %d: %s", e.StatusCode, e.Message)
}

// Unwrap links the error to the ErrRemoteRequest sentinel.
func (e *RemoteError) Unwrap() error {
	return ErrRemoteRequest
}

// Client is the shared HTTP client for all remote gateways.
type Client struct {
	httpClient *http.Client
	baseURL    string
	metrics    *requestMetrics
}

// requestMetrics instruments outbound calls per endpoint, method and
// status class.
type requestMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newRequestMetrics(reg prometheus.Registerer) *requestMetrics {
	m := &requestMetrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "storefront_api_requests_total",
			Help: "Outbound requests to the remote storefront API.",
		}, []string{"endpoint", "method", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "storefront_api_request_duration_seconds",
			Help:    "Outbound request latency to the remote storefront API.",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint", "method"}),
	}
	if reg != nil {
		reg.MustRegister(m.requests, m.duration)
	}
	return m
}

func (m *requestMetrics) observe(endpoint, method string, status int, elapsed time.Duration) {
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	m.requests.WithLabelValues(endpoint, method, label).Inc()
	m.duration.WithLabelValues(endpoint, method).Observe(elapsed.Seconds())
}

// NewClient creates a Client for the given base URL. The registerer may be
// nil to skip metrics registration, which tests use.
func NewClient(baseURL string, timeout time.Duration, reg prometheus.Registerer) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("base URL is required")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		metrics:    newRequestMetrics(reg),
	}, nil
}

// request describes one call to the remote API. endpoint is the metric
// label; path the concrete URL path, which may carry an id.
type request struct {
	method   string
	endpoint string
	path     string
	token    string
	body     any
}

// do executes the request and decodes a 2xx response body into out when
// out is non-nil. Non-2xx responses come back as a RemoteError carrying
// the body's message field.
func (c *Client) do(ctx context.Context, req request, out any) error {
	var bodyReader io.Reader
	if req.body != nil {
		encoded, err := json.Marshal(req.body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, c.baseURL+req.path, bodyReader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if req.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.token != "" {
		httpReq.Header.Set("x-auth-token", req.token)
	}

	start := time.Now()
	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.metrics.observe(req.endpoint, req.method, 0, time.Since(start))
		return fmt.Errorf("%w: %w", ErrRemoteRequest, err)
	}
	defer httpResp.Body.Close()

	c.metrics.observe(req.endpoint, req.method, httpResp.StatusCode, time.Since(start))

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return &RemoteError{
			StatusCode: httpResp.StatusCode,
			Message:    serverMessage(raw),
		}
	}

	if out != nil && len(raw) > 0 {
		if err = json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decoding response body: %w", err)
		}
	}
	return nil
}

// serverMessage pulls the message field out of an API body, tolerating
// bodies that are plain text rather than JSON.
func serverMessage(raw []byte) string {
	var decoded struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &decoded); err == nil && decoded.Message != "" {
		return decoded.Message
	}
	if len(raw) > 0 && raw[0] != '{' && raw[0] != '[' {
		return string(bytes.TrimSpace(raw))
	}
	return ""
}

// remoteMessage extracts the server's message from an error produced by
// do, empty when the failure was transport-level.
func remoteMessage(err error) string {
	var remoteErr *RemoteError
	if errors.As(err, &remoteErr) {
		return remoteErr.Message
	}
	return ""
}
