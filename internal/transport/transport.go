// Package transport executes the outbound HTTP requests for the client. It
// owns the tuned http.Transport, applies the per-request timeout, reads the
// response body fully so no connection outlives a call, and classifies
// transport failures so callers can tell an elapsed timeout from other
// network errors.
package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// maxBodyBytes bounds how much of a response body is read into memory.
const maxBodyBytes = 1 << 20 // 1 MB

// Config holds HTTP transport configuration.
type Config struct {
	// Timeout bounds each request end to end, including the body read.
	// Zero disables the bound.
	Timeout time.Duration

	// UserAgent is sent on every request.
	UserAgent string

	// MaxConnsPerHost caps the connection pool toward the service.
	MaxConnsPerHost int

	// HTTPClient, when set, replaces the default pooled client. The
	// configured Timeout still applies per request.
	HTTPClient *http.Client

	// Logger receives dispatch logs. Nil means no logging.
	Logger *slog.Logger

	// Breaker, when set, short-circuits requests after repeated failures.
	Breaker *BreakerConfig
}

// DefaultConfig returns sensible defaults for the transport.
func DefaultConfig() Config {
	return Config{
		Timeout:         30 * time.Second,
		MaxConnsPerHost: 10,
	}
}

// Result is a fully drained HTTP response.
type Result struct {
	Status int
	Body   []byte
}

// Client executes requests against the service. Immutable after construction
// and safe for concurrent use.
type Client struct {
	httpClient *http.Client
	timeout    time.Duration
	userAgent  string
	logger     *slog.Logger
	breaker    *breaker
}

// New creates a transport client with connection pooling.
func New(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout:   10 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				ForceAttemptHTTP2:     true,
				MaxIdleConns:          cfg.MaxConnsPerHost,
				MaxIdleConnsPerHost:   cfg.MaxConnsPerHost,
				MaxConnsPerHost:       cfg.MaxConnsPerHost,
				IdleConnTimeout:       90 * time.Second,
				TLSHandshakeTimeout:   10 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,
			},
		}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	c := &Client{
		httpClient: httpClient,
		timeout:    cfg.Timeout,
		userAgent:  cfg.UserAgent,
		logger:     logger,
	}

	if cfg.Breaker != nil {
		c.breaker = newBreaker(*cfg.Breaker, logger)
	}

	return c
}

// PostForm sends a form-encoded POST and drains the response. The operation
// name labels logs and metrics, never request content.
func (c *Client) PostForm(ctx context.Context, operation, rawURL string, form url.Values) (*Result, error) {
	return c.sendForm(ctx, operation, http.MethodPost, rawURL, form)
}

// DeleteForm sends a form-encoded DELETE and drains the response.
func (c *Client) DeleteForm(ctx context.Context, operation, rawURL string, form url.Values) (*Result, error) {
	return c.sendForm(ctx, operation, http.MethodDelete, rawURL, form)
}

func (c *Client) sendForm(ctx context.Context, operation, method, rawURL string, form url.Values) (*Result, error) {
	body := strings.NewReader(form.Encode())
	req, err := http.NewRequest(method, rawURL, body)
	if err != nil {
		return nil, fmt.Errorf("create %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	return c.Do(ctx, operation, req)
}

// Do executes a single request attempt, bounded by the configured timeout.
// There is no retry: callers re-invoke on failure.
func (c *Client) Do(ctx context.Context, operation string, req *http.Request) (*Result, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	req = req.WithContext(ctx)

	requestsInFlight.Inc()
	defer requestsInFlight.Dec()
	start := time.Now()

	res, err := c.execute(req)
	elapsed := time.Since(start)

	outcome := outcomeFor(res, err)
	requestsTotal.WithLabelValues(operation, outcome).Inc()
	requestDuration.WithLabelValues(operation).Observe(elapsed.Seconds())

	if err != nil {
		c.logger.DebugContext(ctx, "request failed",
			slog.String("operation", operation),
			slog.String("outcome", outcome),
			slog.Duration("elapsed", elapsed),
		)
		return nil, err
	}

	c.logger.DebugContext(ctx, "request completed",
		slog.String("operation", operation),
		slog.Int("status", res.Status),
		slog.Duration("elapsed", elapsed),
	)
	return res, nil
}

// execute sends the request, through the breaker when one is configured, and
// drains the body so the connection is returned to the pool before the call
// completes.
func (c *Client) execute(req *http.Request) (*Result, error) {
	if c.breaker != nil {
		return c.breaker.execute(req, c.send)
	}
	return c.send(req)
}

func (c *Client) send(req *http.Request) (*Result, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	return &Result{Status: resp.StatusCode, Body: body}, nil
}

// IsTimeout reports whether err represents an elapsed deadline rather than
// some other transport failure.
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func outcomeFor(res *Result, err error) string {
	switch {
	case err == nil && res.Status >= 200 && res.Status < 300:
		return "success"
	case err == nil:
		return "api_error"
	case IsTimeout(err):
		return "timeout"
	default:
		return "network_error"
	}
}
