package imgbb

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/utafrali/imgbb-go/internal/logging"
	"github.com/utafrali/imgbb-go/internal/transport"
)

// Version of the client, reported in the default user agent.
const Version = "1.0.0"

// Defaults applied by DefaultConfig and for any Config field left unset.
const (
	DefaultBaseURL = "https://api.imgbb.com/1/upload"
	DefaultTimeout = 30 * time.Second
)

const defaultUserAgent = "imgbb-go/" + Version

// Config holds client configuration. Every field is optional; zero values
// take the documented defaults.
type Config struct {
	// BaseURL overrides the upload endpoint.
	BaseURL string

	// Timeout bounds each request end to end. The only cancellation signal
	// is this timeout (or the caller's context); nothing is retried.
	Timeout time.Duration

	// UserAgent identifies the client to the service.
	UserAgent string

	// HTTPClient, when set, replaces the default pooled client. TLS
	// configuration belongs to the injected client, not to this package.
	HTTPClient *http.Client

	// Logger receives structured dispatch logs. Nil discards them. The API
	// key is never logged.
	Logger *slog.Logger

	// Breaker, when set, enables a circuit breaker on the transport.
	// Requests are still attempted at most once; an open circuit surfaces
	// as ErrNetwork.
	Breaker *BreakerConfig
}

// BreakerConfig configures the optional circuit breaker.
type BreakerConfig struct {
	// Name identifies the breaker in metrics and logs.
	Name string
	// MaxRequests is the number of requests allowed while half-open.
	MaxRequests uint32
	// Interval is the cyclic period of the closed state for clearing
	// internal counts.
	Interval time.Duration
	// Timeout is how long the breaker stays open before moving to half-open.
	Timeout time.Duration
	// FailureRatio is the failure ratio that trips the breaker.
	FailureRatio float64
	// MinRequests is the minimum number of requests before the ratio is
	// evaluated.
	MinRequests uint32
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL:   DefaultBaseURL,
		Timeout:   DefaultTimeout,
		UserAgent: defaultUserAgent,
	}
}

// Client talks to the image-hosting service. It is immutable after
// construction and safe to share across any number of concurrent operations;
// each upload or delete is one outbound request with no shared mutable state.
type Client struct {
	apiKey    string
	baseURL   string
	logger    *slog.Logger
	transport *transport.Client
}

// New creates a client with the given API key and default configuration.
func New(apiKey string) *Client {
	return NewWithConfig(apiKey, DefaultConfig())
}

// NewWithConfig creates a client with custom configuration. Unset fields
// take the defaults from DefaultConfig.
func NewWithConfig(apiKey string, cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Discard()
	}

	tcfg := transport.DefaultConfig()
	tcfg.Timeout = cfg.Timeout
	tcfg.UserAgent = cfg.UserAgent
	tcfg.HTTPClient = cfg.HTTPClient
	tcfg.Logger = cfg.Logger
	if cfg.Breaker != nil {
		tcfg.Breaker = &transport.BreakerConfig{
			Name:         cfg.Breaker.Name,
			MaxRequests:  cfg.Breaker.MaxRequests,
			Interval:     cfg.Breaker.Interval,
			Timeout:      cfg.Breaker.Timeout,
			FailureRatio: cfg.Breaker.FailureRatio,
			MinRequests:  cfg.Breaker.MinRequests,
		}
	}

	return &Client{
		apiKey:    apiKey,
		baseURL:   cfg.BaseURL,
		logger:    cfg.Logger,
		transport: transport.New(tcfg),
	}
}

// NewUploader returns an empty uploader; set data and metadata with its
// chainable setters, then dispatch with Upload.
func (c *Client) NewUploader() *Uploader {
	return &Uploader{client: c}
}

// ReadFile reads the file at path fully into memory, encodes it, and returns
// an uploader ready for dispatch.
func (c *Client) ReadFile(path string) (*Uploader, error) {
	data, err := readFilePayload(path)
	if err != nil {
		return nil, err
	}
	return &Uploader{client: c, data: data, hasData: true}, nil
}

// ReadBytes encodes raw image bytes and returns an uploader ready for
// dispatch. An empty slice is accepted; the service decides on minimum size.
func (c *Client) ReadBytes(data []byte) *Uploader {
	return &Uploader{client: c, data: encodePayload(data), hasData: true}
}

// ReadBase64 verifies already-encoded data and returns an uploader ready for
// dispatch.
func (c *Client) ReadBase64(data string) (*Uploader, error) {
	if err := verifyBase64(data); err != nil {
		return nil, invalidEncoding(err)
	}
	return &Uploader{client: c, data: data, hasData: true}, nil
}

// UploadFile uploads the file at path.
func (c *Client) UploadFile(ctx context.Context, path string) (*Response, error) {
	u, err := c.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return u.Upload(ctx)
}

// UploadBytes uploads raw image bytes.
func (c *Client) UploadBytes(ctx context.Context, data []byte) (*Response, error) {
	return c.ReadBytes(data).Upload(ctx)
}

// UploadBase64 uploads already-encoded image data.
func (c *Client) UploadBase64(ctx context.Context, data string) (*Response, error) {
	u, err := c.ReadBase64(data)
	if err != nil {
		return nil, err
	}
	return u.Upload(ctx)
}

// UploadFileWithExpiration uploads the file at path with an expiration time
// in seconds.
func (c *Client) UploadFileWithExpiration(ctx context.Context, path string, seconds int64) (*Response, error) {
	u, err := c.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return u.Expiration(seconds).Upload(ctx)
}

// UploadBytesWithExpiration uploads raw image bytes with an expiration time
// in seconds.
func (c *Client) UploadBytesWithExpiration(ctx context.Context, data []byte, seconds int64) (*Response, error) {
	return c.ReadBytes(data).Expiration(seconds).Upload(ctx)
}

// UploadBase64WithExpiration uploads already-encoded image data with an
// expiration time in seconds.
func (c *Client) UploadBase64WithExpiration(ctx context.Context, data string, seconds int64) (*Response, error) {
	u, err := c.ReadBase64(data)
	if err != nil {
		return nil, err
	}
	return u.Expiration(seconds).Upload(ctx)
}
