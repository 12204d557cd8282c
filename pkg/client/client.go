// Package client implements the rentahuman.ai REST client.
//
// A Client is immutable after construction and safe for concurrent use; it
// holds no per-call state beyond the underlying http.Client's connection
// pool. Every operation takes a context.Context and blocks only its caller,
// so one Client serves both sequential and concurrent call sites.
package client

import (
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
)

const (
	// DefaultBaseURL is the production API endpoint.
	DefaultBaseURL = "https://rentahuman.ai/api"

	// DefaultTimeout is the per-attempt request timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxRetries bounds retries on rate limiting and transport
	// failures.
	DefaultMaxRetries = 3

	// NoRetries disables retrying entirely: any 429 or transport failure
	// surfaces immediately.
	NoRetries = -1

	// DefaultAgentID identifies this SDK to the marketplace on writes that
	// carry an agent identity.
	DefaultAgentID = "rentahuman-go"
)

const (
	defaultRetryAfter       = 1 * time.Second
	defaultTransportBackoff = 500 * time.Millisecond
)

// Config holds configuration for the rentahuman client.
type Config struct {
	// APIKey is a rentahuman API key (starts with "rah_"). Required by the
	// server for write operations; read operations work without one.
	APIKey string

	// BaseURL overrides the API endpoint, mainly for testing. A trailing
	// slash is trimmed.
	BaseURL string

	// Timeout is the per-attempt HTTP timeout (default: 30s).
	Timeout time.Duration

	// MaxRetries bounds retries on 429 and transport failures
	// (default: 3). Set to NoRetries to disable retrying.
	MaxRetries int

	// AgentID is sent as the agent identity on bookings and bounties
	// (default: "rentahuman-go").
	AgentID string

	// RetryAfterDefault is the wait applied to a 429 response that carries
	// no parseable Retry-After header (default: 1s).
	RetryAfterDefault time.Duration

	// TransportBackoff is the linear backoff step for transport failures:
	// attempt n waits TransportBackoff * (n+1) (default: 500ms).
	TransportBackoff time.Duration

	// Logger is optional; a null logger is used when absent.
	Logger hclog.Logger

	// HTTPClient overrides the underlying transport, mainly for testing.
	HTTPClient *http.Client
}

// Client is the rentahuman.ai API client.
type Client struct {
	baseURL           string
	apiKey            string
	agentID           string
	maxRetries        int
	retryAfterDefault time.Duration
	transportBackoff  time.Duration
	httpClient        *http.Client
	logger            hclog.Logger
}

// New creates a rentahuman client from config, filling in defaults for any
// zero-value fields.
func New(config Config) (*Client, error) {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}
	if config.MaxRetries == 0 {
		config.MaxRetries = DefaultMaxRetries
	} else if config.MaxRetries < 0 {
		config.MaxRetries = 0
	}
	if config.AgentID == "" {
		config.AgentID = DefaultAgentID
	}
	if config.RetryAfterDefault == 0 {
		config.RetryAfterDefault = defaultRetryAfter
	}
	if config.TransportBackoff == 0 {
		config.TransportBackoff = defaultTransportBackoff
	}
	if config.Logger == nil {
		config.Logger = hclog.NewNullLogger()
	}
	if config.HTTPClient == nil {
		config.HTTPClient = &http.Client{
			Timeout: config.Timeout,
		}
	}

	return &Client{
		baseURL:           strings.TrimRight(config.BaseURL, "/"),
		apiKey:            config.APIKey,
		agentID:           config.AgentID,
		maxRetries:        config.MaxRetries,
		retryAfterDefault: config.RetryAfterDefault,
		transportBackoff:  config.TransportBackoff,
		httpClient:        config.HTTPClient,
		logger:            config.Logger.Named("rentahuman-client"),
	}, nil
}

// AgentID returns the agent identity this client attaches to writes.
func (c *Client) AgentID() string {
	return c.agentID
}

// HasAPIKey reports whether the client was configured with an API key.
// Write endpoints require one server-side.
func (c *Client) HasAPIKey() bool {
	return c.apiKey != ""
}
