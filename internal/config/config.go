// Package config loads CLI configuration. Sources, lowest to highest
// precedence: built-in defaults, an optional HCL file, then environment
// variables (a .env file in the working directory is folded into the
// environment first).
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/joho/godotenv"

	"github.com/rentahuman/rentahuman-go/pkg/client"
)

// Environment variable names recognized as overrides.
const (
	EnvAPIKey     = "RENTAHUMAN_API_KEY"
	EnvBaseURL    = "RENTAHUMAN_BASE_URL"
	EnvAgentID    = "RENTAHUMAN_AGENT_ID"
	EnvLogLevel   = "RENTAHUMAN_LOG_LEVEL"
	EnvMaxRetries = "RENTAHUMAN_MAX_RETRIES"
)

// Config is the CLI configuration.
type Config struct {
	// APIKey authenticates write operations. Keys are issued with a
	// "rah_" prefix. Optional: discovery endpoints work without one.
	APIKey string `hcl:"api_key,optional"`

	// BaseURL is the API root, without a trailing slash.
	BaseURL string `hcl:"base_url,optional"`

	// AgentID identifies this agent on bookings, bounties, and
	// conversations it creates.
	AgentID string `hcl:"agent_id,optional"`

	// LogLevel is an hclog level name (trace, debug, info, warn, error).
	LogLevel string `hcl:"log_level,optional"`

	// MaxRetries caps retry attempts after a rate-limited or failed
	// request. Zero means the client default; -1 disables retries.
	MaxRetries int `hcl:"max_retries,optional"`

	// TimeoutSeconds bounds each HTTP attempt. Zero means the client
	// default.
	TimeoutSeconds int `hcl:"timeout_seconds,optional"`
}

// Load reads configuration from the given HCL file (skipped when path is
// empty) and applies environment overrides. A .env file in the working
// directory is loaded first if present.
func Load(path string) (*Config, error) {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	var cfg Config
	if path != "" {
		if err := hclsimple.DecodeFile(path, nil, &cfg); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}
	cfg.applyEnv()
	return &cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvAPIKey); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv(EnvBaseURL); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv(EnvAgentID); v != "" {
		c.AgentID = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvMaxRetries); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxRetries = n
		}
	}
}

// Validate returns all configuration problems at once.
func (c *Config) Validate() error {
	var result *multierror.Error

	if c.APIKey != "" && !strings.HasPrefix(c.APIKey, "rah_") {
		result = multierror.Append(result,
			fmt.Errorf("api_key must start with %q", "rah_"))
	}
	if c.BaseURL != "" {
		u, err := url.Parse(c.BaseURL)
		if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
			result = multierror.Append(result,
				fmt.Errorf("base_url %q is not a valid http(s) URL", c.BaseURL))
		}
	}
	if c.LogLevel != "" && hclog.LevelFromString(c.LogLevel) == hclog.NoLevel {
		result = multierror.Append(result,
			fmt.Errorf("log_level %q is not a valid level (trace, debug, info, warn, error)", c.LogLevel))
	}
	if c.MaxRetries < client.NoRetries {
		result = multierror.Append(result,
			fmt.Errorf("max_retries must be %d (disabled) or greater", client.NoRetries))
	}
	if c.TimeoutSeconds < 0 {
		result = multierror.Append(result,
			fmt.Errorf("timeout_seconds must not be negative"))
	}

	return result.ErrorOrNil()
}

// ClientConfig converts the loaded configuration into client settings.
func (c *Config) ClientConfig(logger hclog.Logger) client.Config {
	return client.Config{
		APIKey:     c.APIKey,
		BaseURL:    c.BaseURL,
		AgentID:    c.AgentID,
		MaxRetries: c.MaxRetries,
		Timeout:    time.Duration(c.TimeoutSeconds) * time.Second,
		Logger:     logger,
	}
}
