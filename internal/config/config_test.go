package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentahuman/rentahuman-go/pkg/client"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.hcl")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadFromHCL(t *testing.T) {
	path := writeConfigFile(t, `
api_key     = "rah_test_key_123"
base_url    = "https://staging.rentahuman.ai/api"
agent_id    = "errand-bot"
log_level   = "debug"
max_retries = 5
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "rah_test_key_123", cfg.APIKey)
	assert.Equal(t, "https://staging.rentahuman.ai/api", cfg.BaseURL)
	assert.Equal(t, "errand-bot", cfg.AgentID)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 5, cfg.MaxRetries)
}

func TestLoadWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `
api_key  = "rah_from_file"
base_url = "https://rentahuman.ai/api"
`)
	t.Setenv(EnvAPIKey, "rah_from_env")
	t.Setenv(EnvMaxRetries, "2")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "rah_from_env", cfg.APIKey)
	assert.Equal(t, "https://rentahuman.ai/api", cfg.BaseURL, "file value survives when env is unset")
	assert.Equal(t, 2, cfg.MaxRetries)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"empty is valid", Config{}, ""},
		{"prefixed api key", Config{APIKey: "rah_test_key_123"}, ""},
		{"unprefixed api key", Config{APIKey: "sk_wrong_provider"}, "api_key"},
		{"bad base url", Config{BaseURL: "not a url"}, "base_url"},
		{"non-http scheme", Config{BaseURL: "ftp://rentahuman.ai"}, "base_url"},
		{"bad log level", Config{LogLevel: "verbose"}, "log_level"},
		{"retries below disabled", Config{MaxRetries: -2}, "max_retries"},
		{"negative timeout", Config{TimeoutSeconds: -1}, "timeout_seconds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg := Config{BaseURL: "::", LogLevel: "loud", MaxRetries: -5}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base_url")
	assert.Contains(t, err.Error(), "log_level")
	assert.Contains(t, err.Error(), "max_retries")
}

func TestClientConfig(t *testing.T) {
	cfg := Config{
		APIKey:         "rah_test_key_123",
		BaseURL:        "https://rentahuman.ai/api",
		MaxRetries:     client.NoRetries,
		TimeoutSeconds: 10,
	}

	cc := cfg.ClientConfig(nil)
	assert.Equal(t, "rah_test_key_123", cc.APIKey)
	assert.Equal(t, client.NoRetries, cc.MaxRetries)
	assert.Equal(t, "10s", cc.Timeout.String())
}
