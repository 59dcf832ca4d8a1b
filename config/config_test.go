package config

import (
	"testing"
	"time"

	"github.com/rendau/webtools/adapters/logger/zap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("HTTP_RETRY_COUNT", "5")
	t.Setenv("HTTP_RETRY_INTERVAL", "150ms")
	t.Setenv("HTTP_PROXY_URL", "http://proxy:3128")
	t.Setenv("HTTP_INSECURE", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 5, cfg.Http.RetryCount)
	assert.Equal(t, 150*time.Millisecond, cfg.Http.RetryInterval)

	opts := cfg.ClientOptions()
	assert.Equal(t, 5, opts.RetryCount)
	assert.Equal(t, "http://proxy:3128", opts.Proxy)
	assert.False(t, opts.Tls.Insecure())
}

func TestLoadOrDefault(t *testing.T) {
	t.Setenv("HTTP_RETRY_COUNT", "many")

	_, err := Load()
	require.Error(t, err)

	assert.Equal(t, Default(), LoadOrDefault())
}

func TestNewClient(t *testing.T) {
	cfg := Default()
	cfg.Http.RetryCount = 0

	assert.Equal(t, -1, cfg.ClientOptions().RetryCount)

	c := cfg.NewClient(zap.NewNop())
	assert.Equal(t, 0, c.GetOptions().RetryCount)
	assert.True(t, c.GetOptions().Tls.Insecure())
}
