package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rendau/webtools/adapters/client/httpc"
	"github.com/rendau/webtools/adapters/client/httpc/httpclient"
	"github.com/rendau/webtools/adapters/logger"
	"github.com/rendau/webtools/adapters/logger/zap"
)

// Config holds the logger and http client settings.
type Config struct {
	Log  LogConfig
	Http HttpConfig
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"warn"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// HttpConfig holds client defaults. Zero timeouts fall back to the
// per-method defaults of the client.
type HttpConfig struct {
	Timeout       time.Duration `envconfig:"HTTP_TIMEOUT" default:"0s"`
	RetryCount    int           `envconfig:"HTTP_RETRY_COUNT" default:"3"`
	RetryInterval time.Duration `envconfig:"HTTP_RETRY_INTERVAL" default:"0s"`
	Proxy         string        `envconfig:"HTTP_PROXY_URL"`
	Insecure      bool          `envconfig:"HTTP_INSECURE" default:"true"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level: "warn",
		},
		Http: HttpConfig{
			RetryCount: httpc.DefaultRetryCount,
			Insecure:   true,
		},
	}
}

// ClientOptions builds the base options for httpclient.New.
func (c *Config) ClientOptions() httpc.OptionsSt {
	opts := httpc.OptionsSt{
		Tls:           httpc.NewTls(c.Http.Insecure),
		Proxy:         c.Http.Proxy,
		Timeout:       c.Http.Timeout,
		RetryCount:    c.Http.RetryCount,
		RetryInterval: c.Http.RetryInterval,
	}

	if c.Http.RetryCount <= 0 {
		opts.RetryCount = -1
	}

	return opts
}

func (c *Config) NewLogger() *zap.St {
	return zap.New(c.Log.Level, c.Log.Development)
}

func (c *Config) NewClient(lg logger.Lite) *httpclient.St {
	return httpclient.New(lg, c.ClientOptions())
}
