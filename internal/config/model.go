package config

import (
	"fmt"
	"strings"
	"time"
)

// Config is the process-wide configuration. It is built once at startup and
// passed by reference; nothing mutates it after Load returns.
type Config struct {
	Hub     HubConfig     `mapstructure:"hub"`
	Server  ServerConfig  `mapstructure:"server"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// HubConfig describes the upstream JupyterHub this process manages.
type HubConfig struct {
	URL       string        `mapstructure:"url"`
	Token     string        `mapstructure:"token"`
	VerifySSL bool          `mapstructure:"verify_ssl"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// ServerConfig describes the local passthrough service.
type ServerConfig struct {
	Host   string             `mapstructure:"host"`
	Port   int                `mapstructure:"port"`
	Limits ServerLimitsConfig `mapstructure:"limits"`
	Health ToggleConfig       `mapstructure:"health"`
	CORS   CORSConfig         `mapstructure:"cors"`
}

type ServerLimitsConfig struct {
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

type ToggleConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	AllowedMethods []string `mapstructure:"allowed_methods"`
	AllowedHeaders []string `mapstructure:"allowed_headers"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// GetHubURL returns the hub base URL without a trailing slash.
func (c *Config) GetHubURL() string {
	return strings.TrimSuffix(c.Hub.URL, "/")
}

// GetHubAPIURL returns the root of the hub's REST API.
func (c *Config) GetHubAPIURL() string {
	return c.GetHubURL() + "/hub/api"
}

func (c *Config) GetHubToken() string {
	return c.Hub.Token
}

func (c *Config) GetRequestTimeout() time.Duration {
	return c.Hub.Timeout
}

// GetListenAddr returns the host:port the local service binds to.
func (c *Config) GetListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// GetLocalServerUrl returns the URL the local service is reachable on.
func (c *Config) GetLocalServerUrl() string {
	host := c.Server.Host
	if host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return fmt.Sprintf("http://%s:%d", host, c.Server.Port)
}

// Validate checks the settings that have no usable default.
func (c *Config) Validate() error {
	if len(strings.TrimSpace(c.Hub.URL)) == 0 {
		return ErrMissingHubURL
	}
	if !strings.HasPrefix(c.Hub.URL, "http://") && !strings.HasPrefix(c.Hub.URL, "https://") {
		return fmt.Errorf("hub url must be http(s), got %q", c.Hub.URL)
	}
	if len(strings.TrimSpace(c.Hub.Token)) == 0 {
		return ErrMissingHubToken
	}
	if c.Hub.Timeout <= 0 {
		return fmt.Errorf("hub timeout must be positive, got %s", c.Hub.Timeout)
	}
	return nil
}
