package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubman-io/hubman/internal/config"
)

func TestDefaults(t *testing.T) {
	cfg := config.DefaultConfig()

	assert.True(t, cfg.Hub.VerifySSL)
	assert.Equal(t, 30*time.Second, cfg.Hub.Timeout)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.True(t, cfg.Server.Health.Enabled)
	assert.Equal(t, "/health", cfg.Server.Health.Path)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("HUBMAN_HUB_URL", "https://hub.example.com/")
	t.Setenv("HUBMAN_HUB_TOKEN", "env-token")
	t.Setenv("HUBMAN_HUB_TIMEOUT", "10s")
	t.Setenv("HUBMAN_SERVER_PORT", "9000")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "https://hub.example.com/", cfg.Hub.URL)
	assert.Equal(t, "env-token", cfg.Hub.Token)
	assert.Equal(t, 10*time.Second, cfg.Hub.Timeout)
	assert.Equal(t, 9000, cfg.Server.Port)

	// Derived values
	assert.Equal(t, "https://hub.example.com", cfg.GetHubURL())
	assert.Equal(t, "https://hub.example.com/hub/api", cfg.GetHubAPIURL())
	assert.NoError(t, cfg.Validate())
}

func TestJupyterHubEnvFallback(t *testing.T) {
	// The names JupyterHub itself injects into managed services
	t.Setenv("JUPYTERHUB_URL", "https://hub.internal")
	t.Setenv("JUPYTERHUB_API_TOKEN", "managed-service-token")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "https://hub.internal", cfg.Hub.URL)
	assert.Equal(t, "managed-service-token", cfg.Hub.Token)
}

func TestPrefixedEnvWinsOverFallback(t *testing.T) {
	t.Setenv("JUPYTERHUB_URL", "https://hub.internal")
	t.Setenv("HUBMAN_HUB_URL", "https://hub.override")
	t.Setenv("HUBMAN_HUB_TOKEN", "tok")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "https://hub.override", cfg.Hub.URL)
}

func TestLoadFromConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `
hub:
  url: https://hub.example.com
  token: file-token
  verify_ssl: false
server:
  port: 9090
logging:
  level: debug
  format: text
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://hub.example.com", cfg.Hub.URL)
	assert.Equal(t, "file-token", cfg.Hub.Token)
	assert.False(t, cfg.Hub.VerifySSL)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// File values merge with untouched defaults
	assert.Equal(t, 30*time.Second, cfg.Hub.Timeout)
}

func TestValidate(t *testing.T) {
	cfg := config.DefaultConfig()

	assert.ErrorIs(t, cfg.Validate(), config.ErrMissingHubURL)

	cfg.Hub.URL = "hub.example.com"
	assert.Error(t, cfg.Validate(), "scheme-less url must be rejected")

	cfg.Hub.URL = "https://hub.example.com"
	assert.ErrorIs(t, cfg.Validate(), config.ErrMissingHubToken)

	cfg.Hub.Token = "tok"
	assert.NoError(t, cfg.Validate())

	cfg.Hub.Timeout = 0
	assert.Error(t, cfg.Validate())
}

func TestListenAddr(t *testing.T) {
	cfg := config.DefaultConfig()
	assert.Equal(t, "0.0.0.0:8080", cfg.GetListenAddr())
	assert.Equal(t, "http://localhost:8080", cfg.GetLocalServerUrl())

	cfg.Server.Host = "10.0.0.5"
	cfg.Server.Port = 9999
	assert.Equal(t, "10.0.0.5:9999", cfg.GetListenAddr())
	assert.Equal(t, "http://10.0.0.5:9999", cfg.GetLocalServerUrl())
}
