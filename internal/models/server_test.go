package models_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubman-io/hubman/internal/models"
)

func TestServerOptionsPreserveUnknownKeys(t *testing.T) {
	options := models.ServerOptions{
		"profile":   "large",
		"gpu_count": 2,
	}

	options.WithImage("jupyter/scipy-notebook").
		WithCPULimit(1.5).
		WithMemLimit("4G").
		WithEnv(map[string]string{"MY_VAR": "1"})

	raw, err := json.Marshal(options)
	require.NoError(t, err)

	var roundTripped map[string]any
	require.NoError(t, json.Unmarshal(raw, &roundTripped))

	assert.Equal(t, "jupyter/scipy-notebook", roundTripped["image"])
	assert.Equal(t, 1.5, roundTripped["cpu_limit"])
	assert.Equal(t, "4G", roundTripped["mem_limit"])
	assert.Equal(t, "large", roundTripped["profile"])
	assert.Equal(t, float64(2), roundTripped["gpu_count"])
	assert.Equal(t, map[string]any{"MY_VAR": "1"}, roundTripped["env"])
}

func TestUserHasActiveServer(t *testing.T) {
	user := models.User{Name: "alice"}
	assert.False(t, user.HasActiveServer())

	user.Servers = map[string]models.Server{
		"": {Name: "", Ready: false, Pending: "spawn"},
	}
	assert.False(t, user.HasActiveServer())

	user.Servers["gpu"] = models.Server{Name: "gpu", Ready: true}
	assert.True(t, user.HasActiveServer())
}

func TestTokenIsExpired(t *testing.T) {
	token := models.Token{}
	assert.False(t, token.IsExpired(), "no expiry means the token never expires")

	past := time.Now().Add(-time.Hour)
	token.ExpiresAt = &past
	assert.True(t, token.IsExpired())

	future := time.Now().Add(time.Hour)
	token.ExpiresAt = &future
	assert.False(t, token.IsExpired())
}
