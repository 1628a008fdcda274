package hub_test

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubman-io/hubman/internal/config"
	"github.com/hubman-io/hubman/internal/hub"
	"github.com/hubman-io/hubman/internal/models"
)

func TestGetHealthReportsOK(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/hub/api/health", r.URL.Path)
		writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
	}))

	health := client.GetHealth(context.Background())
	assert.Equal(t, models.HealthStatusOK, health.Status)
}

func TestGetHealthNeverErrors(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Hub.URL = "http://127.0.0.1:1"
	cfg.Hub.Token = "test-token"
	cfg.Hub.Timeout = time.Second

	client, err := hub.NewClient(cfg)
	require.NoError(t, err)
	defer client.Close()

	health := client.GetHealth(context.Background())
	assert.Equal(t, models.HealthStatusError, health.Status)
	assert.NotEmpty(t, health.Detail)
}

func TestBulkStartCollectsPerUserFailures(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// POST /hub/api/users/{name}/servers/
		if strings.Contains(r.URL.Path, "/users/bob/") {
			writeJSON(w, http.StatusInternalServerError, map[string]any{"message": "spawn failed for bob"})
			return
		}
		writeJSON(w, http.StatusAccepted, map[string]any{})
	}))

	result := client.StartServers(context.Background(), []string{"alice", "bob", "carol"}, nil)

	assert.ElementsMatch(t, []string{"alice", "carol"}, result.Succeeded)
	require.Len(t, result.Failed, 1)
	assert.Contains(t, result.Failed["bob"], "spawn failed for bob")
}

func TestBulkStopAllSucceed(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))

	result := client.StopServers(context.Background(), []string{"alice", "bob"})

	assert.ElementsMatch(t, []string{"alice", "bob"}, result.Succeeded)
	assert.Nil(t, result.Failed)
}

func TestShutdownPostsToHub(t *testing.T) {
	var gotMethod, gotPath string

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		writeJSON(w, http.StatusOK, map[string]any{})
	}))

	_, err := client.Shutdown(context.Background())
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/hub/api/shutdown", gotPath)
}
