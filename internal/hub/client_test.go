package hub_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubman-io/hubman/internal/config"
	"github.com/hubman-io/hubman/internal/hub"
	"github.com/hubman-io/hubman/internal/models"
)

// newTestClient points a client at a fake hub and cleans both up with the
// test.
func newTestClient(t *testing.T, handler http.Handler) (*hub.Client, *httptest.Server) {
	t.Helper()

	upstream := httptest.NewServer(handler)
	t.Cleanup(upstream.Close)

	cfg := config.DefaultConfig()
	cfg.Hub.URL = upstream.URL
	cfg.Hub.Token = "test-token"
	cfg.Hub.Timeout = 5 * time.Second

	client, err := hub.NewClient(cfg)
	require.NoError(t, err)
	t.Cleanup(client.Close)

	return client, upstream
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func TestNewClientValidatesConfig(t *testing.T) {
	cfg := config.DefaultConfig()

	_, err := hub.NewClient(cfg)
	assert.ErrorIs(t, err, config.ErrMissingHubURL)

	cfg.Hub.URL = "https://hub.example.com"
	_, err = hub.NewClient(cfg)
	assert.ErrorIs(t, err, config.ErrMissingHubToken)
}

func TestClientSendsTokenAuthScheme(t *testing.T) {
	var gotAuth, gotPath string

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		writeJSON(w, http.StatusOK, []map[string]any{})
	}))

	_, err := client.ListUsers(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "token test-token", gotAuth)
	assert.Equal(t, "/hub/api/users", gotPath)
}

func TestClientEscapesIdentifiers(t *testing.T) {
	var gotPath string

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		writeJSON(w, http.StatusOK, map[string]any{"name": "weird/user"})
	}))

	_, err := client.GetUser(context.Background(), "weird/user")
	require.NoError(t, err)

	assert.Equal(t, "/hub/api/users/weird%2Fuser", gotPath)
}

func TestCreateUserRoundTrip(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/hub/api/users", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice", body["name"])
		assert.Equal(t, true, body["admin"])

		writeJSON(w, http.StatusCreated, map[string]any{
			"name":  "alice",
			"admin": true,
		})
	}))

	record, err := client.CreateUser(context.Background(), "alice", true)
	require.NoError(t, err)

	assert.Equal(t, "alice", record["name"])
	assert.Equal(t, true, record["admin"])
}

func TestStartServerForwardsOptionsVerbatim(t *testing.T) {
	var gotBody map[string]any

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/hub/api/users/alice/servers/gpu", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		writeJSON(w, http.StatusAccepted, map[string]any{})
	}))

	options := models.ServerOptions{}.
		WithImage("jupyter/scipy-notebook").
		WithMemLimit("2G")
	options["gpu_count"] = 2 // not a recognized key, must still reach the hub

	_, err := client.StartServer(context.Background(), "alice", "gpu", options)
	require.NoError(t, err)

	assert.Equal(t, "jupyter/scipy-notebook", gotBody["image"])
	assert.Equal(t, "2G", gotBody["mem_limit"])
	assert.Equal(t, float64(2), gotBody["gpu_count"])
}

func TestStopServerAddressesDefaultServer(t *testing.T) {
	var gotPath, gotMethod string

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		w.WriteHeader(http.StatusNoContent)
	}))

	err := client.StopServer(context.Background(), "alice", "")
	require.NoError(t, err)

	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/hub/api/users/alice/servers/", gotPath)
}

func TestUpstreamErrorCarriesStatusAndDetail(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   any
		detail string
	}{
		{"bad request", http.StatusBadRequest, map[string]any{"message": "invalid request"}, "invalid request"},
		{"unauthorized", http.StatusUnauthorized, map[string]any{"message": "token rejected"}, "token rejected"},
		{"not found", http.StatusNotFound, map[string]any{"message": "user ghost not found"}, "user ghost not found"},
		{"forbidden", http.StatusForbidden, map[string]any{"message": "action requires admin"}, "action requires admin"},
		{"conflict", http.StatusConflict, map[string]any{"detail": "server already running"}, "server already running"},
		{"validation", http.StatusUnprocessableEntity, map[string]any{"message": "invalid name"}, "invalid name"},
		{"internal", http.StatusInternalServerError, "spawner exploded", "\"spawner exploded\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tt.status, tt.body)
			}))

			_, err := client.GetUser(context.Background(), "ghost")
			require.Error(t, err)

			upstream, ok := models.AsUpstreamError(err)
			require.True(t, ok, "expected an upstream error, got %T", err)
			assert.Equal(t, tt.status, upstream.StatusCode)
			assert.Equal(t, tt.detail, upstream.Detail)

			_, isTransport := models.AsTransportError(err)
			assert.False(t, isTransport)
		})
	}
}

func TestTransportErrorWhenHubUnreachable(t *testing.T) {
	cfg := config.DefaultConfig()
	// Reserved port with nothing listening
	cfg.Hub.URL = "http://127.0.0.1:1"
	cfg.Hub.Token = "test-token"
	cfg.Hub.Timeout = 2 * time.Second

	client, err := hub.NewClient(cfg)
	require.NoError(t, err)
	defer client.Close()

	_, err = client.ListUsers(context.Background())
	require.Error(t, err)

	transport, ok := models.AsTransportError(err)
	require.True(t, ok, "expected a transport error, got %T", err)
	assert.Contains(t, transport.Op, "/users")

	_, isUpstream := models.AsUpstreamError(err)
	assert.False(t, isUpstream)
}

func TestTimeoutIsEnforcedLocally(t *testing.T) {
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(upstream.Close)

	cfg := config.DefaultConfig()
	cfg.Hub.URL = upstream.URL
	cfg.Hub.Token = "test-token"
	cfg.Hub.Timeout = 200 * time.Millisecond

	client, err := hub.NewClient(cfg)
	require.NoError(t, err)
	defer client.Close()

	start := time.Now()
	_, err = client.ListUsers(context.Background())
	elapsed := time.Since(start)

	require.Error(t, err)
	_, ok := models.AsTransportError(err)
	assert.True(t, ok, "expected a transport error, got %T", err)
	assert.Less(t, elapsed, time.Second, "timeout must fire locally, not wait for the hub")
}

func TestCancellationAbandonsInFlightRequest(t *testing.T) {
	started := make(chan struct{})
	var calls atomic.Int32

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// First request hangs until the caller gives up; later ones answer
		if calls.Add(1) == 1 {
			close(started)
			<-r.Context().Done()
			return
		}
		writeJSON(w, http.StatusOK, []map[string]any{})
	}))

	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		<-started
		cancel()
	}()

	start := time.Now()
	_, err := client.ListUsers(ctx)
	elapsed := time.Since(start)

	require.Error(t, err)
	_, ok := models.AsTransportError(err)
	assert.True(t, ok, "expected a transport error, got %T", err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, elapsed, 2*time.Second, "cancellation must not wait for the hub")

	// The pool is still usable afterwards
	_, err = client.ListUsers(context.Background())
	require.NoError(t, err)
}

func TestClosedClientFailsDeterministically(t *testing.T) {
	var hits int

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		writeJSON(w, http.StatusOK, []map[string]any{})
	}))

	_, err := client.ListUsers(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, hits)

	client.Close()
	client.Close() // second close is a no-op

	_, err = client.ListUsers(context.Background())
	assert.ErrorIs(t, err, hub.ErrClientClosed)

	err = client.DeleteUser(context.Background(), "alice")
	assert.ErrorIs(t, err, hub.ErrClientClosed)

	assert.Equal(t, 1, hits, "no request may leave a closed client")
}

func TestEmptyIdentifierRejectedBeforeRequest(t *testing.T) {
	var hits int

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))

	ctx := context.Background()

	_, err := client.GetUser(ctx, "")
	assert.Error(t, err)

	_, err = client.GetUser(ctx, "   ")
	assert.Error(t, err)

	err = client.DeleteGroup(ctx, "")
	assert.Error(t, err)

	assert.Zero(t, hits)
}
