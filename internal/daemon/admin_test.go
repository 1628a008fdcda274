package daemon

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeHubMux routes the handful of hub endpoints the bulk operations touch.
func fakeHubMux(failFor string) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/hub/api/users", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]map[string]any{
			{"name": "alice"},
			{"name": "bob"},
		})
	})

	mux.HandleFunc("/hub/api/users/", func(w http.ResponseWriter, r *http.Request) {
		if len(failFor) > 0 && strings.Contains(r.URL.Path, "/users/"+failFor+"/") {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"message": "spawn failed"}`))
			return
		}

		switch r.Method {
		case http.MethodPost:
			w.WriteHeader(http.StatusAccepted)
			w.Write([]byte(`{}`))
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	return mux
}

func TestStartAllCollectsFailures(t *testing.T) {
	_, router := newTestDaemon(t, fakeHubMux("bob"))

	recorder := doRequest(router, http.MethodPost, "/admin/servers/start-all", map[string]any{
		"users": []string{"alice", "bob", "carol"},
	})

	require.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)

	succeeded, ok := body["succeeded"].([]any)
	require.True(t, ok)
	assert.ElementsMatch(t, []any{"alice", "carol"}, succeeded)

	failed, ok := body["failed"].(map[string]any)
	require.True(t, ok)
	require.Len(t, failed, 1)
	assert.Contains(t, failed["bob"], "spawn failed")
}

func TestStopAllExpandsEmptyUserList(t *testing.T) {
	_, router := newTestDaemon(t, fakeHubMux(""))

	recorder := doRequest(router, http.MethodPost, "/admin/servers/stop-all", map[string]any{})

	require.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)

	succeeded, ok := body["succeeded"].([]any)
	require.True(t, ok)
	assert.ElementsMatch(t, []any{"alice", "bob"}, succeeded)
	assert.Nil(t, body["failed"])
}

func TestStartAllForwardsSpawnOptions(t *testing.T) {
	var gotBodies []map[string]any

	mux := http.NewServeMux()
	mux.HandleFunc("/hub/api/users/", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		gotBodies = append(gotBodies, body)
		w.WriteHeader(http.StatusAccepted)
		w.Write([]byte(`{}`))
	})

	_, router := newTestDaemon(t, mux)

	recorder := doRequest(router, http.MethodPost, "/admin/servers/start-all", map[string]any{
		"users":   []string{"alice"},
		"options": map[string]any{"image": "jupyter/base-notebook", "extra": true},
	})

	require.Equal(t, http.StatusOK, recorder.Code)
	require.Len(t, gotBodies, 1)
	assert.Equal(t, "jupyter/base-notebook", gotBodies[0]["image"])
	assert.Equal(t, true, gotBodies[0]["extra"])
}
