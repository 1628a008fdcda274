package hub_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubman-io/hubman/internal/models"
)

func TestCreateTokenForwardsEveryField(t *testing.T) {
	var gotPath string
	var gotBody map[string]any

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		writeJSON(w, http.StatusCreated, map[string]any{"token": "abc123", "id": "t1"})
	}))

	record, err := client.CreateToken(context.Background(), "alice", models.CreateTokenRequest{
		Note:      "ci token",
		ExpiresIn: 3600,
		Roles:     []string{"server"},
		Scopes:    []string{"read:users", "servers"},
	})
	require.NoError(t, err)

	assert.Equal(t, "/hub/api/users/alice/tokens", gotPath)
	assert.Equal(t, "ci token", gotBody["note"])
	assert.Equal(t, float64(3600), gotBody["expires_in"])
	assert.Equal(t, []any{"server"}, gotBody["roles"])
	assert.Equal(t, []any{"read:users", "servers"}, gotBody["scopes"])
	assert.Equal(t, "abc123", record["token"])
}

func TestCreateTokenOmitsUnsetFields(t *testing.T) {
	var gotBody map[string]any

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		writeJSON(w, http.StatusCreated, map[string]any{"token": "abc123"})
	}))

	_, err := client.CreateToken(context.Background(), "alice", models.CreateTokenRequest{})
	require.NoError(t, err)

	assert.Empty(t, gotBody, "unset fields must not appear in the payload")
}

func TestDeleteTokenPath(t *testing.T) {
	var gotPath, gotMethod string

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		w.WriteHeader(http.StatusNoContent)
	}))

	err := client.DeleteToken(context.Background(), "alice", "t1")
	require.NoError(t, err)

	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/hub/api/users/alice/tokens/t1", gotPath)
}
