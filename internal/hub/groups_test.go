package hub_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateGroupPostsNameInBody(t *testing.T) {
	var gotPath string
	var gotBody map[string]any

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		writeJSON(w, http.StatusCreated, map[string]any{"name": "physics"})
	}))

	_, err := client.CreateGroup(context.Background(), "physics", []string{"alice", "bob"})
	require.NoError(t, err)

	assert.Equal(t, "/hub/api/groups", gotPath)
	assert.Equal(t, "physics", gotBody["name"])
	assert.Equal(t, []any{"alice", "bob"}, gotBody["users"])
}

func TestAddGroupMembersIsRepeatable(t *testing.T) {
	// The hub treats member addition as set union, so repeating the call
	// succeeds with the same outcome.
	members := map[string]bool{}

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Users []string `json:"users"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		for _, user := range body.Users {
			members[user] = true
		}

		names := make([]string, 0, len(members))
		for name := range members {
			names = append(names, name)
		}
		writeJSON(w, http.StatusOK, map[string]any{"name": "physics", "users": names})
	}))

	ctx := context.Background()

	first, err := client.AddGroupMembers(ctx, "physics", []string{"alice"})
	require.NoError(t, err)

	second, err := client.AddGroupMembers(ctx, "physics", []string{"alice"})
	require.NoError(t, err)

	assert.Equal(t, first["users"], second["users"])
	assert.Len(t, members, 1)
}

func TestAddGroupMembersRequiresUsers(t *testing.T) {
	var hits int

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))

	_, err := client.AddGroupMembers(context.Background(), "physics", nil)
	assert.Error(t, err)
	assert.Zero(t, hits)
}

func TestRemoveGroupMemberPath(t *testing.T) {
	var gotPath, gotMethod string

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		w.WriteHeader(http.StatusNoContent)
	}))

	err := client.RemoveGroupMember(context.Background(), "physics", "alice")
	require.NoError(t, err)

	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/hub/api/groups/physics/users/alice", gotPath)
}
