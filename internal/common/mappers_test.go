package common_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubman-io/hubman/internal/common"
	"github.com/hubman-io/hubman/internal/models"
)

func TestConvertMapToInterface(t *testing.T) {
	record := map[string]any{
		"name":        "alice",
		"admin":       true,
		"unknown_key": "dropped on the typed side",
	}

	var user models.User
	require.NoError(t, common.ConvertMapToInterface(record, &user))

	assert.Equal(t, "alice", user.Name)
	assert.True(t, user.Admin)

	// The source mapping is untouched
	assert.Contains(t, record, "unknown_key")
}

func TestConvertSliceToInterface(t *testing.T) {
	records := []map[string]any{
		{"name": "physics", "users": []string{"alice"}},
		{"name": "biology"},
	}

	var groups []models.Group
	require.NoError(t, common.ConvertSliceToInterface(records, &groups))

	require.Len(t, groups, 2)
	assert.Equal(t, "physics", groups[0].Name)
	assert.Equal(t, []string{"alice"}, groups[0].Users)
	assert.Empty(t, groups[1].Users)
}
