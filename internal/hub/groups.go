package hub

import (
	"context"
	"fmt"
	"net/http"
)

// ListGroups returns every group known to the hub.
func (c *Client) ListGroups(ctx context.Context) ([]map[string]any, error) {
	return c.requestList(ctx, http.MethodGet, "/groups")
}

// GetGroup returns one group's record.
func (c *Client) GetGroup(ctx context.Context, name string) (map[string]any, error) {
	if err := requireName("group", name); err != nil {
		return nil, err
	}
	return c.requestMap(ctx, http.MethodGet, "/groups/"+escape(name), nil)
}

// CreateGroup creates a group, optionally with initial members.
func (c *Client) CreateGroup(ctx context.Context, name string, users []string) (map[string]any, error) {
	if err := requireName("group", name); err != nil {
		return nil, err
	}

	payload := map[string]any{"name": name}
	if len(users) > 0 {
		payload["users"] = users
	}

	return c.requestMap(ctx, http.MethodPost, "/groups", payload)
}

// DeleteGroup deletes a group. Members are untouched.
func (c *Client) DeleteGroup(ctx context.Context, name string) error {
	if err := requireName("group", name); err != nil {
		return err
	}
	return c.requestNone(ctx, http.MethodDelete, "/groups/"+escape(name), nil)
}

// AddGroupMembers adds users to a group. The hub treats this as set union,
// so repeating the call with the same users is a no-op, not an error.
func (c *Client) AddGroupMembers(ctx context.Context, group string, users []string) (map[string]any, error) {
	if err := requireName("group", group); err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, fmt.Errorf("at least one user is required")
	}

	return c.requestMap(ctx, http.MethodPost, fmt.Sprintf("/groups/%s/users", escape(group)), map[string]any{
		"users": users,
	})
}

// RemoveGroupMember removes one user from a group.
func (c *Client) RemoveGroupMember(ctx context.Context, group, user string) error {
	if err := requireName("group", group); err != nil {
		return err
	}
	if err := requireName("user", user); err != nil {
		return err
	}

	return c.requestNone(ctx, http.MethodDelete,
		fmt.Sprintf("/groups/%s/users/%s", escape(group), escape(user)), nil)
}
