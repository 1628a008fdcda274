package hub

import (
	"context"
	"fmt"
	"net/http"
)

// ListUsers returns every user known to the hub.
func (c *Client) ListUsers(ctx context.Context) ([]map[string]any, error) {
	return c.requestList(ctx, http.MethodGet, "/users")
}

// GetUser returns one user's record, servers included.
func (c *Client) GetUser(ctx context.Context, name string) (map[string]any, error) {
	if err := requireName("user", name); err != nil {
		return nil, err
	}
	return c.requestMap(ctx, http.MethodGet, "/users/"+escape(name), nil)
}

// CreateUser creates a user. The hub answers 201 with the new record.
func (c *Client) CreateUser(ctx context.Context, name string, admin bool) (map[string]any, error) {
	if err := requireName("user", name); err != nil {
		return nil, err
	}
	return c.requestMap(ctx, http.MethodPost, "/users", map[string]any{
		"name":  name,
		"admin": admin,
	})
}

// DeleteUser deletes a user and all of their servers.
func (c *Client) DeleteUser(ctx context.Context, name string) error {
	if err := requireName("user", name); err != nil {
		return err
	}
	return c.requestNone(ctx, http.MethodDelete, "/users/"+escape(name), nil)
}

// ModifyUser patches user properties. Nil fields are left untouched.
func (c *Client) ModifyUser(ctx context.Context, name string, admin *bool) (map[string]any, error) {
	if err := requireName("user", name); err != nil {
		return nil, err
	}

	payload := map[string]any{}
	if admin != nil {
		payload["admin"] = *admin
	}

	return c.requestMap(ctx, http.MethodPatch, "/users/"+escape(name), payload)
}

// PostActivity reports user activity timestamps back to the hub, which
// feeds its idle-culling decisions.
func (c *Client) PostActivity(ctx context.Context, name string, servers map[string]any) (map[string]any, error) {
	if err := requireName("user", name); err != nil {
		return nil, err
	}

	payload := map[string]any{}
	if len(servers) > 0 {
		payload["servers"] = servers
	}

	return c.requestMap(ctx, http.MethodPost, fmt.Sprintf("/users/%s/activity", escape(name)), payload)
}
