package hub

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hubman-io/hubman/internal/models"
)

// serverPath builds the per-server path. The empty server name addresses
// the user's default server.
func serverPath(user, server string) string {
	return fmt.Sprintf("/users/%s/servers/%s", escape(user), escape(server))
}

// ListServers returns the user's servers mapping (server name to server
// record). The hub exposes this inside the user record, so this is a user
// fetch that projects out one field.
func (c *Client) ListServers(ctx context.Context, user string) (map[string]any, error) {
	record, err := c.GetUser(ctx, user)
	if err != nil {
		return nil, err
	}

	servers, ok := record["servers"].(map[string]any)
	if !ok {
		return map[string]any{}, nil
	}
	return servers, nil
}

// GetServer returns one server's record.
func (c *Client) GetServer(ctx context.Context, user, server string) (map[string]any, error) {
	if err := requireName("user", user); err != nil {
		return nil, err
	}
	return c.requestMap(ctx, http.MethodGet, serverPath(user, server), nil)
}

// StartServer asks the hub to spawn a server. The options mapping is
// forwarded verbatim; recognized keys (image, cpu_limit, mem_limit, env)
// and unrecognized keys alike reach the spawner untouched. The hub answers
// 201 when the server is up or 202 when the spawn is still pending.
func (c *Client) StartServer(ctx context.Context, user, server string, options models.ServerOptions) (map[string]any, error) {
	if err := requireName("user", user); err != nil {
		return nil, err
	}

	payload := options
	if payload == nil {
		payload = models.ServerOptions{}
	}

	return c.requestMap(ctx, http.MethodPost, serverPath(user, server), payload)
}

// StopServer asks the hub to stop a server. Success (202/204) carries no
// body; the hub may still be tearing the server down when this returns.
func (c *Client) StopServer(ctx context.Context, user, server string) error {
	if err := requireName("user", user); err != nil {
		return err
	}
	return c.requestNone(ctx, http.MethodDelete, serverPath(user, server), nil)
}
