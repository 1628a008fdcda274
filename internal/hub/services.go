package hub

import (
	"context"
	"net/http"
)

// ListServices returns every service registered with the hub.
func (c *Client) ListServices(ctx context.Context) ([]map[string]any, error) {
	return c.requestList(ctx, http.MethodGet, "/services")
}

// GetService returns one service's record.
func (c *Client) GetService(ctx context.Context, name string) (map[string]any, error) {
	if err := requireName("service", name); err != nil {
		return nil, err
	}
	return c.requestMap(ctx, http.MethodGet, "/services/"+escape(name), nil)
}
