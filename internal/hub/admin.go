package hub

import (
	"context"
	"net/http"
	"sync"

	"github.com/hubman-io/hubman/internal/common"
	"github.com/hubman-io/hubman/internal/models"
)

// GetHealth probes the hub. Unlike every other operation it never returns
// an error: an unreachable or failing hub becomes a Health value with
// status "error" so dashboards render it instead of dying.
func (c *Client) GetHealth(ctx context.Context) models.Health {
	record, err := c.requestMap(ctx, http.MethodGet, "/health", nil)
	if err != nil {
		return models.Health{
			Status: models.HealthStatusError,
			Detail: err.Error(),
		}
	}

	health := models.Health{Status: models.HealthStatusOK}
	if err := common.ConvertMapToInterface(record, &health); err == nil && len(health.Status) == 0 {
		health.Status = models.HealthStatusOK
	}
	return health
}

// GetInfo returns hub version and spawner/authenticator details.
func (c *Client) GetInfo(ctx context.Context) (map[string]any, error) {
	return c.requestMap(ctx, http.MethodGet, "/info", nil)
}

// GetVersion returns the hub's version record.
func (c *Client) GetVersion(ctx context.Context) (map[string]any, error) {
	return c.requestMap(ctx, http.MethodGet, "/", nil)
}

// GetProxy returns the proxy's routing table.
func (c *Client) GetProxy(ctx context.Context) (map[string]any, error) {
	return c.requestMap(ctx, http.MethodGet, "/proxy", nil)
}

// ForceProxyCheck asks the hub to resynchronize the proxy routing table.
func (c *Client) ForceProxyCheck(ctx context.Context) error {
	return c.requestNone(ctx, http.MethodPost, "/proxy", nil)
}

// Shutdown asks the hub to shut itself down.
func (c *Client) Shutdown(ctx context.Context) (map[string]any, error) {
	return c.requestMap(ctx, http.MethodPost, "/shutdown", map[string]any{})
}

// CullServers triggers the hub's idle-server cull.
func (c *Client) CullServers(ctx context.Context) (map[string]any, error) {
	return c.requestMap(ctx, http.MethodPost, "/cull", map[string]any{})
}

// StartServers starts the default server for each named user, fanning out
// concurrently and collecting per-user failures. The batch never aborts on
// one user's failure; the caller gets the full split.
func (c *Client) StartServers(ctx context.Context, users []string, options models.ServerOptions) models.BulkServersResult {
	return c.bulkServers(ctx, users, func(ctx context.Context, user string) error {
		_, err := c.StartServer(ctx, user, "", options)
		return err
	})
}

// StopServers stops the default server for each named user, with the same
// collect-and-report contract as StartServers.
func (c *Client) StopServers(ctx context.Context, users []string) models.BulkServersResult {
	return c.bulkServers(ctx, users, func(ctx context.Context, user string) error {
		return c.StopServer(ctx, user, "")
	})
}

func (c *Client) bulkServers(ctx context.Context, users []string, op func(context.Context, string) error) models.BulkServersResult {
	var wg sync.WaitGroup
	var mu sync.Mutex

	result := models.BulkServersResult{
		Succeeded: []string{},
		Failed:    map[string]string{},
	}

	for _, user := range users {
		wg.Go(func() {
			err := op(ctx, user)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				result.Failed[user] = err.Error()
			} else {
				result.Succeeded = append(result.Succeeded, user)
			}
		})
	}

	wg.Wait()

	if len(result.Failed) == 0 {
		result.Failed = nil
	}

	return result
}
