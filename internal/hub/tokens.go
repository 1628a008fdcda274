package hub

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hubman-io/hubman/internal/models"
)

// ListTokens returns every API token the hub will show this caller
// (admin scope required upstream).
func (c *Client) ListTokens(ctx context.Context) ([]map[string]any, error) {
	return c.requestList(ctx, http.MethodGet, "/tokens")
}

// GetToken returns one token's record by id.
func (c *Client) GetToken(ctx context.Context, tokenID string) (map[string]any, error) {
	if err := requireName("token", tokenID); err != nil {
		return nil, err
	}
	return c.requestMap(ctx, http.MethodGet, "/tokens/"+escape(tokenID), nil)
}

// CreateToken mints an API token for a user. The note is a human-readable
// label; expires_in is in seconds, zero means no expiry; roles and scopes
// narrow the token's permissions. Every field the caller sets is forwarded.
// The token value is only present in this response.
func (c *Client) CreateToken(ctx context.Context, user string, req models.CreateTokenRequest) (map[string]any, error) {
	if err := requireName("user", user); err != nil {
		return nil, err
	}

	payload := map[string]any{}
	if len(req.Note) > 0 {
		payload["note"] = req.Note
	}
	if req.ExpiresIn > 0 {
		payload["expires_in"] = req.ExpiresIn
	}
	if len(req.Roles) > 0 {
		payload["roles"] = req.Roles
	}
	if len(req.Scopes) > 0 {
		payload["scopes"] = req.Scopes
	}

	return c.requestMap(ctx, http.MethodPost, fmt.Sprintf("/users/%s/tokens", escape(user)), payload)
}

// DeleteToken revokes a user's token.
func (c *Client) DeleteToken(ctx context.Context, user, tokenID string) error {
	if err := requireName("user", user); err != nil {
		return err
	}
	if err := requireName("token", tokenID); err != nil {
		return err
	}

	return c.requestNone(ctx, http.MethodDelete,
		fmt.Sprintf("/users/%s/tokens/%s", escape(user), escape(tokenID)), nil)
}
