package models

// Request bodies accepted by the passthrough service. Shapes mirror what
// the hub itself accepts so handlers can forward them without rewriting.

type CreateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Admin bool   `json:"admin"`
}

type ModifyUserRequest struct {
	Name  *string `json:"name,omitempty"`
	Admin *bool   `json:"admin,omitempty"`
}

type CreateGroupRequest struct {
	Name  string   `json:"name" binding:"required"`
	Users []string `json:"users,omitempty"`
}

type GroupUsersRequest struct {
	Users []string `json:"users" binding:"required"`
}

type CreateTokenRequest struct {
	Note      string   `json:"note,omitempty"`
	ExpiresIn int      `json:"expires_in,omitempty"`
	Roles     []string `json:"roles,omitempty"`
	Scopes    []string `json:"scopes,omitempty"`
}

type ActivityRequest struct {
	Servers map[string]any `json:"servers,omitempty"`
}

// BulkServersRequest names the users a bulk server operation applies to.
// An empty list means every user known to the hub.
type BulkServersRequest struct {
	Users   []string      `json:"users,omitempty"`
	Options ServerOptions `json:"options,omitempty"`
}

// BulkServersResult reports a collect-and-report bulk outcome: the batch
// never aborts on a single user's failure.
type BulkServersResult struct {
	Succeeded []string          `json:"succeeded"`
	Failed    map[string]string `json:"failed,omitempty"`
}
