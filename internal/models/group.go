package models

// Group is a named set of hub users. Membership edits are idempotent
// set-add and set-remove operations on the hub side.
type Group struct {
	Name       string         `json:"name"`
	Users      []string       `json:"users,omitempty"`
	Roles      []string       `json:"roles,omitempty"`
	Properties map[string]any `json:"properties,omitempty"`
}

func (g *Group) GetName() string {
	return g.Name
}

func (g *Group) HasUser(username string) bool {
	for _, u := range g.Users {
		if u == username {
			return true
		}
	}
	return false
}
