package models

import "time"

// User is a JupyterHub user as returned by the hub. Every read is a live
// round-trip; nothing here is cached or invented locally.
type User struct {
	Name         string            `json:"name"`
	Admin        bool              `json:"admin"`
	Roles        []string          `json:"roles,omitempty"`
	Groups       []string          `json:"groups,omitempty"`
	Server       string            `json:"server,omitempty"`
	Pending      string            `json:"pending,omitempty"`
	Created      *time.Time        `json:"created,omitempty"`
	LastActivity *time.Time        `json:"last_activity,omitempty"`
	Servers      map[string]Server `json:"servers,omitempty"`
}

// HasActiveServer reports whether any of the user's servers is ready.
func (u *User) HasActiveServer() bool {
	for _, srv := range u.Servers {
		if srv.Ready {
			return true
		}
	}
	return false
}
