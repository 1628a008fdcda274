package models

import "time"

// Token is a hub API token. The token value itself is only present in the
// creation response and never retrievable afterwards.
type Token struct {
	Token        string     `json:"token,omitempty"`
	ID           string     `json:"id,omitempty"`
	User         string     `json:"user,omitempty"`
	Service      string     `json:"service,omitempty"`
	Roles        []string   `json:"roles,omitempty"`
	Scopes       []string   `json:"scopes,omitempty"`
	Note         string     `json:"note,omitempty"`
	Created      *time.Time `json:"created,omitempty"`
	LastActivity *time.Time `json:"last_activity,omitempty"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
}

// IsExpired reports whether the token has an expiry in the past.
func (t *Token) IsExpired() bool {
	return t.ExpiresAt != nil && t.ExpiresAt.Before(time.Now())
}
