package models

// Service is a hub-managed or externally-managed service registered with
// the hub. Read-mostly; this system never mutates services.
type Service struct {
	Name    string         `json:"name"`
	Admin   bool           `json:"admin"`
	URL     string         `json:"url,omitempty"`
	Prefix  string         `json:"prefix,omitempty"`
	PID     int            `json:"pid,omitempty"`
	Command []string       `json:"command,omitempty"`
	Info    map[string]any `json:"info,omitempty"`
}
