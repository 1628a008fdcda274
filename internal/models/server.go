package models

import "time"

// Server is a single-user notebook server. The empty name is the user's
// default server.
type Server struct {
	Name         string         `json:"name"`
	Ready        bool           `json:"ready"`
	Pending      string         `json:"pending,omitempty"`
	URL          string         `json:"url,omitempty"`
	ProgressURL  string         `json:"progress_url,omitempty"`
	Started      *time.Time     `json:"started,omitempty"`
	LastActivity *time.Time     `json:"last_activity,omitempty"`
	State        map[string]any `json:"state,omitempty"`
	UserOptions  map[string]any `json:"user_options,omitempty"`
}

// ServerOptions is the spawn options payload. It is an open mapping that is
// forwarded to the hub verbatim; recognized keys get typed setters but
// unrecognized keys pass through untouched.
type ServerOptions map[string]any

func (o ServerOptions) WithImage(image string) ServerOptions {
	o["image"] = image
	return o
}

func (o ServerOptions) WithCPULimit(limit float64) ServerOptions {
	o["cpu_limit"] = limit
	return o
}

func (o ServerOptions) WithMemLimit(limit string) ServerOptions {
	o["mem_limit"] = limit
	return o
}

func (o ServerOptions) WithEnv(env map[string]string) ServerOptions {
	o["env"] = env
	return o
}
