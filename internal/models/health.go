package models

// Health is the hub health probe result. When the hub is unreachable the
// client still returns a Health value with status "error" so dashboards can
// render it instead of crashing.
type Health struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

const (
	HealthStatusOK    = "ok"
	HealthStatusError = "error"
)
