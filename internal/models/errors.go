package models

import (
	"errors"
	"fmt"
)

// UpstreamError is a non-2xx answer from the hub. The status code and
// detail are carried verbatim; nothing interprets or retries them.
type UpstreamError struct {
	StatusCode int
	Detail     string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("hub returned status %d: %s", e.StatusCode, e.Detail)
}

// TransportError is a request that never produced a hub response: connect
// refusals, TLS failures, timeouts, cancellations.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("hub request %s failed: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// AsUpstreamError unwraps err as an UpstreamError if it is one.
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var upstream *UpstreamError
	if errors.As(err, &upstream) {
		return upstream, true
	}
	return nil, false
}

// AsTransportError unwraps err as a TransportError if it is one.
func AsTransportError(err error) (*TransportError, bool) {
	var transport *TransportError
	if errors.As(err, &transport) {
		return transport, true
	}
	return nil, false
}

// ErrorResponse is the error body the passthrough service emits, matching
// the hub's own detail shape.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
