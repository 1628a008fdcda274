package models_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubman-io/hubman/internal/models"
)

func TestUpstreamErrorUnwrapping(t *testing.T) {
	var err error = &models.UpstreamError{StatusCode: 404, Detail: "user not found"}

	upstream, ok := models.AsUpstreamError(err)
	require.True(t, ok)
	assert.Equal(t, 404, upstream.StatusCode)
	assert.Equal(t, "user not found", upstream.Detail)

	_, ok = models.AsTransportError(err)
	assert.False(t, ok, "an upstream error is never a transport error")

	// Survives wrapping
	wrapped := fmt.Errorf("handler: %w", err)
	upstream, ok = models.AsUpstreamError(wrapped)
	require.True(t, ok)
	assert.Equal(t, 404, upstream.StatusCode)
}

func TestTransportErrorUnwrapping(t *testing.T) {
	cause := errors.New("connection refused")
	var err error = &models.TransportError{Op: "GET /users", Err: cause}

	transport, ok := models.AsTransportError(err)
	require.True(t, ok)
	assert.Equal(t, "GET /users", transport.Op)
	assert.ErrorIs(t, err, cause)

	_, ok = models.AsUpstreamError(err)
	assert.False(t, ok, "a transport error is never an upstream error")
}
