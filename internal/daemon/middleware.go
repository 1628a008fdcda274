package daemon

import (
	"errors"
	"net/http"
	"sync/atomic"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/hubman-io/hubman/internal/hub"
	"github.com/hubman-io/hubman/internal/models"
)

const RequestIDHeader = "X-Request-ID"

// requestCounterMiddleware increments the request counter
func (s *Server) requestCounterMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		atomic.AddInt64(&s.TotalRequests, 1)
		c.Next()
	}
}

// correlationMiddleware attaches a request id to every request, honoring
// one supplied by the caller.
func (s *Server) correlationMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if len(requestID) == 0 {
			requestID = uuid.New().String()
		}

		c.Set("request_id", requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// hubError translates a hub client error into the local response: an
// UpstreamError keeps its status code and detail verbatim, a
// TransportError becomes a 502 with a generic detail, anything else is a
// local 500. Nothing is retried and nothing is swallowed.
func (s *Server) hubError(c *gin.Context, err error) {
	fields := logrus.Fields{
		"request_id": c.GetString("request_id"),
		"path":       c.FullPath(),
	}

	if upstream, ok := models.AsUpstreamError(err); ok {
		logrus.WithFields(fields).WithError(err).Debugln("Forwarding upstream error")
		c.JSON(upstream.StatusCode, models.ErrorResponse{Detail: upstream.Detail})
		return
	}

	if _, ok := models.AsTransportError(err); ok {
		logrus.WithFields(fields).WithError(err).Errorln("Hub unreachable")
		c.JSON(http.StatusBadGateway, models.ErrorResponse{Detail: "upstream hub unreachable"})
		return
	}

	if errors.Is(err, hub.ErrClientClosed) {
		logrus.WithFields(fields).WithError(err).Errorln("Hub client already closed")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Detail: "service is shutting down"})
		return
	}

	logrus.WithFields(fields).WithError(err).Errorln("Request failed")
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{Detail: err.Error()})
}

// badRequest rejects malformed inbound payloads before anything reaches
// the hub.
func (s *Server) badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{Detail: err.Error()})
}
