package daemon

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getHealth reports the hub's health.
//
//	@Summary		Health check
//	@Description	Get the health status of the managed hub
//	@Tags			system
//	@Produce		json
//	@Success		200	{object}	models.Health
//	@Router			/health [get]
func (s *Server) getHealth(c *gin.Context) {
	// GetHealth never errors; an unreachable hub reports status "error".
	c.JSON(http.StatusOK, s.Hub.GetHealth(c.Request.Context()))
}

// getInfo returns hub version and component details.
//
//	@Summary	Hub information
//	@Tags		system
//	@Produce	json
//	@Success	200	{object}	map[string]any
//	@Failure	502	{object}	models.ErrorResponse
//	@Router		/info [get]
func (s *Server) getInfo(c *gin.Context) {
	info, err := s.Hub.GetInfo(c.Request.Context())
	if err != nil {
		s.hubError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}
