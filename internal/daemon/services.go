package daemon

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// listServices returns all hub services.
//
//	@Summary	List services
//	@Tags		services
//	@Produce	json
//	@Success	200	{array}		map[string]any
//	@Failure	502	{object}	models.ErrorResponse
//	@Router		/services [get]
func (s *Server) listServices(c *gin.Context) {
	services, err := s.Hub.ListServices(c.Request.Context())
	if err != nil {
		s.hubError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

// getService returns one service.
//
//	@Summary	Get service
//	@Tags		services
//	@Produce	json
//	@Param		service	path		string	true	"Service name"
//	@Success	200		{object}	map[string]any
//	@Failure	404		{object}	models.ErrorResponse
//	@Router		/services/{service} [get]
func (s *Server) getService(c *gin.Context) {
	service, err := s.Hub.GetService(c.Request.Context(), c.Param("service"))
	if err != nil {
		s.hubError(c, err)
		return
	}
	c.JSON(http.StatusOK, service)
}
