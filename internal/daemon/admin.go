package daemon

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hubman-io/hubman/internal/models"
)

// shutdownHub asks the hub to shut itself down.
//
//	@Summary	Shutdown hub
//	@Tags		admin
//	@Produce	json
//	@Success	200	{object}	map[string]any
//	@Failure	502	{object}	models.ErrorResponse
//	@Router		/admin/shutdown [post]
func (s *Server) shutdownHub(c *gin.Context) {
	result, err := s.Hub.Shutdown(c.Request.Context())
	if err != nil {
		s.hubError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// getProxy returns the proxy routing table.
//
//	@Summary	Proxy routing table
//	@Tags		admin
//	@Produce	json
//	@Success	200	{object}	map[string]any
//	@Failure	502	{object}	models.ErrorResponse
//	@Router		/admin/proxy [get]
func (s *Server) getProxy(c *gin.Context) {
	routes, err := s.Hub.GetProxy(c.Request.Context())
	if err != nil {
		s.hubError(c, err)
		return
	}
	c.JSON(http.StatusOK, routes)
}

// forceProxyCheck asks the hub to resynchronize proxy routes.
//
//	@Summary	Force proxy check
//	@Tags		admin
//	@Success	202
//	@Failure	502	{object}	models.ErrorResponse
//	@Router		/admin/proxy/check [post]
func (s *Server) forceProxyCheck(c *gin.Context) {
	if err := s.Hub.ForceProxyCheck(c.Request.Context()); err != nil {
		s.hubError(c, err)
		return
	}
	c.Status(http.StatusAccepted)
}

// cullServers triggers the hub's idle-server cull.
//
//	@Summary	Cull idle servers
//	@Tags		admin
//	@Produce	json
//	@Success	200	{object}	map[string]any
//	@Failure	502	{object}	models.ErrorResponse
//	@Router		/admin/cull [post]
func (s *Server) cullServers(c *gin.Context) {
	result, err := s.Hub.CullServers(c.Request.Context())
	if err != nil {
		s.hubError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// startAllServers bulk-starts default servers. Partial failures are
// collected per user; the batch never aborts.
//
//	@Summary	Start servers for many users
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Param		request	body		models.BulkServersRequest	true	"Target users and options"
//	@Success	200		{object}	models.BulkServersResult
//	@Failure	400		{object}	models.ErrorResponse
//	@Router		/admin/servers/start-all [post]
func (s *Server) startAllServers(c *gin.Context) {
	var req models.BulkServersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)
		return
	}

	users, err := s.resolveBulkUsers(c, req.Users)
	if err != nil {
		s.hubError(c, err)
		return
	}

	c.JSON(http.StatusOK, s.Hub.StartServers(c.Request.Context(), users, req.Options))
}

// stopAllServers bulk-stops default servers with the same contract.
//
//	@Summary	Stop servers for many users
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Param		request	body		models.BulkServersRequest	true	"Target users"
//	@Success	200		{object}	models.BulkServersResult
//	@Failure	400		{object}	models.ErrorResponse
//	@Router		/admin/servers/stop-all [post]
func (s *Server) stopAllServers(c *gin.Context) {
	var req models.BulkServersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)
		return
	}

	users, err := s.resolveBulkUsers(c, req.Users)
	if err != nil {
		s.hubError(c, err)
		return
	}

	c.JSON(http.StatusOK, s.Hub.StopServers(c.Request.Context(), users))
}

// resolveBulkUsers expands an empty user list to every user the hub knows.
func (s *Server) resolveBulkUsers(c *gin.Context, users []string) ([]string, error) {
	if len(users) > 0 {
		return users, nil
	}

	records, err := s.Hub.ListUsers(c.Request.Context())
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(records))
	for _, record := range records {
		name, ok := record["name"].(string)
		if !ok {
			return nil, fmt.Errorf("hub returned a user without a name")
		}
		names = append(names, name)
	}

	return names, nil
}
