package daemon

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hubman-io/hubman/internal/models"
)

// listServers returns a user's servers mapping.
//
//	@Summary	List user servers
//	@Tags		servers
//	@Produce	json
//	@Param		username	path		string	true	"Username"
//	@Success	200			{object}	map[string]any
//	@Failure	404			{object}	models.ErrorResponse
//	@Router		/users/{username}/servers [get]
func (s *Server) listServers(c *gin.Context) {
	servers, err := s.Hub.ListServers(c.Request.Context(), c.Param("username"))
	if err != nil {
		s.hubError(c, err)
		return
	}
	c.JSON(http.StatusOK, servers)
}

// getServer returns one server record.
//
//	@Summary	Get server
//	@Tags		servers
//	@Produce	json
//	@Param		username	path		string	true	"Username"
//	@Param		server		path		string	true	"Server name (empty for default)"
//	@Success	200			{object}	map[string]any
//	@Failure	404			{object}	models.ErrorResponse
//	@Router		/users/{username}/servers/{server} [get]
func (s *Server) getServer(c *gin.Context) {
	server, err := s.Hub.GetServer(c.Request.Context(), c.Param("username"), c.Param("server"))
	if err != nil {
		s.hubError(c, err)
		return
	}
	c.JSON(http.StatusOK, server)
}

// startServer spawns a server. The options body is forwarded to the hub
// verbatim, unrecognized keys included; a 400 from the hub means the spawn
// was rejected.
//
//	@Summary	Start server
//	@Tags		servers
//	@Accept		json
//	@Produce	json
//	@Param		username	path		string					true	"Username"
//	@Param		server		path		string					false	"Server name (empty for default)"
//	@Param		options		body		models.ServerOptions	false	"Spawn options"
//	@Success	201			{object}	map[string]any
//	@Failure	400			{object}	models.ErrorResponse
//	@Router		/users/{username}/servers/{server} [post]
func (s *Server) startServer(c *gin.Context) {
	options := models.ServerOptions{}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&options); err != nil {
			s.badRequest(c, err)
			return
		}
	}

	result, err := s.Hub.StartServer(c.Request.Context(), c.Param("username"), c.Param("server"), options)
	if err != nil {
		s.hubError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// stopServer stops a server. 202 because the hub may still be tearing the
// server down when this returns.
//
//	@Summary	Stop server
//	@Tags		servers
//	@Param		username	path	string	true	"Username"
//	@Param		server		path	string	false	"Server name (empty for default)"
//	@Success	202
//	@Failure	404	{object}	models.ErrorResponse
//	@Router		/users/{username}/servers/{server} [delete]
func (s *Server) stopServer(c *gin.Context) {
	if err := s.Hub.StopServer(c.Request.Context(), c.Param("username"), c.Param("server")); err != nil {
		s.hubError(c, err)
		return
	}
	c.Status(http.StatusAccepted)
}
