package daemon

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hubman-io/hubman/internal/models"
)

// listTokens returns all API tokens visible to the configured admin token.
//
//	@Summary	List tokens
//	@Tags		tokens
//	@Produce	json
//	@Success	200	{array}		map[string]any
//	@Failure	502	{object}	models.ErrorResponse
//	@Router		/tokens [get]
func (s *Server) listTokens(c *gin.Context) {
	tokens, err := s.Hub.ListTokens(c.Request.Context())
	if err != nil {
		s.hubError(c, err)
		return
	}
	c.JSON(http.StatusOK, tokens)
}

// getToken returns one token record by id.
//
//	@Summary	Get token
//	@Tags		tokens
//	@Produce	json
//	@Param		id	path		string	true	"Token id"
//	@Success	200	{object}	map[string]any
//	@Failure	404	{object}	models.ErrorResponse
//	@Router		/tokens/{id} [get]
func (s *Server) getToken(c *gin.Context) {
	token, err := s.Hub.GetToken(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.hubError(c, err)
		return
	}
	c.JSON(http.StatusOK, token)
}

// createToken mints an API token for a user. The token value only appears
// in this response.
//
//	@Summary	Create token
//	@Tags		tokens
//	@Accept		json
//	@Produce	json
//	@Param		username	path		string						true	"Username"
//	@Param		token		body		models.CreateTokenRequest	true	"Token request"
//	@Success	201			{object}	map[string]any
//	@Failure	400			{object}	models.ErrorResponse
//	@Router		/users/{username}/tokens [post]
func (s *Server) createToken(c *gin.Context) {
	var req models.CreateTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)
		return
	}

	token, err := s.Hub.CreateToken(c.Request.Context(), c.Param("username"), req)
	if err != nil {
		s.hubError(c, err)
		return
	}
	c.JSON(http.StatusCreated, token)
}

// deleteToken revokes a user's token.
//
//	@Summary	Delete token
//	@Tags		tokens
//	@Param		username	path	string	true	"Username"
//	@Param		id			path	string	true	"Token id"
//	@Success	204
//	@Failure	404	{object}	models.ErrorResponse
//	@Router		/users/{username}/tokens/{id} [delete]
func (s *Server) deleteToken(c *gin.Context) {
	if err := s.Hub.DeleteToken(c.Request.Context(), c.Param("username"), c.Param("id")); err != nil {
		s.hubError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
