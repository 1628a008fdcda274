package daemon

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hubman-io/hubman/internal/models"
)

// listUsers returns all hub users.
//
//	@Summary	List users
//	@Tags		users
//	@Produce	json
//	@Success	200	{array}		map[string]any
//	@Failure	502	{object}	models.ErrorResponse
//	@Router		/users [get]
func (s *Server) listUsers(c *gin.Context) {
	users, err := s.Hub.ListUsers(c.Request.Context())
	if err != nil {
		s.hubError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// getUser returns one user.
//
//	@Summary	Get user
//	@Tags		users
//	@Produce	json
//	@Param		username	path		string	true	"Username"
//	@Success	200			{object}	map[string]any
//	@Failure	404			{object}	models.ErrorResponse
//	@Router		/users/{username} [get]
func (s *Server) getUser(c *gin.Context) {
	user, err := s.Hub.GetUser(c.Request.Context(), c.Param("username"))
	if err != nil {
		s.hubError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// createUser creates a new user.
//
//	@Summary	Create user
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Param		user	body		models.CreateUserRequest	true	"User to create"
//	@Success	201		{object}	map[string]any
//	@Failure	400		{object}	models.ErrorResponse
//	@Router		/users [post]
func (s *Server) createUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)
		return
	}

	user, err := s.Hub.CreateUser(c.Request.Context(), req.Name, req.Admin)
	if err != nil {
		s.hubError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// modifyUser patches user properties.
//
//	@Summary	Modify user
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Param		username	path		string						true	"Username"
//	@Param		user		body		models.ModifyUserRequest	true	"Fields to change"
//	@Success	200			{object}	map[string]any
//	@Failure	404			{object}	models.ErrorResponse
//	@Router		/users/{username} [patch]
func (s *Server) modifyUser(c *gin.Context) {
	var req models.ModifyUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)
		return
	}

	user, err := s.Hub.ModifyUser(c.Request.Context(), c.Param("username"), req.Admin)
	if err != nil {
		s.hubError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// deleteUser deletes a user.
//
//	@Summary	Delete user
//	@Tags		users
//	@Param		username	path	string	true	"Username"
//	@Success	204
//	@Failure	404	{object}	models.ErrorResponse
//	@Router		/users/{username} [delete]
func (s *Server) deleteUser(c *gin.Context) {
	if err := s.Hub.DeleteUser(c.Request.Context(), c.Param("username")); err != nil {
		s.hubError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// postActivity forwards user activity timestamps to the hub.
//
//	@Summary	Report user activity
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Param		username	path		string					true	"Username"
//	@Param		activity	body		models.ActivityRequest	true	"Activity payload"
//	@Success	200			{object}	map[string]any
//	@Failure	404			{object}	models.ErrorResponse
//	@Router		/users/{username}/activity [post]
func (s *Server) postActivity(c *gin.Context) {
	var req models.ActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)
		return
	}

	result, err := s.Hub.PostActivity(c.Request.Context(), c.Param("username"), req.Servers)
	if err != nil {
		s.hubError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
