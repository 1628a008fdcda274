package daemon

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hubman-io/hubman/internal/models"
)

// listGroups returns all hub groups.
//
//	@Summary	List groups
//	@Tags		groups
//	@Produce	json
//	@Success	200	{array}		map[string]any
//	@Failure	502	{object}	models.ErrorResponse
//	@Router		/groups [get]
func (s *Server) listGroups(c *gin.Context) {
	groups, err := s.Hub.ListGroups(c.Request.Context())
	if err != nil {
		s.hubError(c, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}

// getGroup returns one group.
//
//	@Summary	Get group
//	@Tags		groups
//	@Produce	json
//	@Param		group	path		string	true	"Group name"
//	@Success	200		{object}	map[string]any
//	@Failure	404		{object}	models.ErrorResponse
//	@Router		/groups/{group} [get]
func (s *Server) getGroup(c *gin.Context) {
	group, err := s.Hub.GetGroup(c.Request.Context(), c.Param("group"))
	if err != nil {
		s.hubError(c, err)
		return
	}
	c.JSON(http.StatusOK, group)
}

// createGroup creates a group, optionally with initial members.
//
//	@Summary	Create group
//	@Tags		groups
//	@Accept		json
//	@Produce	json
//	@Param		group	body		models.CreateGroupRequest	true	"Group to create"
//	@Success	201		{object}	map[string]any
//	@Failure	400		{object}	models.ErrorResponse
//	@Router		/groups [post]
func (s *Server) createGroup(c *gin.Context) {
	var req models.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)
		return
	}

	group, err := s.Hub.CreateGroup(c.Request.Context(), req.Name, req.Users)
	if err != nil {
		s.hubError(c, err)
		return
	}
	c.JSON(http.StatusCreated, group)
}

// deleteGroup deletes a group.
//
//	@Summary	Delete group
//	@Tags		groups
//	@Param		group	path	string	true	"Group name"
//	@Success	204
//	@Failure	404	{object}	models.ErrorResponse
//	@Router		/groups/{group} [delete]
func (s *Server) deleteGroup(c *gin.Context) {
	if err := s.Hub.DeleteGroup(c.Request.Context(), c.Param("group")); err != nil {
		s.hubError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// addGroupMembers adds users to a group. Idempotent on the hub side:
// re-adding an existing member is a no-op, not an error.
//
//	@Summary	Add group members
//	@Tags		groups
//	@Accept		json
//	@Produce	json
//	@Param		group	path		string						true	"Group name"
//	@Param		users	body		models.GroupUsersRequest	true	"Users to add"
//	@Success	200		{object}	map[string]any
//	@Failure	400		{object}	models.ErrorResponse
//	@Router		/groups/{group}/users [post]
func (s *Server) addGroupMembers(c *gin.Context) {
	var req models.GroupUsersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)
		return
	}

	group, err := s.Hub.AddGroupMembers(c.Request.Context(), c.Param("group"), req.Users)
	if err != nil {
		s.hubError(c, err)
		return
	}
	c.JSON(http.StatusOK, group)
}

// removeGroupMember removes one user from a group.
//
//	@Summary	Remove group member
//	@Tags		groups
//	@Param		group		path	string	true	"Group name"
//	@Param		username	path	string	true	"Username"
//	@Success	204
//	@Failure	404	{object}	models.ErrorResponse
//	@Router		/groups/{group}/users/{username} [delete]
func (s *Server) removeGroupMember(c *gin.Context) {
	if err := s.Hub.RemoveGroupMember(c.Request.Context(), c.Param("group"), c.Param("username")); err != nil {
		s.hubError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
