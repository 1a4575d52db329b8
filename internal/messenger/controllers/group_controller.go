package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/doni/social-network/internal/messenger/models/dto"
	"github.com/doni/social-network/internal/messenger/services"
	"github.com/doni/social-network/internal/middleware"
	"github.com/doni/social-network/internal/pkg/problem"
)

// GroupController handles the group endpoints
type GroupController struct {
	groupService services.GroupService
}

// NewGroupController creates a new GroupController
func NewGroupController(groupService services.GroupService) *GroupController {
	return &GroupController{groupService: groupService}
}

// RegisterRoutes registers the group routes on the given group
func (c *GroupController) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/groups", c.GetAll)
	rg.POST("/groups", c.Create)
	rg.GET("/groups/:groupId", c.GetByID)
	rg.PATCH("/groups/:groupId", c.Update)
	rg.DELETE("/groups/:groupId", c.Delete)
	rg.PATCH("/groups/:groupId/add-user", c.AddUser)
	rg.DELETE("/groups/:groupId/kick-user", c.KickUser)
	rg.DELETE("/groups/:groupId/leave-group", c.LeaveGroup)
}

// GetAll lists the groups the caller is a member of
func (c *GroupController) GetAll(ctx *gin.Context) {
	callerID, ok := subjectID(ctx)
	if !ok {
		return
	}

	groups, err := c.groupService.GetAllByUserID(ctx.Request.Context(), callerID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, groups)
}

// GetByID returns one group with its members
func (c *GroupController) GetByID(ctx *gin.Context) {
	id, ok := pathID(ctx, "groupId")
	if !ok {
		return
	}

	callerID, ok := subjectID(ctx)
	if !ok {
		return
	}

	group, err := c.groupService.GetByID(ctx.Request.Context(), id, callerID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, group)
}

// Create creates a group owned by the caller
func (c *GroupController) Create(ctx *gin.Context) {
	var req dto.CreateGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		problem.AbortBinding(ctx, err, dto.GroupMessageKeys)
		return
	}

	callerID, ok := subjectID(ctx)
	if !ok {
		return
	}

	created, err := c.groupService.Create(ctx.Request.Context(), callerID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Location", ctx.Request.URL.Path+"/"+strconv.FormatInt(created.ID, 10))
	ctx.JSON(http.StatusCreated, created)
}

// Update modifies a group of the caller
func (c *GroupController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx, "groupId")
	if !ok {
		return
	}

	var req dto.UpdateGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		problem.AbortBinding(ctx, err, dto.GroupMessageKeys)
		return
	}

	callerID, ok := subjectID(ctx)
	if !ok {
		return
	}

	if err := c.groupService.Update(ctx.Request.Context(), id, callerID, req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// Delete removes a group of the caller
func (c *GroupController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "groupId")
	if !ok {
		return
	}

	callerID, ok := subjectID(ctx)
	if !ok {
		return
	}

	if err := c.groupService.Delete(ctx.Request.Context(), id, callerID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// AddUser adds a user to a group owned by the caller
func (c *GroupController) AddUser(ctx *gin.Context) {
	id, ok := pathID(ctx, "groupId")
	if !ok {
		return
	}

	var req dto.AddUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		problem.AbortBinding(ctx, err, dto.AddUserMessageKeys)
		return
	}

	callerID, ok := subjectID(ctx)
	if !ok {
		return
	}

	if err := c.groupService.AddUser(ctx.Request.Context(), id, callerID, req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// KickUser removes a user from a group owned by the caller
func (c *GroupController) KickUser(ctx *gin.Context) {
	id, ok := pathID(ctx, "groupId")
	if !ok {
		return
	}

	var req dto.KickUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		problem.AbortBinding(ctx, err, dto.KickUserMessageKeys)
		return
	}

	callerID, ok := subjectID(ctx)
	if !ok {
		return
	}

	if err := c.groupService.KickUser(ctx.Request.Context(), id, callerID, req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// LeaveGroup removes the caller from a group
func (c *GroupController) LeaveGroup(ctx *gin.Context) {
	id, ok := pathID(ctx, "groupId")
	if !ok {
		return
	}

	callerID, ok := subjectID(ctx)
	if !ok {
		return
	}

	if err := c.groupService.LeaveGroup(ctx.Request.Context(), id, callerID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
