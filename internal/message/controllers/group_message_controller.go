package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/doni/social-network/internal/message/models/dto"
	"github.com/doni/social-network/internal/message/services"
	"github.com/doni/social-network/internal/middleware"
	"github.com/doni/social-network/internal/pkg/problem"
)

// GroupMessageController handles the group message endpoints
type GroupMessageController struct {
	messageService services.GroupMessageService
}

// NewGroupMessageController creates a new GroupMessageController
func NewGroupMessageController(messageService services.GroupMessageService) *GroupMessageController {
	return &GroupMessageController{messageService: messageService}
}

// RegisterRoutes registers the group message routes on the given group
func (c *GroupMessageController) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/group-messages/by-group-id/:groupId", c.GetAllByGroupID)
	rg.POST("/group-messages", c.Create)
	rg.GET("/group-messages/:messageId", c.GetByID)
	rg.PATCH("/group-messages/:messageId", c.Update)
	rg.DELETE("/group-messages/:messageId", c.Delete)
}

// GetAllByGroupID lists the messages of a group
func (c *GroupMessageController) GetAllByGroupID(ctx *gin.Context) {
	groupID, ok := pathID(ctx, "groupId")
	if !ok {
		return
	}

	messageList, err := c.messageService.GetAllByGroupID(ctx.Request.Context(), groupID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, messageList)
}

// GetByID returns one group message
func (c *GroupMessageController) GetByID(ctx *gin.Context) {
	id, ok := pathID(ctx, "messageId")
	if !ok {
		return
	}

	message, err := c.messageService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, message)
}

// Create sends a message into a group the caller is a member of
func (c *GroupMessageController) Create(ctx *gin.Context) {
	var req dto.CreateGroupMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		problem.AbortBinding(ctx, err, dto.GroupMessageCreateKeys)
		return
	}

	authorID, ok := subjectID(ctx)
	if !ok {
		return
	}

	created, err := c.messageService.Create(ctx.Request.Context(), authorID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Location", ctx.Request.URL.Path+"/"+strconv.FormatInt(created.ID, 10))
	ctx.JSON(http.StatusCreated, created)
}

// Update modifies a group message of the caller
func (c *GroupMessageController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx, "messageId")
	if !ok {
		return
	}

	var req dto.UpdateGroupMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		problem.AbortBinding(ctx, err, dto.GroupMessageUpdateKeys)
		return
	}

	authorID, ok := subjectID(ctx)
	if !ok {
		return
	}

	if err := c.messageService.Update(ctx.Request.Context(), id, authorID, req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// Delete removes a group message of the caller
func (c *GroupMessageController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "messageId")
	if !ok {
		return
	}

	authorID, ok := subjectID(ctx)
	if !ok {
		return
	}

	if err := c.messageService.Delete(ctx.Request.Context(), id, authorID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
