package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/doni/social-network/internal/messenger/models/dto"
	"github.com/doni/social-network/internal/messenger/services"
	"github.com/doni/social-network/internal/middleware"
	"github.com/doni/social-network/internal/pkg/auth"
	"github.com/doni/social-network/internal/pkg/messages"
	"github.com/doni/social-network/internal/pkg/problem"
)

// ChatController handles the chat endpoints
type ChatController struct {
	chatService services.ChatService
}

// NewChatController creates a new ChatController
func NewChatController(chatService services.ChatService) *ChatController {
	return &ChatController{chatService: chatService}
}

// RegisterRoutes registers the chat routes on the given group
func (c *ChatController) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/chats", c.GetAll)
	rg.POST("/chats", c.Create)
	rg.GET("/chats/:chatId", c.GetByID)
	rg.DELETE("/chats/:chatId", c.Delete)
}

// GetAll lists the caller's chats
func (c *ChatController) GetAll(ctx *gin.Context) {
	callerID, ok := subjectID(ctx)
	if !ok {
		return
	}

	chats, err := c.chatService.GetAllByUserID(ctx.Request.Context(), callerID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, chats)
}

// GetByID returns one chat of the caller
func (c *ChatController) GetByID(ctx *gin.Context) {
	id, ok := pathID(ctx, "chatId")
	if !ok {
		return
	}

	callerID, ok := subjectID(ctx)
	if !ok {
		return
	}

	chat, err := c.chatService.GetByID(ctx.Request.Context(), id, callerID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, chat)
}

// Create opens a chat between the caller and another user
func (c *ChatController) Create(ctx *gin.Context) {
	var req dto.CreateChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		problem.AbortBinding(ctx, err, dto.ChatMessageKeys)
		return
	}

	callerID, ok := subjectID(ctx)
	if !ok {
		return
	}

	created, err := c.chatService.Create(ctx.Request.Context(), callerID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Location", ctx.Request.URL.Path+"/"+strconv.FormatInt(created.ID, 10))
	ctx.JSON(http.StatusCreated, created)
}

// Delete removes a chat the caller participates in
func (c *ChatController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "chatId")
	if !ok {
		return
	}

	callerID, ok := subjectID(ctx)
	if !ok {
		return
	}

	if err := c.chatService.Delete(ctx.Request.Context(), id, callerID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// pathID parses a numeric path parameter, aborting with a 400 problem detail
// when it is not a number.
func pathID(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		problem.Abort(ctx, problem.New(http.StatusBadRequest, messages.BadRequest))
		return 0, false
	}
	return id, true
}

// subjectID returns the authenticated subject, aborting with a 401 problem
// detail when the request carries no principal.
func subjectID(ctx *gin.Context) (string, bool) {
	subject := auth.Subject(ctx.Request.Context())
	if subject == "" {
		problem.Abort(ctx, problem.New(http.StatusUnauthorized, "Пользователь не аутентифицирован"))
		return "", false
	}
	return subject, true
}
