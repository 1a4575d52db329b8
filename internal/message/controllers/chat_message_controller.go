package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/doni/social-network/internal/message/models/dto"
	"github.com/doni/social-network/internal/message/services"
	"github.com/doni/social-network/internal/middleware"
	"github.com/doni/social-network/internal/pkg/auth"
	"github.com/doni/social-network/internal/pkg/messages"
	"github.com/doni/social-network/internal/pkg/problem"
)

// ChatMessageController handles the chat message endpoints
type ChatMessageController struct {
	messageService services.ChatMessageService
}

// NewChatMessageController creates a new ChatMessageController
func NewChatMessageController(messageService services.ChatMessageService) *ChatMessageController {
	return &ChatMessageController{messageService: messageService}
}

// RegisterRoutes registers the chat message routes on the given group
func (c *ChatMessageController) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/chat-messages/by-chat-id/:chatId", c.GetAllByChatID)
	rg.POST("/chat-messages", c.Create)
	rg.GET("/chat-messages/:messageId", c.GetByID)
	rg.PATCH("/chat-messages/:messageId", c.Update)
	rg.DELETE("/chat-messages/:messageId", c.Delete)
}

// GetAllByChatID lists the messages of a chat
func (c *ChatMessageController) GetAllByChatID(ctx *gin.Context) {
	chatID, ok := pathID(ctx, "chatId")
	if !ok {
		return
	}

	messageList, err := c.messageService.GetAllByChatID(ctx.Request.Context(), chatID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, messageList)
}

// GetByID returns one chat message
func (c *ChatMessageController) GetByID(ctx *gin.Context) {
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

// Create sends a message into a chat the caller participates in
func (c *ChatMessageController) Create(ctx *gin.Context) {
	var req dto.CreateChatMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		problem.AbortBinding(ctx, err, dto.ChatMessageCreateKeys)
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

// Update modifies a chat message of the caller
func (c *ChatMessageController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx, "messageId")
	if !ok {
		return
	}

	var req dto.UpdateChatMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		problem.AbortBinding(ctx, err, dto.ChatMessageUpdateKeys)
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

// Delete removes a chat message of the caller
func (c *ChatMessageController) Delete(ctx *gin.Context) {
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
