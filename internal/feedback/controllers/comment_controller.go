package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/doni/social-network/internal/feedback/models/dto"
	"github.com/doni/social-network/internal/feedback/services"
	"github.com/doni/social-network/internal/middleware"
	"github.com/doni/social-network/internal/pkg/auth"
	"github.com/doni/social-network/internal/pkg/messages"
	"github.com/doni/social-network/internal/pkg/problem"
)

// CommentController handles the comment endpoints
type CommentController struct {
	commentService services.CommentService
}

// NewCommentController creates a new CommentController
func NewCommentController(commentService services.CommentService) *CommentController {
	return &CommentController{commentService: commentService}
}

// RegisterRoutes registers the comment routes on the given group
func (c *CommentController) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/comments/by-publication-id/:publicationId", c.GetAllByPublicationID)
	rg.POST("/comments", c.Create)
	rg.GET("/comments/:commentId", c.GetByID)
	rg.PATCH("/comments/:commentId", c.Update)
	rg.DELETE("/comments/:commentId", c.Delete)
}

// GetAllByPublicationID lists the comments under a publication
func (c *CommentController) GetAllByPublicationID(ctx *gin.Context) {
	publicationID, ok := pathID(ctx, "publicationId")
	if !ok {
		return
	}

	comments, err := c.commentService.GetAllByPublicationID(ctx.Request.Context(), publicationID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, comments)
}

// GetByID returns one comment
func (c *CommentController) GetByID(ctx *gin.Context) {
	id, ok := pathID(ctx, "commentId")
	if !ok {
		return
	}

	comment, err := c.commentService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, comment)
}

// Create creates a comment by the caller under a publication
func (c *CommentController) Create(ctx *gin.Context) {
	var req dto.CreateCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		problem.AbortBinding(ctx, err, dto.CommentMessageKeys)
		return
	}

	userID, ok := subjectID(ctx)
	if !ok {
		return
	}

	created, err := c.commentService.Create(ctx.Request.Context(), userID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Location", ctx.Request.URL.Path+"/"+strconv.FormatInt(created.ID, 10))
	ctx.JSON(http.StatusCreated, created)
}

// Update modifies a comment of the caller
func (c *CommentController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx, "commentId")
	if !ok {
		return
	}

	var req dto.UpdateCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		problem.AbortBinding(ctx, err, dto.CommentMessageKeys)
		return
	}

	userID, ok := subjectID(ctx)
	if !ok {
		return
	}

	if err := c.commentService.Update(ctx.Request.Context(), id, userID, req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// Delete removes a comment of the caller
func (c *CommentController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "commentId")
	if !ok {
		return
	}

	userID, ok := subjectID(ctx)
	if !ok {
		return
	}

	if err := c.commentService.Delete(ctx.Request.Context(), id, userID); err != nil {
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
