package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/doni/social-network/internal/feedback/models/dto"
	"github.com/doni/social-network/internal/feedback/services"
	"github.com/doni/social-network/internal/middleware"
	"github.com/doni/social-network/internal/pkg/problem"
)

// LikeController handles the like endpoints
type LikeController struct {
	likeService services.LikeService
}

// NewLikeController creates a new LikeController
func NewLikeController(likeService services.LikeService) *LikeController {
	return &LikeController{likeService: likeService}
}

// RegisterRoutes registers the like routes on the given group
func (c *LikeController) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/likes/by-publication-id/:publicationId", c.GetAllByPublicationID)
	rg.POST("/likes", c.Create)
	rg.GET("/likes/by-publication-id/:publicationId/and-user-id/:userId", c.GetByPublicationIDAndUserID)
	rg.DELETE("/likes/by-publication-id/:publicationId/and-user-id/:userId", c.Delete)
}

// GetAllByPublicationID lists the likes of a publication
func (c *LikeController) GetAllByPublicationID(ctx *gin.Context) {
	publicationID, ok := pathID(ctx, "publicationId")
	if !ok {
		return
	}

	likes, err := c.likeService.GetAllByPublicationID(ctx.Request.Context(), publicationID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, likes)
}

// GetByPublicationIDAndUserID returns one user's like of a publication
func (c *LikeController) GetByPublicationIDAndUserID(ctx *gin.Context) {
	publicationID, ok := pathID(ctx, "publicationId")
	if !ok {
		return
	}
	userID := ctx.Param("userId")

	like, err := c.likeService.GetByPublicationIDAndUserID(ctx.Request.Context(), publicationID, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, like)
}

// Create records the caller's like of a publication
func (c *LikeController) Create(ctx *gin.Context) {
	var req dto.CreateLikeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		problem.AbortBinding(ctx, err, dto.LikeMessageKeys)
		return
	}

	callerID, ok := subjectID(ctx)
	if !ok {
		return
	}

	created, err := c.likeService.Create(ctx.Request.Context(), callerID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Location", ctx.Request.URL.Path+"/"+strconv.FormatInt(created.ID, 10))
	ctx.JSON(http.StatusCreated, created)
}

// Delete removes a like; only the like's owner may do so
func (c *LikeController) Delete(ctx *gin.Context) {
	publicationID, ok := pathID(ctx, "publicationId")
	if !ok {
		return
	}
	userID := ctx.Param("userId")

	callerID, ok := subjectID(ctx)
	if !ok {
		return
	}

	if err := c.likeService.Delete(ctx.Request.Context(), publicationID, userID, callerID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
