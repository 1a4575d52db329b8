package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/doni/social-network/internal/middleware"
	"github.com/doni/social-network/internal/pkg/auth"
	"github.com/doni/social-network/internal/pkg/messages"
	"github.com/doni/social-network/internal/pkg/problem"
	"github.com/doni/social-network/internal/publication/models/dto"
	"github.com/doni/social-network/internal/publication/services"
)

// PublicationController handles the publication endpoints
type PublicationController struct {
	publicationService services.PublicationService
}

// NewPublicationController creates a new PublicationController
func NewPublicationController(publicationService services.PublicationService) *PublicationController {
	return &PublicationController{publicationService: publicationService}
}

// RegisterRoutes registers the publication routes on the given group
func (c *PublicationController) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/publications", c.GetAll)
	rg.GET("/publications/by-user-id/:userId", c.GetAllByUserID)
	rg.POST("/publications", c.Create)
	rg.GET("/publications/:publicationId", c.GetByID)
	rg.PATCH("/publications/:publicationId", c.Update)
	rg.DELETE("/publications/:publicationId", c.Delete)
}

// GetAll lists all publications
func (c *PublicationController) GetAll(ctx *gin.Context) {
	publications, err := c.publicationService.GetAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, publications)
}

// GetAllByUserID lists the publications of one user
func (c *PublicationController) GetAllByUserID(ctx *gin.Context) {
	userID := ctx.Param("userId")

	publications, err := c.publicationService.GetAllByUserID(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, publications)
}

// GetByID returns one publication
func (c *PublicationController) GetByID(ctx *gin.Context) {
	id, ok := pathID(ctx, "publicationId")
	if !ok {
		return
	}

	publication, err := c.publicationService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, publication)
}

// Create creates a publication owned by the caller
func (c *PublicationController) Create(ctx *gin.Context) {
	var req dto.CreatePublicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		problem.AbortBinding(ctx, err, dto.PublicationMessageKeys)
		return
	}

	userID, ok := subjectID(ctx)
	if !ok {
		return
	}

	created, err := c.publicationService.Create(ctx.Request.Context(), userID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Location", ctx.Request.URL.Path+"/"+strconv.FormatInt(created.ID, 10))
	ctx.JSON(http.StatusCreated, created)
}

// Update modifies a publication of the caller
func (c *PublicationController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx, "publicationId")
	if !ok {
		return
	}

	var req dto.UpdatePublicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		problem.AbortBinding(ctx, err, dto.PublicationMessageKeys)
		return
	}

	userID, ok := subjectID(ctx)
	if !ok {
		return
	}

	if err := c.publicationService.Update(ctx.Request.Context(), id, userID, req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// Delete removes a publication of the caller
func (c *PublicationController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "publicationId")
	if !ok {
		return
	}

	userID, ok := subjectID(ctx)
	if !ok {
		return
	}

	if err := c.publicationService.Delete(ctx.Request.Context(), id, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
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
