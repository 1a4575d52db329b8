// Package feedback wires the feedback service (comments and likes).
package feedback

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/doni/social-network/internal/config"
	"github.com/doni/social-network/internal/feedback/client"
	"github.com/doni/social-network/internal/feedback/controllers"
	"github.com/doni/social-network/internal/feedback/repositories"
	"github.com/doni/social-network/internal/feedback/services"
	"github.com/doni/social-network/internal/middleware"
	"github.com/doni/social-network/internal/pkg/auth"
	"github.com/doni/social-network/internal/pkg/validation"
)

// BuildRouter assembles the gin engine of the feedback service.
func BuildRouter(cfg *config.Config, pool *pgxpool.Pool, lgr zerolog.Logger) (*gin.Engine, error) {
	if cfg.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := validation.RegisterCustomValidators(); err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(lgr))

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		TokenIssuer:    cfg.JWT.Issuer,
		AccessTokenExp: cfg.AccessTokenExpiration(),
	})
	authMiddleware := middleware.NewAuthMiddleware(jwtService)

	publicationClient := client.NewPublicationClient(cfg.Services.PublicationURL, cfg.ClientTimeout())

	commentRepo := repositories.NewCommentRepository(pool)
	commentService := services.NewCommentService(commentRepo, publicationClient)
	commentController := controllers.NewCommentController(commentService)

	likeRepo := repositories.NewLikeRepository(pool)
	likeService := services.NewLikeService(likeRepo, publicationClient)
	likeController := controllers.NewLikeController(likeService)

	api := router.Group("/feedback-api", authMiddleware.JWTAuth())
	commentController.RegisterRoutes(api)
	likeController.RegisterRoutes(api)

	return router, nil
}
