// Package publication wires the publication service.
package publication

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/doni/social-network/internal/config"
	"github.com/doni/social-network/internal/middleware"
	"github.com/doni/social-network/internal/pkg/auth"
	"github.com/doni/social-network/internal/pkg/validation"
	"github.com/doni/social-network/internal/publication/controllers"
	"github.com/doni/social-network/internal/publication/repositories"
	"github.com/doni/social-network/internal/publication/services"
)

// BuildRouter assembles the gin engine of the publication service.
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

	publicationRepo := repositories.NewPublicationRepository(pool)
	publicationService := services.NewPublicationService(publicationRepo)
	publicationController := controllers.NewPublicationController(publicationService)

	api := router.Group("/publication-api", authMiddleware.JWTAuth())
	publicationController.RegisterRoutes(api)

	return router, nil
}
