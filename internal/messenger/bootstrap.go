// Package messenger wires the messenger service (chats and groups).
package messenger

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/doni/social-network/internal/config"
	"github.com/doni/social-network/internal/db"
	"github.com/doni/social-network/internal/messenger/controllers"
	"github.com/doni/social-network/internal/messenger/repositories"
	"github.com/doni/social-network/internal/messenger/services"
	"github.com/doni/social-network/internal/middleware"
	"github.com/doni/social-network/internal/pkg/auth"
	"github.com/doni/social-network/internal/pkg/validation"
)

// BuildRouter assembles the gin engine of the messenger service.
func BuildRouter(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*gin.Engine, error) {
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

	chatRepo := repositories.NewChatRepository(database.Pool)
	chatService := services.NewChatService(chatRepo)
	chatController := controllers.NewChatController(chatService)

	groupRepo := repositories.NewGroupRepository(database)
	groupService := services.NewGroupService(groupRepo)
	groupController := controllers.NewGroupController(groupService)

	api := router.Group("/messenger-api", authMiddleware.JWTAuth())
	chatController.RegisterRoutes(api)
	groupController.RegisterRoutes(api)

	return router, nil
}
