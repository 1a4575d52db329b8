// Package message wires the message service (chat and group messages).
package message

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/doni/social-network/internal/config"
	"github.com/doni/social-network/internal/message/client"
	"github.com/doni/social-network/internal/message/controllers"
	"github.com/doni/social-network/internal/message/repositories"
	"github.com/doni/social-network/internal/message/services"
	"github.com/doni/social-network/internal/middleware"
	"github.com/doni/social-network/internal/pkg/auth"
	"github.com/doni/social-network/internal/pkg/validation"
)

// BuildRouter assembles the gin engine of the message service.
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

	messengerClient := client.NewMessengerClient(cfg.Services.MessengerURL, cfg.ClientTimeout())

	chatMessageRepo := repositories.NewChatMessageRepository(pool)
	chatMessageService := services.NewChatMessageService(chatMessageRepo, messengerClient)
	chatMessageController := controllers.NewChatMessageController(chatMessageService)

	groupMessageRepo := repositories.NewGroupMessageRepository(pool)
	groupMessageService := services.NewGroupMessageService(groupMessageRepo, messengerClient)
	groupMessageController := controllers.NewGroupMessageController(groupMessageService)

	api := router.Group("/message-api", authMiddleware.JWTAuth())
	chatMessageController.RegisterRoutes(api)
	groupMessageController.RegisterRoutes(api)

	return router, nil
}
