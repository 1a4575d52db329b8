package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/doni/social-network/internal/pkg/apperrors"
	"github.com/doni/social-network/internal/pkg/auth"
	"github.com/doni/social-network/internal/pkg/problem"
)

// AuthMiddleware validates bearer tokens before any handler logic runs.
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// JWTAuth rejects requests without a valid bearer token and stores the
// subject and raw token in the request context for handlers and remote
// clients.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			problem.Abort(c, problem.New(http.StatusUnauthorized, "Пользователь не аутентифицирован"))
			return
		}

		token, err := auth.ExtractBearerToken(header)
		if err != nil {
			problem.Abort(c, problem.New(http.StatusUnauthorized, "Пользователь не аутентифицирован"))
			return
		}

		subject, err := m.jwtService.ValidateAndExtractSubject(token)
		if err != nil {
			detail := "Пользователь не аутентифицирован"
			if errors.Is(err, apperrors.ErrTokenExpired) {
				detail = "Срок действия токена истек"
			}
			problem.Abort(c, problem.New(http.StatusUnauthorized, detail))
			return
		}

		c.Request = c.Request.WithContext(auth.WithPrincipal(c.Request.Context(), subject, token))
		c.Next()
	}
}
