package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/doni/social-network/internal/pkg/apperrors"
)

// JWTConfig contains the settings for token validation and issuance.
type JWTConfig struct {
	SecretKey      string
	TokenIssuer    string
	AccessTokenExp time.Duration
}

// JWTService validates bearer tokens and extracts the acting principal.
type JWTService struct {
	secretKey      []byte
	issuer         string
	accessTokenExp time.Duration
}

// NewJWTService creates a new JWTService
func NewJWTService(config JWTConfig) *JWTService {
	return &JWTService{
		secretKey:      []byte(config.SecretKey),
		issuer:         config.TokenIssuer,
		accessTokenExp: config.AccessTokenExp,
	}
}

// GenerateToken issues a signed access token for the given subject.
func (s *JWTService) GenerateToken(subject string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    s.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTokenExp)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateAndExtractSubject verifies the token signature and expiry and
// returns the subject claim identifying the acting principal.
func (s *JWTService) ValidateAndExtractSubject(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", apperrors.ErrTokenExpired
		}
		return "", apperrors.ErrTokenInvalid
	}

	if claims.Subject == "" {
		return "", apperrors.ErrTokenInvalid
	}
	return claims.Subject, nil
}

// ExtractBearerToken strips the Bearer prefix from an Authorization header.
func ExtractBearerToken(header string) (string, error) {
	if !strings.HasPrefix(header, "Bearer ") {
		return "", apperrors.ErrTokenInvalid
	}
	token := strings.TrimPrefix(header, "Bearer ")
	if token == "" {
		return "", apperrors.ErrTokenInvalid
	}
	return token, nil
}
