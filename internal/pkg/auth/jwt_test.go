package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doni/social-network/internal/pkg/apperrors"
)

func newTestService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		TokenIssuer:    "social-network",
		AccessTokenExp: exp,
	})
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	service := newTestService(time.Hour)

	token, err := service.GenerateToken("j.dewar")
	require.NoError(t, err)

	subject, err := service.ValidateAndExtractSubject(token)
	require.NoError(t, err)
	assert.Equal(t, "j.dewar", subject)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	service := newTestService(-time.Minute)

	token, err := service.GenerateToken("j.dewar")
	require.NoError(t, err)

	_, err = service.ValidateAndExtractSubject(token)
	assert.True(t, errors.Is(err, apperrors.ErrTokenExpired))
}

func TestJWTService_WrongSecret(t *testing.T) {
	token, err := newTestService(time.Hour).GenerateToken("j.dewar")
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{SecretKey: "other-secret", AccessTokenExp: time.Hour})
	_, err = other.ValidateAndExtractSubject(token)
	assert.True(t, errors.Is(err, apperrors.ErrTokenInvalid))
}

func TestJWTService_GarbageToken(t *testing.T) {
	_, err := newTestService(time.Hour).ValidateAndExtractSubject("not-a-token")
	assert.True(t, errors.Is(err, apperrors.ErrTokenInvalid))
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("Basic abc")
	assert.Error(t, err)

	_, err = ExtractBearerToken("Bearer ")
	assert.Error(t, err)
}
