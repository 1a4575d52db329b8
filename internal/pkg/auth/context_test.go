package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrincipalRoundTrip(t *testing.T) {
	ctx := WithPrincipal(context.Background(), "j.dewar", "raw-token")

	assert.Equal(t, "j.dewar", Subject(ctx))
	assert.Equal(t, "raw-token", Token(ctx))
}

func TestEmptyContext(t *testing.T) {
	assert.Empty(t, Subject(context.Background()))
	assert.Empty(t, Token(context.Background()))
}
