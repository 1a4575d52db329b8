package auth

import "context"

type contextKey int

const (
	subjectKey contextKey = iota
	tokenKey
)

// WithPrincipal stores the authenticated subject and its raw bearer token in
// the context. The token travels with the request so remote-entity clients
// can forward it to sibling services.
func WithPrincipal(ctx context.Context, subject, token string) context.Context {
	ctx = context.WithValue(ctx, subjectKey, subject)
	return context.WithValue(ctx, tokenKey, token)
}

// Subject returns the authenticated subject, or an empty string. The subject
// is an opaque identifier taken from the token as is.
func Subject(ctx context.Context) string {
	subject, _ := ctx.Value(subjectKey).(string)
	return subject
}

// Token returns the raw bearer token of the request, or an empty string.
func Token(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey).(string)
	return token
}
