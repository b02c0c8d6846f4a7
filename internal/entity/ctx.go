package entity

import (
	"context"
	"time"
)

type CtxKeySession struct{}

// Session is the authenticated caller of a single request. TokenID and
// ExpiresAt identify the bearer token it was resolved from.
type Session struct {
	User      User
	TokenID   string
	ExpiresAt time.Time
}

func SessionFromContext(ctx context.Context) (Session, error) {
	s, ok := ctx.Value(CtxKeySession{}).(Session)
	if !ok {
		return Session{}, ErrUnauthorized
	}

	return s, nil
}

func SetSessionToContext(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, CtxKeySession{}, s)
}
