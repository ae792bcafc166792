package auth

import (
	"context"
	"errors"
)

var _ Checker = (*LoginChecker)(nil)
var _ Checker = (*LoginTestChecker)(nil)

// ErrNotLoggedIn is returned when a token is unknown or its session expired.
var ErrNotLoggedIn = errors.New("not logged in")

type Checker interface {
	// UserID resolves the session token to the owning user ID.
	UserID(ctx context.Context, token string) (string, error)
}
