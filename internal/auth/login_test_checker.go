package auth

import "context"

// LoginTestChecker is used in unit tests as a Checker replacement.
type LoginTestChecker struct {
	// LoggedSessions maps token -> user ID
	LoggedSessions map[string]string
}

func NewLoginTestChecker() *LoginTestChecker {
	return &LoginTestChecker{
		LoggedSessions: make(map[string]string),
	}
}

func (ltc *LoginTestChecker) UserID(_ context.Context, token string) (string, error) {
	userID, ok := ltc.LoggedSessions[token]
	if !ok {
		return "", ErrNotLoggedIn
	}
	return userID, nil
}
