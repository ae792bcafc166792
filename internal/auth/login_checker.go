package auth

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
	}
}

func (lc *LoginChecker) UserID(ctx context.Context, token string) (string, error) {
	sessionKey := sessionKeyPrefix + token
	cmd := lc.redisClient.Get(ctx, sessionKey)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotLoggedIn
		}
		return "", err
	}

	userID, createdAt, err := parseSessionValue(cmd.Val())
	if err != nil {
		return "", err
	}

	if time.Since(createdAt) > lc.ttl {
		return "", ErrNotLoggedIn
	}

	return userID, nil
}
