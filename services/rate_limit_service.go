package services

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiterInterface is the contract the contact rate limit middleware uses.
type RateLimiterInterface interface {
	CheckLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, time.Duration, error)
}

// RateLimitService is a fixed-window counter in Redis. The window starts at
// the first hit for a key and is never extended by later hits, so a blocked
// client cannot push back its own reset.
type RateLimitService struct {
	redis     *redis.Client
	keyPrefix string
}

func NewRateLimitService(client *redis.Client) *RateLimitService {
	return &RateLimitService{
		redis:     client,
		keyPrefix: "rate_limit:",
	}
}

// CheckLimit counts one hit for key and reports whether it is within limit.
// When the limit is exceeded the time left in the current window is returned.
func (s *RateLimitService) CheckLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, time.Duration, error) {
	rKey := s.keyPrefix + key

	// EXPIRE NX needs Redis 7 or later.
	pipe := s.redis.Pipeline()
	hits := pipe.Incr(ctx, rKey)
	pipe.ExpireNX(ctx, rKey, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, err
	}

	if hits.Val() <= int64(limit) {
		return true, 0, nil
	}

	retryAfter, err := s.redis.TTL(ctx, rKey).Result()
	if err != nil {
		return false, 0, err
	}
	if retryAfter <= 0 {
		// Key expired between the increment and the TTL read.
		retryAfter = window
	}
	return false, retryAfter, nil
}
