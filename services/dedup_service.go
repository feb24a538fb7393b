package services

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Deduplicator remembers client-supplied idempotency keys for a while.
type Deduplicator interface {
	Claim(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}

// DedupService is a short-lived seen-set of idempotency keys in Redis.
type DedupService struct {
	redis     *redis.Client
	ttl       time.Duration
	keyPrefix string
}

func NewDedupService(redis *redis.Client, ttl time.Duration) *DedupService {
	return &DedupService{
		redis:     redis,
		ttl:       ttl,
		keyPrefix: "contact:idempotency:",
	}
}

// Claim records key and returns true if it had not been seen within the TTL.
func (s *DedupService) Claim(ctx context.Context, key string) (bool, error) {
	return s.redis.SetNX(ctx, s.keyPrefix+key, "1", s.ttl).Result()
}

// Release forgets key so a failed submission can be retried with it.
func (s *DedupService) Release(ctx context.Context, key string) error {
	return s.redis.Del(ctx, s.keyPrefix+key).Err()
}
