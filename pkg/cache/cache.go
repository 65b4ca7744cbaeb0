package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Service is a thin JSON cache over Redis. A nil *Service is a valid
// no-op cache so callers never need nil checks when Redis is absent.
type Service struct {
	client *redis.Client
}

// NewService creates a cache service backed by the given Redis client
func NewService(client *redis.Client) *Service {
	return &Service{client: client}
}

// GetJSON loads key into dest. Returns false on miss or decode failure.
func (s *Service) GetJSON(ctx context.Context, key string, dest interface{}) bool {
	if s == nil || s.client == nil {
		return false
	}
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(data, dest) == nil
}

// SetJSON stores value under key with a TTL. Errors are ignored; the
// cache is purely an accelerator.
func (s *Service) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if s == nil || s.client == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	s.client.Set(ctx, key, data, ttl)
}

// Delete removes keys
func (s *Service) Delete(ctx context.Context, keys ...string) {
	if s == nil || s.client == nil || len(keys) == 0 {
		return
	}
	s.client.Del(ctx, keys...)
}
