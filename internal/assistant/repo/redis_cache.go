package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	errx "github.com/lumena-studio/concierge/internal/core/error"
	"github.com/lumena-studio/concierge/internal/assistant/model"
	logx "github.com/lumena-studio/concierge/pkg/logger"
)

// RedisResponseCache stores responses under their normalized message key
// with a server-side TTL, so expiry needs no sweep of our own.
type RedisResponseCache struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewRedisResponseCache(rdb redis.Cmdable, ttl time.Duration) *RedisResponseCache {
	return &RedisResponseCache{rdb: rdb, ttl: ttl}
}

func (c *RedisResponseCache) cacheKey(message string) string {
	return fmt.Sprintf("chat:cache:%s", CacheKey(message))
}

func (c *RedisResponseCache) Lookup(ctx context.Context, message string) (*model.Response, error) {
	key := c.cacheKey(message)

	raw, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		logx.Error().Err(err).Str("key", key).Msg("failed to read response cache")
		return nil, errx.WrapRedis(err)
	}

	var resp model.Response
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to unmarshal cached response")
		return nil, fmt.Errorf("unmarshal cached response: %w", err)
	}
	return &resp, nil
}

func (c *RedisResponseCache) Store(ctx context.Context, message string, resp *model.Response) error {
	b, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("marshal response: %w", err)
	}
	key := c.cacheKey(message)

	if err := c.rdb.Set(ctx, key, b, c.ttl).Err(); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to write response cache")
		return errx.WrapRedis(err)
	}
	return nil
}

var _ model.ResponseCache = (*RedisResponseCache)(nil)
