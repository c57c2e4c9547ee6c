package storage

import (
	"context"
	"encoding/json"
	"time"

	"cafe-backend/internal/domain"

	"github.com/redis/go-redis/v9"
)

const menuListKey = "menu:list"

// RedisCache caches the full menu listing. Only the GET /api/menu path
// reads it; order pricing always resolves prices from the store.
type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func (c *RedisCache) GetMenu(ctx context.Context) ([]domain.MenuItem, bool) {
	payload, err := c.Client.Get(ctx, menuListKey).Bytes()
	if err != nil {
		return nil, false
	}
	var items []domain.MenuItem
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, false
	}
	return items, true
}

func (c *RedisCache) SetMenu(ctx context.Context, items []domain.MenuItem) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, menuListKey, payload, c.TTL).Err()
}

func (c *RedisCache) InvalidateMenu(ctx context.Context) error {
	return c.Client.Del(ctx, menuListKey).Err()
}
