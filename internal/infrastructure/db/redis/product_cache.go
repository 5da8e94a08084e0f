package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/adventureworks/catalog-api/internal/core/domain"
)

const defaultCacheTTL = 5 * time.Minute

// ProductCache caches single products as JSON blobs.
// Key format: product:<id>
//
// Backend failures are logged and treated as misses so a degraded Redis never
// fails a request.
type ProductCache struct {
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

// NewProductCache creates a ProductCache wrapping the given Redis client.
// A non-positive ttl falls back to defaultCacheTTL.
func NewProductCache(client *redis.Client, ttl time.Duration, log zerolog.Logger) *ProductCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &ProductCache{client: client, ttl: ttl, log: log}
}

func (c *ProductCache) Get(ctx context.Context, id int64) (*domain.Product, bool) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn().Err(err).Int64("product_id", id).Msg("cache get failed")
		}
		return nil, false
	}

	var p domain.Product
	if err := json.Unmarshal(raw, &p); err != nil {
		c.log.Warn().Err(err).Int64("product_id", id).Msg("cache entry corrupt")
		return nil, false
	}
	return &p, true
}

func (c *ProductCache) Set(ctx context.Context, p *domain.Product) {
	raw, err := json.Marshal(p)
	if err != nil {
		c.log.Warn().Err(err).Int64("product_id", p.ID).Msg("cache marshal failed")
		return
	}
	if err := c.client.Set(ctx, c.key(p.ID), raw, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Int64("product_id", p.ID).Msg("cache set failed")
	}
}

func (c *ProductCache) Invalidate(ctx context.Context, id int64) {
	if err := c.client.Del(ctx, c.key(id)).Err(); err != nil {
		c.log.Warn().Err(err).Int64("product_id", id).Msg("cache invalidate failed")
	}
}

func (c *ProductCache) key(id int64) string {
	return fmt.Sprintf("product:%d", id)
}
