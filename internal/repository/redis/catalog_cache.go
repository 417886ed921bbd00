package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"glowAdvisor/domain"

	"github.com/redis/go-redis/v9"
)

const catalogKey = "catalog:in_stock"

// CatalogCache keeps a serialized copy of the in-stock catalog so
// consultations do not hit Postgres on every request.
type CatalogCache struct {
	client *redis.Client
}

func NewCatalogCache(client *redis.Client) *CatalogCache {
	return &CatalogCache{
		client: client,
	}
}

func (c *CatalogCache) GetItems(ctx context.Context) ([]domain.RawItem, error) {
	val, err := c.client.Get(ctx, catalogKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read catalog cache: %w", err)
	}

	var items []domain.RawItem
	if err := json.Unmarshal([]byte(val), &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached catalog: %w", err)
	}

	return items, nil
}

func (c *CatalogCache) SetItems(ctx context.Context, items []domain.RawItem, ttl time.Duration) error {
	jsonData, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}

	if err := c.client.Set(ctx, catalogKey, jsonData, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write catalog cache: %w", err)
	}

	return nil
}

func (c *CatalogCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, catalogKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate catalog cache: %w", err)
	}

	return nil
}
