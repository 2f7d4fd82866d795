// internal/inventory/cache.go
package inventory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"inventory-assistant/internal/common/logger"
	"inventory-assistant/internal/models"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "inv:"

// CachedStore puts a Redis read-through cache in front of the aggregate and
// supplier lookups of another Store. Cache failures are logged and skipped.
type CachedStore struct {
	Store
	redis redis.Cmdable
	ttl   time.Duration
	log   logger.Logger
}

func NewCachedStore(next Store, rdb redis.Cmdable, ttl time.Duration, log logger.Logger) *CachedStore {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &CachedStore{
		Store: next,
		redis: rdb,
		ttl:   ttl,
		log:   log.With(map[string]interface{}{"component": "inventory_cache"}),
	}
}

func summaryKey(tenantID string) string {
	return keyPrefix + "summary:" + tenantID
}

func topSellerKey(tenantID string) string {
	return keyPrefix + "top:" + tenantID
}

func supplierKey(tenantID, name string) string {
	return fmt.Sprintf("%ssupplier:%s:%s", keyPrefix, tenantID, strings.ToLower(strings.TrimSpace(name)))
}

func (c *CachedStore) InventorySummary(ctx context.Context, tenantID string) (*models.InventorySummary, error) {
	key := summaryKey(tenantID)
	var cached models.InventorySummary
	if c.get(ctx, key, &cached) {
		return &cached, nil
	}
	sum, err := c.Store.InventorySummary(ctx, tenantID)
	if err == nil && sum != nil {
		c.set(ctx, key, sum)
	}
	return sum, err
}

func (c *CachedStore) TopSellingProduct(ctx context.Context, tenantID string) (*models.TopSeller, error) {
	key := topSellerKey(tenantID)
	var cached models.TopSeller
	if c.get(ctx, key, &cached) {
		return &cached, nil
	}
	top, err := c.Store.TopSellingProduct(ctx, tenantID)
	if err == nil && top != nil {
		c.set(ctx, key, top)
	}
	return top, err
}

// SupplierByName caches hits only, so a newly added supplier is found at once.
func (c *CachedStore) SupplierByName(ctx context.Context, tenantID, name string) (*models.Supplier, error) {
	key := supplierKey(tenantID, name)
	var cached models.Supplier
	if c.get(ctx, key, &cached) {
		return &cached, nil
	}
	sup, err := c.Store.SupplierByName(ctx, tenantID, name)
	if err == nil && sup != nil {
		c.set(ctx, key, sup)
	}
	return sup, err
}

// Invalidate drops every cached entry of tenantID.
func (c *CachedStore) Invalidate(ctx context.Context, tenantID string) error {
	keys := []string{summaryKey(tenantID), topSellerKey(tenantID)}
	iter := c.redis.Scan(ctx, 0, supplierKey(tenantID, "")+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scan cache keys: %w", err)
	}
	return c.redis.Del(ctx, keys...).Err()
}

func (c *CachedStore) get(ctx context.Context, key string, out interface{}) bool {
	val, err := c.redis.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("cache read failed", map[string]interface{}{"key": key, "error": err.Error()})
		}
		return false
	}
	if err := json.Unmarshal([]byte(val), out); err != nil {
		c.log.Warn("cache entry corrupt", map[string]interface{}{"key": key, "error": err.Error()})
		return false
	}
	return true
}

func (c *CachedStore) set(ctx context.Context, key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.redis.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.log.Warn("cache write failed", map[string]interface{}{"key": key, "error": err.Error()})
	}
}
