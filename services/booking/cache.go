// File: services/booking/cache.go
package booking

import (
	"context"
	"encoding/json"
	"fmt"

	"bookify/models"
	"bookify/utils"

	"github.com/go-redis/redis/v8"
)

// SlotCache keeps computed slot responses hot between identical queries.
// Purely a performance layer: slot generation stays correct without it.
type SlotCache interface {
	Get(ctx context.Context, userID, serviceID, date string) ([]models.TimeSlot, bool)
	Set(ctx context.Context, userID, serviceID, date string, slots []models.TimeSlot)
	InvalidateUser(ctx context.Context, userID string)
}

type redisSlotCache struct {
	client *redis.Client
}

// NewRedisSlotCache wraps a Redis client as a SlotCache.
func NewRedisSlotCache(client *redis.Client) SlotCache {
	return &redisSlotCache{client: client}
}

func slotCacheKey(userID, serviceID, date string) string {
	return fmt.Sprintf("%s%s:%s:%s", utils.SlotCachePrefix, userID, serviceID, date)
}

func (c *redisSlotCache) Get(ctx context.Context, userID, serviceID, date string) ([]models.TimeSlot, bool) {
	raw, err := c.client.Get(ctx, slotCacheKey(userID, serviceID, date)).Bytes()
	if err != nil {
		if err != redis.Nil {
			utils.GetLogger().Sugar().Warnf("slot cache read failed: %v", err)
		}
		return nil, false
	}

	var slots []models.TimeSlot
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *redisSlotCache) Set(ctx context.Context, userID, serviceID, date string, slots []models.TimeSlot) {
	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, slotCacheKey(userID, serviceID, date), raw, utils.SlotCacheTTL).Err(); err != nil {
		utils.GetLogger().Sugar().Warnf("slot cache write failed: %v", err)
	}
}

// InvalidateUser drops every cached slot response for a user. Called when
// an appointment is booked or cancelled, since any date's slots may have
// changed.
func (c *redisSlotCache) InvalidateUser(ctx context.Context, userID string) {
	pattern := utils.SlotCachePrefix + userID + ":*"
	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			utils.GetLogger().Sugar().Warnf("slot cache invalidation failed for %s: %v", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		utils.GetLogger().Sugar().Warnf("slot cache scan failed: %v", err)
	}
}
