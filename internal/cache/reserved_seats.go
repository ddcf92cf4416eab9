// Package cache holds the Redis-backed read cache for per-night
// reserved-seat lists. The reserved-seat view is re-read by every
// connected floor plan while bookings barely change between polls, so a
// short-lived cache absorbs most of the read load. Entries are
// invalidated explicitly whenever a booking for the night is created or
// cancelled; the TTL only bounds staleness after a missed invalidation.
package cache

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/tavolo/night-booking/internal/config"
	"github.com/tavolo/night-booking/internal/model"
)

// NightCache caches the hydrated reserved-seat list per night. A nil
// Redis client or disabled config yields an inert cache: Get always
// misses and Set/Invalidate are no-ops, so callers need no nil checks.
type NightCache struct {
	rdb *redis.Client
	cfg config.CacheConfig
}

// NewNightCache constructs a NightCache. Pass a nil client to disable
// caching entirely.
func NewNightCache(cfg config.CacheConfig, rdb *redis.Client) *NightCache {
	if !cfg.Enabled {
		rdb = nil
	}
	return &NightCache{rdb: rdb, cfg: cfg}
}

// key builds the Redis key for a night's reserved-seat list.
func (c *NightCache) key(nightID uint64) string {
	return c.cfg.Prefix + ":" + strconv.FormatUint(nightID, 10) + ":reserved-seats"
}

// GetReservedSeats returns the cached list for the night and whether the
// lookup hit. Decode failures count as misses so a stale or truncated
// entry never poisons responses.
func (c *NightCache) GetReservedSeats(ctx context.Context, nightID uint64) ([]model.HydratedReservedSeat, bool) {
	if c.rdb == nil {
		return nil, false
	}
	payload, err := c.rdb.Get(ctx, c.key(nightID)).Bytes()
	if err != nil {
		return nil, false
	}
	var seats []model.HydratedReservedSeat
	if err := json.Unmarshal(payload, &seats); err != nil {
		return nil, false
	}
	return seats, true
}

// SetReservedSeats stores the list for the night. Errors are swallowed:
// the cache is best effort and the database remains the source of truth.
func (c *NightCache) SetReservedSeats(ctx context.Context, nightID uint64, seats []model.HydratedReservedSeat) {
	if c.rdb == nil {
		return
	}
	payload, err := json.Marshal(seats)
	if err != nil {
		return
	}
	_ = c.rdb.SetEx(ctx, c.key(nightID), payload, c.cfg.TTL).Err()
}

// Invalidate drops the cached list for the night. Called after every
// booking creation or cancellation so readers observe the new seat state
// on their next request.
func (c *NightCache) Invalidate(ctx context.Context, nightID uint64) {
	if c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, c.key(nightID)).Err()
}
