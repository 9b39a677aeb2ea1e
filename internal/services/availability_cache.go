package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/quantumhotel/hotel-service/internal/constants"
	"github.com/quantumhotel/hotel-service/internal/models"
	"github.com/quantumhotel/hotel-service/internal/utils"
)

/*
AvailabilityCache is a read-through cache for category availability searches.
Keys carry a generation counter; invalidation bumps the counter instead of
scanning for keys, so stale entries just age out via TTL.

Cache failures are never surfaced: a broken Redis degrades to querying the
store directly.
*/
type AvailabilityCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewAvailabilityCache(rdb *redis.Client) *AvailabilityCache {
	return &AvailabilityCache{rdb: rdb, ttl: constants.AvailabilityCacheTTL}
}

const availabilityGenKey = "availability:gen"

func (c *AvailabilityCache) key(ctx context.Context, from, to time.Time, persons int) string {
	gen, err := c.rdb.Get(ctx, availabilityGenKey).Int64()
	if err != nil && err != redis.Nil {
		gen = 0
	}
	return fmt.Sprintf("availability:%d:%s:%s:%d",
		gen, from.Format("2006-01-02"), to.Format("2006-01-02"), persons)
}

func (c *AvailabilityCache) Get(ctx context.Context, from, to time.Time, persons int) ([]*models.AccommodationCategory, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, c.key(ctx, from, to, persons)).Bytes()
	if err != nil {
		if err != redis.Nil {
			utils.Logger.WithError(err).Debug("Availability cache read failed")
		}
		return nil, false
	}
	var out []*models.AccommodationCategory
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, false
	}
	return out, true
}

func (c *AvailabilityCache) Set(ctx context.Context, from, to time.Time, persons int, cats []*models.AccommodationCategory) {
	if c == nil || c.rdb == nil {
		return
	}
	raw, err := json.Marshal(cats)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, c.key(ctx, from, to, persons), raw, c.ttl).Err(); err != nil {
		utils.Logger.WithError(err).Debug("Availability cache write failed")
	}
}

// Invalidate drops every cached search by bumping the generation counter.
// Called whenever a reservation is created, confirmed or has its dates moved.
func (c *AvailabilityCache) Invalidate(ctx context.Context) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Incr(ctx, availabilityGenKey).Err(); err != nil {
		utils.Logger.WithError(err).Debug("Availability cache invalidation failed")
	}
}
