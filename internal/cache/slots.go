package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/studio-beleza/salon-scheduler/internal/domain/booking"
)

// SlotCache keeps computed availability answers in redis, keyed by
// professional+date, until an appointment write invalidates them.
// Cache failures degrade to a miss; they never fail the request.
// A nil *SlotCache is a disabled cache.
type SlotCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSlotCache(addr string, ttl time.Duration) *SlotCache {
	return &SlotCache{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
		ttl: ttl,
	}
}

func slotKey(professionalID uint, date string) string {
	return fmt.Sprintf("free-slots:%d:%s", professionalID, date)
}

func (c *SlotCache) Get(ctx context.Context, professionalID uint, date string) (*booking.AvailabilityResult, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, slotKey(professionalID, date)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Println("slot cache get:", err)
		}
		return nil, false
	}

	var res booking.AvailabilityResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, false
	}
	return &res, true
}

func (c *SlotCache) Set(ctx context.Context, res *booking.AvailabilityResult) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(res)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, slotKey(res.ProfessionalID, res.Date), raw, c.ttl).Err(); err != nil {
		log.Println("slot cache set:", err)
	}
}

func (c *SlotCache) Invalidate(ctx context.Context, professionalID uint, date string) {
	if c == nil {
		return
	}

	if err := c.rdb.Del(ctx, slotKey(professionalID, date)).Err(); err != nil {
		log.Println("slot cache invalidate:", err)
	}
}
