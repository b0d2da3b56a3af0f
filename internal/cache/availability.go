package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/louk-2005/AppointmentSite/internal/models"
)

const availabilityTTL = 2 * time.Minute

// AvailabilityCache keeps per-(salon, date) available-slot listings in
// redis. Every mutating schedule operation invalidates the affected
// date. A nil cache is a no-op, so the cache stays optional.
type AvailabilityCache struct {
	rdb *redis.Client
}

func NewAvailabilityCache(rdb *redis.Client) *AvailabilityCache {
	return &AvailabilityCache{rdb: rdb}
}

func key(salonID uint, date time.Time) string {
	return fmt.Sprintf("availability:%d:%s", salonID, date.Format("2006-01-02"))
}

func (c *AvailabilityCache) Get(
	ctx context.Context,
	salonID uint,
	date time.Time,
) ([]models.TimeSlot, bool) {

	if c == nil || c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, key(salonID, date)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Println("availability cache read:", err)
		}
		return nil, false
	}

	var slots []models.TimeSlot
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *AvailabilityCache) Set(
	ctx context.Context,
	salonID uint,
	date time.Time,
	slots []models.TimeSlot,
) {

	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, key(salonID, date), raw, availabilityTTL).Err(); err != nil {
		log.Println("availability cache write:", err)
	}
}

func (c *AvailabilityCache) Invalidate(
	ctx context.Context,
	salonID uint,
	date time.Time,
) {

	if c == nil || c.rdb == nil {
		return
	}

	if err := c.rdb.Del(ctx, key(salonID, date)).Err(); err != nil {
		log.Println("availability cache invalidate:", err)
	}
}
