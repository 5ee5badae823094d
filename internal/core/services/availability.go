package services

import (
	"context"
	"log"
	"sync"

	"github.com/tersoo/swiftbus/internal/core/domain"
	"github.com/tersoo/swiftbus/internal/core/ports"
)

// AvailabilityCache answers "is seat X free on bus B for date D" from
// the latest server snapshot and keeps itself fresh by re-fetching
// whenever the realtime channel reports a seat update for its bus.
//
// The push payload is not trusted as a complete diff; an invalidation
// always triggers a full snapshot fetch. Responses are sequenced so a
// superseded fetch can never overwrite a newer one.
type AvailabilityCache struct {
	api      ports.BookingAPI
	busID    string
	date     string
	capacity int

	mu       sync.Mutex
	snapshot *domain.SeatMap
	nextSeq  uint64
	applied  uint64
}

func NewAvailabilityCache(api ports.BookingAPI, busID, date string, capacity int) *AvailabilityCache {
	return &AvailabilityCache{
		api:      api,
		busID:    busID,
		date:     date,
		capacity: capacity,
	}
}

// Refresh fetches a full snapshot. If a newer refresh started while
// this one was in flight, its result is discarded and the cached
// snapshot (owned by the newer request) is returned instead.
func (c *AvailabilityCache) Refresh(ctx context.Context) (*domain.SeatMap, error) {
	c.mu.Lock()
	c.nextSeq++
	seq := c.nextSeq
	c.mu.Unlock()

	booked, err := c.api.CheckSeatAvailability(ctx, c.busID, c.date)
	if err != nil {
		return nil, err
	}

	fetched := domain.NewSeatMap(c.busID, c.date, c.capacity, booked)

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq > c.applied {
		c.applied = seq
		c.snapshot = fetched
	}
	return c.snapshot, nil
}

// Snapshot returns the last applied snapshot, or nil before the first
// successful Refresh.
func (c *AvailabilityCache) Snapshot() *domain.SeatMap {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot
}

// ApplyEvent reconciles a realtime event. A seat update scoped to this
// cache's bus invalidates the snapshot and triggers a re-fetch; other
// events are ignored. Returns the fresh snapshot when a re-fetch
// happened, nil otherwise.
func (c *AvailabilityCache) ApplyEvent(ctx context.Context, ev domain.Event) (*domain.SeatMap, error) {
	update, ok := ev.(domain.SeatUpdated)
	if !ok || update.BusID != c.busID {
		return nil, nil
	}
	snapshot, err := c.Refresh(ctx)
	if err != nil {
		log.Printf("seat availability re-fetch failed for bus %s: %v", c.busID, err)
		return nil, err
	}
	return snapshot, nil
}
