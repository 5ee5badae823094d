package services_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tersoo/swiftbus/internal/core/domain"
	"github.com/tersoo/swiftbus/internal/core/ports/mocks"
	"github.com/tersoo/swiftbus/internal/core/services"
)

func TestAvailabilityRefresh(t *testing.T) {
	api := mocks.NewBookingAPI(t)
	cache := services.NewAvailabilityCache(api, "bus-1", "2026-09-14", 25)

	ctx := context.Background()
	api.On("CheckSeatAvailability", ctx, "bus-1", "2026-09-14").Return([]string{"S1", "S4"}, nil).Once()

	snapshot, err := cache.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"S1", "S4"}, snapshot.BookedSeats())
	assert.True(t, snapshot.IsBooked("S1"))
	assert.False(t, snapshot.IsBooked("S2"))
	assert.Same(t, snapshot, cache.Snapshot())
}

func TestAvailabilityApplyEventRefetches(t *testing.T) {
	api := mocks.NewBookingAPI(t)
	cache := services.NewAvailabilityCache(api, "bus-1", "2026-09-14", 25)

	ctx := context.Background()
	api.On("CheckSeatAvailability", ctx, "bus-1", "2026-09-14").Return([]string{"S1"}, nil).Once()
	_, err := cache.Refresh(ctx)
	require.NoError(t, err)

	// A seat update for this bus invalidates the snapshot; the cache
	// re-fetches instead of patching from the push payload.
	api.On("CheckSeatAvailability", ctx, "bus-1", "2026-09-14").Return([]string{"S1", "S6"}, nil).Once()
	snapshot, err := cache.ApplyEvent(ctx, domain.SeatUpdated{BusID: "bus-1", Seats: []string{"S6"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"S1", "S6"}, snapshot.BookedSeats())
}

func TestAvailabilityApplyEventIgnoresOtherBuses(t *testing.T) {
	api := mocks.NewBookingAPI(t)
	cache := services.NewAvailabilityCache(api, "bus-1", "2026-09-14", 25)

	snapshot, err := cache.ApplyEvent(context.Background(), domain.SeatUpdated{BusID: "bus-99"})
	assert.NoError(t, err)
	assert.Nil(t, snapshot)

	snapshot, err = cache.ApplyEvent(context.Background(), domain.NotificationsAllRead{})
	assert.NoError(t, err)
	assert.Nil(t, snapshot)

	api.AssertNotCalled(t, "CheckSeatAvailability", mock.Anything, mock.Anything, mock.Anything)
}

func TestAvailabilityStaleResponseDiscarded(t *testing.T) {
	api := mocks.NewBookingAPI(t)
	cache := services.NewAvailabilityCache(api, "bus-1", "2026-09-14", 25)

	ctx := context.Background()
	firstStarted := make(chan struct{})
	release := make(chan struct{})

	// The first fetch stalls until the second one has been applied.
	api.On("CheckSeatAvailability", ctx, "bus-1", "2026-09-14").
		Return(func(context.Context, string, string) ([]string, error) {
			close(firstStarted)
			<-release
			return []string{"S1"}, nil
		}).Once()
	api.On("CheckSeatAvailability", ctx, "bus-1", "2026-09-14").
		Return([]string{"S1", "S2"}, nil).Once()

	var wg sync.WaitGroup
	wg.Add(1)
	var firstSnapshot *domain.SeatMap
	go func() {
		defer wg.Done()
		firstSnapshot, _ = cache.Refresh(ctx)
	}()

	<-firstStarted
	second, err := cache.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"S1", "S2"}, second.BookedSeats())

	close(release)
	wg.Wait()

	// The slower response never overwrote the newer snapshot.
	assert.Equal(t, []string{"S1", "S2"}, firstSnapshot.BookedSeats())
	assert.Equal(t, []string{"S1", "S2"}, cache.Snapshot().BookedSeats())
}
