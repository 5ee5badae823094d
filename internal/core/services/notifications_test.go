package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tersoo/swiftbus/internal/core/domain"
	"github.com/tersoo/swiftbus/internal/core/ports/mocks"
	"github.com/tersoo/swiftbus/internal/core/services"
)

func notification(id, title string, createdAt time.Time) domain.Notification {
	return domain.Notification{ID: id, Title: title, CreatedAt: createdAt}
}

func TestNotificationsApply(t *testing.T) {
	n := services.NewNotifications(mocks.NewRealtimeChannel(t))
	now := time.Now()

	assert.True(t, n.Apply(domain.NotificationNew{Notification: notification("n1", "Booking confirmed", now)}))
	assert.True(t, n.Apply(domain.NotificationNew{Notification: notification("n2", "Bus departing soon", now.Add(time.Minute))}))
	assert.Equal(t, 2, n.Unread())

	assert.True(t, n.Apply(domain.NotificationRead{NotificationID: "n1"}))
	assert.Equal(t, 1, n.Unread())

	assert.True(t, n.Apply(domain.NotificationsAllRead{}))
	assert.Equal(t, 0, n.Unread())

	assert.True(t, n.Apply(domain.NotificationDeleted{NotificationID: "n2"}))
	assert.Len(t, n.List(), 1)

	// Non-notification events are reported as unhandled.
	assert.False(t, n.Apply(domain.SeatUpdated{BusID: "bus-1"}))
}

func TestNotificationsListNewestFirst(t *testing.T) {
	n := services.NewNotifications(mocks.NewRealtimeChannel(t))
	now := time.Now()

	n.Apply(domain.NotificationNew{Notification: notification("older", "a", now.Add(-time.Hour))})
	n.Apply(domain.NotificationNew{Notification: notification("newer", "b", now)})

	list := n.List()
	assert.Equal(t, []string{"newer", "older"}, []string{list[0].ID, list[1].ID})
}

func TestNotificationsMarkRead(t *testing.T) {
	channel := mocks.NewRealtimeChannel(t)
	n := services.NewNotifications(channel)

	n.Apply(domain.NotificationNew{Notification: notification("n1", "Booking confirmed", time.Now())})

	channel.On("Emit", domain.EventNotificationRead, "n1").Return(nil).Once()
	assert.NoError(t, n.MarkRead("n1"))

	// Optimistic local update; no server round-trip needed to reflect
	// the read state.
	assert.Equal(t, 0, n.Unread())
}
