package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tersoo/swiftbus/internal/core/domain"
)

func TestDecodeEventSeatUpdated(t *testing.T) {
	payload := []byte(`{"busId":"bus-1","date":"2026-09-14","seats":["S6","S7"]}`)

	ev, err := domain.DecodeEvent(domain.EventSeatUpdated, payload)
	require.NoError(t, err)

	update, ok := ev.(domain.SeatUpdated)
	require.True(t, ok)
	assert.Equal(t, "bus-1", update.BusID)
	assert.Equal(t, "2026-09-14", update.Date)
	assert.Equal(t, []string{"S6", "S7"}, update.Seats)
}

func TestDecodeEventNotificationNew(t *testing.T) {
	payload := []byte(`{"notification":{"_id":"n1","title":"Booking confirmed","message":"Your seat is secured","read":false,"createdAt":"2026-09-01T10:00:00Z"}}`)

	ev, err := domain.DecodeEvent(domain.EventNotificationNew, payload)
	require.NoError(t, err)

	n, ok := ev.(domain.NotificationNew)
	require.True(t, ok)
	assert.Equal(t, "n1", n.Notification.ID)
	assert.Equal(t, "Booking confirmed", n.Notification.Title)
	assert.False(t, n.Notification.Read)
	assert.Equal(t, time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC), n.Notification.CreatedAt)
}

func TestDecodeEventEmptyPayload(t *testing.T) {
	ev, err := domain.DecodeEvent(domain.EventNotificationsAllRead, nil)
	require.NoError(t, err)
	_, ok := ev.(domain.NotificationsAllRead)
	assert.True(t, ok)
}

func TestDecodeEventUnknownName(t *testing.T) {
	ev, err := domain.DecodeEvent("totally:unknown", []byte(`{}`))
	assert.Error(t, err)
	assert.Nil(t, ev)
}

func TestCredentialsEmpty(t *testing.T) {
	assert.True(t, domain.Credentials{}.Empty())
	assert.True(t, domain.Credentials{UserID: "u1"}.Empty())
	assert.True(t, domain.Credentials{Token: "tok"}.Empty())
	assert.False(t, domain.Credentials{UserID: "u1", Token: "tok"}.Empty())
}
