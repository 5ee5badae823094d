package services

import (
	"sort"
	"sync"

	"github.com/tersoo/swiftbus/internal/core/domain"
	"github.com/tersoo/swiftbus/internal/core/ports"
)

// Notifications keeps the user's notification list current from
// realtime events and pushes read/delete intents back over the
// channel. It is injected into whatever needs it rather than living
// as a global store.
type Notifications struct {
	channel ports.RealtimeChannel

	mu   sync.Mutex
	list map[string]domain.Notification
}

func NewNotifications(channel ports.RealtimeChannel) *Notifications {
	return &Notifications{
		channel: channel,
		list:    make(map[string]domain.Notification),
	}
}

// Apply folds a realtime event into the local list. Non-notification
// events are ignored and reported as unhandled.
func (n *Notifications) Apply(ev domain.Event) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	switch e := ev.(type) {
	case domain.NotificationNew:
		n.list[e.Notification.ID] = e.Notification
	case domain.NotificationRead:
		if item, ok := n.list[e.NotificationID]; ok {
			item.Read = true
			n.list[e.NotificationID] = item
		}
	case domain.NotificationsAllRead:
		for id, item := range n.list {
			item.Read = true
			n.list[id] = item
		}
	case domain.NotificationDeleted:
		delete(n.list, e.NotificationID)
	default:
		return false
	}
	return true
}

// MarkRead updates local state optimistically and emits the read
// intent; the server's notification:read broadcast confirms it.
func (n *Notifications) MarkRead(notificationID string) error {
	n.mu.Lock()
	if item, ok := n.list[notificationID]; ok {
		item.Read = true
		n.list[notificationID] = item
	}
	n.mu.Unlock()
	return n.channel.Emit(domain.EventNotificationRead, notificationID)
}

func (n *Notifications) Unread() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	count := 0
	for _, item := range n.list {
		if !item.Read {
			count++
		}
	}
	return count
}

// List returns notifications newest first.
func (n *Notifications) List() []domain.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]domain.Notification, 0, len(n.list))
	for _, item := range n.list {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
