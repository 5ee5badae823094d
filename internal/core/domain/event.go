package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Realtime event names as emitted by the backend channel.
const (
	EventSeatUpdated          = "seat-updated"
	EventNotificationNew      = "notification:new"
	EventNotificationRead     = "notification:read"
	EventNotificationsAllRead = "notifications:allRead"
	EventNotificationDeleted  = "notification:deleted"
	EventBookingStatus        = "booking:statusUpdate"
	EventPaymentStatus        = "payment:statusUpdate"
	EventBusLocation          = "bus:locationUpdate"
)

// Event is the closed union of realtime events. Decoding produces
// exactly one of the concrete types below; unknown event names are an
// error at the decode boundary, never a silent drop downstream.
type Event interface {
	eventName() string
}

type SeatUpdated struct {
	BusID string   `json:"busId"`
	Date  string   `json:"date,omitempty"`
	Seats []string `json:"seats,omitempty"`
}

type Notification struct {
	ID        string    `json:"_id"`
	Title     string    `json:"title"`
	Body      string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

type NotificationNew struct {
	Notification Notification `json:"notification"`
}

type NotificationRead struct {
	NotificationID string `json:"notificationId"`
}

type NotificationsAllRead struct{}

type NotificationDeleted struct {
	NotificationID string `json:"notificationId"`
}

type BookingStatusUpdate struct {
	BookingID string `json:"bookingId"`
	Status    string `json:"status"`
}

type PaymentStatusUpdate struct {
	Reference string `json:"reference"`
	BookingID string `json:"bookingId,omitempty"`
	HiringID  string `json:"hiringId,omitempty"`
	Status    string `json:"status"`
}

type BusLocationUpdate struct {
	BusID     string  `json:"busId"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (SeatUpdated) eventName() string          { return EventSeatUpdated }
func (NotificationNew) eventName() string      { return EventNotificationNew }
func (NotificationRead) eventName() string     { return EventNotificationRead }
func (NotificationsAllRead) eventName() string { return EventNotificationsAllRead }
func (NotificationDeleted) eventName() string  { return EventNotificationDeleted }
func (BookingStatusUpdate) eventName() string  { return EventBookingStatus }
func (PaymentStatusUpdate) eventName() string  { return EventPaymentStatus }
func (BusLocationUpdate) eventName() string    { return EventBusLocation }

// DecodeEvent maps a wire event name and JSON payload onto the typed
// union. The single switch here is the only place event names are
// interpreted.
func DecodeEvent(name string, payload []byte) (Event, error) {
	if len(payload) == 0 {
		payload = []byte("{}")
	}
	switch name {
	case EventSeatUpdated:
		var ev SeatUpdated
		return ev, json.Unmarshal(payload, &ev)
	case EventNotificationNew:
		var ev NotificationNew
		return ev, json.Unmarshal(payload, &ev)
	case EventNotificationRead:
		var ev NotificationRead
		return ev, json.Unmarshal(payload, &ev)
	case EventNotificationsAllRead:
		return NotificationsAllRead{}, nil
	case EventNotificationDeleted:
		var ev NotificationDeleted
		return ev, json.Unmarshal(payload, &ev)
	case EventBookingStatus:
		var ev BookingStatusUpdate
		return ev, json.Unmarshal(payload, &ev)
	case EventPaymentStatus:
		var ev PaymentStatusUpdate
		return ev, json.Unmarshal(payload, &ev)
	case EventBusLocation:
		var ev BusLocationUpdate
		return ev, json.Unmarshal(payload, &ev)
	default:
		return nil, fmt.Errorf("unknown realtime event %q", name)
	}
}

// Credentials authenticate the realtime channel after transport-level
// connect. An empty pair means no connection is ever opened.
type Credentials struct {
	UserID string `json:"userId"`
	Token  string `json:"token"`
}

func (c Credentials) Empty() bool {
	return c.UserID == "" || c.Token == ""
}

type ChannelState string

const (
	ChannelDisconnected ChannelState = "DISCONNECTED"
	ChannelConnecting   ChannelState = "CONNECTING"
	ChannelConnected    ChannelState = "CONNECTED"
)
