package ports

import (
	"context"
	"time"

	"github.com/tersoo/swiftbus/internal/core/domain"
)

type RouteAPI interface {
	ListRoutes(ctx context.Context) ([]domain.Route, error)
	ListLocations(ctx context.Context) ([]domain.Location, error)
}

type BookingAPI interface {
	// CheckSeatAvailability returns the booked seat ids for a bus on a
	// service date (YYYY-MM-DD).
	CheckSeatAvailability(ctx context.Context, busID, date string) ([]string, error)
	CreateBooking(ctx context.Context, draft *domain.BookingDraft) (*domain.CreatedRef, error)
	CancelBooking(ctx context.Context, bookingID string) error
	GetBookingReceipt(ctx context.Context, bookingID string) (*domain.Ticket, error)
}

type HiringAPI interface {
	CheckHiringAvailability(ctx context.Context, start, end time.Time) (*domain.HiringAvailability, error)
	CalculateHiringCost(ctx context.Context, draft *domain.HiringDraft) (float64, error)
	CreateHiring(ctx context.Context, draft *domain.HiringDraft) (*domain.CreatedRef, error)
	CancelHiring(ctx context.Context, hiringID string) error
	GetHiringReceipt(ctx context.Context, hiringID string) (*domain.Ticket, error)
}

type PaymentAPI interface {
	// InitializePayment hands amount and billing identity to the
	// payment collaborator and returns the provider reference.
	InitializePayment(ctx context.Context, amount float64, email, name, phone string) (string, error)
	// VerifyPayment confirms a provider callback reference against the
	// backend. Only a success result promotes a draft to paid.
	VerifyPayment(ctx context.Context, reference, draftID string) (bool, error)
}

// DraftStore is the durable local key-value store that lets a flow
// survive a process restart between steps. Stage payloads are opaque
// JSON owned by the flow that wrote them.
type DraftStore interface {
	SaveStage(ctx context.Context, flowID, stage string, payload []byte) error
	LoadStage(ctx context.Context, flowID, stage string) ([]byte, bool, error)
	DeleteFlow(ctx context.Context, flowID string) error
	SaveToken(ctx context.Context, token string) error
	LoadToken(ctx context.Context) (string, error)
	ClearToken(ctx context.Context) error
}

// Session is the injected auth state handed to flows; it replaces any
// ambient singleton so the flows stay testable in isolation.
type Session interface {
	UserID() string
	Token() string
	// Authenticated returns an AuthError when the token is missing or
	// expired.
	Authenticated() error
	Credentials() domain.Credentials
}

// RealtimeChannel is one authenticated bidirectional connection
// multiplexing logical rooms. Implementations never auto-rejoin rooms
// after a reconnect; callers watch States and re-subscribe.
type RealtimeChannel interface {
	Connect(ctx context.Context, creds domain.Credentials) error
	Close() error
	JoinRoom(room string) error
	LeaveRoom(room string) error
	Emit(event string, payload any) error
	Events() <-chan domain.Event
	States() <-chan domain.ChannelState
	State() domain.ChannelState
}
