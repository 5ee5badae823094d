package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/tersoo/swiftbus/internal/core/domain"
	"github.com/tersoo/swiftbus/internal/core/ports"
)

// Flow stage keys under which each step's output is persisted. A flow
// can resume from any prefix of these after a process restart.
const (
	stageCriteria   = "criteria"
	stageRoute      = "route"
	stageSeats      = "seats"
	stagePassengers = "passengers"
	stageDraft      = "draft"
)

type routeStagePayload struct {
	Route domain.Route `json:"route"`
	Bus   domain.Bus   `json:"bus"`
}

// BookingFlow sequences the booking pipeline: search, bus selection,
// seat selection, passenger details, draft creation, payment, receipt.
// Each step's output is persisted to the draft store so the flow is
// resumable between draft creation and payment without creating a
// duplicate draft.
type BookingFlow struct {
	routes   ports.RouteAPI
	bookings ports.BookingAPI
	payments ports.PaymentAPI
	store    ports.DraftStore
	session  ports.Session
	validate *validator.Validate

	flowID     string
	criteria   *domain.SearchCriteria
	route      *domain.Route
	bus        *domain.Bus
	seats      []string
	passengers []domain.Passenger
	draft      *domain.BookingDraft
}

func NewBookingFlow(routes ports.RouteAPI, bookings ports.BookingAPI, payments ports.PaymentAPI, store ports.DraftStore, session ports.Session) *BookingFlow {
	return &BookingFlow{
		routes:   routes,
		bookings: bookings,
		payments: payments,
		store:    store,
		session:  session,
		validate: validator.New(),
		flowID:   uuid.NewString(),
	}
}

// ResumeBookingFlow restores a flow from its persisted stages. Missing
// stages are fine; the flow resumes at the furthest step reached.
func ResumeBookingFlow(ctx context.Context, routes ports.RouteAPI, bookings ports.BookingAPI, payments ports.PaymentAPI, store ports.DraftStore, session ports.Session, flowID string) (*BookingFlow, error) {
	f := NewBookingFlow(routes, bookings, payments, store, session)
	f.flowID = flowID

	if ok, err := loadStage(ctx, store, flowID, stageCriteria, &f.criteria); err != nil || !ok {
		return f, err
	}
	var rs routeStagePayload
	if ok, err := loadStage(ctx, store, flowID, stageRoute, &rs); err != nil {
		return nil, err
	} else if ok {
		f.route, f.bus = &rs.Route, &rs.Bus
	} else {
		return f, nil
	}
	if ok, err := loadStage(ctx, store, flowID, stageSeats, &f.seats); err != nil || !ok {
		return f, err
	}
	if ok, err := loadStage(ctx, store, flowID, stagePassengers, &f.passengers); err != nil || !ok {
		return f, err
	}
	if _, err := loadStage(ctx, store, flowID, stageDraft, &f.draft); err != nil {
		return nil, err
	}
	return f, nil
}

func loadStage(ctx context.Context, store ports.DraftStore, flowID, stage string, out any) (bool, error) {
	payload, ok, err := store.LoadStage(ctx, flowID, stage)
	if err != nil {
		return false, fmt.Errorf("load %s stage: %w", stage, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return false, fmt.Errorf("decode %s stage: %w", stage, err)
	}
	return true, nil
}

func (f *BookingFlow) persistStage(ctx context.Context, stage string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s stage: %w", stage, err)
	}
	if err := f.store.SaveStage(ctx, f.flowID, stage, payload); err != nil {
		return fmt.Errorf("persist %s stage: %w", stage, err)
	}
	return nil
}

func (f *BookingFlow) FlowID() string { return f.flowID }

func (f *BookingFlow) Draft() *domain.BookingDraft { return f.draft }

// RequiredSeats is zero until search criteria have been set.
func (f *BookingFlow) RequiredSeats() int {
	if f.criteria == nil {
		return 0
	}
	return f.criteria.RequiredSeats()
}

// Search validates the criteria and returns the candidate routes:
// active routes matching source and destination that operate on the
// departure weekday.
func (f *BookingFlow) Search(ctx context.Context, criteria domain.SearchCriteria) ([]domain.Route, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	all, err := f.routes.ListRoutes(ctx)
	if err != nil {
		return nil, fmt.Errorf("search routes: %w", err)
	}

	var candidates []domain.Route
	for _, r := range all {
		if !r.IsActive {
			continue
		}
		if !r.Matches(criteria.From, criteria.To) {
			continue
		}
		if !r.OperatesOn(criteria.Departure) {
			continue
		}
		candidates = append(candidates, r)
	}

	f.criteria = &criteria
	if err := f.persistStage(ctx, stageCriteria, criteria); err != nil {
		return nil, err
	}
	return candidates, nil
}

// SelectRoute records the chosen route and its bus.
func (f *BookingFlow) SelectRoute(ctx context.Context, route domain.Route, bus domain.Bus) error {
	if f.criteria == nil {
		return &domain.ValidationError{Field: "criteria", Message: "search before selecting a route"}
	}
	f.route, f.bus = &route, &bus
	return f.persistStage(ctx, stageRoute, routeStagePayload{Route: route, Bus: bus})
}

// NewSelection starts a seat selection sized to the required passenger
// count of the current criteria.
func (f *BookingFlow) NewSelection() *Selection {
	return NewSelection(f.RequiredSeats())
}

// NewAvailabilityCache builds the seat availability cache for the
// selected bus on the departure date.
func (f *BookingFlow) NewAvailabilityCache() (*AvailabilityCache, error) {
	if f.criteria == nil || f.bus == nil {
		return nil, &domain.ValidationError{Field: "route", Message: "select a route before loading seats"}
	}
	date := f.criteria.Departure.Format(time.DateOnly)
	return NewAvailabilityCache(f.bookings, f.bus.ID, date, f.bus.Capacity), nil
}

// BusRoom is the realtime room to join while seats are on screen.
func (f *BookingFlow) BusRoom() string {
	if f.bus == nil {
		return ""
	}
	return "bus:" + f.bus.ID
}

// ConfirmSeats commits the selection after validating it against the
// given snapshot. A stale selection (seat booked elsewhere since the
// last refresh) surfaces as a ConflictError.
func (f *BookingFlow) ConfirmSeats(ctx context.Context, sel *Selection, snapshot *domain.SeatMap) error {
	if f.bus == nil {
		return &domain.ValidationError{Field: "route", Message: "select a route before confirming seats"}
	}
	if snapshot == nil || snapshot.BusID != f.bus.ID {
		return &domain.ValidationError{Field: "seats", Message: "seat snapshot does not match the selected bus"}
	}
	if err := sel.Validate(snapshot); err != nil {
		return err
	}
	f.seats = sel.Selected()
	return f.persistStage(ctx, stageSeats, f.seats)
}

// SetPassengers records one passenger per required seat. Name, email
// and phone are mandatory; age, gender and address are optional.
func (f *BookingFlow) SetPassengers(ctx context.Context, passengers []domain.Passenger) error {
	if len(f.seats) == 0 {
		return &domain.ValidationError{Field: "seats", Message: "confirm seats before passenger details"}
	}
	if len(passengers) != len(f.seats) {
		return &domain.ValidationError{
			Field:   "passengers",
			Message: fmt.Sprintf("need %d passenger records, got %d", len(f.seats), len(passengers)),
		}
	}
	for i := range passengers {
		if err := f.validate.Struct(passengers[i]); err != nil {
			return &domain.ValidationError{
				Field:   fmt.Sprintf("passenger %d", i+1),
				Message: err.Error(),
			}
		}
		passengers[i].SeatNumber = f.seats[i]
	}
	f.passengers = passengers
	return f.persistStage(ctx, stagePassengers, passengers)
}

// Submit creates the booking server-side and moves the local draft to
// Created. Submitting an already-created draft returns it unchanged so
// a resumed flow never creates a duplicate.
func (f *BookingFlow) Submit(ctx context.Context) (*domain.BookingDraft, error) {
	if f.draft != nil && f.draft.Status != domain.DraftDrafting {
		return f.draft, nil
	}
	if f.criteria == nil || f.route == nil || len(f.seats) == 0 || len(f.passengers) == 0 {
		return nil, &domain.ValidationError{Field: "flow", Message: "booking steps are incomplete"}
	}
	if err := f.session.Authenticated(); err != nil {
		return nil, err
	}

	perPerson := domain.PricePerPerson(f.route.BaseFare, f.criteria.TripType)
	draft := &domain.BookingDraft{
		FlowID:        f.flowID,
		RouteID:       f.route.ID,
		BusID:         f.bus.ID,
		TripType:      f.criteria.TripType,
		DepartureDate: f.criteria.Departure,
		OutboundSeats: f.seats,
		Passengers:    f.passengers,
		TotalFare:     domain.TotalFare(perPerson, len(f.passengers)),
		Status:        domain.DraftDrafting,
	}
	if f.criteria.TripType == domain.TripRoundTrip {
		ret := f.criteria.Return
		draft.ReturnDate = &ret
		draft.ReturnSeats = f.seats
	}

	ref, err := f.bookings.CreateBooking(ctx, draft)
	if err != nil {
		return nil, err
	}
	draft.Status = domain.DraftCreated
	draft.BookingID = ref.ID
	draft.BookingNumber = ref.Number

	f.draft = draft
	if err := f.persistStage(ctx, stageDraft, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// InitializePayment hands the amount and billing identity of the lead
// passenger to the payment collaborator and returns the provider
// reference.
func (f *BookingFlow) InitializePayment(ctx context.Context) (string, error) {
	if f.draft == nil || f.draft.Status != domain.DraftCreated {
		return "", &domain.ValidationError{Field: "draft", Message: "submit the booking before payment"}
	}
	lead := f.draft.Passengers[0]
	name := lead.FirstName + " " + lead.LastName
	return f.payments.InitializePayment(ctx, f.draft.TotalFare, lead.Email, name, lead.Phone)
}

// Pay verifies a provider callback reference against the backend. Only
// a success verification promotes the draft to Paid; anything else
// leaves it Created and resumable.
func (f *BookingFlow) Pay(ctx context.Context, reference string) error {
	if f.draft == nil || f.draft.Status != domain.DraftCreated {
		return &domain.ValidationError{Field: "draft", Message: "no created booking awaiting payment"}
	}
	ok, err := f.payments.VerifyPayment(ctx, reference, f.draft.BookingID)
	if err != nil {
		return err
	}
	if !ok {
		return &domain.ServerError{Message: "payment verification did not succeed"}
	}
	f.draft.Status = domain.DraftPaid
	return f.persistStage(ctx, stageDraft, f.draft)
}

// AbandonPayment records that the user walked away from the provider.
// The draft stays Created server-side and the flow remains resumable;
// this is a recoverable state, not an error.
func (f *BookingFlow) AbandonPayment() {
	if f.draft != nil && f.draft.Status == domain.DraftCreated {
		log.Printf("payment abandoned for booking %s, flow %s remains resumable", f.draft.BookingNumber, f.flowID)
	}
}

// Receipt fetches the generated ticket artifact for a paid booking.
func (f *BookingFlow) Receipt(ctx context.Context) (*domain.Ticket, error) {
	if f.draft == nil || f.draft.Status != domain.DraftPaid {
		return nil, &domain.ValidationError{Field: "draft", Message: "receipt is only available after payment"}
	}
	return f.bookings.GetBookingReceipt(ctx, f.draft.BookingID)
}

// Cancel cancels a created booking server-side, marks the draft Failed
// and clears the persisted flow state.
func (f *BookingFlow) Cancel(ctx context.Context) error {
	if f.draft != nil && f.draft.BookingID != "" && f.draft.Status == domain.DraftCreated {
		if err := f.bookings.CancelBooking(ctx, f.draft.BookingID); err != nil {
			return err
		}
		f.draft.Status = domain.DraftFailed
	}
	return f.store.DeleteFlow(ctx, f.flowID)
}
