package services_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tersoo/swiftbus/internal/core/domain"
	"github.com/tersoo/swiftbus/internal/core/ports/mocks"
	"github.com/tersoo/swiftbus/internal/core/services"
)

// 2026-09-14 is a Monday.
var departure = time.Date(2026, 9, 14, 8, 0, 0, 0, time.UTC)

func bookingCriteria() domain.SearchCriteria {
	return domain.SearchCriteria{
		From:      "Lagos",
		To:        "Abuja",
		Departure: departure,
		TripType:  domain.TripOneWay,
		Adults:    1,
		Children:  1,
	}
}

func lagosAbujaRoute() domain.Route {
	return domain.Route{
		ID:            "route-1",
		Source:        "Lagos",
		Destination:   "Abuja",
		OperatingDays: []string{"Monday", "Friday"},
		BaseFare:      12000,
		IsActive:      true,
		BusID:         "bus-1",
	}
}

func testBus() domain.Bus {
	return domain.Bus{ID: "bus-1", BusNumber: "SW-014", Type: "Luxury", Capacity: 25}
}

func testPassengers() []domain.Passenger {
	return []domain.Passenger{
		{FirstName: "Ada", LastName: "Obi", Email: "ada@example.com", Phone: "+2348012345678"},
		{FirstName: "Ngozi", LastName: "Obi", Email: "ngozi@example.com", Phone: "+2348012345679"},
		{FirstName: "Emeka", LastName: "Obi", Email: "emeka@example.com", Phone: "+2348012345680"},
	}
}

func TestBookingSearchFiltersRoutes(t *testing.T) {
	routes := mocks.NewRouteAPI(t)
	store := mocks.NewDraftStore(t)
	flow := services.NewBookingFlow(routes, mocks.NewBookingAPI(t), mocks.NewPaymentAPI(t), store, mocks.NewSession(t))

	ctx := context.Background()
	match := lagosAbujaRoute()
	inactive := lagosAbujaRoute()
	inactive.ID, inactive.IsActive = "route-2", false
	wrongCities := lagosAbujaRoute()
	wrongCities.ID, wrongCities.Destination = "route-3", "Kano"
	wrongDay := lagosAbujaRoute()
	wrongDay.ID, wrongDay.OperatingDays = "route-4", []string{"Sunday"}

	routes.On("ListRoutes", ctx).Return([]domain.Route{inactive, wrongCities, wrongDay, match}, nil).Once()
	store.On("SaveStage", ctx, flow.FlowID(), "criteria", mock.Anything).Return(nil).Once()

	candidates, err := flow.Search(ctx, bookingCriteria())
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "route-1", candidates[0].ID)
	assert.Equal(t, 3, flow.RequiredSeats())
}

func TestBookingSearchRejectsInvalidCriteria(t *testing.T) {
	flow := services.NewBookingFlow(mocks.NewRouteAPI(t), mocks.NewBookingAPI(t), mocks.NewPaymentAPI(t), mocks.NewDraftStore(t), mocks.NewSession(t))

	criteria := bookingCriteria()
	criteria.To = " LAGOS "

	_, err := flow.Search(context.Background(), criteria)
	assert.True(t, domain.IsValidation(err))
}

// searchAndSelect drives a flow through search and route selection.
func searchAndSelect(t *testing.T, flow *services.BookingFlow, routes *mocks.RouteAPI, store *mocks.DraftStore) {
	t.Helper()
	ctx := context.Background()
	routes.On("ListRoutes", ctx).Return([]domain.Route{lagosAbujaRoute()}, nil).Once()
	store.On("SaveStage", ctx, flow.FlowID(), "criteria", mock.Anything).Return(nil).Once()
	_, err := flow.Search(ctx, bookingCriteria())
	require.NoError(t, err)

	store.On("SaveStage", ctx, flow.FlowID(), "route", mock.Anything).Return(nil).Once()
	require.NoError(t, flow.SelectRoute(ctx, lagosAbujaRoute(), testBus()))
}

func TestBookingConfirmSeatsConflict(t *testing.T) {
	routes := mocks.NewRouteAPI(t)
	store := mocks.NewDraftStore(t)
	flow := services.NewBookingFlow(routes, mocks.NewBookingAPI(t), mocks.NewPaymentAPI(t), store, mocks.NewSession(t))
	searchAndSelect(t, flow, routes, store)

	clean := domain.NewSeatMap("bus-1", "2026-09-14", 25, nil)
	sel := flow.NewSelection()
	sel.Toggle("S6", clean)
	sel.Toggle("S7", clean)
	sel.Toggle("S8", clean)

	// S6 was booked elsewhere between selection and confirmation.
	refreshed := domain.NewSeatMap("bus-1", "2026-09-14", 25, []string{"S6"})
	err := flow.ConfirmSeats(context.Background(), sel, refreshed)
	assert.True(t, domain.IsConflict(err))
}

func TestBookingConfirmSeatsWrongBusSnapshot(t *testing.T) {
	routes := mocks.NewRouteAPI(t)
	store := mocks.NewDraftStore(t)
	flow := services.NewBookingFlow(routes, mocks.NewBookingAPI(t), mocks.NewPaymentAPI(t), store, mocks.NewSession(t))
	searchAndSelect(t, flow, routes, store)

	other := domain.NewSeatMap("bus-99", "2026-09-14", 25, nil)
	err := flow.ConfirmSeats(context.Background(), flow.NewSelection(), other)
	assert.True(t, domain.IsValidation(err))
}

func TestBookingSetPassengersCountMismatch(t *testing.T) {
	routes := mocks.NewRouteAPI(t)
	store := mocks.NewDraftStore(t)
	flow := services.NewBookingFlow(routes, mocks.NewBookingAPI(t), mocks.NewPaymentAPI(t), store, mocks.NewSession(t))
	searchAndSelect(t, flow, routes, store)

	ctx := context.Background()
	snapshot := domain.NewSeatMap("bus-1", "2026-09-14", 25, nil)
	sel := flow.NewSelection()
	sel.Toggle("S6", snapshot)
	sel.Toggle("S7", snapshot)
	sel.Toggle("S8", snapshot)
	store.On("SaveStage", ctx, flow.FlowID(), "seats", mock.Anything).Return(nil).Once()
	require.NoError(t, flow.ConfirmSeats(ctx, sel, snapshot))

	err := flow.SetPassengers(ctx, testPassengers()[:2])
	assert.True(t, domain.IsValidation(err))
}

func readyFlow(t *testing.T) (*services.BookingFlow, *mocks.BookingAPI, *mocks.PaymentAPI, *mocks.DraftStore, *mocks.Session) {
	t.Helper()
	routes := mocks.NewRouteAPI(t)
	bookings := mocks.NewBookingAPI(t)
	payments := mocks.NewPaymentAPI(t)
	store := mocks.NewDraftStore(t)
	session := mocks.NewSession(t)
	flow := services.NewBookingFlow(routes, bookings, payments, store, session)
	searchAndSelect(t, flow, routes, store)

	ctx := context.Background()
	snapshot := domain.NewSeatMap("bus-1", "2026-09-14", 25, nil)
	sel := flow.NewSelection()
	sel.Toggle("S6", snapshot)
	sel.Toggle("S7", snapshot)
	sel.Toggle("S8", snapshot)
	store.On("SaveStage", ctx, flow.FlowID(), "seats", mock.Anything).Return(nil).Once()
	require.NoError(t, flow.ConfirmSeats(ctx, sel, snapshot))

	store.On("SaveStage", ctx, flow.FlowID(), "passengers", mock.Anything).Return(nil).Once()
	require.NoError(t, flow.SetPassengers(ctx, testPassengers()))

	return flow, bookings, payments, store, session
}

func TestBookingSubmit(t *testing.T) {
	flow, bookings, _, store, session := readyFlow(t)
	ctx := context.Background()

	session.On("Authenticated").Return(nil).Once()
	bookings.On("CreateBooking", ctx, mock.AnythingOfType("*domain.BookingDraft")).
		Return(&domain.CreatedRef{ID: "bk-1", Number: "BK-1001"}, nil).Once()
	store.On("SaveStage", ctx, flow.FlowID(), "draft", mock.Anything).Return(nil).Once()

	draft, err := flow.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DraftCreated, draft.Status)
	assert.Equal(t, "bk-1", draft.BookingID)
	assert.Equal(t, "BK-1001", draft.BookingNumber)
	assert.InDelta(t, 36000.0, draft.TotalFare, 1e-9)
	assert.Equal(t, []string{"S6", "S7", "S8"}, draft.OutboundSeats)
	assert.Equal(t, "S6", draft.Passengers[0].SeatNumber)
	assert.Nil(t, draft.ReturnDate)
}

func TestBookingSubmitRequiresAuth(t *testing.T) {
	flow, _, _, _, session := readyFlow(t)

	session.On("Authenticated").Return(&domain.AuthError{Reason: "not signed in"}).Once()

	_, err := flow.Submit(context.Background())
	assert.True(t, domain.IsAuth(err))
}

func TestBookingResumeDoesNotDuplicateDraft(t *testing.T) {
	routes := mocks.NewRouteAPI(t)
	bookings := mocks.NewBookingAPI(t)
	store := mocks.NewDraftStore(t)
	ctx := context.Background()

	criteria := bookingCriteria()
	route, bus := lagosAbujaRoute(), testBus()
	seats := []string{"S6", "S7", "S8"}
	passengers := testPassengers()
	created := &domain.BookingDraft{
		FlowID:        "flow-1",
		RouteID:       route.ID,
		BusID:         bus.ID,
		Status:        domain.DraftCreated,
		BookingID:     "bk-1",
		BookingNumber: "BK-1001",
		OutboundSeats: seats,
		Passengers:    passengers,
		TotalFare:     36000,
	}

	stage := func(v any) []byte {
		payload, err := json.Marshal(v)
		require.NoError(t, err)
		return payload
	}
	store.On("LoadStage", ctx, "flow-1", "criteria").Return(stage(criteria), true, nil).Once()
	store.On("LoadStage", ctx, "flow-1", "route").Return(stage(map[string]any{"route": route, "bus": bus}), true, nil).Once()
	store.On("LoadStage", ctx, "flow-1", "seats").Return(stage(seats), true, nil).Once()
	store.On("LoadStage", ctx, "flow-1", "passengers").Return(stage(passengers), true, nil).Once()
	store.On("LoadStage", ctx, "flow-1", "draft").Return(stage(created), true, nil).Once()

	flow, err := services.ResumeBookingFlow(ctx, routes, bookings, mocks.NewPaymentAPI(t), store, mocks.NewSession(t), "flow-1")
	require.NoError(t, err)
	assert.Equal(t, "flow-1", flow.FlowID())

	// Submitting an already-created draft returns it as-is; no second
	// server-side booking is created.
	draft, err := flow.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, "bk-1", draft.BookingID)
	bookings.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
}

func TestBookingResumeEmptyFlow(t *testing.T) {
	store := mocks.NewDraftStore(t)
	ctx := context.Background()
	store.On("LoadStage", ctx, "flow-2", "criteria").Return(nil, false, nil).Once()

	flow, err := services.ResumeBookingFlow(ctx, mocks.NewRouteAPI(t), mocks.NewBookingAPI(t), mocks.NewPaymentAPI(t), store, mocks.NewSession(t), "flow-2")
	require.NoError(t, err)
	assert.Equal(t, 0, flow.RequiredSeats())
	assert.Nil(t, flow.Draft())
}

func TestBookingPayAndReceipt(t *testing.T) {
	flow, bookings, payments, store, session := readyFlow(t)
	ctx := context.Background()

	session.On("Authenticated").Return(nil).Once()
	bookings.On("CreateBooking", ctx, mock.Anything).Return(&domain.CreatedRef{ID: "bk-1", Number: "BK-1001"}, nil).Once()
	store.On("SaveStage", ctx, flow.FlowID(), "draft", mock.Anything).Return(nil).Times(2)
	_, err := flow.Submit(ctx)
	require.NoError(t, err)

	// Receipt before payment is refused.
	_, err = flow.Receipt(ctx)
	assert.True(t, domain.IsValidation(err))

	payments.On("InitializePayment", ctx, 36000.0, "ada@example.com", "Ada Obi", "+2348012345678").
		Return("PSK-REF-1", nil).Once()
	reference, err := flow.InitializePayment(ctx)
	require.NoError(t, err)
	assert.Equal(t, "PSK-REF-1", reference)

	payments.On("VerifyPayment", ctx, "PSK-REF-1", "bk-1").Return(true, nil).Once()
	require.NoError(t, flow.Pay(ctx, "PSK-REF-1"))
	assert.Equal(t, domain.DraftPaid, flow.Draft().Status)

	ticket := &domain.Ticket{Reference: "BK-1001", QRPayload: "qr-data"}
	bookings.On("GetBookingReceipt", ctx, "bk-1").Return(ticket, nil).Once()
	got, err := flow.Receipt(ctx)
	require.NoError(t, err)
	assert.Equal(t, ticket, got)
}

func TestBookingPayFailureKeepsDraftCreated(t *testing.T) {
	flow, bookings, payments, store, session := readyFlow(t)
	ctx := context.Background()

	session.On("Authenticated").Return(nil).Once()
	bookings.On("CreateBooking", ctx, mock.Anything).Return(&domain.CreatedRef{ID: "bk-1", Number: "BK-1001"}, nil).Once()
	store.On("SaveStage", ctx, flow.FlowID(), "draft", mock.Anything).Return(nil).Once()
	_, err := flow.Submit(ctx)
	require.NoError(t, err)

	payments.On("VerifyPayment", ctx, "bad-ref", "bk-1").
		Return(false, &domain.ServerError{StatusCode: 402, Message: "payment not completed"}).Once()

	err = flow.Pay(ctx, "bad-ref")
	assert.True(t, domain.IsServer(err))
	assert.Equal(t, domain.DraftCreated, flow.Draft().Status)

	flow.AbandonPayment()
	assert.Equal(t, domain.DraftCreated, flow.Draft().Status)
}

func TestBookingCancel(t *testing.T) {
	flow, bookings, _, store, session := readyFlow(t)
	ctx := context.Background()

	session.On("Authenticated").Return(nil).Once()
	bookings.On("CreateBooking", ctx, mock.Anything).Return(&domain.CreatedRef{ID: "bk-1", Number: "BK-1001"}, nil).Once()
	store.On("SaveStage", ctx, flow.FlowID(), "draft", mock.Anything).Return(nil).Once()
	_, err := flow.Submit(ctx)
	require.NoError(t, err)

	bookings.On("CancelBooking", ctx, "bk-1").Return(nil).Once()
	store.On("DeleteFlow", ctx, flow.FlowID()).Return(nil).Once()

	require.NoError(t, flow.Cancel(ctx))
	assert.Equal(t, domain.DraftFailed, flow.Draft().Status)
}
