package api

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/tersoo/swiftbus/internal/core/domain"
)

type createBookingRequest struct {
	Bus           string              `json:"bus"`
	Route         string              `json:"route"`
	BookingType   domain.TripType     `json:"bookingType"`
	SelectedSeats map[string][]string `json:"selectedSeats"`
	Passengers    []passengerJSON     `json:"passengers"`
	DepartureDate string              `json:"departureDate"`
	ReturnDate    string              `json:"returnDate,omitempty"`
	TotalFare     float64             `json:"totalFare"`
}

type passengerJSON struct {
	Name       string `json:"name"`
	Age        int    `json:"age"`
	Gender     string `json:"gender"`
	SeatNumber string `json:"seatNumber"`
}

type createdJSON struct {
	ID            string `json:"_id"`
	BookingNumber string `json:"bookingNumber,omitempty"`
	HiringNumber  string `json:"hiringNumber,omitempty"`
}

func (c *Client) CheckSeatAvailability(ctx context.Context, busID, date string) ([]string, error) {
	query := url.Values{}
	query.Set("busId", busID)
	query.Set("date", date)

	var data struct {
		BookedSeats []string `json:"bookedSeats"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/bookings/check-availability", query, nil, &data); err != nil {
		return nil, err
	}
	return data.BookedSeats, nil
}

func (c *Client) CreateBooking(ctx context.Context, draft *domain.BookingDraft) (*domain.CreatedRef, error) {
	req := createBookingRequest{
		Bus:         draft.BusID,
		Route:       draft.RouteID,
		BookingType: draft.TripType,
		SelectedSeats: map[string][]string{
			"outbound": draft.OutboundSeats,
			"return":   draft.ReturnSeats,
		},
		DepartureDate: draft.DepartureDate.Format(time.RFC3339),
		TotalFare:     draft.TotalFare,
	}
	if draft.ReturnDate != nil {
		req.ReturnDate = draft.ReturnDate.Format(time.RFC3339)
	}
	for _, p := range draft.Passengers {
		req.Passengers = append(req.Passengers, passengerJSON{
			Name:       p.FirstName + " " + p.LastName,
			Age:        p.Age,
			Gender:     p.Gender,
			SeatNumber: p.SeatNumber,
		})
	}

	var created createdJSON
	if err := c.doJSON(ctx, http.MethodPost, "/bookings", nil, req, &created); err != nil {
		return nil, err
	}
	return &domain.CreatedRef{ID: created.ID, Number: created.BookingNumber}, nil
}

func (c *Client) CancelBooking(ctx context.Context, bookingID string) error {
	return c.doJSON(ctx, http.MethodDelete, "/bookings/"+bookingID, nil, nil, nil)
}

func (c *Client) GetBookingReceipt(ctx context.Context, bookingID string) (*domain.Ticket, error) {
	return c.getReceipt(ctx, "/bookings/"+bookingID+"/receipt")
}

type ticketJSON struct {
	Reference string            `json:"reference"`
	QRPayload string            `json:"qrCode"`
	IssuedAt  time.Time         `json:"issuedAt"`
	Fields    map[string]string `json:"fields"`
}

func (c *Client) getReceipt(ctx context.Context, path string) (*domain.Ticket, error) {
	var raw ticketJSON
	if err := c.doJSON(ctx, http.MethodGet, path, nil, nil, &raw); err != nil {
		return nil, err
	}
	return &domain.Ticket{
		Reference: raw.Reference,
		QRPayload: raw.QRPayload,
		IssuedAt:  raw.IssuedAt,
		Fields:    raw.Fields,
	}, nil
}
