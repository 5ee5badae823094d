package domain

import "time"

type TripType string

const (
	TripOneWay    TripType = "One-Way"
	TripRoundTrip TripType = "Round-Trip"
)

// Multiplier is the fare multiplier for the trip type: round trips
// cost twice the one-way fare.
func (t TripType) Multiplier() float64 {
	if t == TripRoundTrip {
		return 2
	}
	return 1
}

type DraftStatus string

const (
	DraftDrafting DraftStatus = "DRAFTING"
	DraftCreated  DraftStatus = "CREATED"
	DraftPaid     DraftStatus = "PAID"
	DraftFailed   DraftStatus = "FAILED"
)

type Passenger struct {
	FirstName  string `json:"firstName" validate:"required"`
	LastName   string `json:"lastName" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"required"`
	Age        int    `json:"age,omitempty"`
	Gender     string `json:"gender,omitempty"`
	Address    string `json:"address,omitempty"`
	SeatNumber string `json:"seatNumber"`
}

type SearchCriteria struct {
	From      string    `json:"from"`
	To        string    `json:"to"`
	Departure time.Time `json:"departure"`
	Return    time.Time `json:"return,omitempty"`
	TripType  TripType  `json:"tripType"`
	Adults    int       `json:"adults"`
	Children  int       `json:"children"`
}

// RequiredSeats is the seat count the selection must reach before a
// booking can be submitted. The searching user always travels, so the
// count is adults + children + 1.
func (c SearchCriteria) RequiredSeats() int {
	return c.Adults + c.Children + 1
}

func (c SearchCriteria) Validate() error {
	if c.From == "" || c.To == "" {
		return &ValidationError{Field: "from/to", Message: "departure and destination are required"}
	}
	if sameCity(c.From, c.To) {
		return &ValidationError{Field: "to", Message: "departure and destination cannot be the same"}
	}
	if c.Adults < 0 || c.Children < 0 {
		return &ValidationError{Field: "passengers", Message: "passenger counts cannot be negative"}
	}
	if c.TripType == TripRoundTrip && !c.Return.After(c.Departure) {
		return &ValidationError{Field: "return", Message: "return date must be after departure date"}
	}
	return nil
}

// BookingDraft is the client-assembled booking prior to server
// persistence. BookingID and BookingNumber are empty until the draft
// has been created server-side.
type BookingDraft struct {
	FlowID        string      `json:"flowId"`
	RouteID       string      `json:"route"`
	BusID         string      `json:"bus"`
	TripType      TripType    `json:"bookingType"`
	DepartureDate time.Time   `json:"departureDate"`
	ReturnDate    *time.Time  `json:"returnDate,omitempty"`
	OutboundSeats []string    `json:"outboundSeats"`
	ReturnSeats   []string    `json:"returnSeats,omitempty"`
	Passengers    []Passenger `json:"passengers"`
	TotalFare     float64     `json:"totalFare"`
	Status        DraftStatus `json:"status"`
	BookingID     string      `json:"bookingId,omitempty"`
	BookingNumber string      `json:"bookingNumber,omitempty"`
}

// CreatedRef is the server's identity for a freshly created booking or
// hiring: the storage id plus the human-readable reference number.
type CreatedRef struct {
	ID     string
	Number string
}

// Ticket is the generated receipt artifact for a paid booking or
// hiring. The client treats it as an opaque read.
type Ticket struct {
	Reference string
	QRPayload string
	IssuedAt  time.Time
	Fields    map[string]string
}
