package domain

import "time"

// HiringContact is the single contact record collected for a
// whole-bus hire. Address and IDNumber are optional.
type HiringContact struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
	Address  string `json:"address,omitempty"`
	IDNumber string `json:"idNumber,omitempty"`
}

type HireCriteria struct {
	From     string    `json:"from"`
	To       string    `json:"to"`
	Start    time.Time `json:"startDate"`
	End      time.Time `json:"endDate"`
	TripType TripType  `json:"tripType"`
}

func (c HireCriteria) Validate() error {
	if c.From == "" || c.To == "" {
		return &ValidationError{Field: "from/to", Message: "departure and destination cities are required"}
	}
	if sameCity(c.From, c.To) {
		return &ValidationError{Field: "to", Message: "departure and destination cannot be the same"}
	}
	if !c.End.After(c.Start) {
		return &ValidationError{Field: "endDate", Message: "end date must be after start date"}
	}
	return nil
}

// HireOption is one hireable route/bus pair produced by the hiring
// search, priced at full bus capacity.
type HireOption struct {
	Route Route
	Bus   Bus
	Price float64
}

type HiringAvailability struct {
	Available      bool
	AvailableBuses []Bus
}

// HiringDraft is keyed by whole-bus hire; there is no per-seat
// granularity and the passenger count is pinned to bus capacity.
type HiringDraft struct {
	FlowID         string        `json:"flowId"`
	BusID          string        `json:"bus"`
	RouteID        string        `json:"route,omitempty"`
	StartDate      time.Time     `json:"startDate"`
	EndDate        time.Time     `json:"endDate"`
	TripType       TripType      `json:"tripType"`
	ReturnDate     *time.Time    `json:"returnDate,omitempty"`
	Purpose        string        `json:"purpose"`
	StartLocation  string        `json:"startLocation"`
	EndLocation    string        `json:"endLocation"`
	PassengerCount int           `json:"passengerCount"`
	BaseRate       float64       `json:"baseRate"`
	TotalCost      float64       `json:"totalCost"`
	Contact        HiringContact `json:"contact"`
	Status         DraftStatus   `json:"status"`
	HiringID       string        `json:"hiringId,omitempty"`
	HiringNumber   string        `json:"hiringNumber,omitempty"`
}
