package api

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/tersoo/swiftbus/internal/core/domain"
)

type createHiringRequest struct {
	Bus            string          `json:"bus"`
	Route          string          `json:"route,omitempty"`
	StartDate      string          `json:"startDate"`
	EndDate        string          `json:"endDate"`
	TripType       domain.TripType `json:"tripType"`
	ReturnDate     string          `json:"returnDate,omitempty"`
	Purpose        string          `json:"purpose"`
	StartLocation  string          `json:"startLocation"`
	EndLocation    string          `json:"endLocation"`
	PassengerCount int             `json:"passengerCount"`
	RateType       string          `json:"rateType"`
	BaseRate       float64         `json:"baseRate"`
	TotalCost      float64         `json:"totalCost"`
	ContactPerson  string          `json:"contactPerson"`
	ContactPhone   string          `json:"contactPhone"`
}

func newHiringRequest(draft *domain.HiringDraft) createHiringRequest {
	rateType := "Fixed"
	if draft.RouteID != "" {
		rateType = "Route-Based"
	}
	req := createHiringRequest{
		Bus:            draft.BusID,
		Route:          draft.RouteID,
		StartDate:      draft.StartDate.Format(time.RFC3339),
		EndDate:        draft.EndDate.Format(time.RFC3339),
		TripType:       draft.TripType,
		Purpose:        draft.Purpose,
		StartLocation:  draft.StartLocation,
		EndLocation:    draft.EndLocation,
		PassengerCount: draft.PassengerCount,
		RateType:       rateType,
		BaseRate:       draft.BaseRate,
		TotalCost:      draft.TotalCost,
		ContactPerson:  draft.Contact.FullName,
		ContactPhone:   draft.Contact.Phone,
	}
	if draft.ReturnDate != nil {
		req.ReturnDate = draft.ReturnDate.Format(time.RFC3339)
	}
	return req
}

func (c *Client) CheckHiringAvailability(ctx context.Context, start, end time.Time) (*domain.HiringAvailability, error) {
	query := url.Values{}
	query.Set("startDate", start.Format(time.RFC3339))
	query.Set("endDate", end.Format(time.RFC3339))

	var data struct {
		Available      bool      `json:"available"`
		AvailableBuses []busJSON `json:"availableBuses"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/hiring/availability", query, nil, &data); err != nil {
		return nil, err
	}
	avail := &domain.HiringAvailability{Available: data.Available}
	for _, b := range data.AvailableBuses {
		avail.AvailableBuses = append(avail.AvailableBuses, b.toDomain())
	}
	return avail, nil
}

func (c *Client) CalculateHiringCost(ctx context.Context, draft *domain.HiringDraft) (float64, error) {
	var data struct {
		TotalCost float64 `json:"totalCost"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/hiring/calculate-cost", nil, newHiringRequest(draft), &data); err != nil {
		return 0, err
	}
	return data.TotalCost, nil
}

func (c *Client) CreateHiring(ctx context.Context, draft *domain.HiringDraft) (*domain.CreatedRef, error) {
	var created createdJSON
	if err := c.doJSON(ctx, http.MethodPost, "/hiring", nil, newHiringRequest(draft), &created); err != nil {
		return nil, err
	}
	return &domain.CreatedRef{ID: created.ID, Number: created.HiringNumber}, nil
}

func (c *Client) CancelHiring(ctx context.Context, hiringID string) error {
	return c.doJSON(ctx, http.MethodDelete, "/hiring/"+hiringID, nil, nil, nil)
}

func (c *Client) GetHiringReceipt(ctx context.Context, hiringID string) (*domain.Ticket, error) {
	return c.getReceipt(ctx, "/hiring/"+hiringID+"/receipt")
}
