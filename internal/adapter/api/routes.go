package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/tersoo/swiftbus/internal/core/domain"
)

type busJSON struct {
	ID        string   `json:"_id"`
	BusNumber string   `json:"busNumber"`
	Type      string   `json:"type"`
	Capacity  int      `json:"capacity"`
	Amenities []string `json:"amenities"`
}

func (b busJSON) toDomain() domain.Bus {
	return domain.Bus{
		ID:        b.ID,
		BusNumber: b.BusNumber,
		Type:      b.Type,
		Capacity:  b.Capacity,
		Amenities: b.Amenities,
	}
}

type routeJSON struct {
	ID            string          `json:"_id"`
	Source        string          `json:"source"`
	Destination   string          `json:"destination"`
	OperatingDays []string        `json:"operatingDays"`
	BaseFare      float64         `json:"baseFare"`
	Distance      float64         `json:"distance"`
	IsActive      bool            `json:"isActive"`
	Bus           json.RawMessage `json:"bus"`
	DepartureTime string          `json:"departureTime"`
	ArrivalTime   string          `json:"arrivalTime"`
}

// busID handles the backend's two shapes for the bus reference: a
// populated bus object or a bare id string.
func (r routeJSON) busID() string {
	var id string
	if err := json.Unmarshal(r.Bus, &id); err == nil {
		return id
	}
	var b busJSON
	if err := json.Unmarshal(r.Bus, &b); err == nil {
		return b.ID
	}
	return ""
}

func (r routeJSON) toDomain() domain.Route {
	return domain.Route{
		ID:            r.ID,
		Source:        r.Source,
		Destination:   r.Destination,
		OperatingDays: r.OperatingDays,
		BaseFare:      r.BaseFare,
		Distance:      r.Distance,
		IsActive:      r.IsActive,
		BusID:         r.busID(),
		DepartureTime: r.DepartureTime,
		ArrivalTime:   r.ArrivalTime,
	}
}

func (c *Client) ListRoutes(ctx context.Context) ([]domain.Route, error) {
	var raw []routeJSON
	if err := c.doJSON(ctx, http.MethodGet, "/routes", nil, nil, &raw); err != nil {
		return nil, err
	}
	routes := make([]domain.Route, 0, len(raw))
	for _, r := range raw {
		routes = append(routes, r.toDomain())
	}
	return routes, nil
}

func (c *Client) ListLocations(ctx context.Context) ([]domain.Location, error) {
	var raw []struct {
		ID   string `json:"_id"`
		Name string `json:"name"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/locations", nil, nil, &raw); err != nil {
		return nil, err
	}
	locations := make([]domain.Location, 0, len(raw))
	for _, l := range raw {
		locations = append(locations, domain.Location{ID: l.ID, Name: l.Name})
	}
	return locations, nil
}
