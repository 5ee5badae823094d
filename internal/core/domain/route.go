package domain

import (
	"strings"
	"time"
)

type Location struct {
	ID   string
	Name string
}

type Route struct {
	ID            string
	Source        string
	Destination   string
	OperatingDays []string
	BaseFare      float64
	Distance      float64
	IsActive      bool
	BusID         string
	DepartureTime string
	ArrivalTime   string
}

// Matches reports whether the route serves the given source and
// destination. Matching is case-insensitive substring, the way the
// booking search treats free-text city input.
func (r Route) Matches(source, destination string) bool {
	src := strings.ToLower(strings.TrimSpace(source))
	dst := strings.ToLower(strings.TrimSpace(destination))
	if src == "" || dst == "" {
		return false
	}
	return strings.Contains(strings.ToLower(r.Source), src) &&
		strings.Contains(strings.ToLower(r.Destination), dst)
}

// OperatesOn reports whether the route runs on the weekday of the
// given departure date. Operating days are stored as full English
// weekday names ("Monday").
func (r Route) OperatesOn(departure time.Time) bool {
	day := departure.Weekday().String()
	for _, d := range r.OperatingDays {
		if d == day {
			return true
		}
	}
	return false
}
