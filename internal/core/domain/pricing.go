package domain

import (
	"math"
	"strings"
)

// Round2 rounds a currency amount to two decimal places using half-up
// rounding. Monetary values are never negative; anything below zero
// clamps to zero.
func Round2(v float64) float64 {
	if v <= 0 {
		return 0
	}
	return math.Floor(v*100+0.5) / 100
}

// PricePerPerson derives the per-passenger fare from the route's base
// fare and the trip type.
func PricePerPerson(baseFare float64, trip TripType) float64 {
	if baseFare < 0 {
		baseFare = 0
	}
	return baseFare * trip.Multiplier()
}

// TotalFare is the booking total for the given per-person price and
// passenger count, rounded to two decimals.
func TotalFare(pricePerPerson float64, passengerCount int) float64 {
	if passengerCount < 0 {
		passengerCount = 0
	}
	return Round2(pricePerPerson * float64(passengerCount))
}

// HiringCost prices a whole-bus hire: base fare times the full seat
// capacity, doubled for round trips.
func HiringCost(baseFare float64, capacity int, trip TripType) float64 {
	if baseFare < 0 {
		baseFare = 0
	}
	if capacity < 0 {
		capacity = 0
	}
	return Round2(baseFare * float64(capacity) * trip.Multiplier())
}

func sameCity(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
