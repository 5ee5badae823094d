package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tersoo/swiftbus/internal/core/domain"
)

func TestRound2(t *testing.T) {
	assert.InDelta(t, 3.14, domain.Round2(3.14159), 1e-9)
	assert.InDelta(t, 11.0, domain.Round2(10.996), 1e-9)
	assert.InDelta(t, 2.5, domain.Round2(2.5), 1e-9)
	assert.Equal(t, 0.0, domain.Round2(-5))
	assert.Equal(t, 0.0, domain.Round2(0))
}

func TestPricePerPerson(t *testing.T) {
	assert.InDelta(t, 12000.0, domain.PricePerPerson(12000, domain.TripOneWay), 1e-9)
	assert.InDelta(t, 24000.0, domain.PricePerPerson(12000, domain.TripRoundTrip), 1e-9)
	assert.Equal(t, 0.0, domain.PricePerPerson(-100, domain.TripOneWay))
}

func TestTotalFare(t *testing.T) {
	assert.InDelta(t, 36000.0, domain.TotalFare(12000, 3), 1e-9)
	assert.Equal(t, 0.0, domain.TotalFare(12000, 0))
	assert.Equal(t, 0.0, domain.TotalFare(12000, -2))
}

func TestHiringCost(t *testing.T) {
	assert.InDelta(t, 1500000.0, domain.HiringCost(50000, 30, domain.TripOneWay), 1e-6)
	assert.InDelta(t, 3000000.0, domain.HiringCost(50000, 30, domain.TripRoundTrip), 1e-6)
	assert.Equal(t, 0.0, domain.HiringCost(-1, 30, domain.TripOneWay))
	assert.Equal(t, 0.0, domain.HiringCost(50000, -1, domain.TripOneWay))
}

func TestHiringCostRoundTripDoublesOneWay(t *testing.T) {
	cases := []struct {
		baseFare float64
		capacity int
	}{
		{12000, 14},
		{50000, 30},
		{7500.5, 49},
	}
	for _, tc := range cases {
		oneWay := domain.HiringCost(tc.baseFare, tc.capacity, domain.TripOneWay)
		roundTrip := domain.HiringCost(tc.baseFare, tc.capacity, domain.TripRoundTrip)
		assert.InDelta(t, 2*oneWay, roundTrip, 0.01)
	}
}

func TestSearchCriteriaRequiredSeats(t *testing.T) {
	c := domain.SearchCriteria{Adults: 2, Children: 1}
	assert.Equal(t, 4, c.RequiredSeats())

	solo := domain.SearchCriteria{}
	assert.Equal(t, 1, solo.RequiredSeats())
}
