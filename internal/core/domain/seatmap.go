package domain

import "sort"

type SeatState string

const (
	SeatAvailable SeatState = "AVAILABLE"
	SeatSelected  SeatState = "SELECTED"
	SeatBooked    SeatState = "BOOKED"
)

// SeatMap is the point-in-time availability snapshot for one bus on
// one service date. Booked entries come from the server and are never
// mutated locally; Selected is a client-local overlay kept by the
// selection state machine, not by the map itself.
type SeatMap struct {
	BusID       string
	ServiceDate string
	Capacity    int
	booked      map[string]bool
}

func NewSeatMap(busID, serviceDate string, capacity int, bookedSeats []string) *SeatMap {
	m := &SeatMap{
		BusID:       busID,
		ServiceDate: serviceDate,
		Capacity:    capacity,
		booked:      make(map[string]bool, len(bookedSeats)),
	}
	for _, s := range bookedSeats {
		m.booked[s] = true
	}
	return m
}

func (m *SeatMap) IsBooked(seatID string) bool {
	return m.booked[seatID]
}

func (m *SeatMap) State(seatID string) SeatState {
	if m.booked[seatID] {
		return SeatBooked
	}
	return SeatAvailable
}

func (m *SeatMap) BookedSeats() []string {
	seats := make([]string, 0, len(m.booked))
	for s := range m.booked {
		seats = append(seats, s)
	}
	sort.Strings(seats)
	return seats
}
