package domain

import "fmt"

type Bus struct {
	ID        string
	BusNumber string
	Type      string
	Capacity  int
	Amenities []string
}

// SeatIDs returns the fixed seat identifiers S1..S{capacity} in order.
func (b Bus) SeatIDs() []string {
	if b.Capacity <= 0 {
		return nil
	}
	ids := make([]string, b.Capacity)
	for i := 0; i < b.Capacity; i++ {
		ids[i] = fmt.Sprintf("S%d", i+1)
	}
	return ids
}
