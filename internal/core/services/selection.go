package services

import (
	"fmt"

	"github.com/tersoo/swiftbus/internal/core/domain"
)

type SelectionState string

const (
	SelectionEmpty    SelectionState = "EMPTY"
	SelectionPartial  SelectionState = "PARTIAL"
	SelectionComplete SelectionState = "COMPLETE"
)

// ToggleResult reports what a toggle call did. Rejections are signals
// for the UI, not errors; the selection is unchanged when rejected.
type ToggleResult string

const (
	ToggleSelected      ToggleResult = "SELECTED"
	ToggleDeselected    ToggleResult = "DESELECTED"
	ToggleRejectedTaken ToggleResult = "REJECTED_TAKEN"
	ToggleRejectedLimit ToggleResult = "REJECTED_LIMIT"
)

// Selection is the client-local seat selection for one bus and date.
// Every transition is a pure function of the current selection, the
// requested seat, the seat's server state, and the required count, so
// toggles and incoming seat-updated events can interleave freely.
type Selection struct {
	required int
	seats    []string
}

func NewSelection(requiredSeats int) *Selection {
	if requiredSeats < 0 {
		requiredSeats = 0
	}
	return &Selection{required: requiredSeats}
}

// Toggle selects or deselects a seat against the given snapshot.
// Booked seats are never selectable, and selecting past the required
// count is rejected with the selection left intact.
func (s *Selection) Toggle(seatID string, snapshot *domain.SeatMap) ToggleResult {
	if snapshot != nil && snapshot.IsBooked(seatID) {
		return ToggleRejectedTaken
	}
	for i, seat := range s.seats {
		if seat == seatID {
			s.seats = append(s.seats[:i], s.seats[i+1:]...)
			return ToggleDeselected
		}
	}
	if len(s.seats) >= s.required {
		return ToggleRejectedLimit
	}
	s.seats = append(s.seats, seatID)
	return ToggleSelected
}

// Reset clears the local selection. Used on bus or date change.
func (s *Selection) Reset() {
	s.seats = nil
}

func (s *Selection) Selected() []string {
	out := make([]string, len(s.seats))
	copy(out, s.seats)
	return out
}

func (s *Selection) RequiredSeats() int { return s.required }

func (s *Selection) State() SelectionState {
	switch {
	case len(s.seats) == 0:
		return SelectionEmpty
	case len(s.seats) < s.required:
		return SelectionPartial
	default:
		return SelectionComplete
	}
}

// Validate checks the selection against a fresh snapshot before
// submission. A selected seat that turned Booked elsewhere yields a
// ConflictError; an incomplete selection yields a ValidationError.
func (s *Selection) Validate(snapshot *domain.SeatMap) error {
	if len(s.seats) != s.required {
		return &domain.ValidationError{
			Field:   "seats",
			Message: fmt.Sprintf("selected %d of %d required seats", len(s.seats), s.required),
		}
	}
	var conflicted []string
	for _, seat := range s.seats {
		if snapshot != nil && snapshot.IsBooked(seat) {
			conflicted = append(conflicted, seat)
		}
	}
	if len(conflicted) > 0 {
		return &domain.ConflictError{
			Message: "seats are no longer available, please re-select",
			Seats:   conflicted,
		}
	}
	return nil
}
