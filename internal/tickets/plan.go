package tickets

import (
	"strings"

	"skybook/internal/planes"

	"github.com/google/uuid"
)

// The planning functions are pure: they look at the current tickets of a
// flight and decide what a booking, promotion or removal would do. The
// repository calls them inside a transaction that holds the flight row
// lock, so their view of the flight is stable.

// CheckDuplicatePassengers rejects a batch when any passenger email
// already holds an active ticket on the flight, or appears twice within
// the batch itself.
func CheckDuplicatePassengers(existing []Ticket, passengers []PassengerInput) error {
	held := make(map[string]bool, len(existing))
	for i := range existing {
		if existing[i].Status.IsActive() {
			held[strings.ToLower(existing[i].PassengerEmail)] = true
		}
	}

	seen := make(map[string]bool, len(passengers))
	for _, p := range passengers {
		email := strings.ToLower(p.Email)
		if held[email] || seen[email] {
			return ErrDuplicatePassenger
		}
		seen[email] = true
	}
	return nil
}

// PlanSeatAssignments drafts PENDING tickets with concrete seats for a
// direct booking. It fails with ErrCapacityExhausted when any requested
// class cannot seat its share of the batch, and with ErrSeatTaken or
// ErrInvalidSeat when a user-selected seat does not fit.
func PlanSeatAssignments(plane *planes.Plane, existing []Ticket, passengers []PassengerInput, flightID, bookedByID uuid.UUID) ([]Ticket, error) {
	requested := make(map[SeatClass]int, 3)
	for _, p := range passengers {
		requested[SeatClass(p.Class)]++
	}
	for class, count := range requested {
		if FreeCapacity(class.PlaneSeats(plane), existing, class) < count {
			return nil, ErrCapacityExhausted
		}
	}

	used := UsedSeats(existing, "")
	drafts := make([]Ticket, 0, len(passengers))
	for _, p := range passengers {
		class := SeatClass(p.Class)
		planeSeats := class.PlaneSeats(plane)

		seat := p.Seat
		if seat != "" {
			if err := ValidateSeat(class, planeSeats, seat, used); err != nil {
				return nil, err
			}
		} else {
			var err error
			seat, err = RandomFreeSeat(class, planeSeats, used)
			if err != nil {
				return nil, err
			}
		}
		used[seat] = true

		drafts = append(drafts, Ticket{
			FlightID:       flightID,
			BookedByID:     bookedByID,
			PassengerName:  p.Name,
			PassengerEmail: p.Email,
			SeatClass:      class,
			Seat:           seat,
			Price:          class.Price(),
			WeightKG:       class.WeightKG(),
			Status:         StatusPending,
		})
	}
	return drafts, nil
}

// PlanWaitlistAdmission returns the first order number for a batch, or
// ErrWaitlistFull when admitting the whole batch would exceed maxSize.
// Admission is all-or-nothing.
func PlanWaitlistAdmission(currentWaitlisted, batchSize, maxSize int) (int, error) {
	if currentWaitlisted+batchSize > maxSize {
		return 0, ErrWaitlistFull
	}
	return currentWaitlisted + 1, nil
}

// PlanWaitlistTickets drafts WAITLISTED tickets with consecutive orders
// starting at startOrder. Waitlisted tickets hold no seat.
func PlanWaitlistTickets(passengers []PassengerInput, startOrder int, flightID, bookedByID uuid.UUID) []Ticket {
	drafts := make([]Ticket, 0, len(passengers))
	for i, p := range passengers {
		class := SeatClass(p.Class)
		drafts = append(drafts, Ticket{
			FlightID:       flightID,
			BookedByID:     bookedByID,
			PassengerName:  p.Name,
			PassengerEmail: p.Email,
			SeatClass:      class,
			Price:          class.Price(),
			WeightKG:       class.WeightKG(),
			Status:         StatusWaitlisted,
			WaitlistOrder:  startOrder + i,
		})
	}
	return drafts
}

// ShiftedOrders computes the new orders after the ticket at removedOrder
// leaves the waitlist: every trailing order drops by one, earlier orders
// are untouched, and the sequence stays dense.
func ShiftedOrders(waitlisted []Ticket, removedOrder int) map[uuid.UUID]int {
	shifted := make(map[uuid.UUID]int)
	for i := range waitlisted {
		t := &waitlisted[i]
		if t.Status == StatusWaitlisted && t.WaitlistOrder > removedOrder {
			shifted[t.ID] = t.WaitlistOrder - 1
		}
	}
	return shifted
}

// CountWaitlisted counts tickets currently in the waitlist queue.
func CountWaitlisted(ticketsOnFlight []Ticket) int {
	count := 0
	for i := range ticketsOnFlight {
		if ticketsOnFlight[i].Status == StatusWaitlisted && ticketsOnFlight[i].WaitlistOrder > 0 {
			count++
		}
	}
	return count
}
