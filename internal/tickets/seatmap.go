package tickets

import (
	"fmt"
	"math/rand"
)

// Seat codes are row letters crossed with 1-based column numbers,
// prefixed per class. Columns grow with plane size so the code space
// always covers the class capacity exactly.
const seatRows = "ABCDEF"

// AllSeats enumerates the seat-code space of a class for a plane with
// planeSeats seats in that class. The grid is truncated to planeSeats
// codes so the space never exceeds capacity.
func AllSeats(class SeatClass, planeSeats int) []string {
	if planeSeats <= 0 {
		return nil
	}

	rows := len(seatRows)
	cols := (planeSeats + rows - 1) / rows

	codes := make([]string, 0, planeSeats)
	for col := 1; col <= cols; col++ {
		for _, row := range seatRows {
			codes = append(codes, fmt.Sprintf("%s%c%d", class.Prefix(), row, col))
			if len(codes) == planeSeats {
				return codes
			}
		}
	}
	return codes
}

// FreeSeats lists codes of the class space not present in used.
func FreeSeats(class SeatClass, planeSeats int, used map[string]bool) []string {
	all := AllSeats(class, planeSeats)
	free := make([]string, 0, len(all))
	for _, code := range all {
		if !used[code] {
			free = append(free, code)
		}
	}
	return free
}

// RandomFreeSeat picks uniformly among unused codes. Selecting from the
// free list directly guarantees termination even when occupancy is high.
func RandomFreeSeat(class SeatClass, planeSeats int, used map[string]bool) (string, error) {
	free := FreeSeats(class, planeSeats, used)
	if len(free) == 0 {
		return "", ErrCapacityExhausted
	}
	return free[rand.Intn(len(free))], nil
}

// ValidateSeat checks a user-selected code against the class space and
// current occupancy.
func ValidateSeat(class SeatClass, planeSeats int, seat string, used map[string]bool) error {
	if !inSeatSpace(class, planeSeats, seat) {
		return ErrInvalidSeat
	}
	if used[seat] {
		return ErrSeatTaken
	}
	return nil
}

func inSeatSpace(class SeatClass, planeSeats int, seat string) bool {
	for _, code := range AllSeats(class, planeSeats) {
		if code == seat {
			return true
		}
	}
	return false
}

// UsedSeats collects the seat codes held by seat-holding tickets,
// optionally excluding one ticket (for edits against its own seat).
func UsedSeats(ticketsOnFlight []Ticket, excludeID string) map[string]bool {
	used := make(map[string]bool, len(ticketsOnFlight))
	for i := range ticketsOnFlight {
		t := &ticketsOnFlight[i]
		if !t.Status.HoldsSeat() || t.Seat == "" {
			continue
		}
		if excludeID != "" && t.ID.String() == excludeID {
			continue
		}
		used[t.Seat] = true
	}
	return used
}

// FreeCapacity is the class seat ceiling minus seat-holding tickets in
// that class. Negative values are clamped to zero.
func FreeCapacity(planeSeats int, ticketsOnFlight []Ticket, class SeatClass) int {
	active := 0
	for i := range ticketsOnFlight {
		t := &ticketsOnFlight[i]
		if t.Status.HoldsSeat() && t.SeatClass == class {
			active++
		}
	}
	free := planeSeats - active
	if free < 0 {
		return 0
	}
	return free
}
