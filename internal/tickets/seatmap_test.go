package tickets

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllSeats(t *testing.T) {
	t.Run("covers capacity exactly", func(t *testing.T) {
		seats := AllSeats(ClassEconomy, 12)
		assert.Len(t, seats, 12)
		assert.Equal(t, "A1", seats[0])
		assert.Equal(t, "F1", seats[5])
		assert.Equal(t, "A2", seats[6])
		assert.Equal(t, "F2", seats[11])
	})

	t.Run("truncates a partial column", func(t *testing.T) {
		seats := AllSeats(ClassEconomy, 8)
		assert.Len(t, seats, 8)
		assert.Equal(t, "B2", seats[7])
	})

	t.Run("prefixes business and first class codes", func(t *testing.T) {
		assert.Equal(t, "BA1", AllSeats(ClassBusiness, 4)[0])
		assert.Equal(t, "FA1", AllSeats(ClassFirstClass, 4)[0])
	})

	t.Run("empty class yields no codes", func(t *testing.T) {
		assert.Empty(t, AllSeats(ClassFirstClass, 0))
	})
}

func TestFreeSeats(t *testing.T) {
	used := map[string]bool{"A1": true, "C1": true}
	free := FreeSeats(ClassEconomy, 6, used)

	assert.Len(t, free, 4)
	assert.NotContains(t, free, "A1")
	assert.NotContains(t, free, "C1")
	assert.Contains(t, free, "B1")
}

func TestRandomFreeSeat(t *testing.T) {
	t.Run("picks an unused code", func(t *testing.T) {
		used := map[string]bool{"A1": true, "B1": true, "C1": true, "D1": true, "E1": true}
		seat, err := RandomFreeSeat(ClassEconomy, 6, used)
		require.NoError(t, err)
		assert.Equal(t, "F1", seat)
	})

	t.Run("stays within the class space", func(t *testing.T) {
		seat, err := RandomFreeSeat(ClassBusiness, 10, map[string]bool{})
		require.NoError(t, err)
		assert.Contains(t, AllSeats(ClassBusiness, 10), seat)
	})

	t.Run("fails when the class is full", func(t *testing.T) {
		used := map[string]bool{}
		for _, code := range AllSeats(ClassEconomy, 6) {
			used[code] = true
		}
		_, err := RandomFreeSeat(ClassEconomy, 6, used)
		assert.ErrorIs(t, err, ErrCapacityExhausted)
	})
}

func TestValidateSeat(t *testing.T) {
	used := map[string]bool{"A1": true}

	assert.NoError(t, ValidateSeat(ClassEconomy, 6, "B1", used))
	assert.ErrorIs(t, ValidateSeat(ClassEconomy, 6, "A1", used), ErrSeatTaken)
	assert.ErrorIs(t, ValidateSeat(ClassEconomy, 6, "A9", used), ErrInvalidSeat)
	// Business codes do not validate against the economy space.
	assert.ErrorIs(t, ValidateSeat(ClassEconomy, 6, "BA1", used), ErrInvalidSeat)
}

func TestUsedSeats(t *testing.T) {
	confirmed := Ticket{Status: StatusConfirmed, Seat: "A1"}
	pending := Ticket{Status: StatusPending, Seat: "B1"}
	cancelled := Ticket{Status: StatusCancelled, Seat: "C1"}
	waitlisted := Ticket{Status: StatusWaitlisted}

	used := UsedSeats([]Ticket{confirmed, pending, cancelled, waitlisted}, "")

	assert.True(t, used["A1"])
	assert.True(t, used["B1"])
	assert.False(t, used["C1"], "cancelled tickets release their seat")
	assert.Len(t, used, 2)
}

func TestUsedSeats_ExcludesOwnTicket(t *testing.T) {
	own := Ticket{ID: uuid.New(), Status: StatusConfirmed, Seat: "A1"}
	other := Ticket{ID: uuid.New(), Status: StatusConfirmed, Seat: "B1"}

	used := UsedSeats([]Ticket{own, other}, own.ID.String())
	assert.False(t, used["A1"])
	assert.True(t, used["B1"])
}

func TestFreeCapacity(t *testing.T) {
	ticketsOnFlight := []Ticket{
		{Status: StatusConfirmed, SeatClass: ClassEconomy},
		{Status: StatusPending, SeatClass: ClassEconomy},
		{Status: StatusWaitlisted, SeatClass: ClassEconomy},
		{Status: StatusCancelled, SeatClass: ClassEconomy},
		{Status: StatusConfirmed, SeatClass: ClassBusiness},
	}

	t.Run("only seat-holding tickets of the class count", func(t *testing.T) {
		assert.Equal(t, 4, FreeCapacity(6, ticketsOnFlight, ClassEconomy))
		assert.Equal(t, 3, FreeCapacity(4, ticketsOnFlight, ClassBusiness))
	})

	t.Run("clamps to zero", func(t *testing.T) {
		assert.Equal(t, 0, FreeCapacity(1, ticketsOnFlight, ClassEconomy))
	})
}
