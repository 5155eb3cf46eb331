package tickets

import (
	"testing"

	"skybook/internal/planes"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPlane(economy, business, first int) *planes.Plane {
	return &planes.Plane{
		Name:             "SB-Test",
		Type:             "JET",
		NEconomySeats:    economy,
		NBusinessSeats:   business,
		NFirstClassSeats: first,
	}
}

func passenger(name, email, class string) PassengerInput {
	return PassengerInput{Name: name, Email: email, Class: class}
}

func TestCheckDuplicatePassengers(t *testing.T) {
	existing := []Ticket{
		{PassengerEmail: "alice@example.com", Status: StatusConfirmed},
		{PassengerEmail: "bob@example.com", Status: StatusCancelled},
	}

	t.Run("rejects an email holding an active ticket", func(t *testing.T) {
		err := CheckDuplicatePassengers(existing, []PassengerInput{
			passenger("Alice", "alice@example.com", "ECONOMY"),
		})
		assert.ErrorIs(t, err, ErrDuplicatePassenger)
	})

	t.Run("matches emails case-insensitively", func(t *testing.T) {
		err := CheckDuplicatePassengers(existing, []PassengerInput{
			passenger("Alice", "ALICE@Example.COM", "ECONOMY"),
		})
		assert.ErrorIs(t, err, ErrDuplicatePassenger)
	})

	t.Run("a cancelled ticket frees the email for rebooking", func(t *testing.T) {
		err := CheckDuplicatePassengers(existing, []PassengerInput{
			passenger("Bob", "bob@example.com", "ECONOMY"),
		})
		assert.NoError(t, err)
	})

	t.Run("rejects a duplicate within the batch itself", func(t *testing.T) {
		err := CheckDuplicatePassengers(nil, []PassengerInput{
			passenger("Carol", "carol@example.com", "ECONOMY"),
			passenger("Carol Again", "Carol@Example.com", "BUSINESS"),
		})
		assert.ErrorIs(t, err, ErrDuplicatePassenger)
	})
}

func TestPlanSeatAssignments(t *testing.T) {
	plane := testPlane(4, 2, 0)
	flightID := uuid.New()
	bookerID := uuid.New()

	t.Run("drafts pending tickets with class pricing", func(t *testing.T) {
		drafts, err := PlanSeatAssignments(plane, nil, []PassengerInput{
			passenger("Alice", "alice@example.com", "ECONOMY"),
			passenger("Bob", "bob@example.com", "BUSINESS"),
		}, flightID, bookerID)
		require.NoError(t, err)
		require.Len(t, drafts, 2)

		assert.Equal(t, StatusPending, drafts[0].Status)
		assert.Equal(t, float64(100), drafts[0].Price)
		assert.Equal(t, 20, drafts[0].WeightKG)
		assert.Contains(t, AllSeats(ClassEconomy, 4), drafts[0].Seat)

		assert.Equal(t, float64(200), drafts[1].Price)
		assert.Equal(t, 30, drafts[1].WeightKG)
		assert.Contains(t, AllSeats(ClassBusiness, 2), drafts[1].Seat)
	})

	t.Run("honors a requested seat", func(t *testing.T) {
		p := passenger("Alice", "alice@example.com", "ECONOMY")
		p.Seat = "C1"
		drafts, err := PlanSeatAssignments(plane, nil, []PassengerInput{p}, flightID, bookerID)
		require.NoError(t, err)
		assert.Equal(t, "C1", drafts[0].Seat)
	})

	t.Run("rejects a taken seat", func(t *testing.T) {
		existing := []Ticket{{Status: StatusConfirmed, SeatClass: ClassEconomy, Seat: "A1"}}
		p := passenger("Alice", "alice@example.com", "ECONOMY")
		p.Seat = "A1"
		_, err := PlanSeatAssignments(plane, existing, []PassengerInput{p}, flightID, bookerID)
		assert.ErrorIs(t, err, ErrSeatTaken)
	})

	t.Run("never assigns the same seat twice within a batch", func(t *testing.T) {
		drafts, err := PlanSeatAssignments(plane, nil, []PassengerInput{
			passenger("A", "a@example.com", "ECONOMY"),
			passenger("B", "b@example.com", "ECONOMY"),
			passenger("C", "c@example.com", "ECONOMY"),
			passenger("D", "d@example.com", "ECONOMY"),
		}, flightID, bookerID)
		require.NoError(t, err)

		seen := make(map[string]bool)
		for _, d := range drafts {
			assert.False(t, seen[d.Seat], "seat %s assigned twice", d.Seat)
			seen[d.Seat] = true
		}
	})

	t.Run("fails when a class cannot seat its share", func(t *testing.T) {
		existing := []Ticket{
			{Status: StatusConfirmed, SeatClass: ClassBusiness, Seat: "BA1"},
			{Status: StatusPending, SeatClass: ClassBusiness, Seat: "BB1"},
		}
		_, err := PlanSeatAssignments(plane, existing, []PassengerInput{
			passenger("Bob", "bob@example.com", "BUSINESS"),
		}, flightID, bookerID)
		assert.ErrorIs(t, err, ErrCapacityExhausted)
	})

	t.Run("waitlisted tickets do not consume capacity", func(t *testing.T) {
		existing := []Ticket{
			{Status: StatusWaitlisted, SeatClass: ClassBusiness, WaitlistOrder: 1},
			{Status: StatusWaitlisted, SeatClass: ClassBusiness, WaitlistOrder: 2},
		}
		_, err := PlanSeatAssignments(plane, existing, []PassengerInput{
			passenger("Bob", "bob@example.com", "BUSINESS"),
		}, flightID, bookerID)
		assert.NoError(t, err)
	})
}

func TestPlanWaitlistAdmission(t *testing.T) {
	t.Run("admits a batch that fits", func(t *testing.T) {
		start, err := PlanWaitlistAdmission(3, 2, 10)
		require.NoError(t, err)
		assert.Equal(t, 4, start)
	})

	t.Run("an empty waitlist starts at order one", func(t *testing.T) {
		start, err := PlanWaitlistAdmission(0, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, 1, start)
	})

	t.Run("admission is all-or-nothing", func(t *testing.T) {
		_, err := PlanWaitlistAdmission(9, 2, 10)
		assert.ErrorIs(t, err, ErrWaitlistFull)
	})

	t.Run("fills the waitlist exactly to the cap", func(t *testing.T) {
		start, err := PlanWaitlistAdmission(8, 2, 10)
		require.NoError(t, err)
		assert.Equal(t, 9, start)
	})
}

func TestPlanWaitlistTickets(t *testing.T) {
	flightID := uuid.New()
	bookerID := uuid.New()

	drafts := PlanWaitlistTickets([]PassengerInput{
		passenger("Alice", "alice@example.com", "ECONOMY"),
		passenger("Bob", "bob@example.com", "FIRSTCLASS"),
	}, 5, flightID, bookerID)

	require.Len(t, drafts, 2)
	assert.Equal(t, StatusWaitlisted, drafts[0].Status)
	assert.Equal(t, 5, drafts[0].WaitlistOrder)
	assert.Equal(t, 6, drafts[1].WaitlistOrder)
	assert.Empty(t, drafts[0].Seat, "waitlisted tickets hold no seat")
	assert.Equal(t, float64(500), drafts[1].Price)
}

func TestShiftedOrders(t *testing.T) {
	first := Ticket{ID: uuid.New(), Status: StatusWaitlisted, WaitlistOrder: 1}
	third := Ticket{ID: uuid.New(), Status: StatusWaitlisted, WaitlistOrder: 3}
	fourth := Ticket{ID: uuid.New(), Status: StatusWaitlisted, WaitlistOrder: 4}
	cancelled := Ticket{ID: uuid.New(), Status: StatusCancelled, WaitlistOrder: 0}

	shifted := ShiftedOrders([]Ticket{first, third, fourth, cancelled}, 2)

	// Removing order 2 closes the gap: 3 becomes 2, 4 becomes 3, and
	// earlier entries keep their place.
	assert.Equal(t, map[uuid.UUID]int{third.ID: 2, fourth.ID: 3}, shifted)
	assert.NotContains(t, shifted, first.ID)
	assert.NotContains(t, shifted, cancelled.ID)
}

func TestCountWaitlisted(t *testing.T) {
	ticketsOnFlight := []Ticket{
		{Status: StatusWaitlisted, WaitlistOrder: 1},
		{Status: StatusWaitlisted, WaitlistOrder: 2},
		{Status: StatusConfirmed},
		{Status: StatusCancelled},
	}
	assert.Equal(t, 2, CountWaitlisted(ticketsOnFlight))
}
