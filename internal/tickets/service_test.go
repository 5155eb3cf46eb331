package tickets

import (
	"context"
	"errors"
	"testing"
	"time"

	"skybook/internal/flights"
	"skybook/internal/shared/config"
	"skybook/internal/stream"
	"skybook/pkg/cache"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) GetByID(ctx context.Context, id uuid.UUID) (*Ticket, error) {
	args := m.Called(ctx, id)
	if t, ok := args.Get(0).(*Ticket); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) ListByFlight(ctx context.Context, flightID uuid.UUID) ([]Ticket, error) {
	args := m.Called(ctx, flightID)
	if list, ok := args.Get(0).([]Ticket); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]Ticket, error) {
	args := m.Called(ctx, userID)
	if list, ok := args.Get(0).([]Ticket); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) ListWaitlist(ctx context.Context, flightID uuid.UUID) ([]Ticket, error) {
	args := m.Called(ctx, flightID)
	if list, ok := args.Get(0).([]Ticket); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) GetAvailability(ctx context.Context, flightID uuid.UUID) (*flights.Flight, []Ticket, error) {
	args := m.Called(ctx, flightID)
	flight, _ := args.Get(0).(*flights.Flight)
	list, _ := args.Get(1).([]Ticket)
	return flight, list, args.Error(2)
}

func (m *mockRepository) Book(ctx context.Context, flightID, bookedByID uuid.UUID, passengers []PassengerInput, allowWaitlist bool, maxWaitlist, maxPerUser int) ([]Ticket, bool, error) {
	args := m.Called(ctx, flightID, bookedByID, passengers, allowWaitlist, maxWaitlist, maxPerUser)
	list, _ := args.Get(0).([]Ticket)
	return list, args.Bool(1), args.Error(2)
}

func (m *mockRepository) Pay(ctx context.Context, ticketID, cardID uuid.UUID) (*Ticket, error) {
	args := m.Called(ctx, ticketID, cardID)
	if t, ok := args.Get(0).(*Ticket); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) Cancel(ctx context.Context, ticketID uuid.UUID, cause Cause) (*Ticket, float64, error) {
	args := m.Called(ctx, ticketID, cause)
	if t, ok := args.Get(0).(*Ticket); ok {
		return t, args.Get(1).(float64), args.Error(2)
	}
	return nil, 0, args.Error(2)
}

func (m *mockRepository) Promote(ctx context.Context, ticketID uuid.UUID) (*Ticket, error) {
	args := m.Called(ctx, ticketID)
	if t, ok := args.Get(0).(*Ticket); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) Edit(ctx context.Context, ticketID uuid.UUID, req *EditTicketRequest) (*Ticket, error) {
	args := m.Called(ctx, ticketID, req)
	if t, ok := args.Get(0).(*Ticket); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) Delete(ctx context.Context, ticketID uuid.UUID) error {
	args := m.Called(ctx, ticketID)
	return args.Error(0)
}

// recordingProducer captures published events in order.
type recordingProducer struct {
	events []*stream.TicketEvent
	err    error
}

func (p *recordingProducer) Publish(ctx context.Context, event *stream.TicketEvent) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

func (p *recordingProducer) Close() error { return nil }

// missCache always misses and swallows writes.
type missCache struct{}

func (missCache) Get(ctx context.Context, key string, dest interface{}) error { return cache.ErrCacheMiss }
func (missCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return nil
}
func (missCache) Delete(ctx context.Context, key string) error         { return nil }
func (missCache) DeletePattern(ctx context.Context, pattern string) error { return nil }
func (missCache) Exists(ctx context.Context, key string) bool          { return false }
func (missCache) GetOrSet(ctx context.Context, key string, ttl time.Duration, fetcher func() (interface{}, error), dest interface{}) error {
	return nil
}
func (missCache) Ping(ctx context.Context) error { return nil }

func testConfig() *config.Config {
	return &config.Config{
		Booking: config.BookingConfig{
			MaxWaitlistSize:            10,
			MaxPassengersPerBooking:    10,
			MaxTicketsPerUserPerFlight: 10,
		},
	}
}

func newTestService(repo Repository, producer stream.Producer) Service {
	return NewService(repo, producer, missCache{}, testConfig())
}

func TestService_BookFlight(t *testing.T) {
	flightID := uuid.New()
	userID := uuid.New()

	t.Run("returns created tickets and publishes booked events", func(t *testing.T) {
		repo := new(mockRepository)
		producer := &recordingProducer{}
		svc := newTestService(repo, producer)

		created := []Ticket{
			{ID: uuid.New(), FlightID: flightID, BookedByID: userID, Status: StatusPending, Seat: "A1"},
			{ID: uuid.New(), FlightID: flightID, BookedByID: userID, Status: StatusPending, Seat: "B1"},
		}
		repo.On("Book", mock.Anything, flightID, userID, mock.Anything, false, 10, 10).
			Return(created, false, nil)

		resp, err := svc.BookFlight(context.Background(), userID.String(), flightID.String(), &BookFlightRequest{
			Passengers: []PassengerInput{
				passenger("Alice", "alice@example.com", "ECONOMY"),
				passenger("Bob", "bob@example.com", "ECONOMY"),
			},
		})
		require.NoError(t, err)
		assert.False(t, resp.Waitlisted)
		assert.Len(t, resp.Tickets, 2)

		require.Len(t, producer.events, 2)
		assert.Equal(t, stream.EventTicketBooked, producer.events[0].Type)
		repo.AssertExpectations(t)
	})

	t.Run("flags a waitlisted batch and publishes waitlisted events", func(t *testing.T) {
		repo := new(mockRepository)
		producer := &recordingProducer{}
		svc := newTestService(repo, producer)

		created := []Ticket{
			{ID: uuid.New(), FlightID: flightID, BookedByID: userID, Status: StatusWaitlisted, WaitlistOrder: 1},
		}
		repo.On("Book", mock.Anything, flightID, userID, mock.Anything, true, 10, 10).
			Return(created, true, nil)

		resp, err := svc.BookFlight(context.Background(), userID.String(), flightID.String(), &BookFlightRequest{
			Passengers:    []PassengerInput{passenger("Alice", "alice@example.com", "ECONOMY")},
			AllowWaitlist: true,
		})
		require.NoError(t, err)
		assert.True(t, resp.Waitlisted)

		require.Len(t, producer.events, 1)
		assert.Equal(t, stream.EventTicketWaitlisted, producer.events[0].Type)
	})

	t.Run("a failing event stream does not fail the booking", func(t *testing.T) {
		repo := new(mockRepository)
		producer := &recordingProducer{err: errors.New("broker down")}
		svc := newTestService(repo, producer)

		created := []Ticket{{ID: uuid.New(), FlightID: flightID, BookedByID: userID, Status: StatusPending}}
		repo.On("Book", mock.Anything, flightID, userID, mock.Anything, false, 10, 10).
			Return(created, false, nil)

		_, err := svc.BookFlight(context.Background(), userID.String(), flightID.String(), &BookFlightRequest{
			Passengers: []PassengerInput{passenger("Alice", "alice@example.com", "ECONOMY")},
		})
		assert.NoError(t, err)
	})

	t.Run("rejects an unknown seat class before touching the repository", func(t *testing.T) {
		repo := new(mockRepository)
		svc := newTestService(repo, &recordingProducer{})

		_, err := svc.BookFlight(context.Background(), userID.String(), flightID.String(), &BookFlightRequest{
			Passengers: []PassengerInput{passenger("Alice", "alice@example.com", "COACH")},
		})
		assert.Error(t, err)
		repo.AssertNotCalled(t, "Book")
	})
}

func TestService_GetTicket_Ownership(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()
	ticket := &Ticket{ID: uuid.New(), FlightID: uuid.New(), BookedByID: owner, Status: StatusConfirmed}

	t.Run("the booker can read their ticket", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("GetByID", mock.Anything, ticket.ID).Return(ticket, nil)
		svc := newTestService(repo, &recordingProducer{})

		resp, err := svc.GetTicket(context.Background(), owner.String(), false, ticket.ID.String())
		require.NoError(t, err)
		assert.Equal(t, ticket.ID.String(), resp.ID)
	})

	t.Run("another user is rejected", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("GetByID", mock.Anything, ticket.ID).Return(ticket, nil)
		svc := newTestService(repo, &recordingProducer{})

		_, err := svc.GetTicket(context.Background(), stranger.String(), false, ticket.ID.String())
		assert.ErrorIs(t, err, ErrNotTicketOwner)
	})

	t.Run("an admin bypasses ownership", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("GetByID", mock.Anything, ticket.ID).Return(ticket, nil)
		svc := newTestService(repo, &recordingProducer{})

		_, err := svc.GetTicket(context.Background(), stranger.String(), true, ticket.ID.String())
		assert.NoError(t, err)
	})
}

func TestService_CancelTicket(t *testing.T) {
	owner := uuid.New()
	ticket := &Ticket{ID: uuid.New(), FlightID: uuid.New(), BookedByID: owner, Status: StatusConfirmed, Price: 200}
	cancelled := &Ticket{ID: ticket.ID, FlightID: ticket.FlightID, BookedByID: owner, Status: StatusCancelled, Price: 200}

	t.Run("defaults to the cancellation cause", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("GetByID", mock.Anything, ticket.ID).Return(ticket, nil)
		repo.On("Cancel", mock.Anything, ticket.ID, CauseCancelled).Return(cancelled, 40.0, nil)
		producer := &recordingProducer{}
		svc := newTestService(repo, producer)

		resp, err := svc.CancelTicket(context.Background(), owner.String(), false, ticket.ID.String(), &CancelTicketRequest{})
		require.NoError(t, err)
		assert.InDelta(t, 40.0, resp.Fine, 0.001)

		require.Len(t, producer.events, 1)
		assert.Equal(t, stream.EventTicketCancelled, producer.events[0].Type)
		repo.AssertExpectations(t)
	})

	t.Run("a passenger cannot self-report a missed flight", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("GetByID", mock.Anything, ticket.ID).Return(ticket, nil)
		repo.On("Cancel", mock.Anything, ticket.ID, CauseCancelled).Return(cancelled, 40.0, nil)
		svc := newTestService(repo, &recordingProducer{})

		_, err := svc.CancelTicket(context.Background(), owner.String(), false, ticket.ID.String(), &CancelTicketRequest{Cause: "MISSED"})
		require.NoError(t, err)
		repo.AssertCalled(t, "Cancel", mock.Anything, ticket.ID, CauseCancelled)
	})

	t.Run("an admin records a no-show at the reduced rate", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("GetByID", mock.Anything, ticket.ID).Return(ticket, nil)
		repo.On("Cancel", mock.Anything, ticket.ID, CauseMissed).Return(cancelled, 20.0, nil)
		producer := &recordingProducer{}
		svc := newTestService(repo, producer)

		resp, err := svc.CancelTicket(context.Background(), uuid.NewString(), true, ticket.ID.String(), &CancelTicketRequest{Cause: "MISSED"})
		require.NoError(t, err)
		assert.InDelta(t, 20.0, resp.Fine, 0.001)

		require.Len(t, producer.events, 1)
		assert.Equal(t, stream.EventTicketMissed, producer.events[0].Type)
	})

	t.Run("propagates a terminal-state rejection", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("GetByID", mock.Anything, ticket.ID).Return(cancelled, nil)
		repo.On("Cancel", mock.Anything, ticket.ID, CauseCancelled).Return(nil, 0.0, ErrAlreadyCancelled)
		svc := newTestService(repo, &recordingProducer{})

		_, err := svc.CancelTicket(context.Background(), owner.String(), false, ticket.ID.String(), &CancelTicketRequest{})
		assert.ErrorIs(t, err, ErrAlreadyCancelled)
	})
}

func TestService_PayTicket(t *testing.T) {
	owner := uuid.New()
	cardID := uuid.New()
	pending := &Ticket{ID: uuid.New(), FlightID: uuid.New(), BookedByID: owner, Status: StatusPending, Price: 100}
	confirmed := &Ticket{ID: pending.ID, FlightID: pending.FlightID, BookedByID: owner, Status: StatusConfirmed, Price: 100}

	repo := new(mockRepository)
	repo.On("GetByID", mock.Anything, pending.ID).Return(pending, nil)
	repo.On("Pay", mock.Anything, pending.ID, cardID).Return(confirmed, nil)
	producer := &recordingProducer{}
	svc := newTestService(repo, producer)

	resp, err := svc.PayTicket(context.Background(), owner.String(), false, pending.ID.String(), &PayTicketRequest{CardID: cardID.String()})
	require.NoError(t, err)
	assert.Equal(t, string(StatusConfirmed), resp.Status)

	require.Len(t, producer.events, 1)
	assert.Equal(t, stream.EventTicketPaid, producer.events[0].Type)
	repo.AssertExpectations(t)
}

func TestService_PromoteTicket(t *testing.T) {
	waitlisted := &Ticket{ID: uuid.New(), FlightID: uuid.New(), BookedByID: uuid.New(), Status: StatusWaitlisted, WaitlistOrder: 1}
	promoted := &Ticket{ID: waitlisted.ID, FlightID: waitlisted.FlightID, BookedByID: waitlisted.BookedByID, Status: StatusConfirmed, Seat: "A1"}

	repo := new(mockRepository)
	repo.On("GetByID", mock.Anything, waitlisted.ID).Return(waitlisted, nil)
	repo.On("Promote", mock.Anything, waitlisted.ID).Return(promoted, nil)
	producer := &recordingProducer{}
	svc := newTestService(repo, producer)

	resp, err := svc.PromoteTicket(context.Background(), waitlisted.ID.String())
	require.NoError(t, err)
	assert.Equal(t, string(StatusConfirmed), resp.Status)
	assert.Equal(t, "A1", resp.Seat)

	require.Len(t, producer.events, 1)
	assert.Equal(t, stream.EventTicketPromoted, producer.events[0].Type)
	assert.Equal(t, 1, producer.events[0].WaitlistOrder, "event carries the order the ticket held")
}

func TestService_GetSeatAvailability(t *testing.T) {
	flightID := uuid.New()
	flight := &flights.Flight{
		ID:      flightID,
		PlaneID: uuid.New(),
		Plane:   testPlane(6, 2, 0),
	}
	list := []Ticket{
		{Status: StatusConfirmed, SeatClass: ClassEconomy, Seat: "A1"},
		{Status: StatusWaitlisted, SeatClass: ClassEconomy, WaitlistOrder: 1},
	}

	repo := new(mockRepository)
	repo.On("GetAvailability", mock.Anything, flightID).Return(flight, list, nil)
	svc := newTestService(repo, &recordingProducer{})

	resp, err := svc.GetSeatAvailability(context.Background(), flightID.String())
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Waitlist)
	require.Len(t, resp.Classes, 3)

	economy := resp.Classes[0]
	assert.Equal(t, string(ClassEconomy), economy.Class)
	assert.Equal(t, 6, economy.PlaneSeats)
	assert.Equal(t, 5, economy.FreeCapacity)
	assert.NotContains(t, economy.FreeSeats, "A1")
}
