package tickets

import (
	"context"
	"fmt"
	"time"

	"skybook/internal/shared/config"
	"skybook/internal/stream"
	"skybook/pkg/cache"
	"skybook/pkg/logger"

	"github.com/google/uuid"
)

const (
	cacheKeyAvailability = "skybook:availability:"
	availabilityCacheTTL = 30 * time.Second
)

type Service interface {
	BookFlight(ctx context.Context, userID, flightID string, req *BookFlightRequest) (*BookFlightResponse, error)
	GetTicket(ctx context.Context, actorID string, isAdmin bool, ticketID string) (*TicketResponse, error)
	ListMyTickets(ctx context.Context, userID string) ([]TicketResponse, error)
	ListFlightTickets(ctx context.Context, flightID string) ([]TicketResponse, error)
	ListWaitlist(ctx context.Context, flightID string) ([]TicketResponse, error)
	GetSeatAvailability(ctx context.Context, flightID string) (*SeatAvailabilityResponse, error)
	EditTicket(ctx context.Context, actorID string, isAdmin bool, ticketID string, req *EditTicketRequest) (*TicketResponse, error)
	PayTicket(ctx context.Context, actorID string, isAdmin bool, ticketID string, req *PayTicketRequest) (*TicketResponse, error)
	CancelTicket(ctx context.Context, actorID string, isAdmin bool, ticketID string, req *CancelTicketRequest) (*CancelTicketResponse, error)
	PromoteTicket(ctx context.Context, ticketID string) (*TicketResponse, error)
	DeleteTicket(ctx context.Context, ticketID string) error
}

type service struct {
	repo     Repository
	producer stream.Producer
	cache    cache.Service
	config   *config.Config
	logger   *logger.Logger
}

func NewService(repo Repository, producer stream.Producer, cacheSvc cache.Service, cfg *config.Config) Service {
	return &service{
		repo:     repo,
		producer: producer,
		cache:    cacheSvc,
		config:   cfg,
		logger:   logger.GetDefault(),
	}
}

func (s *service) BookFlight(ctx context.Context, userID, flightID string, req *BookFlightRequest) (*BookFlightResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID: %w", err)
	}
	fid, err := uuid.Parse(flightID)
	if err != nil {
		return nil, fmt.Errorf("invalid flight ID: %w", err)
	}

	if len(req.Passengers) > s.config.Booking.MaxPassengersPerBooking {
		return nil, fmt.Errorf("at most %d passengers per booking", s.config.Booking.MaxPassengersPerBooking)
	}
	for _, p := range req.Passengers {
		if !SeatClass(p.Class).IsValid() {
			return nil, fmt.Errorf("invalid seat class: %s", p.Class)
		}
	}

	created, waitlisted, err := s.repo.Book(ctx, fid, uid, req.Passengers, req.AllowWaitlist,
		s.config.Booking.MaxWaitlistSize, s.config.Booking.MaxTicketsPerUserPerFlight)
	if err != nil {
		return nil, err
	}

	s.invalidateAvailability(ctx, flightID)
	s.logger.LogTicketsBooked(ctx, flightID, userID, len(created), waitlisted)

	eventType := stream.EventTicketBooked
	if waitlisted {
		eventType = stream.EventTicketWaitlisted
	}
	for i := range created {
		s.publish(ctx, eventType, &created[i])
	}

	return &BookFlightResponse{
		Tickets:    ToTicketResponses(created),
		Waitlisted: waitlisted,
	}, nil
}

func (s *service) GetTicket(ctx context.Context, actorID string, isAdmin bool, ticketID string) (*TicketResponse, error) {
	ticket, err := s.getOwned(ctx, actorID, isAdmin, ticketID)
	if err != nil {
		return nil, err
	}
	resp := ToTicketResponse(ticket)
	return &resp, nil
}

func (s *service) ListMyTickets(ctx context.Context, userID string) ([]TicketResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID: %w", err)
	}

	list, err := s.repo.ListByUser(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	return ToTicketResponses(list), nil
}

func (s *service) ListFlightTickets(ctx context.Context, flightID string) ([]TicketResponse, error) {
	fid, err := uuid.Parse(flightID)
	if err != nil {
		return nil, fmt.Errorf("invalid flight ID: %w", err)
	}

	list, err := s.repo.ListByFlight(ctx, fid)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	return ToTicketResponses(list), nil
}

func (s *service) ListWaitlist(ctx context.Context, flightID string) ([]TicketResponse, error) {
	fid, err := uuid.Parse(flightID)
	if err != nil {
		return nil, fmt.Errorf("invalid flight ID: %w", err)
	}

	list, err := s.repo.ListWaitlist(ctx, fid)
	if err != nil {
		return nil, fmt.Errorf("failed to list waitlist: %w", err)
	}
	return ToTicketResponses(list), nil
}

func (s *service) GetSeatAvailability(ctx context.Context, flightID string) (*SeatAvailabilityResponse, error) {
	fid, err := uuid.Parse(flightID)
	if err != nil {
		return nil, fmt.Errorf("invalid flight ID: %w", err)
	}

	var cached SeatAvailabilityResponse
	if err := s.cache.Get(ctx, cacheKeyAvailability+flightID, &cached); err == nil {
		return &cached, nil
	}

	flight, list, err := s.repo.GetAvailability(ctx, fid)
	if err != nil {
		return nil, err
	}

	resp := &SeatAvailabilityResponse{
		FlightID: flightID,
		Waitlist: CountWaitlisted(list),
	}
	for _, class := range AllClasses() {
		planeSeats := class.PlaneSeats(flight.Plane)
		resp.Classes = append(resp.Classes, ClassAvailability{
			Class:        string(class),
			PlaneSeats:   planeSeats,
			FreeCapacity: FreeCapacity(planeSeats, list, class),
			FreeSeats:    FreeSeats(class, planeSeats, UsedSeats(list, "")),
		})
	}

	if err := s.cache.Set(ctx, cacheKeyAvailability+flightID, resp, availabilityCacheTTL); err != nil {
		s.logger.Warn("failed to cache seat availability", "flight_id", flightID, "error", err)
	}
	return resp, nil
}

func (s *service) EditTicket(ctx context.Context, actorID string, isAdmin bool, ticketID string, req *EditTicketRequest) (*TicketResponse, error) {
	ticket, err := s.getOwned(ctx, actorID, isAdmin, ticketID)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.Edit(ctx, ticket.ID, req)
	if err != nil {
		return nil, err
	}

	s.invalidateAvailability(ctx, updated.FlightID.String())

	resp := ToTicketResponse(updated)
	return &resp, nil
}

func (s *service) PayTicket(ctx context.Context, actorID string, isAdmin bool, ticketID string, req *PayTicketRequest) (*TicketResponse, error) {
	ticket, err := s.getOwned(ctx, actorID, isAdmin, ticketID)
	if err != nil {
		return nil, err
	}

	cardID, err := uuid.Parse(req.CardID)
	if err != nil {
		return nil, fmt.Errorf("invalid card ID: %w", err)
	}

	updated, err := s.repo.Pay(ctx, ticket.ID, cardID)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, stream.EventTicketPaid, updated)

	resp := ToTicketResponse(updated)
	return &resp, nil
}

func (s *service) CancelTicket(ctx context.Context, actorID string, isAdmin bool, ticketID string, req *CancelTicketRequest) (*CancelTicketResponse, error) {
	ticket, err := s.getOwned(ctx, actorID, isAdmin, ticketID)
	if err != nil {
		return nil, err
	}

	cause := CauseCancelled
	if req.Cause != "" {
		cause = Cause(req.Cause)
	}
	// Only admins record no-shows; a passenger cannot self-report a
	// missed flight for the lower fine rate.
	if cause == CauseMissed && !isAdmin {
		cause = CauseCancelled
	}

	updated, fine, err := s.repo.Cancel(ctx, ticket.ID, cause)
	if err != nil {
		return nil, err
	}

	s.invalidateAvailability(ctx, updated.FlightID.String())
	s.logger.LogTicketCancelled(ctx, ticketID, updated.FlightID.String(), fine)

	eventType := stream.EventTicketCancelled
	if cause == CauseMissed {
		eventType = stream.EventTicketMissed
	}
	event := stream.NewTicketEvent(eventType, updated.ID, updated.FlightID, updated.BookedByID)
	event.PassengerEmail = updated.PassengerEmail
	event.Fine = fine
	s.publishEvent(ctx, event)

	return &CancelTicketResponse{
		Ticket: ToTicketResponse(updated),
		Fine:   fine,
	}, nil
}

func (s *service) PromoteTicket(ctx context.Context, ticketID string) (*TicketResponse, error) {
	tid, err := uuid.Parse(ticketID)
	if err != nil {
		return nil, fmt.Errorf("invalid ticket ID: %w", err)
	}

	before, err := s.repo.GetByID(ctx, tid)
	if err != nil {
		return nil, err
	}
	fromOrder := before.WaitlistOrder

	updated, err := s.repo.Promote(ctx, tid)
	if err != nil {
		return nil, err
	}

	s.invalidateAvailability(ctx, updated.FlightID.String())
	s.logger.LogTicketPromoted(ctx, ticketID, updated.FlightID.String(), fromOrder)

	event := stream.NewTicketEvent(stream.EventTicketPromoted, updated.ID, updated.FlightID, updated.BookedByID)
	event.Seat = updated.Seat
	event.WaitlistOrder = fromOrder
	s.publishEvent(ctx, event)

	resp := ToTicketResponse(updated)
	return &resp, nil
}

func (s *service) DeleteTicket(ctx context.Context, ticketID string) error {
	tid, err := uuid.Parse(ticketID)
	if err != nil {
		return fmt.Errorf("invalid ticket ID: %w", err)
	}

	ticket, err := s.repo.GetByID(ctx, tid)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, tid); err != nil {
		return err
	}

	s.invalidateAvailability(ctx, ticket.FlightID.String())
	return nil
}

// getOwned loads a ticket and enforces that non-admin actors only touch
// tickets they booked.
func (s *service) getOwned(ctx context.Context, actorID string, isAdmin bool, ticketID string) (*Ticket, error) {
	tid, err := uuid.Parse(ticketID)
	if err != nil {
		return nil, fmt.Errorf("invalid ticket ID: %w", err)
	}

	ticket, err := s.repo.GetByID(ctx, tid)
	if err != nil {
		return nil, err
	}

	if !isAdmin && ticket.BookedByID.String() != actorID {
		return nil, ErrNotTicketOwner
	}
	return ticket, nil
}

func (s *service) publish(ctx context.Context, eventType stream.EventType, ticket *Ticket) {
	event := stream.NewTicketEvent(eventType, ticket.ID, ticket.FlightID, ticket.BookedByID)
	event.PassengerEmail = ticket.PassengerEmail
	event.Seat = ticket.Seat
	event.WaitlistOrder = ticket.WaitlistOrder
	s.publishEvent(ctx, event)
}

func (s *service) publishEvent(ctx context.Context, event *stream.TicketEvent) {
	if err := s.producer.Publish(ctx, event); err != nil {
		// The audit stream is best effort; the booking already committed.
		s.logger.Warn("failed to publish ticket event",
			"type", string(event.Type), "ticket_id", event.TicketID.String(), "error", err)
	}
}

func (s *service) invalidateAvailability(ctx context.Context, flightID string) {
	if err := s.cache.Delete(ctx, cacheKeyAvailability+flightID); err != nil {
		s.logger.Warn("failed to invalidate availability cache", "flight_id", flightID, "error", err)
	}
}
