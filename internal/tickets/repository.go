package tickets

import (
	"context"
	"errors"
	"time"

	"skybook/internal/flights"
	"skybook/internal/payments"
	"skybook/internal/planes"
	"skybook/internal/users"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository runs every mutation as a transaction holding the flight row
// lock, so seat occupancy and waitlist ordering are serialized per
// flight. Unrelated flights never contend.
type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Ticket, error)
	ListByFlight(ctx context.Context, flightID uuid.UUID) ([]Ticket, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Ticket, error)
	ListWaitlist(ctx context.Context, flightID uuid.UUID) ([]Ticket, error)
	GetAvailability(ctx context.Context, flightID uuid.UUID) (*flights.Flight, []Ticket, error)

	Book(ctx context.Context, flightID, bookedByID uuid.UUID, passengers []PassengerInput, allowWaitlist bool, maxWaitlist, maxPerUser int) ([]Ticket, bool, error)
	Pay(ctx context.Context, ticketID, cardID uuid.UUID) (*Ticket, error)
	Cancel(ctx context.Context, ticketID uuid.UUID, cause Cause) (*Ticket, float64, error)
	Promote(ctx context.Context, ticketID uuid.UUID) (*Ticket, error)
	Edit(ctx context.Context, ticketID uuid.UUID, req *EditTicketRequest) (*Ticket, error)
	Delete(ctx context.Context, ticketID uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Ticket, error) {
	var ticket Ticket
	err := r.db.WithContext(ctx).Preload("Flight").Where("id = ?", id).First(&ticket).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}
	return &ticket, nil
}

func (r *repository) ListByFlight(ctx context.Context, flightID uuid.UUID) ([]Ticket, error) {
	var list []Ticket
	err := r.db.WithContext(ctx).
		Where("flight_id = ?", flightID).
		Order("created_at ASC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]Ticket, error) {
	var list []Ticket
	err := r.db.WithContext(ctx).
		Preload("Flight").
		Where("booked_by_id = ?", userID).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *repository) ListWaitlist(ctx context.Context, flightID uuid.UUID) ([]Ticket, error) {
	var list []Ticket
	err := r.db.WithContext(ctx).
		Where("flight_id = ? AND status = ?", flightID, StatusWaitlisted).
		Order("waitlist_order ASC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *repository) GetAvailability(ctx context.Context, flightID uuid.UUID) (*flights.Flight, []Ticket, error) {
	var flight flights.Flight
	err := r.db.WithContext(ctx).Preload("Plane").Where("id = ?", flightID).First(&flight).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, flights.ErrFlightNotFound
		}
		return nil, nil, err
	}

	list, err := r.ListByFlight(ctx, flightID)
	if err != nil {
		return nil, nil, err
	}
	return &flight, list, nil
}

// lockFlight takes the per-flight exclusive lock that serializes every
// seat or waitlist mutation for the flight, and loads its plane.
func lockFlight(tx *gorm.DB, flightID uuid.UUID) (*flights.Flight, error) {
	var flight flights.Flight
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", flightID).
		First(&flight).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, flights.ErrFlightNotFound
		}
		return nil, err
	}

	var plane planes.Plane
	if err := tx.Where("id = ?", flight.PlaneID).First(&plane).Error; err != nil {
		return nil, err
	}
	flight.Plane = &plane
	return &flight, nil
}

func loadFlightTickets(tx *gorm.DB, flightID uuid.UUID) ([]Ticket, error) {
	var list []Ticket
	err := tx.Where("flight_id = ?", flightID).Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *repository) Book(ctx context.Context, flightID, bookedByID uuid.UUID, passengers []PassengerInput, allowWaitlist bool, maxWaitlist, maxPerUser int) ([]Ticket, bool, error) {
	var created []Ticket
	waitlisted := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		flight, err := lockFlight(tx, flightID)
		if err != nil {
			return err
		}

		existing, err := loadFlightTickets(tx, flightID)
		if err != nil {
			return err
		}

		if err := CheckDuplicatePassengers(existing, passengers); err != nil {
			return err
		}

		mine := 0
		for i := range existing {
			if existing[i].BookedByID == bookedByID && existing[i].Status.IsActive() {
				mine++
			}
		}
		if mine+len(passengers) > maxPerUser {
			return ErrTicketLimitReached
		}

		drafts, err := PlanSeatAssignments(flight.Plane, existing, passengers, flightID, bookedByID)
		if err == nil {
			if err := tx.Create(&drafts).Error; err != nil {
				return err
			}
			created = drafts
			return nil
		}
		if !errors.Is(err, ErrCapacityExhausted) {
			return err
		}

		// Capacity exhausted. Fall through to the waitlist when allowed.
		if !allowWaitlist {
			return ErrCapacityExhausted
		}

		startOrder, err := PlanWaitlistAdmission(CountWaitlisted(existing), len(passengers), maxWaitlist)
		if err != nil {
			return err
		}

		drafts = PlanWaitlistTickets(passengers, startOrder, flightID, bookedByID)
		if err := tx.Create(&drafts).Error; err != nil {
			return err
		}
		created = drafts
		waitlisted = true
		return nil
	})

	if err != nil {
		return nil, false, err
	}
	return created, waitlisted, nil
}

func (r *repository) Pay(ctx context.Context, ticketID, cardID uuid.UUID) (*Ticket, error) {
	var updated *Ticket

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ticket Ticket
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", ticketID).
			First(&ticket).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTicketNotFound
			}
			return err
		}

		if ticket.Status == StatusCancelled {
			return ErrAlreadyCancelled
		}
		if ticket.Status != StatusPending {
			return ErrNotPending
		}

		var card payments.CreditCard
		err = tx.Where("id = ?", cardID).First(&card).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return payments.ErrCardNotFound
			}
			return err
		}

		payment := payments.Payment{
			TicketID: ticket.ID,
			CardID:   card.ID,
			Amount:   ticket.Price,
			Date:     time.Now(),
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		if err := tx.Model(&Ticket{}).Where("id = ?", ticket.ID).
			Update("status", StatusConfirmed).Error; err != nil {
			return err
		}

		ticket.Status = StatusConfirmed
		updated = &ticket
		return nil
	})

	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *repository) Cancel(ctx context.Context, ticketID uuid.UUID, cause Cause) (*Ticket, float64, error) {
	var updated *Ticket
	var fine float64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Resolve the flight before locking; the ticket itself is
		// re-read under the flight lock below.
		var probe Ticket
		err := tx.Where("id = ?", ticketID).First(&probe).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTicketNotFound
			}
			return err
		}

		if _, err := lockFlight(tx, probe.FlightID); err != nil {
			return err
		}

		var ticket Ticket
		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", ticketID).
			First(&ticket).Error
		if err != nil {
			return err
		}

		// Status re-check under the lock guards against two concurrent
		// cancels both passing an earlier check.
		if ticket.Status == StatusCancelled {
			return ErrAlreadyCancelled
		}

		if ticket.Status == StatusWaitlisted {
			// Waitlisted tickets held no seat, so cancelling is free.
			// Closing the order gap keeps the queue dense.
			err := tx.Model(&Ticket{}).
				Where("flight_id = ? AND status = ? AND waitlist_order > ?",
					ticket.FlightID, StatusWaitlisted, ticket.WaitlistOrder).
				Update("waitlist_order", gorm.Expr("waitlist_order - 1")).Error
			if err != nil {
				return err
			}
		} else {
			fine = ComputeFine(ticket.Price, cause)
			liableID, err := resolveLiableUser(tx, &ticket)
			if err != nil {
				return err
			}
			err = tx.Model(&users.User{}).
				Where("id = ?", liableID).
				Update("fine", gorm.Expr("fine + ?", fine)).Error
			if err != nil {
				return err
			}
		}

		err = tx.Model(&Ticket{}).Where("id = ?", ticket.ID).
			Updates(map[string]interface{}{
				"status":         StatusCancelled,
				"waitlist_order": 0,
			}).Error
		if err != nil {
			return err
		}

		ticket.Status = StatusCancelled
		ticket.WaitlistOrder = 0
		updated = &ticket
		return nil
	})

	if err != nil {
		return nil, 0, err
	}
	return updated, fine, nil
}

// resolveLiableUser applies the ordered liability rules and returns the
// account to charge.
func resolveLiableUser(tx *gorm.DB, ticket *Ticket) (uuid.UUID, error) {
	var booker users.User
	if err := tx.Where("id = ?", ticket.BookedByID).First(&booker).Error; err != nil {
		return uuid.Nil, err
	}

	var payment payments.Payment
	hasPayment := true
	err := tx.Where("ticket_id = ?", ticket.ID).First(&payment).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, err
		}
		hasPayment = false
	}

	switch ResolveLiability(booker.Role, ticket.Status, hasPayment) {
	case LiabilityCardOwner:
		var card payments.CreditCard
		if err := tx.Where("id = ?", payment.CardID).First(&card).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Card purged since payment; the booker absorbs it.
				return booker.ID, nil
			}
			return uuid.Nil, err
		}
		return card.UserID, nil

	case LiabilityGuest:
		var guest users.User
		err := tx.Where("email = ?", ticket.PassengerEmail).First(&guest).Error
		if err == nil {
			return guest.ID, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, err
		}
		guest = users.User{
			FirstName: ticket.PassengerName,
			LastName:  "",
			Email:     ticket.PassengerEmail,
			Password:  "",
			Role:      users.RoleUser,
			Enabled:   false,
		}
		if err := tx.Create(&guest).Error; err != nil {
			return uuid.Nil, err
		}
		return guest.ID, nil

	default:
		return booker.ID, nil
	}
}

func (r *repository) Promote(ctx context.Context, ticketID uuid.UUID) (*Ticket, error) {
	var updated *Ticket

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var probe Ticket
		err := tx.Where("id = ?", ticketID).First(&probe).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTicketNotFound
			}
			return err
		}

		flight, err := lockFlight(tx, probe.FlightID)
		if err != nil {
			return err
		}

		var ticket Ticket
		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", ticketID).
			First(&ticket).Error
		if err != nil {
			return err
		}

		if ticket.Status == StatusCancelled {
			return ErrAlreadyCancelled
		}
		if ticket.Status != StatusWaitlisted {
			return ErrNotWaitlisted
		}

		existing, err := loadFlightTickets(tx, ticket.FlightID)
		if err != nil {
			return err
		}

		planeSeats := ticket.SeatClass.PlaneSeats(flight.Plane)
		if FreeCapacity(planeSeats, existing, ticket.SeatClass) < 1 {
			return ErrCapacityExhausted
		}

		seat, err := RandomFreeSeat(ticket.SeatClass, planeSeats, UsedSeats(existing, ""))
		if err != nil {
			return err
		}

		err = tx.Model(&Ticket{}).
			Where("flight_id = ? AND status = ? AND waitlist_order > ?",
				ticket.FlightID, StatusWaitlisted, ticket.WaitlistOrder).
			Update("waitlist_order", gorm.Expr("waitlist_order - 1")).Error
		if err != nil {
			return err
		}

		err = tx.Model(&Ticket{}).Where("id = ?", ticket.ID).
			Updates(map[string]interface{}{
				"status":         StatusConfirmed,
				"waitlist_order": 0,
				"seat":           seat,
			}).Error
		if err != nil {
			return err
		}

		ticket.Status = StatusConfirmed
		ticket.WaitlistOrder = 0
		ticket.Seat = seat
		updated = &ticket
		return nil
	})

	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *repository) Edit(ctx context.Context, ticketID uuid.UUID, req *EditTicketRequest) (*Ticket, error) {
	var updated *Ticket

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var probe Ticket
		err := tx.Where("id = ?", ticketID).First(&probe).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTicketNotFound
			}
			return err
		}

		flight, err := lockFlight(tx, probe.FlightID)
		if err != nil {
			return err
		}

		var ticket Ticket
		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", ticketID).
			First(&ticket).Error
		if err != nil {
			return err
		}

		if ticket.Status == StatusCancelled {
			return ErrAlreadyCancelled
		}

		existing, err := loadFlightTickets(tx, ticket.FlightID)
		if err != nil {
			return err
		}

		updates := make(map[string]interface{})

		if req.Name != nil {
			updates["passenger_name"] = *req.Name
			ticket.PassengerName = *req.Name
		}

		if req.Email != nil && *req.Email != ticket.PassengerEmail {
			others := make([]Ticket, 0, len(existing))
			for i := range existing {
				if existing[i].ID != ticket.ID {
					others = append(others, existing[i])
				}
			}
			check := []PassengerInput{{Email: *req.Email}}
			if err := CheckDuplicatePassengers(others, check); err != nil {
				return err
			}
			updates["passenger_email"] = *req.Email
			ticket.PassengerEmail = *req.Email
		}

		class := ticket.SeatClass
		classChanged := false
		if req.Class != nil && SeatClass(*req.Class) != ticket.SeatClass {
			// Class changes on confirmed tickets are rejected here, not
			// just hidden in the UI: price and capacity accounting have
			// already been settled by payment.
			if ticket.Status == StatusConfirmed {
				return ErrClassChangeLocked
			}
			class = SeatClass(*req.Class)
			classChanged = true

			if ticket.Status.HoldsSeat() {
				if FreeCapacity(class.PlaneSeats(flight.Plane), existing, class) < 1 {
					return ErrCapacityExhausted
				}
			}

			updates["seat_class"] = class
			updates["price"] = class.Price()
			updates["weight_kg"] = class.WeightKG()
			ticket.SeatClass = class
			ticket.Price = class.Price()
			ticket.WeightKG = class.WeightKG()
		}

		// A class change on a seat-holding ticket always needs a seat in
		// the new namespace, whether or not one was requested.
		if ticket.Status.HoldsSeat() && (req.Seat != nil || classChanged) {
			planeSeats := class.PlaneSeats(flight.Plane)
			used := UsedSeats(existing, ticket.ID.String())

			var seat string
			if req.Seat != nil && *req.Seat != "" {
				seat = *req.Seat
				if err := ValidateSeat(class, planeSeats, seat, used); err != nil {
					return err
				}
			} else {
				seat, err = RandomFreeSeat(class, planeSeats, used)
				if err != nil {
					return err
				}
			}
			updates["seat"] = seat
			ticket.Seat = seat
		}

		if len(updates) > 0 {
			if err := tx.Model(&Ticket{}).Where("id = ?", ticket.ID).Updates(updates).Error; err != nil {
				return err
			}
		}

		updated = &ticket
		return nil
	})

	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete is the admin hard purge. Cancellation never deletes.
func (r *repository) Delete(ctx context.Context, ticketID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ticket Ticket
		err := tx.Where("id = ?", ticketID).First(&ticket).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTicketNotFound
			}
			return err
		}

		if _, err := lockFlight(tx, ticket.FlightID); err != nil {
			return err
		}

		// A purged waitlisted ticket must not leave a gap behind.
		if ticket.Status == StatusWaitlisted {
			err := tx.Model(&Ticket{}).
				Where("flight_id = ? AND status = ? AND waitlist_order > ?",
					ticket.FlightID, StatusWaitlisted, ticket.WaitlistOrder).
				Update("waitlist_order", gorm.Expr("waitlist_order - 1")).Error
			if err != nil {
				return err
			}
		}

		return tx.Where("id = ?", ticketID).Delete(&Ticket{}).Error
	})
}
