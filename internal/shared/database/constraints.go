package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds critical database constraints for concurrency control
func MigrateConstraints(db *gorm.DB) error {
	// A seat code may be held by at most one non-cancelled ticket per flight.
	// Waitlisted tickets carry an empty seat and are excluded.
	err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS unique_seat_per_flight
		ON tickets (flight_id, seat)
		WHERE status <> 'CANCELLED' AND seat <> '';
	`).Error
	if err != nil {
		return err
	}

	// Waitlist order must be unique among waitlisted tickets of a flight
	err = db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS unique_waitlist_order_per_flight
		ON tickets (flight_id, waitlist_order)
		WHERE status = 'WAITLISTED';
	`).Error
	if err != nil {
		return err
	}

	// Index for ticket lookups by flight and status
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_tickets_flight_status
		ON tickets (flight_id, status);
	`).Error
	if err != nil {
		return err
	}

	return nil
}
