package database

import (
	"skybook/internal/flights"
	"skybook/internal/payments"
	"skybook/internal/planes"
	"skybook/internal/tickets"
	"skybook/internal/users"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	// uuid_generate_v4() lives in uuid-ossp
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	return db.AutoMigrate(
		&users.User{},
		&planes.Plane{},
		&flights.Flight{},
		&tickets.Ticket{},
		&payments.CreditCard{},
		&payments.Payment{},
	)
}
