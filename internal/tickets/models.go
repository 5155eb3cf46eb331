package tickets

import (
	"time"

	"skybook/internal/flights"

	"github.com/google/uuid"
)

type Ticket struct {
	ID             uuid.UUID       `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	FlightID       uuid.UUID       `json:"flight_id" gorm:"type:uuid;not null;index"`
	Flight         *flights.Flight `json:"flight,omitempty" gorm:"foreignKey:FlightID"`
	BookedByID     uuid.UUID       `json:"booked_by_id" gorm:"type:uuid;not null;index"`
	PassengerName  string          `json:"passenger_name" gorm:"not null"`
	PassengerEmail string          `json:"passenger_email" gorm:"not null;index"`
	SeatClass      SeatClass       `json:"seat_class" gorm:"not null"`
	Seat           string          `json:"seat" gorm:"default:''"`
	Price          float64         `json:"price" gorm:"not null"`
	WeightKG       int             `json:"weight_kg" gorm:"not null"`
	Status         Status          `json:"status" gorm:"not null;index"`
	WaitlistOrder  int             `json:"waitlist_order" gorm:"not null;default:0"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
