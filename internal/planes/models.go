package planes

import (
	"time"

	"github.com/google/uuid"
)

type Plane struct {
	ID               uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name             string    `json:"name" gorm:"uniqueIndex;not null"`
	Type             string    `json:"type" gorm:"not null"` // JET, PROPELLER, WIDEBODY
	NEconomySeats    int       `json:"n_economy_seats" gorm:"not null"`
	NBusinessSeats   int       `json:"n_business_seats" gorm:"not null"`
	NFirstClassSeats int       `json:"n_first_class_seats" gorm:"not null"`
	LastMaintenance  time.Time `json:"last_maintenance"`
	NextMaintenance  time.Time `json:"next_maintenance"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// TotalSeats is the full capacity across all cabin classes.
func (p *Plane) TotalSeats() int {
	return p.NEconomySeats + p.NBusinessSeats + p.NFirstClassSeats
}
