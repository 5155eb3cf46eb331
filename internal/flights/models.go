package flights

import (
	"time"

	"skybook/internal/planes"

	"github.com/google/uuid"
)

type Flight struct {
	ID              uuid.UUID     `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name            string        `json:"name" gorm:"uniqueIndex;not null"`
	Source          string        `json:"source" gorm:"not null;index"`
	SourceCode      string        `json:"source_code" gorm:"not null"`
	Destination     string        `json:"destination" gorm:"not null;index"`
	DestinationCode string        `json:"destination_code" gorm:"not null"`
	DepartureDate   time.Time     `json:"departure_date" gorm:"not null;index"`
	DurationMinutes int           `json:"duration_minutes" gorm:"not null"`
	PlaneID         uuid.UUID     `json:"plane_id" gorm:"type:uuid;not null;index"`
	Plane           *planes.Plane `json:"plane,omitempty" gorm:"foreignKey:PlaneID"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// ArrivalDate is departure plus flight duration.
func (f *Flight) ArrivalDate() time.Time {
	return f.DepartureDate.Add(time.Duration(f.DurationMinutes) * time.Minute)
}
