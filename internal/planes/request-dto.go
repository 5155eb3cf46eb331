package planes

import "time"

type CreatePlaneRequest struct {
	Name             string    `json:"name" validate:"required,min=2,max=100"`
	Type             string    `json:"type" validate:"required"`
	NEconomySeats    int       `json:"n_economy_seats" validate:"min=0"`
	NBusinessSeats   int       `json:"n_business_seats" validate:"min=0"`
	NFirstClassSeats int       `json:"n_first_class_seats" validate:"min=0"`
	LastMaintenance  time.Time `json:"last_maintenance"`
	NextMaintenance  time.Time `json:"next_maintenance"`
}

type UpdatePlaneRequest struct {
	Name             *string    `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Type             *string    `json:"type,omitempty"`
	NEconomySeats    *int       `json:"n_economy_seats,omitempty" validate:"omitempty,min=0"`
	NBusinessSeats   *int       `json:"n_business_seats,omitempty" validate:"omitempty,min=0"`
	NFirstClassSeats *int       `json:"n_first_class_seats,omitempty" validate:"omitempty,min=0"`
	LastMaintenance  *time.Time `json:"last_maintenance,omitempty"`
	NextMaintenance  *time.Time `json:"next_maintenance,omitempty"`
}
