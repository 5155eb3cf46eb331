package flights

import "time"

type CreateFlightRequest struct {
	Name            string    `json:"name" validate:"required,min=2,max=100"`
	Source          string    `json:"source" validate:"required"`
	SourceCode      string    `json:"source_code" validate:"required,len=3"`
	Destination     string    `json:"destination" validate:"required"`
	DestinationCode string    `json:"destination_code" validate:"required,len=3"`
	DepartureDate   time.Time `json:"departure_date" validate:"required"`
	DurationMinutes int       `json:"duration_minutes" validate:"required,min=1"`
	PlaneID         string    `json:"plane_id" validate:"required,uuid"`
}

type UpdateFlightRequest struct {
	Name            *string    `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Source          *string    `json:"source,omitempty"`
	SourceCode      *string    `json:"source_code,omitempty" validate:"omitempty,len=3"`
	Destination     *string    `json:"destination,omitempty"`
	DestinationCode *string    `json:"destination_code,omitempty" validate:"omitempty,len=3"`
	DepartureDate   *time.Time `json:"departure_date,omitempty"`
	DurationMinutes *int       `json:"duration_minutes,omitempty" validate:"omitempty,min=1"`
	PlaneID         *string    `json:"plane_id,omitempty" validate:"omitempty,uuid"`
}

// SearchFilters narrows the public flight listing.
type SearchFilters struct {
	Source      string `form:"source"`
	Destination string `form:"destination"`
	Date        string `form:"date"` // YYYY-MM-DD
}
