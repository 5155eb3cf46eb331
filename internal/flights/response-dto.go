package flights

import (
	"time"

	"skybook/internal/planes"
)

type FlightResponse struct {
	ID              string                `json:"id"`
	Name            string                `json:"name"`
	Source          string                `json:"source"`
	SourceCode      string                `json:"source_code"`
	Destination     string                `json:"destination"`
	DestinationCode string                `json:"destination_code"`
	DepartureDate   time.Time             `json:"departure_date"`
	ArrivalDate     time.Time             `json:"arrival_date"`
	DurationMinutes int                   `json:"duration_minutes"`
	PlaneID         string                `json:"plane_id"`
	Plane           *planes.PlaneResponse `json:"plane,omitempty"`
}

// CitiesResponse lists every city the airline serves.
type CitiesResponse struct {
	Sources      []string `json:"sources"`
	Destinations []string `json:"destinations"`
}

func ToFlightResponse(f *Flight) FlightResponse {
	resp := FlightResponse{
		ID:              f.ID.String(),
		Name:            f.Name,
		Source:          f.Source,
		SourceCode:      f.SourceCode,
		Destination:     f.Destination,
		DestinationCode: f.DestinationCode,
		DepartureDate:   f.DepartureDate,
		ArrivalDate:     f.ArrivalDate(),
		DurationMinutes: f.DurationMinutes,
		PlaneID:         f.PlaneID.String(),
	}
	if f.Plane != nil {
		plane := planes.ToPlaneResponse(f.Plane)
		resp.Plane = &plane
	}
	return resp
}
