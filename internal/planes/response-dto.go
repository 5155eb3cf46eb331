package planes

import "time"

type PlaneResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Type             string    `json:"type"`
	NEconomySeats    int       `json:"n_economy_seats"`
	NBusinessSeats   int       `json:"n_business_seats"`
	NFirstClassSeats int       `json:"n_first_class_seats"`
	TotalSeats       int       `json:"total_seats"`
	LastMaintenance  time.Time `json:"last_maintenance"`
	NextMaintenance  time.Time `json:"next_maintenance"`
	CreatedAt        time.Time `json:"created_at"`
}

// PlaneReportResponse summarizes fleet usage for one plane.
type PlaneReportResponse struct {
	Plane         PlaneResponse `json:"plane"`
	FlightCount   int64         `json:"flight_count"`
	TicketsSold   int64         `json:"tickets_sold"`
	SeatsOffered  int64         `json:"seats_offered"`
	OccupancyRate float64       `json:"occupancy_rate"`
}

func ToPlaneResponse(p *Plane) PlaneResponse {
	return PlaneResponse{
		ID:               p.ID.String(),
		Name:             p.Name,
		Type:             p.Type,
		NEconomySeats:    p.NEconomySeats,
		NBusinessSeats:   p.NBusinessSeats,
		NFirstClassSeats: p.NFirstClassSeats,
		TotalSeats:       p.TotalSeats(),
		LastMaintenance:  p.LastMaintenance,
		NextMaintenance:  p.NextMaintenance,
		CreatedAt:        p.CreatedAt,
	}
}
