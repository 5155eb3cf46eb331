package tickets

import (
	"time"

	"skybook/internal/flights"
)

type TicketResponse struct {
	ID             string                  `json:"id"`
	FlightID       string                  `json:"flight_id"`
	Flight         *flights.FlightResponse `json:"flight,omitempty"`
	BookedByID     string                  `json:"booked_by_id"`
	PassengerName  string                  `json:"passenger_name"`
	PassengerEmail string                  `json:"passenger_email"`
	SeatClass      string                  `json:"seat_class"`
	Seat           string                  `json:"seat,omitempty"`
	Price          float64                 `json:"price"`
	WeightKG       int                     `json:"weight_kg"`
	Status         string                  `json:"status"`
	WaitlistOrder  int                     `json:"waitlist_order,omitempty"`
	CreatedAt      time.Time               `json:"created_at"`
}

// BookFlightResponse reports whether the batch was seated or waitlisted.
type BookFlightResponse struct {
	Tickets    []TicketResponse `json:"tickets"`
	Waitlisted bool             `json:"waitlisted"`
}

// ClassAvailability reports seating for one class of a flight.
type ClassAvailability struct {
	Class        string   `json:"class"`
	PlaneSeats   int      `json:"plane_seats"`
	FreeCapacity int      `json:"free_capacity"`
	FreeSeats    []string `json:"free_seats"`
}

type SeatAvailabilityResponse struct {
	FlightID string              `json:"flight_id"`
	Classes  []ClassAvailability `json:"classes"`
	Waitlist int                 `json:"waitlist"`
}

type CancelTicketResponse struct {
	Ticket TicketResponse `json:"ticket"`
	Fine   float64        `json:"fine"`
}

func ToTicketResponse(t *Ticket) TicketResponse {
	resp := TicketResponse{
		ID:             t.ID.String(),
		FlightID:       t.FlightID.String(),
		BookedByID:     t.BookedByID.String(),
		PassengerName:  t.PassengerName,
		PassengerEmail: t.PassengerEmail,
		SeatClass:      string(t.SeatClass),
		Seat:           t.Seat,
		Price:          t.Price,
		WeightKG:       t.WeightKG,
		Status:         string(t.Status),
		WaitlistOrder:  t.WaitlistOrder,
		CreatedAt:      t.CreatedAt,
	}
	if t.Flight != nil {
		flight := flights.ToFlightResponse(t.Flight)
		resp.Flight = &flight
	}
	return resp
}

func ToTicketResponses(list []Ticket) []TicketResponse {
	responses := make([]TicketResponse, 0, len(list))
	for i := range list {
		responses = append(responses, ToTicketResponse(&list[i]))
	}
	return responses
}
