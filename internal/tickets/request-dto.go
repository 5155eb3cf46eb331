package tickets

// PassengerInput describes one passenger in a booking request. Seat is
// optional; when empty a seat is assigned automatically.
type PassengerInput struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Email string `json:"email" validate:"required,email"`
	Class string `json:"class" validate:"required,oneof=ECONOMY BUSINESS FIRSTCLASS"`
	Seat  string `json:"seat,omitempty"`
}

type BookFlightRequest struct {
	Passengers    []PassengerInput `json:"passengers" validate:"required,min=1,max=10,dive"`
	AllowWaitlist bool             `json:"allow_waitlist"`
}

type EditTicketRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
	Seat  *string `json:"seat,omitempty"`
	Class *string `json:"class,omitempty" validate:"omitempty,oneof=ECONOMY BUSINESS FIRSTCLASS"`
}

type PayTicketRequest struct {
	CardID string `json:"card_id" validate:"required,uuid"`
}

type CancelTicketRequest struct {
	// Cause defaults to CANCELLED. MISSED is the admin no-show path
	// with the reduced fine rate.
	Cause string `json:"cause,omitempty" validate:"omitempty,oneof=CANCELLED MISSED"`
}
