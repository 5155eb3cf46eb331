package stream

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventTicketBooked     EventType = "TICKET_BOOKED"
	EventTicketWaitlisted EventType = "TICKET_WAITLISTED"
	EventTicketPaid       EventType = "TICKET_PAID"
	EventTicketCancelled  EventType = "TICKET_CANCELLED"
	EventTicketMissed     EventType = "TICKET_MISSED"
	EventTicketPromoted   EventType = "TICKET_PROMOTED"
)

// TicketEvent is the audit record published for every ticket lifecycle change.
type TicketEvent struct {
	ID             uuid.UUID `json:"id"`
	Type           EventType `json:"type"`
	TicketID       uuid.UUID `json:"ticket_id"`
	FlightID       uuid.UUID `json:"flight_id"`
	UserID         uuid.UUID `json:"user_id"`
	PassengerEmail string    `json:"passenger_email,omitempty"`
	Seat           string    `json:"seat,omitempty"`
	WaitlistOrder  int       `json:"waitlist_order,omitempty"`
	Fine           float64   `json:"fine,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// NewTicketEvent stamps identity and time on an event.
func NewTicketEvent(eventType EventType, ticketID, flightID, userID uuid.UUID) *TicketEvent {
	return &TicketEvent{
		ID:         uuid.New(),
		Type:       eventType,
		TicketID:   ticketID,
		FlightID:   flightID,
		UserID:     userID,
		OccurredAt: time.Now(),
	}
}

func (e *TicketEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// PartitionKey routes all events of one flight to the same partition so
// consumers see per-flight ordering.
func (e *TicketEvent) PartitionKey() string {
	return e.FlightID.String()
}
