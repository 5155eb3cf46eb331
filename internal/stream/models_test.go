package stream

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTicketEvent(t *testing.T) {
	ticketID := uuid.New()
	flightID := uuid.New()
	userID := uuid.New()

	event := NewTicketEvent(EventTicketBooked, ticketID, flightID, userID)

	assert.NotEqual(t, uuid.Nil, event.ID)
	assert.Equal(t, EventTicketBooked, event.Type)
	assert.Equal(t, ticketID, event.TicketID)
	assert.False(t, event.OccurredAt.IsZero())
}

func TestTicketEvent_PartitionKey(t *testing.T) {
	flightID := uuid.New()
	a := NewTicketEvent(EventTicketBooked, uuid.New(), flightID, uuid.New())
	b := NewTicketEvent(EventTicketCancelled, uuid.New(), flightID, uuid.New())

	// Events of one flight share a partition so consumers see them in order.
	assert.Equal(t, a.PartitionKey(), b.PartitionKey())
	assert.Equal(t, flightID.String(), a.PartitionKey())
}

func TestTicketEvent_ToJSON(t *testing.T) {
	event := NewTicketEvent(EventTicketPromoted, uuid.New(), uuid.New(), uuid.New())
	event.Seat = "A1"
	event.WaitlistOrder = 2

	raw, err := event.ToJSON()
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "TICKET_PROMOTED", decoded["type"])
	assert.Equal(t, "A1", decoded["seat"])
}
