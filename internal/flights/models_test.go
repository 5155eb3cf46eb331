package flights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFlight_ArrivalDate(t *testing.T) {
	departure := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	flight := Flight{DepartureDate: departure, DurationMinutes: 430}

	assert.Equal(t, departure.Add(430*time.Minute), flight.ArrivalDate())
}
