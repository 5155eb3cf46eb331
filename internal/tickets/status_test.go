package tickets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    Status
		to      Status
		allowed bool
	}{
		{"pending to confirmed", StatusPending, StatusConfirmed, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"pending to waitlisted", StatusPending, StatusWaitlisted, false},
		{"confirmed to cancelled", StatusConfirmed, StatusCancelled, true},
		{"confirmed to pending", StatusConfirmed, StatusPending, false},
		{"waitlisted to confirmed", StatusWaitlisted, StatusConfirmed, true},
		{"waitlisted to cancelled", StatusWaitlisted, StatusCancelled, true},
		{"waitlisted to pending", StatusWaitlisted, StatusPending, false},
		{"cancelled is terminal toward confirmed", StatusCancelled, StatusConfirmed, false},
		{"cancelled is terminal toward pending", StatusCancelled, StatusPending, false},
		{"cancelled is terminal toward waitlisted", StatusCancelled, StatusWaitlisted, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestStatus_HoldsSeat(t *testing.T) {
	assert.True(t, StatusPending.HoldsSeat())
	assert.True(t, StatusConfirmed.HoldsSeat())
	assert.False(t, StatusWaitlisted.HoldsSeat())
	assert.False(t, StatusCancelled.HoldsSeat())
}

func TestStatus_IsActive(t *testing.T) {
	assert.True(t, StatusPending.IsActive())
	assert.True(t, StatusConfirmed.IsActive())
	assert.True(t, StatusWaitlisted.IsActive())
	assert.False(t, StatusCancelled.IsActive())
}

func TestStatus_IsValid(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusConfirmed, StatusWaitlisted, StatusCancelled} {
		assert.True(t, s.IsValid())
	}
	assert.False(t, Status("BOARDED").IsValid())
	assert.False(t, Status("").IsValid())
}

func TestCause_IsValid(t *testing.T) {
	assert.True(t, CauseCancelled.IsValid())
	assert.True(t, CauseMissed.IsValid())
	assert.False(t, Cause("REFUNDED").IsValid())
}
