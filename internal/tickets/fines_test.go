package tickets

import (
	"testing"

	"skybook/internal/users"

	"github.com/stretchr/testify/assert"
)

func TestComputeFine(t *testing.T) {
	t.Run("cancellation charges twenty percent", func(t *testing.T) {
		assert.InDelta(t, 40.0, ComputeFine(200, CauseCancelled), 0.001)
		assert.InDelta(t, 20.0, ComputeFine(100, CauseCancelled), 0.001)
	})

	t.Run("a missed flight charges ten percent", func(t *testing.T) {
		assert.InDelta(t, 50.0, ComputeFine(500, CauseMissed), 0.001)
		assert.InDelta(t, 10.0, ComputeFine(100, CauseMissed), 0.001)
	})
}

func TestResolveLiability(t *testing.T) {
	tests := []struct {
		name       string
		bookerRole users.Role
		status     Status
		hasPayment bool
		want       LiabilityTarget
	}{
		{
			name:       "user booker absorbs their own fine",
			bookerRole: users.RoleUser,
			status:     StatusConfirmed,
			hasPayment: true,
			want:       LiabilityBooker,
		},
		{
			name:       "user booker absorbs pending fines too",
			bookerRole: users.RoleUser,
			status:     StatusPending,
			hasPayment: false,
			want:       LiabilityBooker,
		},
		{
			name:       "admin-booked confirmed ticket with payment charges the card owner",
			bookerRole: users.RoleAdmin,
			status:     StatusConfirmed,
			hasPayment: true,
			want:       LiabilityCardOwner,
		},
		{
			name:       "admin-booked pending ticket charges a guest account",
			bookerRole: users.RoleAdmin,
			status:     StatusPending,
			hasPayment: false,
			want:       LiabilityGuest,
		},
		{
			name:       "admin-booked confirmed ticket without payment falls back to the booker",
			bookerRole: users.RoleAdmin,
			status:     StatusConfirmed,
			hasPayment: false,
			want:       LiabilityBooker,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveLiability(tt.bookerRole, tt.status, tt.hasPayment))
		})
	}
}
