package tickets

import "skybook/internal/users"

// Fine rates by cause.
const (
	fineRateCancelled = 0.20
	fineRateMissed    = 0.10
)

// ComputeFine returns the cancellation penalty for a ticket price.
func ComputeFine(price float64, cause Cause) float64 {
	switch cause {
	case CauseMissed:
		return price * fineRateMissed
	default:
		return price * fineRateCancelled
	}
}

// LiabilityTarget names the account that absorbs a cancellation fine.
type LiabilityTarget string

const (
	// LiabilityBooker charges the account that booked the ticket.
	LiabilityBooker LiabilityTarget = "BOOKER"
	// LiabilityCardOwner charges the owner of the card that paid.
	LiabilityCardOwner LiabilityTarget = "CARD_OWNER"
	// LiabilityGuest charges a find-or-create account keyed by the
	// passenger's email.
	LiabilityGuest LiabilityTarget = "GUEST"
)

// ResolveLiability decides who absorbs the fine for a cancelled ticket.
// The decision list is strictly ordered; the first match wins.
//
//  1. A USER booker always absorbs their own fines.
//  2. An admin-booked CONFIRMED ticket with a traceable payment charges
//     the card owner, who is the person that actually paid.
//  3. An admin-booked PENDING ticket has no payer yet, so the fine lands
//     on a guest account keyed by the passenger's email.
//  4. Anything else falls back to the booking admin for audit purposes.
func ResolveLiability(bookerRole users.Role, status Status, hasPayment bool) LiabilityTarget {
	if bookerRole == users.RoleUser {
		return LiabilityBooker
	}
	if bookerRole == users.RoleAdmin && status == StatusConfirmed && hasPayment {
		return LiabilityCardOwner
	}
	if bookerRole == users.RoleAdmin && status == StatusPending {
		return LiabilityGuest
	}
	return LiabilityBooker
}
