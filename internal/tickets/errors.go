package tickets

import "errors"

var (
	ErrTicketNotFound     = errors.New("ticket not found")
	ErrCapacityExhausted  = errors.New("no seats remain in the requested class")
	ErrDuplicatePassenger = errors.New("passenger already holds an active ticket on this flight")
	ErrAlreadyCancelled   = errors.New("ticket is already cancelled")
	ErrNotWaitlisted      = errors.New("ticket is not waitlisted")
	ErrWaitlistFull       = errors.New("waitlist is full")
	ErrSeatTaken          = errors.New("seat is already taken")
	ErrInvalidSeat        = errors.New("seat code is not valid for this class")
	ErrNotPending         = errors.New("ticket is not awaiting payment")
	ErrClassChangeLocked  = errors.New("seat class cannot change on a confirmed ticket")
	ErrTicketLimitReached = errors.New("ticket limit reached for this flight")
	ErrNotTicketOwner     = errors.New("ticket belongs to another user")
)
