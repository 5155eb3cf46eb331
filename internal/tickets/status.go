package tickets

// Status is the lifecycle state of a ticket.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusConfirmed  Status = "CONFIRMED"
	StatusWaitlisted Status = "WAITLISTED"
	StatusCancelled  Status = "CANCELLED"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusWaitlisted, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsActive reports whether the ticket still counts against the flight.
func (s Status) IsActive() bool {
	return s != StatusCancelled && s != ""
}

// HoldsSeat reports whether the ticket occupies capacity in its class.
// Waitlisted tickets hold no seat until promoted.
func (s Status) HoldsSeat() bool {
	return s == StatusPending || s == StatusConfirmed
}

// CanTransitionTo enforces the lifecycle state machine. CANCELLED is terminal.
func (s Status) CanTransitionTo(target Status) bool {
	switch s {
	case StatusPending:
		return target == StatusConfirmed || target == StatusCancelled
	case StatusConfirmed:
		return target == StatusCancelled
	case StatusWaitlisted:
		return target == StatusConfirmed || target == StatusCancelled
	case StatusCancelled:
		return false
	default:
		return false
	}
}

// Cause classifies why a ticket left the active pool.
type Cause string

const (
	CauseCancelled Cause = "CANCELLED"
	CauseMissed    Cause = "MISSED"
)

func (c Cause) IsValid() bool {
	return c == CauseCancelled || c == CauseMissed
}
