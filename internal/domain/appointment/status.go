package appointment

import "github.com/nerobarber/booking-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
)

// Points credited to the client when an appointment completes.
const LoyaltyAward = 10

// rank orders the lifecycle: pending → confirmed → completed.
var rank = map[Status]int{
	StatusPending:   0,
	StatusConfirmed: 1,
	StatusCompleted: 2,
}

func (s Status) Valid() bool {
	_, ok := rank[s]
	return ok
}

// ===============================
// Validations
// ===============================

// CanTransition allows exactly one forward step. Backward moves, repeats
// and skips (pending → completed) are rejected; completed is terminal.
func CanTransition(from, to Status) error {
	rf, okFrom := rank[from]
	rt, okTo := rank[to]
	if !okFrom || !okTo {
		return httperr.ErrBusiness("invalid_status")
	}
	if rt != rf+1 {
		return httperr.ErrBusiness("invalid_transition")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}
