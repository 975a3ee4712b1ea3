package reservation

import "github.com/ReserveAquiServices/api-reservas/internal/httperr"

// ===============================
// Reservation Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func InitialStatus() Status {
	return StatusPending
}

func IsValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// IsTerminal: nenhuma transição sai de cancelled ou completed.
func IsTerminal(s Status) bool {
	return s == StatusCancelled || s == StatusCompleted
}

// ===============================
// Validations
// ===============================

func CanConfirm(current Status) error {
	if IsTerminal(current) {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

func CanComplete(current Status) error {
	if IsTerminal(current) {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}
