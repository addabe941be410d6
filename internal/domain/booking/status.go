package booking

import "github.com/Luexi/PAITITI/internal/httperr"

// ===============================
// Reservation Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusSeated    Status = "seated"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no_show"
)

// IsOccupying indica si una reserva en este estado ocupa su mesa
// para efectos de solape.
func IsOccupying(s Status) bool {
	return s == StatusConfirmed || s == StatusSeated
}

func isTerminal(s Status) bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusNoShow
}

// ===============================
// Validations
// ===============================

// CanConfirm: solo una reserva pendiente puede confirmarse.
func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanSeat: check-in solo sobre reserva confirmada.
func CanSeat(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanComplete: salida solo desde sentado.
func CanComplete(current Status) error {
	if current != StatusSeated {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanCancel: cualquier estado no terminal puede cancelarse.
func CanCancel(current Status) error {
	if isTerminal(current) {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanMarkNoShow: cualquier estado no terminal puede marcarse como no-show.
func CanMarkNoShow(current Status) error {
	if isTerminal(current) {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus(tableAssigned bool) Status {
	if tableAssigned {
		return StatusConfirmed
	}
	return StatusPending
}

// ===============================
// Walk-in Status
// ===============================

type WalkinStatus string

const (
	WalkinActive    WalkinStatus = "active"
	WalkinCompleted WalkinStatus = "completed"
)
