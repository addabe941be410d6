package booking

import (
	"context"

	"github.com/Luexi/PAITITI/internal/audit"
	domain "github.com/Luexi/PAITITI/internal/domain/booking"
	"github.com/Luexi/PAITITI/internal/events"
	"github.com/Luexi/PAITITI/internal/httperr"
	"github.com/Luexi/PAITITI/internal/models"
)

// ConfirmReservation promueve una reserva pendiente a confirmada cuando una
// mesa se libera: corre el mismo asignador best-fit que la consulta de
// disponibilidad dentro del ámbito atómico del repositorio.
type ConfirmReservation struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	events *events.Notifier
}

func NewConfirmReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
	notifier *events.Notifier,
) *ConfirmReservation {
	return &ConfirmReservation{repo: repo, audit: audit, events: notifier}
}

func (uc *ConfirmReservation) Execute(
	ctx context.Context,
	venueID uint,
	userID uint,
	reservationID uint,
) (*models.Reservation, error) {

	res, err := uc.repo.GetReservation(ctx, venueID, reservationID)
	if err != nil {
		return nil, httperr.ErrBusiness("reservation_not_found")
	}

	if err := domain.CanConfirm(domain.Status(res.Status)); err != nil {
		return nil, err
	}

	tables, err := uc.repo.ListTables(ctx, venueID)
	if err != nil {
		return nil, err
	}
	candidates := domain.CandidateTables(tables, res.PartySize)
	if len(candidates) == 0 {
		return nil, httperr.ErrBusiness("no_table_available")
	}

	bookCtx, cancel := context.WithTimeout(ctx, bookTimeout)
	defer cancel()

	if err := uc.repo.ConfirmReservation(bookCtx, res, candidates); err != nil {
		if httperr.IsExclusionConflict(err) {
			return nil, httperr.ErrBusiness("no_table_available")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		VenueID:  venueID,
		UserID:   &userID,
		Action:   "reservation_confirmed",
		Entity:   "reservation",
		EntityID: &res.ID,
	})
	uc.events.Notify(venueID, "reservation", res.ID, "confirmed")

	return res, nil
}
