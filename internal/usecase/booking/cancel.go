package booking

import (
	"context"

	"github.com/Luexi/PAITITI/internal/audit"
	domain "github.com/Luexi/PAITITI/internal/domain/booking"
	"github.com/Luexi/PAITITI/internal/events"
	"github.com/Luexi/PAITITI/internal/httperr"
	"github.com/Luexi/PAITITI/internal/models"
	"github.com/Luexi/PAITITI/internal/timezone"
)

type CancelReservation struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	events *events.Notifier
}

func NewCancelReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
	notifier *events.Notifier,
) *CancelReservation {
	return &CancelReservation{repo: repo, audit: audit, events: notifier}
}

func (uc *CancelReservation) Execute(
	ctx context.Context,
	venueID uint,
	userID uint,
	reservationID uint,
) (*models.Reservation, error) {

	venue, err := uc.repo.GetVenueByID(ctx, venueID)
	if err != nil {
		return nil, err
	}

	res, err := uc.repo.GetReservation(ctx, venueID, reservationID)
	if err != nil {
		return nil, httperr.ErrBusiness("reservation_not_found")
	}

	now := timezone.NowIn(venue.Timezone)
	if err := domain.Cancel(res, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateReservation(ctx, res); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		VenueID:  venueID,
		UserID:   &userID,
		Action:   "reservation_cancelled",
		Entity:   "reservation",
		EntityID: &res.ID,
	})
	uc.events.Notify(venueID, "reservation", res.ID, "cancelled")

	return res, nil
}
