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

type MarkNoShow struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	events *events.Notifier
}

func NewMarkNoShow(
	repo domain.Repository,
	audit *audit.Dispatcher,
	notifier *events.Notifier,
) *MarkNoShow {
	return &MarkNoShow{repo: repo, audit: audit, events: notifier}
}

func (uc *MarkNoShow) Execute(
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
	if err := domain.MarkNoShow(res, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateReservation(ctx, res); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		VenueID:  venueID,
		UserID:   &userID,
		Action:   "reservation_no_show",
		Entity:   "reservation",
		EntityID: &res.ID,
	})
	uc.events.Notify(venueID, "reservation", res.ID, "no_show")

	return res, nil
}
