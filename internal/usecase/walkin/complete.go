package walkin

import (
	"context"

	"github.com/Luexi/PAITITI/internal/audit"
	domain "github.com/Luexi/PAITITI/internal/domain/booking"
	"github.com/Luexi/PAITITI/internal/events"
	"github.com/Luexi/PAITITI/internal/httperr"
	"github.com/Luexi/PAITITI/internal/models"
	"github.com/Luexi/PAITITI/internal/timezone"
)

type CompleteWalkin struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	events *events.Notifier
}

func NewCompleteWalkin(
	repo domain.Repository,
	audit *audit.Dispatcher,
	notifier *events.Notifier,
) *CompleteWalkin {
	return &CompleteWalkin{repo: repo, audit: audit, events: notifier}
}

// Execute cierra el intervalo abierto del walk-in: la mesa deja de estar
// ocupada desde este momento.
func (uc *CompleteWalkin) Execute(
	ctx context.Context,
	venueID uint,
	userID uint,
	walkinID uint,
) (*models.Walkin, error) {

	venue, err := uc.repo.GetVenueByID(ctx, venueID)
	if err != nil {
		return nil, err
	}

	w, err := uc.repo.GetWalkin(ctx, venueID, walkinID)
	if err != nil {
		return nil, httperr.ErrBusiness("walkin_not_found")
	}

	if domain.WalkinStatus(w.Status) != domain.WalkinActive {
		return nil, httperr.ErrBusiness("invalid_state")
	}

	now := timezone.NowIn(venue.Timezone)
	w.Status = string(domain.WalkinCompleted)
	w.EndTime = &now

	if err := uc.repo.UpdateWalkin(ctx, w); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		VenueID:  venueID,
		UserID:   &userID,
		Action:   "walkin_completed",
		Entity:   "walkin",
		EntityID: &w.ID,
	})
	uc.events.Notify(venueID, "walkin", w.ID, "completed")

	return w, nil
}
