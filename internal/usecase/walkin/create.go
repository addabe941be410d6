package walkin

import (
	"context"
	"time"

	"github.com/Luexi/PAITITI/internal/audit"
	domain "github.com/Luexi/PAITITI/internal/domain/booking"
	"github.com/Luexi/PAITITI/internal/events"
	"github.com/Luexi/PAITITI/internal/httperr"
	"github.com/Luexi/PAITITI/internal/models"
	"github.com/Luexi/PAITITI/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateWalkinInput struct {
	VenueID uint

	GuestName  string
	GuestPhone string
	PartySize  int

	TableID *uint
	Notes   string
}

// ======================================================
// USE CASE
// ======================================================

type CreateWalkin struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	events *events.Notifier
}

func NewCreateWalkin(
	repo domain.Repository,
	audit *audit.Dispatcher,
	notifier *events.Notifier,
) *CreateWalkin {
	return &CreateWalkin{repo: repo, audit: audit, events: notifier}
}

// Execute sienta a un comensal sin reserva. El walk-in nace activo con
// intervalo abierto desde ahora; si trae mesa, la mesa debe estar libre de
// ocupaciones desde este instante.
func (uc *CreateWalkin) Execute(
	ctx context.Context,
	userID uint,
	in CreateWalkinInput,
) (*models.Walkin, error) {

	venue, err := uc.repo.GetVenueByID(ctx, in.VenueID)
	if err != nil {
		return nil, httperr.ErrBusiness("venue_not_found")
	}

	now := timezone.NowIn(venue.Timezone)

	if in.TableID != nil {
		if err := uc.assertTableFree(ctx, in.VenueID, *in.TableID, in.PartySize, now); err != nil {
			return nil, err
		}
	}

	w := &models.Walkin{
		VenueID:    in.VenueID,
		GuestName:  in.GuestName,
		GuestPhone: in.GuestPhone,
		PartySize:  in.PartySize,
		StartTime:  now,
		Status:     string(domain.WalkinActive),
		TableID:    in.TableID,
		Notes:      in.Notes,
	}

	if err := uc.repo.CreateWalkin(ctx, w); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		VenueID:  in.VenueID,
		UserID:   &userID,
		Action:   "walkin_created",
		Entity:   "walkin",
		EntityID: &w.ID,
	})
	uc.events.Notify(in.VenueID, "walkin", w.ID, "created")

	return w, nil
}

func (uc *CreateWalkin) assertTableFree(
	ctx context.Context,
	venueID uint,
	tableID uint,
	partySize int,
	now time.Time,
) error {

	tables, err := uc.repo.ListTables(ctx, venueID)
	if err != nil {
		return err
	}

	var table *models.Table
	for i := range tables {
		if tables[i].ID == tableID {
			table = &tables[i]
			break
		}
	}
	if table == nil || !table.Active {
		return httperr.ErrBusiness("table_not_found")
	}
	if table.Capacity < partySize {
		return httperr.ErrBusiness("table_too_small")
	}

	occupations, err := uc.repo.ListOccupationsForRange(ctx, venueID, now, now.AddDate(0, 0, 1))
	if err != nil {
		return err
	}
	if !domain.TableFreeFrom(tableID, occupations, now) {
		return httperr.ErrBusiness("table_occupied")
	}

	return nil
}
