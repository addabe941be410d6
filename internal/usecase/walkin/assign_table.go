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

type AssignWalkinTable struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	events *events.Notifier
}

func NewAssignWalkinTable(
	repo domain.Repository,
	audit *audit.Dispatcher,
	notifier *events.Notifier,
) *AssignWalkinTable {
	return &AssignWalkinTable{repo: repo, audit: audit, events: notifier}
}

// Execute mueve un walk-in activo de mesa. tableID nil lo deja sin mesa
// (deja de ocupar); con mesa aplica el mismo chequeo de ocupación que al
// crearlo.
func (uc *AssignWalkinTable) Execute(
	ctx context.Context,
	venueID uint,
	userID uint,
	walkinID uint,
	tableID *uint,
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

	if tableID != nil {
		now := timezone.NowIn(venue.Timezone)

		tables, err := uc.repo.ListTables(ctx, venueID)
		if err != nil {
			return nil, err
		}

		var table *models.Table
		for i := range tables {
			if tables[i].ID == *tableID {
				table = &tables[i]
				break
			}
		}
		if table == nil || !table.Active {
			return nil, httperr.ErrBusiness("table_not_found")
		}
		if table.Capacity < w.PartySize {
			return nil, httperr.ErrBusiness("table_too_small")
		}

		occupations, err := uc.repo.ListOccupationsForRange(ctx, venueID, now, now.AddDate(0, 0, 1))
		if err != nil {
			return nil, err
		}

		// La ocupación del propio walk-in no cuenta como conflicto.
		filtered := make([]domain.Occupation, 0, len(occupations))
		for _, o := range occupations {
			if o.Kind == domain.OccupationWalkin && o.RefID == w.ID {
				continue
			}
			filtered = append(filtered, o)
		}

		if !domain.TableFreeFrom(*tableID, filtered, now) {
			return nil, httperr.ErrBusiness("table_occupied")
		}
	}

	w.TableID = tableID

	if err := uc.repo.UpdateWalkin(ctx, w); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		VenueID:  venueID,
		UserID:   &userID,
		Action:   "walkin_table_changed",
		Entity:   "walkin",
		EntityID: &w.ID,
	})
	uc.events.Notify(venueID, "walkin", w.ID, "table_changed")

	return w, nil
}
