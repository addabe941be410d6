package booking

import (
	"context"
	"time"

	domain "github.com/Luexi/PAITITI/internal/domain/booking"
	"github.com/Luexi/PAITITI/internal/httperr"
	"github.com/Luexi/PAITITI/internal/models"
	"github.com/Luexi/PAITITI/internal/timezone"
)

type LiveTables struct {
	repo domain.Repository
}

func NewLiveTables(repo domain.Repository) *LiveTables {
	return &LiveTables{repo: repo}
}

type LiveTable struct {
	models.Table
	Status domain.TableStatus `json:"status"`
}

// Execute arma el plano en vivo: cada mesa con su estado derivado contra
// "ahora" (reservas del día + walk-ins activos). Solo lectura.
func (uc *LiveTables) Execute(ctx context.Context, venueID uint) ([]LiveTable, error) {

	venue, err := uc.repo.GetVenueByID(ctx, venueID)
	if err != nil {
		return nil, httperr.ErrBusiness("venue_not_found")
	}

	now := timezone.NowIn(venue.Timezone)
	loc := timezone.Location(venue.Timezone)
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	dayEnd := dayStart.AddDate(0, 0, 1)

	tables, err := uc.repo.ListTables(ctx, venueID)
	if err != nil {
		return nil, err
	}

	reservations, err := uc.repo.ListReservationsForRange(ctx, venueID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	walkins, err := uc.repo.ListActiveWalkins(ctx, venueID)
	if err != nil {
		return nil, err
	}

	out := make([]LiveTable, 0, len(tables))
	for _, t := range tables {
		if !t.Active {
			continue
		}
		out = append(out, LiveTable{
			Table:  t,
			Status: domain.ResolveTableStatus(t, reservations, walkins, now),
		})
	}

	return out, nil
}
