package booking

import (
	"context"
	"time"

	domain "github.com/Luexi/PAITITI/internal/domain/booking"
	"github.com/Luexi/PAITITI/internal/httperr"
	"github.com/Luexi/PAITITI/internal/models"
	"github.com/Luexi/PAITITI/internal/timezone"
)

type ListReservationsByDate struct {
	repo domain.Repository
}

func NewListReservationsByDate(repo domain.Repository) *ListReservationsByDate {
	return &ListReservationsByDate{repo: repo}
}

func (uc *ListReservationsByDate) Execute(
	ctx context.Context,
	venueID uint,
	dateStr string,
) ([]models.Reservation, error) {

	venue, err := uc.repo.GetVenueByID(ctx, venueID)
	if err != nil {
		return nil, httperr.ErrBusiness("venue_not_found")
	}

	date, err := time.ParseInLocation("2006-01-02", dateStr, timezone.Location(venue.Timezone))
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	return uc.repo.ListReservationsForRange(ctx, venueID, date, date.AddDate(0, 0, 1))
}
