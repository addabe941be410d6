package booking

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/Luexi/PAITITI/internal/domain/booking"
	"github.com/Luexi/PAITITI/internal/httperr"
	"github.com/Luexi/PAITITI/internal/models"
)

// fakeRepo implementa domain.Repository en memoria para ejercitar los
// usecases sin base de datos. beforeBook permite simular una carrera entre
// el pre-chequeo y el ámbito atómico.
type fakeRepo struct {
	venue    *models.Venue
	settings *models.Settings
	hours    map[int]*models.OpeningHours

	blocks       []models.Block
	tables       []models.Table
	reservations []models.Reservation
	walkins      []models.Walkin

	nextID     uint
	beforeBook func(r *fakeRepo)
}

var _ domain.Repository = (*fakeRepo)(nil)

func newFakeRepo() *fakeRepo {
	r := &fakeRepo{
		venue: &models.Venue{
			ID:       1,
			Name:     "Paititi del Mar",
			Slug:     "paititi-del-mar",
			Timezone: "America/Mexico_City",
		},
		settings: &models.Settings{
			ID:                     1,
			VenueID:                1,
			SlotMinutes:            30,
			DefaultDurationMinutes: 90,
			MaxPartySize:           10,
			MinNoticeMinutes:       120,
			MaxDaysAhead:           30,
		},
		hours: map[int]*models.OpeningHours{},
		tables: []models.Table{
			{ID: 1, VenueID: 1, Label: "M1", Capacity: 2, Active: true},
			{ID: 2, VenueID: 1, Label: "M2", Capacity: 4, Active: true},
			{ID: 3, VenueID: 1, Label: "M3", Capacity: 6, Active: true},
		},
		nextID: 100,
	}

	for weekday := 0; weekday <= 6; weekday++ {
		r.hours[weekday] = &models.OpeningHours{
			VenueID:   1,
			Weekday:   weekday,
			OpenTime:  "13:00",
			CloseTime: "23:00",
		}
	}

	return r
}

func (r *fakeRepo) GetVenueByID(_ context.Context, id uint) (*models.Venue, error) {
	if r.venue == nil || r.venue.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return r.venue, nil
}

func (r *fakeRepo) GetSettings(_ context.Context, venueID uint) (*models.Settings, error) {
	if r.settings == nil || r.settings.VenueID != venueID {
		return nil, gorm.ErrRecordNotFound
	}
	return r.settings, nil
}

func (r *fakeRepo) GetOpeningHours(_ context.Context, _ uint, weekday int) (*models.OpeningHours, error) {
	h, ok := r.hours[weekday]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return h, nil
}

func (r *fakeRepo) ListBlocksForRange(_ context.Context, venueID uint, start, end time.Time) ([]models.Block, error) {
	var out []models.Block
	for _, b := range r.blocks {
		if b.VenueID == venueID && domain.Overlaps(b.StartAt, b.EndAt, start, end) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListTables(_ context.Context, venueID uint) ([]models.Table, error) {
	var out []models.Table
	for _, t := range r.tables {
		if t.VenueID == venueID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListOccupationsForRange(_ context.Context, _ uint, start, end time.Time) ([]domain.Occupation, error) {
	var out []domain.Occupation
	for _, o := range domain.OccupationsFrom(r.reservations, r.walkins) {
		if o.Overlaps(start, end) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeRepo) BookReservation(_ context.Context, res *models.Reservation, candidates []models.Table) error {
	if r.beforeBook != nil {
		r.beforeBook(r)
	}

	occupations, _ := r.ListOccupationsForRange(context.Background(), res.VenueID, res.StartTime, res.EndTime)

	if table := domain.AssignTable(candidates, occupations, res.StartTime, res.EndTime); table != nil {
		res.TableID = &table.ID
		res.Status = string(domain.StatusConfirmed)
	} else {
		res.TableID = nil
		res.Status = string(domain.StatusPending)
	}

	r.nextID++
	res.ID = r.nextID
	r.reservations = append(r.reservations, *res)
	return nil
}

func (r *fakeRepo) ConfirmReservation(_ context.Context, res *models.Reservation, candidates []models.Table) error {
	occupations, _ := r.ListOccupationsForRange(context.Background(), res.VenueID, res.StartTime, res.EndTime)

	table := domain.AssignTable(candidates, occupations, res.StartTime, res.EndTime)
	if table == nil {
		return httperr.ErrBusiness("no_table_available")
	}

	if err := domain.Confirm(res, table.ID); err != nil {
		return err
	}
	return r.UpdateReservation(context.Background(), res)
}

func (r *fakeRepo) GetReservation(_ context.Context, venueID, reservationID uint) (*models.Reservation, error) {
	for i := range r.reservations {
		if r.reservations[i].ID == reservationID && r.reservations[i].VenueID == venueID {
			res := r.reservations[i]
			return &res, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) UpdateReservation(_ context.Context, res *models.Reservation) error {
	for i := range r.reservations {
		if r.reservations[i].ID == res.ID {
			r.reservations[i] = *res
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeRepo) ListReservationsForRange(_ context.Context, venueID uint, start, end time.Time) ([]models.Reservation, error) {
	var out []models.Reservation
	for _, res := range r.reservations {
		if res.VenueID == venueID && !res.StartTime.Before(start) && res.StartTime.Before(end) {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *fakeRepo) CreateWalkin(_ context.Context, w *models.Walkin) error {
	r.nextID++
	w.ID = r.nextID
	r.walkins = append(r.walkins, *w)
	return nil
}

func (r *fakeRepo) GetWalkin(_ context.Context, venueID, walkinID uint) (*models.Walkin, error) {
	for i := range r.walkins {
		if r.walkins[i].ID == walkinID && r.walkins[i].VenueID == venueID {
			w := r.walkins[i]
			return &w, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) UpdateWalkin(_ context.Context, w *models.Walkin) error {
	for i := range r.walkins {
		if r.walkins[i].ID == w.ID {
			r.walkins[i] = *w
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeRepo) ListActiveWalkins(_ context.Context, venueID uint) ([]models.Walkin, error) {
	var out []models.Walkin
	for _, w := range r.walkins {
		if w.VenueID == venueID && domain.WalkinStatus(w.Status) == domain.WalkinActive {
			out = append(out, w)
		}
	}
	return out, nil
}

// --------------------------------------------------
// Helpers de fixture
// --------------------------------------------------

// futureDay devuelve la medianoche de hoy+days en la zona del venue.
func (r *fakeRepo) futureDay(days int) time.Time {
	loc, _ := time.LoadLocation(r.venue.Timezone)
	now := time.Now().In(loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc).AddDate(0, 0, days)
}

// seedOccupying agrega una reserva confirmada que ocupa la mesa en la
// ventana dada.
func (r *fakeRepo) seedOccupying(tableID uint, start, end time.Time) uint {
	r.nextID++
	r.reservations = append(r.reservations, models.Reservation{
		ID:        r.nextID,
		VenueID:   1,
		FullName:  "Ocupante",
		Phone:     "5512345678",
		PartySize: 2,
		Date:      start.Format("2006-01-02"),
		StartTime: start,
		EndTime:   end,
		Status:    string(domain.StatusConfirmed),
		TableID:   &tableID,
	})
	return r.nextID
}

// seedPending agrega una reserva pendiente sin mesa.
func (r *fakeRepo) seedPending(partySize int, start, end time.Time) uint {
	r.nextID++
	r.reservations = append(r.reservations, models.Reservation{
		ID:        r.nextID,
		VenueID:   1,
		FullName:  "Pendiente",
		Phone:     "5587654321",
		PartySize: partySize,
		Date:      start.Format("2006-01-02"),
		StartTime: start,
		EndTime:   end,
		Status:    string(domain.StatusPending),
	})
	return r.nextID
}
