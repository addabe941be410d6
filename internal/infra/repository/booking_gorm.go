package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/Luexi/PAITITI/internal/domain/booking"
	"github.com/Luexi/PAITITI/internal/httperr"
	"github.com/Luexi/PAITITI/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Venue / config
// --------------------------------------------------

func (r *BookingGormRepository) GetVenueByID(
	ctx context.Context,
	id uint,
) (*models.Venue, error) {

	var venue models.Venue
	if err := r.db.WithContext(ctx).First(&venue, id).Error; err != nil {
		return nil, err
	}
	return &venue, nil
}

func (r *BookingGormRepository) GetSettings(
	ctx context.Context,
	venueID uint,
) (*models.Settings, error) {

	var settings models.Settings
	if err := r.db.WithContext(ctx).
		Where("venue_id = ?", venueID).
		First(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *BookingGormRepository) GetOpeningHours(
	ctx context.Context,
	venueID uint,
	weekday int,
) (*models.OpeningHours, error) {

	var hours models.OpeningHours
	if err := r.db.WithContext(ctx).
		Where("venue_id = ? AND weekday = ?", venueID, weekday).
		First(&hours).Error; err != nil {
		return nil, err
	}
	return &hours, nil
}

func (r *BookingGormRepository) ListBlocksForRange(
	ctx context.Context,
	venueID uint,
	start time.Time,
	end time.Time,
) ([]models.Block, error) {

	var blocks []models.Block
	if err := r.db.WithContext(ctx).
		Where(
			"venue_id = ? AND start_at < ? AND end_at > ?",
			venueID, end, start,
		).
		Order("start_at ASC").
		Find(&blocks).Error; err != nil {
		return nil, err
	}

	return blocks, nil
}

// --------------------------------------------------
// Tables
// --------------------------------------------------

func (r *BookingGormRepository) ListTables(
	ctx context.Context,
	venueID uint,
) ([]models.Table, error) {

	var tables []models.Table
	if err := r.db.WithContext(ctx).
		Where("venue_id = ?", venueID).
		Order("id ASC").
		Find(&tables).Error; err != nil {
		return nil, err
	}

	return tables, nil
}

// --------------------------------------------------
// Occupations
// --------------------------------------------------

func (r *BookingGormRepository) ListOccupationsForRange(
	ctx context.Context,
	venueID uint,
	start time.Time,
	end time.Time,
) ([]domain.Occupation, error) {

	return occupationsForRange(r.db.WithContext(ctx), venueID, start, end)
}

// occupationsForRange reúne reservas ocupantes y walk-ins activos que
// solapan [start, end). Un walk-in sin end_time sigue abierto: basta con
// que haya empezado antes del fin de la ventana.
func occupationsForRange(
	db *gorm.DB,
	venueID uint,
	start time.Time,
	end time.Time,
) ([]domain.Occupation, error) {

	var reservations []models.Reservation
	if err := db.
		Select("id", "table_id", "status", "start_time", "end_time").
		Where(
			"venue_id = ? AND table_id IS NOT NULL AND status IN ? AND start_time < ? AND end_time > ?",
			venueID, []string{string(domain.StatusConfirmed), string(domain.StatusSeated)},
			end, start,
		).
		Order("start_time ASC").
		Find(&reservations).Error; err != nil {
		return nil, err
	}

	var walkins []models.Walkin
	if err := db.
		Select("id", "table_id", "status", "start_time", "end_time").
		Where(
			"venue_id = ? AND table_id IS NOT NULL AND status = ? AND start_time < ? AND (end_time IS NULL OR end_time > ?)",
			venueID, string(domain.WalkinActive),
			end, start,
		).
		Order("start_time ASC").
		Find(&walkins).Error; err != nil {
		return nil, err
	}

	return domain.OccupationsFrom(reservations, walkins), nil
}

// --------------------------------------------------
// Booking (ámbito atómico)
// --------------------------------------------------

// BookReservation serializa "chequear solape + insertar" por mesa: bloquea
// las filas de las mesas candidatas (orden fijo de id para evitar
// deadlocks), relee ocupaciones ya dentro de la transacción, asigna con la
// misma regla best-fit del pipeline y persiste. El constraint de exclusión
// sobre (table_id, tsrange) respalda todo a nivel de storage.
func (r *BookingGormRepository) BookReservation(
	ctx context.Context,
	res *models.Reservation,
	candidates []models.Table,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		occupations, err := lockAndReread(tx, res.VenueID, candidates, res.StartTime, res.EndTime)
		if err != nil {
			return err
		}

		if table := domain.AssignTable(candidates, occupations, res.StartTime, res.EndTime); table != nil {
			res.TableID = &table.ID
			res.Status = string(domain.StatusConfirmed)
		} else {
			// Una carrera vació el pool: se persiste pendiente y el
			// staff la resuelve a mano. Soft success, no error.
			res.TableID = nil
			res.Status = string(domain.StatusPending)
		}

		return tx.Create(res).Error
	})
}

func (r *BookingGormRepository) ConfirmReservation(
	ctx context.Context,
	res *models.Reservation,
	candidates []models.Table,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		occupations, err := lockAndReread(tx, res.VenueID, candidates, res.StartTime, res.EndTime)
		if err != nil {
			return err
		}

		table := domain.AssignTable(candidates, occupations, res.StartTime, res.EndTime)
		if table == nil {
			return httperr.ErrBusiness("no_table_available")
		}

		if err := domain.Confirm(res, table.ID); err != nil {
			return err
		}

		return tx.Save(res).Error
	})
}

func lockAndReread(
	tx *gorm.DB,
	venueID uint,
	candidates []models.Table,
	start time.Time,
	end time.Time,
) ([]domain.Occupation, error) {

	if len(candidates) == 0 {
		return nil, nil
	}

	ids := make([]uint, 0, len(candidates))
	for _, t := range candidates {
		ids = append(ids, t.ID)
	}

	var locked []models.Table
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id IN ?", ids).
		Order("id ASC").
		Find(&locked).Error; err != nil {
		return nil, err
	}

	return occupationsForRange(tx, venueID, start, end)
}

// --------------------------------------------------
// Reservation (state change)
// --------------------------------------------------

func (r *BookingGormRepository) GetReservation(
	ctx context.Context,
	venueID uint,
	reservationID uint,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).
		Where("id = ? AND venue_id = ?", reservationID, venueID).
		First(&res).Error; err != nil {
		return nil, err
	}

	return &res, nil
}

func (r *BookingGormRepository) UpdateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).Save(res).Error
}

func (r *BookingGormRepository) ListReservationsForRange(
	ctx context.Context,
	venueID uint,
	start time.Time,
	end time.Time,
) ([]models.Reservation, error) {

	var reservations []models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("Table").
		Where(
			"venue_id = ? AND start_time >= ? AND start_time < ?",
			venueID, start, end,
		).
		Order("start_time ASC").
		Find(&reservations).Error; err != nil {
		return nil, err
	}

	return reservations, nil
}

// --------------------------------------------------
// Walk-ins
// --------------------------------------------------

func (r *BookingGormRepository) CreateWalkin(
	ctx context.Context,
	w *models.Walkin,
) error {
	return r.db.WithContext(ctx).Create(w).Error
}

func (r *BookingGormRepository) GetWalkin(
	ctx context.Context,
	venueID uint,
	walkinID uint,
) (*models.Walkin, error) {

	var w models.Walkin
	if err := r.db.WithContext(ctx).
		Where("id = ? AND venue_id = ?", walkinID, venueID).
		First(&w).Error; err != nil {
		return nil, err
	}

	return &w, nil
}

func (r *BookingGormRepository) UpdateWalkin(
	ctx context.Context,
	w *models.Walkin,
) error {
	return r.db.WithContext(ctx).Save(w).Error
}

func (r *BookingGormRepository) ListActiveWalkins(
	ctx context.Context,
	venueID uint,
) ([]models.Walkin, error) {

	var walkins []models.Walkin
	if err := r.db.WithContext(ctx).
		Where("venue_id = ? AND status = ?", venueID, string(domain.WalkinActive)).
		Order("start_time ASC").
		Find(&walkins).Error; err != nil {
		return nil, err
	}

	return walkins, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
