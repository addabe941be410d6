package booking

import (
	"context"
	"time"

	"github.com/Luexi/PAITITI/internal/models"
)

type Repository interface {
	// -------- Venue / config --------
	GetVenueByID(
		ctx context.Context,
		id uint,
	) (*models.Venue, error)

	GetSettings(
		ctx context.Context,
		venueID uint,
	) (*models.Settings, error)

	GetOpeningHours(
		ctx context.Context,
		venueID uint,
		weekday int,
	) (*models.OpeningHours, error)

	ListBlocksForRange(
		ctx context.Context,
		venueID uint,
		start time.Time,
		end time.Time,
	) ([]models.Block, error)

	// -------- Tables --------
	ListTables(
		ctx context.Context,
		venueID uint,
	) ([]models.Table, error)

	// -------- Occupations (lectura consistente) --------
	ListOccupationsForRange(
		ctx context.Context,
		venueID uint,
		start time.Time,
		end time.Time,
	) ([]Occupation, error)

	// -------- Booking (escritura atómica) --------
	// BookReservation ejecuta, en un solo ámbito serializado por mesa,
	// la relectura de ocupaciones con bloqueo, la asignación best-fit
	// sobre candidates y el insert. Si ninguna candidata queda libre la
	// reserva se persiste pendiente y sin mesa.
	BookReservation(
		ctx context.Context,
		res *models.Reservation,
		candidates []models.Table,
	) error

	// ConfirmReservation resuelve una reserva pendiente: con el mismo
	// ámbito serializado que BookReservation asigna la primera candidata
	// libre y persiste el paso a confirmada. Sin mesa libre devuelve
	// error de negocio no_table_available.
	ConfirmReservation(
		ctx context.Context,
		res *models.Reservation,
		candidates []models.Table,
	) error

	// -------- Reservation (state change) --------
	GetReservation(
		ctx context.Context,
		venueID uint,
		reservationID uint,
	) (*models.Reservation, error)

	UpdateReservation(
		ctx context.Context,
		res *models.Reservation,
	) error

	ListReservationsForRange(
		ctx context.Context,
		venueID uint,
		start time.Time,
		end time.Time,
	) ([]models.Reservation, error)

	// -------- Walk-ins --------
	CreateWalkin(
		ctx context.Context,
		w *models.Walkin,
	) error

	GetWalkin(
		ctx context.Context,
		venueID uint,
		walkinID uint,
	) (*models.Walkin, error)

	UpdateWalkin(
		ctx context.Context,
		w *models.Walkin,
	) error

	ListActiveWalkins(
		ctx context.Context,
		venueID uint,
	) ([]models.Walkin, error)
}
