package booking

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

// Cota dura para el ámbito atómico: ante contención preferimos fallar
// rápido con conflicto a dejar al cliente esperando.
const bookTimeout = 5 * time.Second

// ======================================================
// INPUT
// ======================================================

type CreateReservationInput struct {
	VenueID uint

	FullName  string
	Phone     string
	PartySize int

	Date      string // YYYY-MM-DD
	StartTime string // HH:mm

	CelebrationType string
	Notes           string
	Source          string // web | whatsapp | messenger
}

// ======================================================
// USE CASE
// ======================================================

type CreateReservation struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	events *events.Notifier
}

func NewCreateReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
	notifier *events.Notifier,
) *CreateReservation {
	return &CreateReservation{
		repo:   repo,
		audit:  audit,
		events: notifier,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute es la transacción de reserva: revalida la ventana de fechas, el
// aviso mínimo y el tamaño de grupo, re-chequea el slot y delega en el
// repositorio la asignación de mesa + insert dentro de un solo ámbito
// serializado por mesa. Dos resultados persistidos posibles: confirmada con
// mesa, o pendiente sin mesa si una carrera vació el pool entre el chequeo
// y el commit.
func (uc *CreateReservation) Execute(
	ctx context.Context,
	in CreateReservationInput,
) (*models.Reservation, error) {

	venue, err := uc.repo.GetVenueByID(ctx, in.VenueID)
	if err != nil {
		return nil, httperr.ErrBusiness("venue_not_found")
	}

	settings, err := uc.repo.GetSettings(ctx, in.VenueID)
	if err != nil {
		return nil, httperr.ErrBusiness("settings_not_found")
	}

	// --------------------------------------------------
	// 1. Tamaño de grupo
	// --------------------------------------------------
	if in.PartySize > settings.MaxPartySize {
		return nil, httperr.ErrBusiness("party_too_large")
	}

	// --------------------------------------------------
	// 2. Fecha y hora en la zona del venue
	// --------------------------------------------------
	loc := timezone.Location(venue.Timezone)

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.StartTime,
		loc,
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	now := timezone.NowIn(venue.Timezone)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)

	// --------------------------------------------------
	// 3. Ventana de reserva + aviso mínimo
	// --------------------------------------------------
	if day.Before(today) || day.After(today.AddDate(0, 0, settings.MaxDaysAhead)) {
		return nil, httperr.ErrBusiness("out_of_range")
	}

	if start.Before(now.Add(time.Duration(settings.MinNoticeMinutes) * time.Minute)) {
		return nil, httperr.ErrBusiness("too_soon")
	}

	// --------------------------------------------------
	// 4. El inicio debe ser un slot real del día
	// --------------------------------------------------
	hours, err := uc.repo.GetOpeningHours(ctx, in.VenueID, int(day.Weekday()))
	if err != nil || hours.IsClosed {
		return nil, httperr.ErrBusiness("venue_closed")
	}

	validStart := false
	for _, s := range domain.GenerateSlots(day, hours, settings.SlotMinutes) {
		if s.Equal(start) {
			validStart = true
			break
		}
	}
	if !validStart {
		return nil, httperr.ErrBusiness("invalid_slot")
	}

	duration := time.Duration(settings.DefaultDurationMinutes) * time.Minute
	end := start.Add(duration)

	// --------------------------------------------------
	// 5. Bloqueos manuales
	// --------------------------------------------------
	blocks, err := uc.repo.ListBlocksForRange(ctx, in.VenueID, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	if b := domain.BlockFor(blocks, start); b != nil {
		return nil, httperr.ErrBusiness("slot_blocked")
	}

	// --------------------------------------------------
	// 6. Re-chequeo de disponibilidad (mismo orden y misma
	//    regla de solape que el pipeline de consulta)
	// --------------------------------------------------
	tables, err := uc.repo.ListTables(ctx, in.VenueID)
	if err != nil {
		return nil, err
	}
	candidates := domain.CandidateTables(tables, in.PartySize)

	occupations, err := uc.repo.ListOccupationsForRange(ctx, in.VenueID, day, day.AddDate(0, 0, 1).Add(duration))
	if err != nil {
		return nil, err
	}
	if domain.AssignTable(candidates, occupations, start, end) == nil {
		return nil, httperr.ErrBusiness("slot_conflict")
	}

	// --------------------------------------------------
	// 7. Ámbito atómico: relectura con bloqueo + asignación
	//    best-fit + insert. El constraint de exclusión en
	//    Postgres respalda la serialización.
	// --------------------------------------------------
	source := in.Source
	if source == "" {
		source = "web"
	}

	res := &models.Reservation{
		VenueID:         in.VenueID,
		FullName:        in.FullName,
		Phone:           in.Phone,
		PartySize:       in.PartySize,
		Date:            day.Format("2006-01-02"),
		StartTime:       start,
		EndTime:         end,
		Status:          string(domain.StatusPending),
		CelebrationType: in.CelebrationType,
		Notes:           in.Notes,
		Source:          source,
	}

	bookCtx, cancel := context.WithTimeout(ctx, bookTimeout)
	defer cancel()

	if err := uc.repo.BookReservation(bookCtx, res, candidates); err != nil {
		if httperr.IsExclusionConflict(err) {
			return nil, httperr.ErrBusiness("slot_conflict")
		}
		return nil, err
	}

	// --------------------------------------------------
	// 8. Auditoría + evento (fire-and-forget)
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		VenueID:  in.VenueID,
		Action:   "reservation_created",
		Entity:   "reservation",
		EntityID: &res.ID,
		Metadata: map[string]any{
			"date":   res.Date,
			"start":  in.StartTime,
			"status": res.Status,
		},
	})
	uc.events.Notify(in.VenueID, "reservation", res.ID, "created")

	return res, nil
}
