package booking

import (
	"context"
	"fmt"
	"time"

	domain "github.com/Luexi/PAITITI/internal/domain/booking"
	"github.com/Luexi/PAITITI/internal/httperr"
	"github.com/Luexi/PAITITI/internal/timezone"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

type DayAvailability struct {
	Date    string            `json:"date"`
	Slots   []domain.TimeSlot `json:"slots"`
	Message string            `json:"message,omitempty"`
}

// Execute corre el pipeline completo de disponibilidad para una fecha y un
// tamaño de grupo: generación de slots → bloqueos → capacidad → solapes.
// Solo lectura; con los mismos datos produce siempre la misma lista.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) (*DayAvailability, error) {

	venue, err := uc.repo.GetVenueByID(ctx, in.VenueID)
	if err != nil {
		return nil, httperr.ErrBusiness("venue_not_found")
	}

	settings, err := uc.repo.GetSettings(ctx, in.VenueID)
	if err != nil {
		return nil, httperr.ErrBusiness("settings_not_found")
	}

	loc := timezone.Location(venue.Timezone)
	now := timezone.NowIn(venue.Timezone)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	date := time.Date(
		in.Date.Year(), in.Date.Month(), in.Date.Day(),
		0, 0, 0, 0,
		loc,
	)
	dateStr := date.Format("2006-01-02")

	// --------------------------------------------------
	// Ventana de reserva permitida
	// --------------------------------------------------
	if date.Before(today) {
		return nil, httperr.ErrBusiness("date_in_past")
	}
	if date.After(today.AddDate(0, 0, settings.MaxDaysAhead)) {
		return nil, httperr.ErrBusiness("date_too_far")
	}

	// --------------------------------------------------
	// Horario del día
	// --------------------------------------------------
	hours, err := uc.repo.GetOpeningHours(ctx, in.VenueID, int(date.Weekday()))
	if err != nil || hours.IsClosed {
		return &DayAvailability{
			Date:    dateStr,
			Slots:   []domain.TimeSlot{},
			Message: "El restaurante está cerrado ese día.",
		}, nil
	}

	starts := domain.GenerateSlots(date, hours, settings.SlotMinutes)
	if len(starts) == 0 {
		return &DayAvailability{
			Date:    dateStr,
			Slots:   []domain.TimeSlot{},
			Message: "El restaurante está cerrado ese día.",
		}, nil
	}

	duration := time.Duration(settings.DefaultDurationMinutes) * time.Minute
	dayEnd := date.AddDate(0, 0, 1)

	blocks, err := uc.repo.ListBlocksForRange(ctx, in.VenueID, date, dayEnd)
	if err != nil {
		return nil, err
	}

	tables, err := uc.repo.ListTables(ctx, in.VenueID)
	if err != nil {
		return nil, err
	}
	candidates := domain.CandidateTables(tables, in.PartySize)

	occupations, err := uc.repo.ListOccupationsForRange(ctx, in.VenueID, date, dayEnd.Add(duration))
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Pipeline por slot
	// --------------------------------------------------
	// Hoy: los slots anteriores a now+aviso mínimo no se emiten.
	if date.Equal(today) {
		minDateTime := now.Add(time.Duration(settings.MinNoticeMinutes) * time.Minute)
		starts = domain.SlotsFrom(starts, minDateTime)
	}

	slots := make([]domain.TimeSlot, 0, len(starts))

	for _, slotStart := range starts {
		hm := slotStart.Format("15:04")

		if b := domain.BlockFor(blocks, slotStart); b != nil {
			slots = append(slots, domain.TimeSlot{
				Time:   hm,
				Status: domain.SlotBlocked,
				Reason: b.Reason,
			})
			continue
		}

		if len(candidates) == 0 {
			slots = append(slots, domain.TimeSlot{
				Time:   hm,
				Status: domain.SlotFull,
				Reason: fmt.Sprintf("No hay mesas para %d personas", in.PartySize),
			})
			continue
		}

		slotEnd := slotStart.Add(duration)
		if domain.AssignTable(candidates, occupations, slotStart, slotEnd) != nil {
			slots = append(slots, domain.TimeSlot{Time: hm, Status: domain.SlotAvailable})
		} else {
			slots = append(slots, domain.TimeSlot{Time: hm, Status: domain.SlotFull})
		}
	}

	return &DayAvailability{Date: dateStr, Slots: slots}, nil
}
