package booking

import (
	"time"

	"github.com/Luexi/PAITITI/internal/models"
)

// ===============================
// Slots
// ===============================

type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotBlocked   SlotStatus = "blocked"
	SlotFull      SlotStatus = "full"
)

type TimeSlot struct {
	Time   string     `json:"time"` // HH:mm
	Status SlotStatus `json:"status"`
	Reason string     `json:"reason,omitempty"`
}

// ParseClock ancla una hora HH:mm sobre la fecha dada, en su zona horaria.
func ParseClock(date time.Time, hm string) (time.Time, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		date.Location(),
	), nil
}

// GenerateSlots enumera los inicios candidatos del día: desde la apertura
// (inclusive) hasta el cierre (exclusive), cada slotMinutes. Día cerrado u
// horario ausente produce lista vacía.
func GenerateSlots(date time.Time, hours *models.OpeningHours, slotMinutes int) []time.Time {
	if hours == nil || hours.IsClosed || slotMinutes <= 0 {
		return nil
	}

	open, err := ParseClock(date, hours.OpenTime)
	if err != nil {
		return nil
	}
	close, err := ParseClock(date, hours.CloseTime)
	if err != nil {
		return nil
	}

	step := time.Duration(slotMinutes) * time.Minute

	var starts []time.Time
	for cur := open; cur.Before(close); cur = cur.Add(step) {
		starts = append(starts, cur)
	}

	return starts
}

// SlotsFrom descarta los inicios anteriores al corte. El slot que cae
// exactamente en el corte sigue siendo reservable.
func SlotsFrom(starts []time.Time, cutoff time.Time) []time.Time {
	out := make([]time.Time, 0, len(starts))
	for _, s := range starts {
		if s.Before(cutoff) {
			continue
		}
		out = append(out, s)
	}
	return out
}
