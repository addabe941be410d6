package booking

import (
	"time"

	"github.com/Luexi/PAITITI/internal/models"
)

// ===============================
// Live Table Status
// ===============================

type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableReserved  TableStatus = "reserved"
	TableOccupied  TableStatus = "occupied"
	TableCleaning  TableStatus = "cleaning"
)

// Antelación con la que una reserva confirmada pinta la mesa como reservada.
const upcomingWindow = 30 * time.Minute

// ResolveTableStatus deriva el estado en vivo de una mesa para el plano:
//   - limpieza es estado manual y gana siempre
//   - walk-in activo en la mesa → ocupada
//   - reserva sentada cuya ventana contiene "now" → ocupada; confirmada
//     en ventana (sin check-in todavía) → reservada
//   - reserva confirmada que empieza en los próximos 30 minutos → reservada
//   - si no, disponible
//
// Solo lectura: nunca muta nada, reutiliza la misma semántica de solape que
// el motor de disponibilidad.
func ResolveTableStatus(
	table models.Table,
	reservations []models.Reservation,
	walkins []models.Walkin,
	now time.Time,
) TableStatus {

	if table.Cleaning {
		return TableCleaning
	}

	for _, w := range walkins {
		if w.TableID != nil && *w.TableID == table.ID && WalkinStatus(w.Status) == WalkinActive {
			return TableOccupied
		}
	}

	for _, r := range reservations {
		if r.TableID == nil || *r.TableID != table.ID {
			continue
		}
		if !IsOccupying(Status(r.Status)) {
			continue
		}
		if !now.Before(r.StartTime) && now.Before(r.EndTime) {
			if Status(r.Status) == StatusSeated {
				return TableOccupied
			}
			return TableReserved
		}
	}

	for _, r := range reservations {
		if r.TableID == nil || *r.TableID != table.ID {
			continue
		}
		if Status(r.Status) != StatusConfirmed {
			continue
		}
		if r.StartTime.After(now) && !r.StartTime.After(now.Add(upcomingWindow)) {
			return TableReserved
		}
	}

	return TableAvailable
}
