package booking

import (
	"sort"
	"time"

	"github.com/Luexi/PAITITI/internal/models"
)

// ===============================
// Overlap (intervalos semiabiertos)
// ===============================

// Overlaps aplica la regla única de solape para intervalos [a,b) y [c,d):
// se solapan si y solo si a < d && c < b.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

type OccupationKind string

const (
	OccupationReservation OccupationKind = "reservation"
	OccupationWalkin      OccupationKind = "walkin"
)

// Occupation es una ocupación de mesa: reserva confirmada/sentada o walk-in
// activo. End nil significa intervalo abierto (walk-in sin terminar).
type Occupation struct {
	Kind    OccupationKind
	RefID   uint
	TableID uint
	Start   time.Time
	End     *time.Time
}

// Overlaps contra una ventana [start, end).
func (o Occupation) Overlaps(start, end time.Time) bool {
	if o.End == nil {
		// Abierto hasta completarse: ocupa todo desde Start.
		return o.Start.Before(end)
	}
	return Overlaps(o.Start, *o.End, start, end)
}

// OccupationsFrom proyecta reservas ocupantes y walk-ins activos con mesa
// asignada al modelo común de ocupaciones.
func OccupationsFrom(reservations []models.Reservation, walkins []models.Walkin) []Occupation {
	var occ []Occupation

	for _, r := range reservations {
		if r.TableID == nil || !IsOccupying(Status(r.Status)) {
			continue
		}
		end := r.EndTime
		occ = append(occ, Occupation{
			Kind:    OccupationReservation,
			RefID:   r.ID,
			TableID: *r.TableID,
			Start:   r.StartTime,
			End:     &end,
		})
	}

	for _, w := range walkins {
		if w.TableID == nil || WalkinStatus(w.Status) != WalkinActive {
			continue
		}
		occ = append(occ, Occupation{
			Kind:    OccupationWalkin,
			RefID:   w.ID,
			TableID: *w.TableID,
			Start:   w.StartTime,
			End:     w.EndTime,
		})
	}

	return occ
}

// ===============================
// Blocks
// ===============================

// BlockFor devuelve el bloqueo que contiene el instante del slot, o nil.
// Con varios bloqueos coincidentes gana el que empieza antes.
func BlockFor(blocks []models.Block, slotStart time.Time) *models.Block {
	var match *models.Block
	for i := range blocks {
		b := &blocks[i]
		if !slotStart.Before(b.StartAt) && slotStart.Before(b.EndAt) {
			if match == nil || b.StartAt.Before(match.StartAt) {
				match = b
			}
		}
	}
	return match
}

// ===============================
// Best fit
// ===============================

// CandidateTables filtra mesas activas con capacidad suficiente y las ordena
// por capacidad ascendente, desempatando por id: la primera mesa libre es la
// que menos asientos desperdicia.
func CandidateTables(tables []models.Table, partySize int) []models.Table {
	var out []models.Table
	for _, t := range tables {
		if t.Active && t.Capacity >= partySize {
			out = append(out, t)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Capacity != out[j].Capacity {
			return out[i].Capacity < out[j].Capacity
		}
		return out[i].ID < out[j].ID
	})

	return out
}

// AssignTable recorre las candidatas en orden best-fit y devuelve la primera
// sin ocupación solapada con [start, end), o nil si ninguna queda libre.
func AssignTable(candidates []models.Table, occupations []Occupation, start, end time.Time) *models.Table {
	for i := range candidates {
		if tableFree(candidates[i].ID, occupations, start, end) {
			return &candidates[i]
		}
	}
	return nil
}

func tableFree(tableID uint, occupations []Occupation, start, end time.Time) bool {
	for _, o := range occupations {
		if o.TableID == tableID && o.Overlaps(start, end) {
			return false
		}
	}
	return true
}

// TableFreeFrom comprueba la mesa contra un intervalo abierto [from, ∞):
// es lo que ocupa un walk-in hasta que se completa.
func TableFreeFrom(tableID uint, occupations []Occupation, from time.Time) bool {
	for _, o := range occupations {
		if o.TableID != tableID {
			continue
		}
		if o.End == nil || o.End.After(from) {
			return false
		}
	}
	return true
}
