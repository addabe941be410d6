package booking

import (
	"context"
	"testing"
	"time"

	domain "github.com/Luexi/PAITITI/internal/domain/booking"
	"github.com/Luexi/PAITITI/internal/httperr"
	"github.com/Luexi/PAITITI/internal/models"
)

func TestConfirmAssignsBestFitTable(t *testing.T) {
	repo := newFakeRepo()
	day := repo.futureDay(7)

	start := day.Add(19 * time.Hour)
	id := repo.seedPending(3, start, start.Add(90*time.Minute))

	uc := NewConfirmReservation(repo, nil, nil)

	res, err := uc.Execute(context.Background(), 1, 5, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != string(domain.StatusConfirmed) {
		t.Fatalf("expected confirmed, got %s", res.Status)
	}
	// Para 3 personas la best fit es la mesa 2 (capacidad 4).
	if res.TableID == nil || *res.TableID != 2 {
		t.Fatalf("expected table 2, got %v", res.TableID)
	}
}

func TestConfirmWithoutFreeTable(t *testing.T) {
	repo := newFakeRepo()
	day := repo.futureDay(7)

	start := day.Add(19 * time.Hour)
	end := start.Add(90 * time.Minute)

	// Todas las candidatas para 3 personas ocupadas en la ventana.
	repo.seedOccupying(2, start, end)
	repo.seedOccupying(3, start, end)

	id := repo.seedPending(3, start, end)

	uc := NewConfirmReservation(repo, nil, nil)

	_, err := uc.Execute(context.Background(), 1, 5, id)
	if !httperr.IsBusiness(err, "no_table_available") {
		t.Fatalf("expected no_table_available, got %v", err)
	}
}

func TestSeatCompleteFlow(t *testing.T) {
	repo := newFakeRepo()
	day := repo.futureDay(7)

	start := day.Add(19 * time.Hour)
	id := repo.seedOccupying(1, start, start.Add(90*time.Minute))

	seatUC := NewSeatReservation(repo, nil, nil)
	completeUC := NewCompleteReservation(repo, nil, nil)

	res, err := seatUC.Execute(context.Background(), 1, 5, id)
	if err != nil {
		t.Fatalf("seat: unexpected error: %v", err)
	}
	if res.Status != string(domain.StatusSeated) || res.SeatedAt == nil {
		t.Fatalf("expected seated with timestamp, got %+v", res)
	}

	res, err = completeUC.Execute(context.Background(), 1, 5, id)
	if err != nil {
		t.Fatalf("complete: unexpected error: %v", err)
	}
	if res.Status != string(domain.StatusCompleted) || res.CompletedAt == nil {
		t.Fatalf("expected completed with timestamp, got %+v", res)
	}
}

func TestInvalidTransitions(t *testing.T) {
	repo := newFakeRepo()
	day := repo.futureDay(7)

	start := day.Add(19 * time.Hour)
	pendingID := repo.seedPending(2, start, start.Add(90*time.Minute))

	seatUC := NewSeatReservation(repo, nil, nil)
	if _, err := seatUC.Execute(context.Background(), 1, 5, pendingID); !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("seat on pending: expected invalid_state, got %v", err)
	}

	cancelUC := NewCancelReservation(repo, nil, nil)
	if _, err := cancelUC.Execute(context.Background(), 1, 5, pendingID); err != nil {
		t.Fatalf("cancel on pending should work, got %v", err)
	}

	noShowUC := NewMarkNoShow(repo, nil, nil)
	if _, err := noShowUC.Execute(context.Background(), 1, 5, pendingID); !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("no-show on cancelled: expected invalid_state, got %v", err)
	}
}

func TestTransitionOnMissingReservation(t *testing.T) {
	repo := newFakeRepo()

	uc := NewCancelReservation(repo, nil, nil)
	if _, err := uc.Execute(context.Background(), 1, 5, 999); !httperr.IsBusiness(err, "reservation_not_found") {
		t.Fatalf("expected reservation_not_found, got %v", err)
	}
}

func TestListReservationsByDate(t *testing.T) {
	repo := newFakeRepo()

	day := repo.futureDay(7)
	other := repo.futureDay(8)

	repo.seedOccupying(1, day.Add(19*time.Hour), day.Add(20*time.Hour+30*time.Minute))
	repo.seedOccupying(2, other.Add(19*time.Hour), other.Add(20*time.Hour+30*time.Minute))

	uc := NewListReservationsByDate(repo)

	got, err := uc.Execute(context.Background(), 1, day.Format("2006-01-02"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 reservation, got %d", len(got))
	}

	if _, err := uc.Execute(context.Background(), 1, "not-a-date"); !httperr.IsBusiness(err, "invalid_date") {
		t.Fatalf("expected invalid_date, got %v", err)
	}
}

func TestLiveTables(t *testing.T) {
	repo := newFakeRepo()

	// Mesa 1 con walk-in activo, mesa 2 en limpieza, mesa 3 libre.
	tableID := uint(1)
	repo.walkins = append(repo.walkins, models.Walkin{
		ID: 9, VenueID: 1, GuestName: "Comensal", PartySize: 2,
		StartTime: time.Now(), Status: "active", TableID: &tableID,
	})
	repo.tables[1].Cleaning = true

	uc := NewLiveTables(repo)

	got, err := uc.Execute(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 tables, got %d", len(got))
	}

	statuses := map[uint]domain.TableStatus{}
	for _, lt := range got {
		statuses[lt.ID] = lt.Status
	}

	if statuses[1] != domain.TableOccupied {
		t.Fatalf("table 1: expected occupied, got %s", statuses[1])
	}
	if statuses[2] != domain.TableCleaning {
		t.Fatalf("table 2: expected cleaning, got %s", statuses[2])
	}
	if statuses[3] != domain.TableAvailable {
		t.Fatalf("table 3: expected available, got %s", statuses[3])
	}
}
