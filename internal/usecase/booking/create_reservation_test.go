package booking

import (
	"context"
	"testing"
	"time"

	domain "github.com/Luexi/PAITITI/internal/domain/booking"
	"github.com/Luexi/PAITITI/internal/httperr"
	"github.com/Luexi/PAITITI/internal/models"
)

func baseInput(repo *fakeRepo) CreateReservationInput {
	day := repo.futureDay(7)
	return CreateReservationInput{
		VenueID:   1,
		FullName:  "María López",
		Phone:     "5511223344",
		PartySize: 2,
		Date:      day.Format("2006-01-02"),
		StartTime: "19:00",
	}
}

func TestCreateReservationConfirmsWithBestFitTable(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateReservation(repo, nil, nil)

	res, err := uc.Execute(context.Background(), baseInput(repo))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Status != string(domain.StatusConfirmed) {
		t.Fatalf("expected confirmed, got %s", res.Status)
	}
	if res.TableID == nil || *res.TableID != 1 {
		t.Fatalf("expected best fit table 1, got %v", res.TableID)
	}
	if got := res.EndTime.Sub(res.StartTime); got != 90*time.Minute {
		t.Fatalf("expected 90m duration, got %s", got)
	}
	if res.Source != "web" {
		t.Fatalf("expected default source web, got %q", res.Source)
	}
}

func TestCreateReservationValidation(t *testing.T) {
	cases := []struct {
		name     string
		mutate   func(repo *fakeRepo, in *CreateReservationInput)
		expected string
	}{
		{
			name: "party too large",
			mutate: func(_ *fakeRepo, in *CreateReservationInput) {
				in.PartySize = 11
			},
			expected: "party_too_large",
		},
		{
			name: "garbage date",
			mutate: func(_ *fakeRepo, in *CreateReservationInput) {
				in.Date = "2026-13-99"
			},
			expected: "invalid_date_or_time",
		},
		{
			name: "date in the past",
			mutate: func(repo *fakeRepo, in *CreateReservationInput) {
				in.Date = repo.futureDay(-1).Format("2006-01-02")
			},
			expected: "out_of_range",
		},
		{
			name: "date beyond the window",
			mutate: func(repo *fakeRepo, in *CreateReservationInput) {
				in.Date = repo.futureDay(40).Format("2006-01-02")
			},
			expected: "out_of_range",
		},
		{
			name: "not enough notice",
			mutate: func(repo *fakeRepo, in *CreateReservationInput) {
				repo.settings.MinNoticeMinutes = 3 * 24 * 60
				in.Date = repo.futureDay(1).Format("2006-01-02")
			},
			expected: "too_soon",
		},
		{
			name: "closed weekday",
			mutate: func(repo *fakeRepo, in *CreateReservationInput) {
				repo.hours[int(repo.futureDay(7).Weekday())].IsClosed = true
			},
			expected: "venue_closed",
		},
		{
			name: "time off the slot grid",
			mutate: func(_ *fakeRepo, in *CreateReservationInput) {
				in.StartTime = "19:17"
			},
			expected: "invalid_slot",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeRepo()
			uc := NewCreateReservation(repo, nil, nil)

			in := baseInput(repo)
			tc.mutate(repo, &in)

			_, err := uc.Execute(context.Background(), in)
			if !httperr.IsBusiness(err, tc.expected) {
				t.Fatalf("expected business error %q, got %v", tc.expected, err)
			}
		})
	}
}

func TestCreateReservationSlotBlocked(t *testing.T) {
	repo := newFakeRepo()
	day := repo.futureDay(7)

	repo.blocks = append(repo.blocks, blockAt(day, 18, 0, 20, 0, "Evento privado"))

	uc := NewCreateReservation(repo, nil, nil)

	_, err := uc.Execute(context.Background(), baseInput(repo))
	if !httperr.IsBusiness(err, "slot_blocked") {
		t.Fatalf("expected slot_blocked, got %v", err)
	}
}

func TestCreateReservationSlotConflict(t *testing.T) {
	repo := newFakeRepo()
	day := repo.futureDay(7)

	// Grupo de 5: la única candidata es la mesa 3, y ya está tomada.
	start := day.Add(19 * time.Hour)
	repo.seedOccupying(3, start, start.Add(90*time.Minute))

	uc := NewCreateReservation(repo, nil, nil)

	in := baseInput(repo)
	in.PartySize = 5

	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "slot_conflict") {
		t.Fatalf("expected slot_conflict, got %v", err)
	}
}

func TestCreateReservationRaceFallsBackToPending(t *testing.T) {
	repo := newFakeRepo()
	day := repo.futureDay(7)

	// La mesa 3 está libre en el pre-chequeo; otro escritor la toma justo
	// antes del ámbito atómico.
	repo.beforeBook = func(r *fakeRepo) {
		start := day.Add(19 * time.Hour)
		r.seedOccupying(3, start, start.Add(90*time.Minute))
	}

	uc := NewCreateReservation(repo, nil, nil)

	in := baseInput(repo)
	in.PartySize = 5

	res, err := uc.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("race loser should still commit, got %v", err)
	}
	if res.Status != string(domain.StatusPending) {
		t.Fatalf("expected pending, got %s", res.Status)
	}
	if res.TableID != nil {
		t.Fatalf("expected no table, got %v", *res.TableID)
	}
}

// blockAt arma un bloqueo dentro del día dado.
func blockAt(day time.Time, fromH, fromM, toH, toM int, reason string) models.Block {
	return models.Block{
		ID:      1,
		VenueID: 1,
		StartAt: day.Add(time.Duration(fromH)*time.Hour + time.Duration(fromM)*time.Minute),
		EndAt:   day.Add(time.Duration(toH)*time.Hour + time.Duration(toM)*time.Minute),
		Reason:  reason,
	}
}
