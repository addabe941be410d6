package booking

import (
	"testing"
	"time"

	"github.com/Luexi/PAITITI/internal/models"
)

func mustLoc(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Mexico_City")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return loc
}

func at(loc *time.Location, hour, min int) time.Time {
	return time.Date(2026, 9, 10, hour, min, 0, 0, loc)
}

func TestOverlaps(t *testing.T) {
	loc := mustLoc(t)

	cases := []struct {
		name     string
		aStart   time.Time
		aEnd     time.Time
		bStart   time.Time
		bEnd     time.Time
		expected bool
	}{
		{
			name:   "partial overlap",
			aStart: at(loc, 14, 0), aEnd: at(loc, 15, 30),
			bStart: at(loc, 15, 0), bEnd: at(loc, 16, 30),
			expected: true,
		},
		{
			name:   "contained",
			aStart: at(loc, 14, 0), aEnd: at(loc, 17, 0),
			bStart: at(loc, 15, 0), bEnd: at(loc, 16, 0),
			expected: true,
		},
		{
			name:   "back to back is not overlap",
			aStart: at(loc, 14, 0), aEnd: at(loc, 15, 30),
			bStart: at(loc, 15, 30), bEnd: at(loc, 17, 0),
			expected: false,
		},
		{
			name:   "disjoint",
			aStart: at(loc, 13, 0), aEnd: at(loc, 14, 0),
			bStart: at(loc, 18, 0), bEnd: at(loc, 19, 0),
			expected: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd)
			if result != tc.expected {
				t.Fatalf("expected %v, got %v", tc.expected, result)
			}
			// La regla es simétrica.
			if Overlaps(tc.bStart, tc.bEnd, tc.aStart, tc.aEnd) != tc.expected {
				t.Fatalf("expected symmetric result %v", tc.expected)
			}
		})
	}
}

func TestOccupationOpenEnded(t *testing.T) {
	loc := mustLoc(t)

	occ := Occupation{
		Kind:    OccupationWalkin,
		RefID:   7,
		TableID: 3,
		Start:   at(loc, 20, 0),
	}

	if !occ.Overlaps(at(loc, 22, 0), at(loc, 23, 30)) {
		t.Fatalf("open interval should occupy every later window")
	}
	if occ.Overlaps(at(loc, 18, 0), at(loc, 20, 0)) {
		t.Fatalf("open interval should not occupy windows that end before it starts")
	}
}

func TestBlockFor(t *testing.T) {
	loc := mustLoc(t)

	blocks := []models.Block{
		{ID: 1, StartAt: at(loc, 19, 0), EndAt: at(loc, 21, 0), Reason: "Evento privado"},
		{ID: 2, StartAt: at(loc, 18, 0), EndAt: at(loc, 20, 0), Reason: "Mantenimiento"},
	}

	cases := []struct {
		name     string
		slot     time.Time
		expected string
	}{
		{name: "inside both earliest wins", slot: at(loc, 19, 30), expected: "Mantenimiento"},
		{name: "start boundary included", slot: at(loc, 18, 0), expected: "Mantenimiento"},
		{name: "end boundary excluded", slot: at(loc, 21, 0), expected: ""},
		{name: "outside", slot: at(loc, 13, 0), expected: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := BlockFor(blocks, tc.slot)
			if tc.expected == "" {
				if b != nil {
					t.Fatalf("expected no block, got %q", b.Reason)
				}
				return
			}
			if b == nil || b.Reason != tc.expected {
				t.Fatalf("expected block %q, got %+v", tc.expected, b)
			}
		})
	}
}

func TestCandidateTablesOrder(t *testing.T) {
	tables := []models.Table{
		{ID: 1, Capacity: 8, Active: true},
		{ID: 2, Capacity: 2, Active: true},
		{ID: 3, Capacity: 4, Active: true},
		{ID: 4, Capacity: 4, Active: true},
		{ID: 5, Capacity: 6, Active: false},
	}

	out := CandidateTables(tables, 3)

	var ids []uint
	for _, tb := range out {
		ids = append(ids, tb.ID)
	}

	expected := []uint{3, 4, 1}
	if len(ids) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, ids)
	}
	for i := range expected {
		if ids[i] != expected[i] {
			t.Fatalf("expected %v, got %v", expected, ids)
		}
	}
}

func TestAssignTableBestFit(t *testing.T) {
	loc := mustLoc(t)

	tables := []models.Table{
		{ID: 1, Capacity: 2, Active: true},
		{ID: 2, Capacity: 4, Active: true},
		{ID: 3, Capacity: 8, Active: true},
	}
	candidates := CandidateTables(tables, 2)

	end := at(loc, 16, 0)
	occupations := []Occupation{
		{Kind: OccupationReservation, RefID: 1, TableID: 1, Start: at(loc, 14, 0), End: &end},
	}

	got := AssignTable(candidates, occupations, at(loc, 15, 0), at(loc, 16, 30))
	if got == nil || got.ID != 2 {
		t.Fatalf("expected table 2, got %+v", got)
	}

	// Mesa 1 libre de nuevo en un slot posterior: vuelve a ser la best fit.
	got = AssignTable(candidates, occupations, at(loc, 16, 0), at(loc, 17, 30))
	if got == nil || got.ID != 1 {
		t.Fatalf("expected table 1, got %+v", got)
	}
}

func TestAssignTableNoneFree(t *testing.T) {
	loc := mustLoc(t)

	tables := []models.Table{{ID: 1, Capacity: 4, Active: true}}
	candidates := CandidateTables(tables, 4)

	occupations := []Occupation{
		{Kind: OccupationWalkin, RefID: 9, TableID: 1, Start: at(loc, 14, 0)},
	}

	if got := AssignTable(candidates, occupations, at(loc, 15, 0), at(loc, 16, 30)); got != nil {
		t.Fatalf("expected no table, got %+v", got)
	}
}

func TestTableFreeFrom(t *testing.T) {
	loc := mustLoc(t)

	endEarly := at(loc, 14, 0)
	occupations := []Occupation{
		{Kind: OccupationReservation, RefID: 1, TableID: 1, Start: at(loc, 12, 0), End: &endEarly},
		{Kind: OccupationWalkin, RefID: 2, TableID: 2, Start: at(loc, 13, 0)},
	}

	if !TableFreeFrom(1, occupations, at(loc, 14, 0)) {
		t.Fatalf("table 1 should be free once its occupation ended")
	}
	if TableFreeFrom(2, occupations, at(loc, 18, 0)) {
		t.Fatalf("table 2 should stay busy while the walk-in is open")
	}
}

func TestOccupationsFrom(t *testing.T) {
	loc := mustLoc(t)

	table1 := uint(1)
	table2 := uint(2)

	reservations := []models.Reservation{
		{ID: 1, TableID: &table1, Status: "confirmed", StartTime: at(loc, 14, 0), EndTime: at(loc, 15, 30)},
		{ID: 2, TableID: &table1, Status: "cancelled", StartTime: at(loc, 16, 0), EndTime: at(loc, 17, 30)},
		{ID: 3, TableID: nil, Status: "pending", StartTime: at(loc, 18, 0), EndTime: at(loc, 19, 30)},
	}
	walkins := []models.Walkin{
		{ID: 4, TableID: &table2, Status: "active", StartTime: at(loc, 13, 0)},
		{ID: 5, TableID: &table2, Status: "completed", StartTime: at(loc, 10, 0)},
	}

	occ := OccupationsFrom(reservations, walkins)
	if len(occ) != 2 {
		t.Fatalf("expected 2 occupations, got %d", len(occ))
	}
	if occ[0].Kind != OccupationReservation || occ[0].RefID != 1 {
		t.Fatalf("expected reservation 1 first, got %+v", occ[0])
	}
	if occ[1].Kind != OccupationWalkin || occ[1].RefID != 4 || occ[1].End != nil {
		t.Fatalf("expected open walk-in 4, got %+v", occ[1])
	}
}
