package booking

import (
	"testing"

	"github.com/Luexi/PAITITI/internal/models"
)

func TestResolveTableStatus(t *testing.T) {
	loc := mustLoc(t)
	now := at(loc, 15, 0)

	tableID := uint(1)
	table := models.Table{ID: tableID, Capacity: 4, Active: true}

	seated := models.Reservation{
		ID: 1, TableID: &tableID, Status: "seated",
		StartTime: at(loc, 14, 30), EndTime: at(loc, 16, 0),
	}
	confirmedInWindow := models.Reservation{
		ID: 2, TableID: &tableID, Status: "confirmed",
		StartTime: at(loc, 14, 30), EndTime: at(loc, 16, 0),
	}
	confirmedSoon := models.Reservation{
		ID: 3, TableID: &tableID, Status: "confirmed",
		StartTime: at(loc, 15, 20), EndTime: at(loc, 16, 50),
	}
	confirmedLater := models.Reservation{
		ID: 4, TableID: &tableID, Status: "confirmed",
		StartTime: at(loc, 19, 0), EndTime: at(loc, 20, 30),
	}

	activeWalkin := models.Walkin{ID: 9, TableID: &tableID, Status: "active", StartTime: at(loc, 14, 0)}

	cases := []struct {
		name         string
		table        models.Table
		reservations []models.Reservation
		walkins      []models.Walkin
		expected     TableStatus
	}{
		{
			name:     "cleaning wins over everything",
			table:    models.Table{ID: tableID, Cleaning: true},
			walkins:  []models.Walkin{activeWalkin},
			expected: TableCleaning,
		},
		{
			name:     "active walkin occupies",
			table:    table,
			walkins:  []models.Walkin{activeWalkin},
			expected: TableOccupied,
		},
		{
			name:         "seated reservation in window occupies",
			table:        table,
			reservations: []models.Reservation{seated},
			expected:     TableOccupied,
		},
		{
			name:         "confirmed in window but not seated yet",
			table:        table,
			reservations: []models.Reservation{confirmedInWindow},
			expected:     TableReserved,
		},
		{
			name:         "confirmed starting within 30 minutes",
			table:        table,
			reservations: []models.Reservation{confirmedSoon},
			expected:     TableReserved,
		},
		{
			name:         "confirmed far in the future",
			table:        table,
			reservations: []models.Reservation{confirmedLater},
			expected:     TableAvailable,
		},
		{
			name:     "nothing scheduled",
			table:    table,
			expected: TableAvailable,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ResolveTableStatus(tc.table, tc.reservations, tc.walkins, now)
			if got != tc.expected {
				t.Fatalf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}
