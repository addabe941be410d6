package booking

import "testing"

func TestTransitionGuards(t *testing.T) {
	cases := []struct {
		name    string
		check   func(Status) error
		from    Status
		allowed bool
	}{
		{name: "confirm pending", check: CanConfirm, from: StatusPending, allowed: true},
		{name: "confirm confirmed", check: CanConfirm, from: StatusConfirmed, allowed: false},
		{name: "seat confirmed", check: CanSeat, from: StatusConfirmed, allowed: true},
		{name: "seat pending", check: CanSeat, from: StatusPending, allowed: false},
		{name: "complete seated", check: CanComplete, from: StatusSeated, allowed: true},
		{name: "complete confirmed", check: CanComplete, from: StatusConfirmed, allowed: false},
		{name: "cancel pending", check: CanCancel, from: StatusPending, allowed: true},
		{name: "cancel seated", check: CanCancel, from: StatusSeated, allowed: true},
		{name: "cancel completed", check: CanCancel, from: StatusCompleted, allowed: false},
		{name: "no show confirmed", check: CanMarkNoShow, from: StatusConfirmed, allowed: true},
		{name: "no show cancelled", check: CanMarkNoShow, from: StatusCancelled, allowed: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.check(tc.from)
			if tc.allowed && err != nil {
				t.Fatalf("expected transition allowed, got %v", err)
			}
			if !tc.allowed && err == nil {
				t.Fatalf("expected transition rejected")
			}
		})
	}
}

func TestIsOccupying(t *testing.T) {
	occupying := map[Status]bool{
		StatusPending:   false,
		StatusConfirmed: true,
		StatusSeated:    true,
		StatusCompleted: false,
		StatusCancelled: false,
		StatusNoShow:    false,
	}

	for status, expected := range occupying {
		if got := IsOccupying(status); got != expected {
			t.Fatalf("IsOccupying(%s): expected %v, got %v", status, expected, got)
		}
	}
}

func TestInitialStatus(t *testing.T) {
	if got := InitialStatus(true); got != StatusConfirmed {
		t.Fatalf("expected confirmed, got %s", got)
	}
	if got := InitialStatus(false); got != StatusPending {
		t.Fatalf("expected pending, got %s", got)
	}
}
