package booking

import "time"

type AvailabilityInput struct {
	VenueID   uint
	Date      time.Time
	PartySize int
}
