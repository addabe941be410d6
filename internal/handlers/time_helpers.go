package handlers

import (
	"time"

	"github.com/Luexi/PAITITI/internal/models"
	"github.com/Luexi/PAITITI/internal/timezone"
)

// --------------------------------------------------
// Timezone centralizado por venue
// --------------------------------------------------

func locationFromVenue(venue *models.Venue) *time.Location {
	return timezone.Location(venue.Timezone)
}

func nowInVenue(venue *models.Venue) time.Time {
	return timezone.NowIn(venue.Timezone)
}

func parseDateInVenue(venue *models.Venue, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		locationFromVenue(venue),
	)
}

func parseDateTimeInVenue(
	venue *models.Venue,
	dateStr string,
	timeStr string,
) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02 15:04",
		dateStr+" "+timeStr,
		locationFromVenue(venue),
	)
}
