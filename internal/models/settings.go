package models

import "time"

// Parámetros operativos de reservas, una fila por venue.
type Settings struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	VenueID uint `gorm:"uniqueIndex" json:"venue_id"`

	SlotMinutes            int `gorm:"default:30" json:"slot_minutes"`
	DefaultDurationMinutes int `gorm:"default:90" json:"default_duration_minutes"`
	MaxPartySize           int `gorm:"default:10" json:"max_party_size"`
	MinNoticeMinutes       int `gorm:"default:120" json:"min_notice_minutes"`
	MaxDaysAhead           int `gorm:"default:30" json:"max_days_ahead"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
