package models

import "time"

// Bloqueo manual: ningún slot dentro de [StartAt, EndAt) es reservable.
type Block struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	VenueID uint `gorm:"index" json:"venue_id"`

	StartAt time.Time `gorm:"not null" json:"start_at"`
	EndAt   time.Time `gorm:"not null" json:"end_at"`
	Reason  string    `gorm:"size:255;not null" json:"reason"`

	CreatedBy string `gorm:"size:100" json:"created_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
