package models

import "time"

type Reservation struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	VenueID uint `gorm:"index" json:"venue_id"`

	FullName  string `gorm:"size:255;not null" json:"full_name"`
	Phone     string `gorm:"size:20;not null" json:"phone"`
	PartySize int    `gorm:"not null" json:"party_size"`

	Date      string    `gorm:"size:10;index:idx_reservations_table_date" json:"date"` // YYYY-MM-DD
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	TableID *uint  `gorm:"index:idx_reservations_table_date" json:"table_id"`
	Table   *Table `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"table,omitempty"`

	CelebrationType string `gorm:"size:50" json:"celebration_type"`
	Notes           string `gorm:"size:500" json:"notes"`
	Source          string `gorm:"size:20;default:'web'" json:"source"` // web | whatsapp | messenger | walkin

	SeatedAt    *time.Time `json:"seated_at"`
	CompletedAt *time.Time `json:"completed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
