package models

import "time"

// Walk-in: comensal sentado sin reserva previa. Mientras está activo y tiene
// mesa asignada ocupa la mesa igual que una reserva, pero con intervalo
// abierto hasta que se complete.
type Walkin struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	VenueID uint `gorm:"index" json:"venue_id"`

	GuestName  string `gorm:"size:255" json:"guest_name"`
	GuestPhone string `gorm:"size:20" json:"guest_phone"`
	PartySize  int    `gorm:"not null" json:"party_size"`

	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`

	Status string `gorm:"size:20;default:'active'" json:"status"` // active | completed

	TableID *uint  `gorm:"index" json:"table_id"`
	Table   *Table `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"table,omitempty"`

	Notes string `gorm:"size:500" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
