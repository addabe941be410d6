package models

import "time"

type User struct {
	ID      uint  `gorm:"primaryKey" json:"id"`
	VenueID uint  `json:"venue_id"`
	Venue   Venue `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"venue"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`
	Role         string `gorm:"size:20;default:'host'" json:"role"` // owner | manager | host

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
