package models

import "time"

type Table struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	VenueID uint `json:"venue_id"`

	Label    string `gorm:"size:50;not null" json:"label"`
	Capacity int    `gorm:"not null" json:"capacity"`
	Active   bool   `gorm:"default:true" json:"active"`

	// Estado manual; los demás estados se derivan de reservas y walk-ins.
	Cleaning bool `gorm:"default:false" json:"cleaning"`

	// Geometría del plano de mesas (solo presentación).
	X        int    `json:"x"`
	Y        int    `json:"y"`
	W        int    `gorm:"default:80" json:"w"`
	H        int    `gorm:"default:80" json:"h"`
	Shape    string `gorm:"size:20;default:'square'" json:"shape"`
	Rotation int    `json:"rotation"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
