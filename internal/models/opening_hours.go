package models

import "time"

type OpeningHours struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	VenueID uint `gorm:"index:idx_opening_hours_venue_weekday,unique" json:"venue_id"`

	Weekday int `gorm:"index:idx_opening_hours_venue_weekday,unique" json:"weekday"` // 0=domingo .. 6=sábado

	OpenTime  string `gorm:"size:5" json:"open_time"`  // HH:mm
	CloseTime string `gorm:"size:5" json:"close_time"` // HH:mm
	IsClosed  bool   `json:"is_closed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
