package models

import "time"

// Imagen de la galería pública; Key es el objeto en S3.
type GalleryImage struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	VenueID uint `gorm:"index" json:"venue_id"`

	Key       string `gorm:"size:255;not null" json:"key"`
	URL       string `gorm:"size:500;not null" json:"url"`
	Title     string `gorm:"size:100" json:"title"`
	SortOrder int    `gorm:"default:0" json:"sort_order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
