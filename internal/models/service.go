package models

import "time"

// Service is a bookable treatment. DurationMin drives the end time of every
// appointment created for it.
type Service struct {
	ID         uint  `gorm:"primaryKey" json:"id"`
	LocationID *uint `gorm:"index" json:"location_id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:255" json:"description"`
	DurationMin int     `gorm:"not null" json:"duration_min"`
	Price       float64 `json:"price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
