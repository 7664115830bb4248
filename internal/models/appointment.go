package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// (barber_id, start_time) is unique: the storage layer rejects a second
	// booking for the same barber and instant.
	BarberID uint  `gorm:"uniqueIndex:idx_appointments_barber_start;not null" json:"barber_id"`
	Barber   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"barber,omitempty"`

	CustomerID uint  `gorm:"index;not null" json:"customer_id"`
	Customer   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"customer,omitempty"`

	ServiceID uint     `gorm:"not null" json:"service_id"`
	Service   *Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"service,omitempty"`

	LocationID *uint     `json:"location_id"`
	Location   *Location `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"location,omitempty"`

	StartTime time.Time `gorm:"uniqueIndex:idx_appointments_barber_start;not null" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`

	IsFree     bool    `gorm:"default:false" json:"is_free"`
	WalkInName *string `gorm:"size:100" json:"walk_in_name"`

	ReminderSentAt    *time.Time `json:"reminder_sent_at"`
	ReviewEmailSentAt *time.Time `json:"review_email_sent_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
