package models

import "time"

const (
	RoleCustomer   = "customer"
	RoleBarber     = "barber"
	RoleHeadBarber = "head_barber"
	RoleAdmin      = "admin"
)

// StaffRoles are the roles that can be booked as a barber.
var StaffRoles = []string{RoleBarber, RoleHeadBarber}

type User struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	LocationID *uint     `gorm:"index" json:"location_id"`
	Location   *Location `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"location,omitempty"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`
	Role         string `gorm:"size:20;default:'customer'" json:"role"`

	// loyalty counter; HasFreeCredit flips on once enough stamps were collected
	LoyaltyStamps int  `gorm:"default:0" json:"loyalty_stamps"`
	HasFreeCredit bool `gorm:"default:false" json:"has_free_credit"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func IsStaffRole(role string) bool {
	for _, r := range StaffRoles {
		if r == role {
			return true
		}
	}
	return false
}
