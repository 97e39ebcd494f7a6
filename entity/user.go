package entity

import (
	"gorm.io/gorm"
)

const (
	RoleOwner    = "owner"
	RoleCustomer = "customer"
	RoleDriver   = "driver"
)

func ValidRole(r string) bool {
	return r == RoleOwner || r == RoleCustomer || r == RoleDriver
}

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Role     string `gorm:"not null;default:customer" json:"role"`

	// drivers only, refreshed while a delivery is underway
	CurrentLat *float64 `json:"currentLat,omitempty"`
	CurrentLng *float64 `json:"currentLng,omitempty"`

	Orders     []Order       `gorm:"foreignKey:CustomerID" json:"-"`
	Deliveries []Order       `gorm:"foreignKey:DriverID" json:"-"`
	Reviews    []Review      `gorm:"foreignKey:CustomerID" json:"-"`
	Messages   []ChatMessage `gorm:"foreignKey:SenderID" json:"-"`
}
