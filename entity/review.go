package entity

import (
	"gorm.io/gorm"
)

// Review is written at most once per delivered order; the unique index on
// OrderID backs the only-once rule even under concurrent submissions.
type Review struct {
	gorm.Model
	OrderID uint  `gorm:"uniqueIndex;not null" json:"orderId"`
	Order   Order `json:"-"`

	CustomerID uint  `gorm:"index;not null" json:"customerId"`
	Customer   User  `json:"-"`
	DriverID   *uint `json:"driverId"`

	FoodRating   int    `gorm:"not null" json:"foodRating"`
	DriverRating *int   `json:"driverRating"`
	Comment      string `json:"comment"`
}
