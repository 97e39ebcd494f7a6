package entity

import (
	"gorm.io/gorm"
)

// Order is the single multi-writer aggregate: the owner advances the
// kitchen statuses, a driver claims and delivers, the customer reviews.
// All money fields are cents.
type Order struct {
	gorm.Model
	Code string `gorm:"uniqueIndex;not null" json:"code"`

	CustomerID uint `gorm:"index;not null" json:"customerId"`
	Customer   User `json:"-"`

	// null until a driver claims the order, immutable afterwards
	DriverID *uint `gorm:"index" json:"driverId"`
	Driver   *User `gorm:"foreignKey:DriverID" json:"-"`

	Status OrderStatus `gorm:"not null;default:pending;index" json:"status"`

	Subtotal    int64 `json:"subtotal"`
	DeliveryFee int64 `json:"deliveryFee"`
	Tax         int64 `json:"tax"`
	Total       int64 `json:"total"`

	CustomerName        string `json:"customerName"`
	CustomerPhone       string `json:"customerPhone"`
	CustomerEmail       string `json:"customerEmail"`
	DeliveryAddress     string `gorm:"not null" json:"deliveryAddress"`
	SpecialInstructions string `json:"specialInstructions"`

	Items  []OrderItem `json:"items"`
	Review *Review     `json:"-"`
}

// ChatEnabled and TrackingEnabled are recomputed from (status, driver_id)
// on every call, never cached.
func (o *Order) ChatEnabled() bool {
	return o.DriverID != nil && (o.Status == StatusPickedUp || o.Status == StatusOnTheWay)
}

func (o *Order) TrackingEnabled() bool {
	return o.ChatEnabled()
}

func (o *Order) ReviewOpen() bool {
	return o.Status == StatusDelivered
}
