package entity

import (
	"gorm.io/gorm"
)

// Cart lives per user; destroyed only by Clear or a successful checkout.
type Cart struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex;not null" json:"userId"`
	User   User `json:"-"`

	Items []CartItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}

// Subtotal is always recomputed from the lines, never carried.
func (c *Cart) Subtotal() int64 {
	var sum int64
	for _, it := range c.Items {
		sum += it.UnitPrice * int64(it.Quantity)
	}
	return sum
}

type CartItem struct {
	gorm.Model
	CartID uint `gorm:"index;not null" json:"cartId"`
	Cart   Cart `json:"-"`

	MenuItemID uint     `gorm:"index;not null" json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"`
	Quantity  int    `gorm:"not null" json:"quantity"`
	ImageRef  string `json:"imageRef"`
}
