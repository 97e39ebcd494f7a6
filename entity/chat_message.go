package entity

import (
	"gorm.io/gorm"
)

// ChatMessage is append-only, scoped to one order's customer<->driver pair.
type ChatMessage struct {
	gorm.Model
	OrderID uint  `gorm:"index;not null" json:"orderId"`
	Order   Order `json:"-"`

	SenderID   uint `gorm:"not null" json:"senderId"`
	Sender     User `gorm:"foreignKey:SenderID" json:"-"`
	ReceiverID uint `gorm:"not null" json:"receiverId"`

	Body string `gorm:"not null" json:"body"`
}
