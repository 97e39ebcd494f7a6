package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	Price       int64  `gorm:"not null" json:"price"` // cents
	Category    string `gorm:"index" json:"category"`
	ImageRef    string `json:"imageRef"`
	Available   bool   `gorm:"not null;default:true" json:"available"`
}
