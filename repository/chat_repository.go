package repository

import (
	"github.com/zninennea/nani-plate-perfect/entity"

	"gorm.io/gorm"
)

type ChatRepository struct {
	DB *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{DB: db}
}

func (r *ChatRepository) Create(m *entity.ChatMessage) error {
	return r.DB.Create(m).Error
}

// History is oldest-first; the chat view appends.
func (r *ChatRepository) History(orderID uint, limit int) ([]entity.ChatMessage, error) {
	if limit <= 0 {
		limit = 200
	}
	var out []entity.ChatMessage
	err := r.DB.Where("order_id = ?", orderID).
		Order("id").Limit(limit).
		Find(&out).Error
	return out, err
}
