package repository

import (
	"github.com/zninennea/nani-plate-perfect/entity"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

func (r *ReviewRepository) Create(rv *entity.Review) error {
	return r.DB.Create(rv).Error
}

func (r *ReviewRepository) ExistsForOrder(orderID uint) (bool, error) {
	var n int64
	err := r.DB.Model(&entity.Review{}).Where("order_id = ?", orderID).Count(&n).Error
	return n > 0, err
}

func (r *ReviewRepository) List(limit int) ([]entity.Review, error) {
	if limit <= 0 {
		limit = 100
	}
	var out []entity.Review
	err := r.DB.Order("id DESC").Limit(limit).Find(&out).Error
	return out, err
}
