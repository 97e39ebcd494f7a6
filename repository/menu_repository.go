package repository

import (
	"github.com/zninennea/nani-plate-perfect/entity"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) Create(m *entity.MenuItem) error {
	return r.DB.Create(m).Error
}

func (r *MenuRepository) Get(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) Update(id uint, updates map[string]any) error {
	res := r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *MenuRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.MenuItem{}, id).Error
}

// ListAvailable is the customer view of the menu.
func (r *MenuRepository) ListAvailable() ([]entity.MenuItem, error) {
	var out []entity.MenuItem
	err := r.DB.Where("available = ?", true).Order("category, name").Find(&out).Error
	return out, err
}

func (r *MenuRepository) ListAll() ([]entity.MenuItem, error) {
	var out []entity.MenuItem
	err := r.DB.Order("category, name").Find(&out).Error
	return out, err
}
