package repository

import (
	"time"

	"github.com/zninennea/nani-plate-perfect/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) Get(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetWithDriver(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").Preload("Driver").First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

type OrderSummary struct {
	ID        uint               `json:"id"`
	Code      string             `json:"code"`
	Total     int64              `json:"total"`
	Status    entity.OrderStatus `json:"status"`
	CreatedAt time.Time          `json:"createdAt"`
}

func (r *OrderRepository) ListForCustomer(customerID uint, limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, code, total, status, created_at").
		Where("customer_id = ?", customerID).
		Order("id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

type OwnerOrderSummary struct {
	ID           uint               `json:"id"`
	Code         string             `json:"code"`
	CustomerName string             `json:"customerName"`
	Total        int64              `json:"total"`
	Status       entity.OrderStatus `json:"status"`
	CreatedAt    time.Time          `json:"createdAt"`
}

func (r *OrderRepository) ListForOwner(status *entity.OrderStatus, limit int) ([]OwnerOrderSummary, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	db := r.DB.Model(&entity.Order{}).
		Select("id, code, customer_name, total, status, created_at").
		Order("id DESC").Limit(limit)
	if status != nil {
		db = db.Where("status = ?", *status)
	}
	var out []OwnerOrderSummary
	err := db.Scan(&out).Error
	return out, err
}

// ListClaimable returns ready orders no driver has taken yet.
func (r *OrderRepository) ListClaimable(limit int) ([]entity.Order, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []entity.Order
	err := r.DB.Preload("Items").
		Where("status = ? AND driver_id IS NULL", entity.StatusReady).
		Order("id").Limit(limit).
		Find(&out).Error
	return out, err
}

func (r *OrderRepository) ListForDriver(driverID uint, limit int) ([]entity.Order, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []entity.Order
	err := r.DB.Where("driver_id = ?", driverID).
		Order("id DESC").Limit(limit).
		Find(&out).Error
	return out, err
}

// UpdateStatusGuard performs the transition as a conditional update: it
// only applies when the order is still in the expected source status.
// RowsAffected == 0 means a stale or illegal attempt; nothing is written.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to entity.OrderStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// ClaimDriver is the one write that sets driver_id, fused with the
// ready->picked_up transition. Two drivers racing on the same order resolve
// here: the second conditional update matches zero rows.
func (r *OrderRepository) ClaimDriver(tx *gorm.DB, orderID, driverID uint) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ? AND driver_id IS NULL", orderID, entity.StatusReady).
		Updates(map[string]any{"status": entity.StatusPickedUp, "driver_id": driverID})
	return res.RowsAffected, res.Error
}

// CancelGuard moves any non-terminal order to cancelled.
func (r *OrderRepository) CancelGuard(tx *gorm.DB, orderID uint) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status NOT IN ?", orderID,
			[]entity.OrderStatus{entity.StatusDelivered, entity.StatusCancelled}).
		Update("status", entity.StatusCancelled)
	return res.RowsAffected, res.Error
}
