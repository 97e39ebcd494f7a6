package repository

import (
	"errors"

	"github.com/zninennea/nani-plate-perfect/entity"

	"gorm.io/gorm"
)

// CartRepository is the gorm-backed cart store. The cart service talks to
// it through the services.CartStore interface so the same cart logic runs
// against an in-memory store in tests or a per-session store elsewhere.
type CartRepository struct {
	DB *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{DB: db}
}

// getWith finds or creates the user's cart on the given handle, so calls
// inside a transaction stay on that transaction's connection.
func (r *CartRepository) getWith(db *gorm.DB, userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := db.Preload("Items").Where("user_id = ?", userID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{UserID: userID}
		if err := db.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CartRepository) Get(userID uint) (*entity.Cart, error) {
	return r.getWith(r.DB, userID)
}

// Put inserts the line or, when the menu item is already in the cart,
// increments its quantity.
func (r *CartRepository) Put(userID uint, line *entity.CartItem) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		c, err := r.getWith(tx, userID)
		if err != nil {
			return err
		}
		var existing entity.CartItem
		err = tx.Where("cart_id = ? AND menu_item_id = ?", c.ID, line.MenuItemID).
			First(&existing).Error
		if err == nil {
			return tx.Model(&existing).
				Update("quantity", existing.Quantity+line.Quantity).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		line.CartID = c.ID
		return tx.Create(line).Error
	})
}

func (r *CartRepository) SetQuantity(userID, menuItemID uint, qty int) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		c, err := r.getWith(tx, userID)
		if err != nil {
			return err
		}
		if qty <= 0 {
			return tx.Where("cart_id = ? AND menu_item_id = ?", c.ID, menuItemID).
				Delete(&entity.CartItem{}).Error
		}
		res := tx.Model(&entity.CartItem{}).
			Where("cart_id = ? AND menu_item_id = ?", c.ID, menuItemID).
			Update("quantity", qty)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *CartRepository) Remove(userID, menuItemID uint) error {
	c, err := r.Get(userID)
	if err != nil {
		return err
	}
	return r.DB.Where("cart_id = ? AND menu_item_id = ?", c.ID, menuItemID).
		Delete(&entity.CartItem{}).Error
}

func (r *CartRepository) Clear(userID uint) error {
	c, err := r.Get(userID)
	if err != nil {
		return err
	}
	return r.DB.Where("cart_id = ?", c.ID).Delete(&entity.CartItem{}).Error
}
