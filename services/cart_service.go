package services

import (
	"errors"

	"github.com/zninennea/nani-plate-perfect/entity"
	"github.com/zninennea/nani-plate-perfect/repository"
)

var ErrItemUnavailable = errors.New("menu item not available")

// CartStore is the pluggable persistence behind the cart: the gorm-backed
// repository in the server, an in-memory store in tests. Get creates an
// empty cart on first use; Put increments quantity for a repeated item.
type CartStore interface {
	Get(userID uint) (*entity.Cart, error)
	Put(userID uint, line *entity.CartItem) error
	SetQuantity(userID, menuItemID uint, qty int) error
	Remove(userID, menuItemID uint) error
	Clear(userID uint) error
}

type CartService struct {
	Store CartStore
	Menu  *repository.MenuRepository
}

func NewCartService(store CartStore, menu *repository.MenuRepository) *CartService {
	return &CartService{Store: store, Menu: menu}
}

// Get returns the cart and its recomputed subtotal.
func (s *CartService) Get(userID uint) (*entity.Cart, int64, error) {
	c, err := s.Store.Get(userID)
	if err != nil {
		return nil, 0, err
	}
	return c, c.Subtotal(), nil
}

func (s *CartService) Add(userID, menuItemID uint, qty int) error {
	if qty <= 0 {
		qty = 1
	}
	m, err := s.Menu.Get(menuItemID)
	if err != nil {
		return err
	}
	if !m.Available {
		return ErrItemUnavailable
	}
	return s.Store.Put(userID, &entity.CartItem{
		MenuItemID: m.ID,
		Name:       m.Name,
		UnitPrice:  m.Price,
		Quantity:   qty,
		ImageRef:   m.ImageRef,
	})
}

// SetQuantity with qty <= 0 removes the line.
func (s *CartService) SetQuantity(userID, menuItemID uint, qty int) error {
	return s.Store.SetQuantity(userID, menuItemID, qty)
}

func (s *CartService) Remove(userID, menuItemID uint) error {
	return s.Store.Remove(userID, menuItemID)
}

func (s *CartService) Clear(userID uint) error {
	return s.Store.Clear(userID)
}
