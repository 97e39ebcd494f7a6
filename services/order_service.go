package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zninennea/nani-plate-perfect/entity"
	"github.com/zninennea/nani-plate-perfect/pkg/realtime"
	"github.com/zninennea/nani-plate-perfect/repository"
)

var (
	ErrEmptyCart           = errors.New("cart is empty")
	ErrAddressRequired     = errors.New("delivery address is required")
	ErrForbidden           = errors.New("forbidden")
	ErrTrackingUnavailable = errors.New("tracking not available for this order")
)

type OrderService struct {
	DB   *gorm.DB
	Repo *repository.OrderRepository
	Cart *CartService
	Hub  *realtime.Hub

	DeliveryFeeCents int64
	TaxRatePercent   int64
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, cart *CartService, hub *realtime.Hub, feeCents, taxPct int64) *OrderService {
	return &OrderService{
		DB: db, Repo: repo, Cart: cart, Hub: hub,
		DeliveryFeeCents: feeCents, TaxRatePercent: taxPct,
	}
}

type CheckoutReq struct {
	Name                string `json:"name" binding:"required"`
	Phone               string `json:"phone" binding:"required"`
	Email               string `json:"email"`
	DeliveryAddress     string `json:"deliveryAddress" binding:"required"`
	SpecialInstructions string `json:"specialInstructions"`
}

// taxFor rounds half-up to a cent so the stored total matches the
// two-decimal display convention.
func (s *OrderService) taxFor(subtotal int64) int64 {
	return (subtotal*s.TaxRatePercent + 50) / 100
}

// Checkout consumes the caller's cart snapshot: order plus line snapshots
// are written in one transaction, and the cart is cleared only after that
// commit succeeds, so a failed checkout leaves the cart intact for retry.
func (s *OrderService) Checkout(userID uint, req *CheckoutReq) (*entity.Order, error) {
	if strings.TrimSpace(req.DeliveryAddress) == "" {
		return nil, ErrAddressRequired
	}

	cart, subtotal, err := s.Cart.Get(userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	order := &entity.Order{
		Code:                uuid.NewString(),
		CustomerID:          userID,
		Status:              entity.StatusPending,
		Subtotal:            subtotal,
		DeliveryFee:         s.DeliveryFeeCents,
		Tax:                 s.taxFor(subtotal),
		CustomerName:        strings.TrimSpace(req.Name),
		CustomerPhone:       strings.TrimSpace(req.Phone),
		CustomerEmail:       strings.TrimSpace(req.Email),
		DeliveryAddress:     strings.TrimSpace(req.DeliveryAddress),
		SpecialInstructions: strings.TrimSpace(req.SpecialInstructions),
	}
	order.Total = order.Subtotal + order.DeliveryFee + order.Tax

	for _, it := range cart.Items {
		order.Items = append(order.Items, entity.OrderItem{
			MenuItemID: it.MenuItemID,
			Name:       it.Name,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
		})
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Create(tx, order)
	})
	if err != nil {
		return nil, err
	}

	s.publish(realtime.KindInsert, order)

	// a stale cart is recoverable, the committed order and its notice are not
	_ = s.Cart.Clear(userID)
	return order, nil
}

// Get enforces who may see an order: its customer, its assigned driver, or
// the owner.
func (s *OrderService) Get(orderID, viewerID uint, viewerRole string) (*entity.Order, error) {
	o, err := s.Repo.Get(orderID)
	if err != nil {
		return nil, err
	}
	if !s.canView(o, viewerID, viewerRole) {
		return nil, ErrForbidden
	}
	return o, nil
}

func (s *OrderService) canView(o *entity.Order, viewerID uint, viewerRole string) bool {
	switch viewerRole {
	case entity.RoleOwner:
		return true
	case entity.RoleCustomer:
		return o.CustomerID == viewerID
	case entity.RoleDriver:
		return o.DriverID != nil && *o.DriverID == viewerID
	}
	return false
}

func (s *OrderService) ListForCustomer(customerID uint) ([]repository.OrderSummary, error) {
	return s.Repo.ListForCustomer(customerID, 0)
}

func (s *OrderService) ListForOwner(status *entity.OrderStatus) ([]repository.OwnerOrderSummary, error) {
	return s.Repo.ListForOwner(status, 0)
}

type TrackingInfo struct {
	OrderID    uint               `json:"orderId"`
	Status     entity.OrderStatus `json:"status"`
	DriverName string             `json:"driverName"`
	Lat        *float64           `json:"lat"`
	Lng        *float64           `json:"lng"`
}

// Tracking is gated by the same predicate as chat and serves whatever
// location the driver last reported (placeholder coordinates otherwise).
func (s *OrderService) Tracking(orderID, viewerID uint, viewerRole string) (*TrackingInfo, error) {
	o, err := s.Repo.GetWithDriver(orderID)
	if err != nil {
		return nil, err
	}
	if !s.canView(o, viewerID, viewerRole) {
		return nil, ErrForbidden
	}
	if !o.TrackingEnabled() {
		return nil, ErrTrackingUnavailable
	}
	info := &TrackingInfo{OrderID: o.ID, Status: o.Status}
	if o.Driver != nil {
		info.DriverName = o.Driver.FullName
		info.Lat = o.Driver.CurrentLat
		info.Lng = o.Driver.CurrentLng
	}
	return info, nil
}

func (s *OrderService) publish(kind realtime.Kind, o *entity.Order) {
	if s.Hub == nil {
		return
	}
	e := realtime.Event{
		Collection: realtime.CollectionOrders,
		Kind:       kind,
		OrderID:    o.ID,
		CustomerID: o.CustomerID,
	}
	if o.DriverID != nil {
		e.DriverID = *o.DriverID
	}
	s.Hub.Publish(e)
}
