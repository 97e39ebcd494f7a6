package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/zninennea/nani-plate-perfect/configs"
	"github.com/zninennea/nani-plate-perfect/entity"
	"github.com/zninennea/nani-plate-perfect/pkg/realtime"
	"github.com/zninennea/nani-plate-perfect/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// one connection so every session sees the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, configs.SetupDatabase(db))
	return db
}

type fixture struct {
	db     *gorm.DB
	hub    *realtime.Hub
	orders *OrderService
	cart   *CartService
	chat   *ChatService
	review *ReviewService
	driver *DriverService

	customer entity.User
	driver1  entity.User
	driver2  entity.User
	burger   entity.MenuItem
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newTestDB(t)

	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	cartRepo := repository.NewCartRepository(db)
	chatRepo := repository.NewChatRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	hub := realtime.NewHub()
	cartSvc := NewCartService(cartRepo, menuRepo)
	orderSvc := NewOrderService(db, orderRepo, cartSvc, hub, 299, 10)

	f := &fixture{
		db:     db,
		hub:    hub,
		orders: orderSvc,
		cart:   cartSvc,
		chat:   NewChatService(chatRepo, orderRepo, hub),
		review: NewReviewService(reviewRepo, orderRepo),
		driver: NewDriverService(userRepo, orderRepo, hub),

		customer: entity.User{Email: "cust@example.com", FullName: "Casey Customer", Role: entity.RoleCustomer},
		driver1:  entity.User{Email: "d1@example.com", FullName: "Devon Driver", Role: entity.RoleDriver},
		driver2:  entity.User{Email: "d2@example.com", FullName: "Drew Driver", Role: entity.RoleDriver},
		burger:   entity.MenuItem{Name: "Burger", Price: 1299, Category: "mains", Available: true},
	}

	require.NoError(t, db.Create(&f.customer).Error)
	require.NoError(t, db.Create(&f.driver1).Error)
	require.NoError(t, db.Create(&f.driver2).Error)
	require.NoError(t, db.Create(&f.burger).Error)
	return f
}

// checkout places a pending order with 2x burger for the fixture customer.
func (f *fixture) checkout(t *testing.T) *entity.Order {
	t.Helper()
	require.NoError(t, f.cart.Add(f.customer.ID, f.burger.ID, 2))
	o, err := f.orders.Checkout(f.customer.ID, &CheckoutReq{
		Name:            "Casey Customer",
		Phone:           "555-0100",
		Email:           "cust@example.com",
		DeliveryAddress: "1 Main St",
	})
	require.NoError(t, err)
	return o
}

// deliver walks the order through the whole happy path with driver1.
func (f *fixture) deliver(t *testing.T, orderID uint) {
	t.Helper()
	require.NoError(t, f.orders.OwnerAdvance(orderID, entity.StatusConfirmed))
	require.NoError(t, f.orders.OwnerAdvance(orderID, entity.StatusPreparing))
	require.NoError(t, f.orders.OwnerAdvance(orderID, entity.StatusReady))
	require.NoError(t, f.orders.DriverClaim(f.driver1.ID, orderID))
	require.NoError(t, f.orders.DriverAdvance(f.driver1.ID, orderID, entity.StatusOnTheWay))
	require.NoError(t, f.orders.DriverAdvance(f.driver1.ID, orderID, entity.StatusDelivered))
}
