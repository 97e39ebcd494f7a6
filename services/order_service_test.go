package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zninennea/nani-plate-perfect/entity"
	"github.com/zninennea/nani-plate-perfect/pkg/realtime"
)

func TestCheckoutTotalsMatchDisplayConvention(t *testing.T) {
	f := newFixture(t)

	// {Burger qty 2 @ 12.99} + 2.99 fee + 10% tax = 31.568 → 31.57
	o := f.checkout(t)

	require.Equal(t, int64(2598), o.Subtotal)
	require.Equal(t, int64(299), o.DeliveryFee)
	require.Equal(t, int64(260), o.Tax) // 2.598 rounded half-up to a cent
	require.Equal(t, int64(3157), o.Total)

	require.Equal(t, entity.StatusPending, o.Status)
	require.Nil(t, o.DriverID)
	require.NotEmpty(t, o.Code)
	require.Len(t, o.Items, 1)
	require.Equal(t, 2, o.Items[0].Quantity)
	require.Equal(t, int64(1299), o.Items[0].UnitPrice)
}

func TestCheckoutClearsCartOnlyOnSuccess(t *testing.T) {
	f := newFixture(t)
	uid := f.customer.ID

	require.NoError(t, f.cart.Add(uid, f.burger.ID, 2))

	// missing address: checkout fails, cart stays intact for retry
	_, err := f.orders.Checkout(uid, &CheckoutReq{Name: "Casey", Phone: "555-0100"})
	require.ErrorIs(t, err, ErrAddressRequired)

	cart, subtotal, err := f.cart.Get(uid)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	require.Equal(t, int64(2598), subtotal)

	// successful checkout consumes the snapshot
	_, err = f.orders.Checkout(uid, &CheckoutReq{
		Name: "Casey", Phone: "555-0100", DeliveryAddress: "1 Main St",
	})
	require.NoError(t, err)

	cart, _, err = f.cart.Get(uid)
	require.NoError(t, err)
	require.Empty(t, cart.Items)
}

type failingClearStore struct{ *memCartStore }

func (failingClearStore) Clear(userID uint) error { return errors.New("store down") }

func TestCheckoutAnnouncesOrderEvenWhenCartClearFails(t *testing.T) {
	f := newFixture(t)
	uid := f.customer.ID

	cartSvc := NewCartService(failingClearStore{newMemCartStore()}, f.cart.Menu)
	orders := NewOrderService(f.db, f.orders.Repo, cartSvc, f.hub, 299, 10)

	var events []realtime.Event
	unsub := f.hub.Subscribe(realtime.CollectionOrders,
		realtime.Filter{CustomerID: uid}, func(e realtime.Event) {
			events = append(events, e)
		})
	defer unsub()

	require.NoError(t, cartSvc.Add(uid, f.burger.ID, 2))
	o, err := orders.Checkout(uid, &CheckoutReq{
		Name: "Casey", Phone: "555-0100", DeliveryAddress: "1 Main St",
	})
	require.NoError(t, err)

	// listeners hear about the committed order regardless of cart cleanup
	require.Len(t, events, 1)
	require.Equal(t, realtime.KindInsert, events[0].Kind)
	require.Equal(t, o.ID, events[0].OrderID)

	// the stale cart is left for the next request to retry
	cart, _, err := cartSvc.Get(uid)
	require.NoError(t, err)
	require.NotEmpty(t, cart.Items)
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	f := newFixture(t)
	_, err := f.orders.Checkout(f.customer.ID, &CheckoutReq{
		Name: "Casey", Phone: "555-0100", DeliveryAddress: "1 Main St",
	})
	require.ErrorIs(t, err, ErrEmptyCart)
}

func TestOrderViewAccess(t *testing.T) {
	f := newFixture(t)
	o := f.checkout(t)

	// the customer and the owner can see it
	_, err := f.orders.Get(o.ID, f.customer.ID, entity.RoleCustomer)
	require.NoError(t, err)
	_, err = f.orders.Get(o.ID, 999, entity.RoleOwner)
	require.NoError(t, err)

	// an unassigned driver cannot
	_, err = f.orders.Get(o.ID, f.driver1.ID, entity.RoleDriver)
	require.ErrorIs(t, err, ErrForbidden)

	// another customer cannot
	_, err = f.orders.Get(o.ID, f.driver1.ID, entity.RoleCustomer)
	require.ErrorIs(t, err, ErrForbidden)
}

func TestTrackingGatedByCapability(t *testing.T) {
	f := newFixture(t)
	o := f.checkout(t)

	// pending, no driver: tracking off
	_, err := f.orders.Tracking(o.ID, f.customer.ID, entity.RoleCustomer)
	require.ErrorIs(t, err, ErrTrackingUnavailable)

	require.NoError(t, f.orders.OwnerAdvance(o.ID, entity.StatusConfirmed))
	require.NoError(t, f.orders.OwnerAdvance(o.ID, entity.StatusPreparing))
	require.NoError(t, f.orders.OwnerAdvance(o.ID, entity.StatusReady))
	require.NoError(t, f.orders.DriverClaim(f.driver1.ID, o.ID))
	require.NoError(t, f.driver.UpdateLocation(f.driver1.ID, 13.7563, 100.5018))

	info, err := f.orders.Tracking(o.ID, f.customer.ID, entity.RoleCustomer)
	require.NoError(t, err)
	require.Equal(t, entity.StatusPickedUp, info.Status)
	require.NotNil(t, info.Lat)
	require.InDelta(t, 13.7563, *info.Lat, 1e-9)

	// delivered: tracking off again
	require.NoError(t, f.orders.DriverAdvance(f.driver1.ID, o.ID, entity.StatusOnTheWay))
	require.NoError(t, f.orders.DriverAdvance(f.driver1.ID, o.ID, entity.StatusDelivered))
	_, err = f.orders.Tracking(o.ID, f.customer.ID, entity.RoleCustomer)
	require.ErrorIs(t, err, ErrTrackingUnavailable)
}
