package ws

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/zninennea/nani-plate-perfect/entity"
	"github.com/zninennea/nani-plate-perfect/pkg/realtime"
)

type stubOrders map[uint]*entity.Order

func (s stubOrders) Get(orderID uint) (*entity.Order, error) {
	o, ok := s[orderID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return o, nil
}

func newScopeHandler() *EventsHandler {
	assigned := uint(9)
	orders := stubOrders{
		42: {CustomerID: 7, DriverID: &assigned},
		43: {CustomerID: 7}, // not yet claimed
	}
	return NewEventsHandler(realtime.NewHub(), orders, zap.NewNop())
}

func TestEventsSubscriptionScope(t *testing.T) {
	h := newScopeHandler()

	cases := []struct {
		name   string
		frame  subscribeFrame
		userID uint
		role   string
		want   bool
	}{
		{"customer watches own order", subscribeFrame{Collection: "orders", OrderID: 42}, 7, entity.RoleCustomer, true},
		{"customer cannot watch foreign order", subscribeFrame{Collection: "orders", OrderID: 42}, 1, entity.RoleCustomer, false},
		{"customer cannot watch missing order", subscribeFrame{Collection: "orders", OrderID: 99}, 7, entity.RoleCustomer, false},
		{"customer watches own feed", subscribeFrame{Collection: "orders", CustomerID: 7}, 7, entity.RoleCustomer, true},
		{"customer cannot watch another customer's feed", subscribeFrame{Collection: "orders", CustomerID: 8}, 7, entity.RoleCustomer, false},
		{"assigned driver watches the order", subscribeFrame{Collection: "orders", OrderID: 42}, 9, entity.RoleDriver, true},
		{"other driver cannot watch the order", subscribeFrame{Collection: "orders", OrderID: 42}, 2, entity.RoleDriver, false},
		{"driver cannot watch an unclaimed order directly", subscribeFrame{Collection: "orders", OrderID: 43}, 9, entity.RoleDriver, false},
		{"driver watches own claims", subscribeFrame{Collection: "orders", DriverID: 9}, 9, entity.RoleDriver, true},
		{"driver watches unassigned pool", subscribeFrame{Collection: "orders", Unassigned: true}, 9, entity.RoleDriver, true},
		{"driver watches own profile", subscribeFrame{Collection: "profiles", ProfileID: 9}, 9, entity.RoleDriver, true},
		{"driver cannot watch another profile", subscribeFrame{Collection: "profiles", ProfileID: 2}, 9, entity.RoleDriver, false},
		{"owner watches anything", subscribeFrame{Collection: "orders", OrderID: 42}, 3, entity.RoleOwner, true},
		{"unknown role sees nothing", subscribeFrame{Collection: "orders", OrderID: 42}, 7, "ghost", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, h.allowed(tc.frame, tc.userID, tc.role))
		})
	}
}
