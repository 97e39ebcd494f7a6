package ws

import (
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zninennea/nani-plate-perfect/entity"
	"github.com/zninennea/nani-plate-perfect/pkg/realtime"
	"github.com/zninennea/nani-plate-perfect/utils"
)

// EventsHandler bridges the in-process change-notification hub to websocket
// clients. A client sends subscribe frames, the server pushes change
// notices; every subscription is torn down when the connection closes.
// OrderLoader resolves an order id to its customer and assigned driver so
// subscriptions can be scoped to orders the caller is actually party to.
type OrderLoader interface {
	Get(orderID uint) (*entity.Order, error)
}

type EventsHandler struct {
	Hub    *realtime.Hub
	Orders OrderLoader
	log    *zap.Logger
}

func NewEventsHandler(hub *realtime.Hub, orders OrderLoader, log *zap.Logger) *EventsHandler {
	return &EventsHandler{Hub: hub, Orders: orders, log: log}
}

type subscribeFrame struct {
	Collection string `json:"collection"`
	OrderID    uint   `json:"orderId"`
	CustomerID uint   `json:"customerId"`
	DriverID   uint   `json:"driverId"`
	ProfileID  uint   `json:"profileId"`
	Unassigned bool   `json:"unassigned"`
}

// allowed keeps subscriptions inside the caller's scope: customers watch
// their own orders, drivers watch their claims or the unassigned pool, the
// owner watches everything. A frame naming an order id is checked against
// the order itself, not trusted.
func (h *EventsHandler) allowed(f subscribeFrame, userID uint, role string) bool {
	switch role {
	case entity.RoleOwner:
		return true
	case entity.RoleCustomer:
		if f.OrderID != 0 {
			return h.orderInScope(f.OrderID, userID, role)
		}
		return f.CustomerID == userID
	case entity.RoleDriver:
		if f.OrderID != 0 {
			return h.orderInScope(f.OrderID, userID, role)
		}
		return f.DriverID == userID || f.Unassigned || f.ProfileID == userID
	}
	return false
}

func (h *EventsHandler) orderInScope(orderID, userID uint, role string) bool {
	o, err := h.Orders.Get(orderID)
	if err != nil {
		return false
	}
	switch role {
	case entity.RoleCustomer:
		return o.CustomerID == userID
	case entity.RoleDriver:
		return o.DriverID != nil && *o.DriverID == userID
	}
	return false
}

// GET /ws/events (auth middleware runs first)
func (h *EventsHandler) HandleWebSocket(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	role := utils.CurrentRole(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("ws upgrade failed", zap.Error(err))
		return
	}

	// events fan in from hub callbacks; the single writer below keeps
	// gorilla's one-concurrent-writer rule
	events := make(chan realtime.Event, 32)
	done := make(chan struct{})

	var mu sync.Mutex
	var unsubs []realtime.Unsubscribe
	defer func() {
		mu.Lock()
		for _, u := range unsubs {
			u()
		}
		mu.Unlock()
		conn.Close()
	}()

	go func() {
		defer close(done)
		for {
			var f subscribeFrame
			if err := conn.ReadJSON(&f); err != nil {
				return
			}
			if !h.allowed(f, userID, role) {
				h.log.Warn("ws subscription out of scope",
					zap.Uint("userId", userID), zap.String("role", role))
				continue
			}
			filter := realtime.Filter{
				OrderID:        f.OrderID,
				CustomerID:     f.CustomerID,
				DriverID:       f.DriverID,
				ProfileID:      f.ProfileID,
				UnassignedOnly: f.Unassigned,
			}
			u := h.Hub.Subscribe(f.Collection, filter, func(e realtime.Event) {
				select {
				case events <- e:
				default:
					// slow consumer; it re-fetches on the next notice anyway
				}
			})
			mu.Lock()
			unsubs = append(unsubs, u)
			mu.Unlock()
		}
	}()

	for {
		select {
		case e := <-events:
			if err := conn.WriteJSON(e); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

func orderParam(c *gin.Context) (uint, error) {
	n, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(n), nil
}
