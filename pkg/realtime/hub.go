// Package realtime is the change-notification channel: services publish a
// notice after every committed write, pages (or their websocket bridge)
// subscribe by collection + filter and re-fetch authoritative state.
// Delivery is at-least-once; events carry ids only, never trusted payloads.
package realtime

import (
	"sync"
)

const (
	CollectionOrders       = "orders"
	CollectionProfiles     = "profiles"
	CollectionChatMessages = "chat_messages"
)

type Kind string

const (
	KindInsert Kind = "insert"
	KindUpdate Kind = "update"
)

// Event identifies what changed. Zero ids mean "not applicable".
type Event struct {
	Collection string `json:"collection"`
	Kind       Kind   `json:"kind"`
	OrderID    uint   `json:"orderId,omitempty"`
	CustomerID uint   `json:"customerId,omitempty"`
	DriverID   uint   `json:"driverId,omitempty"` // 0 while unassigned
	ProfileID  uint   `json:"profileId,omitempty"`
}

// Filter narrows a subscription. Zero fields match everything;
// UnassignedOnly additionally requires the order to have no driver yet.
type Filter struct {
	OrderID        uint
	CustomerID     uint
	DriverID       uint
	ProfileID      uint
	UnassignedOnly bool
}

func (f Filter) Matches(e Event) bool {
	if f.OrderID != 0 && f.OrderID != e.OrderID {
		return false
	}
	if f.CustomerID != 0 && f.CustomerID != e.CustomerID {
		return false
	}
	if f.DriverID != 0 && f.DriverID != e.DriverID {
		return false
	}
	if f.ProfileID != 0 && f.ProfileID != e.ProfileID {
		return false
	}
	if f.UnassignedOnly && e.DriverID != 0 {
		return false
	}
	return true
}

// Unsubscribe tears a subscription down. Callers own the handle and must
// invoke it when the consuming view goes away; calling it twice is a no-op.
type Unsubscribe func()

type subscriber struct {
	filter Filter
	fn     func(Event)
}

type Hub struct {
	mu   sync.Mutex
	next int
	subs map[string]map[int]subscriber // collection -> id -> subscriber
}

func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[int]subscriber)}
}

func (h *Hub) Subscribe(collection string, f Filter, fn func(Event)) Unsubscribe {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.next++
	id := h.next
	if h.subs[collection] == nil {
		h.subs[collection] = make(map[int]subscriber)
	}
	h.subs[collection][id] = subscriber{filter: f, fn: fn}

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs[collection], id)
			h.mu.Unlock()
		})
	}
}

// Publish fans the event out to every matching subscriber. Callbacks run
// outside the lock so a subscriber may unsubscribe from within its own
// callback.
func (h *Hub) Publish(e Event) {
	h.mu.Lock()
	var fns []func(Event)
	for _, s := range h.subs[e.Collection] {
		if s.filter.Matches(e) {
			fns = append(fns, s.fn)
		}
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn(e)
	}
}

// SubscriberCount exists for leak checks in tests and the debug endpoint.
func (h *Hub) SubscriberCount(collection string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[collection])
}
