package realtime

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSubscribeReceivesMatchingEvents(t *testing.T) {
	h := NewHub()

	var got []Event
	unsub := h.Subscribe(CollectionOrders, Filter{CustomerID: 1}, func(e Event) {
		got = append(got, e)
	})
	defer unsub()

	h.Publish(Event{Collection: CollectionOrders, Kind: KindInsert, OrderID: 10, CustomerID: 1})
	h.Publish(Event{Collection: CollectionOrders, Kind: KindUpdate, OrderID: 11, CustomerID: 2})
	h.Publish(Event{Collection: CollectionProfiles, Kind: KindUpdate, CustomerID: 1})

	require.Len(t, got, 1)
	require.Equal(t, uint(10), got[0].OrderID)
}

func TestUnassignedOnlyFilter(t *testing.T) {
	h := NewHub()

	var got []Event
	unsub := h.Subscribe(CollectionOrders, Filter{UnassignedOnly: true}, func(e Event) {
		got = append(got, e)
	})
	defer unsub()

	h.Publish(Event{Collection: CollectionOrders, OrderID: 1, DriverID: 0})
	h.Publish(Event{Collection: CollectionOrders, OrderID: 2, DriverID: 9})

	require.Len(t, got, 1)
	require.Equal(t, uint(1), got[0].OrderID)
}

func TestUnsubscribeStopsDeliveryAndIsIdempotent(t *testing.T) {
	h := NewHub()

	n := 0
	unsub := h.Subscribe(CollectionOrders, Filter{}, func(Event) { n++ })

	h.Publish(Event{Collection: CollectionOrders, OrderID: 1})
	require.Equal(t, 1, n)

	unsub()
	unsub() // second call is a no-op
	h.Publish(Event{Collection: CollectionOrders, OrderID: 2})
	require.Equal(t, 1, n)
	require.Zero(t, h.SubscriberCount(CollectionOrders))
}

func TestUnsubscribeFromWithinCallback(t *testing.T) {
	h := NewHub()

	var unsub Unsubscribe
	n := 0
	unsub = h.Subscribe(CollectionOrders, Filter{}, func(Event) {
		n++
		unsub()
	})

	h.Publish(Event{Collection: CollectionOrders, OrderID: 1})
	h.Publish(Event{Collection: CollectionOrders, OrderID: 2})
	require.Equal(t, 1, n)
}
