package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusAdvancesForwardOnly(t *testing.T) {
	seq := []OrderStatus{
		StatusPending, StatusConfirmed, StatusPreparing, StatusReady,
		StatusPickedUp, StatusOnTheWay, StatusDelivered,
	}
	actors := []string{
		ActorOwner, ActorOwner, ActorOwner,
		ActorDriver, ActorDriver, ActorDriver,
	}

	for i := 0; i < len(seq)-1; i++ {
		require.NoError(t, CanTransition(seq[i], seq[i+1], actors[i]),
			"step %s -> %s", seq[i], seq[i+1])
		// backwards is never legal, for anyone
		for _, a := range []string{ActorOwner, ActorDriver, ActorCustomer} {
			require.Error(t, CanTransition(seq[i+1], seq[i], a))
		}
	}
}

func TestStatusSkipsRejected(t *testing.T) {
	cases := []struct {
		from, to OrderStatus
		actor    string
	}{
		{StatusPending, StatusOnTheWay, ActorDriver},
		{StatusPending, StatusPreparing, ActorOwner},
		{StatusPending, StatusDelivered, ActorDriver},
		{StatusConfirmed, StatusReady, ActorOwner},
		{StatusReady, StatusOnTheWay, ActorDriver},
		{StatusPickedUp, StatusDelivered, ActorDriver},
	}
	for _, tc := range cases {
		err := CanTransition(tc.from, tc.to, tc.actor)
		require.ErrorIs(t, err, ErrInvalidTransition, "%s -> %s", tc.from, tc.to)
	}
}

func TestWrongActorRejected(t *testing.T) {
	// kitchen steps are the owner's, not the driver's or customer's
	require.Error(t, CanTransition(StatusPending, StatusConfirmed, ActorDriver))
	require.Error(t, CanTransition(StatusPending, StatusConfirmed, ActorCustomer))
	// the claim belongs to drivers
	require.Error(t, CanTransition(StatusReady, StatusPickedUp, ActorOwner))
}

func TestCancelledReachableFromNonTerminalOnly(t *testing.T) {
	for _, s := range []OrderStatus{
		StatusPending, StatusConfirmed, StatusPreparing, StatusReady,
		StatusPickedUp, StatusOnTheWay,
	} {
		require.NoError(t, CanTransition(s, StatusCancelled, ActorOwner), "from %s", s)
	}
	require.Error(t, CanTransition(StatusDelivered, StatusCancelled, ActorOwner))
	require.Error(t, CanTransition(StatusCancelled, StatusCancelled, ActorOwner))
}

func TestTerminalStatesHaveNoSuccessors(t *testing.T) {
	require.True(t, StatusDelivered.Terminal())
	require.True(t, StatusCancelled.Terminal())
	require.Empty(t, NextStatuses(StatusDelivered))
	require.Empty(t, NextStatuses(StatusCancelled))
}

func TestCapabilityPredicate(t *testing.T) {
	driver := uint(7)

	cases := []struct {
		status  OrderStatus
		driver  *uint
		enabled bool
	}{
		{StatusReady, nil, false},
		{StatusPickedUp, &driver, true},
		{StatusOnTheWay, &driver, true},
		{StatusDelivered, &driver, false},
		{StatusPending, nil, false},
		{StatusCancelled, &driver, false},
	}
	for _, tc := range cases {
		o := &Order{Status: tc.status, DriverID: tc.driver}
		require.Equal(t, tc.enabled, o.ChatEnabled(), "chat at %s", tc.status)
		require.Equal(t, tc.enabled, o.TrackingEnabled(), "tracking at %s", tc.status)
	}

	require.True(t, (&Order{Status: StatusDelivered}).ReviewOpen())
	require.False(t, (&Order{Status: StatusOnTheWay, DriverID: &driver}).ReviewOpen())
}
