package entity

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidTransition wraps every rejected state change so callers can
// classify with errors.Is.
var ErrInvalidTransition = errors.New("invalid transition")

// OrderStatus is the canonical status vocabulary, enforced end-to-end.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusPickedUp  OrderStatus = "picked_up"
	StatusOnTheWay  OrderStatus = "on_the_way"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// Actors allowed to drive transitions.
const (
	ActorOwner    = "owner"
	ActorDriver   = "driver"
	ActorCustomer = "customer"
)

func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusReady,
		StatusPickedUp, StatusOnTheWay, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Transition is one legal edge of the order state machine and the actor
// that may take it.
type Transition struct {
	From  OrderStatus
	To    OrderStatus
	Actor string
}

var transitions = []Transition{
	// kitchen side
	{StatusPending, StatusConfirmed, ActorOwner},
	{StatusConfirmed, StatusPreparing, ActorOwner},
	{StatusPreparing, StatusReady, ActorOwner},

	// ready→picked_up is the driver claim; it is also the only transition
	// that writes driver_id (enforced at the repository as a conditional
	// update, see OrderRepository.ClaimDriver)
	{StatusReady, StatusPickedUp, ActorDriver},
	{StatusPickedUp, StatusOnTheWay, ActorDriver},
	{StatusOnTheWay, StatusDelivered, ActorDriver},

	// cancellation is owner-driven and reachable from any non-terminal state
	{StatusPending, StatusCancelled, ActorOwner},
	{StatusConfirmed, StatusCancelled, ActorOwner},
	{StatusPreparing, StatusCancelled, ActorOwner},
	{StatusReady, StatusCancelled, ActorOwner},
	{StatusPickedUp, StatusCancelled, ActorOwner},
	{StatusOnTheWay, StatusCancelled, ActorOwner},
}

type transitionKey struct {
	from  OrderStatus
	to    OrderStatus
	actor string
}

var transitionSet = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool, len(transitions))
	for _, t := range transitions {
		m[transitionKey{t.From, t.To, t.Actor}] = true
	}
	return m
}()

// NextStatuses returns every status reachable from the given one,
// regardless of actor.
func NextStatuses(from OrderStatus) []OrderStatus {
	var out []OrderStatus
	seen := map[OrderStatus]bool{}
	for _, t := range transitions {
		if t.From == from && !seen[t.To] {
			out = append(out, t.To)
			seen[t.To] = true
		}
	}
	return out
}

// CanTransition reports whether the actor may move an order between the two
// statuses. The error names the valid successors so callers can surface it
// as-is.
func CanTransition(from, to OrderStatus, actor string) error {
	if transitionSet[transitionKey{from, to, actor}] {
		return nil
	}
	nexts := NextStatuses(from)
	if len(nexts) == 0 {
		return fmt.Errorf("%w: %s -> %s: %s is terminal", ErrInvalidTransition, from, to, from)
	}
	labels := make([]string, len(nexts))
	for i, n := range nexts {
		labels[i] = string(n)
	}
	return fmt.Errorf("%w: %s -> %s for %s (valid next: %s)",
		ErrInvalidTransition, from, to, actor, strings.Join(labels, ", "))
}
