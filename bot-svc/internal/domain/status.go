package domain

import (
	"fmt"
	"strings"
)

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusAccepted   OrderStatus = "accepted"
	StatusDelivering OrderStatus = "delivering"
	StatusArrived    OrderStatus = "arrived"
	StatusCompleted  OrderStatus = "completed"
	StatusCancelled  OrderStatus = "cancelled"
)

type Actor string

const (
	ActorRestaurant Actor = "restaurant"
	ActorCourier    Actor = "courier"
	ActorCustomer   Actor = "customer"
	ActorAdmin      Actor = "admin"
)

// Transition is one allowed status change and the party allowed to make it.
type Transition struct {
	From  OrderStatus
	To    OrderStatus
	Actor Actor
}

var transitions = []Transition{
	{From: StatusPending, To: StatusAccepted, Actor: ActorRestaurant},
	{From: StatusAccepted, To: StatusDelivering, Actor: ActorCourier},
	{From: StatusDelivering, To: StatusArrived, Actor: ActorCourier},
	{From: StatusArrived, To: StatusCompleted, Actor: ActorCustomer},
	// cancellation is applied by the restaurant's administrator once a reason is given
	{From: StatusPending, To: StatusCancelled, Actor: ActorAdmin},
	{From: StatusAccepted, To: StatusCancelled, Actor: ActorAdmin},
}

type transitionKey struct {
	From  OrderStatus
	To    OrderStatus
	Actor Actor
}

var transitionSet = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool, len(transitions))
	for _, t := range transitions {
		m[transitionKey{t.From, t.To, t.Actor}] = true
	}
	return m
}()

// CanTransition reports whether actor may move an order from one status to another.
func CanTransition(from, to OrderStatus, actor Actor) error {
	if transitionSet[transitionKey{from, to, actor}] {
		return nil
	}
	return fmt.Errorf("%w: %s -> %s is not allowed for %s (valid from %s: %s)",
		ErrConflictOrStale, from, to, actor, from, describe(ValidTransitionsFrom(from)))
}

// ValidTransitionsFrom returns the statuses reachable from status.
func ValidTransitionsFrom(status OrderStatus) []OrderStatus {
	var next []OrderStatus
	seen := map[OrderStatus]bool{}
	for _, t := range transitions {
		if t.From == status && !seen[t.To] {
			next = append(next, t.To)
			seen[t.To] = true
		}
	}
	return next
}

// Predecessors returns the statuses from which actor may move an order to status.
// They form the expected set of a compare-and-set update.
func Predecessors(to OrderStatus, actor Actor) []OrderStatus {
	var from []OrderStatus
	for _, t := range transitions {
		if t.To == to && t.Actor == actor {
			from = append(from, t.From)
		}
	}
	return from
}

func (s OrderStatus) Terminal() bool {
	return len(ValidTransitionsFrom(s)) == 0
}

func (s OrderStatus) Cancellable() bool {
	return transitionSet[transitionKey{s, StatusCancelled, ActorAdmin}]
}

// Label is the customer-facing status name.
func (s OrderStatus) Label() string {
	switch s {
	case StatusPending:
		return "⏳ Waiting for the restaurant"
	case StatusAccepted:
		return "👨‍🍳 Being prepared"
	case StatusDelivering:
		return "🚴 On the way"
	case StatusArrived:
		return "📍 Courier has arrived"
	case StatusCompleted:
		return "✅ Delivered"
	case StatusCancelled:
		return "❌ Cancelled"
	}
	return string(s)
}

func describe(statuses []OrderStatus) string {
	if len(statuses) == 0 {
		return "none"
	}
	parts := make([]string, len(statuses))
	for i, s := range statuses {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}
