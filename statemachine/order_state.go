// Package statemachine defines the order status lifecycle and the
// transitions allowed between states.
package statemachine

import (
	"fmt"

	"foodie-api/models"
)

// Transition defines a valid state change.
type Transition struct {
	From models.OrderStatus
	To   models.OrderStatus
}

// validTransitions is the authoritative state machine definition. An order
// moves pending → confirmed → preparing → ready → picked-up → delivered;
// cancellation is possible until preparation finishes.
var validTransitions = []Transition{
	{From: models.StatusPending, To: models.StatusConfirmed},
	{From: models.StatusPending, To: models.StatusCancelled},
	{From: models.StatusConfirmed, To: models.StatusPreparing},
	{From: models.StatusConfirmed, To: models.StatusCancelled},
	{From: models.StatusPreparing, To: models.StatusReady},
	{From: models.StatusPreparing, To: models.StatusCancelled},
	{From: models.StatusReady, To: models.StatusPickedUp},
	{From: models.StatusPickedUp, To: models.StatusDelivered},
}

// transitionMap is a lookup built from validTransitions.
var transitionMap = func() map[Transition]bool {
	m := make(map[Transition]bool, len(validTransitions))
	for _, t := range validTransitions {
		m[t] = true
	}
	return m
}()

var allStatuses = []models.OrderStatus{
	models.StatusPending,
	models.StatusConfirmed,
	models.StatusPreparing,
	models.StatusReady,
	models.StatusPickedUp,
	models.StatusDelivered,
	models.StatusCancelled,
}

// IsValidStatus reports whether s is a known order status.
func IsValidStatus(s models.OrderStatus) bool {
	for _, known := range allStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// CanTransition checks whether an order may move from one status to
// another.
func CanTransition(from, to models.OrderStatus) error {
	if transitionMap[Transition{From: from, To: to}] {
		return nil
	}
	return fmt.Errorf("invalid transition: %s → %s is not allowed; valid transitions from %s are: %s",
		from, to, from, describeValidFrom(from))
}

// ValidTransitionsFrom returns all valid next states from a given state.
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	for _, t := range validTransitions {
		if t.From == status {
			nexts = append(nexts, t.To)
		}
	}
	return nexts
}

func describeValidFrom(status models.OrderStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}
