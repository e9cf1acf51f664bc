package order

import (
	"fmt"

	"garmentflow/internal/entities"
)

// Переходы, доступные менеджеру. Admin может выставить любой статус,
// пока заказ не в терминальном состоянии.
var managerTransitions = map[entities.OrderStatus][]entities.OrderStatus{
	entities.OrderPending:  {entities.OrderApproved, entities.OrderRejected},
	entities.OrderApproved: {entities.OrderShipped},
	entities.OrderShipped:  {entities.OrderDelivered},
}

func canTransition(role entities.Role, from, to entities.OrderStatus) bool {
	if from == to || !to.IsValid() {
		return false
	}

	switch role {
	case entities.RoleAdmin:
		return !from.IsTerminal()
	case entities.RoleManager:
		for _, next := range managerTransitions[from] {
			if next == to {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func checkTransition(role entities.Role, from, to entities.OrderStatus) error {
	if !canTransition(role, from, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	return nil
}

// трекинг пишется только пока заказ в производстве или в пути
func acceptsTracking(status entities.OrderStatus) bool {
	return status == entities.OrderApproved || status == entities.OrderShipped
}
