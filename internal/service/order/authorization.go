package order

import (
	"fmt"

	"garmentflow/internal/entities"
)

func authorizeCreate(actor entities.Actor) error {
	if !actor.IsActive() {
		return fmt.Errorf("%w: account is %s", ErrForbidden, actor.Status)
	}
	if actor.Role != entities.RoleBuyer {
		return fmt.Errorf("%w: only buyers place orders", ErrForbidden)
	}
	return nil
}

func authorizeRead(actor entities.Actor, order *entities.Order) error {
	switch actor.Role {
	case entities.RoleAdmin:
		return nil
	case entities.RoleManager:
		if order.ManagerID == actor.ID {
			return nil
		}
	case entities.RoleBuyer:
		if order.BuyerID == actor.ID {
			return nil
		}
	}
	return fmt.Errorf("%w: order %s", ErrForbidden, order.ID)
}

// authorizeManage - смена статуса и трекинг: владелец товара или admin.
func authorizeManage(actor entities.Actor, order *entities.Order) error {
	if !actor.IsActive() {
		return fmt.Errorf("%w: account is %s", ErrForbidden, actor.Status)
	}

	switch actor.Role {
	case entities.RoleAdmin:
		return nil
	case entities.RoleManager:
		if order.ManagerID == actor.ID {
			return nil
		}
	}
	return fmt.Errorf("%w: order %s", ErrForbidden, order.ID)
}

func authorizeCancel(actor entities.Actor, order *entities.Order) error {
	if !actor.IsActive() {
		return fmt.Errorf("%w: account is %s", ErrForbidden, actor.Status)
	}

	switch actor.Role {
	case entities.RoleAdmin:
		return nil
	case entities.RoleBuyer:
		if order.BuyerID == actor.ID {
			return nil
		}
	}
	return fmt.Errorf("%w: order %s", ErrForbidden, order.ID)
}

// scopeFilter сужает фильтр списка до того, что актору разрешено видеть.
func scopeFilter(actor entities.Actor, filter entities.OrderFilter) (entities.OrderFilter, error) {
	switch actor.Role {
	case entities.RoleAdmin:
		return filter, nil
	case entities.RoleManager:
		if filter.ManagerID != nil && *filter.ManagerID != actor.ID {
			return filter, fmt.Errorf("%w: foreign catalog", ErrForbidden)
		}
		managerID := actor.ID
		filter.ManagerID = &managerID
		return filter, nil
	case entities.RoleBuyer:
		if filter.BuyerID != nil && *filter.BuyerID != actor.ID {
			return filter, fmt.Errorf("%w: foreign orders", ErrForbidden)
		}
		buyerID := actor.ID
		filter.BuyerID = &buyerID
		filter.ManagerID = nil
		return filter, nil
	default:
		return filter, fmt.Errorf("%w: unknown role", ErrForbidden)
	}
}
