package product

import (
	"fmt"

	"garmentflow/internal/entities"
)

func authorizeCatalogWrite(actor entities.Actor) error {
	if !actor.IsActive() {
		return fmt.Errorf("%w: account is %s", ErrForbidden, actor.Status)
	}
	if actor.Role != entities.RoleManager && actor.Role != entities.RoleAdmin {
		return fmt.Errorf("%w: catalog is managed by managers", ErrForbidden)
	}
	return nil
}

func authorizeProductWrite(actor entities.Actor, p *entities.Product) error {
	if err := authorizeCatalogWrite(actor); err != nil {
		return err
	}
	if actor.Role == entities.RoleManager && p.ManagerID != actor.ID {
		return fmt.Errorf("%w: product %s", ErrForbidden, p.ID)
	}
	return nil
}
