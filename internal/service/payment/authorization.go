package payment

import (
	"fmt"

	"garmentflow/internal/entities"
)

func authorizeCheckout(actor entities.Actor, order *entities.Order) error {
	if !actor.IsActive() {
		return fmt.Errorf("%w: account is %s", ErrForbidden, actor.Status)
	}
	if actor.Role != entities.RoleBuyer || order.BuyerID != actor.ID {
		return fmt.Errorf("%w: only the buyer pays for order %s", ErrForbidden, order.ID)
	}
	return nil
}

func authorizeReconcile(actor entities.Actor, session *entities.CheckoutSession) error {
	if actor.Role == entities.RoleAdmin || session.BuyerID == actor.ID {
		return nil
	}
	return fmt.Errorf("%w: checkout session belongs to another buyer", ErrForbidden)
}

func checkPayable(order *entities.Order) error {
	switch {
	case order.PaymentMethod != entities.PaymentStripe:
		return fmt.Errorf("%w: order is paid by %s", ErrValidation, order.PaymentMethod)
	case order.PaymentStatus == entities.PaymentPaid:
		return fmt.Errorf("%w: already paid", ErrOrderNotPayable)
	case order.Status == entities.OrderRejected:
		return fmt.Errorf("%w: order was rejected", ErrOrderNotPayable)
	}
	return nil
}
