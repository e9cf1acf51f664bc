package order

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"garmentflow/internal/entities"
)

const (
	maxAddressLen  = 512
	maxNotesLen    = 2048
	maxLocationLen = 256
	maxLabelLen    = 128
)

func isValidOrderID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func isValidContact(contact string) bool {
	contact = strings.TrimSpace(contact)
	if len(contact) < 5 || len(contact) > 20 {
		return false
	}

	for i, r := range contact {
		switch {
		case r >= '0' && r <= '9':
		case r == '+' && i == 0:
		case r == ' ' || r == '-' || r == '(' || r == ')':
		default:
			return false
		}
	}
	return true
}

func validateOrderCreate(create entities.OrderCreate) error {
	if !isValidOrderID(create.ProductID) {
		return fmt.Errorf("%w: product id is required", ErrValidation)
	}
	if create.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", ErrValidation)
	}

	address := strings.TrimSpace(create.DeliveryAddress)
	if address == "" || utf8.RuneCountInString(address) > maxAddressLen {
		return fmt.Errorf("%w: invalid delivery address", ErrValidation)
	}
	if !isValidContact(create.ContactNumber) {
		return fmt.Errorf("%w: invalid contact number", ErrValidation)
	}
	if utf8.RuneCountInString(create.Notes) > maxNotesLen {
		return fmt.Errorf("%w: notes too long", ErrValidation)
	}
	if !create.PaymentMethod.IsValid() {
		return fmt.Errorf("%w: invalid payment method", ErrValidation)
	}
	return nil
}

// validateAgainstProduct проверяет заказ против текущего состояния товара.
func validateAgainstProduct(create entities.OrderCreate, product *entities.Product) error {
	if create.Quantity < product.MinimumOrderQuantity {
		return fmt.Errorf("%w: quantity %d is below minimum order quantity %d",
			ErrValidation, create.Quantity, product.MinimumOrderQuantity)
	}
	if create.Quantity > product.AvailableQuantity {
		return fmt.Errorf("%w: quantity %d exceeds available quantity %d",
			ErrValidation, create.Quantity, product.AvailableQuantity)
	}
	if len(product.PaymentMethods) > 0 && !product.AcceptsPaymentMethod(create.PaymentMethod) {
		return fmt.Errorf("%w: payment method %q is not offered for this product",
			ErrValidation, create.PaymentMethod)
	}
	return nil
}

func validateTrackingCreate(tracking entities.TrackingCreate) error {
	label := strings.TrimSpace(tracking.Status)
	if label == "" || utf8.RuneCountInString(label) > maxLabelLen {
		return fmt.Errorf("%w: tracking status is required", ErrValidation)
	}

	location := strings.TrimSpace(tracking.Location)
	if location == "" || utf8.RuneCountInString(location) > maxLocationLen {
		return fmt.Errorf("%w: tracking location is required", ErrValidation)
	}
	if utf8.RuneCountInString(tracking.Note) > maxNotesLen {
		return fmt.Errorf("%w: note too long", ErrValidation)
	}
	return nil
}
