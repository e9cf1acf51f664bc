package product

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"garmentflow/internal/entities"
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 4000
	maxCategoryLen    = 64
)

var allowedImageExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

func isValidTitle(title string) bool {
	title = strings.TrimSpace(title)
	return title != "" && utf8.RuneCountInString(title) <= maxTitleLen
}

func isValidCategory(category string) bool {
	category = strings.TrimSpace(category)
	return category != "" && utf8.RuneCountInString(category) <= maxCategoryLen
}

func isValidImageName(filename string) bool {
	return allowedImageExt[strings.ToLower(filepath.Ext(filename))]
}

func validatePaymentMethods(methods []entities.PaymentMethod) error {
	for _, m := range methods {
		if !m.IsValid() {
			return fmt.Errorf("%w: unknown payment method %q", ErrValidation, m)
		}
	}
	return nil
}

// validateFields проверяет только переданные поля.
func validateFields(modify entities.ProductModify) error {
	if modify.Title != nil && !isValidTitle(*modify.Title) {
		return fmt.Errorf("%w: invalid title", ErrValidation)
	}
	if modify.Category != nil && !isValidCategory(*modify.Category) {
		return fmt.Errorf("%w: invalid category", ErrValidation)
	}
	if modify.Description != nil && utf8.RuneCountInString(*modify.Description) > maxDescriptionLen {
		return fmt.Errorf("%w: description too long", ErrValidation)
	}
	if modify.Price != nil && !modify.Price.IsPositive() {
		return fmt.Errorf("%w: price must be positive", ErrValidation)
	}
	if modify.MinimumOrderQuantity != nil && *modify.MinimumOrderQuantity < 1 {
		return fmt.Errorf("%w: minimum order quantity must be at least 1", ErrValidation)
	}
	if modify.AvailableQuantity != nil && *modify.AvailableQuantity < 0 {
		return fmt.Errorf("%w: available quantity must not be negative", ErrValidation)
	}
	if modify.PaymentMethods != nil {
		if len(modify.PaymentMethods) == 0 {
			return fmt.Errorf("%w: at least one payment method is required", ErrValidation)
		}
		if err := validatePaymentMethods(modify.PaymentMethods); err != nil {
			return err
		}
	}
	return nil
}

func validateQuantities(moq, available int64) error {
	if moq > available {
		return fmt.Errorf("%w: minimum order quantity %d exceeds available quantity %d",
			ErrValidation, moq, available)
	}
	return nil
}
