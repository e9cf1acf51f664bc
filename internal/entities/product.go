package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID                   string
	ManagerID            string
	Title                string
	Description          string
	Category             string
	Price                decimal.Decimal
	MinimumOrderQuantity int64
	AvailableQuantity    int64
	PaymentMethods       []PaymentMethod
	Images               []string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (p *Product) AcceptsPaymentMethod(method PaymentMethod) bool {
	for _, m := range p.PaymentMethods {
		if m == method {
			return true
		}
	}
	return false
}

type ProductModify struct {
	ID                   *string
	ManagerID            *string
	Title                *string
	Description          *string
	Category             *string
	Price                *decimal.Decimal
	MinimumOrderQuantity *int64
	AvailableQuantity    *int64
	PaymentMethods       []PaymentMethod
	Images               []string
}

type ProductFilter struct {
	Category  *string
	ManagerID *string
}
