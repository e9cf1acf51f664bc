package product

import "time"

type ProductDB struct {
	ID                   string
	ManagerID            string
	Title                string
	Description          string
	Category             string
	Price                string
	MinimumOrderQuantity int64
	AvailableQuantity    int64
	PaymentMethods       []string
	Images               []string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
