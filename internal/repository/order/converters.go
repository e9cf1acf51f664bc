package order

import (
	"fmt"

	"github.com/shopspring/decimal"

	"garmentflow/internal/entities"
)

func ToDomain(o *OrderDB) (*entities.Order, error) {
	if o == nil {
		return nil, nil
	}

	unitPrice, err := decimal.NewFromString(o.UnitPrice)
	if err != nil {
		return nil, fmt.Errorf("parse unit price %q: %w", o.UnitPrice, err)
	}
	totalPrice, err := decimal.NewFromString(o.TotalPrice)
	if err != nil {
		return nil, fmt.Errorf("parse total price %q: %w", o.TotalPrice, err)
	}

	return &entities.Order{
		ID:              o.ID,
		BuyerID:         o.BuyerID,
		BuyerEmail:      o.BuyerEmail,
		BuyerName:       o.BuyerName,
		ProductID:       o.ProductID,
		ProductTitle:    o.ProductTitle,
		ProductCategory: o.ProductCategory,
		ManagerID:       o.ManagerID,
		UnitPrice:       unitPrice,
		Quantity:        o.Quantity,
		TotalPrice:      totalPrice,
		DeliveryAddress: o.DeliveryAddress,
		ContactNumber:   o.ContactNumber,
		Notes:           o.Notes,
		PaymentMethod:   entities.PaymentMethod(o.PaymentMethod),
		PaymentStatus:   entities.PaymentStatus(o.PaymentStatus),
		Status:          entities.OrderStatus(o.Status),
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
		ApprovedAt:      o.ApprovedAt,
		Tracking:        []entities.TrackingEvent{},
	}, nil
}

func ToDomainList(ordersDB []OrderDB) ([]entities.Order, error) {
	result := make([]entities.Order, 0, len(ordersDB))
	for i := range ordersDB {
		o, err := ToDomain(&ordersDB[i])
		if err != nil {
			return nil, err
		}
		result = append(result, *o)
	}
	return result, nil
}

func TrackingToDomain(t *TrackingDB) entities.TrackingEvent {
	return entities.TrackingEvent{
		ID:        t.ID,
		OrderID:   t.OrderID,
		Status:    t.Status,
		Location:  t.Location,
		Note:      t.Note,
		CreatedAt: t.CreatedAt,
	}
}
