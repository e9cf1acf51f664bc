package product

import (
	"fmt"

	"github.com/shopspring/decimal"

	"garmentflow/internal/entities"
)

func ToDomain(p *ProductDB) (*entities.Product, error) {
	if p == nil {
		return nil, nil
	}

	price, err := decimal.NewFromString(p.Price)
	if err != nil {
		return nil, fmt.Errorf("parse price %q: %w", p.Price, err)
	}

	methods := make([]entities.PaymentMethod, len(p.PaymentMethods))
	for i, m := range p.PaymentMethods {
		methods[i] = entities.PaymentMethod(m)
	}

	images := p.Images
	if images == nil {
		images = []string{}
	}

	return &entities.Product{
		ID:                   p.ID,
		ManagerID:            p.ManagerID,
		Title:                p.Title,
		Description:          p.Description,
		Category:             p.Category,
		Price:                price,
		MinimumOrderQuantity: p.MinimumOrderQuantity,
		AvailableQuantity:    p.AvailableQuantity,
		PaymentMethods:       methods,
		Images:               images,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}, nil
}

func ToDomainList(productsDB []ProductDB) ([]entities.Product, error) {
	result := make([]entities.Product, 0, len(productsDB))
	for i := range productsDB {
		p, err := ToDomain(&productsDB[i])
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	return result, nil
}

func paymentMethodsToDB(methods []entities.PaymentMethod) []string {
	result := make([]string, len(methods))
	for i, m := range methods {
		result[i] = m.String()
	}
	return result
}
