package converters

import (
	"garmentflow/internal/entities"
	"garmentflow/internal/generated/dto"
)

func OrderToDTO(o *entities.Order) dto.Order {
	result := dto.Order{
		Id:              o.ID,
		BuyerId:         o.BuyerID,
		BuyerEmail:      o.BuyerEmail,
		BuyerName:       o.BuyerName,
		ProductId:       o.ProductID,
		ProductTitle:    o.ProductTitle,
		ProductCategory: o.ProductCategory,
		ManagerId:       o.ManagerID,
		UnitPrice:       o.UnitPrice.StringFixed(2),
		Quantity:        o.Quantity,
		TotalPrice:      o.TotalPrice.StringFixed(2),
		DeliveryAddress: o.DeliveryAddress,
		ContactNumber:   o.ContactNumber,
		Notes:           o.Notes,
		PaymentMethod:   o.PaymentMethod.String(),
		PaymentStatus:   o.PaymentStatus.String(),
		Status:          dto.OrderStatus(o.Status),
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
		ApprovedAt:      o.ApprovedAt,
		Tracking:        TrackingListToDTO(o.Tracking),
	}

	// метка последнего события живет отдельно от статуса заказа
	if latest := o.LatestTracking(); latest != nil {
		current := TrackingToDTO(*latest)
		result.CurrentTracking = &current
	}
	return result
}

func OrdersToDTO(orders []entities.Order) []dto.Order {
	result := make([]dto.Order, 0, len(orders))
	for i := range orders {
		result = append(result, OrderToDTO(&orders[i]))
	}
	return result
}

func TrackingToDTO(t entities.TrackingEvent) dto.TrackingEvent {
	return dto.TrackingEvent{
		Id:        t.ID,
		Status:    t.Status,
		Location:  t.Location,
		Note:      t.Note,
		CreatedAt: t.CreatedAt,
	}
}

func TrackingListToDTO(events []entities.TrackingEvent) []dto.TrackingEvent {
	result := make([]dto.TrackingEvent, 0, len(events))
	for _, e := range events {
		result = append(result, TrackingToDTO(e))
	}
	return result
}

func ProductToDTO(p *entities.Product) dto.Product {
	methods := make([]string, 0, len(p.PaymentMethods))
	for _, m := range p.PaymentMethods {
		methods = append(methods, m.String())
	}

	images := p.Images
	if images == nil {
		images = []string{}
	}

	return dto.Product{
		Id:                   p.ID,
		ManagerId:            p.ManagerID,
		Title:                p.Title,
		Description:          p.Description,
		Category:             p.Category,
		Price:                p.Price.StringFixed(2),
		MinimumOrderQuantity: p.MinimumOrderQuantity,
		AvailableQuantity:    p.AvailableQuantity,
		PaymentMethods:       methods,
		Images:               images,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}

func ProductsToDTO(products []entities.Product) []dto.Product {
	result := make([]dto.Product, 0, len(products))
	for i := range products {
		result = append(result, ProductToDTO(&products[i]))
	}
	return result
}

func PaymentMethodsFromDTO(methods []string) []entities.PaymentMethod {
	result := make([]entities.PaymentMethod, 0, len(methods))
	for _, m := range methods {
		result = append(result, entities.PaymentMethod(m))
	}
	return result
}
