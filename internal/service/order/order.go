package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"garmentflow/internal/entities"
	"garmentflow/internal/service/product"
)

type Service struct {
	repository     Repository
	productService ProductService
	outbox         Outbox
	txManager      TxManager
}

func New(repository Repository, productService ProductService, outbox Outbox, txManager TxManager) *Service {
	return &Service{
		repository:     repository,
		productService: productService,
		outbox:         outbox,
		txManager:      txManager,
	}
}

func (s *Service) CreateOrder(ctx context.Context, actor entities.Actor, create entities.OrderCreate) (*entities.Order, error) {
	if err := authorizeCreate(actor); err != nil {
		return nil, err
	}
	if err := validateOrderCreate(create); err != nil {
		return nil, err
	}

	var created *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		p, err := s.productService.GetProduct(ctx, create.ProductID)
		if err != nil {
			if errors.Is(err, product.ErrProductNotFound) {
				return fmt.Errorf("%w: %s", ErrProductNotFound, create.ProductID)
			}
			return fmt.Errorf("get product: %w", err)
		}

		if err := validateAgainstProduct(create, p); err != nil {
			return err
		}

		order := entities.Order{
			BuyerID:         actor.ID,
			BuyerEmail:      actor.Email,
			BuyerName:       actor.Name,
			ProductID:       p.ID,
			ProductTitle:    p.Title,
			ProductCategory: p.Category,
			ManagerID:       p.ManagerID,
			UnitPrice:       p.Price,
			Quantity:        create.Quantity,
			TotalPrice:      p.Price.Mul(decimal.NewFromInt(create.Quantity)),
			DeliveryAddress: create.DeliveryAddress,
			ContactNumber:   create.ContactNumber,
			Notes:           create.Notes,
			PaymentMethod:   create.PaymentMethod,
			PaymentStatus:   entities.PaymentPending,
			Status:          entities.OrderPending,
		}

		created, err = s.repository.Create(ctx, order)
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		return s.emit(ctx, entities.EventOrderCreated, created, nil)
	})
	if err != nil {
		return nil, err
	}

	created.Tracking = []entities.TrackingEvent{}
	return created, nil
}

func (s *Service) GetOrder(ctx context.Context, actor entities.Actor, id string) (*entities.Order, error) {
	if !isValidOrderID(id) {
		return nil, fmt.Errorf("%w: order id is required", ErrValidation)
	}

	order, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	if err := authorizeRead(actor, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *Service) ListOrders(ctx context.Context, actor entities.Actor, filter entities.OrderFilter) ([]entities.Order, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, *filter.Status)
	}

	scoped, err := scopeFilter(actor, filter)
	if err != nil {
		return nil, err
	}

	orders, err := s.repository.List(ctx, scoped)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (s *Service) ChangeStatus(
	ctx context.Context,
	actor entities.Actor,
	id string,
	target entities.OrderStatus,
) (*entities.Order, error) {
	if !isValidOrderID(id) {
		return nil, fmt.Errorf("%w: order id is required", ErrValidation)
	}
	if !target.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, target)
	}
	if actor.Role == entities.RoleBuyer {
		return nil, fmt.Errorf("%w: buyers cannot change order status", ErrForbidden)
	}

	var updated *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByIDForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("lock order: %w", err)
		}

		if err := authorizeManage(actor, current); err != nil {
			return err
		}
		if err := checkTransition(actor.Role, current.Status, target); err != nil {
			return err
		}

		// approvedAt выставляется один раз и дальше не меняется
		var approvedAt *time.Time
		if target == entities.OrderApproved && current.ApprovedAt == nil {
			now := time.Now().UTC()
			approvedAt = &now
		}

		updated, err = s.repository.UpdateStatus(ctx, id, current.Status, target, approvedAt)
		if err != nil {
			return fmt.Errorf("update order status: %w", err)
		}
		updated.Tracking = current.Tracking

		return s.emit(ctx, entities.EventOrderStatusChanged, updated, nil)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Service) CancelOrder(ctx context.Context, actor entities.Actor, id string) error {
	if !isValidOrderID(id) {
		return fmt.Errorf("%w: order id is required", ErrValidation)
	}
	if actor.Role == entities.RoleManager {
		return fmt.Errorf("%w: managers cannot cancel orders", ErrForbidden)
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByIDForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("lock order: %w", err)
		}

		if err := authorizeCancel(actor, current); err != nil {
			return err
		}
		if current.Status != entities.OrderPending {
			return fmt.Errorf("%w: only pending orders can be cancelled, order is %s",
				ErrInvalidTransition, current.Status)
		}
		if current.PaymentStatus == entities.PaymentPaid {
			return fmt.Errorf("%w: order %s is already paid", ErrInvalidTransition, current.ID)
		}

		if err := s.repository.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete order: %w", err)
		}

		return s.emit(ctx, entities.EventOrderCancelled, current, nil)
	})
}

func (s *Service) AppendTracking(
	ctx context.Context,
	actor entities.Actor,
	id string,
	tracking entities.TrackingCreate,
) (*entities.TrackingEvent, error) {
	if !isValidOrderID(id) {
		return nil, fmt.Errorf("%w: order id is required", ErrValidation)
	}
	if actor.Role == entities.RoleBuyer {
		return nil, fmt.Errorf("%w: buyers cannot append tracking", ErrForbidden)
	}
	if err := validateTrackingCreate(tracking); err != nil {
		return nil, err
	}

	tracking.Status = entities.NormalizeTrackingStage(tracking.Status)

	var appended *entities.TrackingEvent
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByIDForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("lock order: %w", err)
		}

		if err := authorizeManage(actor, current); err != nil {
			return err
		}
		if !acceptsTracking(current.Status) {
			return fmt.Errorf("%w: tracking is closed for %s orders", ErrInvalidTransition, current.Status)
		}

		appended, err = s.repository.AppendTracking(ctx, id, tracking)
		if err != nil {
			return fmt.Errorf("append tracking: %w", err)
		}

		return s.emit(ctx, entities.EventOrderTrackingAppended, current, appended)
	})
	if err != nil {
		return nil, err
	}
	return appended, nil
}

func (s *Service) GetTracking(ctx context.Context, actor entities.Actor, id string) ([]entities.TrackingEvent, error) {
	order, err := s.GetOrder(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	return order.Tracking, nil
}

func (s *Service) emit(ctx context.Context, eventType entities.OrderEventType, order *entities.Order, tracking *entities.TrackingEvent) error {
	event := entities.OrderEvent{
		Type:          eventType,
		OrderID:       order.ID,
		BuyerID:       order.BuyerID,
		ManagerID:     order.ManagerID,
		Status:        order.Status,
		PaymentStatus: order.PaymentStatus,
		Tracking:      tracking,
		OccurredAt:    time.Now().UTC(),
	}

	if err := s.outbox.Add(ctx, event); err != nil {
		return fmt.Errorf("add %s event: %w", eventType, err)
	}
	return nil
}
