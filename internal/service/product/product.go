package product

import (
	"context"
	"fmt"
	"io"
	"strings"

	"garmentflow/internal/entities"
)

type Service struct {
	repository Repository
	imageHost  ImageHost
	txManager  TxManager
}

func New(repository Repository, imageHost ImageHost, txManager TxManager) *Service {
	return &Service{
		repository: repository,
		imageHost:  imageHost,
		txManager:  txManager,
	}
}

func (s *Service) CreateProduct(ctx context.Context, actor entities.Actor, productModify entities.ProductModify) (*entities.Product, error) {
	if err := authorizeCatalogWrite(actor); err != nil {
		return nil, err
	}

	if productModify.Title == nil ||
		productModify.Category == nil ||
		productModify.Price == nil ||
		productModify.MinimumOrderQuantity == nil ||
		productModify.AvailableQuantity == nil ||
		len(productModify.PaymentMethods) == 0 {
		return nil, fmt.Errorf("%w: missing required fields", ErrValidation)
	}
	if err := validateFields(productModify); err != nil {
		return nil, err
	}
	if err := validateQuantities(*productModify.MinimumOrderQuantity, *productModify.AvailableQuantity); err != nil {
		return nil, err
	}

	// менеджер всегда владелец своего товара, admin может завести товар на менеджера
	ownerID := actor.ID
	if actor.Role == entities.RoleAdmin && productModify.ManagerID != nil && *productModify.ManagerID != "" {
		ownerID = *productModify.ManagerID
	}
	productModify.ManagerID = &ownerID
	productModify.ID = nil

	created, err := s.repository.Create(ctx, productModify)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return created, nil
}

// UpdateProduct меняет только карточку товара. Уже созданные заказы хранят
// свой снимок цены и не пересчитываются.
func (s *Service) UpdateProduct(ctx context.Context, actor entities.Actor, id string, productModify entities.ProductModify) (*entities.Product, error) {
	if err := authorizeCatalogWrite(actor); err != nil {
		return nil, err
	}
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: product id is required", ErrValidation)
	}

	if productModify.Title == nil &&
		productModify.Description == nil &&
		productModify.Category == nil &&
		productModify.Price == nil &&
		productModify.MinimumOrderQuantity == nil &&
		productModify.AvailableQuantity == nil &&
		productModify.PaymentMethods == nil &&
		productModify.Images == nil {
		return nil, fmt.Errorf("%w: no fields to update", ErrValidation)
	}
	if err := validateFields(productModify); err != nil {
		return nil, err
	}

	var updated *entities.Product
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get product: %w", err)
		}

		if err := authorizeProductWrite(actor, current); err != nil {
			return err
		}

		moq, available := current.MinimumOrderQuantity, current.AvailableQuantity
		if productModify.MinimumOrderQuantity != nil {
			moq = *productModify.MinimumOrderQuantity
		}
		if productModify.AvailableQuantity != nil {
			available = *productModify.AvailableQuantity
		}
		if err := validateQuantities(moq, available); err != nil {
			return err
		}

		// владельца сменить нельзя
		productModify.ID = &id
		productModify.ManagerID = nil

		updated, err = s.repository.Update(ctx, productModify)
		if err != nil {
			return fmt.Errorf("update product: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Service) GetProduct(ctx context.Context, id string) (*entities.Product, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: product id is required", ErrValidation)
	}

	p, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

func (s *Service) ListProducts(ctx context.Context, filter entities.ProductFilter) ([]entities.Product, error) {
	products, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// UploadImage отдает картинку внешнему хостингу и возвращает публичный URL.
func (s *Service) UploadImage(ctx context.Context, actor entities.Actor, filename string, image io.Reader) (string, error) {
	if err := authorizeCatalogWrite(actor); err != nil {
		return "", err
	}
	if !isValidImageName(filename) {
		return "", fmt.Errorf("%w: unsupported image type %q", ErrValidation, filename)
	}

	url, err := s.imageHost.Upload(ctx, filename, image)
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}
	return url, nil
}
