package product

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"garmentflow/internal/entities"
	"garmentflow/internal/repository"
	"garmentflow/internal/service/product"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const productColumns = `id, manager_id, title, description, category, price::text,
	minimum_order_quantity, available_quantity, payment_methods, images, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row scanner) (*ProductDB, error) {
	var p ProductDB
	err := row.Scan(
		&p.ID,
		&p.ManagerID,
		&p.Title,
		&p.Description,
		&p.Category,
		&p.Price,
		&p.MinimumOrderQuantity,
		&p.AvailableQuantity,
		&p.PaymentMethods,
		&p.Images,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Create(ctx context.Context, productModify entities.ProductModify) (*entities.Product, error) {
	description := ""
	if productModify.Description != nil {
		description = *productModify.Description
	}
	images := productModify.Images
	if images == nil {
		images = []string{}
	}

	query := `INSERT INTO products (id, manager_id, title, description, category, price,
			minimum_order_quantity, available_quantity, payment_methods, images)
		VALUES ($1, $2, $3, $4, $5, $6::numeric, $7, $8, $9, $10)
		RETURNING ` + productColumns

	productDB, err := scanProduct(r.querier.QueryRow(
		ctx,
		query,
		uuid.NewString(),
		*productModify.ManagerID,
		*productModify.Title,
		description,
		*productModify.Category,
		productModify.Price.String(),
		*productModify.MinimumOrderQuantity,
		*productModify.AvailableQuantity,
		paymentMethodsToDB(productModify.PaymentMethods),
		images,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation) {
			return nil, fmt.Errorf("%w: %w", product.ErrValidation, err)
		}
		return nil, repository.Unexpected("product repository create", err)
	}

	return ToDomain(productDB)
}

func (r *Repository) Update(ctx context.Context, productModify entities.ProductModify) (*entities.Product, error) {
	builder := qb.
		Update("products")

	// опционные поля
	if productModify.Title != nil {
		builder = builder.Set("title", *productModify.Title)
	}
	if productModify.Description != nil {
		builder = builder.Set("description", *productModify.Description)
	}
	if productModify.Category != nil {
		builder = builder.Set("category", *productModify.Category)
	}
	if productModify.Price != nil {
		builder = builder.Set("price", sq.Expr("?::numeric", productModify.Price.String()))
	}
	if productModify.MinimumOrderQuantity != nil {
		builder = builder.Set("minimum_order_quantity", *productModify.MinimumOrderQuantity)
	}
	if productModify.AvailableQuantity != nil {
		builder = builder.Set("available_quantity", *productModify.AvailableQuantity)
	}
	if productModify.PaymentMethods != nil {
		builder = builder.Set("payment_methods", paymentMethodsToDB(productModify.PaymentMethods))
	}
	if productModify.Images != nil {
		builder = builder.Set("images", productModify.Images)
	}

	builder = builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": *productModify.ID}).
		Suffix("RETURNING " + productColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, repository.Unexpected("product repository update", err)
	}

	productDB, err := scanProduct(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, product.ErrProductNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation) {
			return nil, fmt.Errorf("%w: %w", product.ErrValidation, err)
		}
		return nil, repository.Unexpected("product repository update", err)
	}

	return ToDomain(productDB)
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Product, error) {
	query := `SELECT ` + productColumns + `
		FROM products
		WHERE id = $1`

	productDB, err := scanProduct(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, product.ErrProductNotFound
		}
		return nil, repository.Unexpected("product repository getbyid", err)
	}

	return ToDomain(productDB)
}

func (r *Repository) List(ctx context.Context, filter entities.ProductFilter) ([]entities.Product, error) {
	builder := qb.
		Select(productColumns).
		From("products").
		OrderBy("created_at DESC", "id")

	if filter.Category != nil {
		builder = builder.Where(sq.Eq{"category": *filter.Category})
	}
	if filter.ManagerID != nil {
		builder = builder.Where(sq.Eq{"manager_id": *filter.ManagerID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, repository.Unexpected("product repository list", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, repository.Unexpected("product repository list", err)
	}
	defer rows.Close()

	productModels := make([]ProductDB, 0, 16)
	for rows.Next() {
		productDB, err := scanProduct(rows)
		if err != nil {
			return nil, repository.Unexpected("product repository list", err)
		}
		productModels = append(productModels, *productDB)
	}

	if err := rows.Err(); err != nil {
		return nil, repository.Unexpected("product repository list", err)
	}

	return ToDomainList(productModels)
}
