package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"garmentflow/internal/entities"
	"garmentflow/internal/repository"
	"garmentflow/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id, buyer_id, buyer_email, buyer_name, product_id, product_title, product_category,
	manager_id, unit_price::text, quantity, total_price::text, delivery_address, contact_number, notes,
	payment_method, payment_status, status, created_at, updated_at, approved_at`

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

func scanOrder(row scanner) (*OrderDB, error) {
	var o OrderDB
	err := row.Scan(
		&o.ID,
		&o.BuyerID,
		&o.BuyerEmail,
		&o.BuyerName,
		&o.ProductID,
		&o.ProductTitle,
		&o.ProductCategory,
		&o.ManagerID,
		&o.UnitPrice,
		&o.Quantity,
		&o.TotalPrice,
		&o.DeliveryAddress,
		&o.ContactNumber,
		&o.Notes,
		&o.PaymentMethod,
		&o.PaymentStatus,
		&o.Status,
		&o.CreatedAt,
		&o.UpdatedAt,
		&o.ApprovedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *Repository) Create(ctx context.Context, o entities.Order) (*entities.Order, error) {
	query := `INSERT INTO orders (id, buyer_id, buyer_email, buyer_name, product_id, product_title,
			product_category, manager_id, unit_price, quantity, total_price, delivery_address,
			contact_number, notes, payment_method, payment_status, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9::numeric, $10, $11::numeric, $12, $13, $14, $15, $16, $17)
		RETURNING ` + orderColumns

	orderDB, err := scanOrder(r.querier.QueryRow(
		ctx,
		query,
		uuid.NewString(),
		o.BuyerID,
		o.BuyerEmail,
		o.BuyerName,
		o.ProductID,
		o.ProductTitle,
		o.ProductCategory,
		o.ManagerID,
		o.UnitPrice.String(),
		o.Quantity,
		o.TotalPrice.String(),
		o.DeliveryAddress,
		o.ContactNumber,
		o.Notes,
		o.PaymentMethod.String(),
		o.PaymentStatus.String(),
		o.Status.String(),
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, order.ErrProductNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation) {
			return nil, fmt.Errorf("%w: %w", order.ErrValidation, err)
		}
		return nil, repository.Unexpected("order repository create", err)
	}

	return ToDomain(orderDB)
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Order, error) {
	return r.get(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
}

// GetByIDForUpdate блокирует строку заказа до конца транзакции.
// Конкурирующий писатель ждет и читает уже обновленный статус.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id string) (*entities.Order, error) {
	return r.get(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1 FOR UPDATE`, id)
}

func (r *Repository) get(ctx context.Context, query, id string) (*entities.Order, error) {
	orderDB, err := scanOrder(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, repository.Unexpected("order repository get", err)
	}

	o, err := ToDomain(orderDB)
	if err != nil {
		return nil, err
	}

	tracking, err := r.trackingByOrders(ctx, []string{o.ID})
	if err != nil {
		return nil, err
	}
	if history, ok := tracking[o.ID]; ok {
		o.Tracking = history
	}

	return o, nil
}

func (r *Repository) List(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	builder := qb.
		Select(orderColumns).
		From("orders").
		OrderBy("created_at DESC", "id")

	if filter.BuyerID != nil {
		builder = builder.Where(sq.Eq{"buyer_id": *filter.BuyerID})
	}
	if filter.ManagerID != nil {
		builder = builder.Where(sq.Eq{"manager_id": *filter.ManagerID})
	}
	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, repository.Unexpected("order repository list", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, repository.Unexpected("order repository list", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 16)
	for rows.Next() {
		orderDB, err := scanOrder(rows)
		if err != nil {
			return nil, repository.Unexpected("order repository list", err)
		}
		orderModels = append(orderModels, *orderDB)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.Unexpected("order repository list", err)
	}

	orders, err := ToDomainList(orderModels)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	ids := make([]string, len(orders))
	for i := range orders {
		ids[i] = orders[i].ID
	}

	tracking, err := r.trackingByOrders(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if history, ok := tracking[orders[i].ID]; ok {
			orders[i].Tracking = history
		}
	}

	return orders, nil
}

// UpdateStatus - compare-and-set: строка обновится, только если статус
// все еще равен from. approvedAt пишется один раз.
func (r *Repository) UpdateStatus(
	ctx context.Context,
	id string,
	from, to entities.OrderStatus,
	approvedAt *time.Time,
) (*entities.Order, error) {
	query := `UPDATE orders
		SET status = $3,
			approved_at = COALESCE(approved_at, $4),
			updated_at = NOW()
		WHERE id = $1 AND status = $2
		RETURNING ` + orderColumns

	orderDB, err := scanOrder(r.querier.QueryRow(ctx, query, id, from.String(), to.String(), approvedAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: order %s is no longer %s", order.ErrInvalidTransition, id, from)
		}
		return nil, repository.Unexpected("order repository update status", err)
	}

	return ToDomain(orderDB)
}

func (r *Repository) MarkPaid(ctx context.Context, id string) (*entities.Order, error) {
	query := `UPDATE orders
		SET payment_status = $2,
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + orderColumns

	orderDB, err := scanOrder(r.querier.QueryRow(ctx, query, id, entities.PaymentPaid.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, repository.Unexpected("order repository mark paid", err)
	}

	return ToDomain(orderDB)
}

// Delete удаляет заказ, история трекинга уходит каскадом.
func (r *Repository) Delete(ctx context.Context, id string) error {
	tag, err := r.querier.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return fmt.Errorf("%w: order %s has a payment confirmation", order.ErrInvalidTransition, id)
		}
		return repository.Unexpected("order repository delete", err)
	}
	if tag.RowsAffected() == 0 {
		return order.ErrOrderNotFound
	}
	return nil
}

func (r *Repository) AppendTracking(ctx context.Context, orderID string, tracking entities.TrackingCreate) (*entities.TrackingEvent, error) {
	query := `INSERT INTO order_tracking (order_id, status, location, note)
		VALUES ($1, $2, $3, $4)
		RETURNING id, order_id, status, location, note, created_at`

	var t TrackingDB
	err := r.querier.QueryRow(ctx, query, orderID, tracking.Status, tracking.Location, tracking.Note).
		Scan(&t.ID, &t.OrderID, &t.Status, &t.Location, &t.Note, &t.CreatedAt)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, order.ErrOrderNotFound
		}
		return nil, repository.Unexpected("order repository append tracking", err)
	}

	event := TrackingToDomain(&t)
	return &event, nil
}

// trackingByOrders возвращает историю в порядке добавления, сгруппированную по заказу.
func (r *Repository) trackingByOrders(ctx context.Context, orderIDs []string) (map[string][]entities.TrackingEvent, error) {
	query := `SELECT id, order_id, status, location, note, created_at
		FROM order_tracking
		WHERE order_id = ANY($1)
		ORDER BY order_id, id`

	rows, err := r.querier.Query(ctx, query, orderIDs)
	if err != nil {
		return nil, repository.Unexpected("order repository tracking", err)
	}
	defer rows.Close()

	result := make(map[string][]entities.TrackingEvent, len(orderIDs))
	for rows.Next() {
		var t TrackingDB
		if err := rows.Scan(&t.ID, &t.OrderID, &t.Status, &t.Location, &t.Note, &t.CreatedAt); err != nil {
			return nil, repository.Unexpected("order repository tracking", err)
		}
		result[t.OrderID] = append(result[t.OrderID], TrackingToDomain(&t))
	}
	if err := rows.Err(); err != nil {
		return nil, repository.Unexpected("order repository tracking", err)
	}

	return result, nil
}
