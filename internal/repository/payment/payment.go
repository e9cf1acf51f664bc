package payment

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"garmentflow/internal/entities"
	"garmentflow/internal/repository"
	"garmentflow/internal/service/payment"
)

const (
	sessionColumns      = `id, order_id, buyer_id, amount::text, currency, url, status, expires_at, created_at`
	confirmationColumns = `transaction_id, session_id, order_id, amount::text, currency, paid_at`
)

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

func scanSession(row scanner) (*entities.CheckoutSession, error) {
	var s CheckoutSessionDB
	err := row.Scan(&s.ID, &s.OrderID, &s.BuyerID, &s.Amount, &s.Currency, &s.URL, &s.Status, &s.ExpiresAt, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return SessionToDomain(&s)
}

func scanConfirmation(row scanner) (*entities.PaymentConfirmation, error) {
	var c PaymentConfirmationDB
	err := row.Scan(&c.TransactionID, &c.SessionID, &c.OrderID, &c.Amount, &c.Currency, &c.PaidAt)
	if err != nil {
		return nil, err
	}
	return ConfirmationToDomain(&c)
}

func (r *Repository) CreateSession(ctx context.Context, session entities.CheckoutSession) (*entities.CheckoutSession, error) {
	query := `INSERT INTO checkout_sessions (id, order_id, buyer_id, amount, currency, url, status, expires_at)
		VALUES ($1, $2, $3, $4::numeric, $5, $6, $7, $8)
		RETURNING ` + sessionColumns

	created, err := scanSession(r.querier.QueryRow(
		ctx,
		query,
		session.ID,
		session.OrderID,
		session.BuyerID,
		session.Amount.String(),
		session.Currency,
		session.URL,
		session.Status.String(),
		session.ExpiresAt,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, payment.ErrOrderNotFound
		}
		return nil, repository.Unexpected("payment repository create session", err)
	}
	return created, nil
}

func (r *Repository) GetSession(ctx context.Context, id string) (*entities.CheckoutSession, error) {
	return r.getSession(ctx, `SELECT `+sessionColumns+` FROM checkout_sessions WHERE id = $1`, id)
}

func (r *Repository) GetSessionForUpdate(ctx context.Context, id string) (*entities.CheckoutSession, error) {
	return r.getSession(ctx, `SELECT `+sessionColumns+` FROM checkout_sessions WHERE id = $1 FOR UPDATE`, id)
}

// GetOpenSessionByOrder возвращает самую свежую открытую и не истекшую сессию заказа.
func (r *Repository) GetOpenSessionByOrder(ctx context.Context, orderID string, now time.Time) (*entities.CheckoutSession, error) {
	query := `SELECT ` + sessionColumns + `
		FROM checkout_sessions
		WHERE order_id = $1 AND status = $2 AND expires_at > $3
		ORDER BY created_at DESC
		LIMIT 1`

	session, err := scanSession(r.querier.QueryRow(ctx, query, orderID, entities.CheckoutOpen.String(), now))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payment.ErrSessionNotFound
		}
		return nil, repository.Unexpected("payment repository get open session", err)
	}
	return session, nil
}

func (r *Repository) getSession(ctx context.Context, query, id string) (*entities.CheckoutSession, error) {
	session, err := scanSession(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payment.ErrSessionNotFound
		}
		return nil, repository.Unexpected("payment repository get session", err)
	}
	return session, nil
}

func (r *Repository) CompleteSession(ctx context.Context, id string) error {
	tag, err := r.querier.Exec(ctx,
		`UPDATE checkout_sessions SET status = $2 WHERE id = $1`,
		id, entities.CheckoutCompleted.String(),
	)
	if err != nil {
		return repository.Unexpected("payment repository complete session", err)
	}
	if tag.RowsAffected() == 0 {
		return payment.ErrSessionNotFound
	}
	return nil
}

// ExpireSessions переводит просроченные открытые сессии в expired.
// Подтвержденные сессии уже completed и не затрагиваются.
func (r *Repository) ExpireSessions(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.querier.Exec(ctx,
		`UPDATE checkout_sessions SET status = $1 WHERE status = $2 AND expires_at < $3`,
		entities.CheckoutExpired.String(), entities.CheckoutOpen.String(), now,
	)
	if err != nil {
		return 0, repository.Unexpected("payment repository expire sessions", err)
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) GetConfirmationBySession(ctx context.Context, sessionID string) (*entities.PaymentConfirmation, error) {
	query := `SELECT ` + confirmationColumns + ` FROM payment_confirmations WHERE session_id = $1`

	confirmation, err := scanConfirmation(r.querier.QueryRow(ctx, query, sessionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payment.ErrConfirmationNotFound
		}
		return nil, repository.Unexpected("payment repository get confirmation", err)
	}
	return confirmation, nil
}

func (r *Repository) GetConfirmationByOrder(ctx context.Context, orderID string) (*entities.PaymentConfirmation, error) {
	query := `SELECT ` + confirmationColumns + ` FROM payment_confirmations WHERE order_id = $1`

	confirmation, err := scanConfirmation(r.querier.QueryRow(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payment.ErrConfirmationNotFound
		}
		return nil, repository.Unexpected("payment repository get confirmation", err)
	}
	return confirmation, nil
}

func (r *Repository) CreateConfirmation(ctx context.Context, c entities.PaymentConfirmation) (*entities.PaymentConfirmation, error) {
	query := `INSERT INTO payment_confirmations (transaction_id, session_id, order_id, amount, currency, paid_at)
		VALUES ($1, $2, $3, $4::numeric, $5, $6)
		RETURNING ` + confirmationColumns

	confirmation, err := scanConfirmation(r.querier.QueryRow(
		ctx,
		query,
		c.TransactionID,
		c.SessionID,
		c.OrderID,
		c.Amount.String(),
		c.Currency,
		c.PaidAt,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, payment.ErrAlreadyConfirmed
		}
		return nil, repository.Unexpected("payment repository create confirmation", err)
	}
	return confirmation, nil
}
