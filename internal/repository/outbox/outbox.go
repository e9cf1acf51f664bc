package outbox

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"garmentflow/internal/entities"
	"garmentflow/internal/repository"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Add пишет событие в outbox. Вызывается внутри транзакции изменения заказа,
// поэтому событие появляется только вместе с закоммиченным изменением.
func (r *Repository) Add(ctx context.Context, event entities.OrderEvent) error {
	eventID := event.ID
	if eventID == "" {
		eventID = uuid.NewString()
	}

	payload, err := json.Marshal(FromDomain(eventID, event))
	if err != nil {
		return fmt.Errorf("marshal order event: %w", err)
	}

	_, err = r.querier.Exec(ctx,
		`INSERT INTO outbox (event_id, event_key, payload) VALUES ($1, $2, $3)`,
		eventID, event.OrderID, payload,
	)
	if err != nil {
		return repository.Unexpected("outbox repository add", err)
	}
	return nil
}

// FetchUnpublished забирает пачку неотправленных событий в порядке записи.
// SKIP LOCKED позволяет нескольким репликам разбирать outbox параллельно.
func (r *Repository) FetchUnpublished(ctx context.Context, limit int) ([]entities.OutboxMessage, error) {
	query := `SELECT id, event_id, event_key, payload, created_at
		FROM outbox
		WHERE published_at IS NULL
		ORDER BY id
		LIMIT $1
		FOR UPDATE SKIP LOCKED`

	rows, err := r.querier.Query(ctx, query, limit)
	if err != nil {
		return nil, repository.Unexpected("outbox repository fetch", err)
	}
	defer rows.Close()

	messages := make([]entities.OutboxMessage, 0, limit)
	for rows.Next() {
		var m entities.OutboxMessage
		if err := rows.Scan(&m.ID, &m.EventID, &m.Key, &m.Payload, &m.CreatedAt); err != nil {
			return nil, repository.Unexpected("outbox repository fetch", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.Unexpected("outbox repository fetch", err)
	}

	return messages, nil
}

func (r *Repository) MarkPublished(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	_, err := r.querier.Exec(ctx, `UPDATE outbox SET published_at = NOW() WHERE id = ANY($1)`, ids)
	if err != nil {
		return repository.Unexpected("outbox repository mark published", err)
	}
	return nil
}

func (r *Repository) Backlog(ctx context.Context) (int64, error) {
	var backlog int64
	err := r.querier.QueryRow(ctx, `SELECT COUNT(*) FROM outbox WHERE published_at IS NULL`).Scan(&backlog)
	if err != nil {
		return 0, repository.Unexpected("outbox repository backlog", err)
	}
	return backlog, nil
}
