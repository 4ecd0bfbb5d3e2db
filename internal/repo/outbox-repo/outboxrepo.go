package outboxrepo

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/bookingledger/internal/domain"
	"github.com/GlebRadaev/bookingledger/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Enqueue stores the events. Called inside the booking transaction, so the
// events exist exactly when the transition committed.
func (r *Repository) Enqueue(ctx context.Context, events ...domain.OutboxEvent) error {
	query := `
		INSERT INTO outbox_events (id, kind, payload, status, attempts, created_at)
		VALUES ($1, $2, $3, $4, 0, $5)
	`
	for _, e := range events {
		if _, err := r.db.Exec(ctx, query, e.ID, string(e.Kind), e.Payload, e.Status, e.CreatedAt); err != nil {
			zap.L().Error("can't enqueue outbox event", zap.String("event_id", e.ID), zap.Error(err))
			return err
		}
	}
	return nil
}

func (r *Repository) FindPending(ctx context.Context, limit int) ([]domain.OutboxEvent, error) {
	query := `
		SELECT id, kind, payload, status, attempts, COALESCE(last_error, ''), created_at
		FROM outbox_events
		WHERE status = 'pending'
		ORDER BY created_at
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't fetch pending outbox events", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var events []domain.OutboxEvent
	for rows.Next() {
		var (
			e    domain.OutboxEvent
			kind string
		)
		if err := rows.Scan(&e.ID, &kind, &e.Payload, &e.Status, &e.Attempts, &e.LastError, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Kind = domain.EventKind(kind)
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *Repository) MarkDone(ctx context.Context, id string, at time.Time) error {
	query := `UPDATE outbox_events SET status = 'done', processed_at = $2 WHERE id = $1 AND status = 'pending'`
	if _, err := r.db.Exec(ctx, query, id, at); err != nil {
		zap.L().Error("can't mark outbox event done", zap.String("event_id", id), zap.Error(err))
		return err
	}
	return nil
}

// MarkFailed counts a failed attempt. The event stays pending until it has
// failed maxAttempts times.
func (r *Repository) MarkFailed(ctx context.Context, id, reason string, maxAttempts int) error {
	query := `
		UPDATE outbox_events
		SET attempts = attempts + 1,
			last_error = $2,
			status = CASE WHEN attempts + 1 >= $3 THEN 'failed' ELSE 'pending' END
		WHERE id = $1 AND status = 'pending'
	`
	if _, err := r.db.Exec(ctx, query, id, reason, maxAttempts); err != nil {
		zap.L().Error("can't mark outbox event failed", zap.String("event_id", id), zap.Error(err))
		return err
	}
	return nil
}
