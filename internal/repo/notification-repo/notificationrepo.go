package notificationrepo

import (
	"context"

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

// CreateNotification stores n once. A second insert with the same id is a
// no-op and reports false.
func (r *Repository) CreateNotification(ctx context.Context, n *domain.Notification) (bool, error) {
	query := `
		INSERT INTO notifications (id, user_id, kind, title, message, booking_id, read, created_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), FALSE, $7)
		ON CONFLICT (id) DO NOTHING
	`
	tag, err := r.db.Exec(ctx, query, n.ID, n.UserID, string(n.Kind), n.Title, n.Message, n.BookingID, n.CreatedAt)
	if err != nil {
		zap.L().Error("can't save notification", zap.String("notification_id", n.ID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) ListByUser(ctx context.Context, userID string, unreadOnly bool) ([]domain.Notification, error) {
	query := `
		SELECT id, user_id, kind, title, message, COALESCE(booking_id, ''), read, created_at
		FROM notifications
		WHERE user_id = $1 AND (NOT $2 OR read = FALSE)
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, userID, unreadOnly)
	if err != nil {
		zap.L().Error("can't list notifications", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		var (
			n    domain.Notification
			kind string
		)
		if err := rows.Scan(&n.ID, &n.UserID, &kind, &n.Title, &n.Message, &n.BookingID, &n.Read, &n.CreatedAt); err != nil {
			return nil, err
		}
		n.Kind = domain.NotificationKind(kind)
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

// MarkRead reports false when the notification does not exist or belongs to someone else.
func (r *Repository) MarkRead(ctx context.Context, id, userID string) (bool, error) {
	query := `UPDATE notifications SET read = TRUE WHERE id = $1 AND user_id = $2`
	tag, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		zap.L().Error("can't mark notification read", zap.String("notification_id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
