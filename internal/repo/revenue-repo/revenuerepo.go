package revenuerepo

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
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

func (r *Repository) CreateRevenue(ctx context.Context, rev *domain.PlatformRevenue) error {
	query := `
		INSERT INTO platform_revenue (id, type, amount, user_id, booking_id, category, created_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), $7)
	`
	_, err := r.db.Exec(ctx, query, rev.ID, string(rev.Type), rev.Amount, rev.UserID, rev.BookingID, rev.Category, rev.CreatedAt)
	if err != nil {
		zap.L().Error("can't save platform revenue", zap.String("revenue_id", rev.ID), zap.Error(err))
		return err
	}
	return nil
}

// SumByType totals revenue recorded in [from, to).
func (r *Repository) SumByType(ctx context.Context, from, to time.Time) (map[domain.TransactionType]decimal.Decimal, error) {
	query := `
		SELECT type, SUM(amount)
		FROM platform_revenue
		WHERE created_at >= $1 AND created_at < $2
		GROUP BY type
	`
	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		zap.L().Error("can't sum platform revenue", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	sums := make(map[domain.TransactionType]decimal.Decimal)
	for rows.Next() {
		var (
			revType string
			amount  decimal.Decimal
		)
		if err := rows.Scan(&revType, &amount); err != nil {
			return nil, err
		}
		sums[domain.TransactionType(revType)] = amount
	}
	return sums, rows.Err()
}
