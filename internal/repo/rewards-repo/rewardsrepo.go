package rewardsrepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/bookingledger/internal/domain"
	"github.com/GlebRadaev/bookingledger/internal/pg"
)

const rewardsColumns = `id, user_id, role, total_points, available_points, redeemed_points, created_at, updated_at`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
	nowFn     func() time.Time
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
		nowFn:     time.Now,
	}
}

// CreateRewards inserts an empty rewards record with the default listing
// limits. Calling it for a user who already has one changes nothing.
func (r *Repository) CreateRewards(ctx context.Context, userID string, role domain.Role) (*domain.Rewards, error) {
	var rewards *domain.Rewards
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		query := `
			INSERT INTO rewards (id, user_id, role, total_points, available_points, redeemed_points, created_at, updated_at)
			VALUES ($1, $2, $3, 0, 0, 0, $4, $4)
			ON CONFLICT (user_id) DO NOTHING
		`
		if _, err := r.db.Exec(ctx, query, uuid.NewString(), userID, string(role), r.nowFn().UTC()); err != nil {
			return err
		}

		categories := make([]string, 0, len(domain.BookingTypes))
		for _, c := range domain.BookingTypes {
			categories = append(categories, string(c))
		}
		query = `
			INSERT INTO listing_limits (user_id, category, listing_limit, upgrades)
			SELECT $1, c, $2, 0 FROM unnest($3::text[]) AS c
			ON CONFLICT (user_id, category) DO NOTHING
		`
		if _, err := r.db.Exec(ctx, query, userID, domain.DefaultListingLimit, categories); err != nil {
			return err
		}

		var err error
		rewards, err = r.getRewards(ctx, userID, false)
		return err
	})
	if err != nil {
		zap.L().Error("can't create rewards", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	return rewards, nil
}

// GetRewards returns nil, nil when the user has no rewards record.
func (r *Repository) GetRewards(ctx context.Context, userID string) (*domain.Rewards, error) {
	rewards, err := r.getRewards(ctx, userID, false)
	if err != nil {
		zap.L().Error("can't get rewards", zap.String("user_id", userID), zap.Error(err))
	}
	return rewards, err
}

// GetRewardsForUpdate is GetRewards with the record locked for the surrounding transaction.
func (r *Repository) GetRewardsForUpdate(ctx context.Context, userID string) (*domain.Rewards, error) {
	rewards, err := r.getRewards(ctx, userID, true)
	if err != nil {
		zap.L().Error("can't lock rewards", zap.String("user_id", userID), zap.Error(err))
	}
	return rewards, err
}

func (r *Repository) getRewards(ctx context.Context, userID string, forUpdate bool) (*domain.Rewards, error) {
	query := `SELECT ` + rewardsColumns + ` FROM rewards WHERE user_id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var (
		rw   domain.Rewards
		role string
	)
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&rw.ID, &rw.UserID, &role, &rw.TotalPoints, &rw.AvailablePoints, &rw.RedeemedPoints, &rw.CreatedAt, &rw.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	rw.Role = domain.Role(role)

	rows, err := r.db.Query(ctx, `SELECT category, listing_limit, upgrades FROM listing_limits WHERE user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rw.ListingLimits = make(map[domain.BookingType]int, len(domain.BookingTypes))
	rw.ListingUpgrades = make(map[domain.BookingType]int, len(domain.BookingTypes))
	for rows.Next() {
		var (
			category        string
			limit, upgrades int
		)
		if err := rows.Scan(&category, &limit, &upgrades); err != nil {
			return nil, err
		}
		rw.ListingLimits[domain.BookingType(category)] = limit
		rw.ListingUpgrades[domain.BookingType(category)] = upgrades
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &rw, nil
}

func (r *Repository) UpdatePoints(ctx context.Context, rw *domain.Rewards) error {
	query := `
		UPDATE rewards
		SET total_points = $1, available_points = $2, redeemed_points = $3, updated_at = $4
		WHERE user_id = $5
	`
	_, err := r.db.Exec(ctx, query, rw.TotalPoints, rw.AvailablePoints, rw.RedeemedPoints, rw.UpdatedAt, rw.UserID)
	if err != nil {
		zap.L().Error("can't update reward points", zap.String("user_id", rw.UserID), zap.Error(err))
		return err
	}
	return nil
}

// AppendHistory records a points movement. Entries tied to a booking are
// unique per user and action; a duplicate is skipped and reported as false.
func (r *Repository) AppendHistory(ctx context.Context, h *domain.PointsHistory) (bool, error) {
	query := `
		INSERT INTO points_history (id, user_id, action, booking_id, category,
			points_earned, points_deducted, points_redeemed, created_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, $7, $8, $9)
		ON CONFLICT (user_id, booking_id, action) WHERE booking_id IS NOT NULL DO NOTHING
	`
	tag, err := r.db.Exec(ctx, query,
		h.ID, h.UserID, string(h.Action), h.BookingID, h.Category,
		h.PointsEarned, h.PointsDeducted, h.PointsRedeemed, h.CreatedAt,
	)
	if err != nil {
		zap.L().Error("can't append points history", zap.String("user_id", h.UserID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) ListHistory(ctx context.Context, userID string) ([]domain.PointsHistory, error) {
	query := `
		SELECT id, user_id, action, COALESCE(booking_id, ''), COALESCE(category, ''),
			points_earned, points_deducted, points_redeemed, created_at
		FROM points_history
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't list points history", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var history []domain.PointsHistory
	for rows.Next() {
		var (
			h      domain.PointsHistory
			action string
		)
		err := rows.Scan(&h.ID, &h.UserID, &action, &h.BookingID, &h.Category,
			&h.PointsEarned, &h.PointsDeducted, &h.PointsRedeemed, &h.CreatedAt)
		if err != nil {
			return nil, err
		}
		h.Action = domain.PointsAction(action)
		history = append(history, h)
	}
	return history, rows.Err()
}

func (r *Repository) SaveListingLimit(ctx context.Context, userID string, category domain.BookingType, limit, upgrades int) error {
	query := `
		INSERT INTO listing_limits (user_id, category, listing_limit, upgrades)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, category) DO UPDATE
		SET listing_limit = EXCLUDED.listing_limit, upgrades = EXCLUDED.upgrades
	`
	if _, err := r.db.Exec(ctx, query, userID, string(category), limit, upgrades); err != nil {
		zap.L().Error("can't save listing limit", zap.String("user_id", userID), zap.Error(err))
		return err
	}
	return nil
}
