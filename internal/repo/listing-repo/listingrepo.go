package listingrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/GlebRadaev/bookingledger/internal/domain"
	"github.com/GlebRadaev/bookingledger/internal/pg"
)

const uniqueViolation = "23505"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	query := `SELECT id, host_id, category, title, created_at FROM listings WHERE id = $1`
	var (
		l        domain.Listing
		category string
	)
	err := r.db.QueryRow(ctx, query, id).Scan(&l.ID, &l.HostID, &category, &l.Title, &l.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get listing", zap.String("listing_id", id), zap.Error(err))
		return nil, err
	}
	l.Category = domain.BookingType(category)
	return &l, nil
}

func (r *Repository) Create(ctx context.Context, l *domain.Listing) error {
	query := `INSERT INTO listings (id, host_id, category, title, created_at) VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.db.Exec(ctx, query, l.ID, l.HostID, string(l.Category), l.Title, l.CreatedAt); err != nil {
		zap.L().Error("can't save listing", zap.String("listing_id", l.ID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) CountByHostAndCategory(ctx context.Context, hostID string, category domain.BookingType) (int, error) {
	query := `SELECT COUNT(*) FROM listings WHERE host_id = $1 AND category = $2`
	var count int
	if err := r.db.QueryRow(ctx, query, hostID, string(category)).Scan(&count); err != nil {
		zap.L().Error("can't count listings", zap.String("host_id", hostID), zap.Error(err))
		return 0, err
	}
	return count, nil
}

// ReserveDates claims every date for the booking. A date already held by
// another booking fails the whole insert with ErrInvalidState.
func (r *Repository) ReserveDates(ctx context.Context, listingID, bookingID string, dates []time.Time) error {
	query := `
		INSERT INTO listing_reservations (listing_id, booking_id, reserved_date)
		SELECT $1, $2, d FROM unnest($3::date[]) AS d
	`
	_, err := r.db.Exec(ctx, query, listingID, bookingID, dates)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: listing %s is not available for the requested dates", domain.ErrInvalidState, listingID)
		}
		zap.L().Error("can't reserve listing dates", zap.String("listing_id", listingID), zap.Error(err))
		return err
	}
	return nil
}

// ReleaseDates frees the dates held by the booking and returns how many were released.
func (r *Repository) ReleaseDates(ctx context.Context, bookingID string) (int64, error) {
	query := `DELETE FROM listing_reservations WHERE booking_id = $1`
	tag, err := r.db.Exec(ctx, query, bookingID)
	if err != nil {
		zap.L().Error("can't release listing dates", zap.String("booking_id", bookingID), zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
