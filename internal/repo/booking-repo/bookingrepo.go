package bookingrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/bookingledger/internal/domain"
	"github.com/GlebRadaev/bookingledger/internal/pg"
)

const bookingColumns = `id, guest_id, host_id, listing_id, type, status,
	check_in, check_out, selected_date, COALESCE(selected_time, ''), guests,
	total_amount, service_fee, fee_percentage, points_used,
	COALESCE(rejection_reason, ''), COALESCE(refund_request_reason, ''),
	COALESCE(refund_requested_by, ''), COALESCE(refund_denial_reason, ''),
	created_at, updated_at, confirmed_at, completed_at, rejected_at,
	refund_requested_at, refund_approved_at, refund_denied_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, b *domain.Booking) error {
	query := `
		INSERT INTO bookings (id, guest_id, host_id, listing_id, type, status,
			check_in, check_out, selected_date, selected_time, guests,
			total_amount, service_fee, fee_percentage, points_used, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`
	checkIn, checkOut, selectedDate, selectedTime := scheduleColumns(b.Schedule)
	_, err := r.db.Exec(ctx, query,
		b.ID, b.GuestID, b.HostID, b.ListingID, string(b.Type), string(b.Status),
		checkIn, checkOut, selectedDate, selectedTime, b.Guests,
		b.TotalAmount, b.ServiceFee, b.FeePercentage, b.PointsUsed, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		zap.L().Error("can't save booking", zap.String("booking_id", b.ID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	return r.getOne(ctx, query, id)
}

// GetForUpdate reads the booking and locks its row until the surrounding transaction ends.
func (r *Repository) GetForUpdate(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1 FOR UPDATE`
	return r.getOne(ctx, query, id)
}

func (r *Repository) getOne(ctx context.Context, query, id string) (*domain.Booking, error) {
	b, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get booking", zap.String("booking_id", id), zap.Error(err))
		return nil, err
	}
	return b, nil
}

// UpdateStatus persists the transition only while the row is still in status from.
// It reports false when another writer moved the booking first.
func (r *Repository) UpdateStatus(ctx context.Context, b *domain.Booking, from domain.BookingStatus) (bool, error) {
	query := `
		UPDATE bookings
		SET status = $1,
			rejection_reason = NULLIF($2, ''),
			refund_request_reason = NULLIF($3, ''),
			refund_requested_by = NULLIF($4, ''),
			refund_denial_reason = NULLIF($5, ''),
			updated_at = $6,
			confirmed_at = $7,
			completed_at = $8,
			rejected_at = $9,
			refund_requested_at = $10,
			refund_approved_at = $11,
			refund_denied_at = $12
		WHERE id = $13 AND status = $14
	`
	tag, err := r.db.Exec(ctx, query,
		string(b.Status), b.RejectionReason, b.RefundRequestReason, b.RefundRequestedBy, b.RefundDenialReason,
		b.UpdatedAt, b.ConfirmedAt, b.CompletedAt, b.RejectedAt,
		b.RefundRequestedAt, b.RefundApprovedAt, b.RefundDeniedAt,
		b.ID, string(from),
	)
	if err != nil {
		zap.L().Error("failed to update booking status", zap.String("booking_id", b.ID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) ListByGuest(ctx context.Context, guestID string, status domain.BookingStatus) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
		FROM bookings
		WHERE guest_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC`
	return r.list(ctx, query, guestID, string(status))
}

func (r *Repository) ListByHost(ctx context.Context, hostID string, status domain.BookingStatus) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
		FROM bookings
		WHERE host_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC`
	return r.list(ctx, query, hostID, string(status))
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list bookings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			zap.L().Error("can't scan booking row", zap.Error(err))
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookings: %w", err)
	}
	return bookings, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBooking(row scanner) (*domain.Booking, error) {
	var (
		b                               domain.Booking
		bookingType, status, slotTime   string
		checkIn, checkOut, selectedDate *time.Time
	)
	err := row.Scan(
		&b.ID, &b.GuestID, &b.HostID, &b.ListingID, &bookingType, &status,
		&checkIn, &checkOut, &selectedDate, &slotTime, &b.Guests,
		&b.TotalAmount, &b.ServiceFee, &b.FeePercentage, &b.PointsUsed,
		&b.RejectionReason, &b.RefundRequestReason, &b.RefundRequestedBy, &b.RefundDenialReason,
		&b.CreatedAt, &b.UpdatedAt, &b.ConfirmedAt, &b.CompletedAt, &b.RejectedAt,
		&b.RefundRequestedAt, &b.RefundApprovedAt, &b.RefundDeniedAt,
	)
	if err != nil {
		return nil, err
	}

	b.Type = domain.BookingType(bookingType)
	b.Status = domain.BookingStatus(status)
	if b.Type == domain.BookingTypeStays {
		var s domain.StaySchedule
		if checkIn != nil {
			s.CheckIn = *checkIn
		}
		if checkOut != nil {
			s.CheckOut = *checkOut
		}
		b.Schedule = s
	} else {
		s := domain.SlotSchedule{Time: slotTime}
		if selectedDate != nil {
			s.Date = *selectedDate
		}
		b.Schedule = s
	}
	return &b, nil
}

func scheduleColumns(s domain.Schedule) (checkIn, checkOut, selectedDate *time.Time, selectedTime *string) {
	switch v := s.(type) {
	case domain.StaySchedule:
		in, out := domain.Day(v.CheckIn), domain.Day(v.CheckOut)
		return &in, &out, nil, nil
	case domain.SlotSchedule:
		day, slot := domain.Day(v.Date), v.Time
		return nil, nil, &day, &slot
	}
	return nil, nil, nil, nil
}
