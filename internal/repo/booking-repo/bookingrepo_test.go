package bookingrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/bookingledger/internal/domain"
)

var columns = []string{
	"id", "guest_id", "host_id", "listing_id", "type", "status",
	"check_in", "check_out", "selected_date", "selected_time", "guests",
	"total_amount", "service_fee", "fee_percentage", "points_used",
	"rejection_reason", "refund_request_reason", "refund_requested_by", "refund_denial_reason",
	"created_at", "updated_at", "confirmed_at", "completed_at", "rejected_at",
	"refund_requested_at", "refund_approved_at", "refund_denied_at",
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func anyArgs(n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}

func stayRow(id, status string, created time.Time) []any {
	in := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	out := time.Date(2026, 5, 3, 0, 0, 0, 0, time.UTC)
	var none *time.Time
	return []any{
		id, "guest-1", "host-1", "listing-1", "stays", status,
		&in, &out, none, "", 2,
		"1000.00", "50.00", "5.00", 0,
		"", "", "", "",
		created, created, none, none, none,
		none, none, none,
	}
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := NewMock(t)
	created := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expectNil bool
	}{
		{
			name: "Booking found",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM bookings WHERE id = $1`)).
					WithArgs("b-1").
					WillReturnRows(pgxmock.NewRows(columns).AddRow(stayRow("b-1", "pending", created)...))
			},
		},
		{
			name: "Booking not found",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM bookings WHERE id = $1`)).
					WithArgs("b-1").
					WillReturnError(pgx.ErrNoRows)
			},
			expectNil: true,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM bookings WHERE id = $1`)).
					WithArgs("b-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			expectNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			b, err := repo.GetByID(context.Background(), "b-1")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.expectNil {
				assert.Nil(t, b)
				return
			}
			require.NotNil(t, b)
			assert.Equal(t, domain.StatusPending, b.Status)
			assert.Equal(t, domain.BookingTypeStays, b.Type)
			assert.True(t, b.TotalAmount.Equal(decimal.NewFromInt(1000)))
			assert.True(t, b.ServiceFee.Equal(decimal.NewFromInt(50)))
			assert.Nil(t, b.ConfirmedAt)
			stay, ok := b.Schedule.(domain.StaySchedule)
			require.True(t, ok)
			assert.Len(t, stay.Dates(), 2)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetForUpdate(t *testing.T) {
	repo, mock := NewMock(t)
	created := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM bookings WHERE id = $1 FOR UPDATE`)).
		WithArgs("b-1").
		WillReturnRows(pgxmock.NewRows(columns).AddRow(stayRow("b-1", "confirmed", created)...))

	b, err := repo.GetForUpdate(context.Background(), "b-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, b.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	b := &domain.Booking{
		ID: "b-1", GuestID: "guest-1", HostID: "host-1", ListingID: "listing-1",
		Type:          domain.BookingTypeExperiences,
		Status:        domain.StatusPending,
		Schedule:      domain.SlotSchedule{Date: time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC), Time: "09:30"},
		Guests:        1,
		TotalAmount:   decimal.NewFromInt(800),
		ServiceFee:    decimal.NewFromInt(40),
		FeePercentage: decimal.NewFromInt(5),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO bookings`)).
		WithArgs("b-1", "guest-1", "host-1", "listing-1", "experiences", "pending",
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), 1,
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), 0, now, now).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, repo.Create(context.Background(), b))

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO bookings`)).
		WithArgs(anyArgs(17)...).
		WillReturnError(errors.New("database error"))
	assert.Error(t, repo.Create(context.Background(), b))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Date(2026, 4, 2, 12, 0, 0, 0, time.UTC)
	b := &domain.Booking{ID: "b-1", Status: domain.StatusConfirmed, UpdatedAt: now, ConfirmedAt: &now}

	tests := []struct {
		name      string
		mockSetup func()
		want      bool
		expectErr bool
	}{
		{
			name: "Row still in expected status",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`WHERE id = $13 AND status = $14`)).
					WithArgs("confirmed", "", "", "", "", now, &now,
						pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
						"b-1", "pending").
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			want: true,
		},
		{
			name: "Another writer moved the booking",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`WHERE id = $13 AND status = $14`)).
					WithArgs(anyArgs(14)...).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			want: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`WHERE id = $13 AND status = $14`)).
					WithArgs(anyArgs(14)...).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			ok, err := repo.UpdateStatus(context.Background(), b, domain.StatusPending)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByGuest(t *testing.T) {
	repo, mock := NewMock(t)
	created := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE guest_id = $1 AND ($2 = '' OR status = $2)`)).
		WithArgs("guest-1", "").
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(stayRow("b-2", "confirmed", created.Add(time.Hour))...).
			AddRow(stayRow("b-1", "pending", created)...))

	bookings, err := repo.ListByGuest(context.Background(), "guest-1", "")
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, "b-2", bookings[0].ID)
	assert.Equal(t, "b-1", bookings[1].ID)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE host_id = $1 AND ($2 = '' OR status = $2)`)).
		WithArgs("host-1", "pending").
		WillReturnError(errors.New("database error"))

	_, err = repo.ListByHost(context.Background(), "host-1", domain.StatusPending)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
