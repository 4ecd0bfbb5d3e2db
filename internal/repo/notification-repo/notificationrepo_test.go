package notificationrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/bookingledger/internal/domain"
)

var fixedNow = time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func TestRepository_CreateNotification(t *testing.T) {
	repo, mock := NewMock(t)
	n := &domain.Notification{
		ID: "evt-1", UserID: "host-1", Kind: domain.NotifyBookingRequested,
		Title: "New booking request", Message: "You have a new booking request", BookingID: "b-1", CreatedAt: fixedNow,
	}
	query := regexp.QuoteMeta(`INSERT INTO notifications`)

	tests := []struct {
		name      string
		mockSetup func()
		want      bool
		expectErr bool
	}{
		{
			name: "First delivery",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs("evt-1", "host-1", "booking_requested", n.Title, n.Message, "b-1", fixedNow).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			want: true,
		},
		{
			name: "Redelivery is skipped",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs("evt-1", "host-1", "booking_requested", n.Title, n.Message, "b-1", fixedNow).
					WillReturnResult(pgxmock.NewResult("INSERT", 0))
			},
			want: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs("evt-1", "host-1", "booking_requested", n.Title, n.Message, "b-1", fixedNow).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			created, err := repo.CreateNotification(context.Background(), n)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, created)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByUser(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE user_id = $1 AND (NOT $2 OR read = FALSE)`)).
		WithArgs("host-1", true).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "kind", "title", "message", "booking_id", "read", "created_at"}).
			AddRow("evt-1", "host-1", "booking_requested", "New booking request", "msg", "b-1", false, fixedNow))

	list, err := repo.ListByUser(context.Background(), "host-1", true)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, domain.NotifyBookingRequested, list[0].Kind)
	assert.False(t, list[0].Read)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_MarkRead(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`UPDATE notifications SET read = TRUE WHERE id = $1 AND user_id = $2`)

	mock.ExpectExec(query).WithArgs("evt-1", "host-1").WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	ok, err := repo.MarkRead(context.Background(), "evt-1", "host-1")
	require.NoError(t, err)
	assert.True(t, ok)

	mock.ExpectExec(query).WithArgs("evt-1", "guest-1").WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	ok, err = repo.MarkRead(context.Background(), "evt-1", "guest-1")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}
