package rewardsrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/bookingledger/internal/domain"
	"github.com/GlebRadaev/bookingledger/internal/pg"
)

var (
	rewardsCols = []string{"id", "user_id", "role", "total_points", "available_points", "redeemed_points", "created_at", "updated_at"}
	limitCols   = []string{"category", "listing_limit", "upgrades"}
	fixedNow    = time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	repo := New(mockDB, mockTxManager)
	repo.nowFn = func() time.Time { return fixedNow }
	return repo, mockDB, mockTxManager
}

func TestRepository_CreateRewards(t *testing.T) {
	repo, mock, tx := NewMock(t)
	tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	})

	mock.ExpectExec(regexp.QuoteMeta(`ON CONFLICT (user_id) DO NOTHING`)).
		WithArgs(pgxmock.AnyArg(), "host-1", "host", fixedNow).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(regexp.QuoteMeta(`SELECT $1, c, $2, 0 FROM unnest($3::text[]) AS c`)).
		WithArgs("host-1", domain.DefaultListingLimit, []string{"stays", "experiences", "services"}).
		WillReturnResult(pgxmock.NewResult("INSERT", 3))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM rewards WHERE user_id = $1`)).
		WithArgs("host-1").
		WillReturnRows(pgxmock.NewRows(rewardsCols).AddRow("rw-1", "host-1", "host", 0, 0, 0, fixedNow, fixedNow))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM listing_limits WHERE user_id = $1`)).
		WithArgs("host-1").
		WillReturnRows(pgxmock.NewRows(limitCols).
			AddRow("stays", 3, 0).
			AddRow("experiences", 3, 0).
			AddRow("services", 3, 0))

	rw, err := repo.CreateRewards(context.Background(), "host-1", domain.RoleHost)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleHost, rw.Role)
	assert.Equal(t, 3, rw.LimitFor(domain.BookingTypeServices))
	assert.True(t, rw.Balanced())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetRewards(t *testing.T) {
	query := regexp.QuoteMeta(`FROM rewards WHERE user_id = $1`)

	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		expectErr bool
		expectNil bool
	}{
		{
			name: "Rewards with upgraded limit",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(query).WithArgs("host-1").
					WillReturnRows(pgxmock.NewRows(rewardsCols).AddRow("rw-1", "host-1", "host", 510, 10, 500, fixedNow, fixedNow))
				mock.ExpectQuery(regexp.QuoteMeta(`FROM listing_limits`)).WithArgs("host-1").
					WillReturnRows(pgxmock.NewRows(limitCols).AddRow("services", 8, 1))
			},
		},
		{
			name: "No record",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(query).WithArgs("host-1").WillReturnError(pgx.ErrNoRows)
			},
			expectNil: true,
		},
		{
			name: "Database error",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(query).WithArgs("host-1").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			expectNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, _ := NewMock(t)
			tt.mockSetup(mock)

			rw, err := repo.GetRewards(context.Background(), "host-1")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.expectNil {
				assert.Nil(t, rw)
			} else {
				require.NotNil(t, rw)
				assert.Equal(t, 8, rw.LimitFor(domain.BookingTypeServices))
				assert.Equal(t, 1, rw.ListingUpgrades[domain.BookingTypeServices])
				assert.Equal(t, domain.DefaultListingLimit, rw.LimitFor(domain.BookingTypeStays))
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetRewardsForUpdate(t *testing.T) {
	repo, mock, _ := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM rewards WHERE user_id = $1 FOR UPDATE`)).WithArgs("guest-1").
		WillReturnRows(pgxmock.NewRows(rewardsCols).AddRow("rw-1", "guest-1", "guest", 10, 10, 0, fixedNow, fixedNow))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM listing_limits`)).WithArgs("guest-1").
		WillReturnRows(pgxmock.NewRows(limitCols))

	rw, err := repo.GetRewardsForUpdate(context.Background(), "guest-1")
	require.NoError(t, err)
	assert.Equal(t, 10, rw.AvailablePoints)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdatePoints(t *testing.T) {
	repo, mock, _ := NewMock(t)
	rw := &domain.Rewards{UserID: "guest-1", TotalPoints: 20, AvailablePoints: 15, RedeemedPoints: 5, UpdatedAt: fixedNow}

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE rewards`)).
		WithArgs(20, 15, 5, fixedNow, "guest-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.UpdatePoints(context.Background(), rw))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_AppendHistory(t *testing.T) {
	repo, mock, _ := NewMock(t)
	h := &domain.PointsHistory{
		ID: "h-1", UserID: "guest-1", Action: domain.PointsActionBookingCompleted,
		BookingID: "b-1", Category: "stays", PointsEarned: 10, CreatedAt: fixedNow,
	}
	query := regexp.QuoteMeta(`ON CONFLICT (user_id, booking_id, action) WHERE booking_id IS NOT NULL DO NOTHING`)

	mock.ExpectExec(query).
		WithArgs("h-1", "guest-1", "booking_completed", "b-1", "stays", 10, 0, 0, fixedNow).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	inserted, err := repo.AppendHistory(context.Background(), h)
	require.NoError(t, err)
	assert.True(t, inserted)

	mock.ExpectExec(query).
		WithArgs("h-1", "guest-1", "booking_completed", "b-1", "stays", 10, 0, 0, fixedNow).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))
	inserted, err = repo.AppendHistory(context.Background(), h)
	require.NoError(t, err)
	assert.False(t, inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListHistory(t *testing.T) {
	repo, mock, _ := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM points_history`)).WithArgs("guest-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "action", "booking_id", "category",
			"points_earned", "points_deducted", "points_redeemed", "created_at"}).
			AddRow("h-2", "guest-1", "points_used", "b-1", "stays", 0, 5, 0, fixedNow).
			AddRow("h-1", "guest-1", "booking_completed", "b-1", "stays", 10, 0, 0, fixedNow))

	history, err := repo.ListHistory(context.Background(), "guest-1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, domain.PointsActionPointsUsed, history[0].Action)
	assert.Equal(t, 5, history[0].PointsDeducted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SaveListingLimit(t *testing.T) {
	repo, mock, _ := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO listing_limits (user_id, category, listing_limit, upgrades)`)).
		WithArgs("host-1", "services", 8, 1).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, repo.SaveListingLimit(context.Background(), "host-1", domain.BookingTypeServices, 8, 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}
