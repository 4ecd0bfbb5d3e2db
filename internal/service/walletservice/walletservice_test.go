package walletservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/bookingledger/internal/domain"
	"github.com/GlebRadaev/bookingledger/internal/pg"
)

var now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockRevenueRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	revenueRepo := NewMockRevenueRepo(ctrl)
	tx := pg.NewMockTXManager(ctrl)
	tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	}).AnyTimes()

	service := New(repo, revenueRepo, tx)
	service.nowFn = func() time.Time { return now }
	return service, repo, revenueRepo
}

var errDB = errors.New("db down")

func amount(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// deltaIs matches a ledger mutation by wallet and signed amount.
func deltaIs(walletID, delta string, typ domain.TransactionType) gomock.Matcher {
	return gomock.Cond(func(x any) bool {
		m, ok := x.(domain.LedgerMutation)
		return ok && m.WalletID == walletID && m.Delta.Equal(amount(delta)) && m.Type == typ
	})
}

func TestGetWalletBalance(t *testing.T) {
	tests := []struct {
		name        string
		prepareMock func(repo *MockRepo)
		expectedErr error
	}{
		{
			name: "Found",
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().GetWalletByUserID(gomock.Any(), "user-1").Return(&domain.Wallet{ID: "w-1", Balance: amount("10")}, nil)
			},
		},
		{
			name: "No wallet",
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().GetWalletByUserID(gomock.Any(), "user-1").Return(nil, nil)
			},
			expectedErr: domain.ErrNotFound,
		},
		{
			name: "Repo error",
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().GetWalletByUserID(gomock.Any(), "user-1").Return(nil, errors.New("db down"))
			},
			expectedErr: errors.New("db down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, _ := NewMock(t)
			tt.prepareMock(repo)

			w, err := service.GetWalletBalance(context.Background(), "user-1")
			if tt.expectedErr != nil {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr.Error())
				assert.Nil(t, w)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "w-1", w.ID)
		})
	}
}

func TestDeposit(t *testing.T) {
	service, repo, _ := NewMock(t)
	ctx := context.Background()

	_, err := service.Deposit(ctx, "user-1", decimal.Zero, "pay_1")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = service.Deposit(ctx, "user-1", amount("0.004"), "pay_1")
	assert.ErrorIs(t, err, domain.ErrValidation)

	repo.EXPECT().GetWalletByUserID(gomock.Any(), "user-1").Return(&domain.Wallet{ID: "w-1"}, nil)
	repo.EXPECT().ApplyMutation(gomock.Any(), deltaIs("w-1", "250.50", domain.TransactionDeposit)).
		Return(&domain.Transaction{ID: "tx-1", Amount: amount("250.50"), Type: domain.TransactionDeposit}, nil)

	entry, err := service.Deposit(ctx, "user-1", amount("250.50"), "pay_1")
	require.NoError(t, err)
	assert.Equal(t, "tx-1", entry.ID)
}

func TestWithdraw(t *testing.T) {
	service, repo, _ := NewMock(t)
	ctx := context.Background()

	_, err := service.Withdraw(ctx, "user-1", amount("-5"))
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = service.Withdraw(ctx, "user-1", amount("10.005"))
	assert.ErrorIs(t, err, domain.ErrValidation)

	repo.EXPECT().GetWalletByUserID(gomock.Any(), "user-1").Return(&domain.Wallet{ID: "w-1", Balance: amount("10")}, nil)
	repo.EXPECT().ApplyMutation(gomock.Any(), deltaIs("w-1", "-20", domain.TransactionWithdrawal)).
		Return(nil, domain.ErrInsufficientFunds)

	_, err = service.Withdraw(ctx, "user-1", amount("20"))
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
}

func TestListTransactions(t *testing.T) {
	service, repo, _ := NewMock(t)

	repo.EXPECT().GetWalletByUserID(gomock.Any(), "user-1").Return(&domain.Wallet{ID: "w-1"}, nil).Times(2)
	repo.EXPECT().ListTransactions(gomock.Any(), "w-1", 100).Return([]domain.Transaction{{ID: "tx-1"}}, nil).Times(2)
	for _, limit := range []int{0, 1000} {
		list, err := service.ListTransactions(context.Background(), "user-1", limit)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	}
}

func TestCapturePayment(t *testing.T) {
	booking := &domain.Booking{
		ID: "b-1", GuestID: "guest-1", HostID: "host-1", Type: domain.BookingTypeStays,
		TotalAmount: amount("1000"), ServiceFee: amount("50"),
	}
	guestWallet := &domain.Wallet{ID: "w-guest", UserID: "guest-1", Balance: amount("2000")}
	hostWallet := &domain.Wallet{ID: "w-host", UserID: "host-1"}

	tests := []struct {
		name        string
		booking     *domain.Booking
		mockSetup   func(repo *MockRepo, revenue *MockRevenueRepo)
		expectedErr error
	}{
		{
			name:    "Captured",
			booking: booking,
			mockSetup: func(repo *MockRepo, revenue *MockRevenueRepo) {
				gomock.InOrder(
					repo.EXPECT().GetWalletByUserID(gomock.Any(), "guest-1").Return(guestWallet, nil),
					repo.EXPECT().GetWalletByUserID(gomock.Any(), "host-1").Return(hostWallet, nil),
					repo.EXPECT().LockWallets(gomock.Any(), "w-guest", "w-host").Return(nil),
					repo.EXPECT().ApplyMutation(gomock.Any(), deltaIs("w-guest", "-1050", domain.TransactionPayment)).Return(&domain.Transaction{}, nil),
					repo.EXPECT().ApplyMutation(gomock.Any(), deltaIs("w-host", "1000", domain.TransactionPayment)).Return(&domain.Transaction{}, nil),
					revenue.EXPECT().CreateRevenue(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, rev *domain.PlatformRevenue) error {
						assert.Equal(t, domain.TransactionServiceFee, rev.Type)
						assert.True(t, rev.Amount.Equal(amount("50")))
						assert.Equal(t, "b-1", rev.BookingID)
						assert.Equal(t, now, rev.CreatedAt)
						return nil
					}),
				)
			},
		},
		{
			name:    "Zero fee books no revenue",
			booking: &domain.Booking{ID: "b-2", GuestID: "guest-1", HostID: "host-1", TotalAmount: amount("100"), ServiceFee: decimal.Zero},
			mockSetup: func(repo *MockRepo, _ *MockRevenueRepo) {
				repo.EXPECT().GetWalletByUserID(gomock.Any(), "guest-1").Return(guestWallet, nil)
				repo.EXPECT().GetWalletByUserID(gomock.Any(), "host-1").Return(hostWallet, nil)
				repo.EXPECT().LockWallets(gomock.Any(), "w-guest", "w-host").Return(nil)
				repo.EXPECT().ApplyMutation(gomock.Any(), gomock.Any()).Return(&domain.Transaction{}, nil).Times(2)
			},
		},
		{
			name:    "Host wallet created on first payout",
			booking: booking,
			mockSetup: func(repo *MockRepo, revenue *MockRevenueRepo) {
				gomock.InOrder(
					repo.EXPECT().GetWalletByUserID(gomock.Any(), "guest-1").Return(guestWallet, nil),
					repo.EXPECT().GetWalletByUserID(gomock.Any(), "host-1").Return(nil, nil),
					repo.EXPECT().CreateWallet(gomock.Any(), "host-1").Return(hostWallet, nil),
					repo.EXPECT().LockWallets(gomock.Any(), "w-guest", "w-host").Return(nil),
				)
				repo.EXPECT().ApplyMutation(gomock.Any(), gomock.Any()).Return(&domain.Transaction{}, nil).Times(2)
				revenue.EXPECT().CreateRevenue(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:    "Host wallet lookup fails",
			booking: booking,
			mockSetup: func(repo *MockRepo, _ *MockRevenueRepo) {
				repo.EXPECT().GetWalletByUserID(gomock.Any(), "guest-1").Return(guestWallet, nil)
				repo.EXPECT().GetWalletByUserID(gomock.Any(), "host-1").Return(nil, errDB)
			},
			expectedErr: errDB,
		},
		{
			name:    "Guest has no wallet",
			booking: booking,
			mockSetup: func(repo *MockRepo, _ *MockRevenueRepo) {
				repo.EXPECT().GetWalletByUserID(gomock.Any(), "guest-1").Return(nil, nil)
			},
			expectedErr: domain.ErrNotFound,
		},
		{
			name:    "Insufficient funds",
			booking: booking,
			mockSetup: func(repo *MockRepo, _ *MockRevenueRepo) {
				repo.EXPECT().GetWalletByUserID(gomock.Any(), "guest-1").Return(&domain.Wallet{ID: "w-guest", Balance: amount("10")}, nil)
				repo.EXPECT().GetWalletByUserID(gomock.Any(), "host-1").Return(hostWallet, nil)
				repo.EXPECT().LockWallets(gomock.Any(), "w-guest", "w-host").Return(nil)
				repo.EXPECT().ApplyMutation(gomock.Any(), deltaIs("w-guest", "-1050", domain.TransactionPayment)).Return(nil, domain.ErrInsufficientFunds)
			},
			expectedErr: domain.ErrInsufficientFunds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, revenue := NewMock(t)
			tt.mockSetup(repo, revenue)

			err := service.CapturePayment(context.Background(), tt.booking)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCapturePayment_LocksInIDOrder(t *testing.T) {
	service, repo, revenue := NewMock(t)
	wallets := map[string]*domain.Wallet{
		"user-a": {ID: "w-a", UserID: "user-a", Balance: amount("1000")},
		"user-b": {ID: "w-b", UserID: "user-b", Balance: amount("1000")},
	}

	// locks records every call that takes a wallet row lock, in call order.
	var locks [][]string
	repo.EXPECT().GetWalletByUserID(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, userID string) (*domain.Wallet, error) { return wallets[userID], nil }).Times(4)
	repo.EXPECT().LockWallets(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, ids ...string) error {
			locks = append(locks, ids)
			return nil
		}).Times(2)
	repo.EXPECT().ApplyMutation(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, m domain.LedgerMutation) (*domain.Transaction, error) {
			locks = append(locks, []string{m.WalletID})
			return &domain.Transaction{}, nil
		}).Times(4)
	revenue.EXPECT().CreateRevenue(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	for i, b := range []*domain.Booking{
		{ID: "b-1", GuestID: "user-a", HostID: "user-b", TotalAmount: amount("50"), ServiceFee: amount("2.5")},
		{ID: "b-2", GuestID: "user-b", HostID: "user-a", TotalAmount: amount("50"), ServiceFee: amount("2.5")},
	} {
		locks = nil
		require.NoError(t, service.CapturePayment(context.Background(), b))
		require.NotEmpty(t, locks, "capture %d", i)
		assert.Equal(t, []string{"w-a", "w-b"}, locks[0], "capture %d must lock both wallets in id order first", i)
	}
}

func TestChargeListingUpgrade(t *testing.T) {
	service, repo, revenue := NewMock(t)
	ctx := context.Background()

	_, err := service.ChargeListingUpgrade(ctx, "host-1", decimal.Zero, domain.BookingTypeStays)
	assert.ErrorIs(t, err, domain.ErrValidation)

	repo.EXPECT().GetWalletByUserID(gomock.Any(), "host-1").Return(&domain.Wallet{ID: "w-host", Balance: amount("500")}, nil)
	repo.EXPECT().ApplyMutation(gomock.Any(), deltaIs("w-host", "-200", domain.TransactionListingLimitUpgrade)).
		Return(&domain.Transaction{ID: "tx-9"}, nil)
	revenue.EXPECT().CreateRevenue(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, rev *domain.PlatformRevenue) error {
		assert.Equal(t, domain.TransactionListingLimitUpgrade, rev.Type)
		assert.Equal(t, "stays", rev.Category)
		return nil
	})

	entry, err := service.ChargeListingUpgrade(ctx, "host-1", amount("200"), domain.BookingTypeStays)
	require.NoError(t, err)
	assert.Equal(t, "tx-9", entry.ID)
}

func TestRevenueSummary(t *testing.T) {
	admin := domain.Actor{UserID: "admin-1", Role: domain.RoleAdmin}
	from, to := now.AddDate(0, -1, 0), now

	t.Run("Admin only", func(t *testing.T) {
		service, _, _ := NewMock(t)
		_, err := service.RevenueSummary(context.Background(), domain.Actor{UserID: "host-1", Role: domain.RoleHost}, from, to)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("Inverted range", func(t *testing.T) {
		service, _, _ := NewMock(t)
		_, err := service.RevenueSummary(context.Background(), admin, to, from)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Totals", func(t *testing.T) {
		service, _, revenue := NewMock(t)
		revenue.EXPECT().SumByType(gomock.Any(), from, to).Return(map[domain.TransactionType]decimal.Decimal{
			domain.TransactionServiceFee:          amount("50"),
			domain.TransactionListingLimitUpgrade: amount("200"),
		}, nil)

		summary, err := service.RevenueSummary(context.Background(), admin, from, to)
		require.NoError(t, err)
		assert.True(t, summary.Total.Equal(amount("250")))
		assert.Len(t, summary.ByType, 2)
	})
}

func TestReconcile(t *testing.T) {
	tests := []struct {
		name        string
		actor       domain.Actor
		prepareMock func(repo *MockRepo)
		balanced    bool
		expectedErr error
	}{
		{
			name:  "Owner, balanced",
			actor: domain.Actor{UserID: "user-1", Role: domain.RoleGuest},
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().GetWalletByUserID(gomock.Any(), "user-1").Return(&domain.Wallet{ID: "w-1", Balance: amount("950")}, nil)
				repo.EXPECT().SumTransactions(gomock.Any(), "w-1").Return(amount("950.00"), nil)
			},
			balanced: true,
		},
		{
			name:  "Admin, drifted",
			actor: domain.Actor{UserID: "admin-1", Role: domain.RoleAdmin},
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().GetWalletByUserID(gomock.Any(), "user-1").Return(&domain.Wallet{ID: "w-1", Balance: amount("950")}, nil)
				repo.EXPECT().SumTransactions(gomock.Any(), "w-1").Return(amount("900"), nil)
			},
		},
		{
			name:        "Someone else",
			actor:       domain.Actor{UserID: "user-2", Role: domain.RoleGuest},
			prepareMock: func(*MockRepo) {},
			expectedErr: domain.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, _ := NewMock(t)
			tt.prepareMock(repo)

			rec, err := service.Reconcile(context.Background(), tt.actor, "user-1")
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.balanced, rec.Balanced)
		})
	}
}
