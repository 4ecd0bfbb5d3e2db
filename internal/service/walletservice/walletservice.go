package walletservice

//go:generate mockgen -source=walletservice.go -destination=mock_walletservice.go -package=walletservice

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/bookingledger/internal/domain"
	"github.com/GlebRadaev/bookingledger/internal/pg"
)

const defaultTransactionsLimit = 100

type Repo interface {
	CreateWallet(ctx context.Context, userID string) (*domain.Wallet, error)
	GetWalletByUserID(ctx context.Context, userID string) (*domain.Wallet, error)
	LockWallets(ctx context.Context, walletIDs ...string) error
	ApplyMutation(ctx context.Context, mutation domain.LedgerMutation) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, walletID string, limit int) ([]domain.Transaction, error)
	SumTransactions(ctx context.Context, walletID string) (decimal.Decimal, error)
}

type RevenueRepo interface {
	CreateRevenue(ctx context.Context, rev *domain.PlatformRevenue) error
	SumByType(ctx context.Context, from, to time.Time) (map[domain.TransactionType]decimal.Decimal, error)
}

type Service struct {
	repo        Repo
	revenueRepo RevenueRepo
	txManager   pg.TXManager
	nowFn       func() time.Time
}

func New(repo Repo, revenueRepo RevenueRepo, txManager pg.TXManager) *Service {
	return &Service{
		repo:        repo,
		revenueRepo: revenueRepo,
		txManager:   txManager,
		nowFn:       time.Now,
	}
}

// Reconciliation compares a wallet balance with the sum of its ledger entries.
type Reconciliation struct {
	Wallet    *domain.Wallet
	LedgerSum decimal.Decimal
	Balanced  bool
}

func (s *Service) CreateWallet(ctx context.Context, userID string) (*domain.Wallet, error) {
	wallet, err := s.repo.CreateWallet(ctx, userID)
	if err != nil {
		zap.L().Error("failed to create wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

func (s *Service) GetWalletBalance(ctx context.Context, userID string) (*domain.Wallet, error) {
	wallet, err := s.repo.GetWalletByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	if wallet == nil {
		return nil, fmt.Errorf("wallet of user %s: %w", userID, domain.ErrNotFound)
	}
	return wallet, nil
}

// Deposit credits a captured payment to the user's wallet.
func (s *Service) Deposit(ctx context.Context, userID string, amount decimal.Decimal, reference string) (*domain.Transaction, error) {
	if !amount.IsPositive() {
		return nil, domain.Validationf("deposit amount must be positive")
	}
	if !domain.WholeCents(amount) {
		return nil, domain.Validationf("deposit amount has more than %d decimal places", domain.AmountScale)
	}
	wallet, err := s.GetWalletBalance(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.repo.ApplyMutation(ctx, domain.LedgerMutation{
		WalletID:    wallet.ID,
		Delta:       amount,
		Type:        domain.TransactionDeposit,
		Description: reference,
	})
}

func (s *Service) Withdraw(ctx context.Context, userID string, amount decimal.Decimal) (*domain.Transaction, error) {
	if !amount.IsPositive() {
		return nil, domain.Validationf("withdrawal amount must be positive")
	}
	if !domain.WholeCents(amount) {
		return nil, domain.Validationf("withdrawal amount has more than %d decimal places", domain.AmountScale)
	}
	wallet, err := s.GetWalletBalance(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.repo.ApplyMutation(ctx, domain.LedgerMutation{
		WalletID:    wallet.ID,
		Delta:       amount.Neg(),
		Type:        domain.TransactionWithdrawal,
		Description: "Withdrawal",
	})
}

func (s *Service) ListTransactions(ctx context.Context, userID string, limit int) ([]domain.Transaction, error) {
	if limit <= 0 || limit > defaultTransactionsLimit {
		limit = defaultTransactionsLimit
	}
	wallet, err := s.GetWalletBalance(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListTransactions(ctx, wallet.ID, limit)
}

// CapturePayment moves the booking money: the guest pays price plus fee, the
// host receives the price and the platform books the fee as revenue. All of
// it commits or rolls back with the caller's transaction.
func (s *Service) CapturePayment(ctx context.Context, b *domain.Booking) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		guest, err := s.repo.GetWalletByUserID(ctx, b.GuestID)
		if err != nil {
			return err
		}
		if guest == nil {
			return fmt.Errorf("wallet of guest %s: %w", b.GuestID, domain.ErrNotFound)
		}
		host, err := s.hostWallet(ctx, b.HostID)
		if err != nil {
			return err
		}

		// No wallet row is locked before this point.
		ids := []string{guest.ID, host.ID}
		sort.Strings(ids)
		if err := s.repo.LockWallets(ctx, ids...); err != nil {
			return err
		}

		listingType := string(b.Type)
		_, err = s.repo.ApplyMutation(ctx, domain.LedgerMutation{
			WalletID:    guest.ID,
			Delta:       b.GrandTotal().Neg(),
			Type:        domain.TransactionPayment,
			BookingID:   b.ID,
			ListingType: listingType,
			Description: "Payment for booking " + b.ID,
		})
		if err != nil {
			return err
		}
		_, err = s.repo.ApplyMutation(ctx, domain.LedgerMutation{
			WalletID:    host.ID,
			Delta:       b.TotalAmount,
			Type:        domain.TransactionPayment,
			BookingID:   b.ID,
			ListingType: listingType,
			Description: "Payout for booking " + b.ID,
		})
		if err != nil {
			return err
		}

		if !b.ServiceFee.IsPositive() {
			return nil
		}
		return s.revenueRepo.CreateRevenue(ctx, &domain.PlatformRevenue{
			ID:        uuid.NewString(),
			Type:      domain.TransactionServiceFee,
			Amount:    b.ServiceFee,
			UserID:    b.GuestID,
			BookingID: b.ID,
			Category:  listingType,
			CreatedAt: s.nowFn().UTC(),
		})
	})
}

// hostWallet resolves the payout wallet without taking a row lock, creating
// it on the host's first payout.
func (s *Service) hostWallet(ctx context.Context, hostID string) (*domain.Wallet, error) {
	host, err := s.repo.GetWalletByUserID(ctx, hostID)
	if err != nil || host != nil {
		return host, err
	}
	return s.repo.CreateWallet(ctx, hostID)
}

// ChargeListingUpgrade debits the currency part of a listing-limit upgrade.
func (s *Service) ChargeListingUpgrade(ctx context.Context, userID string, amount decimal.Decimal, category domain.BookingType) (*domain.Transaction, error) {
	if !amount.IsPositive() {
		return nil, domain.Validationf("upgrade charge must be positive")
	}

	var entry *domain.Transaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		wallet, err := s.GetWalletBalance(ctx, userID)
		if err != nil {
			return err
		}
		entry, err = s.repo.ApplyMutation(ctx, domain.LedgerMutation{
			WalletID:    wallet.ID,
			Delta:       amount.Neg(),
			Type:        domain.TransactionListingLimitUpgrade,
			ListingType: string(category),
			Description: "Listing limit upgrade for " + string(category),
		})
		if err != nil {
			return err
		}
		return s.revenueRepo.CreateRevenue(ctx, &domain.PlatformRevenue{
			ID:        uuid.NewString(),
			Type:      domain.TransactionListingLimitUpgrade,
			Amount:    amount,
			UserID:    userID,
			Category:  string(category),
			CreatedAt: s.nowFn().UTC(),
		})
	})
	if err != nil {
		if !errors.Is(err, domain.ErrInsufficientFunds) {
			zap.L().Error("failed to charge listing upgrade", zap.Error(err))
		}
		return nil, err
	}
	return entry, nil
}

func (s *Service) RevenueSummary(ctx context.Context, actor domain.Actor, from, to time.Time) (*domain.RevenueSummary, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	if !from.Before(to) {
		return nil, domain.Validationf("from must be before to")
	}

	byType, err := s.revenueRepo.SumByType(ctx, from, to)
	if err != nil {
		zap.L().Error("failed to aggregate revenue", zap.Error(err))
		return nil, err
	}

	total := decimal.Zero
	for _, amount := range byType {
		total = total.Add(amount)
	}
	return &domain.RevenueSummary{From: from, To: to, ByType: byType, Total: total}, nil
}

// Reconcile checks that the wallet balance equals the sum of its ledger entries.
func (s *Service) Reconcile(ctx context.Context, actor domain.Actor, userID string) (*Reconciliation, error) {
	if actor.Role != domain.RoleAdmin && actor.UserID != userID {
		return nil, domain.ErrForbidden
	}
	wallet, err := s.GetWalletBalance(ctx, userID)
	if err != nil {
		return nil, err
	}
	sum, err := s.repo.SumTransactions(ctx, wallet.ID)
	if err != nil {
		return nil, err
	}

	rec := &Reconciliation{Wallet: wallet, LedgerSum: sum, Balanced: sum.Equal(wallet.Balance)}
	if !rec.Balanced {
		zap.L().Error("wallet out of balance with its ledger",
			zap.String("wallet_id", wallet.ID),
			zap.String("balance", wallet.Balance.String()),
			zap.String("ledger_sum", sum.String()),
		)
	}
	return rec, nil
}
