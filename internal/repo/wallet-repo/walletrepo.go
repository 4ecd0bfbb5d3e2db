package walletrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/bookingledger/internal/domain"
	"github.com/GlebRadaev/bookingledger/internal/pg"
)

const walletColumns = `id, user_id, balance, total_cash_in, total_spent, total_withdrawn, created_at, updated_at`

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

// CreateWallet returns the user's wallet, creating an empty one on first call.
// An existing wallet is read back without locking its row.
func (r *Repository) CreateWallet(ctx context.Context, userID string) (*domain.Wallet, error) {
	query := `
		INSERT INTO wallets (id, user_id, balance, total_cash_in, total_spent, total_withdrawn, created_at, updated_at)
		VALUES ($1, $2, 0, 0, 0, 0, $3, $3)
		ON CONFLICT (user_id) DO NOTHING
		RETURNING ` + walletColumns
	w, err := scanWallet(r.db.QueryRow(ctx, query, uuid.NewString(), userID, r.nowFn().UTC()))
	if err == nil {
		return w, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		zap.L().Error("can't create wallet", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}

	w, err = r.GetWalletByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, fmt.Errorf("wallet of user %s: %w", userID, domain.ErrNotFound)
	}
	return w, nil
}

func (r *Repository) GetWalletByUserID(ctx context.Context, userID string) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE user_id = $1`
	w, err := scanWallet(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get wallet", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	return w, nil
}

// LockWallets takes row locks on the wallets in id order. Callers touching
// several wallets must call it before any other statement that locks a wallet row.
func (r *Repository) LockWallets(ctx context.Context, walletIDs ...string) error {
	query := `SELECT id FROM wallets WHERE id = ANY($1) ORDER BY id FOR UPDATE`
	rows, err := r.db.Query(ctx, query, walletIDs)
	if err != nil {
		zap.L().Error("can't lock wallets", zap.Strings("wallet_ids", walletIDs), zap.Error(err))
		return err
	}
	defer rows.Close()

	locked := 0
	for rows.Next() {
		locked++
	}
	if err := rows.Err(); err != nil {
		return err
	}
	if locked != len(walletIDs) {
		return fmt.Errorf("lock wallets: %w", domain.ErrNotFound)
	}
	return nil
}

// ApplyMutation changes the wallet balance and records the matching ledger
// entry in one transaction.
func (r *Repository) ApplyMutation(ctx context.Context, m domain.LedgerMutation) (*domain.Transaction, error) {
	var entry *domain.Transaction
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		query := `SELECT ` + walletColumns + ` FROM wallets WHERE id = $1 FOR UPDATE`
		w, err := scanWallet(r.db.QueryRow(ctx, query, m.WalletID))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("wallet %s: %w", m.WalletID, domain.ErrNotFound)
			}
			return err
		}

		if err := w.Accumulate(m); err != nil {
			return err
		}

		now := r.nowFn().UTC()
		query = `
			UPDATE wallets
			SET balance = $1, total_cash_in = $2, total_spent = $3, total_withdrawn = $4, updated_at = $5
			WHERE id = $6
		`
		if _, err := r.db.Exec(ctx, query, w.Balance, w.TotalCashIn, w.TotalSpent, w.TotalWithdrawn, now, w.ID); err != nil {
			return err
		}

		entry = &domain.Transaction{
			ID:          uuid.NewString(),
			WalletID:    w.ID,
			UserID:      w.UserID,
			Amount:      m.Delta,
			Type:        m.Type,
			Status:      domain.TransactionStatusCompleted,
			BookingID:   m.BookingID,
			ListingType: m.ListingType,
			Description: m.Description,
			CreatedAt:   now,
		}
		query = `
			INSERT INTO transactions (id, wallet_id, user_id, amount, type, status, booking_id, listing_type, description, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), NULLIF($8, ''), NULLIF($9, ''), $10)
		`
		_, err = r.db.Exec(ctx, query,
			entry.ID, entry.WalletID, entry.UserID, entry.Amount, string(entry.Type), entry.Status,
			entry.BookingID, entry.ListingType, entry.Description, entry.CreatedAt,
		)
		return err
	})
	if err != nil {
		if !errors.Is(err, domain.ErrInsufficientFunds) {
			zap.L().Error("failed to apply ledger mutation", zap.String("wallet_id", m.WalletID), zap.Error(err))
		}
		return nil, err
	}
	return entry, nil
}

func (r *Repository) ListTransactions(ctx context.Context, walletID string, limit int) ([]domain.Transaction, error) {
	query := `
		SELECT id, wallet_id, user_id, amount, type, status,
			COALESCE(booking_id, ''), COALESCE(listing_type, ''), COALESCE(description, ''), created_at
		FROM transactions
		WHERE wallet_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, walletID, limit)
	if err != nil {
		zap.L().Error("can't list transactions", zap.String("wallet_id", walletID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var (
			t      domain.Transaction
			txType string
		)
		err := rows.Scan(&t.ID, &t.WalletID, &t.UserID, &t.Amount, &txType, &t.Status,
			&t.BookingID, &t.ListingType, &t.Description, &t.CreatedAt)
		if err != nil {
			return nil, err
		}
		t.Type = domain.TransactionType(txType)
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

// SumTransactions adds up every ledger entry of the wallet. For a consistent
// wallet the result equals its balance.
func (r *Repository) SumTransactions(ctx context.Context, walletID string) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE wallet_id = $1`
	var sum decimal.Decimal
	if err := r.db.QueryRow(ctx, query, walletID).Scan(&sum); err != nil {
		zap.L().Error("can't sum transactions", zap.String("wallet_id", walletID), zap.Error(err))
		return decimal.Zero, err
	}
	return sum, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanWallet(row scanner) (*domain.Wallet, error) {
	var w domain.Wallet
	err := row.Scan(&w.ID, &w.UserID, &w.Balance, &w.TotalCashIn, &w.TotalSpent, &w.TotalWithdrawn, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &w, nil
}
