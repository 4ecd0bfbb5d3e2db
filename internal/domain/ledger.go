package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Wallet struct {
	ID             string          `json:"id"`
	UserID         string          `json:"user_id"`
	Balance        decimal.Decimal `json:"balance"`
	TotalCashIn    decimal.Decimal `json:"total_cash_in"`
	TotalSpent     decimal.Decimal `json:"total_spent"`
	TotalWithdrawn decimal.Decimal `json:"total_withdrawn"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type TransactionType string

const (
	TransactionPayment             TransactionType = "payment"
	TransactionRefund              TransactionType = "refund"
	TransactionDeposit             TransactionType = "deposit"
	TransactionWithdrawal          TransactionType = "withdrawal"
	TransactionServiceFee          TransactionType = "service_fee"
	TransactionListingLimitUpgrade TransactionType = "listing_limit_upgrade"
	TransactionNewHostFees         TransactionType = "new_host_fees"
)

// TransactionStatusCompleted is the only ledger status; entries are written once they happened.
const TransactionStatusCompleted = "completed"

type Transaction struct {
	ID          string          `json:"id"`
	WalletID    string          `json:"wallet_id"`
	UserID      string          `json:"user_id"`
	Amount      decimal.Decimal `json:"amount"`
	Type        TransactionType `json:"type"`
	Status      string          `json:"status"`
	BookingID   string          `json:"booking_id,omitempty"`
	ListingType string          `json:"listing_type,omitempty"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// AmountScale is the number of decimal places money columns store.
const AmountScale = 2

// WholeCents reports whether d fits the money columns without rounding.
func WholeCents(d decimal.Decimal) bool {
	return d.Equal(d.Round(AmountScale))
}

// LedgerMutation is one signed balance change together with the entry that records it.
type LedgerMutation struct {
	WalletID    string
	Delta       decimal.Decimal
	Type        TransactionType
	BookingID   string
	ListingType string
	Description string
}

// Accumulate applies m to w and keeps the running totals in step.
// Returns ErrInsufficientFunds when the balance would drop below zero.
func (w *Wallet) Accumulate(m LedgerMutation) error {
	next := w.Balance.Add(m.Delta)
	if next.IsNegative() {
		return ErrInsufficientFunds
	}
	w.Balance = next
	switch {
	case m.Delta.IsPositive():
		w.TotalCashIn = w.TotalCashIn.Add(m.Delta)
	case m.Type == TransactionWithdrawal:
		w.TotalWithdrawn = w.TotalWithdrawn.Sub(m.Delta)
	default:
		w.TotalSpent = w.TotalSpent.Sub(m.Delta)
	}
	return nil
}

type PlatformRevenue struct {
	ID        string          `json:"id"`
	Type      TransactionType `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	UserID    string          `json:"user_id"`
	BookingID string          `json:"booking_id,omitempty"`
	Category  string          `json:"category,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

type RevenueSummary struct {
	From   time.Time
	To     time.Time
	ByType map[TransactionType]decimal.Decimal
	Total  decimal.Decimal
}
