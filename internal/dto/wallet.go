package dto

import (
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/bookingledger/internal/domain"
	"github.com/GlebRadaev/bookingledger/internal/service/walletservice"
)

type DepositRequestDTO struct {
	Amount    decimal.Decimal `json:"amount" swaggertype:"string" example:"2000.00"`
	Reference string          `json:"reference" validate:"required,max=128" example:"pay_01HV8X"`
}

type WithdrawRequestDTO struct {
	Amount decimal.Decimal `json:"amount" swaggertype:"string" example:"150.00"`
}

type ReconciliationResponseDTO struct {
	Wallet    *domain.Wallet  `json:"wallet"`
	LedgerSum decimal.Decimal `json:"ledger_sum" swaggertype:"string" example:"950"`
	Balanced  bool            `json:"balanced"`
}

func NewReconciliationResponse(r *walletservice.Reconciliation) ReconciliationResponseDTO {
	return ReconciliationResponseDTO{Wallet: r.Wallet, LedgerSum: r.LedgerSum, Balanced: r.Balanced}
}
