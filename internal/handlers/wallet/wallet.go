package wallet

//go:generate mockgen -source=wallet.go -destination=mock_wallet.go -package=wallet

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/bookingledger/internal/domain"
	"github.com/GlebRadaev/bookingledger/internal/dto"
	"github.com/GlebRadaev/bookingledger/internal/service/walletservice"
	"github.com/GlebRadaev/bookingledger/pkg/auth"
	"github.com/GlebRadaev/bookingledger/pkg/utils"
	"github.com/GlebRadaev/bookingledger/pkg/validate"
)

const defaultRevenueWindow = 30 * 24 * time.Hour

type Service interface {
	CreateWallet(ctx context.Context, userID string) (*domain.Wallet, error)
	GetWalletBalance(ctx context.Context, userID string) (*domain.Wallet, error)
	Deposit(ctx context.Context, userID string, amount decimal.Decimal, reference string) (*domain.Transaction, error)
	Withdraw(ctx context.Context, userID string, amount decimal.Decimal) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, userID string, limit int) ([]domain.Transaction, error)
	RevenueSummary(ctx context.Context, actor domain.Actor, from, to time.Time) (*domain.RevenueSummary, error)
	Reconcile(ctx context.Context, actor domain.Actor, userID string) (*walletservice.Reconciliation, error)
}

type WalletHandler struct {
	walletService Service
	nowFn         func() time.Time
}

func New(walletService Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
		nowFn:         time.Now,
	}
}

// CreateWallet godoc
//
//	@Summary		Create the user's wallet
//	@Description	Idempotent: returns the existing wallet when there is one.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		201	{object}	domain.Wallet	"Wallet"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet [post]
func (h *WalletHandler) CreateWallet(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.RequestActor(w, r)
	if !ok {
		return
	}

	wallet, err := h.walletService.CreateWallet(r.Context(), actor.UserID)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, wallet)
}

// GetWallet godoc
//
//	@Summary		Get the wallet balance
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	domain.Wallet	"Balance and running totals"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Wallet not created yet"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet [get]
func (h *WalletHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.RequestActor(w, r)
	if !ok {
		return
	}

	wallet, err := h.walletService.GetWalletBalance(r.Context(), actor.UserID)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, wallet)
}

// Deposit godoc
//
//	@Summary		Credit a captured payment
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DepositRequestDTO	true	"Captured payment"
//	@Success		200		{object}	domain.Transaction		"Deposit entry"
//	@Failure		400		{object}	utils.Response			"Invalid amount"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		404		{object}	utils.Response			"Wallet not created yet"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/wallet/deposit [post]
func (h *WalletHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.RequestActor(w, r)
	if !ok {
		return
	}

	var req dto.DepositRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}

	entry, err := h.walletService.Deposit(r.Context(), actor.UserID, req.Amount, req.Reference)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, entry)
}

// Withdraw godoc
//
//	@Summary		Withdraw funds
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawRequestDTO	true	"Amount to withdraw"
//	@Success		200		{object}	domain.Transaction		"Withdrawal entry"
//	@Failure		400		{object}	utils.Response			"Invalid amount"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		402		{object}	utils.Response			"Insufficient funds"
//	@Failure		404		{object}	utils.Response			"Wallet not created yet"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/wallet/withdraw [post]
func (h *WalletHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.RequestActor(w, r)
	if !ok {
		return
	}

	var req dto.WithdrawRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.walletService.Withdraw(r.Context(), actor.UserID, req.Amount)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, entry)
}

// ListTransactions godoc
//
//	@Summary		List ledger entries
//	@Description	Newest first.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int					false	"Maximum number of entries"
//	@Success		200		{array}		domain.Transaction	"Ledger entries"
//	@Failure		400		{object}	utils.Response		"Invalid limit"
//	@Failure		401		{object}	utils.Response		"User not authorized"
//	@Failure		404		{object}	utils.Response		"Wallet not created yet"
//	@Failure		500		{object}	utils.Response		"Internal server error"
//	@Router			/api/wallet/transactions [get]
func (h *WalletHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.RequestActor(w, r)
	if !ok {
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "limit must be a number")
			return
		}
		limit = n
	}

	entries, err := h.walletService.ListTransactions(r.Context(), actor.UserID, limit)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	if entries == nil {
		entries = []domain.Transaction{}
	}
	utils.RespondWithJSON(w, http.StatusOK, entries)
}

// RevenueSummary godoc
//
//	@Summary		Platform revenue per type
//	@Description	Half-open window [from, to). Defaults to the last 30 days.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			from	query		string							false	"Start date (YYYY-MM-DD)"
//	@Param			to		query		string							false	"End date (YYYY-MM-DD), exclusive"
//	@Success		200		{object}	dto.RevenueSummaryResponseDTO	"Totals"
//	@Failure		400		{object}	utils.Response					"Invalid window"
//	@Failure		403		{object}	utils.Response					"Admins only"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/admin/revenue [get]
func (h *WalletHandler) RevenueSummary(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.RequestActor(w, r)
	if !ok {
		return
	}

	to := domain.Day(h.nowFn()).AddDate(0, 0, 1)
	from := to.Add(-defaultRevenueWindow)
	var err error
	if raw := r.URL.Query().Get("from"); raw != "" {
		if from, err = time.Parse(dto.DateLayout, raw); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "from must be YYYY-MM-DD")
			return
		}
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		if to, err = time.Parse(dto.DateLayout, raw); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "to must be YYYY-MM-DD")
			return
		}
	}

	summary, err := h.walletService.RevenueSummary(r.Context(), actor, from, to)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewRevenueSummaryResponse(summary))
}

// Reconcile godoc
//
//	@Summary		Check a wallet against its ledger
//	@Description	Users check their own wallet; admins may pass any user id.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Param			userID	path		string							false	"User ID (admin route only)"
//	@Success		200		{object}	dto.ReconciliationResponseDTO	"Balance versus ledger sum"
//	@Failure		401		{object}	utils.Response					"User not authorized"
//	@Failure		403		{object}	utils.Response					"Not your wallet"
//	@Failure		404		{object}	utils.Response					"Wallet not found"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/wallet/reconcile [get]
//	@Router			/api/admin/wallets/{userID}/reconcile [get]
func (h *WalletHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.RequestActor(w, r)
	if !ok {
		return
	}

	userID := chi.URLParam(r, "userID")
	if userID == "" {
		userID = actor.UserID
	}

	rec, err := h.walletService.Reconcile(r.Context(), actor, userID)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewReconciliationResponse(rec))
}
