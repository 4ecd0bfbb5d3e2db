package fees

//go:generate mockgen -source=fees.go -destination=mock_fees.go -package=fees

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/bookingledger/internal/domain"
	"github.com/GlebRadaev/bookingledger/internal/dto"
	"github.com/GlebRadaev/bookingledger/pkg/auth"
	"github.com/GlebRadaev/bookingledger/pkg/utils"
	"github.com/GlebRadaev/bookingledger/pkg/validate"
)

type Service interface {
	GetConfig(ctx context.Context) (*domain.ServiceFeeConfig, error)
	GetServiceFeeForType(ctx context.Context, category domain.BookingType) (decimal.Decimal, error)
	UpdateServiceFees(ctx context.Context, actor domain.Actor, updates map[domain.BookingType]decimal.Decimal) (*domain.ServiceFeeConfig, error)
}

type FeeHandler struct {
	feeService Service
}

func New(feeService Service) *FeeHandler {
	return &FeeHandler{
		feeService: feeService,
	}
}

// GetFees godoc
//
//	@Summary		Current service fee percentages
//	@Tags			Fees
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	domain.ServiceFeeConfig	"Fee config"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/fees [get]
func (h *FeeHandler) GetFees(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.feeService.GetConfig(r.Context())
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, cfg)
}

// GetFee godoc
//
//	@Summary		Service fee percentage for one category
//	@Description	Falls back to the default percentage when the category is not configured.
//	@Tags			Fees
//	@Security		BearerAuth
//	@Produce		json
//	@Param			category	path		string				true	"Booking category"	Enums(stays, experiences, services)
//	@Success		200			{object}	dto.FeeResponseDTO	"Percentage"
//	@Failure		400			{object}	utils.Response		"Unknown category"
//	@Failure		401			{object}	utils.Response		"User not authorized"
//	@Router			/api/fees/{category} [get]
func (h *FeeHandler) GetFee(w http.ResponseWriter, r *http.Request) {
	category := domain.BookingType(chi.URLParam(r, "category"))
	pct, err := h.feeService.GetServiceFeeForType(r.Context(), category)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FeeResponseDTO{Category: string(category), Percentage: pct})
}

// UpdateFees godoc
//
//	@Summary		Update service fee percentages
//	@Description	Partial update: categories left out keep their current value. Each value must be within [0, 100].
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UpdateFeesRequestDTO	true	"Percentages per category"
//	@Success		200		{object}	domain.ServiceFeeConfig		"New config"
//	@Failure		400		{object}	utils.Response				"Invalid percentages"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		403		{object}	utils.Response				"Admins only"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/fees [put]
func (h *FeeHandler) UpdateFees(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.RequestActor(w, r)
	if !ok {
		return
	}

	var req dto.UpdateFeesRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}

	cfg, err := h.feeService.UpdateServiceFees(r.Context(), actor, req.Updates())
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, cfg)
}
