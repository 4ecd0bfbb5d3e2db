package rewards

//go:generate mockgen -source=rewards.go -destination=mock_rewards.go -package=rewards

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/bookingledger/internal/domain"
	"github.com/GlebRadaev/bookingledger/internal/dto"
	"github.com/GlebRadaev/bookingledger/internal/service/rewardsservice"
	"github.com/GlebRadaev/bookingledger/pkg/auth"
	"github.com/GlebRadaev/bookingledger/pkg/utils"
	"github.com/GlebRadaev/bookingledger/pkg/validate"
)

type Service interface {
	InitializeUserRewards(ctx context.Context, userID string, role domain.Role) (*domain.Rewards, error)
	GetRewards(ctx context.Context, userID string) (*domain.Rewards, error)
	CanCreateListing(ctx context.Context, userID string, category domain.BookingType) (*domain.ListingAllowance, error)
	CalculateUpgradeCost(pointsToUse int) (domain.UpgradeCost, error)
	PurchaseListingUpgrade(ctx context.Context, actor domain.Actor, category domain.BookingType, pointsToUse int) (*rewardsservice.UpgradeResult, error)
}

type RewardsHandler struct {
	rewardsService Service
}

func New(rewardsService Service) *RewardsHandler {
	return &RewardsHandler{
		rewardsService: rewardsService,
	}
}

// InitializeRewards godoc
//
//	@Summary		Initialize the rewards record
//	@Description	Creates a zero-point record for the caller's role. Returns the existing one unchanged.
//	@Tags			Rewards
//	@Security		BearerAuth
//	@Produce		json
//	@Success		201	{object}	dto.RewardsResponseDTO	"Rewards"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/rewards [post]
func (h *RewardsHandler) InitializeRewards(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.RequestActor(w, r)
	if !ok {
		return
	}

	rw, err := h.rewardsService.InitializeUserRewards(r.Context(), actor.UserID, actor.Role)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewRewardsResponse(rw))
}

// GetRewards godoc
//
//	@Summary		Get points, limits and history
//	@Tags			Rewards
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.RewardsResponseDTO	"Rewards"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		404	{object}	utils.Response			"Rewards not initialized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/rewards [get]
func (h *RewardsHandler) GetRewards(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.RequestActor(w, r)
	if !ok {
		return
	}

	rw, err := h.rewardsService.GetRewards(r.Context(), actor.UserID)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewRewardsResponse(rw))
}

// CanCreateListing godoc
//
//	@Summary		Check the listing cap for a category
//	@Tags			Rewards
//	@Security		BearerAuth
//	@Produce		json
//	@Param			category	path		string							true	"Listing category"	Enums(stays, experiences, services)
//	@Success		200			{object}	dto.ListingAllowanceResponseDTO	"Count against limit"
//	@Failure		400			{object}	utils.Response					"Unknown category"
//	@Failure		401			{object}	utils.Response					"User not authorized"
//	@Failure		403			{object}	utils.Response					"Hosts only"
//	@Failure		500			{object}	utils.Response					"Internal server error"
//	@Router			/api/rewards/listing-limit/{category} [get]
func (h *RewardsHandler) CanCreateListing(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.RequestActor(w, r)
	if !ok {
		return
	}

	category := domain.BookingType(chi.URLParam(r, "category"))
	allowance, err := h.rewardsService.CanCreateListing(r.Context(), actor.UserID, category)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewListingAllowanceResponse(allowance))
}

// UpgradeCost godoc
//
//	@Summary		Quote a listing-limit upgrade
//	@Tags			Rewards
//	@Security		BearerAuth
//	@Produce		json
//	@Param			points	query		int							false	"Points to redeem"
//	@Success		200		{object}	dto.UpgradeCostResponseDTO	"Cost after points"
//	@Failure		400		{object}	utils.Response				"Invalid points"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Router			/api/rewards/upgrade-cost [get]
func (h *RewardsHandler) UpgradeCost(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.RequestActor(w, r); !ok {
		return
	}

	points := 0
	if raw := r.URL.Query().Get("points"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "points must be a number")
			return
		}
		points = n
	}

	cost, err := h.rewardsService.CalculateUpgradeCost(points)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewUpgradeCostResponse(cost))
}

// PurchaseUpgrade godoc
//
//	@Summary		Buy a listing-limit upgrade
//	@Description	Redeems the points and charges the rest of the cost to the wallet in one transaction.
//	@Tags			Rewards
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UpgradeRequestDTO	true	"Category and points"
//	@Success		200		{object}	dto.UpgradeResponseDTO	"Upgrade applied"
//	@Failure		400		{object}	utils.Response			"Invalid request"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		402		{object}	utils.Response			"Not enough points or funds"
//	@Failure		403		{object}	utils.Response			"Hosts only"
//	@Failure		404		{object}	utils.Response			"Rewards or wallet not found"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/rewards/upgrade [post]
func (h *RewardsHandler) PurchaseUpgrade(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.RequestActor(w, r)
	if !ok {
		return
	}

	var req dto.UpgradeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}

	result, err := h.rewardsService.PurchaseListingUpgrade(r.Context(), actor, domain.BookingType(req.Category), req.Points)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewUpgradeResponse(result))
}
