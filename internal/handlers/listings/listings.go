package listings

//go:generate mockgen -source=listings.go -destination=mock_listings.go -package=listings

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/bookingledger/internal/domain"
	"github.com/GlebRadaev/bookingledger/internal/dto"
	"github.com/GlebRadaev/bookingledger/pkg/auth"
	"github.com/GlebRadaev/bookingledger/pkg/utils"
	"github.com/GlebRadaev/bookingledger/pkg/validate"
)

type Service interface {
	CreateListing(ctx context.Context, actor domain.Actor, category domain.BookingType, title string) (*domain.Listing, error)
	GetListing(ctx context.Context, id string) (*domain.Listing, error)
}

type ListingHandler struct {
	listingService Service
}

func New(listingService Service) *ListingHandler {
	return &ListingHandler{
		listingService: listingService,
	}
}

// CreateListing godoc
//
//	@Summary		Publish a listing
//	@Description	Refused once the host reached the listing limit of the category.
//	@Tags			Listings
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateListingRequestDTO	true	"Listing"
//	@Success		201		{object}	dto.ListingResponseDTO		"Listing created"
//	@Failure		400		{object}	utils.Response				"Invalid request"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		403		{object}	utils.Response				"Not a host or limit reached"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/listings [post]
func (h *ListingHandler) CreateListing(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.RequestActor(w, r)
	if !ok {
		return
	}

	var req dto.CreateListingRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}

	listing, err := h.listingService.CreateListing(r.Context(), actor, domain.BookingType(req.Category), req.Title)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewListingResponse(listing))
}

// GetListing godoc
//
//	@Summary	Get a listing
//	@Tags		Listings
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string					true	"Listing ID"
//	@Success	200	{object}	dto.ListingResponseDTO	"Listing"
//	@Failure	401	{object}	utils.Response			"User not authorized"
//	@Failure	404	{object}	utils.Response			"Listing not found"
//	@Failure	500	{object}	utils.Response			"Internal server error"
//	@Router		/api/listings/{id} [get]
func (h *ListingHandler) GetListing(w http.ResponseWriter, r *http.Request) {
	listing, err := h.listingService.GetListing(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewListingResponse(listing))
}
