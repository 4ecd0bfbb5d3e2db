package bookings

//go:generate mockgen -source=bookings.go -destination=mock_bookings.go -package=bookings

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/bookingledger/internal/domain"
	"github.com/GlebRadaev/bookingledger/internal/dto"
	"github.com/GlebRadaev/bookingledger/internal/service/bookingservice"
	"github.com/GlebRadaev/bookingledger/pkg/auth"
	"github.com/GlebRadaev/bookingledger/pkg/utils"
	"github.com/GlebRadaev/bookingledger/pkg/validate"
)

type Service interface {
	CreateBooking(ctx context.Context, actor domain.Actor, in bookingservice.CreateBookingInput) (*domain.Booking, error)
	GetBooking(ctx context.Context, actor domain.Actor, id string) (*domain.Booking, error)
	ListBookings(ctx context.Context, actor domain.Actor, status domain.BookingStatus) ([]domain.Booking, error)
	Confirm(ctx context.Context, actor domain.Actor, id string) (*domain.Booking, error)
	Reject(ctx context.Context, actor domain.Actor, id, reason string) (*domain.Booking, error)
	Complete(ctx context.Context, actor domain.Actor, id string) (*domain.Booking, error)
	RequestRefund(ctx context.Context, actor domain.Actor, id, reason string) (*domain.Booking, error)
	ApproveRefund(ctx context.Context, actor domain.Actor, id string) (*domain.Booking, error)
	DenyRefund(ctx context.Context, actor domain.Actor, id, reason string) (*domain.Booking, error)
}

type BookingHandler struct {
	bookingService Service
}

func New(bookingService Service) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
	}
}

// CreateBooking godoc
//
//	@Summary		Create a booking
//	@Description	Request a stay, experience or service on someone else's listing. The service fee is computed and frozen at creation and the listing dates are reserved.
//	@Tags			Bookings
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateBookingRequestDTO	true	"Booking request"
//	@Success		201		{object}	dto.BookingResponseDTO		"Booking created in pending state"
//	@Failure		400		{object}	utils.Response				"Invalid request"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		403		{object}	utils.Response				"Own listing"
//	@Failure		404		{object}	utils.Response				"Listing not found"
//	@Failure		409		{object}	utils.Response				"Dates already taken"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/bookings [post]
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.RequestActor(w, r)
	if !ok {
		return
	}

	var req dto.CreateBookingRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	schedule, err := req.Schedule()
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}

	booking, err := h.bookingService.CreateBooking(r.Context(), actor, bookingservice.CreateBookingInput{
		ListingID:   req.ListingID,
		Type:        domain.BookingType(req.Type),
		Schedule:    schedule,
		Guests:      req.Guests,
		TotalAmount: req.TotalAmount,
		PointsUsed:  req.PointsUsed,
	})
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewBookingResponse(booking))
}

// GetBooking godoc
//
//	@Summary		Get a booking
//	@Description	Only the guest, the host or an admin can read a booking.
//	@Tags			Bookings
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"Booking ID"
//	@Success		200	{object}	dto.BookingResponseDTO	"Booking"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		403	{object}	utils.Response			"Not a party to the booking"
//	@Failure		404	{object}	utils.Response			"Booking not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/bookings/{id} [get]
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.RequestActor(w, r)
	if !ok {
		return
	}

	booking, err := h.bookingService.GetBooking(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewBookingResponse(booking))
}

// ListBookings godoc
//
//	@Summary		List bookings
//	@Description	Guests see their own bookings, hosts see bookings on their listings. Newest first.
//	@Tags			Bookings
//	@Security		BearerAuth
//	@Produce		json
//	@Param			status	query		string					false	"Filter by status"	Enums(pending, confirmed, completed, rejected, cancelled, refund_requested)
//	@Success		200		{array}		dto.BookingResponseDTO	"Bookings"
//	@Failure		400		{object}	utils.Response			"Unknown status"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/bookings [get]
func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.RequestActor(w, r)
	if !ok {
		return
	}

	status := domain.BookingStatus(r.URL.Query().Get("status"))
	bookings, err := h.bookingService.ListBookings(r.Context(), actor, status)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewBookingListResponse(bookings))
}

// Confirm godoc
//
//	@Summary		Confirm a pending booking
//	@Tags			Bookings
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"Booking ID"
//	@Success		200	{object}	dto.BookingResponseDTO	"Confirmed booking"
//	@Failure		403	{object}	utils.Response			"Not the host"
//	@Failure		404	{object}	utils.Response			"Booking not found"
//	@Failure		409	{object}	utils.Response			"Booking is not pending"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/bookings/{id}/confirm [post]
func (h *BookingHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(ctx context.Context, actor domain.Actor, id, _ string) (*domain.Booking, error) {
		return h.bookingService.Confirm(ctx, actor, id)
	}, false)
}

// Reject godoc
//
//	@Summary		Reject a pending booking
//	@Description	Frees the reserved dates. A reason is required.
//	@Tags			Bookings
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Booking ID"
//	@Param			request	body		dto.ReasonRequestDTO	true	"Rejection reason"
//	@Success		200		{object}	dto.BookingResponseDTO	"Rejected booking"
//	@Failure		400		{object}	utils.Response			"Missing reason"
//	@Failure		403		{object}	utils.Response			"Not the host"
//	@Failure		404		{object}	utils.Response			"Booking not found"
//	@Failure		409		{object}	utils.Response			"Booking is not pending"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/bookings/{id}/reject [post]
func (h *BookingHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.bookingService.Reject, true)
}

// Complete godoc
//
//	@Summary		Complete a confirmed booking
//	@Description	Debits the guest the total plus the frozen service fee, credits the host, books the platform revenue and awards points to both parties.
//	@Tags			Bookings
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"Booking ID"
//	@Success		200	{object}	dto.BookingResponseDTO	"Completed booking"
//	@Failure		402	{object}	utils.Response			"Guest wallet cannot cover the charge"
//	@Failure		403	{object}	utils.Response			"Not the host"
//	@Failure		404	{object}	utils.Response			"Booking or wallet not found"
//	@Failure		409	{object}	utils.Response			"Booking is not confirmed"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/bookings/{id}/complete [post]
func (h *BookingHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(ctx context.Context, actor domain.Actor, id, _ string) (*domain.Booking, error) {
		return h.bookingService.Complete(ctx, actor, id)
	}, false)
}

// RequestRefund godoc
//
//	@Summary		Request a cancellation
//	@Description	Allowed for pending or confirmed bookings strictly before the start date.
//	@Tags			Bookings
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Booking ID"
//	@Param			request	body		dto.ReasonRequestDTO	false	"Cancellation reason"
//	@Success		200		{object}	dto.BookingResponseDTO	"Booking awaiting the host decision"
//	@Failure		403		{object}	utils.Response			"Not the guest"
//	@Failure		404		{object}	utils.Response			"Booking not found"
//	@Failure		409		{object}	utils.Response			"Booking cannot be cancelled"
//	@Failure		422		{object}	utils.Response			"Start date reached"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/bookings/{id}/refund-request [post]
func (h *BookingHandler) RequestRefund(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.bookingService.RequestRefund, true)
}

// ApproveRefund godoc
//
//	@Summary		Approve a cancellation
//	@Tags			Bookings
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"Booking ID"
//	@Success		200	{object}	dto.BookingResponseDTO	"Cancelled booking"
//	@Failure		403	{object}	utils.Response			"Not the host"
//	@Failure		404	{object}	utils.Response			"Booking not found"
//	@Failure		409	{object}	utils.Response			"No refund requested"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/bookings/{id}/refund-approve [post]
func (h *BookingHandler) ApproveRefund(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(ctx context.Context, actor domain.Actor, id, _ string) (*domain.Booking, error) {
		return h.bookingService.ApproveRefund(ctx, actor, id)
	}, false)
}

// DenyRefund godoc
//
//	@Summary		Deny a cancellation
//	@Description	The booking goes back to confirmed. A reason is required.
//	@Tags			Bookings
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Booking ID"
//	@Param			request	body		dto.ReasonRequestDTO	true	"Denial reason"
//	@Success		200		{object}	dto.BookingResponseDTO	"Confirmed booking"
//	@Failure		400		{object}	utils.Response			"Missing reason"
//	@Failure		403		{object}	utils.Response			"Not the host"
//	@Failure		404		{object}	utils.Response			"Booking not found"
//	@Failure		409		{object}	utils.Response			"No refund requested"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/bookings/{id}/refund-deny [post]
func (h *BookingHandler) DenyRefund(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.bookingService.DenyRefund, true)
}

type transitionFn func(ctx context.Context, actor domain.Actor, id, reason string) (*domain.Booking, error)

func (h *BookingHandler) transition(w http.ResponseWriter, r *http.Request, fn transitionFn, withReason bool) {
	actor, ok := auth.RequestActor(w, r)
	if !ok {
		return
	}

	var req dto.ReasonRequestDTO
	if withReason {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			utils.RespondWithServiceError(w, err)
			return
		}
	}

	booking, err := fn(r.Context(), actor, chi.URLParam(r, "id"), req.Reason)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewBookingResponse(booking))
}
