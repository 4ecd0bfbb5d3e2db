package notifications

//go:generate mockgen -source=notifications.go -destination=mock_notifications.go -package=notifications

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/bookingledger/internal/domain"
	"github.com/GlebRadaev/bookingledger/pkg/auth"
	"github.com/GlebRadaev/bookingledger/pkg/utils"
)

type Service interface {
	ListNotifications(ctx context.Context, actor domain.Actor, unreadOnly bool) ([]domain.Notification, error)
	MarkNotificationRead(ctx context.Context, actor domain.Actor, id string) error
}

type NotificationHandler struct {
	notificationService Service
}

func New(notificationService Service) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

// ListNotifications godoc
//
//	@Summary		Inbox
//	@Tags			Notifications
//	@Security		BearerAuth
//	@Produce		json
//	@Param			unread	query		bool				false	"Only unread"
//	@Success		200		{array}		domain.Notification	"Notifications, newest first"
//	@Failure		400		{object}	utils.Response		"Invalid filter"
//	@Failure		401		{object}	utils.Response		"User not authorized"
//	@Failure		500		{object}	utils.Response		"Internal server error"
//	@Router			/api/notifications [get]
func (h *NotificationHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.RequestActor(w, r)
	if !ok {
		return
	}

	unreadOnly := false
	if raw := r.URL.Query().Get("unread"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "unread must be a boolean")
			return
		}
		unreadOnly = v
	}

	list, err := h.notificationService.ListNotifications(r.Context(), actor, unreadOnly)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	if list == nil {
		list = []domain.Notification{}
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}

// MarkRead godoc
//
//	@Summary		Mark a notification as read
//	@Tags			Notifications
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path	string	true	"Notification ID"
//	@Success		204
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Notification not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.RequestActor(w, r)
	if !ok {
		return
	}

	if err := h.notificationService.MarkNotificationRead(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
