package notificationservice

//go:generate mockgen -source=notificationservice.go -destination=mock_notificationservice.go -package=notificationservice

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/bookingledger/internal/domain"
)

type Repo interface {
	CreateNotification(ctx context.Context, n *domain.Notification) (bool, error)
	ListByUser(ctx context.Context, userID string, unreadOnly bool) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id, userID string) (bool, error)
}

type Sender interface {
	Send(ctx context.Context, n *domain.Notification) error
}

type template struct {
	title   string
	message string
}

var templates = map[domain.NotificationKind]template{
	domain.NotifyBookingRequested: {"New booking request", "Booking %s is waiting for your confirmation."},
	domain.NotifyBookingConfirmed: {"Booking confirmed", "Your booking %s has been confirmed."},
	domain.NotifyBookingRejected:  {"Booking rejected", "Your booking %s was rejected."},
	domain.NotifyBookingCompleted: {"Booking completed", "Booking %s is complete and the payment was captured."},
	domain.NotifyRefundRequested:  {"Refund requested", "The guest asked to cancel booking %s."},
	domain.NotifyRefundApproved:   {"Refund approved", "Your cancellation of booking %s was approved."},
	domain.NotifyRefundDenied:     {"Refund denied", "Your cancellation of booking %s was denied."},
}

type Service struct {
	repo   Repo
	sender Sender
	nowFn  func() time.Time
}

func New(repo Repo, sender Sender) *Service {
	return &Service{
		repo:   repo,
		sender: sender,
		nowFn:  time.Now,
	}
}

// HandleNotify processes a notify outbox event: it stores the in-app
// notification under the event id and sends the email.
func (s *Service) HandleNotify(ctx context.Context, e domain.OutboxEvent) error {
	var p domain.NotifyPayload
	if err := json.Unmarshal(e.Payload, &p); err != nil {
		return fmt.Errorf("decode notify payload: %w", err)
	}

	n, err := render(e.ID, p, s.nowFn().UTC())
	if err != nil {
		return err
	}
	created, err := s.repo.CreateNotification(ctx, n)
	if err != nil {
		return err
	}
	if !created {
		zap.L().Debug("notification already stored", zap.String("notification_id", n.ID))
	}

	if err := s.sender.Send(ctx, n); err != nil {
		zap.L().Warn("email delivery failed", zap.String("notification_id", n.ID), zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) ListNotifications(ctx context.Context, actor domain.Actor, unreadOnly bool) ([]domain.Notification, error) {
	list, err := s.repo.ListByUser(ctx, actor.UserID, unreadOnly)
	if err != nil {
		zap.L().Error("failed to list notifications", zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *Service) MarkNotificationRead(ctx context.Context, actor domain.Actor, id string) error {
	ok, err := s.repo.MarkRead(ctx, id, actor.UserID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("notification %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func render(id string, p domain.NotifyPayload, now time.Time) (*domain.Notification, error) {
	tpl, ok := templates[p.Kind]
	if !ok {
		return nil, fmt.Errorf("unknown notification kind %q", p.Kind)
	}
	message := fmt.Sprintf(tpl.message, p.BookingID)
	if reason := p.Params["reason"]; reason != "" {
		message += " Reason: " + reason
	}
	return &domain.Notification{
		ID:        id,
		UserID:    p.UserID,
		Kind:      p.Kind,
		Title:     tpl.title,
		Message:   message,
		BookingID: p.BookingID,
		CreatedAt: now,
	}, nil
}
