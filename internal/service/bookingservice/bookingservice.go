package bookingservice

//go:generate mockgen -source=bookingservice.go -destination=mock_bookingservice.go -package=bookingservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/bookingledger/internal/domain"
	"github.com/GlebRadaev/bookingledger/internal/pg"
)

type Repo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetForUpdate(ctx context.Context, id string) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, b *domain.Booking, from domain.BookingStatus) (bool, error)
	ListByGuest(ctx context.Context, guestID string, status domain.BookingStatus) ([]domain.Booking, error)
	ListByHost(ctx context.Context, hostID string, status domain.BookingStatus) ([]domain.Booking, error)
}

type ListingRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Listing, error)
	ReserveDates(ctx context.Context, listingID, bookingID string, dates []time.Time) error
	ReleaseDates(ctx context.Context, bookingID string) (int64, error)
}

type Ledger interface {
	CapturePayment(ctx context.Context, b *domain.Booking) error
}

type FeePolicy interface {
	CalculateServiceFee(ctx context.Context, amount decimal.Decimal, category domain.BookingType) (fee, percentage decimal.Decimal, err error)
}

type Outbox interface {
	Enqueue(ctx context.Context, events ...domain.OutboxEvent) error
}

type Dispatcher interface {
	Dispatch(ctx context.Context, events []domain.OutboxEvent)
}

type Service struct {
	repo       Repo
	listings   ListingRepo
	ledger     Ledger
	fees       FeePolicy
	outbox     Outbox
	dispatcher Dispatcher
	txManager  pg.TXManager
	nowFn      func() time.Time
}

func New(
	repo Repo,
	listings ListingRepo,
	ledger Ledger,
	fees FeePolicy,
	outbox Outbox,
	dispatcher Dispatcher,
	txManager pg.TXManager,
) *Service {
	return &Service{
		repo:       repo,
		listings:   listings,
		ledger:     ledger,
		fees:       fees,
		outbox:     outbox,
		dispatcher: dispatcher,
		txManager:  txManager,
		nowFn:      time.Now,
	}
}

type CreateBookingInput struct {
	ListingID   string
	Type        domain.BookingType
	Schedule    domain.Schedule
	Guests      int
	TotalAmount decimal.Decimal
	PointsUsed  int
}

func (s *Service) CreateBooking(ctx context.Context, actor domain.Actor, in CreateBookingInput) (*domain.Booking, error) {
	now := s.nowFn().UTC()
	if err := validateInput(in, now); err != nil {
		return nil, err
	}

	listing, err := s.listings.GetByID(ctx, in.ListingID)
	if err != nil {
		zap.L().Error("failed to load listing", zap.String("listing_id", in.ListingID), zap.Error(err))
		return nil, err
	}
	if listing == nil {
		return nil, fmt.Errorf("listing %s: %w", in.ListingID, domain.ErrNotFound)
	}
	if listing.Category != in.Type {
		return nil, domain.Validationf("listing %s is a %s listing, not %s", listing.ID, listing.Category, in.Type)
	}
	if listing.HostID == actor.UserID {
		return nil, fmt.Errorf("%w: hosts cannot book their own listing", domain.ErrForbidden)
	}

	fee, pct, err := s.fees.CalculateServiceFee(ctx, in.TotalAmount, in.Type)
	if err != nil {
		return nil, err
	}

	b := &domain.Booking{
		ID:            uuid.NewString(),
		GuestID:       actor.UserID,
		HostID:        listing.HostID,
		ListingID:     listing.ID,
		Type:          in.Type,
		Status:        domain.StatusPending,
		Schedule:      in.Schedule,
		Guests:        in.Guests,
		TotalAmount:   in.TotalAmount,
		ServiceFee:    fee,
		FeePercentage: pct,
		PointsUsed:    in.PointsUsed,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	event, err := domain.NewOutboxEvent(domain.EventNotify, domain.NotifyPayload{
		UserID: b.HostID, Kind: domain.NotifyBookingRequested, BookingID: b.ID,
	}, now)
	if err != nil {
		return nil, err
	}
	events := []domain.OutboxEvent{event}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, b); err != nil {
			return err
		}
		if err := s.listings.ReserveDates(ctx, listing.ID, b.ID, in.Schedule.Dates()); err != nil {
			return err
		}
		return s.outbox.Enqueue(ctx, events...)
	})
	if err != nil {
		if !errors.Is(err, domain.ErrInvalidState) {
			zap.L().Error("failed to create booking", zap.Error(err))
		}
		return nil, err
	}

	s.dispatcher.Dispatch(context.WithoutCancel(ctx), events)
	return b, nil
}

func validateInput(in CreateBookingInput, now time.Time) error {
	if !in.Type.Valid() {
		return domain.Validationf("unknown booking type %q", in.Type)
	}
	if in.ListingID == "" {
		return domain.Validationf("listing id is required")
	}
	if in.Guests <= 0 {
		return domain.Validationf("guests must be positive")
	}
	if !in.TotalAmount.IsPositive() {
		return domain.Validationf("total amount must be positive")
	}
	if !domain.WholeCents(in.TotalAmount) {
		return domain.Validationf("total amount has more than %d decimal places", domain.AmountScale)
	}
	if in.PointsUsed < 0 {
		return domain.Validationf("points used cannot be negative")
	}

	today := domain.Day(now)
	switch sch := in.Schedule.(type) {
	case domain.StaySchedule:
		if in.Type != domain.BookingTypeStays {
			return domain.Validationf("%s bookings need a date and time slot", in.Type)
		}
		if !domain.Day(sch.CheckOut).After(domain.Day(sch.CheckIn)) {
			return domain.Validationf("check-out must be after check-in")
		}
		if sch.StartDate().Before(today) {
			return domain.Validationf("check-in is in the past")
		}
	case domain.SlotSchedule:
		if in.Type == domain.BookingTypeStays {
			return domain.Validationf("stays need check-in and check-out dates")
		}
		if sch.Time == "" {
			return domain.Validationf("selected time is required")
		}
		if sch.StartDate().Before(today) {
			return domain.Validationf("selected date is in the past")
		}
	default:
		return domain.Validationf("schedule is required")
	}
	return nil
}

func (s *Service) GetBooking(ctx context.Context, actor domain.Actor, id string) (*domain.Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get booking", zap.String("booking_id", id), zap.Error(err))
		return nil, err
	}
	if b == nil {
		return nil, fmt.Errorf("booking %s: %w", id, domain.ErrNotFound)
	}
	if actor.Role != domain.RoleAdmin && actor.UserID != b.GuestID && actor.UserID != b.HostID {
		return nil, domain.ErrForbidden
	}
	return b, nil
}

// ListBookings returns the bookings of the actor: hosts see bookings of their
// listings, everyone else the bookings they made.
func (s *Service) ListBookings(ctx context.Context, actor domain.Actor, status domain.BookingStatus) ([]domain.Booking, error) {
	if status != "" && !status.Valid() {
		return nil, domain.Validationf("unknown status %q", status)
	}

	var (
		list []domain.Booking
		err  error
	)
	if actor.Role == domain.RoleHost {
		list, err = s.repo.ListByHost(ctx, actor.UserID, status)
	} else {
		list, err = s.repo.ListByGuest(ctx, actor.UserID, status)
	}
	if err != nil {
		zap.L().Error("failed to list bookings", zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *Service) Confirm(ctx context.Context, actor domain.Actor, id string) (*domain.Booking, error) {
	return s.transition(ctx, actor, id, domain.TransitionConfirm, "")
}

func (s *Service) Reject(ctx context.Context, actor domain.Actor, id, reason string) (*domain.Booking, error) {
	if reason == "" {
		return nil, domain.Validationf("rejection reason is required")
	}
	return s.transition(ctx, actor, id, domain.TransitionReject, reason)
}

// Complete captures the payment. The ledger writes and the status change
// commit together; rewards and notifications follow through the outbox.
func (s *Service) Complete(ctx context.Context, actor domain.Actor, id string) (*domain.Booking, error) {
	return s.transition(ctx, actor, id, domain.TransitionComplete, "")
}

func (s *Service) RequestRefund(ctx context.Context, actor domain.Actor, id, reason string) (*domain.Booking, error) {
	return s.transition(ctx, actor, id, domain.TransitionRequestRefund, reason)
}

func (s *Service) ApproveRefund(ctx context.Context, actor domain.Actor, id string) (*domain.Booking, error) {
	return s.transition(ctx, actor, id, domain.TransitionApproveRefund, "")
}

func (s *Service) DenyRefund(ctx context.Context, actor domain.Actor, id, reason string) (*domain.Booking, error) {
	if reason == "" {
		return nil, domain.Validationf("denial reason is required")
	}
	return s.transition(ctx, actor, id, domain.TransitionDenyRefund, reason)
}

func (s *Service) transition(ctx context.Context, actor domain.Actor, id string, t domain.Transition, reason string) (*domain.Booking, error) {
	now := s.nowFn().UTC()

	var (
		booking *domain.Booking
		events  []domain.OutboxEvent
	)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		b, err := s.repo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if b == nil {
			return fmt.Errorf("booking %s: %w", id, domain.ErrNotFound)
		}
		if err := domain.Authorize(b, actor.UserID, t); err != nil {
			return err
		}
		from := b.Status
		if err := domain.CheckTransition(from, t); err != nil {
			return err
		}

		switch t {
		case domain.TransitionRequestRefund:
			if !domain.Day(now).Before(b.Schedule.StartDate()) {
				return fmt.Errorf("%w: booking %s starts %s", domain.ErrTooLate, b.ID, b.Schedule.StartDate().Format(time.DateOnly))
			}
		case domain.TransitionComplete:
			if err := s.ledger.CapturePayment(ctx, b); err != nil {
				return err
			}
		case domain.TransitionReject, domain.TransitionApproveRefund:
			if _, err := s.listings.ReleaseDates(ctx, b.ID); err != nil {
				return err
			}
		}

		b.Apply(t, reason, actor.UserID, now)
		ok, err := s.repo.UpdateStatus(ctx, b, from)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: booking %s changed concurrently", domain.ErrInvalidState, b.ID)
		}

		events, err = followUps(b, t, now)
		if err != nil {
			return err
		}
		if err := s.outbox.Enqueue(ctx, events...); err != nil {
			return err
		}
		booking = b
		return nil
	})
	if err != nil {
		if !isExpected(err) {
			zap.L().Error("booking transition failed",
				zap.String("booking_id", id),
				zap.String("transition", string(t)),
				zap.Error(err),
			)
		}
		return nil, err
	}

	zap.L().Info("booking transitioned",
		zap.String("booking_id", booking.ID),
		zap.String("transition", string(t)),
		zap.String("status", string(booking.Status)),
	)
	s.dispatcher.Dispatch(context.WithoutCancel(ctx), events)
	return booking, nil
}

func isExpected(err error) bool {
	for _, target := range []error{
		domain.ErrForbidden, domain.ErrInvalidState, domain.ErrInsufficientFunds,
		domain.ErrTooLate, domain.ErrNotFound, domain.ErrValidation,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

type job struct {
	kind    domain.EventKind
	payload any
}

// followUps lists the post-commit jobs of a transition.
func followUps(b *domain.Booking, t domain.Transition, now time.Time) ([]domain.OutboxEvent, error) {
	var jobs []job
	notify := func(userID string, kind domain.NotificationKind, params map[string]string) {
		jobs = append(jobs, job{domain.EventNotify, domain.NotifyPayload{
			UserID: userID, Kind: kind, BookingID: b.ID, Params: params,
		}})
	}
	points := func(kind domain.EventKind, userID string, role domain.Role, amount int) {
		jobs = append(jobs, job{kind, domain.PointsPayload{
			UserID: userID, Role: role, BookingID: b.ID, ListingType: string(b.Type), Points: amount,
		}})
	}

	switch t {
	case domain.TransitionConfirm:
		notify(b.GuestID, domain.NotifyBookingConfirmed, nil)
	case domain.TransitionReject:
		notify(b.GuestID, domain.NotifyBookingRejected, map[string]string{"reason": b.RejectionReason})
	case domain.TransitionComplete:
		notify(b.GuestID, domain.NotifyBookingCompleted, nil)
		notify(b.HostID, domain.NotifyBookingCompleted, nil)
		points(domain.EventPointsAward, b.GuestID, domain.RoleGuest, domain.CompletionRewardPoints)
		points(domain.EventPointsAward, b.HostID, domain.RoleHost, domain.CompletionRewardPoints)
		if b.PointsUsed > 0 {
			points(domain.EventPointsDeduct, b.GuestID, domain.RoleGuest, b.PointsUsed)
		}
	case domain.TransitionRequestRefund:
		notify(b.HostID, domain.NotifyRefundRequested, map[string]string{"reason": b.RefundRequestReason})
	case domain.TransitionApproveRefund:
		notify(b.GuestID, domain.NotifyRefundApproved, nil)
	case domain.TransitionDenyRefund:
		notify(b.GuestID, domain.NotifyRefundDenied, map[string]string{"reason": b.RefundDenialReason})
	}

	events := make([]domain.OutboxEvent, 0, len(jobs))
	for _, j := range jobs {
		e, err := domain.NewOutboxEvent(j.kind, j.payload, now)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, nil
}
