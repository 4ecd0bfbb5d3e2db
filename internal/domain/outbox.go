package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type EventKind string

const (
	EventNotify       EventKind = "notify"
	EventPointsAward  EventKind = "points.award"
	EventPointsDeduct EventKind = "points.deduct"
)

const (
	OutboxStatusPending = "pending"
	OutboxStatusDone    = "done"
	OutboxStatusFailed  = "failed"
)

// OutboxEvent is a follow-up job committed together with a booking transition
// and executed after the commit.
type OutboxEvent struct {
	ID          string
	Kind        EventKind
	Payload     []byte
	Status      string
	Attempts    int
	LastError   string
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

type NotificationKind string

const (
	NotifyBookingRequested NotificationKind = "booking_requested"
	NotifyBookingConfirmed NotificationKind = "booking_confirmed"
	NotifyBookingRejected  NotificationKind = "booking_rejected"
	NotifyBookingCompleted NotificationKind = "booking_completed"
	NotifyRefundRequested  NotificationKind = "refund_requested"
	NotifyRefundApproved   NotificationKind = "refund_approved"
	NotifyRefundDenied     NotificationKind = "refund_denied"
)

type NotifyPayload struct {
	UserID    string            `json:"user_id"`
	Kind      NotificationKind  `json:"kind"`
	BookingID string            `json:"booking_id,omitempty"`
	Params    map[string]string `json:"params,omitempty"`
}

type PointsPayload struct {
	UserID      string `json:"user_id"`
	Role        Role   `json:"role"`
	BookingID   string `json:"booking_id"`
	ListingType string `json:"listing_type"`
	Points      int    `json:"points"`
}

func NewOutboxEvent(kind EventKind, payload any, now time.Time) (OutboxEvent, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return OutboxEvent{}, fmt.Errorf("marshal %s payload: %w", kind, err)
	}
	return OutboxEvent{
		ID:        uuid.NewString(),
		Kind:      kind,
		Payload:   body,
		Status:    OutboxStatusPending,
		CreatedAt: now,
	}, nil
}

type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	Kind      NotificationKind `json:"kind"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	BookingID string           `json:"booking_id,omitempty"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"created_at"`
}
