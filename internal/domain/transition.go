package domain

import (
	"fmt"
	"time"
)

type Transition string

const (
	TransitionConfirm       Transition = "confirm"
	TransitionReject        Transition = "reject"
	TransitionComplete      Transition = "complete"
	TransitionRequestRefund Transition = "request_refund"
	TransitionApproveRefund Transition = "approve_refund"
	TransitionDenyRefund    Transition = "deny_refund"
)

type Party string

const (
	PartyHost  Party = "host"
	PartyGuest Party = "guest"
)

type transitionRule struct {
	from  BookingStatus
	to    BookingStatus
	actor Party
}

var transitionRules = map[Transition]transitionRule{
	TransitionConfirm:       {from: StatusPending, to: StatusConfirmed, actor: PartyHost},
	TransitionReject:        {from: StatusPending, to: StatusRejected, actor: PartyHost},
	TransitionComplete:      {from: StatusConfirmed, to: StatusCompleted, actor: PartyHost},
	TransitionRequestRefund: {from: StatusConfirmed, to: StatusRefundRequested, actor: PartyGuest},
	TransitionApproveRefund: {from: StatusRefundRequested, to: StatusCancelled, actor: PartyHost},
	TransitionDenyRefund:    {from: StatusRefundRequested, to: StatusConfirmed, actor: PartyHost},
}

var Transitions = []Transition{
	TransitionConfirm, TransitionReject, TransitionComplete,
	TransitionRequestRefund, TransitionApproveRefund, TransitionDenyRefund,
}

func (t Transition) From() BookingStatus { return transitionRules[t].from }

func (t Transition) To() BookingStatus { return transitionRules[t].to }

func (t Transition) Actor() Party { return transitionRules[t].actor }

// IsTerminal reports whether no transition leaves s.
func IsTerminal(s BookingStatus) bool {
	for _, rule := range transitionRules {
		if rule.from == s {
			return false
		}
	}
	return true
}

// CheckTransition returns ErrInvalidState unless t may be applied to a booking in status s.
func CheckTransition(s BookingStatus, t Transition) error {
	rule, ok := transitionRules[t]
	if !ok {
		return fmt.Errorf("%w: unknown transition %q", ErrInvalidState, t)
	}
	if rule.from != s {
		return fmt.Errorf("%w: cannot %s a %s booking", ErrInvalidState, t, s)
	}
	return nil
}

// Authorize checks that actorID is the party allowed to drive t on b.
func Authorize(b *Booking, actorID string, t Transition) error {
	switch t.Actor() {
	case PartyHost:
		if actorID == "" || actorID != b.HostID {
			return fmt.Errorf("%w: only the host can %s this booking", ErrForbidden, t)
		}
	case PartyGuest:
		if actorID == "" || actorID != b.GuestID {
			return fmt.Errorf("%w: only the guest can %s this booking", ErrForbidden, t)
		}
	default:
		return fmt.Errorf("%w: unknown transition %q", ErrInvalidState, t)
	}
	return nil
}

// Apply moves b along t and stamps the matching timestamp.
// Guards are checked by the caller.
func (b *Booking) Apply(t Transition, reason, actorID string, now time.Time) {
	b.Status = t.To()
	b.UpdatedAt = now
	switch t {
	case TransitionConfirm:
		b.ConfirmedAt = &now
	case TransitionReject:
		b.RejectionReason = reason
		b.RejectedAt = &now
	case TransitionComplete:
		b.CompletedAt = &now
	case TransitionRequestRefund:
		b.RefundRequestReason = reason
		b.RefundRequestedBy = actorID
		b.RefundRequestedAt = &now
	case TransitionApproveRefund:
		b.RefundApprovedAt = &now
	case TransitionDenyRefund:
		b.RefundDenialReason = reason
		b.RefundDeniedAt = &now
	}
}
