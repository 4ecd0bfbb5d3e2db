package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingType string

const (
	BookingTypeStays       BookingType = "stays"
	BookingTypeExperiences BookingType = "experiences"
	BookingTypeServices    BookingType = "services"
)

// BookingTypes lists every category in a stable order.
var BookingTypes = []BookingType{BookingTypeStays, BookingTypeExperiences, BookingTypeServices}

func (t BookingType) Valid() bool {
	switch t {
	case BookingTypeStays, BookingTypeExperiences, BookingTypeServices:
		return true
	}
	return false
}

type BookingStatus string

const (
	StatusPending         BookingStatus = "pending"
	StatusConfirmed       BookingStatus = "confirmed"
	StatusCompleted       BookingStatus = "completed"
	StatusRejected        BookingStatus = "rejected"
	StatusCancelled       BookingStatus = "cancelled"
	StatusRefundRequested BookingStatus = "refund_requested"
)

var BookingStatuses = []BookingStatus{
	StatusPending, StatusConfirmed, StatusCompleted, StatusRejected, StatusCancelled, StatusRefundRequested,
}

func (s BookingStatus) Valid() bool {
	for _, st := range BookingStatuses {
		if st == s {
			return true
		}
	}
	return false
}

// Schedule is the type-specific part of a booking. StaySchedule belongs to
// stays, SlotSchedule to experiences and services.
type Schedule interface {
	// StartDate is the day the booking begins, truncated to midnight UTC.
	StartDate() time.Time
	// Dates are the calendar days the booking occupies on the listing.
	Dates() []time.Time
	isSchedule()
}

type StaySchedule struct {
	CheckIn  time.Time
	CheckOut time.Time
}

func (s StaySchedule) StartDate() time.Time { return Day(s.CheckIn) }

// Dates returns every night of the stay, checkout day excluded.
func (s StaySchedule) Dates() []time.Time {
	var dates []time.Time
	for d := Day(s.CheckIn); d.Before(Day(s.CheckOut)); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

func (StaySchedule) isSchedule() {}

type SlotSchedule struct {
	Date time.Time
	Time string
}

func (s SlotSchedule) StartDate() time.Time { return Day(s.Date) }

func (s SlotSchedule) Dates() []time.Time { return []time.Time{Day(s.Date)} }

func (SlotSchedule) isSchedule() {}

// Day truncates t to midnight UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type Booking struct {
	ID        string
	GuestID   string
	HostID    string
	ListingID string
	Type      BookingType
	Status    BookingStatus
	Schedule  Schedule
	Guests    int

	TotalAmount   decimal.Decimal
	ServiceFee    decimal.Decimal
	FeePercentage decimal.Decimal
	PointsUsed    int

	RejectionReason     string
	RefundRequestReason string
	RefundRequestedBy   string
	RefundDenialReason  string

	CreatedAt         time.Time
	UpdatedAt         time.Time
	ConfirmedAt       *time.Time
	CompletedAt       *time.Time
	RejectedAt        *time.Time
	RefundRequestedAt *time.Time
	RefundApprovedAt  *time.Time
	RefundDeniedAt    *time.Time
}

// GrandTotal is what the guest pays: the host price plus the platform fee.
func (b *Booking) GrandTotal() decimal.Decimal {
	return b.TotalAmount.Add(b.ServiceFee)
}

type Listing struct {
	ID        string
	HostID    string
	Category  BookingType
	Title     string
	CreatedAt time.Time
}
