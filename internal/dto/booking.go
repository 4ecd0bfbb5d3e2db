package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/bookingledger/internal/domain"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

type CreateBookingRequestDTO struct {
	ListingID    string          `json:"listing_id" validate:"required" example:"9b2f6c1e-4a55-4a0e-8f5e-1f4d1b7b1c10"`
	Type         string          `json:"type" validate:"required,oneof=stays experiences services" example:"stays"`
	CheckIn      string          `json:"check_in,omitempty" validate:"required_if=Type stays,omitempty,datetime=2006-01-02" example:"2026-03-20"`
	CheckOut     string          `json:"check_out,omitempty" validate:"required_if=Type stays,omitempty,datetime=2006-01-02" example:"2026-03-23"`
	SelectedDate string          `json:"selected_date,omitempty" validate:"required_unless=Type stays,omitempty,datetime=2006-01-02" example:"2026-03-20"`
	SelectedTime string          `json:"selected_time,omitempty" validate:"required_unless=Type stays,omitempty,datetime=15:04" example:"09:30"`
	Guests       int             `json:"guests" validate:"gt=0" example:"2"`
	TotalAmount  decimal.Decimal `json:"total_amount" swaggertype:"string" example:"1000.00"`
	PointsUsed   int             `json:"points_used" validate:"gte=0" example:"0"`
}

// Schedule builds the type-specific schedule. Layouts are checked by the
// validator, so parse errors only surface for requests that skipped it.
func (r CreateBookingRequestDTO) Schedule() (domain.Schedule, error) {
	if domain.BookingType(r.Type) == domain.BookingTypeStays {
		in, err := time.Parse(DateLayout, r.CheckIn)
		if err != nil {
			return nil, domain.Validationf("check_in: %v", err)
		}
		out, err := time.Parse(DateLayout, r.CheckOut)
		if err != nil {
			return nil, domain.Validationf("check_out: %v", err)
		}
		return domain.StaySchedule{CheckIn: in, CheckOut: out}, nil
	}
	date, err := time.Parse(DateLayout, r.SelectedDate)
	if err != nil {
		return nil, domain.Validationf("selected_date: %v", err)
	}
	return domain.SlotSchedule{Date: date, Time: r.SelectedTime}, nil
}

type ReasonRequestDTO struct {
	Reason string `json:"reason" validate:"max=500" example:"Dates no longer available"`
}

type BookingResponseDTO struct {
	ID            string          `json:"id"`
	GuestID       string          `json:"guest_id"`
	HostID        string          `json:"host_id"`
	ListingID     string          `json:"listing_id"`
	Type          string          `json:"type" example:"stays"`
	Status        string          `json:"status" example:"pending"`
	CheckIn       string          `json:"check_in,omitempty" example:"2026-03-20"`
	CheckOut      string          `json:"check_out,omitempty" example:"2026-03-23"`
	SelectedDate  string          `json:"selected_date,omitempty"`
	SelectedTime  string          `json:"selected_time,omitempty"`
	Guests        int             `json:"guests"`
	TotalAmount   decimal.Decimal `json:"total_amount" swaggertype:"string" example:"1000"`
	ServiceFee    decimal.Decimal `json:"service_fee" swaggertype:"string" example:"50"`
	FeePercentage decimal.Decimal `json:"fee_percentage" swaggertype:"string" example:"5"`
	GrandTotal    decimal.Decimal `json:"grand_total" swaggertype:"string" example:"1050"`
	PointsUsed    int             `json:"points_used"`

	RejectionReason     string `json:"rejection_reason,omitempty"`
	RefundRequestReason string `json:"refund_request_reason,omitempty"`
	RefundDenialReason  string `json:"refund_denial_reason,omitempty"`

	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
	ConfirmedAt       *time.Time `json:"confirmed_at,omitempty"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`
	RejectedAt        *time.Time `json:"rejected_at,omitempty"`
	RefundRequestedAt *time.Time `json:"refund_requested_at,omitempty"`
	RefundApprovedAt  *time.Time `json:"refund_approved_at,omitempty"`
	RefundDeniedAt    *time.Time `json:"refund_denied_at,omitempty"`
}

func NewBookingResponse(b *domain.Booking) BookingResponseDTO {
	resp := BookingResponseDTO{
		ID:                  b.ID,
		GuestID:             b.GuestID,
		HostID:              b.HostID,
		ListingID:           b.ListingID,
		Type:                string(b.Type),
		Status:              string(b.Status),
		Guests:              b.Guests,
		TotalAmount:         b.TotalAmount,
		ServiceFee:          b.ServiceFee,
		FeePercentage:       b.FeePercentage,
		GrandTotal:          b.GrandTotal(),
		PointsUsed:          b.PointsUsed,
		RejectionReason:     b.RejectionReason,
		RefundRequestReason: b.RefundRequestReason,
		RefundDenialReason:  b.RefundDenialReason,
		CreatedAt:           b.CreatedAt,
		UpdatedAt:           b.UpdatedAt,
		ConfirmedAt:         b.ConfirmedAt,
		CompletedAt:         b.CompletedAt,
		RejectedAt:          b.RejectedAt,
		RefundRequestedAt:   b.RefundRequestedAt,
		RefundApprovedAt:    b.RefundApprovedAt,
		RefundDeniedAt:      b.RefundDeniedAt,
	}
	switch s := b.Schedule.(type) {
	case domain.StaySchedule:
		resp.CheckIn = s.CheckIn.Format(DateLayout)
		resp.CheckOut = s.CheckOut.Format(DateLayout)
	case domain.SlotSchedule:
		resp.SelectedDate = s.Date.Format(DateLayout)
		resp.SelectedTime = s.Time
	}
	return resp
}

func NewBookingListResponse(bookings []domain.Booking) []BookingResponseDTO {
	resp := make([]BookingResponseDTO, 0, len(bookings))
	for i := range bookings {
		resp = append(resp, NewBookingResponse(&bookings[i]))
	}
	return resp
}
