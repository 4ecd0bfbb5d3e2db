package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/bookingledger/internal/domain"
)

type FeeResponseDTO struct {
	Category   string          `json:"category" example:"stays"`
	Percentage decimal.Decimal `json:"percentage" swaggertype:"string" example:"5"`
}

type UpdateFeesRequestDTO struct {
	Percentages map[string]decimal.Decimal `json:"percentages" validate:"required,min=1" swaggertype:"object,string" example:"stays:8,services:12"`
}

// Updates converts the request into the typed map the fee policy expects.
func (r UpdateFeesRequestDTO) Updates() map[domain.BookingType]decimal.Decimal {
	updates := make(map[domain.BookingType]decimal.Decimal, len(r.Percentages))
	for k, v := range r.Percentages {
		updates[domain.BookingType(k)] = v
	}
	return updates
}

type RevenueSummaryResponseDTO struct {
	From   time.Time                  `json:"from"`
	To     time.Time                  `json:"to"`
	ByType map[string]decimal.Decimal `json:"by_type" swaggertype:"object,string"`
	Total  decimal.Decimal            `json:"total" swaggertype:"string" example:"50"`
}

func NewRevenueSummaryResponse(s *domain.RevenueSummary) RevenueSummaryResponseDTO {
	resp := RevenueSummaryResponseDTO{
		From:   s.From,
		To:     s.To,
		ByType: make(map[string]decimal.Decimal, len(s.ByType)),
		Total:  s.Total,
	}
	for t, amount := range s.ByType {
		resp.ByType[string(t)] = amount
	}
	return resp
}
