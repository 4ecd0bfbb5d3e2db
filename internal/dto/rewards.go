package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/bookingledger/internal/domain"
	"github.com/GlebRadaev/bookingledger/internal/service/rewardsservice"
)

type PointsHistoryDTO struct {
	Action         string    `json:"action" example:"booking_completed"`
	BookingID      string    `json:"booking_id,omitempty"`
	Category       string    `json:"category,omitempty"`
	PointsEarned   int       `json:"points_earned"`
	PointsDeducted int       `json:"points_deducted"`
	PointsRedeemed int       `json:"points_redeemed"`
	CreatedAt      time.Time `json:"created_at"`
}

type RewardsResponseDTO struct {
	UserID          string             `json:"user_id"`
	Role            string             `json:"role" example:"host"`
	TotalPoints     int                `json:"total_points" example:"320"`
	AvailablePoints int                `json:"available_points" example:"20"`
	RedeemedPoints  int                `json:"redeemed_points" example:"300"`
	ListingLimits   map[string]int     `json:"listing_limits"`
	ListingUpgrades map[string]int     `json:"listing_upgrades"`
	History         []PointsHistoryDTO `json:"history"`
}

func NewRewardsResponse(r *domain.Rewards) RewardsResponseDTO {
	resp := RewardsResponseDTO{
		UserID:          r.UserID,
		Role:            string(r.Role),
		TotalPoints:     r.TotalPoints,
		AvailablePoints: r.AvailablePoints,
		RedeemedPoints:  r.RedeemedPoints,
		ListingLimits:   make(map[string]int, len(domain.BookingTypes)),
		ListingUpgrades: make(map[string]int, len(r.ListingUpgrades)),
		History:         make([]PointsHistoryDTO, 0, len(r.History)),
	}
	for _, t := range domain.BookingTypes {
		resp.ListingLimits[string(t)] = r.LimitFor(t)
	}
	for t, n := range r.ListingUpgrades {
		resp.ListingUpgrades[string(t)] = n
	}
	for _, h := range r.History {
		resp.History = append(resp.History, PointsHistoryDTO{
			Action:         string(h.Action),
			BookingID:      h.BookingID,
			Category:       h.Category,
			PointsEarned:   h.PointsEarned,
			PointsDeducted: h.PointsDeducted,
			PointsRedeemed: h.PointsRedeemed,
			CreatedAt:      h.CreatedAt,
		})
	}
	return resp
}

type ListingAllowanceResponseDTO struct {
	Category string `json:"category" example:"stays"`
	Count    int    `json:"count" example:"3"`
	Limit    int    `json:"limit" example:"3"`
	Allowed  bool   `json:"allowed" example:"false"`
}

func NewListingAllowanceResponse(a *domain.ListingAllowance) ListingAllowanceResponseDTO {
	return ListingAllowanceResponseDTO{Category: string(a.Category), Count: a.Count, Limit: a.Limit, Allowed: a.Allowed}
}

type UpgradeCostResponseDTO struct {
	BaseCost   decimal.Decimal `json:"base_cost" swaggertype:"string" example:"500"`
	PointsUsed int             `json:"points_used" example:"300"`
	PesoNeeded decimal.Decimal `json:"peso_needed" swaggertype:"string" example:"200"`
}

func NewUpgradeCostResponse(c domain.UpgradeCost) UpgradeCostResponseDTO {
	return UpgradeCostResponseDTO{BaseCost: c.BaseCost, PointsUsed: c.PointsUsed, PesoNeeded: c.PesoNeeded}
}

type UpgradeRequestDTO struct {
	Category string `json:"category" validate:"required,oneof=stays experiences services" example:"stays"`
	Points   int    `json:"points" validate:"gte=0" example:"300"`
}

type UpgradeResponseDTO struct {
	Cost        UpgradeCostResponseDTO `json:"cost"`
	Rewards     RewardsResponseDTO     `json:"rewards"`
	Transaction *domain.Transaction    `json:"transaction,omitempty"`
}

func NewUpgradeResponse(r *rewardsservice.UpgradeResult) UpgradeResponseDTO {
	return UpgradeResponseDTO{
		Cost:        NewUpgradeCostResponse(r.Cost),
		Rewards:     NewRewardsResponse(r.Rewards),
		Transaction: r.Transaction,
	}
}
