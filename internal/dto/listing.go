package dto

import (
	"time"

	"github.com/GlebRadaev/bookingledger/internal/domain"
)

type CreateListingRequestDTO struct {
	Category string `json:"category" validate:"required,oneof=stays experiences services" example:"stays"`
	Title    string `json:"title" validate:"required,max=200" example:"Beach house in La Union"`
}

type ListingResponseDTO struct {
	ID        string    `json:"id"`
	HostID    string    `json:"host_id"`
	Category  string    `json:"category" example:"stays"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

func NewListingResponse(l *domain.Listing) ListingResponseDTO {
	return ListingResponseDTO{
		ID:        l.ID,
		HostID:    l.HostID,
		Category:  string(l.Category),
		Title:     l.Title,
		CreatedAt: l.CreatedAt,
	}
}
