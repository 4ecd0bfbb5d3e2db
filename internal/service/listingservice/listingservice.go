package listingservice

//go:generate mockgen -source=listingservice.go -destination=mock_listingservice.go -package=listingservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/bookingledger/internal/domain"
)

const maxTitleLength = 200

type Repo interface {
	GetByID(ctx context.Context, id string) (*domain.Listing, error)
	Create(ctx context.Context, l *domain.Listing) error
}

type Allowance interface {
	CanCreateListing(ctx context.Context, userID string, category domain.BookingType) (*domain.ListingAllowance, error)
}

type Service struct {
	repo      Repo
	allowance Allowance
	nowFn     func() time.Time
}

func New(repo Repo, allowance Allowance) *Service {
	return &Service{
		repo:      repo,
		allowance: allowance,
		nowFn:     time.Now,
	}
}

// CreateListing publishes a listing for the host as long as the category cap
// is not reached yet.
func (s *Service) CreateListing(ctx context.Context, actor domain.Actor, category domain.BookingType, title string) (*domain.Listing, error) {
	if actor.Role != domain.RoleHost {
		return nil, fmt.Errorf("%w: only hosts can publish listings", domain.ErrForbidden)
	}
	title = strings.TrimSpace(title)
	if title == "" || len(title) > maxTitleLength {
		return nil, domain.Validationf("title must be between 1 and %d characters", maxTitleLength)
	}

	allowance, err := s.allowance.CanCreateListing(ctx, actor.UserID, category)
	if err != nil {
		return nil, err
	}
	if !allowance.Allowed {
		return nil, fmt.Errorf("%w: listing limit of %d reached for %s", domain.ErrForbidden, allowance.Limit, category)
	}

	listing := &domain.Listing{
		ID:        uuid.NewString(),
		HostID:    actor.UserID,
		Category:  category,
		Title:     title,
		CreatedAt: s.nowFn().UTC(),
	}
	if err := s.repo.Create(ctx, listing); err != nil {
		return nil, err
	}
	zap.L().Info("listing created",
		zap.String("listing_id", listing.ID),
		zap.String("host_id", listing.HostID),
		zap.String("category", string(category)),
	)
	return listing, nil
}

func (s *Service) GetListing(ctx context.Context, id string) (*domain.Listing, error) {
	listing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, fmt.Errorf("listing %s: %w", id, domain.ErrNotFound)
	}
	return listing, nil
}
