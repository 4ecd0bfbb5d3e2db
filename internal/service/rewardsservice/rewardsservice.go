package rewardsservice

//go:generate mockgen -source=rewardsservice.go -destination=mock_rewardsservice.go -package=rewardsservice

import (
	"context"
	"encoding/json"
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
	CreateRewards(ctx context.Context, userID string, role domain.Role) (*domain.Rewards, error)
	GetRewards(ctx context.Context, userID string) (*domain.Rewards, error)
	GetRewardsForUpdate(ctx context.Context, userID string) (*domain.Rewards, error)
	UpdatePoints(ctx context.Context, rw *domain.Rewards) error
	AppendHistory(ctx context.Context, h *domain.PointsHistory) (bool, error)
	ListHistory(ctx context.Context, userID string) ([]domain.PointsHistory, error)
	SaveListingLimit(ctx context.Context, userID string, category domain.BookingType, limit, upgrades int) error
}

type ListingCounter interface {
	CountByHostAndCategory(ctx context.Context, hostID string, category domain.BookingType) (int, error)
}

type Ledger interface {
	ChargeListingUpgrade(ctx context.Context, userID string, amount decimal.Decimal, category domain.BookingType) (*domain.Transaction, error)
}

type Service struct {
	repo      Repo
	listings  ListingCounter
	ledger    Ledger
	txManager pg.TXManager
	nowFn     func() time.Time
}

func New(repo Repo, listings ListingCounter, ledger Ledger, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		listings:  listings,
		ledger:    ledger,
		txManager: txManager,
		nowFn:     time.Now,
	}
}

// UpgradeResult is the outcome of buying a listing-limit upgrade.
type UpgradeResult struct {
	Cost        domain.UpgradeCost
	Rewards     *domain.Rewards
	Transaction *domain.Transaction
}

// InitializeUserRewards returns the existing record unchanged when there is one.
func (s *Service) InitializeUserRewards(ctx context.Context, userID string, role domain.Role) (*domain.Rewards, error) {
	if !role.Valid() {
		return nil, domain.Validationf("unknown role %q", role)
	}
	existing, err := s.repo.GetRewards(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}
	return s.repo.CreateRewards(ctx, userID, role)
}

func (s *Service) GetRewards(ctx context.Context, userID string) (*domain.Rewards, error) {
	rw, err := s.repo.GetRewards(ctx, userID)
	if err != nil {
		return nil, err
	}
	if rw == nil {
		return nil, domain.ErrRewardsNotFound
	}
	rw.History, err = s.repo.ListHistory(ctx, userID)
	if err != nil {
		return nil, err
	}
	return rw, nil
}

// AddPoints credits amount points for a booking. A booking credits a user at
// most once; repeats are ignored.
func (s *Service) AddPoints(ctx context.Context, userID, bookingID, listingType string, amount int) error {
	if amount <= 0 {
		return domain.Validationf("points to add must be positive")
	}
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		rw, err := s.lockRewards(ctx, userID)
		if err != nil {
			return err
		}

		now := s.nowFn().UTC()
		inserted, err := s.repo.AppendHistory(ctx, &domain.PointsHistory{
			ID:           uuid.NewString(),
			UserID:       userID,
			Action:       domain.PointsActionBookingCompleted,
			BookingID:    bookingID,
			Category:     listingType,
			PointsEarned: amount,
			CreatedAt:    now,
		})
		if err != nil {
			return err
		}
		if !inserted {
			zap.L().Info("points already awarded", zap.String("user_id", userID), zap.String("booking_id", bookingID))
			return nil
		}

		rw.TotalPoints += amount
		rw.AvailablePoints += amount
		rw.UpdatedAt = now
		return s.repo.UpdatePoints(ctx, rw)
	})
}

// DeductPoints moves min(requested, available) points to redeemed and
// returns how many were moved.
func (s *Service) DeductPoints(ctx context.Context, userID, bookingID, listingType string, requested int) (int, error) {
	if requested <= 0 {
		return 0, nil
	}
	var deducted int
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		rw, err := s.lockRewards(ctx, userID)
		if err != nil {
			return err
		}
		n := min(requested, rw.AvailablePoints)
		if n == 0 {
			return nil
		}

		now := s.nowFn().UTC()
		inserted, err := s.repo.AppendHistory(ctx, &domain.PointsHistory{
			ID:             uuid.NewString(),
			UserID:         userID,
			Action:         domain.PointsActionPointsUsed,
			BookingID:      bookingID,
			Category:       listingType,
			PointsDeducted: n,
			CreatedAt:      now,
		})
		if err != nil || !inserted {
			return err
		}

		rw.AvailablePoints -= n
		rw.RedeemedPoints += n
		rw.UpdatedAt = now
		deducted = n
		return s.repo.UpdatePoints(ctx, rw)
	})
	return deducted, err
}

// RedeemPointsForListingUpgrade raises the category cap by one increment.
// Any currency shortfall is the caller's to collect.
func (s *Service) RedeemPointsForListingUpgrade(ctx context.Context, userID string, category domain.BookingType, pointsToUse int) (*domain.Rewards, error) {
	if !category.Valid() {
		return nil, domain.Validationf("unknown category %q", category)
	}
	if pointsToUse < 0 {
		return nil, domain.Validationf("points to use must not be negative")
	}

	var result *domain.Rewards
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		rw, err := s.lockRewards(ctx, userID)
		if err != nil {
			return err
		}
		if pointsToUse > rw.AvailablePoints {
			return fmt.Errorf("%w: %d requested, %d available", domain.ErrInsufficientPoints, pointsToUse, rw.AvailablePoints)
		}

		limit := rw.LimitFor(category) + domain.ListingLimitIncrement
		upgrades := rw.ListingUpgrades[category] + 1
		if err := s.repo.SaveListingLimit(ctx, userID, category, limit, upgrades); err != nil {
			return err
		}

		now := s.nowFn().UTC()
		rw.AvailablePoints -= pointsToUse
		rw.RedeemedPoints += pointsToUse
		rw.UpdatedAt = now
		if err := s.repo.UpdatePoints(ctx, rw); err != nil {
			return err
		}
		if _, err := s.repo.AppendHistory(ctx, &domain.PointsHistory{
			ID:             uuid.NewString(),
			UserID:         userID,
			Action:         domain.PointsActionListingUpgrade,
			Category:       string(category),
			PointsRedeemed: pointsToUse,
			CreatedAt:      now,
		}); err != nil {
			return err
		}

		if rw.ListingLimits == nil {
			rw.ListingLimits = make(map[domain.BookingType]int)
		}
		if rw.ListingUpgrades == nil {
			rw.ListingUpgrades = make(map[domain.BookingType]int)
		}
		rw.ListingLimits[category] = limit
		rw.ListingUpgrades[category] = upgrades
		result = rw
		return nil
	})
	if err != nil {
		if !errors.Is(err, domain.ErrInsufficientPoints) && !errors.Is(err, domain.ErrNotFound) {
			zap.L().Error("failed to redeem points", zap.Error(err))
		}
		return nil, err
	}
	return result, nil
}

func (s *Service) CalculateUpgradeCost(pointsToUse int) (domain.UpgradeCost, error) {
	if pointsToUse < 0 {
		return domain.UpgradeCost{}, domain.Validationf("points to use must not be negative")
	}
	return domain.CalculateUpgradeCost(pointsToUse), nil
}

// PurchaseListingUpgrade redeems the points and charges the remaining cost
// as one unit. Points beyond the upgrade price stay available.
func (s *Service) PurchaseListingUpgrade(ctx context.Context, actor domain.Actor, category domain.BookingType, pointsToUse int) (*UpgradeResult, error) {
	pointsToUse = min(pointsToUse, domain.MaxUpgradePoints)
	cost, err := s.CalculateUpgradeCost(pointsToUse)
	if err != nil {
		return nil, err
	}

	result := &UpgradeResult{Cost: cost}
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		rw, err := s.RedeemPointsForListingUpgrade(ctx, actor.UserID, category, pointsToUse)
		if err != nil {
			return err
		}
		result.Rewards = rw

		if cost.PesoNeeded.IsPositive() {
			result.Transaction, err = s.ledger.ChargeListingUpgrade(ctx, actor.UserID, cost.PesoNeeded, category)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// CanCreateListing compares the host's listing count in category with the cap.
func (s *Service) CanCreateListing(ctx context.Context, userID string, category domain.BookingType) (*domain.ListingAllowance, error) {
	if !category.Valid() {
		return nil, domain.Validationf("unknown category %q", category)
	}
	rw, err := s.repo.GetRewards(ctx, userID)
	if err != nil {
		return nil, err
	}
	limit := domain.DefaultListingLimit
	if rw != nil {
		limit = rw.LimitFor(category)
	}

	count, err := s.listings.CountByHostAndCategory(ctx, userID, category)
	if err != nil {
		return nil, err
	}
	return &domain.ListingAllowance{Category: category, Count: count, Limit: limit, Allowed: count < limit}, nil
}

// HandleAward processes a points.award outbox event.
func (s *Service) HandleAward(ctx context.Context, e domain.OutboxEvent) error {
	var p domain.PointsPayload
	if err := json.Unmarshal(e.Payload, &p); err != nil {
		return fmt.Errorf("decode points payload: %w", err)
	}
	if _, err := s.InitializeUserRewards(ctx, p.UserID, p.Role); err != nil {
		return err
	}
	return s.AddPoints(ctx, p.UserID, p.BookingID, p.ListingType, p.Points)
}

// HandleDeduct processes a points.deduct outbox event. A user without a
// rewards record has nothing to deduct.
func (s *Service) HandleDeduct(ctx context.Context, e domain.OutboxEvent) error {
	var p domain.PointsPayload
	if err := json.Unmarshal(e.Payload, &p); err != nil {
		return fmt.Errorf("decode points payload: %w", err)
	}
	deducted, err := s.DeductPoints(ctx, p.UserID, p.BookingID, p.ListingType, p.Points)
	if errors.Is(err, domain.ErrNotFound) {
		zap.L().Warn("no rewards to deduct from", zap.String("user_id", p.UserID))
		return nil
	}
	if err != nil {
		return err
	}
	zap.L().Info("points deducted", zap.String("user_id", p.UserID), zap.Int("points", deducted))
	return nil
}

func (s *Service) lockRewards(ctx context.Context, userID string) (*domain.Rewards, error) {
	rw, err := s.repo.GetRewardsForUpdate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if rw == nil {
		return nil, domain.ErrRewardsNotFound
	}
	return rw, nil
}
