package feeservice

//go:generate mockgen -source=feeservice.go -destination=mock_feeservice.go -package=feeservice

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/bookingledger/internal/domain"
	"github.com/GlebRadaev/bookingledger/internal/pg"
	"github.com/GlebRadaev/bookingledger/pkg/cache"
)

const cacheKey = "service_fee_config"

var maxPercentage = decimal.NewFromInt(100)

type Repo interface {
	GetConfig(ctx context.Context) (*domain.ServiceFeeConfig, error)
	GetConfigForUpdate(ctx context.Context) (*domain.ServiceFeeConfig, error)
	SaveConfig(ctx context.Context, cfg *domain.ServiceFeeConfig) (*domain.ServiceFeeConfig, error)
}

type Service struct {
	repo      Repo
	txManager pg.TXManager
	cache     cache.Cache
	ttl       time.Duration
	nowFn     func() time.Time
}

func New(repo Repo, txManager pg.TXManager, c cache.Cache, ttl time.Duration) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
		cache:     c,
		ttl:       ttl,
		nowFn:     time.Now,
	}
}

// GetConfig reads the fee config through the cache.
func (s *Service) GetConfig(ctx context.Context) (*domain.ServiceFeeConfig, error) {
	var cached domain.ServiceFeeConfig
	err := cache.GetJSON(ctx, s.cache, cacheKey, &cached)
	if err == nil {
		return &cached, nil
	}
	if !errors.Is(err, cache.ErrNotFound) {
		zap.L().Warn("fee config cache read failed", zap.Error(err))
	}

	cfg, err := s.repo.GetConfig(ctx)
	if err != nil {
		zap.L().Error("failed to load fee config", zap.Error(err))
		return nil, err
	}
	if cfg == nil {
		cfg = domain.DefaultServiceFeeConfig()
	}

	if err := cache.SetJSON(ctx, s.cache, cacheKey, cfg, s.ttl); err != nil {
		zap.L().Warn("fee config cache write failed", zap.Error(err))
	}
	return cfg, nil
}

// GetServiceFeeForType never fails on a lookup problem: it falls back to the
// default percentage and logs.
func (s *Service) GetServiceFeeForType(ctx context.Context, category domain.BookingType) (decimal.Decimal, error) {
	if !category.Valid() {
		return decimal.Zero, domain.Validationf("unknown category %q", category)
	}
	cfg, err := s.GetConfig(ctx)
	if err != nil {
		zap.L().Warn("using default service fee", zap.String("category", string(category)), zap.Error(err))
		return domain.DefaultFeePercentage, nil
	}
	return cfg.PercentageFor(category), nil
}

// CalculateServiceFee returns the fee for amount together with the percentage it used.
func (s *Service) CalculateServiceFee(ctx context.Context, amount decimal.Decimal, category domain.BookingType) (fee, percentage decimal.Decimal, err error) {
	percentage, err = s.GetServiceFeeForType(ctx, category)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return domain.ServiceFee(amount, percentage), percentage, nil
}

// UpdateServiceFees merges updates into the config and bumps its version.
// Existing bookings keep the fee they were created with.
func (s *Service) UpdateServiceFees(ctx context.Context, actor domain.Actor, updates map[domain.BookingType]decimal.Decimal) (*domain.ServiceFeeConfig, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	if len(updates) == 0 {
		return nil, domain.Validationf("no fee updates given")
	}
	for category, pct := range updates {
		if !category.Valid() {
			return nil, domain.Validationf("unknown category %q", category)
		}
		if pct.IsNegative() || pct.GreaterThan(maxPercentage) {
			return nil, domain.Validationf("fee for %s must be within [0,100], got %s", category, pct)
		}
	}

	var saved *domain.ServiceFeeConfig
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		current, err := s.repo.GetConfigForUpdate(ctx)
		if err != nil {
			return err
		}
		if current == nil {
			current = domain.DefaultServiceFeeConfig()
		}

		next := &domain.ServiceFeeConfig{
			Version:     current.Version + 1,
			Percentages: make(map[domain.BookingType]decimal.Decimal, len(domain.BookingTypes)),
			UpdatedBy:   actor.UserID,
			UpdatedAt:   s.nowFn().UTC(),
		}
		for _, category := range domain.BookingTypes {
			next.Percentages[category] = current.PercentageFor(category)
		}
		for category, pct := range updates {
			next.Percentages[category] = pct
		}

		saved, err = s.repo.SaveConfig(ctx, next)
		return err
	})
	if err != nil {
		zap.L().Error("failed to update service fees", zap.Error(err))
		return nil, err
	}

	if err := s.cache.Delete(ctx, cacheKey); err != nil {
		zap.L().Warn("fee config cache invalidation failed", zap.Error(err))
	}
	zap.L().Info("service fees updated", zap.Int("version", saved.Version), zap.String("updated_by", actor.UserID))
	return saved, nil
}
