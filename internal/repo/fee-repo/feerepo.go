package feerepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/bookingledger/internal/domain"
	"github.com/GlebRadaev/bookingledger/internal/pg"
)

const configColumns = `version, stays, experiences, services, updated_by, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// GetConfig returns nil, nil when the config row has not been seeded.
func (r *Repository) GetConfig(ctx context.Context) (*domain.ServiceFeeConfig, error) {
	return r.get(ctx, `SELECT `+configColumns+` FROM service_fee_config WHERE id = 1`)
}

func (r *Repository) GetConfigForUpdate(ctx context.Context) (*domain.ServiceFeeConfig, error) {
	return r.get(ctx, `SELECT `+configColumns+` FROM service_fee_config WHERE id = 1 FOR UPDATE`)
}

func (r *Repository) get(ctx context.Context, query string) (*domain.ServiceFeeConfig, error) {
	cfg, err := scanConfig(r.db.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get service fee config", zap.Error(err))
		return nil, err
	}
	return cfg, nil
}

func (r *Repository) SaveConfig(ctx context.Context, cfg *domain.ServiceFeeConfig) (*domain.ServiceFeeConfig, error) {
	query := `
		INSERT INTO service_fee_config (id, version, stays, experiences, services, updated_by, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE
		SET version = EXCLUDED.version,
			stays = EXCLUDED.stays,
			experiences = EXCLUDED.experiences,
			services = EXCLUDED.services,
			updated_by = EXCLUDED.updated_by,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + configColumns
	saved, err := scanConfig(r.db.QueryRow(ctx, query,
		cfg.Version,
		cfg.PercentageFor(domain.BookingTypeStays),
		cfg.PercentageFor(domain.BookingTypeExperiences),
		cfg.PercentageFor(domain.BookingTypeServices),
		cfg.UpdatedBy,
		cfg.UpdatedAt,
	))
	if err != nil {
		zap.L().Error("can't save service fee config", zap.Error(err))
		return nil, err
	}
	return saved, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanConfig(row scanner) (*domain.ServiceFeeConfig, error) {
	var (
		cfg                          domain.ServiceFeeConfig
		stays, experiences, services decimal.Decimal
	)
	if err := row.Scan(&cfg.Version, &stays, &experiences, &services, &cfg.UpdatedBy, &cfg.UpdatedAt); err != nil {
		return nil, err
	}
	cfg.Percentages = map[domain.BookingType]decimal.Decimal{
		domain.BookingTypeStays:       stays,
		domain.BookingTypeExperiences: experiences,
		domain.BookingTypeServices:    services,
	}
	return &cfg, nil
}
