package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultFeePercentage applies to any category the config does not mention
// and whenever the config cannot be read.
var DefaultFeePercentage = decimal.NewFromInt(5)

type ServiceFeeConfig struct {
	Version     int                             `json:"version"`
	Percentages map[BookingType]decimal.Decimal `json:"percentages"`
	UpdatedBy   string                          `json:"updated_by"`
	UpdatedAt   time.Time                       `json:"updated_at"`
}

func DefaultServiceFeeConfig() *ServiceFeeConfig {
	cfg := &ServiceFeeConfig{Percentages: make(map[BookingType]decimal.Decimal, len(BookingTypes))}
	for _, t := range BookingTypes {
		cfg.Percentages[t] = DefaultFeePercentage
	}
	return cfg
}

func (c *ServiceFeeConfig) PercentageFor(category BookingType) decimal.Decimal {
	if pct, ok := c.Percentages[category]; ok {
		return pct
	}
	return DefaultFeePercentage
}

// ServiceFee is amount * percentage / 100, rounded to cents.
func ServiceFee(amount, percentage decimal.Decimal) decimal.Decimal {
	return amount.Mul(percentage).Div(decimal.NewFromInt(100)).Round(2)
}
