package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleGuest Role = "guest"
	RoleHost  Role = "host"
	RoleAdmin Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleGuest || r == RoleHost || r == RoleAdmin
}

// Actor is the authenticated principal performing an operation.
type Actor struct {
	UserID string
	Role   Role
}

const (
	// DefaultListingLimit is the number of listings a host may publish per category before upgrading.
	DefaultListingLimit = 3
	// ListingLimitIncrement is how much one upgrade raises the cap.
	ListingLimitIncrement = 5
	// CompletionRewardPoints is awarded to both parties when a booking completes.
	CompletionRewardPoints = 10
	// UpgradeBaseCost is the price of one listing-limit upgrade in currency units.
	UpgradeBaseCost = 500
	// PointToPesoRatio is the currency value of a single point.
	PointToPesoRatio = 1
	// MaxUpgradePoints is the most points one upgrade can absorb.
	MaxUpgradePoints = UpgradeBaseCost / PointToPesoRatio
)

type PointsAction string

const (
	PointsActionBookingCompleted PointsAction = "booking_completed"
	PointsActionPointsUsed       PointsAction = "points_used"
	PointsActionListingUpgrade   PointsAction = "listing_upgrade"
)

type Rewards struct {
	ID              string
	UserID          string
	Role            Role
	TotalPoints     int
	AvailablePoints int
	RedeemedPoints  int
	ListingLimits   map[BookingType]int
	ListingUpgrades map[BookingType]int
	History         []PointsHistory
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Balanced reports whether available + redeemed still equals total.
func (r *Rewards) Balanced() bool {
	return r.AvailablePoints+r.RedeemedPoints == r.TotalPoints
}

// LimitFor returns the listing cap for category, falling back to the default.
func (r *Rewards) LimitFor(category BookingType) int {
	if limit, ok := r.ListingLimits[category]; ok {
		return limit
	}
	return DefaultListingLimit
}

type PointsHistory struct {
	ID             string
	UserID         string
	Action         PointsAction
	BookingID      string
	Category       string
	PointsEarned   int
	PointsDeducted int
	PointsRedeemed int
	CreatedAt      time.Time
}

type ListingAllowance struct {
	Category BookingType
	Count    int
	Limit    int
	Allowed  bool
}

type UpgradeCost struct {
	BaseCost   decimal.Decimal
	PointsUsed int
	PesoNeeded decimal.Decimal
}

// CalculateUpgradeCost returns how much currency is still owed after redeeming pointsToUse.
func CalculateUpgradeCost(pointsToUse int) UpgradeCost {
	base := decimal.NewFromInt(UpgradeBaseCost)
	covered := decimal.NewFromInt(int64(pointsToUse)).Mul(decimal.NewFromInt(PointToPesoRatio))
	needed := base.Sub(covered)
	if needed.IsNegative() {
		needed = decimal.Zero
	}
	return UpgradeCost{BaseCost: base, PointsUsed: pointsToUse, PesoNeeded: needed}
}
