package repo

import (
	"github.com/GlebRadaev/bookingledger/internal/dispatch"
	"github.com/GlebRadaev/bookingledger/internal/pg"
	bookingrepo "github.com/GlebRadaev/bookingledger/internal/repo/booking-repo"
	feerepo "github.com/GlebRadaev/bookingledger/internal/repo/fee-repo"
	listingrepo "github.com/GlebRadaev/bookingledger/internal/repo/listing-repo"
	notificationrepo "github.com/GlebRadaev/bookingledger/internal/repo/notification-repo"
	outboxrepo "github.com/GlebRadaev/bookingledger/internal/repo/outbox-repo"
	revenuerepo "github.com/GlebRadaev/bookingledger/internal/repo/revenue-repo"
	rewardsrepo "github.com/GlebRadaev/bookingledger/internal/repo/rewards-repo"
	walletrepo "github.com/GlebRadaev/bookingledger/internal/repo/wallet-repo"
	"github.com/GlebRadaev/bookingledger/internal/service/bookingservice"
	"github.com/GlebRadaev/bookingledger/internal/service/feeservice"
	"github.com/GlebRadaev/bookingledger/internal/service/listingservice"
	"github.com/GlebRadaev/bookingledger/internal/service/notificationservice"
	"github.com/GlebRadaev/bookingledger/internal/service/rewardsservice"
	"github.com/GlebRadaev/bookingledger/internal/service/walletservice"
)

type Repositories struct {
	BookingRepo      bookingservice.Repo
	ListingRepo      bookingservice.ListingRepo
	ListingCounter   rewardsservice.ListingCounter
	ListingCatalog   listingservice.Repo
	WalletRepo       walletservice.Repo
	RevenueRepo      walletservice.RevenueRepo
	RewardsRepo      rewardsservice.Repo
	FeeRepo          feeservice.Repo
	NotificationRepo notificationservice.Repo
	Outbox           bookingservice.Outbox
	OutboxRepo       dispatch.OutboxRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	listingRepo := listingrepo.New(conn)
	outboxRepo := outboxrepo.New(conn)

	return &Repositories{
		BookingRepo:      bookingrepo.New(conn),
		ListingRepo:      listingRepo,
		ListingCounter:   listingRepo,
		ListingCatalog:   listingRepo,
		WalletRepo:       walletrepo.New(conn, txManager),
		RevenueRepo:      revenuerepo.New(conn),
		RewardsRepo:      rewardsrepo.New(conn, txManager),
		FeeRepo:          feerepo.New(conn),
		NotificationRepo: notificationrepo.New(conn),
		Outbox:           outboxRepo,
		OutboxRepo:       outboxRepo,
	}
}
