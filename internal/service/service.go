package service

//go:generate mockgen -source=service.go -destination=mock_service.go -package=service

import (
	"time"

	"github.com/GlebRadaev/bookingledger/internal/dispatch"
	"github.com/GlebRadaev/bookingledger/internal/domain"
	"github.com/GlebRadaev/bookingledger/internal/handlers/bookings"
	"github.com/GlebRadaev/bookingledger/internal/handlers/fees"
	"github.com/GlebRadaev/bookingledger/internal/handlers/listings"
	"github.com/GlebRadaev/bookingledger/internal/handlers/notifications"
	"github.com/GlebRadaev/bookingledger/internal/handlers/rewards"
	"github.com/GlebRadaev/bookingledger/internal/handlers/wallet"
	"github.com/GlebRadaev/bookingledger/internal/pg"
	"github.com/GlebRadaev/bookingledger/internal/repo"
	"github.com/GlebRadaev/bookingledger/internal/service/bookingservice"
	"github.com/GlebRadaev/bookingledger/internal/service/feeservice"
	"github.com/GlebRadaev/bookingledger/internal/service/listingservice"
	"github.com/GlebRadaev/bookingledger/internal/service/notificationservice"
	"github.com/GlebRadaev/bookingledger/internal/service/rewardsservice"
	"github.com/GlebRadaev/bookingledger/internal/service/walletservice"
	"github.com/GlebRadaev/bookingledger/pkg/cache"
)

// Dispatcher runs committed outbox events and routes them by kind.
type Dispatcher interface {
	bookingservice.Dispatcher
	Register(kind domain.EventKind, h dispatch.Handler)
}

type Deps struct {
	TxManager   pg.TXManager
	Cache       cache.Cache
	FeeCacheTTL time.Duration
	Sender      notificationservice.Sender
	Dispatcher  Dispatcher
}

type Services struct {
	BookingService      bookings.Service
	ListingService      listings.Service
	WalletService       wallet.Service
	RewardsService      rewards.Service
	FeeService          fees.Service
	NotificationService notifications.Service
}

func New(repo *repo.Repositories, deps Deps) *Services {
	feeService := feeservice.New(repo.FeeRepo, deps.TxManager, deps.Cache, deps.FeeCacheTTL)
	walletService := walletservice.New(repo.WalletRepo, repo.RevenueRepo, deps.TxManager)
	rewardsService := rewardsservice.New(repo.RewardsRepo, repo.ListingCounter, walletService, deps.TxManager)
	notificationService := notificationservice.New(repo.NotificationRepo, deps.Sender)
	listingService := listingservice.New(repo.ListingCatalog, rewardsService)
	bookingService := bookingservice.New(
		repo.BookingRepo,
		repo.ListingRepo,
		walletService,
		feeService,
		repo.Outbox,
		deps.Dispatcher,
		deps.TxManager,
	)

	deps.Dispatcher.Register(domain.EventPointsAward, rewardsService.HandleAward)
	deps.Dispatcher.Register(domain.EventPointsDeduct, rewardsService.HandleDeduct)
	deps.Dispatcher.Register(domain.EventNotify, notificationService.HandleNotify)

	return &Services{
		BookingService:      bookingService,
		ListingService:      listingService,
		WalletService:       walletService,
		RewardsService:      rewardsService,
		FeeService:          feeService,
		NotificationService: notificationService,
	}
}
