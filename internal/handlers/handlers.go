package handlers

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/bookingledger/docs"
	"github.com/GlebRadaev/bookingledger/internal/domain"
	bookinghandlers "github.com/GlebRadaev/bookingledger/internal/handlers/bookings"
	feehandlers "github.com/GlebRadaev/bookingledger/internal/handlers/fees"
	listinghandlers "github.com/GlebRadaev/bookingledger/internal/handlers/listings"
	notificationhandlers "github.com/GlebRadaev/bookingledger/internal/handlers/notifications"
	rewardshandlers "github.com/GlebRadaev/bookingledger/internal/handlers/rewards"
	wallethandlers "github.com/GlebRadaev/bookingledger/internal/handlers/wallet"
	"github.com/GlebRadaev/bookingledger/internal/service"
	"github.com/GlebRadaev/bookingledger/pkg/auth"
	"github.com/GlebRadaev/bookingledger/pkg/utils"
)

type BookingHandler interface {
	CreateBooking(w http.ResponseWriter, r *http.Request)
	GetBooking(w http.ResponseWriter, r *http.Request)
	ListBookings(w http.ResponseWriter, r *http.Request)
	Confirm(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Complete(w http.ResponseWriter, r *http.Request)
	RequestRefund(w http.ResponseWriter, r *http.Request)
	ApproveRefund(w http.ResponseWriter, r *http.Request)
	DenyRefund(w http.ResponseWriter, r *http.Request)
}

type ListingHandler interface {
	CreateListing(w http.ResponseWriter, r *http.Request)
	GetListing(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	CreateWallet(w http.ResponseWriter, r *http.Request)
	GetWallet(w http.ResponseWriter, r *http.Request)
	Deposit(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	ListTransactions(w http.ResponseWriter, r *http.Request)
	RevenueSummary(w http.ResponseWriter, r *http.Request)
	Reconcile(w http.ResponseWriter, r *http.Request)
}

type RewardsHandler interface {
	InitializeRewards(w http.ResponseWriter, r *http.Request)
	GetRewards(w http.ResponseWriter, r *http.Request)
	CanCreateListing(w http.ResponseWriter, r *http.Request)
	UpgradeCost(w http.ResponseWriter, r *http.Request)
	PurchaseUpgrade(w http.ResponseWriter, r *http.Request)
}

type FeeHandler interface {
	GetFees(w http.ResponseWriter, r *http.Request)
	GetFee(w http.ResponseWriter, r *http.Request)
	UpdateFees(w http.ResponseWriter, r *http.Request)
}

type NotificationHandler interface {
	ListNotifications(w http.ResponseWriter, r *http.Request)
	MarkRead(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	BookingHandler      BookingHandler
	ListingHandler      ListingHandler
	WalletHandler       WalletHandler
	RewardsHandler      RewardsHandler
	FeeHandler          FeeHandler
	NotificationHandler NotificationHandler

	tokens         auth.TokenValidator
	allowedOrigins []string
}

func New(s *service.Services, tokens auth.TokenValidator, allowedOrigins []string) *Handlers {
	return &Handlers{
		BookingHandler:      bookinghandlers.New(s.BookingService),
		ListingHandler:      listinghandlers.New(s.ListingService),
		WalletHandler:       wallethandlers.New(s.WalletService),
		RewardsHandler:      rewardshandlers.New(s.RewardsService),
		FeeHandler:          feehandlers.New(s.FeeService),
		NotificationHandler: notificationhandlers.New(s.NotificationService),
		tokens:              tokens,
		allowedOrigins:      allowedOrigins,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		cors.Handler(cors.Options{
			AllowedOrigins:   h.allowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}),
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", health)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware(h.tokens))

			r.Route("/bookings", func(r chi.Router) {
				r.With(auth.RequireRole(domain.RoleGuest)).Post("/", h.BookingHandler.CreateBooking)
				r.Get("/", h.BookingHandler.ListBookings)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.BookingHandler.GetBooking)
					r.Post("/confirm", h.BookingHandler.Confirm)
					r.Post("/reject", h.BookingHandler.Reject)
					r.Post("/complete", h.BookingHandler.Complete)
					r.Post("/refund-request", h.BookingHandler.RequestRefund)
					r.Post("/refund-approve", h.BookingHandler.ApproveRefund)
					r.Post("/refund-deny", h.BookingHandler.DenyRefund)
				})
			})

			r.Route("/listings", func(r chi.Router) {
				r.With(auth.RequireRole(domain.RoleHost)).Post("/", h.ListingHandler.CreateListing)
				r.Get("/{id}", h.ListingHandler.GetListing)
			})

			r.Route("/wallet", func(r chi.Router) {
				r.Post("/", h.WalletHandler.CreateWallet)
				r.Get("/", h.WalletHandler.GetWallet)
				r.Post("/deposit", h.WalletHandler.Deposit)
				r.Post("/withdraw", h.WalletHandler.Withdraw)
				r.Get("/transactions", h.WalletHandler.ListTransactions)
				r.Get("/reconcile", h.WalletHandler.Reconcile)
			})

			r.Route("/rewards", func(r chi.Router) {
				r.Post("/", h.RewardsHandler.InitializeRewards)
				r.Get("/", h.RewardsHandler.GetRewards)
				r.Get("/upgrade-cost", h.RewardsHandler.UpgradeCost)
				r.Group(func(r chi.Router) {
					r.Use(auth.RequireRole(domain.RoleHost))
					r.Get("/listing-limit/{category}", h.RewardsHandler.CanCreateListing)
					r.Post("/upgrade", h.RewardsHandler.PurchaseUpgrade)
				})
			})

			r.Route("/fees", func(r chi.Router) {
				r.Get("/", h.FeeHandler.GetFees)
				r.Get("/{category}", h.FeeHandler.GetFee)
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.NotificationHandler.ListNotifications)
				r.Post("/{id}/read", h.NotificationHandler.MarkRead)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(auth.RequireRole(domain.RoleAdmin))
				r.Put("/fees", h.FeeHandler.UpdateFees)
				r.Get("/revenue", h.WalletHandler.RevenueSummary)
				r.Get("/wallets/{userID}/reconcile", h.WalletHandler.Reconcile)
			})
		})
	})

	return r
}

// health godoc
//
//	@Summary	Liveness probe
//	@Tags		Health
//	@Produce	json
//	@Success	200	{object}	utils.Response	"Service is up"
//	@Router		/api/health [get]
func health(w http.ResponseWriter, _ *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "ok"})
}
