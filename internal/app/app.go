package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/bookingledger/internal/config"
	"github.com/GlebRadaev/bookingledger/internal/dispatch"
	"github.com/GlebRadaev/bookingledger/internal/handlers"
	"github.com/GlebRadaev/bookingledger/internal/notifier"
	"github.com/GlebRadaev/bookingledger/internal/pg"
	"github.com/GlebRadaev/bookingledger/internal/repo"
	"github.com/GlebRadaev/bookingledger/internal/service"
	"github.com/GlebRadaev/bookingledger/pkg/auth"
	"github.com/GlebRadaev/bookingledger/pkg/cache"
	"github.com/GlebRadaev/bookingledger/pkg/clients"
	"github.com/GlebRadaev/bookingledger/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg        *config.Config
	api        *handlers.Handlers
	srv        *service.Services
	repo       *repo.Repositories
	dispatcher *dispatch.Dispatcher

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(ctx, pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	feeCache, err := getCache(ctx, cfg)
	if err != nil {
		zap.L().Error("cache init failed: ", zap.Error(err))
		return fmt.Errorf("can't init cache: %w", err)
	}

	conn := pg.New(pool)
	a.cfg = cfg
	a.repo = repo.New(conn, txManager)
	a.dispatcher = dispatch.New(a.repo.OutboxRepo, cfg.DispatchInterval)
	a.srv = service.New(a.repo, service.Deps{
		TxManager:   txManager,
		Cache:       feeCache,
		FeeCacheTTL: cfg.FeeCacheTTL,
		Sender:      notifier.NewEmailSender(cfg.EmailAddress, clients.NewHTTPClient()),
		Dispatcher:  a.dispatcher,
	})
	a.api = handlers.New(a.srv, auth.NewJWTService(cfg.JWTSecret), cfg.AllowedOrigins)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startDispatcher(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

// getCache falls back to process memory when no redis address is configured.
func getCache(ctx context.Context, cfg *config.Config) (cache.Cache, error) {
	if cfg.RedisAddress == "" {
		zap.L().Info("redis address not set, fee config cached in memory")
		return cache.NewInMemoryCache(), nil
	}
	return cache.NewRedisCache(ctx, cfg.RedisAddress)
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: shutdownTimeout,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startDispatcher(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.dispatcher.Start(ctx)
		<-ctx.Done()
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
